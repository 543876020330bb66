package report

import (
	"time"

	"github.com/dafibh/fortuna/fortuna-reports/internal/domain"
	"github.com/shopspring/decimal"
)

// View is the wire shape of a by-categories report shared by the HTTP API and
// the push channel. Amounts are fixed two-decimal strings.
type View struct {
	Month             string                  `json:"month"`
	StartDate         string                  `json:"startDate"`
	EndDate           string                  `json:"endDate"`
	Total             string                  `json:"total"`
	TransactionCount  int                     `json:"transactionCount"`
	Categories        []CategoryView          `json:"categories"`
	Chart             domain.ChartDescription `json:"chart"`
	SentinelCollision bool                    `json:"sentinelCollision,omitempty"`
	GeneratedAt       string                  `json:"generatedAt"`
}

// CategoryView is one pie slice with its drill-down entries
type CategoryView struct {
	CategoryID  string     `json:"categoryId"`
	DisplayName string     `json:"displayName"`
	Total       string     `json:"total"`
	Breakdown   []NoteView `json:"breakdown"`
}

// NoteView is one drill-down entry
type NoteView struct {
	Note   string `json:"note"`
	Amount string `json:"amount"`
}

const dateLayout = "2006-01-02"

// NewView converts a report into its wire shape
func NewView(rep *domain.CategoryReport) View {
	categories := make([]CategoryView, 0, len(rep.Categories))
	for _, c := range rep.Categories {
		breakdown := make([]NoteView, 0, len(c.Breakdown))
		for _, n := range c.Breakdown {
			breakdown = append(breakdown, NoteView{Note: n.Note, Amount: money(n.Amount)})
		}
		categories = append(categories, CategoryView{
			CategoryID:  c.CategoryID,
			DisplayName: c.DisplayName,
			Total:       money(c.Total),
			Breakdown:   breakdown,
		})
	}

	return View{
		Month:             rep.Month,
		StartDate:         rep.StartDate.Format(dateLayout),
		EndDate:           rep.EndDate.Format(dateLayout),
		Total:             money(rep.Total),
		TransactionCount:  rep.TransactionCount,
		Categories:        categories,
		Chart:             rep.Chart,
		SentinelCollision: rep.SentinelCollision,
		GeneratedAt:       rep.GeneratedAt.Format(time.RFC3339),
	}
}

func money(d decimal.Decimal) string {
	return d.StringFixed(2)
}
