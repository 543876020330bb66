// Package report turns a month of spending transactions into the by-categories
// report: per-category totals with a per-note drill-down, and the chart
// description handed to the presentation layer.
//
// Everything here is pure. Functions never perform I/O and never retain or
// mutate their inputs, so a report can be recomputed from a snapshot at any time.
package report

import (
	"github.com/dafibh/fortuna/fortuna-reports/internal/domain"
	"github.com/shopspring/decimal"
)

// noteSums accumulates signed minor-unit sums per note, remembering first-seen order
type noteSums struct {
	order []string
	sums  map[string]int64
}

func (n *noteSums) add(note string, amount int64) {
	if _, ok := n.sums[note]; !ok {
		n.order = append(n.order, note)
	}
	n.sums[note] += amount
}

// categorySums is the category id -> note -> sum mapping, ordered at both levels
type categorySums struct {
	order []string
	notes map[string]*noteSums
}

func (c *categorySums) add(categoryID, note string, amount int64) {
	ns, ok := c.notes[categoryID]
	if !ok {
		ns = &noteSums{sums: make(map[string]int64)}
		c.notes[categoryID] = ns
		c.order = append(c.order, categoryID)
	}
	ns.add(note, amount)
}

func groupByCategoryAndNote(transactions []*domain.Transaction) *categorySums {
	grouped := &categorySums{notes: make(map[string]*noteSums)}
	for _, t := range transactions {
		if t == nil {
			continue
		}
		grouped.add(t.CategoryID, t.Notes, t.Amount)
	}
	return grouped
}

// Aggregate groups transactions by category and, within a category, by note.
//
// Output order follows first appearance in the input at both levels. Note sums
// keep their sign while accumulating; only the final per-note sum is turned
// into a non-negative major-unit amount. Category totals are the sum of their
// breakdown amounts. An empty input yields an empty, non-nil slice.
func Aggregate(transactions []*domain.Transaction, categories map[string]*domain.Category) []domain.CategoryTotal {
	grouped := groupByCategoryAndNote(transactions)

	totals := make([]domain.CategoryTotal, 0, len(grouped.order))
	for _, categoryID := range grouped.order {
		notes := grouped.notes[categoryID]

		total := decimal.Zero
		breakdown := make([]domain.NoteTotal, 0, len(notes.order))
		for _, note := range notes.order {
			amount := MajorUnits(notes.sums[note])
			breakdown = append(breakdown, domain.NoteTotal{Note: note, Amount: amount})
			total = total.Add(amount)
		}

		totals = append(totals, domain.CategoryTotal{
			CategoryID:  DrilldownID(categoryID),
			DisplayName: DisplayName(categoryID, categories),
			Total:       total,
			Breakdown:   breakdown,
		})
	}
	return totals
}

// MajorUnits converts a signed minor-unit amount into its magnitude in major units
func MajorUnits(minor int64) decimal.Decimal {
	return decimal.New(minor, -2).Abs()
}

// DrilldownID maps an empty category id to the uncategorized sentinel
func DrilldownID(categoryID string) string {
	if categoryID == "" {
		return domain.UncategorizedID
	}
	return categoryID
}

// DisplayName resolves a category id against the directory, falling back to "None"
func DisplayName(categoryID string, categories map[string]*domain.Category) string {
	if categoryID == "" {
		return domain.UncategorizedName
	}
	if c, ok := categories[categoryID]; ok && c != nil {
		return c.Name
	}
	return domain.UncategorizedName
}

// GrandTotal sums the category totals of a report
func GrandTotal(totals []domain.CategoryTotal) decimal.Decimal {
	sum := decimal.Zero
	for _, t := range totals {
		sum = sum.Add(t.Total)
	}
	return sum
}
