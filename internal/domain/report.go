package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

const (
	// UncategorizedID is the drill-down id used for transactions without a category
	UncategorizedID = "none"
	// UncategorizedName is the display name used for transactions without a category
	UncategorizedName = "None"
)

// NoteTotal is the drill-down entry for one distinct note within a category
type NoteTotal struct {
	Note   string          `json:"note"`
	Amount decimal.Decimal `json:"amount"`
}

// CategoryTotal is the top-level slice of the by-categories report
type CategoryTotal struct {
	CategoryID  string          `json:"categoryId"`
	DisplayName string          `json:"displayName"`
	Total       decimal.Decimal `json:"total"`
	Breakdown   []NoteTotal     `json:"breakdown"`
}

// CategoryReport is the by-categories report for a single month
type CategoryReport struct {
	Month             string           `json:"month"`
	StartDate         time.Time        `json:"startDate"`
	EndDate           time.Time        `json:"endDate"`
	Total             decimal.Decimal  `json:"total"`
	TransactionCount  int              `json:"transactionCount"`
	Categories        []CategoryTotal  `json:"categories"`
	Chart             ChartDescription `json:"chart"`
	SentinelCollision bool             `json:"sentinelCollision,omitempty"`
	GeneratedAt       time.Time        `json:"generatedAt"`
}

// MonthOption is an entry of the month selector
type MonthOption struct {
	Name   string `json:"name"`
	Pretty string `json:"pretty"`
}
