package domain

import "errors"

// Domain errors
var (
	ErrNotFound            = errors.New("resource not found")
	ErrInvalidInput        = errors.New("invalid input")
	ErrInvalidMonth        = errors.New("invalid month")
	ErrInternalError       = errors.New("internal error")
	ErrTransactionNotFound = errors.New("transaction not found")
	ErrCategoryNotFound    = errors.New("category not found")
	ErrUnsupportedFormat   = errors.New("unsupported export format")
	ErrStorageDisabled     = errors.New("export storage is not configured")
)

// Month selector bounds
const (
	MinReportYear = 1900
	MaxReportYear = 2999
)
