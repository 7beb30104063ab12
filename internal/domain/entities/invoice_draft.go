package entities

import "time"

// InvoiceDraft is a validated, not-yet-persisted invoice. Nil derived
// values were omitted by the caller.
type InvoiceDraft struct {
	InvoiceNumber  string
	ClientName     string
	CompanyName    string
	ClientEmail    string
	Status         InvoiceStatus
	Currency       string
	DueDate        time.Time
	Items          []InvoiceItem
	DiscountRate   float64

	Amount         *float64
	Subtotal       *float64
	DiscountAmount *float64
	Total          *float64
}
