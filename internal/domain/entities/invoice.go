package entities

import (
	"strings"
	"time"
)

// InvoiceStatus is a free field set by explicit user action.
//
// Nothing transitions an invoice to overdue when its due date passes;
// "overdue" only exists when a caller stores it.
type InvoiceStatus string

const (
	InvoiceStatusPending InvoiceStatus = "pending"
	InvoiceStatusPaid    InvoiceStatus = "paid"
	InvoiceStatusOverdue InvoiceStatus = "overdue"
)

// ParseInvoiceStatus lowercases s and reports whether it is a known status.
func ParseInvoiceStatus(s string) (InvoiceStatus, bool) {
	st := InvoiceStatus(strings.ToLower(strings.TrimSpace(s)))
	switch st {
	case InvoiceStatusPending, InvoiceStatusPaid, InvoiceStatusOverdue:
		return st, true
	}
	return st, false
}

// InvoiceItem is one billable line. Price is the line's whole contribution;
// there is no quantity.
type InvoiceItem struct {
	Service     string  `json:"service"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
}

// Invoice is the billing document persisted by the invoice service.
//
// Storage model (DynamoDB):
//   - PK: id
//   - invoice_numbers table guards invoiceNumber uniqueness
//
// Derived values (Subtotal, DiscountAmount, Total) are stored redundantly
// alongside Items. They are computed by the caller and are only re-derived
// server side when totals recomputation is enabled.
type Invoice struct {
	ID             string        `json:"id"`
	InvoiceNumber  string        `json:"invoiceNumber"`
	ClientName     string        `json:"clientName"`
	CompanyName    string        `json:"companyName,omitempty"`
	ClientEmail    string        `json:"clientEmail,omitempty"`
	Amount         float64       `json:"amount"`
	Status         InvoiceStatus `json:"status"`
	Currency       string        `json:"currency"`
	DueDate        time.Time     `json:"dueDate"`
	Items          []InvoiceItem `json:"items"`
	Subtotal       float64       `json:"subtotal"`
	DiscountRate   float64       `json:"discountRate"`
	DiscountAmount float64       `json:"discountAmount"`
	Total          float64       `json:"total"`
	CreatedAt      time.Time     `json:"createdAt"`
	UpdatedAt      time.Time     `json:"updatedAt"`
}

// InvoicePatch holds the fields supplied to an update. Nil means "not
// supplied"; supplied fields replace the stored value as a whole.
type InvoicePatch struct {
	InvoiceNumber  *string
	ClientName     *string
	CompanyName    *string
	ClientEmail    *string
	Amount         *float64
	Status         *InvoiceStatus
	Currency       *string
	DueDate        *time.Time
	Items          *[]InvoiceItem
	Subtotal       *float64
	DiscountRate   *float64
	DiscountAmount *float64
	Total          *float64
}

// IsEmpty reports whether no field was supplied.
func (p InvoicePatch) IsEmpty() bool {
	return p.InvoiceNumber == nil && p.ClientName == nil && p.CompanyName == nil &&
		p.ClientEmail == nil && p.Amount == nil && p.Status == nil && p.Currency == nil &&
		p.DueDate == nil && p.Items == nil && p.Subtotal == nil && p.DiscountRate == nil &&
		p.DiscountAmount == nil && p.Total == nil
}

// Apply copies every supplied field onto inv. UpdatedAt is left to the caller.
func (p InvoicePatch) Apply(inv *Invoice) {
	if p.InvoiceNumber != nil {
		inv.InvoiceNumber = *p.InvoiceNumber
	}
	if p.ClientName != nil {
		inv.ClientName = *p.ClientName
	}
	if p.CompanyName != nil {
		inv.CompanyName = *p.CompanyName
	}
	if p.ClientEmail != nil {
		inv.ClientEmail = *p.ClientEmail
	}
	if p.Amount != nil {
		inv.Amount = *p.Amount
	}
	if p.Status != nil {
		inv.Status = *p.Status
	}
	if p.Currency != nil {
		inv.Currency = *p.Currency
	}
	if p.DueDate != nil {
		inv.DueDate = *p.DueDate
	}
	if p.Items != nil {
		inv.Items = append([]InvoiceItem(nil), (*p.Items)...)
	}
	if p.Subtotal != nil {
		inv.Subtotal = *p.Subtotal
	}
	if p.DiscountRate != nil {
		inv.DiscountRate = *p.DiscountRate
	}
	if p.DiscountAmount != nil {
		inv.DiscountAmount = *p.DiscountAmount
	}
	if p.Total != nil {
		inv.Total = *p.Total
	}
}
