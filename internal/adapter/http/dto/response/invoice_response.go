package response

import (
	"time"

	"invoice_service/internal/domain/entities"
	"invoice_service/internal/domain/finance"
)

type InvoiceItemResponse struct {
	Service     string  `json:"service"`
	Description string  `json:"description,omitempty"`
	Price       float64 `json:"price"`
}

// InvoiceResponse is the wire shape of an invoice. Dates are always
// serialized as ISO-8601 strings.
type InvoiceResponse struct {
	ID             string                `json:"id"`
	InvoiceNumber  string                `json:"invoiceNumber"`
	ClientName     string                `json:"clientName"`
	CompanyName    string                `json:"companyName,omitempty"`
	ClientEmail    string                `json:"clientEmail,omitempty"`
	Amount         float64               `json:"amount"`
	Status         string                `json:"status"`
	Currency       string                `json:"currency"`
	DueDate        string                `json:"dueDate"`
	Items          []InvoiceItemResponse `json:"items"`
	Subtotal       float64               `json:"subtotal"`
	DiscountRate   float64               `json:"discountRate"`
	DiscountAmount float64               `json:"discountAmount"`
	Total          float64               `json:"total"`
	CreatedAt      string                `json:"createdAt"`
	UpdatedAt      string                `json:"updatedAt"`
}

type MessageResponse struct {
	Message string `json:"message"`
}

// QuoteResponse returns the calculator output plus display strings.
type QuoteResponse struct {
	Subtotal       float64        `json:"subtotal"`
	DiscountRate   float64        `json:"discountRate"`
	DiscountAmount float64        `json:"discountAmount"`
	Total          float64        `json:"total"`
	Currency       string         `json:"currency"`
	Symbol         string         `json:"symbol"`
	Formatted      QuoteFormatted `json:"formatted"`
}

type QuoteFormatted struct {
	Subtotal       string `json:"subtotal"`
	DiscountAmount string `json:"discountAmount"`
	Total          string `json:"total"`
}

func FromInvoice(inv entities.Invoice) InvoiceResponse {
	items := make([]InvoiceItemResponse, 0, len(inv.Items))
	for _, it := range inv.Items {
		items = append(items, InvoiceItemResponse{
			Service:     it.Service,
			Description: it.Description,
			Price:       it.Price,
		})
	}
	return InvoiceResponse{
		ID:             inv.ID,
		InvoiceNumber:  inv.InvoiceNumber,
		ClientName:     inv.ClientName,
		CompanyName:    inv.CompanyName,
		ClientEmail:    inv.ClientEmail,
		Amount:         inv.Amount,
		Status:         string(inv.Status),
		Currency:       inv.Currency,
		DueDate:        FormatTime(inv.DueDate),
		Items:          items,
		Subtotal:       inv.Subtotal,
		DiscountRate:   inv.DiscountRate,
		DiscountAmount: inv.DiscountAmount,
		Total:          inv.Total,
		CreatedAt:      FormatTime(inv.CreatedAt),
		UpdatedAt:      FormatTime(inv.UpdatedAt),
	}
}

func FromInvoices(list []entities.Invoice) []InvoiceResponse {
	out := make([]InvoiceResponse, 0, len(list))
	for _, inv := range list {
		out = append(out, FromInvoice(inv))
	}
	return out
}

func FromTotals(t finance.Totals, currency string) QuoteResponse {
	return QuoteResponse{
		Subtotal:       t.Subtotal,
		DiscountRate:   t.DiscountRate,
		DiscountAmount: t.DiscountAmount,
		Total:          t.Total,
		Currency:       currency,
		Symbol:         finance.CurrencySymbol(currency),
		Formatted: QuoteFormatted{
			Subtotal:       finance.FormatAmount(t.Subtotal, currency),
			DiscountAmount: finance.FormatAmount(t.DiscountAmount, currency),
			Total:          finance.FormatAmount(t.Total, currency),
		},
	}
}

// FormatTime renders t as RFC3339 with milliseconds in UTC.
func FormatTime(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.UTC().Format("2006-01-02T15:04:05.000Z07:00")
}
