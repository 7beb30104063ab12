package request

import (
	"strings"

	"invoice_service/internal/domain/entities"
)

// InvoiceQuoteRequest asks for derived totals without persisting anything.
// Items are not validated: the calculator is lenient by contract.
type InvoiceQuoteRequest struct {
	Items           InvoiceItemsRequest `json:"items"`
	DiscountRate    FlexFloat           `json:"discountRate"`
	DiscountEnabled *bool               `json:"discountEnabled"`
	Currency        string              `json:"currency"`
}

// ResolveDiscountEnabled falls back to "rate > 0" when the flag is omitted.
func (r InvoiceQuoteRequest) ResolveDiscountEnabled() bool {
	if r.DiscountEnabled != nil {
		return *r.DiscountEnabled
	}
	return r.DiscountRate > 0
}

func (r InvoiceQuoteRequest) ResolveItems() []entities.InvoiceItem {
	return toItems(r.Items)
}

func (r InvoiceQuoteRequest) ResolveCurrency(def string) string {
	if c := strings.ToUpper(strings.TrimSpace(r.Currency)); c != "" {
		return c
	}
	return def
}
