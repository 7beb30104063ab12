package request

import (
	"strings"
	"time"

	"invoice_service/internal/adapter/http/validation"
	"invoice_service/internal/domain/entities"
)

var dueDateLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02",
}

type InvoiceItemRequest struct {
	Service     string    `json:"service" validate:"required"`
	Description string    `json:"description"`
	Price       FlexFloat `json:"price" validate:"gte=0"`
}

// InvoiceCreateRequest is the create-draft payload. Validation only applies
// here; updates go through InvoiceUpdateRequest.
type InvoiceCreateRequest struct {
	InvoiceNumber  string              `json:"invoiceNumber" validate:"required"`
	ClientName     string              `json:"clientName" validate:"required"`
	CompanyName    string              `json:"companyName"`
	ClientEmail    string              `json:"clientEmail" validate:"omitempty,email"`
	Amount         *FlexFloat          `json:"amount" validate:"omitempty,gte=0"`
	Status         string              `json:"status" validate:"omitempty,oneof=pending paid overdue"`
	DueDate        string              `json:"dueDate" validate:"required"`
	Currency       string              `json:"currency"`
	Items          InvoiceItemsRequest `json:"items" validate:"min=1,dive"`
	Subtotal       *FlexFloat          `json:"subtotal"`
	DiscountRate   *FlexFloat          `json:"discountRate"`
	DiscountAmount *FlexFloat          `json:"discountAmount"`
	Total          *FlexFloat          `json:"total" validate:"omitempty,gte=0"`
}

func (r *InvoiceCreateRequest) normalize() {
	r.InvoiceNumber = strings.TrimSpace(r.InvoiceNumber)
	r.ClientName = strings.TrimSpace(r.ClientName)
	r.CompanyName = strings.TrimSpace(r.CompanyName)
	r.ClientEmail = strings.TrimSpace(r.ClientEmail)
	r.Status = strings.ToLower(strings.TrimSpace(r.Status))
	r.DueDate = strings.TrimSpace(r.DueDate)
	r.Currency = strings.ToUpper(strings.TrimSpace(r.Currency))
	for i := range r.Items {
		r.Items[i].Service = strings.TrimSpace(r.Items[i].Service)
	}
}

// ToDraft validates the payload and returns the draft to persist. On
// failure the error is a *validation.Error listing every rejected field.
func (r InvoiceCreateRequest) ToDraft() (entities.InvoiceDraft, error) {
	r.normalize()

	verr := validation.Check(r)
	due, ok := ParseDueDate(r.DueDate)
	if r.DueDate != "" && !ok {
		verr.Add("dueDate", "Invalid due date")
	}
	if err := verr.OrNil(); err != nil {
		return entities.InvoiceDraft{}, err
	}

	status := entities.InvoiceStatusPending
	if r.Status != "" {
		status = entities.InvoiceStatus(r.Status)
	}

	draft := entities.InvoiceDraft{
		InvoiceNumber: r.InvoiceNumber,
		ClientName:    r.ClientName,
		CompanyName:   r.CompanyName,
		ClientEmail:   r.ClientEmail,
		Status:        status,
		Currency:      r.Currency,
		DueDate:       due,
		Items:         toItems(r.Items),
		Amount:         r.Amount.Float64Ptr(),
		Subtotal:       r.Subtotal.Float64Ptr(),
		DiscountAmount: r.DiscountAmount.Float64Ptr(),
		Total:          r.Total.Float64Ptr(),
	}
	if r.DiscountRate != nil {
		draft.DiscountRate = float64(*r.DiscountRate)
	}
	return draft, nil
}

// InvoiceUpdateRequest carries any subset of invoice fields. No schema
// rules apply; only values that cannot be stored are rejected (a blank
// invoiceNumber, an unparseable dueDate or a status outside the enum).
type InvoiceUpdateRequest struct {
	InvoiceNumber  *string              `json:"invoiceNumber"`
	ClientName     *string              `json:"clientName"`
	CompanyName    *string              `json:"companyName"`
	ClientEmail    *string              `json:"clientEmail"`
	Amount         *FlexFloat           `json:"amount"`
	Status         *string              `json:"status"`
	DueDate        *string              `json:"dueDate"`
	Currency       *string              `json:"currency"`
	Items          *InvoiceItemsRequest `json:"items"`
	Subtotal       *FlexFloat           `json:"subtotal"`
	DiscountRate   *FlexFloat           `json:"discountRate"`
	DiscountAmount *FlexFloat           `json:"discountAmount"`
	Total          *FlexFloat           `json:"total"`
}

func (r InvoiceUpdateRequest) ToPatch() (entities.InvoicePatch, error) {
	verr := &validation.Error{}
	patch := entities.InvoicePatch{
		InvoiceNumber:  r.InvoiceNumber,
		ClientName:     r.ClientName,
		CompanyName:    r.CompanyName,
		ClientEmail:    r.ClientEmail,
		Currency:       r.Currency,
		Amount:         r.Amount.Float64Ptr(),
		Subtotal:       r.Subtotal.Float64Ptr(),
		DiscountRate:   r.DiscountRate.Float64Ptr(),
		DiscountAmount: r.DiscountAmount.Float64Ptr(),
		Total:          r.Total.Float64Ptr(),
	}

	// The number is the uniqueness key and cannot be cleared.
	if r.InvoiceNumber != nil {
		number := strings.TrimSpace(*r.InvoiceNumber)
		if number == "" {
			verr.Add("invoiceNumber", "Invoice number is required")
		}
		patch.InvoiceNumber = &number
	}
	if r.Status != nil {
		st, ok := entities.ParseInvoiceStatus(*r.Status)
		if !ok {
			verr.Add("status", "Status must be one of: pending, paid, overdue")
		}
		patch.Status = &st
	}
	if r.DueDate != nil {
		due, ok := ParseDueDate(strings.TrimSpace(*r.DueDate))
		if !ok {
			verr.Add("dueDate", "Invalid due date")
		}
		patch.DueDate = &due
	}
	if r.Items != nil {
		items := toItems(*r.Items)
		patch.Items = &items
	}

	if err := verr.OrNil(); err != nil {
		return entities.InvoicePatch{}, err
	}
	return patch, nil
}

// ParseDueDate accepts ISO-8601 date or date-time strings.
func ParseDueDate(s string) (time.Time, bool) {
	if s == "" {
		return time.Time{}, false
	}
	for _, layout := range dueDateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.UTC(), true
		}
	}
	return time.Time{}, false
}

func toItems(in []InvoiceItemRequest) []entities.InvoiceItem {
	items := make([]entities.InvoiceItem, 0, len(in))
	for _, it := range in {
		items = append(items, entities.InvoiceItem{
			Service:     it.Service,
			Description: it.Description,
			Price:       float64(it.Price),
		})
	}
	return items
}
