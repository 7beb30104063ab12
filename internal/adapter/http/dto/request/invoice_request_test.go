package request

import (
	"encoding/json"
	"errors"
	"testing"
	"time"

	"invoice_service/internal/adapter/http/validation"
	"invoice_service/internal/domain/entities"
)

func validCreateRequest() InvoiceCreateRequest {
	total := FlexFloat(135)
	rate := FlexFloat(10)
	return InvoiceCreateRequest{
		InvoiceNumber: "101500",
		ClientName:    "Acme",
		DueDate:       "2026-11-30",
		Items: []InvoiceItemRequest{
			{Service: "A", Price: 100},
			{Service: "B", Price: 50},
		},
		DiscountRate: &rate,
		Total:        &total,
	}
}

func TestInvoiceCreateRequest_ToDraft(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		draft, err := validCreateRequest().ToDraft()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if draft.Status != entities.InvoiceStatusPending {
			t.Fatalf("expected pending, got %s", draft.Status)
		}
		if draft.DiscountAmount != nil || draft.DiscountRate != 10 {
			t.Fatalf("unexpected discount fields: %+v", draft)
		}
		if draft.Subtotal != nil || draft.Amount != nil {
			t.Fatalf("expected omitted derived fields to stay nil: %+v", draft)
		}
		if draft.Total == nil || *draft.Total != 135 {
			t.Fatalf("unexpected total: %v", draft.Total)
		}
		want := time.Date(2026, 11, 30, 0, 0, 0, 0, time.UTC)
		if !draft.DueDate.Equal(want) {
			t.Fatalf("unexpected due date: %v", draft.DueDate)
		}
		if len(draft.Items) != 2 || draft.Items[1].Service != "B" {
			t.Fatalf("unexpected items: %+v", draft.Items)
		}
	})

	t.Run("status is lowercased", func(t *testing.T) {
		r := validCreateRequest()
		r.Status = "PAID"
		draft, err := r.ToDraft()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if draft.Status != entities.InvoiceStatusPaid {
			t.Fatalf("expected paid, got %s", draft.Status)
		}
	})

	t.Run("empty email is absent", func(t *testing.T) {
		r := validCreateRequest()
		r.ClientEmail = ""
		if _, err := r.ToDraft(); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	rejections := []struct {
		name   string
		mutate func(r *InvoiceCreateRequest)
		field  string
	}{
		{"empty invoice number", func(r *InvoiceCreateRequest) { r.InvoiceNumber = "  " }, "invoiceNumber"},
		{"empty client name", func(r *InvoiceCreateRequest) { r.ClientName = "" }, "clientName"},
		{"malformed email", func(r *InvoiceCreateRequest) { r.ClientEmail = "nope" }, "clientEmail"},
		{"negative amount", func(r *InvoiceCreateRequest) { v := FlexFloat(-1); r.Amount = &v }, "amount"},
		{"negative total", func(r *InvoiceCreateRequest) { v := FlexFloat(-0.5); r.Total = &v }, "total"},
		{"unknown status", func(r *InvoiceCreateRequest) { r.Status = "draft" }, "status"},
		{"empty due date", func(r *InvoiceCreateRequest) { r.DueDate = "" }, "dueDate"},
		{"malformed due date", func(r *InvoiceCreateRequest) { r.DueDate = "next tuesday" }, "dueDate"},
		{"no items", func(r *InvoiceCreateRequest) { r.Items = nil }, "items"},
		{"empty items", func(r *InvoiceCreateRequest) { r.Items = []InvoiceItemRequest{} }, "items"},
		{"item without service", func(r *InvoiceCreateRequest) { r.Items[0].Service = "" }, "items[0].service"},
		{"item negative price", func(r *InvoiceCreateRequest) { r.Items[1].Price = -2 }, "items[1].price"},
	}
	for _, tc := range rejections {
		t.Run(tc.name, func(t *testing.T) {
			r := validCreateRequest()
			tc.mutate(&r)
			_, err := r.ToDraft()
			var verr *validation.Error
			if !errors.As(err, &verr) {
				t.Fatalf("expected validation error, got %v", err)
			}
			if !verr.Has(tc.field) {
				t.Fatalf("expected violation for %s, got %+v", tc.field, verr.Violations)
			}
		})
	}
}

func TestInvoiceCreateRequest_DecodeCoercesNumericStrings(t *testing.T) {
	body := `{"invoiceNumber":"1","clientName":"Acme","dueDate":"2026-01-01T00:00:00Z","amount":"135.5","total":"135.5","items":[{"service":"A","price":135.5}]}`
	var r InvoiceCreateRequest
	if err := json.Unmarshal([]byte(body), &r); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	draft, err := r.ToDraft()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if *draft.Amount != 135.5 || *draft.Total != 135.5 {
		t.Fatalf("unexpected amounts: %v %v", *draft.Amount, *draft.Total)
	}
}

func TestInvoiceUpdateRequest_ToPatch(t *testing.T) {
	t.Run("only supplied fields", func(t *testing.T) {
		var r InvoiceUpdateRequest
		if err := json.Unmarshal([]byte(`{"status":"paid"}`), &r); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		patch, err := r.ToPatch()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if patch.Status == nil || *patch.Status != entities.InvoiceStatusPaid {
			t.Fatalf("unexpected status: %v", patch.Status)
		}
		patch.Status = nil
		if !patch.IsEmpty() {
			t.Fatalf("expected no other fields: %+v", patch)
		}
	})

	t.Run("no schema rules", func(t *testing.T) {
		var r InvoiceUpdateRequest
		if err := json.Unmarshal([]byte(`{"clientName":"","items":[],"total":-5}`), &r); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		patch, err := r.ToPatch()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if *patch.ClientName != "" || len(*patch.Items) != 0 || *patch.Total != -5 {
			t.Fatalf("unexpected patch: %+v", patch)
		}
	})

	t.Run("unstorable values", func(t *testing.T) {
		status := "archived"
		due := "31/12/2026"
		_, err := InvoiceUpdateRequest{Status: &status, DueDate: &due}.ToPatch()
		var verr *validation.Error
		if !errors.As(err, &verr) || !verr.Has("status") || !verr.Has("dueDate") {
			t.Fatalf("expected status and dueDate violations, got %v", err)
		}
	})

	t.Run("blank invoice number", func(t *testing.T) {
		number := "   "
		_, err := InvoiceUpdateRequest{InvoiceNumber: &number}.ToPatch()
		var verr *validation.Error
		if !errors.As(err, &verr) || !verr.Has("invoiceNumber") {
			t.Fatalf("expected invoiceNumber violation, got %v", err)
		}
	})

	t.Run("invoice number is trimmed", func(t *testing.T) {
		number := " INV-9 "
		patch, err := InvoiceUpdateRequest{InvoiceNumber: &number}.ToPatch()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if *patch.InvoiceNumber != "INV-9" {
			t.Fatalf("unexpected invoice number: %q", *patch.InvoiceNumber)
		}
	})
}

func TestFlexFloat(t *testing.T) {
	var v struct {
		A FlexFloat  `json:"a"`
		B FlexFloat  `json:"b"`
		C *FlexFloat `json:"c"`
	}
	if err := json.Unmarshal([]byte(`{"a":1.5,"b":" 2.25 ","c":null}`), &v); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if v.A != 1.5 || v.B != 2.25 || v.C != nil {
		t.Fatalf("unexpected values: %+v", v)
	}

	err := json.Unmarshal([]byte(`{"a":"abc"}`), &v)
	var typeErr *json.UnmarshalTypeError
	if !errors.As(err, &typeErr) {
		t.Fatalf("expected type error, got %v", err)
	}
	if err := json.Unmarshal([]byte(`{"a":true}`), &v); err == nil {
		t.Fatalf("expected error for bool")
	}
}

func TestParseDueDate(t *testing.T) {
	for _, s := range []string{"2026-03-01", "2026-03-01T10:00:00Z", "2026-03-01T10:00:00.123+01:00", "2026-03-01T10:00"} {
		if _, ok := ParseDueDate(s); !ok {
			t.Fatalf("expected %q to parse", s)
		}
	}
	for _, s := range []string{"", "03/01/2026", "tomorrow"} {
		if _, ok := ParseDueDate(s); ok {
			t.Fatalf("expected %q to be rejected", s)
		}
	}
}

func TestInvoiceQuoteRequest(t *testing.T) {
	r := InvoiceQuoteRequest{DiscountRate: 5}
	if !r.ResolveDiscountEnabled() {
		t.Fatalf("expected discount enabled by positive rate")
	}
	off := false
	r.DiscountEnabled = &off
	if r.ResolveDiscountEnabled() {
		t.Fatalf("expected explicit flag to win")
	}
	if got := r.ResolveCurrency("NGN"); got != "NGN" {
		t.Fatalf("expected default currency, got %s", got)
	}
	r.Currency = "usd"
	if got := r.ResolveCurrency("NGN"); got != "USD" {
		t.Fatalf("expected USD, got %s", got)
	}
}
