package response

import (
	"encoding/json"
	"testing"
	"time"

	"invoice_service/internal/domain/entities"
	"invoice_service/internal/domain/finance"
	"invoice_service/internal/usecase"
)

func TestFromInvoice(t *testing.T) {
	created := time.Date(2024, 3, 1, 10, 30, 0, 0, time.UTC)
	due := time.Date(2024, 3, 31, 0, 0, 0, 0, time.UTC)
	inv := entities.Invoice{
		ID:             "inv-1",
		InvoiceNumber:  "INV-001",
		ClientName:     "Acme",
		Amount:         90,
		Status:         entities.InvoiceStatusPaid,
		Currency:       "NGN",
		DueDate:        due,
		Items:          []entities.InvoiceItem{{Service: "Design", Price: 100}},
		Subtotal:       100,
		DiscountRate:   10,
		DiscountAmount: 10,
		Total:          90,
		CreatedAt:      created,
		UpdatedAt:      created,
	}

	res := FromInvoice(inv)
	if res.ID != "inv-1" || res.InvoiceNumber != "INV-001" || res.Status != "paid" {
		t.Fatalf("unexpected mapped fields: %+v", res)
	}
	if res.DueDate != "2024-03-31T00:00:00.000Z" {
		t.Fatalf("unexpected due date: %s", res.DueDate)
	}
	if res.CreatedAt != "2024-03-01T10:30:00.000Z" || res.UpdatedAt != res.CreatedAt {
		t.Fatalf("unexpected timestamps: %+v", res)
	}
	if len(res.Items) != 1 || res.Items[0].Service != "Design" || res.Items[0].Price != 100 {
		t.Fatalf("unexpected items: %+v", res.Items)
	}
	if res.Subtotal != 100 || res.DiscountAmount != 10 || res.Total != 90 || res.Amount != 90 {
		t.Fatalf("unexpected totals: %+v", res)
	}
}

func TestFromInvoice_EmptyItemsSerializeAsArray(t *testing.T) {
	b, err := json.Marshal(FromInvoice(entities.Invoice{ID: "inv-1"}))
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	var m map[string]any
	if err := json.Unmarshal(b, &m); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	items, ok := m["items"].([]any)
	if !ok || len(items) != 0 {
		t.Fatalf("expected empty items array, got %v", m["items"])
	}
	if m["dueDate"] != "" {
		t.Fatalf("expected empty due date, got %v", m["dueDate"])
	}
}

func TestFromInvoices(t *testing.T) {
	res := FromInvoices(nil)
	if res == nil || len(res) != 0 {
		t.Fatalf("expected empty non-nil slice, got %#v", res)
	}

	res = FromInvoices([]entities.Invoice{{ID: "a"}, {ID: "b"}})
	if len(res) != 2 || res[0].ID != "a" || res[1].ID != "b" {
		t.Fatalf("unexpected order: %+v", res)
	}
}

func TestFromTotals(t *testing.T) {
	res := FromTotals(finance.Totals{Subtotal: 1234.5, DiscountRate: 10, DiscountAmount: 123.45, Total: 1111.05}, "NGN")
	if res.Symbol != "₦" || res.Currency != "NGN" {
		t.Fatalf("unexpected currency fields: %+v", res)
	}
	if res.Formatted.Subtotal != "₦1,234.50" || res.Formatted.DiscountAmount != "₦123.45" || res.Formatted.Total != "₦1,111.05" {
		t.Fatalf("unexpected formatted values: %+v", res.Formatted)
	}

	res = FromTotals(finance.Totals{Subtotal: 10, Total: -5, DiscountAmount: 15}, "USD")
	if res.Symbol != "$" || res.Formatted.Total != "-$5.00" {
		t.Fatalf("unexpected usd formatting: %+v", res)
	}
}

func TestFromDashboardSummary(t *testing.T) {
	s := usecase.DashboardSummary{
		Days:           30,
		Currency:       "USD",
		Rate:           1500,
		TotalRevenue:   1.23456,
		PendingAmount:  2,
		InvoiceCount:   3,
		ItemCount:      4,
		PendingCount:   1,
		MonthlyRevenue: []usecase.MonthlyRevenue{{Month: "Mar 2024", Income: 0.666666}},
		TopServices:    []usecase.ServiceIncome{{Service: "Design", Income: 1.005}},
		TopClients:     []usecase.ClientActivity{{ClientName: "Acme", Count: 2, Total: 3.333}},
		RecentInvoices: []entities.Invoice{{ID: "inv-1"}},
	}

	res := FromDashboardSummary(s)
	if res.Symbol != "$" || res.Days != 30 || res.Rate != 1500 {
		t.Fatalf("unexpected header fields: %+v", res)
	}
	if res.TotalRevenue != 1.23 || res.PendingAmount != 2 {
		t.Fatalf("expected rounded amounts, got %+v", res)
	}
	if len(res.MonthlyRevenue) != 1 || res.MonthlyRevenue[0].Income != 0.67 {
		t.Fatalf("unexpected monthly revenue: %+v", res.MonthlyRevenue)
	}
	if len(res.TopClients) != 1 || res.TopClients[0].Total != 3.33 || res.TopClients[0].Count != 2 {
		t.Fatalf("unexpected clients: %+v", res.TopClients)
	}
	if len(res.RecentInvoices) != 1 || res.RecentInvoices[0].ID != "inv-1" {
		t.Fatalf("unexpected recent invoices: %+v", res.RecentInvoices)
	}
}
