package routes

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"invoice_service/internal/adapter/http/handlers"
	"invoice_service/internal/adapter/persistence/repository"
	"invoice_service/internal/config"
	"invoice_service/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type invoiceBody struct {
	ID             string  `json:"id"`
	InvoiceNumber  string  `json:"invoiceNumber"`
	ClientName     string  `json:"clientName"`
	Status         string  `json:"status"`
	Subtotal       float64 `json:"subtotal"`
	DiscountRate   float64 `json:"discountRate"`
	DiscountAmount float64 `json:"discountAmount"`
	Total          float64 `json:"total"`
	CreatedAt      string  `json:"createdAt"`
	UpdatedAt      string  `json:"updatedAt"`
}

type errorBody struct {
	Code   string `json:"code"`
	Errors []struct {
		Field string `json:"field"`
	} `json:"errors"`
}

func newTestServer(t *testing.T, recompute bool) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	cfg := &config.Config{BasePath: "/api", RecomputeTotals: recompute, DefaultCurrency: "NGN"}
	repo := repository.NewInvoiceMemoryRepository()
	invoiceUC := usecase.NewInvoiceUseCase(repo, usecase.InvoiceOptions{
		RecomputeTotals: cfg.RecomputeTotals,
		DefaultCurrency: cfg.DefaultCurrency,
	})
	return NewRouter(cfg,
		handlers.NewInvoiceHandler(invoiceUC, cfg.DefaultCurrency),
		handlers.NewDashboardHandler(usecase.NewDashboardUseCase(repo)),
	)
}

func call(r http.Handler, method, path string, body any) *httptest.ResponseRecorder {
	buf := &bytes.Buffer{}
	if body != nil {
		_ = json.NewEncoder(buf).Encode(body)
	}
	req := httptest.NewRequest(method, path, buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func draft(number, client string) map[string]any {
	return map[string]any{
		"invoiceNumber": number,
		"clientName":    client,
		"dueDate":       "2024-06-30",
		"discountRate":  10,
		"items": []map[string]any{
			{"service": "A", "price": 100},
			{"service": "B", "price": 50},
		},
	}
}

func decodeInvoice(t *testing.T, w *httptest.ResponseRecorder) invoiceBody {
	t.Helper()
	var out invoiceBody
	if err := json.Unmarshal(w.Body.Bytes(), &out); err != nil {
		t.Fatalf("decode invoice: %v (%s)", err, w.Body.String())
	}
	return out
}

func TestPing(t *testing.T) {
	r := newTestServer(t, false)
	w := call(r, http.MethodGet, "/api/ping", nil)
	if w.Code != http.StatusOK || !bytes.Contains(w.Body.Bytes(), []byte("pong")) {
		t.Fatalf("unexpected ping response: %d %s", w.Code, w.Body.String())
	}
}

func TestCreateDerivesOmittedTotals(t *testing.T) {
	for _, recompute := range []bool{false, true} {
		r := newTestServer(t, recompute)
		w := call(r, http.MethodPost, "/api/invoices", draft("INV-100", "Acme"))
		if w.Code != http.StatusCreated {
			t.Fatalf("recompute=%v: expected 201, got %d: %s", recompute, w.Code, w.Body.String())
		}
		inv := decodeInvoice(t, w)
		if inv.Subtotal != 150 || inv.DiscountRate != 10 || inv.DiscountAmount != 15 || inv.Total != 135 {
			t.Fatalf("recompute=%v: unexpected totals: %+v", recompute, inv)
		}
	}
}

func TestInvoiceLifecycle(t *testing.T) {
	r := newTestServer(t, true)

	t.Run("create derives totals", func(t *testing.T) {
		w := call(r, http.MethodPost, "/api/invoices", draft("INV-001", "Acme"))
		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
		}
		inv := decodeInvoice(t, w)
		if _, err := uuid.Parse(inv.ID); err != nil {
			t.Fatalf("expected generated uuid, got %q", inv.ID)
		}
		if inv.Subtotal != 150 || inv.DiscountAmount != 15 || inv.Total != 135 {
			t.Fatalf("unexpected totals: %+v", inv)
		}
		if inv.Status != "pending" {
			t.Fatalf("expected default status pending, got %s", inv.Status)
		}
	})

	t.Run("empty items rejected", func(t *testing.T) {
		body := draft("INV-002", "Acme")
		body["items"] = []any{}
		w := call(r, http.MethodPost, "/api/invoices", body)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
		var e errorBody
		_ = json.Unmarshal(w.Body.Bytes(), &e)
		if e.Code != "VALIDATION_ERROR" || len(e.Errors) == 0 || e.Errors[0].Field != "items" {
			t.Fatalf("expected items violation, got %+v", e)
		}
	})

	t.Run("blank client rejected then accepted", func(t *testing.T) {
		w := call(r, http.MethodPost, "/api/invoices", draft("INV-003", ""))
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
		w = call(r, http.MethodPost, "/api/invoices", draft("INV-003", "Acme"))
		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
		}
	})

	t.Run("unknown id is not found", func(t *testing.T) {
		w := call(r, http.MethodGet, "/api/invoices/"+uuid.NewString(), nil)
		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
		w = call(r, http.MethodGet, "/api/invoices/not-a-uuid", nil)
		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404 for malformed id, got %d", w.Code)
		}
	})

	t.Run("status update leaves other fields alone", func(t *testing.T) {
		created := decodeInvoice(t, call(r, http.MethodPost, "/api/invoices", draft("INV-004", "Globex")))
		before := call(r, http.MethodGet, "/api/invoices/"+created.ID, nil)

		time.Sleep(2 * time.Millisecond)
		w := call(r, http.MethodPut, "/api/invoices/"+created.ID, map[string]any{"status": "paid"})
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
		}

		var old, updated map[string]any
		_ = json.Unmarshal(before.Body.Bytes(), &old)
		_ = json.Unmarshal(w.Body.Bytes(), &updated)
		for k, v := range old {
			switch k {
			case "status":
				if updated[k] != "paid" {
					t.Fatalf("expected status paid, got %v", updated[k])
				}
			case "updatedAt":
				if updated[k] == v {
					t.Fatalf("expected updatedAt to change")
				}
			default:
				a, _ := json.Marshal(v)
				b, _ := json.Marshal(updated[k])
				if !bytes.Equal(a, b) {
					t.Fatalf("field %s changed: %s -> %s", k, a, b)
				}
			}
		}
	})

	t.Run("delete twice", func(t *testing.T) {
		created := decodeInvoice(t, call(r, http.MethodPost, "/api/invoices", draft("INV-005", "Initech")))
		if w := call(r, http.MethodDelete, "/api/invoices/"+created.ID, nil); w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		if w := call(r, http.MethodDelete, "/api/invoices/"+created.ID, nil); w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("duplicate number keeps the first invoice", func(t *testing.T) {
		first := decodeInvoice(t, call(r, http.MethodPost, "/api/invoices", draft("INV-006", "Umbrella")))
		w := call(r, http.MethodPost, "/api/invoices", draft("INV-006", "Someone Else"))
		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
		got := decodeInvoice(t, call(r, http.MethodGet, "/api/invoices/"+first.ID, nil))
		if got.ClientName != "Umbrella" || got.InvoiceNumber != "INV-006" {
			t.Fatalf("first invoice changed: %+v", got)
		}
	})

	t.Run("dashboard sees stored invoices", func(t *testing.T) {
		w := call(r, http.MethodGet, "/api/dashboard/summary?days=all", nil)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var summary struct {
			InvoiceCount int `json:"invoiceCount"`
		}
		_ = json.Unmarshal(w.Body.Bytes(), &summary)
		if summary.InvoiceCount != 4 {
			t.Fatalf("expected 4 invoices, got %d", summary.InvoiceCount)
		}
	})
}
