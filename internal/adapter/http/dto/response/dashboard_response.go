package response

import (
	"invoice_service/internal/domain/finance"
	"invoice_service/internal/usecase"
)

type MonthlyRevenueResponse struct {
	Month  string  `json:"month"`
	Income float64 `json:"income"`
}

type ServiceIncomeResponse struct {
	Service string  `json:"service"`
	Income  float64 `json:"income"`
}

type ClientActivityResponse struct {
	ClientName string  `json:"clientName"`
	Count      int     `json:"count"`
	Total      float64 `json:"total"`
}

// DashboardSummaryResponse carries the aggregates in the requested display
// currency. Days is 0 when the window covers all time.
type DashboardSummaryResponse struct {
	Days           int                      `json:"days"`
	Currency       string                   `json:"currency"`
	Symbol         string                   `json:"symbol"`
	Rate           float64                  `json:"rate"`
	TotalRevenue   float64                  `json:"totalRevenue"`
	PendingAmount  float64                  `json:"pendingAmount"`
	InvoiceCount   int                      `json:"invoiceCount"`
	ItemCount      int                      `json:"itemCount"`
	PendingCount   int                      `json:"pendingCount"`
	MonthlyRevenue []MonthlyRevenueResponse `json:"monthlyRevenue"`
	TopServices    []ServiceIncomeResponse  `json:"topServices"`
	TopClients     []ClientActivityResponse `json:"topClients"`
	RecentInvoices []InvoiceResponse        `json:"recentInvoices"`
}

func FromDashboardSummary(s usecase.DashboardSummary) DashboardSummaryResponse {
	monthly := make([]MonthlyRevenueResponse, 0, len(s.MonthlyRevenue))
	for _, m := range s.MonthlyRevenue {
		monthly = append(monthly, MonthlyRevenueResponse{Month: m.Month, Income: finance.RoundAmount(m.Income)})
	}
	services := make([]ServiceIncomeResponse, 0, len(s.TopServices))
	for _, sv := range s.TopServices {
		services = append(services, ServiceIncomeResponse{Service: sv.Service, Income: finance.RoundAmount(sv.Income)})
	}
	clients := make([]ClientActivityResponse, 0, len(s.TopClients))
	for _, c := range s.TopClients {
		clients = append(clients, ClientActivityResponse{ClientName: c.ClientName, Count: c.Count, Total: finance.RoundAmount(c.Total)})
	}

	return DashboardSummaryResponse{
		Days:           s.Days,
		Currency:       s.Currency,
		Symbol:         finance.CurrencySymbol(s.Currency),
		Rate:           s.Rate,
		TotalRevenue:   finance.RoundAmount(s.TotalRevenue),
		PendingAmount:  finance.RoundAmount(s.PendingAmount),
		InvoiceCount:   s.InvoiceCount,
		ItemCount:      s.ItemCount,
		PendingCount:   s.PendingCount,
		MonthlyRevenue: monthly,
		TopServices:    services,
		TopClients:     clients,
		RecentInvoices: FromInvoices(s.RecentInvoices),
	}
}
