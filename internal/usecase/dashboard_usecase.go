package usecase

import (
	"context"
	"invoice_service/internal/domain/entities"
	"invoice_service/internal/domain/finance"
	"invoice_service/internal/usecase/interfaces"
	"sort"
	"time"
)

const (
	dashboardTopN      = 5
	dashboardMonthFmt  = "Jan 2006"
	unnamedServiceName = "Unnamed Service"
)

// SummaryQuery selects the dashboard window and display currency.
//
// Days <= 0 means all time. Rate is a caller-supplied NGN per USD exchange
// rate used for display only.
type SummaryQuery struct {
	Days     int
	Currency string
	Rate     float64
}

type MonthlyRevenue struct {
	Month  string
	Income float64
}

type ServiceIncome struct {
	Service string
	Income  float64
}

type ClientActivity struct {
	ClientName string
	Count      int
	Total      float64
}

type DashboardSummary struct {
	Days     int
	Currency string
	Rate     float64

	TotalRevenue  float64
	PendingAmount float64
	InvoiceCount  int
	ItemCount     int
	PendingCount  int

	MonthlyRevenue []MonthlyRevenue
	TopServices    []ServiceIncome
	TopClients     []ClientActivity
	RecentInvoices []entities.Invoice
}

//go:generate mockgen -source=dashboard_usecase.go -destination=../adapter/http/handlers/mocks/mock_dashboard_usecase.go -package=mocks

type IDashboardUseCase interface {
	Summary(ctx context.Context, q SummaryQuery) (DashboardSummary, error)
}

type DashboardUseCase struct {
	repo interfaces.IInvoiceRepository
	now  func() time.Time
}

var _ IDashboardUseCase = (*DashboardUseCase)(nil)

func NewDashboardUseCase(repo interfaces.IInvoiceRepository) *DashboardUseCase {
	return &DashboardUseCase{repo: repo, now: time.Now}
}

func (u *DashboardUseCase) Summary(ctx context.Context, q SummaryQuery) (DashboardSummary, error) {
	invoices, err := u.repo.List(ctx)
	if err != nil {
		return DashboardSummary{}, err
	}
	if q.Currency == "" {
		q.Currency = finance.CurrencyNGN
	}

	inWindow := invoices
	if q.Days > 0 {
		since := u.now().UTC().AddDate(0, 0, -q.Days)
		inWindow = make([]entities.Invoice, 0, len(invoices))
		for _, inv := range invoices {
			if inv.CreatedAt.After(since) {
				inWindow = append(inWindow, inv)
			}
		}
	}

	convert := func(v float64) float64 { return finance.ConvertAmount(v, q.Currency, q.Rate) }

	s := DashboardSummary{
		Days:         q.Days,
		Currency:     q.Currency,
		Rate:         q.Rate,
		InvoiceCount: len(inWindow),
	}

	monthly := map[time.Time]float64{}
	services := map[string]float64{}
	clients := map[string]*ClientActivity{}

	for _, inv := range inWindow {
		s.ItemCount += len(inv.Items)
		switch inv.Status {
		case entities.InvoiceStatusPaid:
			s.TotalRevenue += inv.Total
		case entities.InvoiceStatusPending:
			s.PendingAmount += inv.Total
			s.PendingCount++
		}

		if !inv.CreatedAt.IsZero() {
			c := inv.CreatedAt.UTC()
			monthly[time.Date(c.Year(), c.Month(), 1, 0, 0, 0, 0, time.UTC)] += inv.Total
		}

		for _, it := range inv.Items {
			name := it.Service
			if name == "" {
				name = unnamedServiceName
			}
			services[name] += it.Price
		}

		ca, ok := clients[inv.ClientName]
		if !ok {
			ca = &ClientActivity{ClientName: inv.ClientName}
			clients[inv.ClientName] = ca
		}
		ca.Count++
		ca.Total += inv.Total
	}

	s.TotalRevenue = convert(s.TotalRevenue)
	s.PendingAmount = convert(s.PendingAmount)

	months := make([]time.Time, 0, len(monthly))
	for m := range monthly {
		months = append(months, m)
	}
	sort.Slice(months, func(i, j int) bool { return months[i].Before(months[j]) })
	s.MonthlyRevenue = make([]MonthlyRevenue, 0, len(months))
	for _, m := range months {
		s.MonthlyRevenue = append(s.MonthlyRevenue, MonthlyRevenue{Month: m.Format(dashboardMonthFmt), Income: convert(monthly[m])})
	}

	s.TopServices = make([]ServiceIncome, 0, len(services))
	for name, income := range services {
		s.TopServices = append(s.TopServices, ServiceIncome{Service: name, Income: convert(income)})
	}
	sort.Slice(s.TopServices, func(i, j int) bool {
		if s.TopServices[i].Income != s.TopServices[j].Income {
			return s.TopServices[i].Income > s.TopServices[j].Income
		}
		return s.TopServices[i].Service < s.TopServices[j].Service
	})
	s.TopServices = truncate(s.TopServices, dashboardTopN)

	s.TopClients = make([]ClientActivity, 0, len(clients))
	for _, ca := range clients {
		s.TopClients = append(s.TopClients, ClientActivity{ClientName: ca.ClientName, Count: ca.Count, Total: convert(ca.Total)})
	}
	sort.Slice(s.TopClients, func(i, j int) bool {
		a, b := s.TopClients[i], s.TopClients[j]
		if a.Count != b.Count {
			return a.Count > b.Count
		}
		if a.Total != b.Total {
			return a.Total > b.Total
		}
		return a.ClientName < b.ClientName
	})
	s.TopClients = truncate(s.TopClients, dashboardTopN)

	recent := append([]entities.Invoice(nil), inWindow...)
	sort.SliceStable(recent, func(i, j int) bool { return recent[i].CreatedAt.After(recent[j].CreatedAt) })
	s.RecentInvoices = truncate(recent, dashboardTopN)

	return s, nil
}

func truncate[T any](s []T, n int) []T {
	if len(s) > n {
		return s[:n]
	}
	return s
}
