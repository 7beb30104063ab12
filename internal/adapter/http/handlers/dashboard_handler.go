package handlers

import (
	response "invoice_service/internal/adapter/http/dto/response"
	"invoice_service/internal/adapter/http/validation"
	"invoice_service/internal/domain/finance"
	"invoice_service/internal/usecase"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
)

const (
	defaultDashboardDays = 30
	defaultUSDRate       = 1500.0
)

// DashboardHandler serves aggregate views over the invoice list.
type DashboardHandler struct {
	usecase usecase.IDashboardUseCase
}

func NewDashboardHandler(uc usecase.IDashboardUseCase) *DashboardHandler {
	return &DashboardHandler{usecase: uc}
}

// GetSummary godoc
// @Summary      Dashboard summary
// @Description  Revenue, pending amount, monthly income, top services, top clients and recent invoices.
// @Tags         dashboard
// @Produce      json
// @Param        days      query     string  false  "Window in days or \"all\" (default 30)"
// @Param        currency  query     string  false  "NGN or USD (default NGN)"
// @Param        rate      query     number  false  "NGN per USD used when currency=USD (default 1500)"
// @Success      200       {object}  response.DashboardSummaryResponse
// @Failure      400       {object}  pkg.HTTPError
// @Failure      500       {object}  pkg.HTTPError
// @Router       /dashboard/summary [get]
func (h *DashboardHandler) GetSummary(c *gin.Context) {
	q, verr := parseSummaryQuery(c)
	if err := verr.OrNil(); err != nil {
		appErr := mapInvoiceError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	summary, err := h.usecase.Summary(c.Request.Context(), q)
	if err != nil {
		appErr := mapInvoiceError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromDashboardSummary(summary))
}

func parseSummaryQuery(c *gin.Context) (usecase.SummaryQuery, *validation.Error) {
	verr := &validation.Error{}
	q := usecase.SummaryQuery{
		Days:     defaultDashboardDays,
		Currency: finance.CurrencyNGN,
		Rate:     defaultUSDRate,
	}

	if raw := strings.TrimSpace(c.Query("days")); raw != "" {
		if strings.EqualFold(raw, "all") {
			q.Days = 0
		} else if d, err := strconv.Atoi(raw); err == nil && d > 0 {
			q.Days = d
		} else {
			verr.Add("days", `Days must be a positive number or "all"`)
		}
	}

	if raw := strings.ToUpper(strings.TrimSpace(c.Query("currency"))); raw != "" {
		switch raw {
		case finance.CurrencyNGN, finance.CurrencyUSD:
			q.Currency = raw
		default:
			verr.Add("currency", "Currency must be one of: NGN, USD")
		}
	}

	if raw := strings.TrimSpace(c.Query("rate")); raw != "" {
		if r, err := strconv.ParseFloat(raw, 64); err == nil && r > 0 {
			q.Rate = r
		} else {
			verr.Add("rate", "Rate must be positive")
		}
	}
	return q, verr
}
