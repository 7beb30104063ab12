package handlers

import (
	"encoding/json"
	"errors"
	request "invoice_service/internal/adapter/http/dto/request"
	response "invoice_service/internal/adapter/http/dto/response"
	"invoice_service/internal/adapter/http/validation"
	"invoice_service/internal/domain/finance"
	"invoice_service/internal/usecase"
	"invoice_service/pkg"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
)

const msgInvoiceDeleted = "Invoice deleted successfully"

var (
	errInvalidInvoicePayload = pkg.NewDomainErrorSimple("INVALID_INVOICE_PAYLOAD", "Invalid invoice payload", http.StatusBadRequest)
	errInvoiceValidation     = pkg.NewDomainErrorSimple("VALIDATION_ERROR", "Validation error", http.StatusBadRequest)
)

// InvoiceHandler handles HTTP requests for invoices.
type InvoiceHandler struct {
	usecase         usecase.IInvoiceUseCase
	defaultCurrency string
}

func NewInvoiceHandler(uc usecase.IInvoiceUseCase, defaultCurrency string) *InvoiceHandler {
	if defaultCurrency == "" {
		defaultCurrency = finance.CurrencyNGN
	}
	return &InvoiceHandler{usecase: uc, defaultCurrency: defaultCurrency}
}

// ListInvoices godoc
// @Summary      List invoices
// @Description  Returns every invoice, newest first. A storage outage yields an empty list.
// @Tags         invoices
// @Produce      json
// @Param        q    query     string  false  "Case-insensitive match on client name or invoice number"
// @Success      200  {array}   response.InvoiceResponse
// @Failure      500  {object}  pkg.HTTPError
// @Router       /invoices [get]
func (h *InvoiceHandler) ListInvoices(c *gin.Context) {
	invoices, err := h.usecase.List(c.Request.Context(), c.Query("q"))
	if err != nil {
		appErr := mapInvoiceError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromInvoices(invoices))
}

// GetInvoice godoc
// @Summary      Get an invoice
// @Tags         invoices
// @Produce      json
// @Param        id   path      string  true  "Invoice id"
// @Success      200  {object}  response.InvoiceResponse
// @Failure      404  {object}  pkg.HTTPError
// @Failure      500  {object}  pkg.HTTPError
// @Router       /invoices/{id} [get]
func (h *InvoiceHandler) GetInvoice(c *gin.Context) {
	inv, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapInvoiceError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromInvoice(inv))
}

// CreateInvoice godoc
// @Summary      Create an invoice
// @Description  Validates the draft and stores it. Derived totals are taken from the payload unless recomputation is enabled.
// @Tags         invoices
// @Accept       json
// @Produce      json
// @Param        invoice  body      request.InvoiceCreateRequest  true  "Invoice draft"
// @Success      201      {object}  response.InvoiceResponse
// @Failure      400      {object}  pkg.HTTPError
// @Failure      409      {object}  pkg.HTTPError
// @Failure      500      {object}  pkg.HTTPError
// @Router       /invoices [post]
func (h *InvoiceHandler) CreateInvoice(c *gin.Context) {
	var payload request.InvoiceCreateRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		appErr := mapDecodeError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	draft, err := payload.ToDraft()
	if err != nil {
		appErr := mapInvoiceError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	inv, err := h.usecase.Create(c.Request.Context(), draft)
	if err != nil {
		appErr := mapInvoiceError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusCreated, response.FromInvoice(inv))
}

// UpdateInvoice godoc
// @Summary      Update an invoice
// @Description  Replaces only the supplied fields and refreshes updatedAt.
// @Tags         invoices
// @Accept       json
// @Produce      json
// @Param        id       path      string                        true  "Invoice id"
// @Param        invoice  body      request.InvoiceUpdateRequest  true  "Fields to replace"
// @Success      200      {object}  response.InvoiceResponse
// @Failure      400      {object}  pkg.HTTPError
// @Failure      404      {object}  pkg.HTTPError
// @Failure      409      {object}  pkg.HTTPError
// @Failure      500      {object}  pkg.HTTPError
// @Router       /invoices/{id} [put]
func (h *InvoiceHandler) UpdateInvoice(c *gin.Context) {
	var payload request.InvoiceUpdateRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidInvoicePayload.HTTPStatus, errInvalidInvoicePayload.ToHTTPError())
		return
	}

	patch, err := payload.ToPatch()
	if err != nil {
		appErr := mapInvoiceError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	inv, err := h.usecase.Update(c.Request.Context(), c.Param("id"), patch)
	if err != nil {
		appErr := mapInvoiceError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromInvoice(inv))
}

// DeleteInvoice godoc
// @Summary      Delete an invoice
// @Tags         invoices
// @Produce      json
// @Param        id   path      string  true  "Invoice id"
// @Success      200  {object}  response.MessageResponse
// @Failure      404  {object}  pkg.HTTPError
// @Failure      500  {object}  pkg.HTTPError
// @Router       /invoices/{id} [delete]
func (h *InvoiceHandler) DeleteInvoice(c *gin.Context) {
	if _, err := h.usecase.Delete(c.Request.Context(), c.Param("id")); err != nil {
		appErr := mapInvoiceError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.MessageResponse{Message: msgInvoiceDeleted})
}

// QuoteInvoice godoc
// @Summary      Compute invoice totals
// @Description  Runs the financial calculator over the items without storing anything.
// @Tags         invoices
// @Accept       json
// @Produce      json
// @Param        quote  body      request.InvoiceQuoteRequest  true  "Items and discount"
// @Success      200    {object}  response.QuoteResponse
// @Failure      400    {object}  pkg.HTTPError
// @Router       /invoices/quote [post]
func (h *InvoiceHandler) QuoteInvoice(c *gin.Context) {
	var payload request.InvoiceQuoteRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidInvoicePayload.HTTPStatus, errInvalidInvoicePayload.ToHTTPError())
		return
	}

	totals := finance.Compute(payload.ResolveItems(), float64(payload.DiscountRate), payload.ResolveDiscountEnabled())
	c.JSON(http.StatusOK, response.FromTotals(totals, payload.ResolveCurrency(h.defaultCurrency)))
}

// mapDecodeError reports JSON type mismatches as field violations so the
// client can render them next to the input. Malformed JSON stays a
// payload error.
func mapDecodeError(err error) *pkg.AppError {
	var fieldErr *request.FieldDecodeError
	if errors.As(err, &fieldErr) {
		verr := &validation.Error{}
		verr.Add(fieldErr.Field, "Invalid value")
		return errInvoiceValidation.WithDetails(verr.Violations)
	}
	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) && typeErr.Field != "" {
		verr := &validation.Error{}
		verr.Add(typeErr.Field, "Invalid value")
		return errInvoiceValidation.WithDetails(verr.Violations)
	}
	return errInvalidInvoicePayload
}

func mapInvoiceError(err error) *pkg.AppError {
	var verr *validation.Error
	switch {
	case errors.As(err, &verr):
		return errInvoiceValidation.WithDetails(verr.Violations)
	case errors.Is(err, usecase.ErrInvoiceNotFound):
		return pkg.NewDomainErrorSimple("INVOICE_NOT_FOUND", "Invoice not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrDuplicateInvoiceNumber):
		return pkg.NewDomainErrorSimple("DUPLICATE_INVOICE_NUMBER", "Invoice number already exists", http.StatusConflict)
	default:
		log.Printf("[invoice][handler] internal error: %v", err)
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
