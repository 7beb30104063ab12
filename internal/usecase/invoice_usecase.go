package usecase

import (
	"context"
	"errors"
	"invoice_service/internal/domain/entities"
	"invoice_service/internal/domain/finance"
	"invoice_service/internal/usecase/interfaces"
	"log"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrInvoiceNotFound        = errors.New("invoice not found")
	ErrDuplicateInvoiceNumber = entities.ErrDuplicateInvoiceNumber
)

// totalsTolerance is the allowed drift between stored and derived totals
// before a mismatch is logged.
const totalsTolerance = 0.01

//go:generate mockgen -source=invoice_usecase.go -destination=../adapter/http/handlers/mocks/mock_invoice_usecase.go -package=mocks

// IInvoiceUseCase exposes the invoice CRUD lifecycle.
//
// Ids that are not UUIDs are reported as ErrInvoiceNotFound, never as a
// distinct error.
type IInvoiceUseCase interface {
	List(ctx context.Context, search string) ([]entities.Invoice, error)
	GetByID(ctx context.Context, id string) (entities.Invoice, error)
	Create(ctx context.Context, draft entities.InvoiceDraft) (entities.Invoice, error)
	Update(ctx context.Context, id string, patch entities.InvoicePatch) (entities.Invoice, error)
	Delete(ctx context.Context, id string) (entities.Invoice, error)
}

type InvoiceOptions struct {
	// RecomputeTotals re-derives subtotal, discountAmount and total from
	// items and discountRate instead of trusting the caller.
	RecomputeTotals bool
	DefaultCurrency string
}

type InvoiceUseCase struct {
	repo interfaces.IInvoiceRepository
	opts InvoiceOptions
	now  func() time.Time
}

var _ IInvoiceUseCase = (*InvoiceUseCase)(nil)

func NewInvoiceUseCase(repo interfaces.IInvoiceRepository, opts InvoiceOptions) *InvoiceUseCase {
	if opts.DefaultCurrency == "" {
		opts.DefaultCurrency = finance.CurrencyNGN
	}
	return &InvoiceUseCase{repo: repo, opts: opts, now: time.Now}
}

func (u *InvoiceUseCase) List(ctx context.Context, search string) ([]entities.Invoice, error) {
	invoices, err := u.repo.List(ctx)
	if err != nil {
		return nil, err
	}

	search = strings.ToLower(strings.TrimSpace(search))
	if search == "" {
		return invoices, nil
	}
	filtered := make([]entities.Invoice, 0, len(invoices))
	for _, inv := range invoices {
		if strings.Contains(strings.ToLower(inv.ClientName), search) ||
			strings.Contains(strings.ToLower(inv.InvoiceNumber), search) {
			filtered = append(filtered, inv)
		}
	}
	return filtered, nil
}

func (u *InvoiceUseCase) GetByID(ctx context.Context, id string) (entities.Invoice, error) {
	id, ok := normalizeID(id)
	if !ok {
		return entities.Invoice{}, ErrInvoiceNotFound
	}

	inv, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Invoice{}, err
	}
	if inv.ID == "" {
		return entities.Invoice{}, ErrInvoiceNotFound
	}
	return inv, nil
}

func (u *InvoiceUseCase) Create(ctx context.Context, draft entities.InvoiceDraft) (entities.Invoice, error) {
	log.Printf("[invoice][usecase] create start invoice_number=%s items=%d", draft.InvoiceNumber, len(draft.Items))

	currency := strings.ToUpper(strings.TrimSpace(draft.Currency))
	if currency == "" {
		currency = u.opts.DefaultCurrency
	}
	status := draft.Status
	if status == "" {
		status = entities.InvoiceStatusPending
	}

	now := u.now().UTC()
	inv := entities.Invoice{
		ID:             uuid.NewString(),
		InvoiceNumber:  draft.InvoiceNumber,
		ClientName:     draft.ClientName,
		CompanyName:    draft.CompanyName,
		ClientEmail:    draft.ClientEmail,
		Status:         status,
		Currency:       currency,
		DueDate:        draft.DueDate,
		Items:          append([]entities.InvoiceItem(nil), draft.Items...),
		DiscountRate:   draft.DiscountRate,
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	if u.opts.RecomputeTotals {
		applyTotals(&inv, finance.ComputeForInvoice(inv))
	} else {
		if draft.Subtotal != nil {
			inv.Subtotal = *draft.Subtotal
		} else {
			inv.Subtotal = finance.ComputeSubtotal(inv.Items)
		}
		// An omitted discount follows the rate, as in ComputeForInvoice.
		if draft.DiscountAmount != nil {
			inv.DiscountAmount = *draft.DiscountAmount
		} else {
			inv.DiscountAmount = finance.ComputeDiscountAmount(inv.Subtotal, inv.DiscountRate, inv.DiscountRate > 0)
		}
		if draft.Total != nil {
			inv.Total = *draft.Total
		} else {
			inv.Total = finance.ComputeTotal(inv.Subtotal, inv.DiscountAmount)
		}
		if !finance.Consistent(inv, totalsTolerance) {
			log.Printf("[invoice][usecase] stored totals differ from items invoice_number=%s subtotal=%.2f discount=%.2f total=%.2f",
				inv.InvoiceNumber, inv.Subtotal, inv.DiscountAmount, inv.Total)
		}
	}

	inv.Amount = inv.Total
	if draft.Amount != nil {
		inv.Amount = *draft.Amount
	}

	created, err := u.repo.Create(ctx, inv)
	if err != nil {
		if !errors.Is(err, ErrDuplicateInvoiceNumber) {
			log.Printf("[invoice][usecase] create failed invoice_number=%s err=%v", inv.InvoiceNumber, err)
		}
		return entities.Invoice{}, err
	}
	log.Printf("[invoice][usecase] create success id=%s invoice_number=%s", created.ID, created.InvoiceNumber)
	return created, nil
}

func (u *InvoiceUseCase) Update(ctx context.Context, id string, patch entities.InvoicePatch) (entities.Invoice, error) {
	id, ok := normalizeID(id)
	if !ok {
		return entities.Invoice{}, ErrInvoiceNotFound
	}

	if u.opts.RecomputeTotals && touchesTotals(patch) {
		current, err := u.repo.GetByID(ctx, id)
		if err != nil {
			return entities.Invoice{}, err
		}
		if current.ID == "" {
			return entities.Invoice{}, ErrInvoiceNotFound
		}
		merged := current
		patch.Apply(&merged)
		t := finance.ComputeForInvoice(merged)
		patch.Subtotal = &t.Subtotal
		patch.DiscountAmount = &t.DiscountAmount
		patch.Total = &t.Total
	}

	updated, err := u.repo.Update(ctx, id, patch)
	if err != nil {
		if !errors.Is(err, ErrDuplicateInvoiceNumber) {
			log.Printf("[invoice][usecase] update failed id=%s err=%v", id, err)
		}
		return entities.Invoice{}, err
	}
	if updated.ID == "" {
		return entities.Invoice{}, ErrInvoiceNotFound
	}
	return updated, nil
}

func (u *InvoiceUseCase) Delete(ctx context.Context, id string) (entities.Invoice, error) {
	id, ok := normalizeID(id)
	if !ok {
		return entities.Invoice{}, ErrInvoiceNotFound
	}

	deleted, err := u.repo.Delete(ctx, id)
	if err != nil {
		log.Printf("[invoice][usecase] delete failed id=%s err=%v", id, err)
		return entities.Invoice{}, err
	}
	if deleted.ID == "" {
		return entities.Invoice{}, ErrInvoiceNotFound
	}
	log.Printf("[invoice][usecase] delete success id=%s invoice_number=%s", deleted.ID, deleted.InvoiceNumber)
	return deleted, nil
}

func normalizeID(id string) (string, bool) {
	id = strings.TrimSpace(id)
	parsed, err := uuid.Parse(id)
	if err != nil {
		return "", false
	}
	return parsed.String(), true
}

func touchesTotals(p entities.InvoicePatch) bool {
	return p.Items != nil || p.DiscountRate != nil || p.Subtotal != nil || p.DiscountAmount != nil || p.Total != nil
}

func applyTotals(inv *entities.Invoice, t finance.Totals) {
	inv.Subtotal = t.Subtotal
	inv.DiscountRate = t.DiscountRate
	inv.DiscountAmount = t.DiscountAmount
	inv.Total = t.Total
}
