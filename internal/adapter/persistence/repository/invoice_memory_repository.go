package repository

import (
	"context"
	"sync"
	"time"

	"invoice_service/internal/domain/entities"
	"invoice_service/internal/usecase/interfaces"
)

// InvoiceMemoryRepository keeps invoices in process memory with the same
// contract as InvoiceDynamoRepository. Used for local runs and tests.
type InvoiceMemoryRepository struct {
	mu       sync.RWMutex
	invoices map[string]entities.Invoice
	numbers  map[string]string
	now      func() time.Time
}

var _ interfaces.IInvoiceRepository = (*InvoiceMemoryRepository)(nil)

func NewInvoiceMemoryRepository() *InvoiceMemoryRepository {
	return &InvoiceMemoryRepository{
		invoices: map[string]entities.Invoice{},
		numbers:  map[string]string{},
		now:      time.Now,
	}
}

func (r *InvoiceMemoryRepository) List(_ context.Context) ([]entities.Invoice, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]entities.Invoice, 0, len(r.invoices))
	for _, inv := range r.invoices {
		out = append(out, cloneInvoice(inv))
	}
	sortNewestFirst(out)
	return out, nil
}

func (r *InvoiceMemoryRepository) GetByID(_ context.Context, id string) (entities.Invoice, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	inv, ok := r.invoices[id]
	if !ok {
		return entities.Invoice{}, nil
	}
	return cloneInvoice(inv), nil
}

func (r *InvoiceMemoryRepository) Create(_ context.Context, inv entities.Invoice) (entities.Invoice, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, taken := r.numbers[inv.InvoiceNumber]; taken {
		return entities.Invoice{}, entities.ErrDuplicateInvoiceNumber
	}
	r.invoices[inv.ID] = cloneInvoice(inv)
	r.numbers[inv.InvoiceNumber] = inv.ID
	return cloneInvoice(inv), nil
}

func (r *InvoiceMemoryRepository) Update(_ context.Context, id string, patch entities.InvoicePatch) (entities.Invoice, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	current, ok := r.invoices[id]
	if !ok {
		return entities.Invoice{}, nil
	}
	if patch.InvoiceNumber != nil && *patch.InvoiceNumber != current.InvoiceNumber {
		if owner, taken := r.numbers[*patch.InvoiceNumber]; taken && owner != id {
			return entities.Invoice{}, entities.ErrDuplicateInvoiceNumber
		}
		delete(r.numbers, current.InvoiceNumber)
		r.numbers[*patch.InvoiceNumber] = id
	}

	patch.Apply(&current)
	current.UpdatedAt = r.now().UTC()
	r.invoices[id] = current
	return cloneInvoice(current), nil
}

func (r *InvoiceMemoryRepository) Delete(_ context.Context, id string) (entities.Invoice, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	current, ok := r.invoices[id]
	if !ok {
		return entities.Invoice{}, nil
	}
	delete(r.invoices, id)
	if r.numbers[current.InvoiceNumber] == id {
		delete(r.numbers, current.InvoiceNumber)
	}
	return current, nil
}

func cloneInvoice(inv entities.Invoice) entities.Invoice {
	inv.Items = append([]entities.InvoiceItem{}, inv.Items...)
	return inv
}
