package interfaces

import (
	"context"
	"invoice_service/internal/domain/entities"
)

//go:generate mockgen -source=invoice_repository_interface.go -destination=mocks/mock_invoice_repository_interface.go -package=mock_interfaces

// IInvoiceRepository abstracts document-store persistence for Invoice.
//
// Absent records are reported as a zero-value Invoice (ID == "") with a nil
// error. List is the exception to error propagation: implementations log
// storage failures and return an empty list.
type IInvoiceRepository interface {
	List(ctx context.Context) ([]entities.Invoice, error)
	GetByID(ctx context.Context, id string) (entities.Invoice, error)
	Create(ctx context.Context, inv entities.Invoice) (entities.Invoice, error)
	Update(ctx context.Context, id string, patch entities.InvoicePatch) (entities.Invoice, error)
	Delete(ctx context.Context, id string) (entities.Invoice, error)
}
