package entities

import "errors"

// ErrDuplicateInvoiceNumber is returned by repositories when the
// invoiceNumber uniqueness constraint rejects a write.
var ErrDuplicateInvoiceNumber = errors.New("invoice number already exists")
