package request

import (
	"encoding/json"
	"errors"
	"fmt"
)

// InvoiceItemsRequest decodes the items list element by element so a type
// mismatch inside an item keeps its index, e.g. items[2].price.
type InvoiceItemsRequest []InvoiceItemRequest

func (l *InvoiceItemsRequest) UnmarshalJSON(data []byte) error {
	var raw []json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	if raw == nil {
		return nil
	}

	items := make(InvoiceItemsRequest, 0, len(raw))
	for i, elem := range raw {
		var it InvoiceItemRequest
		if err := json.Unmarshal(elem, &it); err != nil {
			var typeErr *json.UnmarshalTypeError
			if errors.As(err, &typeErr) {
				path := fmt.Sprintf("items[%d]", i)
				if typeErr.Field != "" {
					path += "." + typeErr.Field
				}
				return &FieldDecodeError{Field: path, Err: err}
			}
			return err
		}
		items = append(items, it)
	}
	*l = items
	return nil
}

// FieldDecodeError is a JSON type mismatch whose field path is already
// final.
type FieldDecodeError struct {
	Field string
	Err   error
}

func (e *FieldDecodeError) Error() string {
	return fmt.Sprintf("json: invalid value for %s: %v", e.Field, e.Err)
}

func (e *FieldDecodeError) Unwrap() error { return e.Err }
