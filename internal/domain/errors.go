package domain

import "errors"

var (
	ErrNotFound   = errors.New("not found")
	ErrValidation = errors.New("validation failed")

	// ErrTableUnavailable means the table already hosts an open order.
	ErrTableUnavailable = errors.New("table is not available")
	// ErrTableNumberTaken means another table already carries that number.
	ErrTableNumberTaken = errors.New("table number already in use")
	// ErrInvoiceExists means the order was already billed.
	ErrInvoiceExists = errors.New("invoice already exists for this order")
	// ErrInvoiceNumberTaken means the generated invoice number collided;
	// callers retry once with a regenerated number.
	ErrInvoiceNumberTaken = errors.New("invoice number already taken")

	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrAuthRequired       = errors.New("authentication required")
)
