package domain

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

// Domain sentinel errors. Handlers map these to HTTP statuses.
var (
	ErrNotFound          = errors.New("resource not found")
	ErrInvalidInput      = errors.New("invalid input")
	ErrDuplicate         = errors.New("duplicate resource")
	ErrForbidden         = errors.New("access denied")
	ErrConflict          = errors.New("conflict with current state")
	ErrInsufficientStock = errors.New("insufficient stock")
	ErrInvalidModule     = errors.New("unknown production module")
	ErrAlreadyDisposed   = errors.New("scrap already disposed")
)

// InsufficientStockError carries the available and requested amounts so the
// caller can show an actionable message. Matches ErrInsufficientStock via
// errors.Is.
type InsufficientStockError struct {
	Available decimal.Decimal
	Requested decimal.Decimal
}

func (e *InsufficientStockError) Error() string {
	return fmt.Sprintf("insufficient stock: available %s, requested %s", e.Available, e.Requested)
}

func (e *InsufficientStockError) Is(target error) bool {
	return target == ErrInsufficientStock
}

// InvalidModuleError reports an unknown pipeline stage identifier.
// Matches ErrInvalidModule via errors.Is.
type InvalidModuleError struct {
	Module string
}

func (e *InvalidModuleError) Error() string {
	return fmt.Sprintf("unknown production module %q", e.Module)
}

func (e *InvalidModuleError) Is(target error) bool {
	return target == ErrInvalidModule
}
