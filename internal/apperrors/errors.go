package apperrors

import (
	"errors"
	"fmt"
)

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrDuplicate indicates that an attempt was made to create a resource that already exists.
var ErrDuplicate = errors.New("resource already exists")

// ErrConflict indicates that the operation conflicts with the current state of the resource.
var ErrConflict = errors.New("conflict with current state")

// ErrInternal indicates an unexpected internal failure.
var ErrInternal = errors.New("internal error")

// Accounting-specific error variants. Each wraps one of the generic
// sentinels above so handlers can map them to HTTP statuses with errors.Is
// while services can still distinguish the exact failure.
var (
	// ErrUnbalancedVoucher indicates debits and credits do not match within tolerance.
	ErrUnbalancedVoucher = fmt.Errorf("%w: voucher debits and credits are not balanced", ErrValidation)

	// ErrAlreadyPosted indicates an attempt to post a voucher that is already posted.
	ErrAlreadyPosted = fmt.Errorf("%w: voucher is already posted", ErrConflict)

	// ErrVoucherCancelled indicates an operation on a cancelled voucher.
	ErrVoucherCancelled = fmt.Errorf("%w: voucher is cancelled", ErrConflict)

	// ErrVoucherNotDraft indicates a mutation attempted on a non-draft voucher.
	ErrVoucherNotDraft = fmt.Errorf("%w: voucher is not in draft status", ErrConflict)

	// ErrAccountNotFound indicates a required ledger account is missing from the chart.
	ErrAccountNotFound = fmt.Errorf("%w: required account not found in chart of accounts", ErrNotFound)

	// ErrAccountInactive indicates an entry references a deactivated account.
	ErrAccountInactive = fmt.Errorf("%w: account is inactive", ErrValidation)

	// ErrSequenceConflict indicates the voucher number sequence update lost a concurrent race.
	ErrSequenceConflict = fmt.Errorf("%w: voucher sequence update conflict", ErrConflict)

	// ErrStepAlreadyRecorded indicates a GRN workflow step was already completed.
	ErrStepAlreadyRecorded = fmt.Errorf("%w: workflow step already recorded", ErrConflict)
)

// AppError carries an HTTP-ish status code alongside the wrapped cause.
type AppError struct {
	Code    int
	Message string
	Err     error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// NewAppError creates a generic AppError wrapping an underlying cause.
func NewAppError(code int, message string, err error) *AppError {
	return &AppError{Code: code, Message: message, Err: err}
}

// NewNotFoundError creates an AppError that satisfies errors.Is(err, ErrNotFound).
func NewNotFoundError(message string) *AppError {
	return &AppError{Code: 404, Message: message, Err: ErrNotFound}
}

// NewValidationError creates an AppError that satisfies errors.Is(err, ErrValidation).
func NewValidationError(message string) *AppError {
	return &AppError{Code: 400, Message: message, Err: ErrValidation}
}
