package apperrors

import (
	"errors"
	"fmt"
)

// ErrNotFound indicates that a requested resource could not be found or is not visible to the caller.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrForbidden indicates that the caller may not perform the requested action.
var ErrForbidden = errors.New("forbidden")

// ErrUnauthorized indicates that no valid caller identity was supplied.
var ErrUnauthorized = errors.New("unauthorized")

// ErrInsufficientFunds indicates that a balance does not cover the requested debit.
var ErrInsufficientFunds = errors.New("insufficient funds")

// ErrInvalidAmount indicates a non-positive or malformed money amount.
var ErrInvalidAmount = errors.New("invalid amount")

// ErrDepositCapExceeded indicates a deposit above 25% of the client's outstanding work.
var ErrDepositCapExceeded = errors.New("cannot deposit more than 25% of total jobs to pay")

// ErrStoreFailure marks persistence errors that are not otherwise classified.
var ErrStoreFailure = errors.New("store failure")

// AppError carries a status-like code and a message alongside the underlying cause.
type AppError struct {
	Code    int
	Message string
	Err     error
}

// NewAppError builds an AppError. A nil err is allowed.
func NewAppError(code int, message string, err error) *AppError {
	return &AppError{Code: code, Message: message, Err: err}
}

func (e *AppError) Error() string {
	if e.Err == nil {
		return e.Message
	}
	return fmt.Sprintf("%s: %v", e.Message, e.Err)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// Is lets errors.Is(err, ErrStoreFailure) match any 5xx AppError.
func (e *AppError) Is(target error) bool {
	return target == ErrStoreFailure && e.Code >= 500
}

// StoreFailure wraps a persistence error so it is classified as ErrStoreFailure
// while the original error stays reachable through errors.Is/As.
func StoreFailure(message string, err error) error {
	if err == nil {
		return nil
	}
	return NewAppError(500, message, err)
}
