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

// ErrInvalidAmount indicates a gross amount that is missing, non-finite, zero or negative.
// It wraps ErrValidation so callers can match either the specific or the general kind.
var ErrInvalidAmount = fmt.Errorf("%w: amount must be a finite number greater than zero", ErrValidation)

// ErrInvalidFederalRate indicates a federal effective rate that is missing, non-finite or
// outside the [0, 1] range.
var ErrInvalidFederalRate = fmt.Errorf("%w: federal rate must be a finite number between 0 and 1", ErrValidation)
