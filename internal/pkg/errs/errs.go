package errs

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors used as the unwrap targets for every error type in this package.
// Callers classify failures with errors.Is against these values.
var (
	ErrObjectNotFound    = errors.New("object not found")
	ErrValueIsInvalid    = errors.New("value is invalid")
	ErrValueIsOutOfRange = errors.New("value is out of range")
	ErrValueIsRequired   = errors.New("value is required")
	ErrVersionIsInvalid  = errors.New("version is invalid")
	ErrConcurrentUpdate  = errors.New("concurrent update conflict")
	ErrStateMismatch     = errors.New("state mismatch")
	ErrInsufficientStock = errors.New("insufficient stock")
)

// sanitize strips line breaks from values interpolated into error messages
// so a single error always renders as a single log line.
func sanitize(s string) string {
	s = strings.ReplaceAll(s, "\r", " ")
	return strings.ReplaceAll(s, "\n", " ")
}

// ObjectNotFoundError indicates that a referenced object does not exist.
type ObjectNotFoundError struct {
	ParamName string
	ID        any
	Cause     error
}

// NewObjectNotFoundError creates an ObjectNotFoundError without an underlying cause.
func NewObjectNotFoundError(paramName string, id any) *ObjectNotFoundError {
	return &ObjectNotFoundError{ParamName: paramName, ID: id}
}

// NewObjectNotFoundErrorWithCause creates an ObjectNotFoundError wrapping an underlying cause.
func NewObjectNotFoundErrorWithCause(paramName string, id any, cause error) *ObjectNotFoundError {
	return &ObjectNotFoundError{ParamName: paramName, ID: id, Cause: cause}
}

func (e *ObjectNotFoundError) Error() string {
	if e.Cause != nil {
		return sanitize(fmt.Sprintf("%s: param is: %s, ID is: %s (cause: %s)",
			ErrObjectNotFound, e.ParamName, e.ID, e.Cause))
	}
	return sanitize(fmt.Sprintf("%s: %s", ErrObjectNotFound, e.ID))
}

func (e *ObjectNotFoundError) Unwrap() error {
	return ErrObjectNotFound
}

// ValueIsInvalidError indicates that a supplied value failed validation.
type ValueIsInvalidError struct {
	ParamName string
	Cause     error
}

// NewValueIsInvalidError creates a ValueIsInvalidError without an underlying cause.
func NewValueIsInvalidError(paramName string) *ValueIsInvalidError {
	return &ValueIsInvalidError{ParamName: paramName}
}

// NewValueIsInvalidErrorWithCause creates a ValueIsInvalidError wrapping an underlying cause.
func NewValueIsInvalidErrorWithCause(paramName string, cause error) *ValueIsInvalidError {
	return &ValueIsInvalidError{ParamName: paramName, Cause: cause}
}

func (e *ValueIsInvalidError) Error() string {
	if e.Cause != nil {
		return sanitize(fmt.Sprintf("%s: %s (cause: %s)", ErrValueIsInvalid, e.ParamName, e.Cause))
	}
	return sanitize(fmt.Sprintf("%s: %s", ErrValueIsInvalid, e.ParamName))
}

func (e *ValueIsInvalidError) Unwrap() error {
	return ErrValueIsInvalid
}

// ValueIsOutOfRangeError indicates that a numeric value is outside its allowed bounds.
type ValueIsOutOfRangeError struct {
	ParamName string
	Value     any
	Min       any
	Max       any
	Cause     error
}

// NewValueIsOutOfRangeError creates a ValueIsOutOfRangeError without an underlying cause.
func NewValueIsOutOfRangeError(paramName string, value, minValue, maxValue any) *ValueIsOutOfRangeError {
	return &ValueIsOutOfRangeError{ParamName: paramName, Value: value, Min: minValue, Max: maxValue}
}

// NewValueIsOutOfRangeErrorWithCause creates a ValueIsOutOfRangeError wrapping an underlying cause.
func NewValueIsOutOfRangeErrorWithCause(paramName string, value, minValue, maxValue any, cause error) *ValueIsOutOfRangeError {
	return &ValueIsOutOfRangeError{ParamName: paramName, Value: value, Min: minValue, Max: maxValue, Cause: cause}
}

func (e *ValueIsOutOfRangeError) Error() string {
	if e.Cause != nil {
		return sanitize(fmt.Sprintf("%s: %v is %s, min value is %v, max value is %v (cause: %s)",
			ErrValueIsInvalid, e.Value, e.ParamName, e.Min, e.Max, e.Cause))
	}
	return sanitize(fmt.Sprintf("%s: %v is %s, min value is %v, max value is %v",
		ErrValueIsInvalid, e.Value, e.ParamName, e.Min, e.Max))
}

func (e *ValueIsOutOfRangeError) Unwrap() error {
	return ErrValueIsOutOfRange
}

// ValueIsRequiredError indicates that a required value is missing.
type ValueIsRequiredError struct {
	ParamName string
	Cause     error
}

// NewValueIsRequiredError creates a ValueIsRequiredError without an underlying cause.
func NewValueIsRequiredError(paramName string) *ValueIsRequiredError {
	return &ValueIsRequiredError{ParamName: paramName}
}

// NewValueIsRequiredErrorWithCause creates a ValueIsRequiredError wrapping an underlying cause.
func NewValueIsRequiredErrorWithCause(paramName string, cause error) *ValueIsRequiredError {
	return &ValueIsRequiredError{ParamName: paramName, Cause: cause}
}

func (e *ValueIsRequiredError) Error() string {
	if e.Cause != nil {
		return sanitize(fmt.Sprintf("%s: %s (cause: %s)", ErrValueIsRequired, e.ParamName, e.Cause))
	}
	return sanitize(fmt.Sprintf("%s: %s", ErrValueIsRequired, e.ParamName))
}

func (e *ValueIsRequiredError) Unwrap() error {
	return ErrValueIsRequired
}

// VersionIsInvalidError indicates that an aggregate version value is not usable.
type VersionIsInvalidError struct {
	ParamName string
	Cause     error
}

// NewVersionIsInvalidError creates a VersionIsInvalidError without an underlying cause.
func NewVersionIsInvalidError(paramName string) *VersionIsInvalidError {
	return &VersionIsInvalidError{ParamName: paramName}
}

// NewVersionIsInvalidErrorWithCause creates a VersionIsInvalidError wrapping an underlying cause.
func NewVersionIsInvalidErrorWithCause(paramName string, cause error) *VersionIsInvalidError {
	return &VersionIsInvalidError{ParamName: paramName, Cause: cause}
}

func (e *VersionIsInvalidError) Error() string {
	if e.Cause != nil {
		return sanitize(fmt.Sprintf("%s: %s (cause: %s)", ErrVersionIsInvalid, e.ParamName, e.Cause))
	}
	return sanitize(fmt.Sprintf("%s: %s", ErrVersionIsInvalid, e.ParamName))
}

func (e *VersionIsInvalidError) Unwrap() error {
	return ErrVersionIsInvalid
}

// ConcurrentUpdateError indicates that an optimistic write lost a race against a
// concurrent update of the same object. The losing caller may safely retry.
type ConcurrentUpdateError struct {
	ParamName string
	ID        any
	Cause     error
}

// NewConcurrentUpdateError creates a ConcurrentUpdateError without an underlying cause.
func NewConcurrentUpdateError(paramName string, id any) *ConcurrentUpdateError {
	return &ConcurrentUpdateError{ParamName: paramName, ID: id}
}

// NewConcurrentUpdateErrorWithCause creates a ConcurrentUpdateError wrapping an underlying cause.
func NewConcurrentUpdateErrorWithCause(paramName string, id any, cause error) *ConcurrentUpdateError {
	return &ConcurrentUpdateError{ParamName: paramName, ID: id, Cause: cause}
}

func (e *ConcurrentUpdateError) Error() string {
	if e.Cause != nil {
		return sanitize(fmt.Sprintf("%s: param is: %s, ID is: %s (cause: %s)",
			ErrConcurrentUpdate, e.ParamName, e.ID, e.Cause))
	}
	return sanitize(fmt.Sprintf("%s: %s", ErrConcurrentUpdate, e.ID))
}

func (e *ConcurrentUpdateError) Unwrap() error {
	return ErrConcurrentUpdate
}

// StateMismatchError indicates a data-integrity fault: stored state contradicts
// what the requested operation assumes. Retrying cannot succeed without operator
// intervention, so this error must be surfaced rather than swallowed.
type StateMismatchError struct {
	ParamName string
	Cause     error
}

// NewStateMismatchError creates a StateMismatchError without an underlying cause.
func NewStateMismatchError(paramName string) *StateMismatchError {
	return &StateMismatchError{ParamName: paramName}
}

// NewStateMismatchErrorWithCause creates a StateMismatchError wrapping an underlying cause.
func NewStateMismatchErrorWithCause(paramName string, cause error) *StateMismatchError {
	return &StateMismatchError{ParamName: paramName, Cause: cause}
}

func (e *StateMismatchError) Error() string {
	if e.Cause != nil {
		return sanitize(fmt.Sprintf("%s: %s (cause: %s)", ErrStateMismatch, e.ParamName, e.Cause))
	}
	return sanitize(fmt.Sprintf("%s: %s", ErrStateMismatch, e.ParamName))
}

func (e *StateMismatchError) Unwrap() error {
	return ErrStateMismatch
}

// InsufficientStockError indicates that a stock delta would drive a quantity
// below zero. Unlike a state mismatch this is not a data-integrity fault:
// the ledger is consistent, it just cannot absorb the requested delta right
// now, and the same request may succeed after stock is restored.
type InsufficientStockError struct {
	ParamName string
	Cause     error
}

// NewInsufficientStockError creates an InsufficientStockError without an underlying cause.
func NewInsufficientStockError(paramName string) *InsufficientStockError {
	return &InsufficientStockError{ParamName: paramName}
}

// NewInsufficientStockErrorWithCause creates an InsufficientStockError wrapping an underlying cause.
func NewInsufficientStockErrorWithCause(paramName string, cause error) *InsufficientStockError {
	return &InsufficientStockError{ParamName: paramName, Cause: cause}
}

func (e *InsufficientStockError) Error() string {
	if e.Cause != nil {
		return sanitize(fmt.Sprintf("%s: %s (cause: %s)", ErrInsufficientStock, e.ParamName, e.Cause))
	}
	return sanitize(fmt.Sprintf("%s: %s", ErrInsufficientStock, e.ParamName))
}

func (e *InsufficientStockError) Unwrap() error {
	return ErrInsufficientStock
}
