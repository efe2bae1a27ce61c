package planning

import "errors"

// ErrorCode identifies a business-rule failure of a planning operation.
// Codes are stable and surfaced to callers unchanged.
type ErrorCode string

const (
	ErrMandatoryVariantsMissing  ErrorCode = "MANDATORY_VARIANTS_MISSING"
	ErrBudgetTooLowForMandatory  ErrorCode = "BUDGET_TOO_LOW_FOR_MANDATORY"
	ErrMandatoryOutsideWindow    ErrorCode = "MANDATORY_OUTSIDE_WINDOW"
	ErrMandatoryOverlap          ErrorCode = "MANDATORY_OVERLAP"
	ErrBudgetExceeded            ErrorCode = "BUDGET_EXCEEDED"
	ErrMandatoryMissing          ErrorCode = "MANDATORY_MISSING"
	ErrAccommodationNotSpanning  ErrorCode = "ACCOMMODATION_NOT_SPANNING_STAY"
	ErrBudgetTooLowAfterPax      ErrorCode = "BUDGET_TOO_LOW_AFTER_PAX_CHANGE"
	ErrMandatoryVariantNotFound  ErrorCode = "MANDATORY_VARIANT_NOT_FOUND"
	ErrOutsideTravelPeriod       ErrorCode = "OUTSIDE_TRAVEL_PERIOD"
	ErrTimeOverlap               ErrorCode = "TIME_OVERLAP"
)

// Error is a typed business-rule failure. Any Error returned from a planning
// operation aborts the enclosing transaction; partially applied changes are
// never observable.
type Error struct {
	Code    ErrorCode
	Message string
}

func (e *Error) Error() string {
	return string(e.Code) + ": " + e.Message
}

func newError(code ErrorCode, msg string) *Error {
	return &Error{Code: code, Message: msg}
}

// IsCode reports whether err is a planning Error carrying the given code.
func IsCode(err error, code ErrorCode) bool {
	var pe *Error
	return errors.As(err, &pe) && pe.Code == code
}
