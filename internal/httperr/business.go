package httperr

import "errors"

// Error codes shared between usecases and handlers.
const (
	CodeSlotTaken           = "slot_taken"
	CodeInvalidState        = "invalid_state"
	CodeMissingReason       = "missing_reason"
	CodeAppointmentNotFound = "appointment_not_found"
	CodeCounselorNotFound   = "counselor_not_found"
	CodeCounselorInactive   = "counselor_inactive"
	CodeInvalidDate         = "invalid_date"
	CodeInvalidTime         = "invalid_time"
	CodeOutsideHours        = "outside_working_hours"
)

type BusinessError struct {
	Code string
}

func (e BusinessError) Error() string {
	return e.Code
}

func ErrBusiness(code string) error {
	return BusinessError{Code: code}
}

func IsBusiness(err error, code string) bool {
	var be BusinessError
	if errors.As(err, &be) {
		return be.Code == code
	}
	return false
}

// BusinessCode extracts the code from a BusinessError, "" for any other error.
func BusinessCode(err error) string {
	var be BusinessError
	if errors.As(err, &be) {
		return be.Code
	}
	return ""
}
