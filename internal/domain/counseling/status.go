package counseling

import "github.com/Mishael-2584/odel-portal-api/internal/httperr"

type Status string

const (
	StatusPending   Status = "pending"
	StatusConfirmed Status = "confirmed"
	StatusCancelled Status = "cancelled"
)

func InitialStatus() Status {
	return StatusPending
}

// IsActive reports whether an appointment in this status occupies its slot.
func IsActive(s Status) bool {
	return s == StatusPending || s == StatusConfirmed
}

// ActiveStatuses is the status set used in slot-uniqueness queries.
func ActiveStatuses() []string {
	return []string{string(StatusPending), string(StatusConfirmed)}
}

func CanConfirm(current Status) error {
	if current != StatusPending {
		return httperr.ErrBusiness(httperr.CodeInvalidState)
	}
	return nil
}

func CanCancel(current Status) error {
	if !IsActive(current) {
		return httperr.ErrBusiness(httperr.CodeInvalidState)
	}
	return nil
}

func CanReschedule(current Status) error {
	if !IsActive(current) {
		return httperr.ErrBusiness(httperr.CodeInvalidState)
	}
	return nil
}
