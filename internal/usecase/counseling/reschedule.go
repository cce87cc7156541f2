package counseling

import (
	"context"
	"regexp"
	"time"

	"github.com/Mishael-2584/odel-portal-api/internal/audit"
	domain "github.com/Mishael-2584/odel-portal-api/internal/domain/counseling"
	"github.com/Mishael-2584/odel-portal-api/internal/httperr"
	"github.com/Mishael-2584/odel-portal-api/internal/models"
	"github.com/Mishael-2584/odel-portal-api/internal/notify"
	"github.com/Mishael-2584/odel-portal-api/internal/timezone"
)

var timePattern = regexp.MustCompile(`^([01][0-9]|2[0-3]):[0-5][0-9]$`)

type RescheduleAppointmentInput struct {
	AppointmentID uint
	NewDate       string
	NewTime       string
	Reason        string
}

type RescheduleAppointment struct {
	repo   domain.Repository
	notify *notify.Dispatcher
	audit  *audit.Dispatcher
}

func NewRescheduleAppointment(
	repo domain.Repository,
	dispatcher *notify.Dispatcher,
	auditor *audit.Dispatcher,
) *RescheduleAppointment {
	return &RescheduleAppointment{
		repo:   repo,
		notify: dispatcher,
		audit:  auditor,
	}
}

// Execute moves an appointment to a new slot and resets it to pending. The
// target slot check excludes the appointment's own id, so rescheduling to
// the same slot is a no-op rather than a conflict. On a lost race the
// appointment is left untouched.
func (uc *RescheduleAppointment) Execute(
	ctx context.Context,
	adminID uint,
	in RescheduleAppointmentInput,
) (*models.Appointment, error) {

	if _, err := time.ParseInLocation(domain.DateLayout, in.NewDate, timezone.Campus()); err != nil {
		return nil, httperr.ErrBusiness(httperr.CodeInvalidDate)
	}
	if !timePattern.MatchString(in.NewTime) {
		return nil, httperr.ErrBusiness(httperr.CodeInvalidTime)
	}

	ap, err := uc.repo.GetAppointmentByID(ctx, in.AppointmentID)
	if err != nil {
		return nil, httperr.ErrBusiness(httperr.CodeAppointmentNotFound)
	}

	oldDate := ap.AppointmentDate
	oldTime := ap.AppointmentTime

	if err := domain.Reschedule(ap, in.NewDate, in.NewTime); err != nil {
		return nil, err
	}

	if err := uc.repo.MoveAppointment(ctx, ap); err != nil {
		return nil, err
	}

	uc.notify.Dispatch(notify.RescheduleEmail(ap, oldDate, oldTime))

	uc.audit.Dispatch(audit.Event{
		AdminID:  &adminID,
		Action:   "appointment_rescheduled",
		Entity:   "appointment",
		EntityID: &ap.ID,
		Metadata: map[string]any{
			"from_date": oldDate,
			"from_time": oldTime,
			"to_date":   in.NewDate,
			"to_time":   in.NewTime,
			"reason":    in.Reason,
		},
	})

	return ap, nil
}
