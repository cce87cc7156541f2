package counseling

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/Mishael-2584/odel-portal-api/internal/audit"
	domain "github.com/Mishael-2584/odel-portal-api/internal/domain/counseling"
	"github.com/Mishael-2584/odel-portal-api/internal/httperr"
	"github.com/Mishael-2584/odel-portal-api/internal/meetings"
	"github.com/Mishael-2584/odel-portal-api/internal/models"
	"github.com/Mishael-2584/odel-portal-api/internal/notify"
	"github.com/Mishael-2584/odel-portal-api/internal/timezone"
)

type ConfirmAppointment struct {
	repo     domain.Repository
	meetings meetings.Provider
	notify   *notify.Dispatcher
	audit    *audit.Dispatcher
	timeout  time.Duration
	now      func() time.Time
}

func NewConfirmAppointment(
	repo domain.Repository,
	provider meetings.Provider,
	dispatcher *notify.Dispatcher,
	auditor *audit.Dispatcher,
	sideEffectTimeout time.Duration,
) *ConfirmAppointment {
	return &ConfirmAppointment{
		repo:     repo,
		meetings: provider,
		notify:   dispatcher,
		audit:    auditor,
		timeout:  sideEffectTimeout,
		now:      timezone.Now,
	}
}

// Execute moves a pending appointment to confirmed. Meeting creation is
// best effort: unreachable or unconfigured video provider leaves the
// meeting reference empty and the confirmation still goes through. The
// confirmation email is queued after the write and can never fail it.
func (uc *ConfirmAppointment) Execute(
	ctx context.Context,
	adminID uint,
	appointmentID uint,
) (*models.Appointment, error) {

	ap, err := uc.repo.GetAppointmentByID(ctx, appointmentID)
	if err != nil {
		return nil, httperr.ErrBusiness(httperr.CodeAppointmentNotFound)
	}

	if err := domain.CanConfirm(domain.Status(ap.Status)); err != nil {
		return nil, err
	}

	meeting := uc.createMeeting(ctx, ap)

	if err := domain.Confirm(ap, uc.now(), meeting); err != nil {
		return nil, err
	}

	if err := uc.repo.UpdateAppointment(ctx, ap); err != nil {
		return nil, err
	}

	uc.notify.Dispatch(notify.ConfirmationEmail(ap))

	uc.audit.Dispatch(audit.Event{
		AdminID:  &adminID,
		Action:   "appointment_confirmed",
		Entity:   "appointment",
		EntityID: &ap.ID,
	})

	return ap, nil
}

func (uc *ConfirmAppointment) createMeeting(
	ctx context.Context,
	ap *models.Appointment,
) *domain.MeetingRef {

	if uc.meetings == nil {
		return nil
	}

	start, err := time.ParseInLocation(
		domain.DateLayout+" 15:04",
		ap.AppointmentDate+" "+ap.AppointmentTime,
		timezone.Campus(),
	)
	if err != nil {
		log.Printf("appointment %d has unparseable slot, skipping meeting: %v", ap.ID, err)
		return nil
	}

	mctx, cancel := context.WithTimeout(ctx, uc.timeout)
	defer cancel()

	topic := fmt.Sprintf("Counseling session with %s", ap.StudentName)
	m, err := uc.meetings.CreateMeeting(mctx, topic, start, 60)
	if err != nil {
		log.Printf("meeting creation failed for appointment %d: %v", ap.ID, err)
		return nil
	}

	return &domain.MeetingRef{
		ID:      m.ID,
		JoinURL: m.JoinURL,
		HostURL: m.HostURL,
	}
}
