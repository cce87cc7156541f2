package counseling

import (
	"context"
	"time"

	"github.com/Mishael-2584/odel-portal-api/internal/audit"
	domain "github.com/Mishael-2584/odel-portal-api/internal/domain/counseling"
	"github.com/Mishael-2584/odel-portal-api/internal/httperr"
	"github.com/Mishael-2584/odel-portal-api/internal/models"
	"github.com/Mishael-2584/odel-portal-api/internal/notify"
	"github.com/Mishael-2584/odel-portal-api/internal/timezone"
)

type CancelAppointment struct {
	repo   domain.Repository
	notify *notify.Dispatcher
	audit  *audit.Dispatcher
	now    func() time.Time
}

func NewCancelAppointment(
	repo domain.Repository,
	dispatcher *notify.Dispatcher,
	auditor *audit.Dispatcher,
) *CancelAppointment {
	return &CancelAppointment{
		repo:   repo,
		notify: dispatcher,
		audit:  auditor,
		now:    timezone.Now,
	}
}

// Execute cancels a pending or confirmed appointment. A reason is
// mandatory; cancellation without one is rejected before any write.
func (uc *CancelAppointment) Execute(
	ctx context.Context,
	adminID uint,
	appointmentID uint,
	reason string,
) (*models.Appointment, error) {

	ap, err := uc.repo.GetAppointmentByID(ctx, appointmentID)
	if err != nil {
		return nil, httperr.ErrBusiness(httperr.CodeAppointmentNotFound)
	}

	if err := domain.Cancel(ap, uc.now(), reason); err != nil {
		return nil, err
	}

	if err := uc.repo.UpdateAppointment(ctx, ap); err != nil {
		return nil, err
	}

	uc.notify.Dispatch(notify.CancellationEmail(ap))

	uc.audit.Dispatch(audit.Event{
		AdminID:  &adminID,
		Action:   "appointment_cancelled",
		Entity:   "appointment",
		EntityID: &ap.ID,
		Metadata: map[string]any{"reason": reason},
	})

	return ap, nil
}
