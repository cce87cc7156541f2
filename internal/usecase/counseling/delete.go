package counseling

import (
	"context"

	"github.com/Mishael-2584/odel-portal-api/internal/audit"
	domain "github.com/Mishael-2584/odel-portal-api/internal/domain/counseling"
	"github.com/Mishael-2584/odel-portal-api/internal/httperr"
	"github.com/Mishael-2584/odel-portal-api/internal/notify"
)

// DeleteAppointment is the admin escape hatch: a hard row delete outside
// the normal lifecycle, for data cleanup in any state.
type DeleteAppointment struct {
	repo           domain.Repository
	notify         *notify.Dispatcher
	audit          *audit.Dispatcher
	notifyOnDelete bool
}

func NewDeleteAppointment(
	repo domain.Repository,
	dispatcher *notify.Dispatcher,
	auditor *audit.Dispatcher,
	notifyOnDelete bool,
) *DeleteAppointment {
	return &DeleteAppointment{
		repo:           repo,
		notify:         dispatcher,
		audit:          auditor,
		notifyOnDelete: notifyOnDelete,
	}
}

func (uc *DeleteAppointment) Execute(
	ctx context.Context,
	adminID uint,
	appointmentID uint,
) error {

	ap, err := uc.repo.GetAppointmentByID(ctx, appointmentID)
	if err != nil {
		return httperr.ErrBusiness(httperr.CodeAppointmentNotFound)
	}

	if err := uc.repo.DeleteAppointment(ctx, ap); err != nil {
		return err
	}

	// Off by default: an admin delete is data cleanup, not a
	// student-facing cancellation.
	if uc.notifyOnDelete {
		uc.notify.Dispatch(notify.DeletionEmail(ap))
	}

	uc.audit.Dispatch(audit.Event{
		AdminID:  &adminID,
		Action:   "appointment_deleted",
		Entity:   "appointment",
		EntityID: &ap.ID,
		Metadata: map[string]any{
			"date":   ap.AppointmentDate,
			"time":   ap.AppointmentTime,
			"status": ap.Status,
		},
	})

	return nil
}
