package counseling

import (
	"context"

	"github.com/Mishael-2584/odel-portal-api/internal/models"
)

type Repository interface {
	// -------- Counselor --------
	GetCounselorByID(
		ctx context.Context,
		id uint,
	) (*models.Counselor, error)

	GetWorkingHours(
		ctx context.Context,
		counselorID uint,
		weekday string,
	) (*models.WorkingHours, error)

	// -------- Appointment (create / conflict) --------

	// CreateAppointment inserts the appointment, failing with the
	// slot_taken business error when a pending or confirmed appointment
	// already holds (counselor, date, time). The check and the insert are
	// one atomic unit.
	CreateAppointment(
		ctx context.Context,
		ap *models.Appointment,
	) error

	// MoveAppointment persists an already-rescheduled appointment,
	// failing with slot_taken when a different pending or confirmed
	// appointment holds the target slot.
	MoveAppointment(
		ctx context.Context,
		ap *models.Appointment,
	) error

	// -------- Appointment (state change / read) --------
	GetAppointmentByID(
		ctx context.Context,
		id uint,
	) (*models.Appointment, error)

	UpdateAppointment(
		ctx context.Context,
		ap *models.Appointment,
	) error

	DeleteAppointment(
		ctx context.Context,
		ap *models.Appointment,
	) error

	ListAppointments(
		ctx context.Context,
		status string,
	) ([]models.Appointment, error)

	// -------- Availability --------
	ListBookedTimes(
		ctx context.Context,
		counselorID uint,
		date string,
	) ([]string, error)
}
