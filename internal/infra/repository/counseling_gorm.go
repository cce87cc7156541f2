package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	domain "github.com/Mishael-2584/odel-portal-api/internal/domain/counseling"
	"github.com/Mishael-2584/odel-portal-api/internal/httperr"
	"github.com/Mishael-2584/odel-portal-api/internal/models"
)

type CounselingGormRepository struct {
	db *gorm.DB
}

func NewCounselingGormRepository(db *gorm.DB) *CounselingGormRepository {
	return &CounselingGormRepository{db: db}
}

// --------------------------------------------------
// Counselor
// --------------------------------------------------

func (r *CounselingGormRepository) GetCounselorByID(
	ctx context.Context,
	id uint,
) (*models.Counselor, error) {

	var counselor models.Counselor
	if err := r.db.WithContext(ctx).First(&counselor, id).Error; err != nil {
		return nil, err
	}
	return &counselor, nil
}

func (r *CounselingGormRepository) GetWorkingHours(
	ctx context.Context,
	counselorID uint,
	weekday string,
) (*models.WorkingHours, error) {

	var wh models.WorkingHours
	if err := r.db.WithContext(ctx).
		Where("counselor_id = ? AND weekday = ?", counselorID, weekday).
		First(&wh).Error; err != nil {
		return nil, err
	}

	return &wh, nil
}

// --------------------------------------------------
// Appointment (create / conflict)
// --------------------------------------------------

// CreateAppointment runs the conflict check and the insert in one
// transaction. The locked pre-check gives the caller a precise error; the
// partial unique index on (counselor_id, appointment_date,
// appointment_time) over pending/confirmed rows is the actual guarantee,
// and a duplicate-key failure from it is reported the same way.
func (r *CounselingGormRepository) CreateAppointment(
	ctx context.Context,
	ap *models.Appointment,
) error {

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {

		var conflicts []models.Appointment
		if err := tx.
			Clauses(clause.Locking{Strength: "UPDATE"}).
			Where(
				"counselor_id = ? AND appointment_date = ? AND appointment_time = ? AND status IN ?",
				ap.CounselorID, ap.AppointmentDate, ap.AppointmentTime,
				domain.ActiveStatuses(),
			).
			Find(&conflicts).Error; err != nil {
			return err
		}

		if len(conflicts) > 0 {
			return httperr.ErrBusiness(httperr.CodeSlotTaken)
		}

		if err := tx.Create(ap).Error; err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return httperr.ErrBusiness(httperr.CodeSlotTaken)
			}
			return err
		}

		return nil
	})
}

func (r *CounselingGormRepository) MoveAppointment(
	ctx context.Context,
	ap *models.Appointment,
) error {

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {

		var conflicts []models.Appointment
		if err := tx.
			Clauses(clause.Locking{Strength: "UPDATE"}).
			Where(
				"counselor_id = ? AND appointment_date = ? AND appointment_time = ? AND status IN ? AND id <> ?",
				ap.CounselorID, ap.AppointmentDate, ap.AppointmentTime,
				domain.ActiveStatuses(), ap.ID,
			).
			Find(&conflicts).Error; err != nil {
			return err
		}

		if len(conflicts) > 0 {
			return httperr.ErrBusiness(httperr.CodeSlotTaken)
		}

		if err := tx.Save(ap).Error; err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return httperr.ErrBusiness(httperr.CodeSlotTaken)
			}
			return err
		}

		return nil
	})
}

// --------------------------------------------------
// Appointment (state change / read)
// --------------------------------------------------

func (r *CounselingGormRepository) GetAppointmentByID(
	ctx context.Context,
	id uint,
) (*models.Appointment, error) {

	var ap models.Appointment
	if err := r.db.WithContext(ctx).
		Preload("Counselor").
		First(&ap, id).Error; err != nil {
		return nil, err
	}

	return &ap, nil
}

func (r *CounselingGormRepository) UpdateAppointment(
	ctx context.Context,
	ap *models.Appointment,
) error {
	return r.db.WithContext(ctx).Save(ap).Error
}

func (r *CounselingGormRepository) DeleteAppointment(
	ctx context.Context,
	ap *models.Appointment,
) error {
	return r.db.WithContext(ctx).Delete(ap).Error
}

func (r *CounselingGormRepository) ListAppointments(
	ctx context.Context,
	status string,
) ([]models.Appointment, error) {

	q := r.db.WithContext(ctx).
		Preload("Counselor").
		Order("appointment_date DESC, appointment_time DESC")

	if status != "" {
		q = q.Where("status = ?", status)
	}

	var aps []models.Appointment
	if err := q.Find(&aps).Error; err != nil {
		return nil, err
	}

	return aps, nil
}

// --------------------------------------------------
// Availability
// --------------------------------------------------

func (r *CounselingGormRepository) ListBookedTimes(
	ctx context.Context,
	counselorID uint,
	date string,
) ([]string, error) {

	var times []string
	if err := r.db.WithContext(ctx).
		Model(&models.Appointment{}).
		Distinct("appointment_time").
		Where(
			"counselor_id = ? AND appointment_date = ? AND status IN ?",
			counselorID, date, domain.ActiveStatuses(),
		).
		Pluck("appointment_time", &times).Error; err != nil {
		return nil, err
	}

	return times, nil
}

// Compile-time check
var _ domain.Repository = (*CounselingGormRepository)(nil)
