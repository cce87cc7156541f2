package counseling

import (
	"context"
	"errors"
	"fmt"
	"sync"

	domain "github.com/Mishael-2584/odel-portal-api/internal/domain/counseling"
	"github.com/Mishael-2584/odel-portal-api/internal/httperr"
	"github.com/Mishael-2584/odel-portal-api/internal/models"
)

var errNotFound = errors.New("record not found")

// fakeRepo is an in-memory Repository. Like the real store, it enforces
// slot uniqueness atomically (under one mutex) and hands out copies so a
// failed operation cannot leak partial mutations back into storage.
type fakeRepo struct {
	mu sync.Mutex

	counselors   map[uint]models.Counselor
	hours        map[string]models.WorkingHours
	appointments map[uint]models.Appointment
	nextID       uint

	createErr error
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{
		counselors:   map[uint]models.Counselor{},
		hours:        map[string]models.WorkingHours{},
		appointments: map[uint]models.Appointment{},
	}
}

func hourKey(counselorID uint, weekday string) string {
	return fmt.Sprintf("%d|%s", counselorID, weekday)
}

func (r *fakeRepo) addCounselor(c models.Counselor) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.counselors[c.ID] = c
}

func (r *fakeRepo) addHours(counselorID uint, weekday, start, end string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.hours[hourKey(counselorID, weekday)] = models.WorkingHours{
		CounselorID: counselorID,
		Weekday:     weekday,
		StartTime:   start,
		EndTime:     end,
		Active:      true,
	}
}

func (r *fakeRepo) get(id uint) models.Appointment {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.appointments[id]
}

func (r *fakeRepo) count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.appointments)
}

// slotHeldLocked reports whether an active appointment other than excludeID
// occupies the slot. Callers must hold the mutex.
func (r *fakeRepo) slotHeldLocked(counselorID uint, date, timeStr string, excludeID uint) bool {
	for _, ap := range r.appointments {
		if ap.ID != excludeID &&
			ap.CounselorID == counselorID &&
			ap.AppointmentDate == date &&
			ap.AppointmentTime == timeStr &&
			domain.IsActive(domain.Status(ap.Status)) {
			return true
		}
	}
	return false
}

func (r *fakeRepo) GetCounselorByID(_ context.Context, id uint) (*models.Counselor, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	c, ok := r.counselors[id]
	if !ok {
		return nil, errNotFound
	}
	return &c, nil
}

func (r *fakeRepo) GetWorkingHours(_ context.Context, counselorID uint, weekday string) (*models.WorkingHours, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	wh, ok := r.hours[hourKey(counselorID, weekday)]
	if !ok {
		return nil, errNotFound
	}
	return &wh, nil
}

func (r *fakeRepo) CreateAppointment(_ context.Context, ap *models.Appointment) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.createErr != nil {
		return r.createErr
	}

	if r.slotHeldLocked(ap.CounselorID, ap.AppointmentDate, ap.AppointmentTime, 0) {
		return httperr.ErrBusiness(httperr.CodeSlotTaken)
	}

	r.nextID++
	ap.ID = r.nextID
	r.appointments[ap.ID] = *ap
	return nil
}

func (r *fakeRepo) MoveAppointment(_ context.Context, ap *models.Appointment) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.appointments[ap.ID]; !ok {
		return errNotFound
	}

	if r.slotHeldLocked(ap.CounselorID, ap.AppointmentDate, ap.AppointmentTime, ap.ID) {
		return httperr.ErrBusiness(httperr.CodeSlotTaken)
	}

	r.appointments[ap.ID] = *ap
	return nil
}

func (r *fakeRepo) GetAppointmentByID(_ context.Context, id uint) (*models.Appointment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	ap, ok := r.appointments[id]
	if !ok {
		return nil, errNotFound
	}
	if c, ok := r.counselors[ap.CounselorID]; ok {
		ap.Counselor = c
	}
	return &ap, nil
}

func (r *fakeRepo) UpdateAppointment(_ context.Context, ap *models.Appointment) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.appointments[ap.ID]; !ok {
		return errNotFound
	}
	r.appointments[ap.ID] = *ap
	return nil
}

func (r *fakeRepo) DeleteAppointment(_ context.Context, ap *models.Appointment) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.appointments[ap.ID]; !ok {
		return errNotFound
	}
	delete(r.appointments, ap.ID)
	return nil
}

func (r *fakeRepo) ListAppointments(_ context.Context, status string) ([]models.Appointment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []models.Appointment
	for _, ap := range r.appointments {
		if status == "" || ap.Status == status {
			out = append(out, ap)
		}
	}
	return out, nil
}

func (r *fakeRepo) ListBookedTimes(_ context.Context, counselorID uint, date string) ([]string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	seen := map[string]bool{}
	var out []string
	for _, ap := range r.appointments {
		if ap.CounselorID == counselorID &&
			ap.AppointmentDate == date &&
			domain.IsActive(domain.Status(ap.Status)) &&
			!seen[ap.AppointmentTime] {
			seen[ap.AppointmentTime] = true
			out = append(out, ap.AppointmentTime)
		}
	}
	return out, nil
}

var _ domain.Repository = (*fakeRepo)(nil)
