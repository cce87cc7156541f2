package counseling

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domain "github.com/Mishael-2584/odel-portal-api/internal/domain/counseling"
	"github.com/Mishael-2584/odel-portal-api/internal/httperr"
)

func newBookUC(repo *fakeRepo) *BookAppointment {
	uc := NewBookAppointment(repo, noAudit())
	uc.now = testClock()
	return uc
}

func TestBook_CreatesPendingAppointment(t *testing.T) {
	repo := seededRepo()
	uc := newBookUC(repo)

	ap, err := uc.Execute(context.Background(), validBooking())
	require.NoError(t, err)

	assert.NotZero(t, ap.ID)
	assert.Equal(t, string(domain.StatusPending), ap.Status)
	assert.Equal(t, "2026-03-03", ap.AppointmentDate)
	assert.Equal(t, "10:00", ap.AppointmentTime)
	assert.Equal(t, "jane@students.example.ac.ke", ap.StudentEmail)
	assert.Equal(t, 1, repo.count())
}

func TestBook_RequiredFields(t *testing.T) {
	uc := newBookUC(seededRepo())

	cases := []struct {
		name   string
		mutate func(*BookAppointmentInput)
		code   string
	}{
		{"name", func(in *BookAppointmentInput) { in.StudentName = " " }, "missing_student_name"},
		{"email", func(in *BookAppointmentInput) { in.StudentEmail = "" }, "missing_student_email"},
		{"counselor", func(in *BookAppointmentInput) { in.CounselorID = 0 }, "missing_counselor"},
		{"date", func(in *BookAppointmentInput) { in.Date = "" }, "missing_date"},
		{"time", func(in *BookAppointmentInput) { in.Time = "" }, "missing_time"},
		{"type", func(in *BookAppointmentInput) { in.Type = "" }, "missing_type"},
		{"email shape", func(in *BookAppointmentInput) { in.StudentEmail = "not-an-email" }, "invalid_email"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			in := validBooking()
			tc.mutate(&in)

			_, err := uc.Execute(context.Background(), in)
			assert.True(t, httperr.IsBusiness(err, tc.code), "want %s, got %v", tc.code, err)
		})
	}
}

func TestBook_UnknownOrInactiveCounselor(t *testing.T) {
	repo := seededRepo()
	uc := newBookUC(repo)

	in := validBooking()
	in.CounselorID = 42
	_, err := uc.Execute(context.Background(), in)
	assert.True(t, httperr.IsBusiness(err, httperr.CodeCounselorNotFound))

	retired := validBooking()
	c, _ := repo.GetCounselorByID(context.Background(), 1)
	c.Active = false
	repo.addCounselor(*c)
	_, err = uc.Execute(context.Background(), retired)
	assert.True(t, httperr.IsBusiness(err, httperr.CodeCounselorInactive))
}

func TestBook_RejectsUnbookableTimes(t *testing.T) {
	uc := newBookUC(seededRepo())

	// Saturday has no working hours at all.
	weekend := validBooking()
	weekend.Date = "2026-03-07"
	_, err := uc.Execute(context.Background(), weekend)
	assert.True(t, httperr.IsBusiness(err, httperr.CodeOutsideHours))

	// 12:00 overlaps the lunch window.
	lunch := validBooking()
	lunch.Time = "12:00"
	_, err = uc.Execute(context.Background(), lunch)
	assert.True(t, httperr.IsBusiness(err, httperr.CodeOutsideHours))

	// Friday afternoon does not exist on a short day.
	friday := validBooking()
	friday.Date = "2026-03-06"
	friday.Time = "14:00"
	_, err = uc.Execute(context.Background(), friday)
	assert.True(t, httperr.IsBusiness(err, httperr.CodeOutsideHours))

	// Booking today at a time that has already passed.
	elapsed := validBooking()
	elapsed.Date = "2026-03-02"
	elapsed.Time = "08:00"
	_, err = uc.Execute(context.Background(), elapsed)
	assert.True(t, httperr.IsBusiness(err, httperr.CodeOutsideHours))
}

func TestBook_RejectsPastDate(t *testing.T) {
	uc := newBookUC(seededRepo())

	in := validBooking()
	in.Date = "2026-02-27"
	_, err := uc.Execute(context.Background(), in)
	assert.True(t, httperr.IsBusiness(err, "date_in_past"))
}

func TestBook_ConflictOnHeldSlot(t *testing.T) {
	repo := seededRepo()
	uc := newBookUC(repo)

	_, err := uc.Execute(context.Background(), validBooking())
	require.NoError(t, err)

	second := validBooking()
	second.StudentName = "Otieno Kamau"
	second.StudentEmail = "otieno@students.example.ac.ke"
	_, err = uc.Execute(context.Background(), second)
	assert.True(t, httperr.IsBusiness(err, httperr.CodeSlotTaken))
	assert.Equal(t, 1, repo.count())
}

func TestBook_ConcurrentRequestsOneWinner(t *testing.T) {
	repo := seededRepo()
	uc := newBookUC(repo)

	const racers = 8
	errs := make([]error, racers)

	var wg sync.WaitGroup
	for i := 0; i < racers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, errs[i] = uc.Execute(context.Background(), validBooking())
		}(i)
	}
	wg.Wait()

	won, lost := 0, 0
	for _, err := range errs {
		switch {
		case err == nil:
			won++
		case httperr.IsBusiness(err, httperr.CodeSlotTaken):
			lost++
		default:
			t.Fatalf("unexpected error: %v", err)
		}
	}

	assert.Equal(t, 1, won)
	assert.Equal(t, racers-1, lost)
	assert.Equal(t, 1, repo.count())
}
