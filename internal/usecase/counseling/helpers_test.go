package counseling

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/Mishael-2584/odel-portal-api/internal/audit"
	"github.com/Mishael-2584/odel-portal-api/internal/meetings"
	"github.com/Mishael-2584/odel-portal-api/internal/models"
	"github.com/Mishael-2584/odel-portal-api/internal/notify"
	"github.com/Mishael-2584/odel-portal-api/internal/timezone"
)

// Monday morning on campus; all test dates are relative to it.
func testClock() func() time.Time {
	return func() time.Time {
		return time.Date(2026, 3, 2, 9, 0, 0, 0, timezone.Campus())
	}
}

// seededRepo has one active counselor working 08:00-17:00 Monday-Thursday
// and a short 08:00-12:00 Friday.
func seededRepo() *fakeRepo {
	repo := newFakeRepo()
	repo.addCounselor(models.Counselor{
		ID:     1,
		Name:   "Dr. Achieng Odhiambo",
		Email:  "achieng@university.ac.ke",
		Gender: "female",
		Active: true,
	})
	for _, wd := range []string{"Monday", "Tuesday", "Wednesday", "Thursday"} {
		repo.addHours(1, wd, "08:00", "17:00")
	}
	repo.addHours(1, "Friday", "08:00", "12:00")
	return repo
}

func validBooking() BookAppointmentInput {
	return BookAppointmentInput{
		StudentName:  "Jane Wanjiru",
		StudentEmail: "jane@students.example.ac.ke",
		StudentPhone: "+254700000000",
		CounselorID:  1,
		Date:         "2026-03-03",
		Time:         "10:00",
		Type:         "academic",
	}
}

// captureSender records everything the notify worker sends.
type captureSender struct {
	ch chan notify.Email
}

func newCaptureSender() *captureSender {
	return &captureSender{ch: make(chan notify.Email, 10)}
}

func (s *captureSender) Send(to, subject, body string) error {
	s.ch <- notify.Email{To: to, Subject: subject, Body: body}
	return nil
}

func waitForEmail(t *testing.T, s *captureSender) notify.Email {
	t.Helper()
	select {
	case e := <-s.ch:
		return e
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for email dispatch")
		return notify.Email{}
	}
}

func noAudit() *audit.Dispatcher {
	return audit.NewDispatcher(nil)
}

// newTestNotify is a dispatcher whose worker drops everything.
func newTestNotify() *notify.Dispatcher {
	return notify.NewDispatcher(nil)
}

// fakeProvider is a controllable meetings.Provider.
type fakeProvider struct {
	meeting *meetings.Meeting
	err     error
	calls   int32
}

func (p *fakeProvider) CreateMeeting(
	_ context.Context,
	_ string,
	_ time.Time,
	_ int,
) (*meetings.Meeting, error) {
	atomic.AddInt32(&p.calls, 1)
	if p.err != nil {
		return nil, p.err
	}
	return p.meeting, nil
}
