package counseling

import (
	"context"
	"errors"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domain "github.com/Mishael-2584/odel-portal-api/internal/domain/counseling"
	"github.com/Mishael-2584/odel-portal-api/internal/httperr"
	"github.com/Mishael-2584/odel-portal-api/internal/meetings"
	"github.com/Mishael-2584/odel-portal-api/internal/models"
	"github.com/Mishael-2584/odel-portal-api/internal/notify"
)

// bookOne places one pending appointment in the repo and returns it.
func bookOne(t *testing.T, repo *fakeRepo) *models.Appointment {
	t.Helper()
	ap, err := newBookUC(repo).Execute(context.Background(), validBooking())
	require.NoError(t, err)
	return ap
}

func newConfirmUC(repo *fakeRepo, provider meetings.Provider, dispatcher *notify.Dispatcher) *ConfirmAppointment {
	uc := NewConfirmAppointment(repo, provider, dispatcher, noAudit(), time.Second)
	uc.now = testClock()
	return uc
}

func TestConfirm_WithMeetingProvider(t *testing.T) {
	repo := seededRepo()
	ap := bookOne(t, repo)

	provider := &fakeProvider{meeting: &meetings.Meeting{
		ID:      "84920",
		JoinURL: "https://zoom.example/j/84920",
		HostURL: "https://zoom.example/s/84920",
	}}
	sender := newCaptureSender()

	uc := newConfirmUC(repo, provider, notify.NewDispatcher(sender))
	got, err := uc.Execute(context.Background(), 1, ap.ID)
	require.NoError(t, err)

	assert.Equal(t, string(domain.StatusConfirmed), got.Status)
	assert.Equal(t, "84920", got.MeetingID)
	assert.Equal(t, "https://zoom.example/j/84920", got.MeetingJoinURL)
	require.NotNil(t, got.ConfirmedAt)
	assert.EqualValues(t, 1, atomic.LoadInt32(&provider.calls))

	email := waitForEmail(t, sender)
	assert.Equal(t, ap.StudentEmail, email.To)
	assert.Contains(t, email.Body, "https://zoom.example/j/84920")

	stored := repo.get(ap.ID)
	assert.Equal(t, string(domain.StatusConfirmed), stored.Status)
	assert.Equal(t, "84920", stored.MeetingID)
}

func TestConfirm_ProviderFailureStillConfirms(t *testing.T) {
	repo := seededRepo()
	ap := bookOne(t, repo)

	provider := &fakeProvider{err: errors.New("zoom unreachable")}
	sender := newCaptureSender()

	uc := newConfirmUC(repo, provider, notify.NewDispatcher(sender))
	got, err := uc.Execute(context.Background(), 1, ap.ID)
	require.NoError(t, err)

	assert.Equal(t, string(domain.StatusConfirmed), got.Status)
	assert.Empty(t, got.MeetingID)
	assert.Empty(t, got.MeetingJoinURL)

	email := waitForEmail(t, sender)
	assert.True(t, strings.Contains(email.Body, "shared with you separately"),
		"email without a meeting link should promise one later")
}

func TestConfirm_NilProvider(t *testing.T) {
	repo := seededRepo()
	ap := bookOne(t, repo)

	uc := newConfirmUC(repo, nil, newTestNotify())
	got, err := uc.Execute(context.Background(), 1, ap.ID)
	require.NoError(t, err)

	assert.Equal(t, string(domain.StatusConfirmed), got.Status)
	assert.Empty(t, got.MeetingID)
}

func TestConfirm_NotFound(t *testing.T) {
	uc := newConfirmUC(seededRepo(), nil, newTestNotify())

	_, err := uc.Execute(context.Background(), 1, 404)
	assert.True(t, httperr.IsBusiness(err, httperr.CodeAppointmentNotFound))
}

func TestConfirm_RejectsNonPending(t *testing.T) {
	repo := seededRepo()
	ap := bookOne(t, repo)

	provider := &fakeProvider{meeting: &meetings.Meeting{ID: "11111"}}
	uc := newConfirmUC(repo, provider, newTestNotify())

	_, err := uc.Execute(context.Background(), 1, ap.ID)
	require.NoError(t, err)

	// Second confirm must fail without touching the video provider again.
	_, err = uc.Execute(context.Background(), 1, ap.ID)
	assert.True(t, httperr.IsBusiness(err, httperr.CodeInvalidState))
	assert.EqualValues(t, 1, atomic.LoadInt32(&provider.calls))
}
