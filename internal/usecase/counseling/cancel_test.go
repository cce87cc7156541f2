package counseling

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domain "github.com/Mishael-2584/odel-portal-api/internal/domain/counseling"
	"github.com/Mishael-2584/odel-portal-api/internal/httperr"
	"github.com/Mishael-2584/odel-portal-api/internal/notify"
)

func newCancelUC(repo *fakeRepo, dispatcher *notify.Dispatcher) *CancelAppointment {
	uc := NewCancelAppointment(repo, dispatcher, noAudit())
	uc.now = testClock()
	return uc
}

func TestCancel_PendingAppointment(t *testing.T) {
	repo := seededRepo()
	ap := bookOne(t, repo)
	sender := newCaptureSender()

	uc := newCancelUC(repo, notify.NewDispatcher(sender))
	got, err := uc.Execute(context.Background(), 1, ap.ID, "counselor on leave")
	require.NoError(t, err)

	assert.Equal(t, string(domain.StatusCancelled), got.Status)
	assert.Equal(t, "counselor on leave", got.CancellationReason)
	require.NotNil(t, got.CancelledAt)

	email := waitForEmail(t, sender)
	assert.Equal(t, ap.StudentEmail, email.To)
	assert.Contains(t, email.Body, "counselor on leave")

	stored := repo.get(ap.ID)
	assert.Equal(t, string(domain.StatusCancelled), stored.Status)
}

func TestCancel_ConfirmedAppointment(t *testing.T) {
	repo := seededRepo()
	ap := bookOne(t, repo)

	confirmUC := newConfirmUC(repo, nil, newTestNotify())
	_, err := confirmUC.Execute(context.Background(), 1, ap.ID)
	require.NoError(t, err)

	uc := newCancelUC(repo, newTestNotify())
	got, err := uc.Execute(context.Background(), 1, ap.ID, "student request")
	require.NoError(t, err)
	assert.Equal(t, string(domain.StatusCancelled), got.Status)
}

func TestCancel_WithoutReasonLeavesAppointmentUntouched(t *testing.T) {
	repo := seededRepo()
	ap := bookOne(t, repo)

	uc := newCancelUC(repo, newTestNotify())
	_, err := uc.Execute(context.Background(), 1, ap.ID, "  ")
	assert.True(t, httperr.IsBusiness(err, httperr.CodeMissingReason))

	stored := repo.get(ap.ID)
	assert.Equal(t, string(domain.StatusPending), stored.Status)
	assert.Empty(t, stored.CancellationReason)
}

func TestCancel_NotFound(t *testing.T) {
	uc := newCancelUC(seededRepo(), newTestNotify())

	_, err := uc.Execute(context.Background(), 1, 404, "whatever")
	assert.True(t, httperr.IsBusiness(err, httperr.CodeAppointmentNotFound))
}

func TestCancel_RejectsAlreadyCancelled(t *testing.T) {
	repo := seededRepo()
	ap := bookOne(t, repo)

	uc := newCancelUC(repo, newTestNotify())
	_, err := uc.Execute(context.Background(), 1, ap.ID, "first")
	require.NoError(t, err)

	_, err = uc.Execute(context.Background(), 1, ap.ID, "second")
	assert.True(t, httperr.IsBusiness(err, httperr.CodeInvalidState))
}
