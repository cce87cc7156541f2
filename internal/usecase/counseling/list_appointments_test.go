package counseling

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Mishael-2584/odel-portal-api/internal/httperr"
)

func TestListAppointments_FilterByStatus(t *testing.T) {
	repo := seededRepo()
	first := bookOne(t, repo)

	second := validBooking()
	second.Time = "11:00"
	_, err := newBookUC(repo).Execute(context.Background(), second)
	require.NoError(t, err)

	_, err = newCancelUC(repo, newTestNotify()).Execute(context.Background(), 1, first.ID, "moved")
	require.NoError(t, err)

	uc := NewListAppointments(repo)

	all, err := uc.Execute(context.Background(), "")
	require.NoError(t, err)
	assert.Len(t, all, 2)

	pending, err := uc.Execute(context.Background(), "pending")
	require.NoError(t, err)
	require.Len(t, pending, 1)
	assert.Equal(t, "11:00", pending[0].AppointmentTime)

	cancelled, err := uc.Execute(context.Background(), "cancelled")
	require.NoError(t, err)
	assert.Len(t, cancelled, 1)
}

func TestListAppointments_RejectsUnknownStatus(t *testing.T) {
	uc := NewListAppointments(seededRepo())

	_, err := uc.Execute(context.Background(), "archived")
	assert.True(t, httperr.IsBusiness(err, "invalid_status"))
}
