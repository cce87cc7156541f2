package counseling

import (
	"context"

	domain "github.com/Mishael-2584/odel-portal-api/internal/domain/counseling"
	"github.com/Mishael-2584/odel-portal-api/internal/httperr"
	"github.com/Mishael-2584/odel-portal-api/internal/models"
)

type ListAppointments struct {
	repo domain.Repository
}

func NewListAppointments(repo domain.Repository) *ListAppointments {
	return &ListAppointments{repo: repo}
}

func (uc *ListAppointments) Execute(
	ctx context.Context,
	status string,
) ([]models.Appointment, error) {

	if status != "" {
		switch domain.Status(status) {
		case domain.StatusPending, domain.StatusConfirmed, domain.StatusCancelled:
		default:
			return nil, httperr.ErrBusiness("invalid_status")
		}
	}

	return uc.repo.ListAppointments(ctx, status)
}
