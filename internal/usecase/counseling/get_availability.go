package counseling

import (
	"context"
	"time"

	domain "github.com/Mishael-2584/odel-portal-api/internal/domain/counseling"
	"github.com/Mishael-2584/odel-portal-api/internal/httperr"
	"github.com/Mishael-2584/odel-portal-api/internal/timezone"
)

type GetAvailability struct {
	repo domain.Repository
	now  func() time.Time
}

func NewGetAvailability(repo domain.Repository) *GetAvailability {
	return &GetAvailability{
		repo: repo,
		now:  timezone.Now,
	}
}

// Execute lists every slot of the counselor's day for the given date,
// flagging the ones already held by a pending or confirmed appointment.
// A day without working hours yields an empty list, not an error.
func (uc *GetAvailability) Execute(
	ctx context.Context,
	counselorID uint,
	date time.Time,
) ([]domain.Slot, error) {

	if _, err := uc.repo.GetCounselorByID(ctx, counselorID); err != nil {
		return nil, httperr.ErrBusiness(httperr.CodeCounselorNotFound)
	}

	wh, err := uc.repo.GetWorkingHours(ctx, counselorID, date.Weekday().String())
	if err != nil {
		return []domain.Slot{}, nil
	}

	times := domain.GenerateSlots(wh, date, uc.now())
	if len(times) == 0 {
		return []domain.Slot{}, nil
	}

	booked, err := uc.repo.ListBookedTimes(
		ctx,
		counselorID,
		date.Format(domain.DateLayout),
	)
	if err != nil {
		return nil, err
	}

	taken := make(map[string]struct{}, len(booked))
	for _, t := range booked {
		taken[t] = struct{}{}
	}

	slots := make([]domain.Slot, 0, len(times))
	for _, t := range times {
		_, held := taken[t]
		slots = append(slots, domain.Slot{
			Time:      t,
			Available: !held,
		})
	}

	return slots, nil
}
