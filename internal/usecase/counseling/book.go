package counseling

import (
	"context"
	"strings"
	"time"

	"github.com/Mishael-2584/odel-portal-api/internal/audit"
	domain "github.com/Mishael-2584/odel-portal-api/internal/domain/counseling"
	"github.com/Mishael-2584/odel-portal-api/internal/httperr"
	"github.com/Mishael-2584/odel-portal-api/internal/models"
	"github.com/Mishael-2584/odel-portal-api/internal/timezone"
	"github.com/Mishael-2584/odel-portal-api/internal/validators"
)

type BookAppointmentInput struct {
	StudentName  string
	StudentEmail string
	StudentPhone string

	CounselorID uint

	Date string
	Time string

	Type            string
	PreferredGender string
	Reason          string
}

type BookAppointment struct {
	repo  domain.Repository
	audit *audit.Dispatcher
	now   func() time.Time
}

func NewBookAppointment(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *BookAppointment {
	return &BookAppointment{
		repo:  repo,
		audit: audit,
		now:   timezone.Now,
	}
}

func (in *BookAppointmentInput) validate() error {
	switch {
	case strings.TrimSpace(in.StudentName) == "":
		return httperr.ErrBusiness("missing_student_name")
	case strings.TrimSpace(in.StudentEmail) == "":
		return httperr.ErrBusiness("missing_student_email")
	case in.CounselorID == 0:
		return httperr.ErrBusiness("missing_counselor")
	case in.Date == "":
		return httperr.ErrBusiness("missing_date")
	case in.Time == "":
		return httperr.ErrBusiness("missing_time")
	case strings.TrimSpace(in.Type) == "":
		return httperr.ErrBusiness("missing_type")
	}

	if !validators.HasMailboxShape(in.StudentEmail) {
		return httperr.ErrBusiness("invalid_email")
	}

	return nil
}

func (uc *BookAppointment) Execute(
	ctx context.Context,
	in BookAppointmentInput,
) (*models.Appointment, error) {

	if err := in.validate(); err != nil {
		return nil, err
	}

	date, err := time.ParseInLocation(domain.DateLayout, in.Date, timezone.Campus())
	if err != nil {
		return nil, httperr.ErrBusiness(httperr.CodeInvalidDate)
	}

	now := uc.now()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	if date.Before(today) {
		return nil, httperr.ErrBusiness("date_in_past")
	}

	counselor, err := uc.repo.GetCounselorByID(ctx, in.CounselorID)
	if err != nil {
		return nil, httperr.ErrBusiness(httperr.CodeCounselorNotFound)
	}
	if !counselor.Active {
		return nil, httperr.ErrBusiness(httperr.CodeCounselorInactive)
	}

	// The requested time must be a slot the generator would offer for
	// that date; this rejects lunch hours, past times and anything
	// outside the counselor's day in one check.
	wh, err := uc.repo.GetWorkingHours(ctx, in.CounselorID, date.Weekday().String())
	if err != nil {
		return nil, httperr.ErrBusiness(httperr.CodeOutsideHours)
	}

	bookable := false
	for _, t := range domain.GenerateSlots(wh, date, now) {
		if t == in.Time {
			bookable = true
			break
		}
	}
	if !bookable {
		return nil, httperr.ErrBusiness(httperr.CodeOutsideHours)
	}

	ap := &models.Appointment{
		StudentName:  strings.TrimSpace(in.StudentName),
		StudentEmail: strings.ToLower(strings.TrimSpace(in.StudentEmail)),
		StudentPhone: strings.TrimSpace(in.StudentPhone),

		CounselorID: in.CounselorID,

		AppointmentDate: in.Date,
		AppointmentTime: in.Time,

		Type:            in.Type,
		PreferredGender: in.PreferredGender,
		Reason:          in.Reason,

		Status: string(domain.InitialStatus()),
	}

	// Conflict check and insert are one atomic unit in the repository;
	// the loser of a race gets slot_taken here.
	if err := uc.repo.CreateAppointment(ctx, ap); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		Action:   "appointment_booked",
		Entity:   "appointment",
		EntityID: &ap.ID,
		Metadata: map[string]any{
			"counselor_id": ap.CounselorID,
			"date":         ap.AppointmentDate,
			"time":         ap.AppointmentTime,
		},
	})

	return ap, nil
}
