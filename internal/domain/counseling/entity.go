package counseling

import (
	"strings"
	"time"

	"github.com/Mishael-2584/odel-portal-api/internal/httperr"
	"github.com/Mishael-2584/odel-portal-api/internal/models"
)

// MeetingRef is the opaque video-meeting reference attached on confirmation.
type MeetingRef struct {
	ID      string
	JoinURL string
	HostURL string
}

func Confirm(ap *models.Appointment, now time.Time, meeting *MeetingRef) error {
	if err := CanConfirm(Status(ap.Status)); err != nil {
		return err
	}

	ap.Status = string(StatusConfirmed)
	ap.ConfirmedAt = &now

	if meeting != nil {
		ap.MeetingID = meeting.ID
		ap.MeetingJoinURL = meeting.JoinURL
		ap.MeetingHostURL = meeting.HostURL
	}

	return nil
}

func Cancel(ap *models.Appointment, now time.Time, reason string) error {
	if strings.TrimSpace(reason) == "" {
		return httperr.ErrBusiness(httperr.CodeMissingReason)
	}
	if err := CanCancel(Status(ap.Status)); err != nil {
		return err
	}

	ap.Status = string(StatusCancelled)
	ap.CancelledAt = &now
	ap.CancellationReason = reason
	return nil
}

// Reschedule moves the appointment to a new slot and resets it to pending.
// Whatever meeting was created for the old slot no longer applies, so the
// meeting reference and the confirmation timestamp are cleared.
func Reschedule(ap *models.Appointment, newDate, newTime string) error {
	if err := CanReschedule(Status(ap.Status)); err != nil {
		return err
	}

	ap.AppointmentDate = newDate
	ap.AppointmentTime = newTime
	ap.Status = string(StatusPending)
	ap.ConfirmedAt = nil
	ap.MeetingID = ""
	ap.MeetingJoinURL = ""
	ap.MeetingHostURL = ""
	return nil
}
