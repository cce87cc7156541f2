package notify

import (
	"fmt"

	"github.com/Mishael-2584/odel-portal-api/internal/models"
)

func ConfirmationEmail(ap *models.Appointment) Email {
	body := fmt.Sprintf(
		"Dear %s,\n\nYour counseling appointment has been confirmed.\n\nCounselor: %s\nDate: %s\nTime: %s\n",
		ap.StudentName, ap.Counselor.Name, ap.AppointmentDate, ap.AppointmentTime,
	)

	if ap.MeetingJoinURL != "" {
		body += fmt.Sprintf("\nJoin your session here: %s\n", ap.MeetingJoinURL)
	} else {
		body += "\nThe meeting link will be shared with you separately.\n"
	}

	body += "\nODeL Student Support\n"

	return Email{
		To:      ap.StudentEmail,
		Subject: "Counseling appointment confirmed",
		Body:    body,
	}
}

func CancellationEmail(ap *models.Appointment) Email {
	return Email{
		To:      ap.StudentEmail,
		Subject: "Counseling appointment cancelled",
		Body: fmt.Sprintf(
			"Dear %s,\n\nYour counseling appointment on %s at %s has been cancelled.\n\nReason: %s\n\nYou are welcome to book another session on the portal.\n\nODeL Student Support\n",
			ap.StudentName, ap.AppointmentDate, ap.AppointmentTime, ap.CancellationReason,
		),
	}
}

func RescheduleEmail(ap *models.Appointment, oldDate, oldTime string) Email {
	return Email{
		To:      ap.StudentEmail,
		Subject: "Counseling appointment rescheduled",
		Body: fmt.Sprintf(
			"Dear %s,\n\nYour counseling appointment has been moved.\n\nPrevious: %s at %s\nNew: %s at %s\n\nYou will receive a fresh confirmation once the new time is approved.\n\nODeL Student Support\n",
			ap.StudentName, oldDate, oldTime, ap.AppointmentDate, ap.AppointmentTime,
		),
	}
}

func DeletionEmail(ap *models.Appointment) Email {
	return Email{
		To:      ap.StudentEmail,
		Subject: "Counseling appointment removed",
		Body: fmt.Sprintf(
			"Dear %s,\n\nYour counseling appointment on %s at %s has been removed from the schedule. Please contact student support if this is unexpected.\n\nODeL Student Support\n",
			ap.StudentName, ap.AppointmentDate, ap.AppointmentTime,
		),
	}
}

func LoginCodeEmail(to, code string) Email {
	return Email{
		To:      to,
		Subject: "Your ODeL portal login code",
		Body: fmt.Sprintf(
			"Your login code is: %s\n\nIt expires in 10 minutes. Ignore this email if you did not request a code.\n",
			code,
		),
	}
}
