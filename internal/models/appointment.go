package models

import "time"

type Appointment struct {
	ID uint `gorm:"primaryKey" json:"id"`

	// Students book without an account; their identity is captured as
	// plain text, not a foreign key.
	StudentName  string `gorm:"size:100;not null" json:"student_name"`
	StudentEmail string `gorm:"size:100;not null" json:"student_email"`
	StudentPhone string `gorm:"size:20" json:"student_phone"`

	CounselorID uint      `json:"counselor_id"`
	Counselor   Counselor `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"counselor"`

	AppointmentDate string `gorm:"size:10;not null" json:"appointment_date"`
	AppointmentTime string `gorm:"size:5;not null" json:"appointment_time"`

	Type            string `gorm:"size:50;not null" json:"type"`
	PreferredGender string `gorm:"size:10" json:"preferred_gender"`
	Reason          string `gorm:"size:500" json:"reason"`

	Status string `gorm:"size:20;default:'pending'" json:"status"`

	CancellationReason string `gorm:"size:255" json:"cancellation_reason"`

	MeetingID      string `gorm:"size:50" json:"meeting_id"`
	MeetingJoinURL string `gorm:"size:255" json:"meeting_join_url"`
	MeetingHostURL string `gorm:"size:255" json:"meeting_host_url"`

	ConfirmedAt *time.Time `json:"confirmed_at"`
	CancelledAt *time.Time `json:"cancelled_at"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
