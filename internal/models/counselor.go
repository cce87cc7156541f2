package models

import "time"

type Counselor struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Name  string `gorm:"size:100;not null" json:"name"`
	Email string `gorm:"size:100;uniqueIndex;not null" json:"email"`
	Phone string `gorm:"size:20" json:"phone"`

	// Gender is used to honour a student's preferred-counselor-gender.
	Gender         string `gorm:"size:10" json:"gender"`
	Specialization string `gorm:"size:255" json:"specialization"`

	Active bool `gorm:"default:true" json:"active"`

	WorkingHours []WorkingHours `gorm:"constraint:OnDelete:CASCADE;" json:"working_hours,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
