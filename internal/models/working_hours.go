package models

import "time"

// WorkingHours is one weekday's bookable window for a counselor. A weekday
// with no row (or an inactive one) is a non-working day.
type WorkingHours struct {
	ID          uint `gorm:"primaryKey" json:"id"`
	CounselorID uint `gorm:"uniqueIndex:idx_counselor_weekday" json:"counselor_id"`

	Weekday string `gorm:"size:10;uniqueIndex:idx_counselor_weekday" json:"weekday"`

	StartTime string `gorm:"size:5" json:"start_time"`
	EndTime   string `gorm:"size:5" json:"end_time"`
	Active    bool   `gorm:"default:true" json:"active"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
