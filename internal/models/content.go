package models

import "time"

type NewsPost struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Title     string `gorm:"size:200;not null" json:"title"`
	Body      string `gorm:"type:text" json:"body"`
	Published bool   `gorm:"default:true" json:"published"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type Event struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Title     string    `gorm:"size:200;not null" json:"title"`
	Body      string    `gorm:"type:text" json:"body"`
	Venue     string    `gorm:"size:200" json:"venue"`
	StartsAt  time.Time `json:"starts_at"`
	Published bool      `gorm:"default:true" json:"published"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
