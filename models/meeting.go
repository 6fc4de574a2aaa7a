package models

import (
	"time"
)

type Meeting struct {
	ID          string    `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()"`
	Title       string    `json:"title" binding:"required"`
	Description string    `json:"description" gorm:"type:text"`
	Date        time.Time `json:"date"`
	Location    string    `json:"location"`
	MinutesURL  string    `json:"minutesUrl" gorm:"column:minutes_url"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

func (Meeting) TableName() string {
	return "meetings"
}

type MeetingCreate struct {
	Title       string    `json:"title" binding:"required" example:"National Executive Meeting"`
	Description string    `json:"description"`
	Date        time.Time `json:"date"`
	Location    string    `json:"location" example:"Zoom"`
	MinutesURL  string    `json:"minutesUrl"`
}
