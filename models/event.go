package models

import (
	"time"
)

type Event struct {
	ID          string    `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()"`
	Title       string    `json:"title" binding:"required"`
	Description string    `json:"description" gorm:"type:text"`
	Location    string    `json:"location"`
	Date        time.Time `json:"date"`
	Category    string    `json:"category"`
	ImageURL    string    `json:"imageUrl" gorm:"column:image_url"`
	Featured    bool      `json:"featured"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

func (Event) TableName() string {
	return "events"
}

type EventCreate struct {
	Title       string    `json:"title" binding:"required" example:"Eko Club Annual Convention"`
	Description string    `json:"description" example:"Three days of culture, networking and fundraising."`
	Location    string    `json:"location" example:"Houston, TX"`
	Date        time.Time `json:"date"`
	Category    string    `json:"category" example:"convention"`
	Featured    bool      `json:"featured"`
}
