package models

import (
	"time"
)

type Chapter struct {
	ID          string    `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()"`
	Name        string    `json:"name" binding:"required"`
	City        string    `json:"city"`
	Country     string    `json:"country"`
	Description string    `json:"description" gorm:"type:text"`
	President   string    `json:"president"`
	Email       string    `json:"email"`
	ImageURL    string    `json:"imageUrl" gorm:"column:image_url"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

func (Chapter) TableName() string {
	return "chapters"
}

type ChapterCreate struct {
	Name        string `json:"name" binding:"required" example:"Eko Club Atlanta"`
	City        string `json:"city" example:"Atlanta"`
	Country     string `json:"country" example:"USA"`
	Description string `json:"description"`
	President   string `json:"president" example:"Chief Adebayo Ogunlesi"`
	Email       string `json:"email" example:"atlanta@ekoclub.org"`
}
