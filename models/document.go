package models

import (
	"time"
)

type Document struct {
	ID          string    `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()"`
	Title       string    `json:"title" binding:"required"`
	Description string    `json:"description" gorm:"type:text"`
	FileURL     string    `json:"fileUrl" gorm:"column:file_url" binding:"required"`
	Category    string    `json:"category"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

func (Document) TableName() string {
	return "documents"
}

type DocumentCreate struct {
	Title       string `json:"title" binding:"required" example:"Constitution and Bylaws"`
	Description string `json:"description"`
	FileURL     string `json:"fileUrl" binding:"required" example:"https://res.cloudinary.com/ekoclub/constitution.pdf"`
	Category    string `json:"category" example:"governance"`
}
