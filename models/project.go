package models

import (
	"time"
)

type ProjectStatus string

const (
	ProjectOngoing   ProjectStatus = "ongoing"
	ProjectCompleted ProjectStatus = "completed"
)

type Project struct {
	ID           string        `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()"`
	Title        string        `json:"title" binding:"required"`
	Description  string        `json:"description" gorm:"type:text"`
	Category     string        `json:"category"`
	GoalAmount   float64       `json:"goalAmount" gorm:"type:decimal(12,2)"`
	RaisedAmount float64       `json:"raisedAmount" gorm:"type:decimal(12,2)"`
	Status       ProjectStatus `json:"status" gorm:"type:varchar(20);default:'ongoing'"`
	ImageURL     string        `json:"imageUrl" gorm:"column:image_url"`
	CreatedAt    time.Time     `json:"createdAt"`
	UpdatedAt    time.Time     `json:"updatedAt"`
}

func (Project) TableName() string {
	return "projects"
}

type ProjectCreate struct {
	Title       string  `json:"title" binding:"required" example:"Massey Street Children Hospital Renovation"`
	Description string  `json:"description"`
	Category    string  `json:"category" example:"health"`
	GoalAmount  float64 `json:"goalAmount" example:"50000"`
}
