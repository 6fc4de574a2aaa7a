package models

import (
	"time"
)

type Subscriber struct {
	ID           string    `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()"`
	Name         string    `json:"name"`
	Email        string    `json:"email" gorm:"uniqueIndex" binding:"required,email"`
	SubscribedAt time.Time `json:"subscribedAt" gorm:"column:subscribed_at;default:CURRENT_TIMESTAMP"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

func (Subscriber) TableName() string {
	return "subscribers"
}

type SubscriberCreate struct {
	Name  string `json:"name" example:"Folake Adeyemi"`
	Email string `json:"email" binding:"required,email" example:"folake.adeyemi@example.com"`
}
