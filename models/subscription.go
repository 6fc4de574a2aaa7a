package models

import (
	"time"
)

type PaymentMethod string

const (
	MethodPaystack    PaymentMethod = "paystack"
	MethodFlutterwave PaymentMethod = "flutterwave"
	MethodPaypal      PaymentMethod = "paypal"
)

type SubscriptionStatus string

const (
	SubscriptionActive    SubscriptionStatus = "active"
	SubscriptionPaused    SubscriptionStatus = "paused"
	SubscriptionCancelled SubscriptionStatus = "cancelled"
)

// Subscription is a recurring donation agreement. It is never deleted:
// cancellation is a status change only, and nextBillingDate moves forward
// only after a confirmed successful charge.
type Subscription struct {
	ID              string             `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()"`
	Name            string             `json:"name" binding:"required"`
	Email           string             `json:"email" binding:"required,email"`
	Amount          float64            `json:"amount" gorm:"type:decimal(12,2)" binding:"required"`
	Currency        string             `json:"currency" gorm:"type:varchar(8);default:'USD'"`
	PaymentMethod   PaymentMethod      `json:"paymentMethod" gorm:"type:varchar(20)" binding:"required"`
	PaymentToken    string             `json:"-" gorm:"column:payment_token"`
	Status          SubscriptionStatus `json:"status" gorm:"type:varchar(20);default:'active'"`
	LastBillingDate time.Time          `json:"lastBillingDate"`
	NextBillingDate time.Time          `json:"nextBillingDate"`
	Comment         string             `json:"comment" gorm:"type:text"`
	Recognition     string             `json:"recognition" gorm:"type:varchar(20);default:'public'"`
	CreatedAt       time.Time          `json:"createdAt"`
	UpdatedAt       time.Time          `json:"updatedAt"`
}

func (Subscription) TableName() string {
	return "subscriptions"
}

// SubscriptionCreate model for a donor setting up a recurring donation.
// The token comes from the client side tokenization flow of the gateway.
type SubscriptionCreate struct {
	Name          string        `json:"name" binding:"required" example:"Folake Adeyemi"`
	Email         string        `json:"email" binding:"required,email" example:"folake.adeyemi@example.com"`
	Amount        float64       `json:"amount" binding:"required,gt=0" example:"25"`
	Currency      string        `json:"currency" example:"USD"`
	PaymentMethod PaymentMethod `json:"paymentMethod" binding:"required" example:"paystack"`
	PaymentToken  string        `json:"paymentToken" binding:"required"`
	Comment       string        `json:"comment"`
	Recognition   string        `json:"recognition" example:"public"`
}

// SubscriptionStatusUpdate model for the admin status transition endpoint
type SubscriptionStatusUpdate struct {
	Status SubscriptionStatus `json:"status" binding:"required" example:"paused"`
}
