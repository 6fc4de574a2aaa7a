package models

import (
	"time"
)

type DonationType string

const (
	DonationOneTime   DonationType = "one-time"
	DonationRecurring DonationType = "recurring"
)

// Payment is one row of the append-only charge ledger. Only successful
// charges are persisted; failures live in the billing report only.
type Payment struct {
	ID                   string        `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()"`
	Name                 string        `json:"name"`
	Email                string        `json:"email"`
	Amount               float64       `json:"amount" gorm:"type:decimal(12,2)"`
	Currency             string        `json:"currency" gorm:"type:varchar(8)"`
	PaymentMethod        PaymentMethod `json:"paymentMethod" gorm:"type:varchar(20)"`
	TransactionReference string        `json:"transactionReference" gorm:"column:transaction_reference"`
	Status               string        `json:"status" gorm:"type:varchar(20);default:'success'"`
	DonationType         DonationType  `json:"donationType" gorm:"type:varchar(20)"`
	SubscriptionID       *string       `json:"subscriptionId,omitempty" gorm:"type:uuid"`
	CreatedAt            time.Time     `json:"createdAt"`
	UpdatedAt            time.Time     `json:"updatedAt"`
}

func (Payment) TableName() string {
	return "payments"
}

// PaymentCreate model for recording a completed one-time donation.
// The charge itself happens in the client side gateway flow; this only
// records the outcome with the reference the gateway returned.
type PaymentCreate struct {
	Name                 string        `json:"name" binding:"required" example:"Folake Adeyemi"`
	Email                string        `json:"email" binding:"required,email" example:"folake.adeyemi@example.com"`
	Amount               float64       `json:"amount" binding:"required,gt=0" example:"100"`
	Currency             string        `json:"currency" example:"USD"`
	PaymentMethod        PaymentMethod `json:"paymentMethod" binding:"required" example:"paypal"`
	TransactionReference string        `json:"transactionReference" binding:"required"`
}
