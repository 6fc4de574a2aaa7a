package models

import (
	"time"
)

// InviteCode guards member registration: an account can only be created
// with a valid, unused, unexpired code issued by an administrator.
type InviteCode struct {
	ID        string    `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()"`
	Code      string    `json:"code" gorm:"uniqueIndex"`
	Role      Role      `json:"role" gorm:"type:varchar(20);default:'MEMBER'"`
	ExpiresAt time.Time `json:"expiresAt"`
	Used      bool      `json:"used"`
	UsedBy    string    `json:"usedBy"`
	CreatedBy string    `json:"createdBy"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (InviteCode) TableName() string {
	return "invite_codes"
}

type InviteCodeCreate struct {
	Role         Role   `json:"role" example:"MEMBER"`
	ValidityDays int    `json:"validityDays" example:"14"`
	Email        string `json:"email" example:"folake.adeyemi@example.com"`
}
