package models

import (
	"time"
)

type Role string

const (
	AdminRole      Role = "ADMIN"
	MemberRole     Role = "MEMBER"
	SuperAdminRole Role = "SUPERADMIN"
)

// User represents a member or administrator account
type User struct {
	ID                 string    `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()"`
	UserName           string    `json:"username" binding:"required"`
	Email              string    `json:"email" gorm:"uniqueIndex" binding:"required,email"`
	Password           string    `json:"password,omitempty" binding:"required,min=6"`
	Role               Role      `json:"role" gorm:"type:varchar(20);default:'MEMBER'"`
	Chapter            string    `json:"chapter"`
	Phone              string    `json:"phone"`
	Enable             bool      `json:"enable"`
	MustChangePassword bool      `json:"mustChangePassword"`
	CreatedAt          time.Time `json:"createdAt"`
	UpdatedAt          time.Time `json:"updatedAt"`
}

func (User) TableName() string {
	return "users"
}

// UserCreate model used by the admin back office to create an account.
// The temporary password is generated server side, never supplied here.
type UserCreate struct {
	UserName string `json:"username" binding:"required" example:"Adewale Johnson"`
	Email    string `json:"email" binding:"required,email" example:"adewale.johnson@example.com"`
	Role     Role   `json:"role" example:"MEMBER"`
	Chapter  string `json:"chapter" example:"Atlanta"`
	Phone    string `json:"phone" example:"+1 404 555 0120"`
}

// UserUpdate model for admin updates on an existing account
type UserUpdate struct {
	UserName string `json:"username"`
	Role     Role   `json:"role"`
	Chapter  string `json:"chapter"`
	Phone    string `json:"phone"`
	Enable   *bool  `json:"enable"`
}
