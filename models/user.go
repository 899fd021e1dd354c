package models

import (
	"time"

	"gorm.io/gorm"
)

const (
	RoleOwner    = "OWNER"
	RoleCustomer = "CUSTOMER"
)

// User covers both property owners and booking customers.
type User struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	Email     string         `gorm:"uniqueIndex;size:150" json:"email"`
	Password  string         `gorm:"size:255" json:"-"` // bcrypt hash, never returned
	Role      string         `gorm:"size:32;default:CUSTOMER;index" json:"role"`
	Profile   UserProfile    `gorm:"foreignKey:UserID" json:"profile"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

type UserProfile struct {
	ID        uint   `gorm:"primaryKey" json:"id"`
	UserID    uint   `gorm:"uniqueIndex" json:"userId"`
	FirstName string `gorm:"size:100" json:"firstName"`
	LastName  string `gorm:"size:100" json:"lastName"`
	Phone     string `gorm:"size:50" json:"phone"`
}
