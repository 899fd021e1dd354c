package models

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// RoomType belongs to exactly one property. TotalQuantity is the capacity ceiling
// used by the daily availability rows.
type RoomType struct {
	ID            uint            `gorm:"primaryKey" json:"id"`
	PropertyID    uint            `gorm:"not null;index" json:"propertyId"`
	Property      *Property       `gorm:"foreignKey:PropertyID" json:"property,omitempty"`
	Name          string          `gorm:"size:150;not null" json:"name"`
	Description   string          `gorm:"type:text" json:"description"`
	MaxGuests     uint            `json:"maxGuests"`
	BasePrice     decimal.Decimal `gorm:"type:decimal(14,2);default:0" json:"basePrice"`
	TotalQuantity int             `gorm:"not null;default:0" json:"totalQuantity"`

	CreatedAt time.Time      `json:"created_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}
