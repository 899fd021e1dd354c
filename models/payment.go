package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type Payment struct {
	ID            uint            `gorm:"primaryKey" json:"id"`
	ReservationID uint            `gorm:"not null;uniqueIndex" json:"reservationId"`
	InvoiceNumber string          `gorm:"size:64;index" json:"invoiceNumber"`
	Amount        decimal.Decimal `gorm:"type:decimal(14,2);not null;default:0" json:"amount"`
	Status        string          `gorm:"size:32" json:"status,omitempty"`
	PaidAt        *time.Time      `json:"paidAt,omitempty"`
	CreatedAt     time.Time       `json:"created_at"`
}
