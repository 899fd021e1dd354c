package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// PropertyPerformanceSummary caches the aggregate of one property for one period.
// Exactly one row exists per (property_id, period_type, period_key).
type PropertyPerformanceSummary struct {
	ID         uint   `gorm:"primaryKey" json:"id"`
	PropertyID uint   `gorm:"not null;uniqueIndex:idx_property_period" json:"propertyId"`
	PeriodType string `gorm:"size:10;not null;uniqueIndex:idx_property_period" json:"periodType"`
	PeriodKey  string `gorm:"size:64;not null;uniqueIndex:idx_property_period" json:"periodKey"`
	OwnerID    uint   `gorm:"column:owner_id;not null;index" json:"OwnerId"`
	Year       int    `json:"year"`
	Month      *int   `json:"month,omitempty"`

	TotalRevenue     decimal.Decimal `gorm:"type:decimal(14,2);not null;default:0" json:"totalRevenue"`
	ProjectedRevenue decimal.Decimal `gorm:"type:decimal(14,2);not null;default:0" json:"projectedRevenue"`

	TotalReservations        int64 `gorm:"not null;default:0" json:"totalReservations"`
	ConfirmedCount           int64 `gorm:"not null;default:0" json:"confirmedCount"`
	PendingPaymentCount      int64 `gorm:"not null;default:0" json:"pendingPaymentCount"`
	PendingConfirmationCount int64 `gorm:"not null;default:0" json:"pendingConfirmationCount"`
	CancelledCount           int64 `gorm:"not null;default:0" json:"cancelledCount"`
	UniqueUsers              int64 `gorm:"not null;default:0" json:"uniqueUsers"`

	LastUpdated time.Time `gorm:"not null" json:"lastUpdated"`
}

// RoomTypePerformanceSummary has the same shape keyed by room type, plus nights booked.
type RoomTypePerformanceSummary struct {
	ID         uint   `gorm:"primaryKey" json:"id"`
	RoomTypeID uint   `gorm:"not null;uniqueIndex:idx_room_type_period" json:"roomTypeId"`
	PeriodType string `gorm:"size:10;not null;uniqueIndex:idx_room_type_period" json:"periodType"`
	PeriodKey  string `gorm:"size:64;not null;uniqueIndex:idx_room_type_period" json:"periodKey"`
	PropertyID uint   `gorm:"not null;index" json:"propertyId"`
	OwnerID    uint   `gorm:"column:owner_id;not null;index" json:"OwnerId"`
	Year       int    `json:"year"`
	Month      *int   `json:"month,omitempty"`

	TotalRevenue     decimal.Decimal `gorm:"type:decimal(14,2);not null;default:0" json:"totalRevenue"`
	ProjectedRevenue decimal.Decimal `gorm:"type:decimal(14,2);not null;default:0" json:"projectedRevenue"`

	TotalReservations        int64 `gorm:"not null;default:0" json:"totalReservations"`
	ConfirmedCount           int64 `gorm:"not null;default:0" json:"confirmedCount"`
	PendingPaymentCount      int64 `gorm:"not null;default:0" json:"pendingPaymentCount"`
	PendingConfirmationCount int64 `gorm:"not null;default:0" json:"pendingConfirmationCount"`
	CancelledCount           int64 `gorm:"not null;default:0" json:"cancelledCount"`
	UniqueUsers              int64 `gorm:"not null;default:0" json:"uniqueUsers"`
	TotalNightsBooked        int64 `gorm:"not null;default:0" json:"totalNightsBooked"`

	LastUpdated time.Time `gorm:"not null" json:"lastUpdated"`
}
