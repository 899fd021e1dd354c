package models

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type OrderStatus string

const (
	OrderStatusPendingPayment      OrderStatus = "PENDING_PAYMENT"
	OrderStatusPendingConfirmation OrderStatus = "PENDING_CONFIRMATION"
	OrderStatusConfirmed           OrderStatus = "CONFIRMED"
	OrderStatusCancelled           OrderStatus = "CANCELLED"
)

// ProjectedRevenueStatuses are the statuses whose payment amount is expected to be collected.
var ProjectedRevenueStatuses = []OrderStatus{
	OrderStatusPendingPayment,
	OrderStatusPendingConfirmation,
	OrderStatusConfirmed,
}

// ActiveStatuses are the non-terminal statuses.
var ActiveStatuses = []OrderStatus{
	OrderStatusPendingPayment,
	OrderStatusPendingConfirmation,
	OrderStatusConfirmed,
}

func (s OrderStatus) Valid() bool {
	switch s {
	case OrderStatusPendingPayment, OrderStatusPendingConfirmation, OrderStatusConfirmed, OrderStatusCancelled:
		return true
	}
	return false
}

func (s OrderStatus) CountsTowardProjected() bool {
	return containsStatus(ProjectedRevenueStatuses, s)
}

func (s OrderStatus) Active() bool {
	return containsStatus(ActiveStatuses, s)
}

func containsStatus(list []OrderStatus, s OrderStatus) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}

// Reservation is a booking of one room type within one property by one customer.
type Reservation struct {
	ID uint `gorm:"primaryKey" json:"id"`

	UserID     uint  `gorm:"not null;index" json:"userId"`
	PropertyID uint  `gorm:"not null;index" json:"propertyId"`
	RoomTypeID uint  `gorm:"not null;index" json:"roomTypeId"`
	RoomID     *uint `gorm:"column:room_id;index" json:"roomId,omitempty"`

	StartDate   time.Time   `gorm:"not null;index" json:"startDate"`
	EndDate     time.Time   `gorm:"not null;index" json:"endDate"`
	OrderStatus OrderStatus `gorm:"size:32;not null;index" json:"orderStatus"`

	AccompanyingGuests datatypes.JSON `json:"accompanyingGuests,omitempty"`

	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	User     User     `gorm:"foreignKey:UserID" json:"user,omitempty"`
	Property Property `gorm:"foreignKey:PropertyID" json:"property,omitempty"`
	RoomType RoomType `gorm:"foreignKey:RoomTypeID" json:"roomType,omitempty"`
	Payment  *Payment `gorm:"foreignKey:ReservationID" json:"payment,omitempty"`
}

// PaymentAmount is zero when the reservation has no payment yet.
func (r Reservation) PaymentAmount() decimal.Decimal {
	if r.Payment == nil {
		return decimal.Zero
	}
	return r.Payment.Amount
}

func (r Reservation) InvoiceNumber() string {
	if r.Payment == nil {
		return ""
	}
	return r.Payment.InvoiceNumber
}

// Nights counts calendar nights between start and end, never below zero.
func (r Reservation) Nights() int {
	start := time.Date(r.StartDate.Year(), r.StartDate.Month(), r.StartDate.Day(), 0, 0, 0, 0, time.UTC)
	end := time.Date(r.EndDate.Year(), r.EndDate.Month(), r.EndDate.Day(), 0, 0, 0, 0, time.UTC)
	n := int(end.Sub(start).Hours() / 24)
	if n < 0 {
		return 0
	}
	return n
}
