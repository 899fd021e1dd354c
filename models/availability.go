package models

import "time"

// Availability is the remaining inventory of a room type on one calendar date.
type Availability struct {
	ID             uint      `gorm:"primaryKey" json:"id"`
	RoomTypeID     uint      `gorm:"not null;uniqueIndex:idx_room_type_date" json:"roomTypeId"`
	Date           time.Time `gorm:"not null;uniqueIndex:idx_room_type_date" json:"date"`
	AvailableCount int       `gorm:"not null;default:0" json:"availableCount"`
}
