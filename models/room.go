package models

import (
	"gorm.io/gorm"
)

type Room struct {
	gorm.Model

	RoomTypeID uint   `json:"roomTypeId" gorm:"column:room_type_id;not null;uniqueIndex:idx_room_type_number"`
	RoomNumber string `json:"roomNumber" gorm:"column:room_number;type:varchar(50);uniqueIndex:idx_room_type_number"`
	Floor      string `json:"floor" gorm:"type:varchar(10)"`
	Status     string `json:"status" gorm:"type:varchar(32);default:Available"`

	RoomType RoomType `gorm:"foreignKey:RoomTypeID" json:"-"`
}
