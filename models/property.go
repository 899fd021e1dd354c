package models

import (
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type Property struct {
	ID          uint           `gorm:"primaryKey" json:"id"`
	OwnerID     uint           `gorm:"column:owner_id;not null;index" json:"OwnerId"`
	Name        string         `gorm:"size:255;not null" json:"name"`
	RentalType  string         `gorm:"size:50" json:"rentalType"`
	MainPicture string         `gorm:"size:500" json:"mainPicture"`
	Facilities  datatypes.JSON `json:"facilities,omitempty"`

	LocationID *uint      `gorm:"column:location_id" json:"locationId,omitempty"`
	Location   Location   `gorm:"foreignKey:LocationID" json:"location"`
	RoomTypes  []RoomType `gorm:"foreignKey:PropertyID" json:"roomTypes,omitempty"`

	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

// CityName and ProvinceName are empty when the location was not preloaded.
func (p Property) CityName() string {
	return p.Location.City.Name
}

func (p Property) ProvinceName() string {
	return p.Location.City.Province.Name
}
