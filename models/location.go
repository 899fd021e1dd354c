package models

type Province struct {
	ID   uint   `gorm:"primaryKey" json:"id"`
	Name string `gorm:"size:120;uniqueIndex" json:"name"`
}

type City struct {
	ID         uint     `gorm:"primaryKey" json:"id"`
	Name       string   `gorm:"size:120;index" json:"name"`
	ProvinceID uint     `gorm:"index" json:"provinceId"`
	Province   Province `gorm:"foreignKey:ProvinceID" json:"province"`
}

type Location struct {
	ID        uint    `gorm:"primaryKey" json:"id"`
	Address   string  `gorm:"type:text" json:"address"`
	CityID    uint    `gorm:"index" json:"cityId"`
	City      City    `gorm:"foreignKey:CityID" json:"city"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}
