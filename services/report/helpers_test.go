package report

import (
	"time"

	"rental-backend/models"

	"github.com/shopspring/decimal"
)

func dec(v int64) decimal.Decimal { return decimal.NewFromInt(v) }

func roomType(id, propertyID uint, name, propertyName, city, province string) models.RoomType {
	return models.RoomType{
		ID:         id,
		PropertyID: propertyID,
		Name:       name,
		Property: &models.Property{
			ID:   propertyID,
			Name: propertyName,
			Location: models.Location{
				Address: propertyName + " street",
				City:    models.City{Name: city, Province: models.Province{Name: province}},
			},
		},
	}
}

func reservation(id, propertyID, roomTypeID, userID uint, status models.OrderStatus, amount int64) models.Reservation {
	start := time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC)
	return models.Reservation{
		ID:          id,
		UserID:      userID,
		PropertyID:  propertyID,
		RoomTypeID:  roomTypeID,
		StartDate:   start,
		EndDate:     start.AddDate(0, 0, 2),
		OrderStatus: status,
		Payment: &models.Payment{
			ReservationID: id,
			InvoiceNumber: "INV-" + string(rune('A'+id)),
			Amount:        dec(amount),
		},
	}
}
