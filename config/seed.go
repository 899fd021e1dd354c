package config

import (
	"errors"
	"log"
	"time"

	"rental-backend/models"
	"rental-backend/utils"

	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

const demoOwnerEmail = "owner@rental.local"

// SeedDemo creates a demo owner with one property, its inventory and a few
// reservations. It does nothing when the demo owner already exists.
func SeedDemo(db *gorm.DB) error {
	var existing models.User
	err := db.Where("email = ?", demoOwnerEmail).First(&existing).Error
	if err == nil {
		log.Println("Demo data already seeded")
		return nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(utils.EnvOrDefault("SEED_DEMO_PASSWORD", "owner123")), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	return db.Transaction(func(tx *gorm.DB) error {
		owner := models.User{
			Email:    demoOwnerEmail,
			Password: string(hash),
			Role:     models.RoleOwner,
			Profile:  models.UserProfile{FirstName: "Demo", LastName: "Owner"},
		}
		if err := tx.Create(&owner).Error; err != nil {
			return err
		}

		customer := models.User{
			Email:   "guest@rental.local",
			Role:    models.RoleCustomer,
			Profile: models.UserProfile{FirstName: "Demo", LastName: "Guest"},
		}
		if err := tx.Create(&customer).Error; err != nil {
			return err
		}

		location := models.Location{
			Address: "Jl. Sunset Road 88",
			City:    models.City{Name: "Denpasar", Province: models.Province{Name: "Bali"}},
		}
		if err := tx.Create(&location).Error; err != nil {
			return err
		}

		property := models.Property{
			OwnerID:    owner.ID,
			Name:       "Sunset Villas",
			RentalType: "VILLA",
			LocationID: &location.ID,
			RoomTypes: []models.RoomType{
				{Name: "Standard", MaxGuests: 2, BasePrice: decimal.NewFromInt(500000), TotalQuantity: 4},
				{Name: "Deluxe", MaxGuests: 4, BasePrice: decimal.NewFromInt(900000), TotalQuantity: 2},
			},
		}
		if err := tx.Create(&property).Error; err != nil {
			return err
		}

		today := time.Now().UTC().Truncate(24 * time.Hour)
		for _, rt := range property.RoomTypes {
			room := models.Room{RoomTypeID: rt.ID, RoomNumber: rt.Name[:1] + "101", Floor: "1"}
			if err := tx.Create(&room).Error; err != nil {
				return err
			}
			for d := 0; d < 14; d++ {
				a := models.Availability{RoomTypeID: rt.ID, Date: today.AddDate(0, 0, d), AvailableCount: rt.TotalQuantity}
				if err := tx.Create(&a).Error; err != nil {
					return err
				}
			}
		}

		bookings := []struct {
			roomType models.RoomType
			status   models.OrderStatus
			amount   int64
			offset   int
		}{
			{property.RoomTypes[0], models.OrderStatusConfirmed, 1000000, 2},
			{property.RoomTypes[0], models.OrderStatusPendingPayment, 500000, 5},
			{property.RoomTypes[1], models.OrderStatusCancelled, 0, 7},
		}
		for _, b := range bookings {
			start := today.AddDate(0, 0, b.offset)
			r := models.Reservation{
				UserID:      customer.ID,
				PropertyID:  property.ID,
				RoomTypeID:  b.roomType.ID,
				StartDate:   start,
				EndDate:     start.AddDate(0, 0, 2),
				OrderStatus: b.status,
			}
			if err := tx.Create(&r).Error; err != nil {
				return err
			}
			invoice, err := utils.GenerateInvoiceNumber(start)
			if err != nil {
				return err
			}
			p := models.Payment{ReservationID: r.ID, InvoiceNumber: invoice, Amount: decimal.NewFromInt(b.amount)}
			if err := tx.Create(&p).Error; err != nil {
				return err
			}
		}

		log.Println("Demo data seeded")
		return nil
	})
}
