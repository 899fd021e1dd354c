// Package testdb opens isolated in-memory databases and builds fixtures for tests.
package testdb

import (
	"fmt"
	"strings"
	"testing"
	"time"

	"rental-backend/models"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Open returns a migrated SQLite database private to the test. It uses a single
// connection, so code under test must only use the tx handle inside transactions.
func Open(t *testing.T) *gorm.DB {
	t.Helper()

	name := strings.NewReplacer("/", "_", " ", "_", "#", "_").Replace(t.Name())
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", name)
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	require.NoError(t, db.AutoMigrate(models.All()...))
	return db
}

// Date is midnight UTC of the given day.
func Date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

// Fixture creates rows and fails the test on any error.
type Fixture struct {
	DB *gorm.DB
	T  *testing.T
}

func NewFixture(t *testing.T, db *gorm.DB) *Fixture {
	return &Fixture{DB: db, T: t}
}

func (f *Fixture) Owner(email string) models.User {
	f.T.Helper()
	u := models.User{Email: email, Role: models.RoleOwner, Profile: models.UserProfile{FirstName: "Owner"}}
	require.NoError(f.T, f.DB.Create(&u).Error)
	return u
}

func (f *Fixture) Customer(email, firstName, lastName string) models.User {
	f.T.Helper()
	u := models.User{
		Email:   email,
		Role:    models.RoleCustomer,
		Profile: models.UserProfile{FirstName: firstName, LastName: lastName},
	}
	require.NoError(f.T, f.DB.Create(&u).Error)
	return u
}

// Property creates a property located in city/province, reusing existing city and province rows.
func (f *Fixture) Property(ownerID uint, name, address, city, province string) models.Property {
	f.T.Helper()

	prov := models.Province{Name: province}
	require.NoError(f.T, f.DB.Where(models.Province{Name: province}).FirstOrCreate(&prov).Error)
	c := models.City{Name: city, ProvinceID: prov.ID}
	require.NoError(f.T, f.DB.Where(models.City{Name: city, ProvinceID: prov.ID}).FirstOrCreate(&c).Error)
	loc := models.Location{Address: address, CityID: c.ID}
	require.NoError(f.T, f.DB.Create(&loc).Error)

	p := models.Property{OwnerID: ownerID, Name: name, RentalType: "VILLA", MainPicture: "https://img.example/" + name + ".jpg", LocationID: &loc.ID}
	require.NoError(f.T, f.DB.Create(&p).Error)
	return p
}

func (f *Fixture) RoomType(propertyID uint, name string, totalQuantity int) models.RoomType {
	f.T.Helper()
	rt := models.RoomType{PropertyID: propertyID, Name: name, TotalQuantity: totalQuantity, BasePrice: decimal.NewFromInt(100)}
	require.NoError(f.T, f.DB.Create(&rt).Error)
	return rt
}

func (f *Fixture) Availability(roomTypeID uint, date time.Time, count int) {
	f.T.Helper()
	require.NoError(f.T, f.DB.Create(&models.Availability{RoomTypeID: roomTypeID, Date: date, AvailableCount: count}).Error)
}

// Reservation books rt for nights nights from start with a payment of amount.
// An empty invoice skips the payment row.
func (f *Fixture) Reservation(customer models.User, rt models.RoomType, status models.OrderStatus, start time.Time, nights int, amount int64, invoice string) models.Reservation {
	f.T.Helper()
	r := models.Reservation{
		UserID:      customer.ID,
		PropertyID:  rt.PropertyID,
		RoomTypeID:  rt.ID,
		StartDate:   start,
		EndDate:     start.AddDate(0, 0, nights),
		OrderStatus: status,
	}
	require.NoError(f.T, f.DB.Create(&r).Error)
	if invoice != "" {
		p := models.Payment{ReservationID: r.ID, InvoiceNumber: invoice, Amount: decimal.NewFromInt(amount)}
		require.NoError(f.T, f.DB.Create(&p).Error)
		r.Payment = &p
	}
	return r
}
