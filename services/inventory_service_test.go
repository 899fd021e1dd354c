package services

import (
	"context"
	"testing"
	"time"

	"rental-backend/internal/testdb"
	"rental-backend/models"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

func seedCity(t *testing.T, db *gorm.DB) models.City {
	t.Helper()
	prov := models.Province{Name: "Bali"}
	require.NoError(t, db.Create(&prov).Error)
	city := models.City{Name: "Denpasar", ProvinceID: prov.ID}
	require.NoError(t, db.Create(&city).Error)
	return city
}

func TestPropertyServiceLifecycle(t *testing.T) {
	db := testdb.Open(t)
	fx := testdb.NewFixture(t, db)
	owner := fx.Owner("owner@example.com")
	other := fx.Owner("other@example.com")
	city := seedCity(t, db)
	svc := NewPropertyService(db)
	ctx := context.Background()

	p, err := svc.Create(ctx, owner.ID, PropertyInput{
		Name:       "  Sunset Villas ",
		RentalType: "VILLA",
		Facilities: datatypes.JSON(`["pool","wifi"]`),
		Address:    "Jl. Pantai 1",
		CityID:     city.ID,
	})
	require.NoError(t, err)
	assert.Equal(t, "Sunset Villas", p.Name)
	assert.Equal(t, "Denpasar", p.CityName())
	assert.Equal(t, "Bali", p.ProvinceName())
	assert.Equal(t, "Jl. Pantai 1", p.Location.Address)

	_, err = svc.GetByID(ctx, other.ID, p.ID)
	assert.ErrorIs(t, err, ErrPropertyNotFound)

	updated, err := svc.Update(ctx, owner.ID, p.ID, PropertyInput{Name: "Sunset Villas II", Address: "Jl. Pantai 2", CityID: city.ID})
	require.NoError(t, err)
	assert.Equal(t, "Sunset Villas II", updated.Name)
	assert.Equal(t, "Jl. Pantai 2", updated.Location.Address)

	list, err := svc.ListByOwner(ctx, owner.ID)
	require.NoError(t, err)
	assert.Len(t, list, 1)

	assert.ErrorIs(t, svc.Delete(ctx, other.ID, p.ID), ErrPropertyNotFound)
	require.NoError(t, svc.Delete(ctx, owner.ID, p.ID))
	_, err = svc.GetByID(ctx, owner.ID, p.ID)
	assert.ErrorIs(t, err, ErrPropertyNotFound)
}

func TestPropertyServiceValidation(t *testing.T) {
	db := testdb.Open(t)
	svc := NewPropertyService(db)

	_, err := svc.Create(context.Background(), 1, PropertyInput{Name: "   "})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestRoomTypeServiceOwnership(t *testing.T) {
	db := testdb.Open(t)
	fx := testdb.NewFixture(t, db)
	owner := fx.Owner("owner@example.com")
	other := fx.Owner("other@example.com")
	p := fx.Property(owner.ID, "Sunset Villas", "Jl. Pantai 1", "Denpasar", "Bali")
	svc := NewRoomTypeService(db)
	ctx := context.Background()

	_, err := svc.Create(ctx, other.ID, p.ID, RoomTypeInput{Name: "Standard", TotalQuantity: 2})
	assert.ErrorIs(t, err, ErrPropertyNotFound)

	_, err = svc.Create(ctx, owner.ID, p.ID, RoomTypeInput{Name: "Standard", TotalQuantity: -1})
	assert.ErrorIs(t, err, ErrInvalidInput)

	rt, err := svc.Create(ctx, owner.ID, p.ID, RoomTypeInput{Name: "Standard", TotalQuantity: 2, BasePrice: decimal.NewFromInt(350000)})
	require.NoError(t, err)

	updated, err := svc.Update(ctx, owner.ID, rt.ID, RoomTypeInput{Name: "Superior", TotalQuantity: 5, BasePrice: decimal.NewFromInt(400000)})
	require.NoError(t, err)
	assert.Equal(t, "Superior", updated.Name)
	assert.Equal(t, 5, updated.TotalQuantity)

	_, err = svc.GetByID(ctx, other.ID, rt.ID)
	assert.ErrorIs(t, err, ErrRoomTypeNotFound)

	types, err := svc.ListByProperty(ctx, owner.ID, p.ID)
	require.NoError(t, err)
	assert.Len(t, types, 1)

	require.NoError(t, svc.Delete(ctx, owner.ID, rt.ID))
	assert.ErrorIs(t, svc.Delete(ctx, owner.ID, rt.ID), ErrRoomTypeNotFound)
}

func TestRoomServiceDuplicateNumber(t *testing.T) {
	db := testdb.Open(t)
	fx := testdb.NewFixture(t, db)
	owner := fx.Owner("owner@example.com")
	p := fx.Property(owner.ID, "Sunset Villas", "Jl. Pantai 1", "Denpasar", "Bali")
	rt := fx.RoomType(p.ID, "Standard", 2)
	svc := NewRoomService(db)
	ctx := context.Background()

	room, err := svc.Create(ctx, owner.ID, rt.ID, RoomInput{RoomNumber: "101", Floor: "1"})
	require.NoError(t, err)
	assert.Equal(t, "Available", room.Status)

	_, err = svc.Create(ctx, owner.ID, rt.ID, RoomInput{RoomNumber: "101"})
	assert.ErrorIs(t, err, ErrDuplicate)

	_, err = svc.Create(ctx, owner.ID, rt.ID, RoomInput{RoomNumber: "102"})
	require.NoError(t, err)

	rooms, err := svc.ListByRoomType(ctx, owner.ID, rt.ID)
	require.NoError(t, err)
	require.Len(t, rooms, 2)
	assert.Equal(t, "101", rooms[0].RoomNumber)

	assert.ErrorIs(t, svc.Delete(ctx, owner.ID+7, room.ID), ErrRoomNotFound)
	require.NoError(t, svc.Delete(ctx, owner.ID, room.ID))
	assert.ErrorIs(t, svc.Delete(ctx, owner.ID, room.ID), ErrRoomNotFound)
}

func TestAvailabilitySetRangeUpserts(t *testing.T) {
	db := testdb.Open(t)
	fx := testdb.NewFixture(t, db)
	owner := fx.Owner("owner@example.com")
	p := fx.Property(owner.ID, "Sunset Villas", "Jl. Pantai 1", "Denpasar", "Bali")
	rt := fx.RoomType(p.ID, "Standard", 3)
	svc := NewAvailabilityService(db)
	ctx := context.Background()

	from, to := testdb.Date(2024, time.March, 1), testdb.Date(2024, time.March, 3)
	rows, err := svc.SetRange(ctx, owner.ID, rt.ID, from, to, 3)
	require.NoError(t, err)
	require.Len(t, rows, 3)

	rows, err = svc.SetRange(ctx, owner.ID, rt.ID, testdb.Date(2024, time.March, 2), testdb.Date(2024, time.March, 4), 1)
	require.NoError(t, err)
	require.Len(t, rows, 3)

	all, err := svc.List(ctx, owner.ID, rt.ID, from, testdb.Date(2024, time.March, 4))
	require.NoError(t, err)
	require.Len(t, all, 4)
	counts := make([]int, 0, len(all))
	for _, a := range all {
		counts = append(counts, a.AvailableCount)
	}
	assert.Equal(t, []int{3, 1, 1, 1}, counts)
}

func TestAvailabilitySetRangeValidation(t *testing.T) {
	db := testdb.Open(t)
	fx := testdb.NewFixture(t, db)
	owner := fx.Owner("owner@example.com")
	p := fx.Property(owner.ID, "Sunset Villas", "Jl. Pantai 1", "Denpasar", "Bali")
	rt := fx.RoomType(p.ID, "Standard", 3)
	svc := NewAvailabilityService(db)
	ctx := context.Background()
	day := testdb.Date(2024, time.March, 1)

	_, err := svc.SetRange(ctx, owner.ID, rt.ID, day, day, 4)
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = svc.SetRange(ctx, owner.ID, rt.ID, day, day.AddDate(0, 0, -1), 1)
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = svc.SetRange(ctx, owner.ID, rt.ID, day, day.AddDate(2, 0, 0), 1)
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = svc.SetRange(ctx, owner.ID+1, rt.ID, day, day, 1)
	assert.ErrorIs(t, err, ErrRoomTypeNotFound)
}
