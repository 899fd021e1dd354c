package report

import (
	"context"

	"rental-backend/models"

	"github.com/shopspring/decimal"
)

// ReservationQuery is the conjunctive reservation filter of the report engine.
// CustomerName and Email are OR-ed case-insensitive substring matches.
type ReservationQuery struct {
	PropertyID    *uint
	RoomTypeID    *uint
	CustomerName  string
	Email         string
	InvoiceNumber string
	Status        models.OrderStatus
	Window        DateWindow
	// Lean skips the profile/property/room type joins; only the payment is loaded.
	Lean bool
}

// SummaryKey identifies one performance summary row.
type SummaryKey struct {
	EntityID   uint
	PeriodType string
	PeriodKey  string
}

func keyFor(entityID uint, period PeriodConfig) SummaryKey {
	return SummaryKey{EntityID: entityID, PeriodType: period.PeriodType, PeriodKey: period.PeriodKey}
}

// Store is the persistence the report engine reads and writes.
type Store interface {
	OwnerReservations(ctx context.Context, ownerID uint, q ReservationQuery) ([]models.Reservation, error)
	OwnerRoomTypes(ctx context.Context, ownerID uint) ([]models.RoomType, error)
	OwnerProperties(ctx context.Context, ownerID uint) ([]models.Property, error)
	RoomTypeAvailability(ctx context.Context, roomTypeID uint, w DateWindow) (int, []models.Availability, error)

	OwnsProperty(ctx context.Context, ownerID, propertyID uint) (bool, error)
	OwnsRoomType(ctx context.Context, ownerID, roomTypeID uint) (bool, error)

	// PropertySummaryRow and RoomTypeSummaryRow return nil, nil when no row exists.
	PropertySummaryRow(ctx context.Context, key SummaryKey) (*models.PropertyPerformanceSummary, error)
	RoomTypeSummaryRow(ctx context.Context, key SummaryKey) (*models.RoomTypePerformanceSummary, error)
	UpsertPropertySummary(ctx context.Context, key SummaryKey, in SummaryUpsert) error
	UpsertRoomTypeSummary(ctx context.Context, key SummaryKey, in SummaryUpsert) error
	DeletePropertySummary(ctx context.Context, key SummaryKey) (int64, error)
	DeleteRoomTypeSummary(ctx context.Context, key SummaryKey) (int64, error)
}

// IntField is one counter of an upsert: Add is applied as an atomic relative update
// and wins over Set; with neither, the column is left untouched on update.
type IntField struct {
	Set *int64
	Add *int64
}

func SetInt(v int64) IntField { return IntField{Set: &v} }
func AddInt(v int64) IntField { return IntField{Add: &v} }

func (f IntField) initial() int64 {
	switch {
	case f.Set != nil:
		return *f.Set
	case f.Add != nil:
		return *f.Add
	}
	return 0
}

type MoneyField struct {
	Set *decimal.Decimal
	Add *decimal.Decimal
}

func SetMoney(v decimal.Decimal) MoneyField { return MoneyField{Set: &v} }
func AddMoney(v decimal.Decimal) MoneyField { return MoneyField{Add: &v} }

func (f MoneyField) initial() decimal.Decimal {
	switch {
	case f.Set != nil:
		return *f.Set
	case f.Add != nil:
		return *f.Add
	}
	return decimal.Zero
}

// SummaryUpsert is the payload of a performance summary write. PropertyID and
// TotalNightsBooked only apply to room type rows.
type SummaryUpsert struct {
	OwnerID    uint
	PropertyID uint
	Year       int
	Month      *int

	TotalRevenue     MoneyField
	ProjectedRevenue MoneyField

	TotalReservations        IntField
	ConfirmedCount           IntField
	PendingPaymentCount      IntField
	PendingConfirmationCount IntField
	CancelledCount           IntField
	UniqueUsers              IntField
	TotalNightsBooked        IntField
}

func (in SummaryUpsert) forPeriod(ownerID uint, period PeriodConfig) SummaryUpsert {
	in.OwnerID = ownerID
	in.Year = period.Year
	in.Month = period.Month
	return in
}
