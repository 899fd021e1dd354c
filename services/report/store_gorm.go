package report

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"rental-backend/models"
	"rental-backend/utils"

	"gorm.io/gorm"
)

// GormStore implements Store on top of the relational schema.
type GormStore struct {
	DB  *gorm.DB
	now func() time.Time
}

func NewGormStore(db *gorm.DB) *GormStore {
	return &GormStore{DB: db, now: time.Now}
}

func (s *GormStore) OwnerReservations(ctx context.Context, ownerID uint, q ReservationQuery) ([]models.Reservation, error) {
	tx := s.DB.WithContext(ctx).
		Model(&models.Reservation{}).
		Select("reservations.*").
		Joins("JOIN properties ON properties.id = reservations.property_id AND properties.deleted_at IS NULL").
		Where("properties.owner_id = ?", ownerID)

	if q.PropertyID != nil {
		tx = tx.Where("reservations.property_id = ?", *q.PropertyID)
	}
	if q.RoomTypeID != nil {
		tx = tx.Where("reservations.room_type_id = ?", *q.RoomTypeID)
	}
	// overlap: starts before the window ends and ends after it starts
	if q.Window.End != nil {
		tx = tx.Where("reservations.start_date <= ?", *q.Window.End)
	}
	if q.Window.Start != nil {
		tx = tx.Where("reservations.end_date >= ?", *q.Window.Start)
	}
	if q.Status != "" {
		tx = tx.Where("reservations.order_status = ?", q.Status)
	}
	if q.InvoiceNumber != "" {
		tx = tx.Joins("JOIN payments ON payments.reservation_id = reservations.id").
			Where("payments.invoice_number = ?", q.InvoiceNumber)
	}

	if q.CustomerName != "" || q.Email != "" {
		tx = tx.Joins("LEFT JOIN users ON users.id = reservations.user_id").
			Joins("LEFT JOIN user_profiles ON user_profiles.user_id = reservations.user_id")

		var parts []string
		var args []interface{}
		if q.CustomerName != "" {
			p := "%" + strings.ToLower(q.CustomerName) + "%"
			parts = append(parts, "LOWER(user_profiles.first_name) LIKE ?", "LOWER(user_profiles.last_name) LIKE ?")
			args = append(args, p, p)
		}
		if q.Email != "" {
			parts = append(parts, "LOWER(users.email) LIKE ?")
			args = append(args, "%"+strings.ToLower(q.Email)+"%")
		}
		tx = tx.Where("("+strings.Join(parts, " OR ")+")", args...)
	}

	tx = tx.Preload("Payment", func(db *gorm.DB) *gorm.DB {
		return db.Select("id", "reservation_id", "invoice_number", "amount")
	})
	if !q.Lean {
		tx = tx.Preload("User").
			Preload("User.Profile").
			Preload("Property.Location.City.Province").
			Preload("Property.RoomTypes").
			Preload("RoomType")
	}

	var reservations []models.Reservation
	if err := tx.Order("reservations.start_date ASC, reservations.id ASC").Find(&reservations).Error; err != nil {
		return nil, fmt.Errorf("failed to load reservations for owner %d: %w", ownerID, err)
	}
	return reservations, nil
}

func (s *GormStore) OwnerRoomTypes(ctx context.Context, ownerID uint) ([]models.RoomType, error) {
	var roomTypes []models.RoomType
	err := s.DB.WithContext(ctx).
		Model(&models.RoomType{}).
		Select("room_types.*").
		Joins("JOIN properties ON properties.id = room_types.property_id AND properties.deleted_at IS NULL").
		Where("properties.owner_id = ?", ownerID).
		Preload("Property.Location.City.Province").
		Order("room_types.property_id ASC, room_types.id ASC").
		Find(&roomTypes).Error
	if err != nil {
		return nil, fmt.Errorf("failed to load room types for owner %d: %w", ownerID, err)
	}
	return roomTypes, nil
}

func (s *GormStore) OwnerProperties(ctx context.Context, ownerID uint) ([]models.Property, error) {
	var properties []models.Property
	err := s.DB.WithContext(ctx).
		Where("owner_id = ?", ownerID).
		Preload("Location.City.Province").
		Order("id ASC").
		Find(&properties).Error
	if err != nil {
		return nil, fmt.Errorf("failed to load properties for owner %d: %w", ownerID, err)
	}
	return properties, nil
}

func (s *GormStore) RoomTypeAvailability(ctx context.Context, roomTypeID uint, w DateWindow) (int, []models.Availability, error) {
	var rt models.RoomType
	if err := s.DB.WithContext(ctx).Select("id", "total_quantity").First(&rt, roomTypeID).Error; err != nil {
		return 0, nil, fmt.Errorf("failed to load room type %d: %w", roomTypeID, err)
	}

	tx := s.DB.WithContext(ctx).Where("room_type_id = ?", roomTypeID)
	if w.Start != nil {
		tx = tx.Where("date >= ?", *w.Start)
	}
	if w.End != nil {
		tx = tx.Where("date <= ?", *w.End)
	}
	var rows []models.Availability
	if err := tx.Order("date ASC").Find(&rows).Error; err != nil {
		return 0, nil, fmt.Errorf("failed to load availability of room type %d: %w", roomTypeID, err)
	}
	return rt.TotalQuantity, rows, nil
}

func (s *GormStore) OwnsProperty(ctx context.Context, ownerID, propertyID uint) (bool, error) {
	var count int64
	err := s.DB.WithContext(ctx).Model(&models.Property{}).
		Where("id = ? AND owner_id = ?", propertyID, ownerID).
		Count(&count).Error
	if err != nil {
		return false, fmt.Errorf("failed to check property ownership: %w", err)
	}
	return count > 0, nil
}

func (s *GormStore) OwnsRoomType(ctx context.Context, ownerID, roomTypeID uint) (bool, error) {
	var count int64
	err := s.DB.WithContext(ctx).Model(&models.RoomType{}).
		Joins("JOIN properties ON properties.id = room_types.property_id AND properties.deleted_at IS NULL").
		Where("room_types.id = ? AND properties.owner_id = ?", roomTypeID, ownerID).
		Count(&count).Error
	if err != nil {
		return false, fmt.Errorf("failed to check room type ownership: %w", err)
	}
	return count > 0, nil
}

func (s *GormStore) PropertySummaryRow(ctx context.Context, key SummaryKey) (*models.PropertyPerformanceSummary, error) {
	var row models.PropertyPerformanceSummary
	err := s.DB.WithContext(ctx).
		Where("property_id = ? AND period_type = ? AND period_key = ?", key.EntityID, key.PeriodType, key.PeriodKey).
		First(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read property summary: %w", err)
	}
	return &row, nil
}

func (s *GormStore) RoomTypeSummaryRow(ctx context.Context, key SummaryKey) (*models.RoomTypePerformanceSummary, error) {
	var row models.RoomTypePerformanceSummary
	err := s.DB.WithContext(ctx).
		Where("room_type_id = ? AND period_type = ? AND period_key = ?", key.EntityID, key.PeriodType, key.PeriodKey).
		First(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read room type summary: %w", err)
	}
	return &row, nil
}

func (s *GormStore) UpsertPropertySummary(ctx context.Context, key SummaryKey, in SummaryUpsert) error {
	now := s.now().UTC()
	return s.upsert(ctx, &models.PropertyPerformanceSummary{}, "property_id", key, in.updateColumns(now, false), func() interface{} {
		return &models.PropertyPerformanceSummary{
			PropertyID:               key.EntityID,
			PeriodType:               key.PeriodType,
			PeriodKey:                key.PeriodKey,
			OwnerID:                  in.OwnerID,
			Year:                     in.Year,
			Month:                    in.Month,
			TotalRevenue:             in.TotalRevenue.initial(),
			ProjectedRevenue:         in.ProjectedRevenue.initial(),
			TotalReservations:        in.TotalReservations.initial(),
			ConfirmedCount:           in.ConfirmedCount.initial(),
			PendingPaymentCount:      in.PendingPaymentCount.initial(),
			PendingConfirmationCount: in.PendingConfirmationCount.initial(),
			CancelledCount:           in.CancelledCount.initial(),
			UniqueUsers:              in.UniqueUsers.initial(),
			LastUpdated:              now,
		}
	})
}

func (s *GormStore) UpsertRoomTypeSummary(ctx context.Context, key SummaryKey, in SummaryUpsert) error {
	now := s.now().UTC()
	return s.upsert(ctx, &models.RoomTypePerformanceSummary{}, "room_type_id", key, in.updateColumns(now, true), func() interface{} {
		return &models.RoomTypePerformanceSummary{
			RoomTypeID:               key.EntityID,
			PeriodType:               key.PeriodType,
			PeriodKey:                key.PeriodKey,
			PropertyID:               in.PropertyID,
			OwnerID:                  in.OwnerID,
			Year:                     in.Year,
			Month:                    in.Month,
			TotalRevenue:             in.TotalRevenue.initial(),
			ProjectedRevenue:         in.ProjectedRevenue.initial(),
			TotalReservations:        in.TotalReservations.initial(),
			ConfirmedCount:           in.ConfirmedCount.initial(),
			PendingPaymentCount:      in.PendingPaymentCount.initial(),
			PendingConfirmationCount: in.PendingConfirmationCount.initial(),
			CancelledCount:           in.CancelledCount.initial(),
			UniqueUsers:              in.UniqueUsers.initial(),
			TotalNightsBooked:        in.TotalNightsBooked.initial(),
			LastUpdated:              now,
		}
	})
}

// upsert updates the keyed row in place and creates it when missing. A create that
// loses a race against a concurrent creator falls back to the update.
func (s *GormStore) upsert(ctx context.Context, model interface{}, entityColumn string, key SummaryKey, updates map[string]interface{}, build func() interface{}) error {
	keyed := func() *gorm.DB {
		return s.DB.WithContext(ctx).Model(model).
			Where(entityColumn+" = ? AND period_type = ? AND period_key = ?", key.EntityID, key.PeriodType, key.PeriodKey)
	}

	res := keyed().Updates(updates)
	if res.Error != nil {
		return fmt.Errorf("failed to update performance summary: %w", res.Error)
	}
	if res.RowsAffected > 0 {
		return nil
	}

	err := s.DB.WithContext(ctx).Create(build()).Error
	if err == nil {
		return nil
	}
	if !utils.IsDuplicateKeyError(err) {
		return fmt.Errorf("failed to create performance summary: %w", err)
	}
	if err := keyed().Updates(updates).Error; err != nil {
		return fmt.Errorf("failed to update performance summary: %w", err)
	}
	return nil
}

func (s *GormStore) DeletePropertySummary(ctx context.Context, key SummaryKey) (int64, error) {
	res := s.DB.WithContext(ctx).
		Where("property_id = ? AND period_type = ? AND period_key = ?", key.EntityID, key.PeriodType, key.PeriodKey).
		Delete(&models.PropertyPerformanceSummary{})
	if res.Error != nil {
		return 0, fmt.Errorf("failed to delete property summary: %w", res.Error)
	}
	return res.RowsAffected, nil
}

func (s *GormStore) DeleteRoomTypeSummary(ctx context.Context, key SummaryKey) (int64, error) {
	res := s.DB.WithContext(ctx).
		Where("room_type_id = ? AND period_type = ? AND period_key = ?", key.EntityID, key.PeriodType, key.PeriodKey).
		Delete(&models.RoomTypePerformanceSummary{})
	if res.Error != nil {
		return 0, fmt.Errorf("failed to delete room type summary: %w", res.Error)
	}
	return res.RowsAffected, nil
}

// updateColumns maps the payload to an UPDATE set. Increments become column + ? expressions
// so concurrent deltas add up at the database.
func (in SummaryUpsert) updateColumns(now time.Time, roomType bool) map[string]interface{} {
	updates := map[string]interface{}{
		"owner_id":     in.OwnerID,
		"year":         in.Year,
		"month":        in.Month,
		"last_updated": now,
	}
	if roomType && in.PropertyID != 0 {
		updates["property_id"] = in.PropertyID
	}

	money := []struct {
		column string
		field  MoneyField
	}{
		{"total_revenue", in.TotalRevenue},
		{"projected_revenue", in.ProjectedRevenue},
	}
	for _, m := range money {
		warnMixed(m.column, m.field.Set != nil, m.field.Add != nil)
		switch {
		case m.field.Add != nil:
			updates[m.column] = gorm.Expr(m.column+" + ?", *m.field.Add)
		case m.field.Set != nil:
			updates[m.column] = *m.field.Set
		}
	}

	counters := []struct {
		column string
		field  IntField
	}{
		{"total_reservations", in.TotalReservations},
		{"confirmed_count", in.ConfirmedCount},
		{"pending_payment_count", in.PendingPaymentCount},
		{"pending_confirmation_count", in.PendingConfirmationCount},
		{"cancelled_count", in.CancelledCount},
		{"unique_users", in.UniqueUsers},
	}
	if roomType {
		counters = append(counters, struct {
			column string
			field  IntField
		}{"total_nights_booked", in.TotalNightsBooked})
	}
	for _, c := range counters {
		warnMixed(c.column, c.field.Set != nil, c.field.Add != nil)
		switch {
		case c.field.Add != nil:
			updates[c.column] = gorm.Expr(c.column+" + ?", *c.field.Add)
		case c.field.Set != nil:
			updates[c.column] = *c.field.Set
		}
	}
	return updates
}

func warnMixed(column string, hasSet, hasAdd bool) {
	if hasSet && hasAdd {
		log.Printf("⚠️ performance summary %s: absolute and increment both given, applying increment", column)
	}
}
