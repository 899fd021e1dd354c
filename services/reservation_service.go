package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"rental-backend/models"
	"rental-backend/services/report"
	"rental-backend/utils"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// allowedTransitions lists the statuses each status may move to.
var allowedTransitions = map[models.OrderStatus][]models.OrderStatus{
	models.OrderStatusPendingPayment:      {models.OrderStatusPendingConfirmation, models.OrderStatusCancelled},
	models.OrderStatusPendingConfirmation: {models.OrderStatusConfirmed, models.OrderStatusCancelled},
	models.OrderStatusConfirmed:           {models.OrderStatusCancelled},
}

func CanTransition(from, to models.OrderStatus) bool {
	for _, s := range allowedTransitions[from] {
		if s == to {
			return true
		}
	}
	return false
}

// ReservationService changes reservation status and keeps the monthly
// performance summaries in step with it.
type ReservationService struct {
	DB    *gorm.DB
	cache *report.SummaryCache
}

func NewReservationService(db *gorm.DB, cache *report.SummaryCache) *ReservationService {
	return &ReservationService{DB: db, cache: cache}
}

// Get returns a reservation of one of the owner's properties.
func (s *ReservationService) Get(ctx context.Context, ownerID, id uint) (*models.Reservation, error) {
	var r models.Reservation
	err := s.ownedQuery(s.DB.WithContext(ctx), ownerID).
		Preload("Payment").
		Preload("User.Profile").
		Preload("RoomType").
		First(&r, "reservations.id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrReservationNotFound
	}
	if err != nil {
		return nil, utils.WrapServiceError(err, "get reservation")
	}
	return &r, nil
}

// UpdateStatus moves the reservation to next when the transition is allowed. Cached
// month rows overlapping the stay are then adjusted with increments; rows that do
// not exist yet are left to the next full recomputation.
func (s *ReservationService) UpdateStatus(ctx context.Context, ownerID, id uint, next models.OrderStatus) (*models.Reservation, error) {
	if !next.Valid() {
		return nil, fmt.Errorf("%w: unknown status %q", ErrInvalidStatusTransition, next)
	}

	var (
		r    models.Reservation
		prev models.OrderStatus
	)
	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		err := s.ownedQuery(tx, ownerID).
			Clauses(clause.Locking{Strength: "UPDATE"}).
			First(&r, "reservations.id = ?", id).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrReservationNotFound
		}
		if err != nil {
			return err
		}

		prev = r.OrderStatus
		if !CanTransition(prev, next) {
			return fmt.Errorf("%w: %s -> %s", ErrInvalidStatusTransition, prev, next)
		}

		if err := tx.Model(&models.Reservation{}).Where("id = ?", r.ID).
			Update("order_status", next).Error; err != nil {
			return err
		}
		if next == models.OrderStatusConfirmed {
			now := time.Now().UTC()
			if err := tx.Model(&models.Payment{}).
				Where("reservation_id = ? AND paid_at IS NULL", r.ID).
				Updates(map[string]interface{}{"status": "PAID", "paid_at": now}).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, utils.WrapServiceError(err, "update reservation status", ErrReservationNotFound, ErrInvalidStatusTransition)
	}

	updated, err := s.Get(ctx, ownerID, id)
	if err != nil {
		return nil, err
	}
	s.applySummaryDelta(ctx, ownerID, *updated, prev)
	log.Printf("✅ reservation %d: %s -> %s", id, prev, next)
	return updated, nil
}

// applySummaryDelta logs failures; the status change itself is already committed.
func (s *ReservationService) applySummaryDelta(ctx context.Context, ownerID uint, r models.Reservation, prev models.OrderStatus) {
	if s.cache == nil {
		return
	}
	delta := report.StatusChangeDelta(prev, r.OrderStatus, r.PaymentAmount())

	for _, month := range monthsCovered(r.StartDate, r.EndDate) {
		period, _ := report.MonthPeriod(month)

		row, err := s.cache.FindProperty(ctx, ownerID, r.PropertyID, period)
		if err != nil {
			log.Printf("⚠️ summary delta: property %d %s: %v", r.PropertyID, period.PeriodKey, err)
		} else if row != nil {
			if err := s.cache.UpsertProperty(ctx, ownerID, r.PropertyID, period, delta); err != nil {
				log.Printf("⚠️ summary delta: property %d %s: %v", r.PropertyID, period.PeriodKey, err)
			}
		}

		rtRow, err := s.cache.FindRoomType(ctx, ownerID, r.RoomTypeID, period)
		if err != nil {
			log.Printf("⚠️ summary delta: room type %d %s: %v", r.RoomTypeID, period.PeriodKey, err)
		} else if rtRow != nil {
			rtDelta := delta
			rtDelta.PropertyID = r.PropertyID
			if err := s.cache.UpsertRoomType(ctx, ownerID, r.RoomTypeID, period, rtDelta); err != nil {
				log.Printf("⚠️ summary delta: room type %d %s: %v", r.RoomTypeID, period.PeriodKey, err)
			}
		}
	}
}

func (s *ReservationService) ownedQuery(db *gorm.DB, ownerID uint) *gorm.DB {
	return db.Model(&models.Reservation{}).
		Select("reservations.*").
		Joins("JOIN properties ON properties.id = reservations.property_id AND properties.deleted_at IS NULL").
		Where("properties.owner_id = ?", ownerID)
}

// monthsCovered returns the first day of every month from start's month to end's month.
func monthsCovered(start, end time.Time) []time.Time {
	first := time.Date(start.Year(), start.Month(), 1, 0, 0, 0, 0, time.UTC)
	last := time.Date(end.Year(), end.Month(), 1, 0, 0, 0, 0, time.UTC)
	if last.Before(first) {
		last = first
	}
	var months []time.Time
	for m := first; !m.After(last); m = m.AddDate(0, 1, 0) {
		months = append(months, m)
	}
	return months
}
