package services

import (
	"context"
	"fmt"
	"time"

	"rental-backend/models"
	"rental-backend/utils"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

const maxAvailabilityDays = 366

// AvailabilityService maintains the daily remaining inventory of room types.
type AvailabilityService struct {
	DB *gorm.DB
}

func NewAvailabilityService(db *gorm.DB) *AvailabilityService {
	return &AvailabilityService{DB: db}
}

// SetRange writes count for every date in [from, to], replacing existing rows.
func (s *AvailabilityService) SetRange(ctx context.Context, ownerID, roomTypeID uint, from, to time.Time, count int) ([]models.Availability, error) {
	rt, err := ownedRoomType(ctx, s.DB, ownerID, roomTypeID)
	if err != nil {
		return nil, utils.WrapServiceError(err, "set availability", ErrRoomTypeNotFound)
	}

	from = truncateDay(from)
	to = truncateDay(to)
	switch {
	case to.Before(from):
		return nil, fmt.Errorf("%w: end date before start date", ErrInvalidInput)
	case count < 0:
		return nil, fmt.Errorf("%w: count must not be negative", ErrInvalidInput)
	case count > rt.TotalQuantity:
		return nil, fmt.Errorf("%w: count %d exceeds total quantity %d", ErrInvalidInput, count, rt.TotalQuantity)
	}

	var rows []models.Availability
	for d := from; !d.After(to); d = d.AddDate(0, 0, 1) {
		rows = append(rows, models.Availability{RoomTypeID: rt.ID, Date: d, AvailableCount: count})
		if len(rows) > maxAvailabilityDays {
			return nil, fmt.Errorf("%w: range longer than %d days", ErrInvalidInput, maxAvailabilityDays)
		}
	}

	err = s.DB.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "room_type_id"}, {Name: "date"}},
		DoUpdates: clause.AssignmentColumns([]string{"available_count"}),
	}).Create(&rows).Error
	if err != nil {
		return nil, utils.WrapServiceError(err, "set availability")
	}
	return s.List(ctx, ownerID, roomTypeID, from, to)
}

func (s *AvailabilityService) List(ctx context.Context, ownerID, roomTypeID uint, from, to time.Time) ([]models.Availability, error) {
	if _, err := ownedRoomType(ctx, s.DB, ownerID, roomTypeID); err != nil {
		return nil, utils.WrapServiceError(err, "list availability", ErrRoomTypeNotFound)
	}
	var rows []models.Availability
	err := s.DB.WithContext(ctx).
		Where("room_type_id = ? AND date >= ? AND date <= ?", roomTypeID, truncateDay(from), truncateDay(to)).
		Order("date ASC").
		Find(&rows).Error
	if err != nil {
		return nil, utils.WrapServiceError(err, "list availability")
	}
	return rows, nil
}

func truncateDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
