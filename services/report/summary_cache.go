package report

import (
	"context"
	"fmt"

	"rental-backend/models"
)

// SummaryCache reads and writes the performance summary rows of an owner's
// properties and room types, checking ownership on every access.
type SummaryCache struct {
	store Store
}

func NewSummaryCache(store Store) *SummaryCache {
	return &SummaryCache{store: store}
}

// FindProperty returns nil when the property is not owned or no row exists.
func (c *SummaryCache) FindProperty(ctx context.Context, ownerID, propertyID uint, period PeriodConfig) (*models.PropertyPerformanceSummary, error) {
	owned, err := c.store.OwnsProperty(ctx, ownerID, propertyID)
	if err != nil || !owned {
		return nil, err
	}
	return c.store.PropertySummaryRow(ctx, keyFor(propertyID, period))
}

// FindRoomType returns nil when the room type is not owned or no row exists.
func (c *SummaryCache) FindRoomType(ctx context.Context, ownerID, roomTypeID uint, period PeriodConfig) (*models.RoomTypePerformanceSummary, error) {
	owned, err := c.store.OwnsRoomType(ctx, ownerID, roomTypeID)
	if err != nil || !owned {
		return nil, err
	}
	return c.store.RoomTypeSummaryRow(ctx, keyFor(roomTypeID, period))
}

func (c *SummaryCache) UpsertProperty(ctx context.Context, ownerID, propertyID uint, period PeriodConfig, in SummaryUpsert) error {
	return c.store.UpsertPropertySummary(ctx, keyFor(propertyID, period), in.forPeriod(ownerID, period))
}

func (c *SummaryCache) UpsertRoomType(ctx context.Context, ownerID, roomTypeID uint, period PeriodConfig, in SummaryUpsert) error {
	return c.store.UpsertRoomTypeSummary(ctx, keyFor(roomTypeID, period), in.forPeriod(ownerID, period))
}

// DeleteProperty fails with ErrNotFound when the property is not owned or has no row for the period.
func (c *SummaryCache) DeleteProperty(ctx context.Context, ownerID, propertyID uint, period PeriodConfig) error {
	owned, err := c.store.OwnsProperty(ctx, ownerID, propertyID)
	if err != nil {
		return err
	}
	if !owned {
		return fmt.Errorf("%w: property %d", ErrNotFound, propertyID)
	}
	n, err := c.store.DeletePropertySummary(ctx, keyFor(propertyID, period))
	if err != nil {
		return err
	}
	if n == 0 {
		return fmt.Errorf("%w: no summary for property %d in %s", ErrNotFound, propertyID, period.PeriodKey)
	}
	return nil
}

func (c *SummaryCache) DeleteRoomType(ctx context.Context, ownerID, roomTypeID uint, period PeriodConfig) error {
	owned, err := c.store.OwnsRoomType(ctx, ownerID, roomTypeID)
	if err != nil {
		return err
	}
	if !owned {
		return fmt.Errorf("%w: room type %d", ErrNotFound, roomTypeID)
	}
	n, err := c.store.DeleteRoomTypeSummary(ctx, keyFor(roomTypeID, period))
	if err != nil {
		return err
	}
	if n == 0 {
		return fmt.Errorf("%w: no summary for room type %d in %s", ErrNotFound, roomTypeID, period.PeriodKey)
	}
	return nil
}
