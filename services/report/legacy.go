package report

import (
	"context"
	"log"
	"time"

	"rental-backend/models"
	"rental-backend/utils"
)

// CachedSummary is a summary read from the cache or freshly recomputed.
type CachedSummary struct {
	Summary
	FromCache bool `json:"fromCache"`
}

type RoomTypeReport struct {
	RoomType RoomTypeRef   `json:"roomType"`
	Summary  CachedSummary `json:"summary"`
}

type PropertyReport struct {
	Property  PropertyInfo     `json:"property"`
	Period    PeriodConfig     `json:"period"`
	Summary   CachedSummary    `json:"summary"`
	RoomTypes []RoomTypeReport `json:"roomTypes,omitempty"`
}

// PropertiesReport returns the summary of every owned property for the period,
// served from fresh cache rows where available.
func (s *Service) PropertiesReport(ctx context.Context, ownerID uint, start, end *time.Time) ([]PropertyReport, error) {
	period, err := BuildPeriodConfig(start, end)
	if err != nil {
		return nil, utils.WrapServiceError(err, "build properties report", ErrInvalidDate)
	}
	window := NewDateWindow(start, end)

	properties, err := s.store.OwnerProperties(ctx, ownerID)
	if err != nil {
		return nil, utils.WrapServiceError(err, "build properties report")
	}

	out := make([]PropertyReport, 0, len(properties))
	for _, p := range properties {
		summary, err := s.propertySummary(ctx, ownerID, p.ID, period, window)
		if err != nil {
			return nil, utils.WrapServiceError(err, "build properties report")
		}
		out = append(out, PropertyReport{Property: propertyInfo(p), Period: period, Summary: summary})
	}
	return out, nil
}

// PropertyReport returns one owned property with a summary per room type.
func (s *Service) PropertyReport(ctx context.Context, ownerID, propertyID uint, start, end *time.Time) (PropertyReport, error) {
	period, err := BuildPeriodConfig(start, end)
	if err != nil {
		return PropertyReport{}, utils.WrapServiceError(err, "build property report", ErrInvalidDate)
	}
	window := NewDateWindow(start, end)

	properties, err := s.store.OwnerProperties(ctx, ownerID)
	if err != nil {
		return PropertyReport{}, utils.WrapServiceError(err, "build property report")
	}
	property, ok := findProperty(properties, propertyID)
	if !ok {
		return PropertyReport{}, ErrNotOwned
	}

	summary, err := s.propertySummary(ctx, ownerID, propertyID, period, window)
	if err != nil {
		return PropertyReport{}, utils.WrapServiceError(err, "build property report")
	}

	roomTypes, err := s.store.OwnerRoomTypes(ctx, ownerID)
	if err != nil {
		return PropertyReport{}, utils.WrapServiceError(err, "build property report")
	}
	report := PropertyReport{Property: propertyInfo(property), Period: period, Summary: summary, RoomTypes: []RoomTypeReport{}}
	for _, rt := range roomTypesOfProperty(roomTypes, propertyID) {
		rtSummary, err := s.roomTypeSummary(ctx, ownerID, rt, period, window)
		if err != nil {
			return PropertyReport{}, utils.WrapServiceError(err, "build property report")
		}
		report.RoomTypes = append(report.RoomTypes, RoomTypeReport{
			RoomType: RoomTypeRef{ID: rt.ID, Name: rt.Name},
			Summary:  rtSummary,
		})
	}
	return report, nil
}

func (s *Service) propertySummary(ctx context.Context, ownerID, propertyID uint, period PeriodConfig, w DateWindow) (CachedSummary, error) {
	if summary, ok := s.tryPropertyCache(ctx, ownerID, propertyID, period); ok {
		return CachedSummary{Summary: summary, FromCache: true}, nil
	}
	summary, err := s.computeAndStoreProperty(ctx, ownerID, propertyID, period, w)
	return CachedSummary{Summary: summary}, err
}

func (s *Service) roomTypeSummary(ctx context.Context, ownerID uint, rt models.RoomType, period PeriodConfig, w DateWindow) (CachedSummary, error) {
	if summary, ok := s.tryRoomTypeCache(ctx, ownerID, rt.ID, period); ok {
		return CachedSummary{Summary: summary, FromCache: true}, nil
	}
	summary, err := s.computeAndStoreRoomType(ctx, ownerID, rt, period, w)
	return CachedSummary{Summary: summary}, err
}

// tryPropertyCache hits only on a row younger than the cache TTL. Read errors count as misses.
func (s *Service) tryPropertyCache(ctx context.Context, ownerID, propertyID uint, period PeriodConfig) (Summary, bool) {
	row, err := s.cache.FindProperty(ctx, ownerID, propertyID, period)
	if err != nil {
		log.Printf("⚠️ report cache read for property %d: %v", propertyID, err)
		return Summary{}, false
	}
	if row == nil || s.expired(row.LastUpdated) {
		return Summary{}, false
	}
	return PropertyRowSummary(*row), true
}

func (s *Service) tryRoomTypeCache(ctx context.Context, ownerID, roomTypeID uint, period PeriodConfig) (Summary, bool) {
	row, err := s.cache.FindRoomType(ctx, ownerID, roomTypeID, period)
	if err != nil {
		log.Printf("⚠️ report cache read for room type %d: %v", roomTypeID, err)
		return Summary{}, false
	}
	if row == nil || s.expired(row.LastUpdated) {
		return Summary{}, false
	}
	return RoomTypeRowSummary(*row), true
}

// computeAndStoreProperty recomputes from live reservations. A failed cache write is
// logged; the computed summary is still returned.
func (s *Service) computeAndStoreProperty(ctx context.Context, ownerID, propertyID uint, period PeriodConfig, w DateWindow) (Summary, error) {
	reservations, err := s.store.OwnerReservations(ctx, ownerID, ReservationQuery{PropertyID: &propertyID, Window: w, Lean: true})
	if err != nil {
		return Summary{}, err
	}
	figures := figuresFor(reservations)
	if err := s.cache.UpsertProperty(ctx, ownerID, propertyID, period, figures.absolute()); err != nil {
		log.Printf("⚠️ report cache write for property %d: %v", propertyID, err)
	}
	return figures.summary, nil
}

func (s *Service) computeAndStoreRoomType(ctx context.Context, ownerID uint, rt models.RoomType, period PeriodConfig, w DateWindow) (Summary, error) {
	reservations, err := s.store.OwnerReservations(ctx, ownerID, ReservationQuery{RoomTypeID: &rt.ID, Window: w, Lean: true})
	if err != nil {
		return Summary{}, err
	}
	figures := figuresFor(reservations)
	in := figures.absolute()
	in.PropertyID = rt.PropertyID
	if err := s.cache.UpsertRoomType(ctx, ownerID, rt.ID, period, in); err != nil {
		log.Printf("⚠️ report cache write for room type %d: %v", rt.ID, err)
	}
	return figures.summary, nil
}

func (s *Service) expired(lastUpdated time.Time) bool {
	return s.now().Sub(lastUpdated) > s.cfg.CacheTTL
}

func propertyInfo(p models.Property) PropertyInfo {
	return PropertyInfo{
		ID:       p.ID,
		Name:     p.Name,
		Picture:  p.MainPicture,
		Address:  p.Location.Address,
		City:     p.CityName(),
		Province: p.ProvinceName(),
	}
}

func findProperty(properties []models.Property, id uint) (models.Property, bool) {
	for _, p := range properties {
		if p.ID == id {
			return p, true
		}
	}
	return models.Property{}, false
}
