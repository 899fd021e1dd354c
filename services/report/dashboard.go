package report

import (
	"context"
	"fmt"
	"log"
	"time"

	"rental-backend/models"

	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"
)

// Service builds owner reports.
type Service struct {
	store     Store
	cache     *SummaryCache
	refresher *Refresher
	cfg       Config
	now       func() time.Time
}

// NewService wires the report engine. lock may be nil, in which case refreshes are
// only de-duplicated within this process.
func NewService(store Store, cfg Config, lock RefreshLocker) *Service {
	cfg = cfg.withDefaults()
	cache := NewSummaryCache(store)
	return &Service{
		store:     store,
		cache:     cache,
		refresher: NewRefresher(store, cache, lock, cfg),
		cfg:       cfg,
		now:       time.Now,
	}
}

func (s *Service) Cache() *SummaryCache { return s.cache }

func (s *Service) Refresher() *Refresher { return s.refresher }

// WaitForRefreshes blocks until background cache refreshes have finished.
func (s *Service) WaitForRefreshes() { s.refresher.Wait() }

// GetOwnerDashboardReport never fails: any pipeline error is logged and an empty
// report for the requested period is returned.
func (s *Service) GetOwnerDashboardReport(ctx context.Context, ownerID uint, f Filters, o Options) DashboardReport {
	report, err := s.BuildOwnerDashboardReport(ctx, ownerID, f, o)
	if err != nil {
		log.Printf("❌ dashboard report for owner %d failed, returning empty report: %v", ownerID, err)
		return s.emptyReport(f, o)
	}
	return report
}

// BuildOwnerDashboardReport runs the report pipeline and returns its first error.
func (s *Service) BuildOwnerDashboardReport(ctx context.Context, ownerID uint, f Filters, o Options) (DashboardReport, error) {
	if o.Page < 0 || o.PageSize < 0 || o.ReservationPage < 0 || o.ReservationPageSize < 0 {
		return DashboardReport{}, ErrInvalidPagination
	}
	period, err := BuildPeriodConfig(f.StartDate, f.EndDate)
	if err != nil {
		return DashboardReport{}, err
	}
	window := NewDateWindow(f.StartDate, f.EndDate)

	var (
		global       GlobalSummary
		reservations []models.Reservation
		roomTypes    []models.RoomType
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		global, err = s.loadGlobalSummary(gctx, ownerID, window)
		if err != nil {
			return fmt.Errorf("global summary: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		reservations, err = s.store.OwnerReservations(gctx, ownerID, f.reservationQuery(window))
		if err != nil {
			return fmt.Errorf("reservations: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		roomTypes, err = s.store.OwnerRoomTypes(gctx, ownerID)
		if err != nil {
			return fmt.Errorf("room types: %w", err)
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		return DashboardReport{}, err
	}

	if f.PropertyID != nil {
		roomTypes = roomTypesOfProperty(roomTypes, *f.PropertyID)
	}

	grouped := groupReservations(roomTypes, reservations)
	availability := s.loadAvailability(ctx, grouped.roomTypeIDs(), window)
	uniqueCustomers := countUniqueCustomers(reservations)
	lists := buildReservationLists(grouped, reservations, f, o, s.cfg.DefaultPageSize)

	page := filterSortPaginate(grouped.assemble(period, availability, uniqueCustomers, lists), f, o, s.cfg.DefaultPageSize)
	aggregate := AggregateSummaries(propertySummaries(page.properties))

	s.refresher.Trigger(ownerID, period, window, reservations)

	if !o.FetchAllData {
		stripReservationDetail(page.properties)
	}

	return DashboardReport{
		Properties: page.properties,
		Summary: DashboardSummary{
			Global:    global,
			Aggregate: aggregate,
			Period:    period,
			Pagination: Pagination{
				Page:       page.page,
				PageSize:   page.pageSize,
				Total:      page.total,
				TotalPages: page.totalPages,
			},
		},
	}, nil
}

func (s *Service) emptyReport(f Filters, o Options) DashboardReport {
	period, err := BuildPeriodConfig(f.StartDate, f.EndDate)
	if err != nil {
		period = PeriodConfig{}
	}
	page, pageSize := o.Page, o.PageSize
	if page <= 0 {
		page = 1
	}
	if pageSize <= 0 {
		pageSize = s.cfg.DefaultPageSize
	}
	return DashboardReport{
		Properties: []PropertySummary{},
		Summary: DashboardSummary{
			Global:     GlobalSummary{TotalActualRevenue: decimal.Zero, TotalProjectedRevenue: decimal.Zero},
			Aggregate:  newSummary(),
			Period:     period,
			Pagination: Pagination{Page: page, PageSize: pageSize},
		},
	}
}

// stripReservationDetail drops per-room-type line items, keeping totalAmount.
func stripReservationDetail(properties []PropertySummary) {
	for i := range properties {
		roomTypes := make([]RoomTypeWithAvailability, len(properties[i].RoomTypes))
		for j, rt := range properties[i].RoomTypes {
			rt.ReservationListItems = []ReservationLineItem{}
			rt.Pagination = placeholderPagination()
			roomTypes[j] = rt
		}
		properties[i].RoomTypes = roomTypes
	}
}

func roomTypesOfProperty(roomTypes []models.RoomType, propertyID uint) []models.RoomType {
	out := make([]models.RoomType, 0, len(roomTypes))
	for _, rt := range roomTypes {
		if rt.PropertyID == propertyID {
			out = append(out, rt)
		}
	}
	return out
}
