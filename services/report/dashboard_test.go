package report

import (
	"context"
	"errors"
	"testing"
	"time"

	"rental-backend/internal/testdb"
	"rental-backend/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type dashboardFixture struct {
	svc      *Service
	owner    models.User
	p1, p2   models.Property
	standard models.RoomType
	deluxe   models.RoomType
	cabin    models.RoomType
}

// seedDashboard builds owner O with P1 (two room types, three reservations) and P2
// (one room type, no reservations).
func seedDashboard(t *testing.T) dashboardFixture {
	t.Helper()
	svc, _, fx := newTestService(t, testdb.Date(2024, time.March, 1))

	owner := fx.Owner("owner@example.com")
	p1 := fx.Property(owner.ID, "Sunset Villas", "Jl. Pantai 1", "Denpasar", "Bali")
	p2 := fx.Property(owner.ID, "Mountain Lodge", "Jl. Bukit 9", "Bandung", "Jawa Barat")
	standard := fx.RoomType(p1.ID, "Standard", 4)
	deluxe := fx.RoomType(p1.ID, "Garden Suite", 2)
	cabin := fx.RoomType(p2.ID, "Cabin", 3)

	alice := fx.Customer("alice@example.com", "Alice", "Smith")
	bob := fx.Customer("bob@example.com", "Bob", "Jones")

	fx.Reservation(alice, standard, models.OrderStatusConfirmed, testdb.Date(2024, time.March, 10), 2, 100, "INV-20240301-AAAAAAAA")
	fx.Reservation(bob, standard, models.OrderStatusPendingPayment, testdb.Date(2024, time.March, 12), 1, 50, "INV-20240301-BBBBBBBB")
	fx.Reservation(alice, deluxe, models.OrderStatusCancelled, testdb.Date(2024, time.March, 20), 3, 0, "INV-20240301-CCCCCCCC")

	fx.Availability(standard.ID, testdb.Date(2024, time.March, 10), 3)
	fx.Availability(standard.ID, testdb.Date(2024, time.March, 11), 0)

	// another owner's data never leaks in
	other := fx.Owner("other@example.com")
	op := fx.Property(other.ID, "Elsewhere", "Jl. Lain 2", "Denpasar", "Bali")
	fx.Reservation(bob, fx.RoomType(op.ID, "Standard", 1), models.OrderStatusConfirmed, testdb.Date(2024, time.March, 5), 1, 999, "INV-20240301-ZZZZZZZZ")

	return dashboardFixture{svc: svc, owner: owner, p1: p1, p2: p2, standard: standard, deluxe: deluxe, cabin: cabin}
}

func findSummary(t *testing.T, properties []PropertySummary, id uint) PropertySummary {
	t.Helper()
	for _, p := range properties {
		if p.Property.ID == id {
			return p
		}
	}
	t.Fatalf("property %d not in report", id)
	return PropertySummary{}
}

func findRoomType(t *testing.T, p PropertySummary, id uint) RoomTypeWithAvailability {
	t.Helper()
	for _, rt := range p.RoomTypes {
		if rt.RoomType.ID == id {
			return rt
		}
	}
	t.Fatalf("room type %d not in property %d", id, p.Property.ID)
	return RoomTypeWithAvailability{}
}

func TestDashboardReportScenario(t *testing.T) {
	f := seedDashboard(t)

	report, err := f.svc.BuildOwnerDashboardReport(context.Background(), f.owner.ID, Filters{}, Options{Page: 1, PageSize: 10})
	require.NoError(t, err)

	require.Len(t, report.Properties, 2)

	p1 := findSummary(t, report.Properties, f.p1.ID)
	assert.Equal(t, "Sunset Villas", p1.Property.Name)
	assert.Equal(t, "Denpasar", p1.Property.City)
	assert.Equal(t, "Bali", p1.Property.Province)
	assert.Equal(t, StatusCounts{Confirmed: 1, PendingPayment: 1, Cancelled: 1}, p1.Summary.Counts)
	assert.Equal(t, "100", p1.Summary.Revenue.Actual.String())
	assert.Equal(t, "150", p1.Summary.Revenue.Projected.String())
	assert.Equal(t, "100", p1.Summary.Revenue.Average.String())
	require.Len(t, p1.RoomTypes, 2)

	standard := findRoomType(t, p1, f.standard.ID)
	assert.Equal(t, 2, standard.UniqueCustomers)
	assert.Equal(t, 4, standard.Availability.TotalQuantity)
	assert.Equal(t, []AvailabilityDate{
		{Date: "2024-03-10", Available: 3, IsAvailable: true},
		{Date: "2024-03-11", Available: 0, IsAvailable: false},
	}, standard.Availability.Dates)
	assert.Equal(t, "150", standard.TotalAmount.String())

	p2 := findSummary(t, report.Properties, f.p2.ID)
	assert.Equal(t, StatusCounts{}, p2.Summary.Counts)
	assert.True(t, p2.Summary.Revenue.Actual.IsZero())
	require.Len(t, p2.RoomTypes, 1)
	cabin := p2.RoomTypes[0]
	assert.Equal(t, 0, cabin.UniqueCustomers)
	assert.Equal(t, 3, cabin.Availability.TotalQuantity)
	assert.Empty(t, cabin.Availability.Dates)

	agg := report.Summary.Aggregate
	assert.Equal(t, 1, agg.Counts.Confirmed)
	assert.Equal(t, 1, agg.Counts.Pending())
	assert.Equal(t, 1, agg.Counts.Cancelled)
	assert.Equal(t, "100", agg.Revenue.Actual.String())
	assert.Equal(t, "150", agg.Revenue.Projected.String())

	global := report.Summary.Global
	assert.Equal(t, "100", global.TotalActualRevenue.String())
	assert.Equal(t, "150", global.TotalProjectedRevenue.String())
	assert.Equal(t, 2, global.TotalActiveBookings)
	// only properties with reservations are counted
	assert.Equal(t, 1, global.TotalProperties)

	assert.Equal(t, Pagination{Page: 1, PageSize: 10, Total: 2, TotalPages: 1}, report.Summary.Pagination)
	assert.Equal(t, PeriodCustom, report.Summary.Period.PeriodType)
	assert.Equal(t, "custom:open_to_open", report.Summary.Period.PeriodKey)
}

func TestDashboardReportStripsDetailByDefault(t *testing.T) {
	f := seedDashboard(t)

	report, err := f.svc.BuildOwnerDashboardReport(context.Background(), f.owner.ID, Filters{}, Options{})
	require.NoError(t, err)

	standard := findRoomType(t, findSummary(t, report.Properties, f.p1.ID), f.standard.ID)
	assert.Empty(t, standard.ReservationListItems)
	assert.NotNil(t, standard.ReservationListItems)
	assert.Equal(t, placeholderPagination(), standard.Pagination)
	assert.Equal(t, "150", standard.TotalAmount.String())
}

func TestDashboardReportFetchAllData(t *testing.T) {
	f := seedDashboard(t)

	report, err := f.svc.BuildOwnerDashboardReport(context.Background(), f.owner.ID, Filters{}, Options{
		FetchAllData:        true,
		ReservationPageSize: 1,
	})
	require.NoError(t, err)

	standard := findRoomType(t, findSummary(t, report.Properties, f.p1.ID), f.standard.ID)
	require.Len(t, standard.ReservationListItems, 2)
	assert.Equal(t, Pagination{Page: 1, PageSize: 2, Total: 2, TotalPages: 1}, standard.Pagination)

	item := standard.ReservationListItems[0]
	assert.Equal(t, "INV-20240301-AAAAAAAA", item.InvoiceNumber)
	assert.Equal(t, "alice@example.com", item.User.Email)
	assert.Equal(t, "Alice", item.User.FirstName)
	assert.Equal(t, "100", item.PaymentAmount.String())
}

func TestDashboardReportPaginatesReservations(t *testing.T) {
	f := seedDashboard(t)

	report, err := f.svc.BuildOwnerDashboardReport(context.Background(), f.owner.ID, Filters{}, Options{
		ReservationPage:     2,
		ReservationPageSize: 1,
	})
	require.NoError(t, err)

	standard := findRoomType(t, findSummary(t, report.Properties, f.p1.ID), f.standard.ID)
	// detail is stripped without fetchAllData, the total survives
	assert.Empty(t, standard.ReservationListItems)
	assert.Equal(t, "150", standard.TotalAmount.String())
}

func TestDashboardReportRoomTypeSearchWithoutMatch(t *testing.T) {
	f := seedDashboard(t)

	report, err := f.svc.BuildOwnerDashboardReport(context.Background(), f.owner.ID, Filters{RoomTypeSearch: "Deluxe"}, Options{})
	require.NoError(t, err)
	assert.NotNil(t, report.Properties)
	assert.Empty(t, report.Properties)
	assert.Equal(t, 0, report.Summary.Pagination.Total)
}

func TestDashboardReportFilters(t *testing.T) {
	f := seedDashboard(t)
	ctx := context.Background()

	t.Run("customer name", func(t *testing.T) {
		report, err := f.svc.BuildOwnerDashboardReport(ctx, f.owner.ID, Filters{CustomerName: "bob"}, Options{})
		require.NoError(t, err)
		p1 := findSummary(t, report.Properties, f.p1.ID)
		assert.Equal(t, StatusCounts{PendingPayment: 1}, p1.Summary.Counts)
	})

	t.Run("email", func(t *testing.T) {
		report, err := f.svc.BuildOwnerDashboardReport(ctx, f.owner.ID, Filters{Email: "ALICE@"}, Options{})
		require.NoError(t, err)
		p1 := findSummary(t, report.Properties, f.p1.ID)
		assert.Equal(t, StatusCounts{Confirmed: 1, Cancelled: 1}, p1.Summary.Counts)
	})

	t.Run("invoice", func(t *testing.T) {
		report, err := f.svc.BuildOwnerDashboardReport(ctx, f.owner.ID, Filters{InvoiceNumber: "INV-20240301-BBBBBBBB"}, Options{})
		require.NoError(t, err)
		p1 := findSummary(t, report.Properties, f.p1.ID)
		assert.Equal(t, 1, p1.Summary.Counts.Total())
		assert.Equal(t, 1, p1.Summary.Counts.PendingPayment)
	})

	t.Run("status", func(t *testing.T) {
		report, err := f.svc.BuildOwnerDashboardReport(ctx, f.owner.ID, Filters{ReservationStatus: models.OrderStatusCancelled}, Options{})
		require.NoError(t, err)
		p1 := findSummary(t, report.Properties, f.p1.ID)
		assert.Equal(t, StatusCounts{Cancelled: 1}, p1.Summary.Counts)
	})

	t.Run("date window", func(t *testing.T) {
		start, end := testdb.Date(2024, time.March, 15), testdb.Date(2024, time.March, 31)
		report, err := f.svc.BuildOwnerDashboardReport(ctx, f.owner.ID, Filters{StartDate: &start, EndDate: &end}, Options{})
		require.NoError(t, err)
		p1 := findSummary(t, report.Properties, f.p1.ID)
		assert.Equal(t, StatusCounts{Cancelled: 1}, p1.Summary.Counts)
		assert.Equal(t, "custom:2024-03-15_to_2024-03-31", report.Summary.Period.PeriodKey)
		assert.Empty(t, findRoomType(t, p1, f.standard.ID).Availability.Dates)
	})

	t.Run("property", func(t *testing.T) {
		report, err := f.svc.BuildOwnerDashboardReport(ctx, f.owner.ID, Filters{PropertyID: &f.p2.ID}, Options{})
		require.NoError(t, err)
		require.Len(t, report.Properties, 1)
		assert.Equal(t, f.p2.ID, report.Properties[0].Property.ID)
	})

	t.Run("city", func(t *testing.T) {
		report, err := f.svc.BuildOwnerDashboardReport(ctx, f.owner.ID, Filters{City: "bandung"}, Options{})
		require.NoError(t, err)
		require.Len(t, report.Properties, 1)
		assert.Equal(t, f.p2.ID, report.Properties[0].Property.ID)
	})
}

func TestDashboardReportIsDeterministic(t *testing.T) {
	f := seedDashboard(t)
	ctx := context.Background()
	o := Options{FetchAllData: true, SortBy: SortByName}

	first, err := f.svc.BuildOwnerDashboardReport(ctx, f.owner.ID, Filters{}, o)
	require.NoError(t, err)
	second, err := f.svc.BuildOwnerDashboardReport(ctx, f.owner.ID, Filters{}, o)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestDashboardReportInvalidPaginationFallsBack(t *testing.T) {
	f := seedDashboard(t)
	ctx := context.Background()

	_, err := f.svc.BuildOwnerDashboardReport(ctx, f.owner.ID, Filters{}, Options{Page: -1})
	assert.ErrorIs(t, err, ErrInvalidPagination)

	report := f.svc.GetOwnerDashboardReport(ctx, f.owner.ID, Filters{}, Options{Page: -1})
	assert.Empty(t, report.Properties)
	assert.NotNil(t, report.Properties)
	assert.Equal(t, 1, report.Summary.Pagination.Page)
	assert.Equal(t, DefaultPageSize, report.Summary.Pagination.PageSize)
}

type failingStore struct {
	Store
}

func (failingStore) OwnerReservations(context.Context, uint, ReservationQuery) ([]models.Reservation, error) {
	return nil, errors.New("connection reset")
}

func TestDashboardReportStoreFailureFallsBack(t *testing.T) {
	db := testdb.Open(t)
	svc := NewService(failingStore{Store: NewGormStore(db)}, DefaultConfig(), nil)
	t.Cleanup(svc.WaitForRefreshes)

	start, end := testdb.Date(2024, time.March, 1), testdb.Date(2024, time.March, 31)
	report := svc.GetOwnerDashboardReport(context.Background(), 1, Filters{StartDate: &start, EndDate: &end}, Options{PageSize: 5})

	assert.Empty(t, report.Properties)
	assert.Equal(t, PeriodMonth, report.Summary.Period.PeriodType)
	assert.Equal(t, "2024-03", report.Summary.Period.PeriodKey)
	assert.Equal(t, Pagination{Page: 1, PageSize: 5}, report.Summary.Pagination)
	assert.True(t, report.Summary.Global.TotalActualRevenue.IsZero())
}

func TestDashboardReportRefreshesCache(t *testing.T) {
	f := seedDashboard(t)
	ctx := context.Background()
	start, end := testdb.Date(2024, time.March, 1), testdb.Date(2024, time.March, 31)

	_, err := f.svc.BuildOwnerDashboardReport(ctx, f.owner.ID, Filters{StartDate: &start, EndDate: &end}, Options{})
	require.NoError(t, err)
	f.svc.WaitForRefreshes()

	period, _ := BuildPeriodConfig(&start, &end)
	row, err := f.svc.Cache().FindProperty(ctx, f.owner.ID, f.p1.ID, period)
	require.NoError(t, err)
	require.NotNil(t, row)
	assert.Equal(t, "100", row.TotalRevenue.String())
	assert.Equal(t, "150", row.ProjectedRevenue.String())
	assert.Equal(t, int64(3), row.TotalReservations)
	assert.Equal(t, int64(2), row.UniqueUsers)

	rtRow, err := f.svc.Cache().FindRoomType(ctx, f.owner.ID, f.standard.ID, period)
	require.NoError(t, err)
	require.NotNil(t, rtRow)
	assert.Equal(t, f.p1.ID, rtRow.PropertyID)
	assert.Equal(t, int64(3), rtRow.TotalNightsBooked)

	// P2 has no reservations, so nothing is refreshed for it
	p2Row, err := f.svc.Cache().FindProperty(ctx, f.owner.ID, f.p2.ID, period)
	require.NoError(t, err)
	assert.Nil(t, p2Row)
}
