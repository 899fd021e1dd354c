package report

import (
	"strings"
	"time"

	"rental-backend/models"

	"github.com/shopspring/decimal"
)

// StatusCounts holds one counter per order status.
type StatusCounts struct {
	Confirmed           int `json:"CONFIRMED"`
	PendingPayment      int `json:"PENDING_PAYMENT"`
	PendingConfirmation int `json:"PENDING_CONFIRMATION"`
	Cancelled           int `json:"CANCELLED"`
}

func (c *StatusCounts) increment(status models.OrderStatus) {
	switch status {
	case models.OrderStatusConfirmed:
		c.Confirmed++
	case models.OrderStatusPendingPayment:
		c.PendingPayment++
	case models.OrderStatusPendingConfirmation:
		c.PendingConfirmation++
	case models.OrderStatusCancelled:
		c.Cancelled++
	}
}

// Pending is PENDING_PAYMENT + PENDING_CONFIRMATION.
func (c StatusCounts) Pending() int {
	return c.PendingPayment + c.PendingConfirmation
}

func (c StatusCounts) Total() int {
	return c.Confirmed + c.PendingPayment + c.PendingConfirmation + c.Cancelled
}

type Revenue struct {
	Actual    decimal.Decimal `json:"actual"`
	Projected decimal.Decimal `json:"projected"`
	Average   decimal.Decimal `json:"average"`
}

// Summary is the counts + revenue pair carried by every aggregated entity.
type Summary struct {
	Counts  StatusCounts `json:"counts"`
	Revenue Revenue      `json:"revenue"`
}

func newSummary() Summary {
	return Summary{Revenue: Revenue{Actual: decimal.Zero, Projected: decimal.Zero, Average: decimal.Zero}}
}

// addReservation folds one reservation into the summary: every status is counted,
// CONFIRMED amounts are actual revenue, positive amounts of non-cancelled statuses are projected.
func (s *Summary) addReservation(r models.Reservation) {
	s.Counts.increment(r.OrderStatus)
	amount := r.PaymentAmount()
	if r.OrderStatus == models.OrderStatusConfirmed {
		s.Revenue.Actual = s.Revenue.Actual.Add(amount)
	}
	if r.OrderStatus.CountsTowardProjected() && amount.IsPositive() {
		s.Revenue.Projected = s.Revenue.Projected.Add(amount)
	}
}

// withAverage recomputes average = actual / CONFIRMED, or 0 without confirmed bookings.
func (s Summary) withAverage() Summary {
	if s.Counts.Confirmed > 0 {
		s.Revenue.Average = s.Revenue.Actual.Div(decimal.NewFromInt(int64(s.Counts.Confirmed)))
	} else {
		s.Revenue.Average = decimal.Zero
	}
	return s
}

type PropertyInfo struct {
	ID       uint   `json:"id"`
	Name     string `json:"name"`
	Picture  string `json:"Picture"`
	Address  string `json:"address"`
	City     string `json:"city"`
	Province string `json:"province"`
}

type RoomTypeRef struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
}

type AvailabilityDate struct {
	Date        string `json:"date"`
	Available   int    `json:"available"`
	IsAvailable bool   `json:"isAvailable"`
}

type AvailabilityBlock struct {
	TotalQuantity int                `json:"totalQuantity"`
	Dates         []AvailabilityDate `json:"dates"`
}

func zeroAvailability() AvailabilityBlock {
	return AvailabilityBlock{Dates: []AvailabilityDate{}}
}

type ReservationUser struct {
	Email     string `json:"email"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
}

type ReservationLineItem struct {
	ID            uint               `json:"id"`
	UserID        uint               `json:"userId"`
	RoomID        *uint              `json:"roomId"`
	StartDate     time.Time          `json:"startDate"`
	EndDate       time.Time          `json:"endDate"`
	OrderStatus   models.OrderStatus `json:"orderStatus"`
	PaymentAmount decimal.Decimal    `json:"paymentAmount"`
	InvoiceNumber string             `json:"invoiceNumber"`
	User          ReservationUser    `json:"user"`
}

type Pagination struct {
	Page       int `json:"page"`
	PageSize   int `json:"pageSize"`
	Total      int `json:"total"`
	TotalPages int `json:"totalPages"`
}

// placeholderPagination replaces per-room-type pagination when reservation detail is omitted.
func placeholderPagination() Pagination {
	return Pagination{Page: 1, PageSize: 0, Total: 0, TotalPages: 1}
}

type RoomTypeWithAvailability struct {
	RoomType RoomTypeRef `json:"roomType"`
	Summary
	UniqueCustomers      int                   `json:"uniqueCustomers"`
	Availability         AvailabilityBlock     `json:"availability"`
	ReservationListItems []ReservationLineItem `json:"reservationListItems"`
	Pagination           Pagination            `json:"pagination"`
	TotalAmount          decimal.Decimal       `json:"totalAmount"`
}

type PropertySummary struct {
	Property  PropertyInfo               `json:"property"`
	Period    PeriodConfig               `json:"period"`
	Summary   Summary                    `json:"summary"`
	RoomTypes []RoomTypeWithAvailability `json:"roomTypes"`
}

type GlobalSummary struct {
	TotalActiveBookings   int             `json:"totalActiveBookings"`
	TotalActualRevenue    decimal.Decimal `json:"totalActualRevenue"`
	TotalProjectedRevenue decimal.Decimal `json:"totalProjectedRevenue"`
	TotalProperties       int             `json:"totalProperties"`
}

type DashboardSummary struct {
	Global     GlobalSummary `json:"Global"`
	Aggregate  Summary       `json:"Aggregate"`
	Period     PeriodConfig  `json:"period"`
	Pagination Pagination    `json:"pagination"`
}

// DashboardReport is the response of GetOwnerDashboardReport.
type DashboardReport struct {
	Properties []PropertySummary `json:"properties"`
	Summary    DashboardSummary  `json:"summary"`
}

// Filters narrows the reservations and properties of a dashboard report.
type Filters struct {
	PropertyID        *uint
	RoomTypeID        *uint
	PropertySearch    string
	City              string
	Province          string
	RoomTypeSearch    string
	CustomerName      string
	Email             string
	InvoiceNumber     string
	ReservationStatus models.OrderStatus
	StartDate         *time.Time
	EndDate           *time.Time
}

func (f Filters) reservationQuery(w DateWindow) ReservationQuery {
	return ReservationQuery{
		PropertyID:    f.PropertyID,
		RoomTypeID:    f.RoomTypeID,
		CustomerName:  strings.TrimSpace(f.CustomerName),
		Email:         strings.TrimSpace(f.Email),
		InvoiceNumber: strings.TrimSpace(f.InvoiceNumber),
		Status:        f.ReservationStatus,
		Window:        w,
	}
}

// Options controls paging, sorting and the amount of reservation detail returned.
type Options struct {
	Page                int
	PageSize            int
	ReservationPage     int
	ReservationPages    map[uint]int // per room type, overrides ReservationPage
	ReservationPageSize int
	SortBy              string
	SortDir             string
	Search              string
	FetchAllData        bool
}

func (o Options) reservationPage(roomTypeID uint) int {
	if p, ok := o.ReservationPages[roomTypeID]; ok && p > 0 {
		return p
	}
	if o.ReservationPage > 0 {
		return o.ReservationPage
	}
	return 1
}

func containsFold(s, substr string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(substr))
}
