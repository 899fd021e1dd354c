package report

import (
	"rental-backend/models"

	"github.com/shopspring/decimal"
)

// entityFigures is the full recomputation of one property or room type over a period.
type entityFigures struct {
	summary     Summary
	uniqueUsers int
	nights      int
}

func figuresFor(reservations []models.Reservation) entityFigures {
	f := entityFigures{summary: newSummary()}
	users := make(map[uint]struct{})
	for _, r := range reservations {
		f.summary.addReservation(r)
		users[r.UserID] = struct{}{}
		if r.OrderStatus != models.OrderStatusCancelled {
			f.nights += r.Nights()
		}
	}
	f.uniqueUsers = len(users)
	f.summary = f.summary.withAverage()
	return f
}

// absolute is the upsert that overwrites every cached figure.
func (f entityFigures) absolute() SummaryUpsert {
	c := f.summary.Counts
	return SummaryUpsert{
		TotalRevenue:             SetMoney(f.summary.Revenue.Actual),
		ProjectedRevenue:         SetMoney(f.summary.Revenue.Projected),
		TotalReservations:        SetInt(int64(c.Total())),
		ConfirmedCount:           SetInt(int64(c.Confirmed)),
		PendingPaymentCount:      SetInt(int64(c.PendingPayment)),
		PendingConfirmationCount: SetInt(int64(c.PendingConfirmation)),
		CancelledCount:           SetInt(int64(c.Cancelled)),
		UniqueUsers:              SetInt(int64(f.uniqueUsers)),
		TotalNightsBooked:        SetInt(int64(f.nights)),
	}
}

// StatusChangeDelta is the increment upsert that moves one reservation of the given
// payment amount from prev to next. Fields the transition does not touch are left unset.
func StatusChangeDelta(prev, next models.OrderStatus, amount decimal.Decimal) SummaryUpsert {
	var in SummaryUpsert
	counters := map[models.OrderStatus]*IntField{
		models.OrderStatusConfirmed:           &in.ConfirmedCount,
		models.OrderStatusPendingPayment:      &in.PendingPaymentCount,
		models.OrderStatusPendingConfirmation: &in.PendingConfirmationCount,
		models.OrderStatusCancelled:           &in.CancelledCount,
	}
	if f, ok := counters[prev]; ok {
		*f = AddInt(-1)
	}
	if f, ok := counters[next]; ok {
		*f = AddInt(1)
	}

	actual := decimal.Zero
	if prev == models.OrderStatusConfirmed {
		actual = actual.Sub(amount)
	}
	if next == models.OrderStatusConfirmed {
		actual = actual.Add(amount)
	}
	if !actual.IsZero() {
		in.TotalRevenue = AddMoney(actual)
	}

	projected := decimal.Zero
	if amount.IsPositive() {
		if prev.CountsTowardProjected() {
			projected = projected.Sub(amount)
		}
		if next.CountsTowardProjected() {
			projected = projected.Add(amount)
		}
	}
	if !projected.IsZero() {
		in.ProjectedRevenue = AddMoney(projected)
	}
	return in
}

// PropertyRowSummary converts a cached property row back into a report summary.
func PropertyRowSummary(row models.PropertyPerformanceSummary) Summary {
	return rowSummary(row.TotalRevenue, row.ProjectedRevenue,
		row.ConfirmedCount, row.PendingPaymentCount, row.PendingConfirmationCount, row.CancelledCount)
}

func RoomTypeRowSummary(row models.RoomTypePerformanceSummary) Summary {
	return rowSummary(row.TotalRevenue, row.ProjectedRevenue,
		row.ConfirmedCount, row.PendingPaymentCount, row.PendingConfirmationCount, row.CancelledCount)
}

func rowSummary(actual, projected decimal.Decimal, confirmed, pendingPayment, pendingConfirmation, cancelled int64) Summary {
	s := Summary{
		Counts: StatusCounts{
			Confirmed:           int(confirmed),
			PendingPayment:      int(pendingPayment),
			PendingConfirmation: int(pendingConfirmation),
			Cancelled:           int(cancelled),
		},
		Revenue: Revenue{Actual: actual, Projected: projected},
	}
	return s.withAverage()
}
