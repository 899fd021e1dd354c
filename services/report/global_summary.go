package report

import (
	"context"
	"time"

	"rental-backend/models"

	"github.com/shopspring/decimal"
)

func (s *Service) loadGlobalSummary(ctx context.Context, ownerID uint, w DateWindow) (GlobalSummary, error) {
	reservations, err := s.store.OwnerReservations(ctx, ownerID, ReservationQuery{Window: w, Lean: true})
	if err != nil {
		return GlobalSummary{}, err
	}
	return summarizeGlobal(reservations, s.now()), nil
}

// summarizeGlobal computes owner-wide totals. TotalProperties counts properties with at
// least one loaded reservation, not every owned property.
func summarizeGlobal(reservations []models.Reservation, now time.Time) GlobalSummary {
	g := GlobalSummary{TotalActualRevenue: decimal.Zero, TotalProjectedRevenue: decimal.Zero}
	properties := make(map[uint]struct{})

	for _, r := range reservations {
		amount := r.PaymentAmount()
		if r.OrderStatus == models.OrderStatusConfirmed {
			g.TotalActualRevenue = g.TotalActualRevenue.Add(amount)
		}
		if r.OrderStatus.CountsTowardProjected() && amount.IsPositive() {
			g.TotalProjectedRevenue = g.TotalProjectedRevenue.Add(amount)
		}
		if r.OrderStatus.Active() && !r.StartDate.Before(now) {
			g.TotalActiveBookings++
		}
		properties[r.PropertyID] = struct{}{}
	}

	g.TotalProperties = len(properties)
	return g
}
