package report

import "rental-backend/models"

// countUniqueCustomers returns the number of distinct customers per room type.
// Room types without reservations are absent and read as zero.
func countUniqueCustomers(reservations []models.Reservation) map[uint]int {
	users := make(map[uint]map[uint]struct{})
	for _, r := range reservations {
		set, ok := users[r.RoomTypeID]
		if !ok {
			set = make(map[uint]struct{})
			users[r.RoomTypeID] = set
		}
		set[r.UserID] = struct{}{}
	}

	counts := make(map[uint]int, len(users))
	for id, set := range users {
		counts[id] = len(set)
	}
	return counts
}
