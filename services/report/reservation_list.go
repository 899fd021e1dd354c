package report

import (
	"strings"

	"rental-backend/models"

	"github.com/shopspring/decimal"
)

type reservationList struct {
	items       []ReservationLineItem
	pagination  Pagination
	totalAmount decimal.Decimal
}

func emptyReservationList() reservationList {
	return reservationList{
		items:       []ReservationLineItem{},
		pagination:  Pagination{Page: 1, PageSize: 0, Total: 0, TotalPages: 1},
		totalAmount: decimal.Zero,
	}
}

// buildReservationLists produces one list per seeded room type. roomTypeSearch and
// invoiceNumber may leave a seeded room type with an empty list. totalAmount covers
// every matching item regardless of the returned page.
func buildReservationLists(g *grouping, reservations []models.Reservation, f Filters, o Options, defaultPageSize int) map[uint]reservationList {
	byRoomType := make(map[uint][]models.Reservation)
	for _, r := range reservations {
		byRoomType[r.RoomTypeID] = append(byRoomType[r.RoomTypeID], r)
	}

	search := strings.TrimSpace(f.RoomTypeSearch)
	invoice := strings.TrimSpace(f.InvoiceNumber)

	lists := make(map[uint]reservationList, len(g.roomTypes))
	for id, rt := range g.roomTypes {
		items := []ReservationLineItem{}
		if search == "" || containsFold(rt.ref.Name, search) {
			for _, r := range byRoomType[id] {
				if invoice != "" && r.InvoiceNumber() != invoice {
					continue
				}
				items = append(items, lineItemFor(r))
			}
		}

		total := decimal.Zero
		for _, item := range items {
			total = total.Add(item.PaymentAmount)
		}

		list := reservationList{totalAmount: total}
		if o.FetchAllData {
			list.items = items
			list.pagination = Pagination{Page: 1, PageSize: len(items), Total: len(items), TotalPages: 1}
		} else {
			pageSize := o.ReservationPageSize
			if pageSize <= 0 {
				pageSize = defaultPageSize
			}
			list.items, list.pagination = paginateItems(items, o.reservationPage(id), pageSize)
		}
		lists[id] = list
	}
	return lists
}

func paginateItems(items []ReservationLineItem, page, pageSize int) ([]ReservationLineItem, Pagination) {
	total := len(items)
	start, end := pageBounds(total, page, pageSize)
	return items[start:end], Pagination{
		Page:       page,
		PageSize:   pageSize,
		Total:      total,
		TotalPages: totalPages(total, pageSize),
	}
}

// pageBounds returns the slice bounds of a 1-based page, clamped to [0, total].
// Pages past the end yield an empty range; the product (page-1)*pageSize is
// only formed once it is known to be below total.
func pageBounds(total, page, pageSize int) (int, int) {
	if page < 1 || pageSize < 1 || page-1 >= totalPages(total, pageSize) {
		return total, total
	}
	start := (page - 1) * pageSize
	return start, start + min(pageSize, total-start)
}

func totalPages(total, pageSize int) int {
	if pageSize <= 0 || total <= 0 {
		return 0
	}
	return (total-1)/pageSize + 1
}

func lineItemFor(r models.Reservation) ReservationLineItem {
	return ReservationLineItem{
		ID:            r.ID,
		UserID:        r.UserID,
		RoomID:        r.RoomID,
		StartDate:     r.StartDate,
		EndDate:       r.EndDate,
		OrderStatus:   r.OrderStatus,
		PaymentAmount: r.PaymentAmount(),
		InvoiceNumber: r.InvoiceNumber(),
		User: ReservationUser{
			Email:     r.User.Email,
			FirstName: r.User.Profile.FirstName,
			LastName:  r.User.Profile.LastName,
		},
	}
}
