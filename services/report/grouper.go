package report

import (
	"log"
	"sort"

	"rental-backend/models"
)

type propertyAccumulator struct {
	info        PropertyInfo
	summary     Summary
	roomTypeIDs []uint
}

type roomTypeAccumulator struct {
	ref        RoomTypeRef
	propertyID uint
	summary    Summary
}

// grouping holds one accumulator per owned property and room type, keyed by id.
type grouping struct {
	properties map[uint]*propertyAccumulator
	roomTypes  map[uint]*roomTypeAccumulator
}

// groupReservations seeds every owned room type (and its property) with zeroed
// counters, then folds the reservations in. Seeding completes before folding so
// entities without reservations still appear.
func groupReservations(roomTypes []models.RoomType, reservations []models.Reservation) *grouping {
	g := &grouping{
		properties: make(map[uint]*propertyAccumulator),
		roomTypes:  make(map[uint]*roomTypeAccumulator),
	}
	g.seed(roomTypes)
	g.fold(reservations)
	return g
}

func (g *grouping) seed(roomTypes []models.RoomType) {
	for _, rt := range roomTypes {
		if _, ok := g.roomTypes[rt.ID]; !ok {
			g.roomTypes[rt.ID] = &roomTypeAccumulator{
				ref:        RoomTypeRef{ID: rt.ID, Name: rt.Name},
				propertyID: rt.PropertyID,
				summary:    newSummary(),
			}
		}

		p, ok := g.properties[rt.PropertyID]
		if !ok {
			p = &propertyAccumulator{info: propertyInfoFor(rt), summary: newSummary()}
			g.properties[rt.PropertyID] = p
		}
		if !containsID(p.roomTypeIDs, rt.ID) {
			p.roomTypeIDs = append(p.roomTypeIDs, rt.ID)
		}
	}
}

func (g *grouping) fold(reservations []models.Reservation) {
	for _, r := range reservations {
		p, okProperty := g.properties[r.PropertyID]
		rt, okRoomType := g.roomTypes[r.RoomTypeID]
		if !okProperty || !okRoomType {
			log.Printf("⚠️ report: reservation %d references unknown property %d / room type %d, skipped",
				r.ID, r.PropertyID, r.RoomTypeID)
			continue
		}
		p.summary.addReservation(r)
		rt.summary.addReservation(r)
	}
}

// roomTypeIDs returns every seeded room type id in ascending order.
func (g *grouping) roomTypeIDs() []uint {
	ids := make([]uint, 0, len(g.roomTypes))
	for id := range g.roomTypes {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

func (g *grouping) propertyIDs() []uint {
	ids := make([]uint, 0, len(g.properties))
	for id := range g.properties {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

// assemble merges the per-stage outputs into report values, properties ordered by id.
func (g *grouping) assemble(
	period PeriodConfig,
	availability map[uint]AvailabilityBlock,
	uniqueCustomers map[uint]int,
	lists map[uint]reservationList,
) []PropertySummary {
	out := make([]PropertySummary, 0, len(g.properties))
	for _, pid := range g.propertyIDs() {
		p := g.properties[pid]
		roomTypes := make([]RoomTypeWithAvailability, 0, len(p.roomTypeIDs))
		for _, rtID := range p.roomTypeIDs {
			rt := g.roomTypes[rtID]
			block, ok := availability[rtID]
			if !ok {
				block = zeroAvailability()
			}
			list, ok := lists[rtID]
			if !ok {
				list = emptyReservationList()
			}
			roomTypes = append(roomTypes, RoomTypeWithAvailability{
				RoomType:             rt.ref,
				Summary:              rt.summary.withAverage(),
				UniqueCustomers:      uniqueCustomers[rtID],
				Availability:         block,
				ReservationListItems: list.items,
				Pagination:           list.pagination,
				TotalAmount:          list.totalAmount,
			})
		}
		out = append(out, PropertySummary{
			Property:  p.info,
			Period:    period,
			Summary:   p.summary.withAverage(),
			RoomTypes: roomTypes,
		})
	}
	return out
}

func propertyInfoFor(rt models.RoomType) PropertyInfo {
	if rt.Property == nil {
		return PropertyInfo{ID: rt.PropertyID}
	}
	info := propertyInfo(*rt.Property)
	info.ID = rt.PropertyID
	return info
}

func containsID(ids []uint, id uint) bool {
	for _, v := range ids {
		if v == id {
			return true
		}
	}
	return false
}
