package report

import (
	"sort"
	"strings"
)

const (
	SortByRevenue   = "revenue"
	SortByConfirmed = "confirmed"
	SortByPending   = "pending"
	SortByCity      = "city"
	SortByProvince  = "province"
	SortByAddress   = "address"
	SortByName      = "name"
)

type propertyPage struct {
	properties []PropertySummary
	total      int
	totalPages int
	page       int
	pageSize   int
}

// filterSortPaginate applies, in order: text search, city/province equality,
// room type narrowing (dropping properties left without room types), sorting and paging.
func filterSortPaginate(properties []PropertySummary, f Filters, o Options, defaultPageSize int) propertyPage {
	search := strings.TrimSpace(f.PropertySearch)
	if search == "" {
		search = strings.TrimSpace(o.Search)
	}

	filtered := make([]PropertySummary, 0, len(properties))
	for _, p := range properties {
		if search != "" && !matchesPropertySearch(p.Property, search) {
			continue
		}
		if f.City != "" && !strings.EqualFold(p.Property.City, strings.TrimSpace(f.City)) {
			continue
		}
		if f.Province != "" && !strings.EqualFold(p.Property.Province, strings.TrimSpace(f.Province)) {
			continue
		}
		filtered = append(filtered, p)
	}

	roomTypeSearch := strings.TrimSpace(f.RoomTypeSearch)
	if f.RoomTypeID != nil || roomTypeSearch != "" {
		narrowed := make([]PropertySummary, 0, len(filtered))
		for _, p := range filtered {
			roomTypes := make([]RoomTypeWithAvailability, 0, len(p.RoomTypes))
			for _, rt := range p.RoomTypes {
				if f.RoomTypeID != nil && rt.RoomType.ID != *f.RoomTypeID {
					continue
				}
				if roomTypeSearch != "" && !containsFold(rt.RoomType.Name, roomTypeSearch) {
					continue
				}
				roomTypes = append(roomTypes, rt)
			}
			if len(roomTypes) == 0 {
				continue
			}
			p.RoomTypes = roomTypes
			narrowed = append(narrowed, p)
		}
		filtered = narrowed
	}

	sortProperties(filtered, o.SortBy, o.SortDir)

	page := o.Page
	if page <= 0 {
		page = 1
	}
	pageSize := o.PageSize
	if pageSize <= 0 {
		pageSize = defaultPageSize
	}
	start, end := pageBounds(len(filtered), page, pageSize)

	return propertyPage{
		properties: filtered[start:end],
		total:      len(filtered),
		totalPages: totalPages(len(filtered), pageSize),
		page:       page,
		pageSize:   pageSize,
	}
}

func matchesPropertySearch(p PropertyInfo, search string) bool {
	return containsFold(p.Name, search) ||
		containsFold(p.Address, search) ||
		containsFold(p.City, search) ||
		containsFold(p.Province, search)
}

func sortProperties(properties []PropertySummary, sortBy, sortDir string) {
	desc := strings.EqualFold(sortDir, "desc")

	var less func(a, b PropertySummary) bool
	switch strings.ToLower(sortBy) {
	case SortByRevenue:
		less = func(a, b PropertySummary) bool { return a.Summary.Revenue.Actual.LessThan(b.Summary.Revenue.Actual) }
	case SortByConfirmed:
		less = func(a, b PropertySummary) bool { return a.Summary.Counts.Confirmed < b.Summary.Counts.Confirmed }
	case SortByPending:
		less = func(a, b PropertySummary) bool { return a.Summary.Counts.Pending() < b.Summary.Counts.Pending() }
	case SortByCity:
		less = func(a, b PropertySummary) bool { return lowerLess(a.Property.City, b.Property.City) }
	case SortByProvince:
		less = func(a, b PropertySummary) bool { return lowerLess(a.Property.Province, b.Property.Province) }
	case SortByAddress:
		less = func(a, b PropertySummary) bool { return lowerLess(a.Property.Address, b.Property.Address) }
	default:
		less = func(a, b PropertySummary) bool { return lowerLess(a.Property.Name, b.Property.Name) }
	}

	sort.SliceStable(properties, func(i, j int) bool {
		if desc {
			return less(properties[j], properties[i])
		}
		return less(properties[i], properties[j])
	})
}

func lowerLess(a, b string) bool {
	return strings.ToLower(a) < strings.ToLower(b)
}
