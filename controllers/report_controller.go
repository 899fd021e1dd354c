package controllers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"rental-backend/models"
	"rental-backend/services/report"
	"rental-backend/utils"

	"github.com/gin-gonic/gin"
)

type ReportController struct {
	ReportSvc *report.Service
}

func NewReportController(svc *report.Service) *ReportController {
	return &ReportController{ReportSvc: svc}
}

// GET /api/owner/reports/dashboard
// Malformed query parameters are a 400; failures while building the report
// degrade to an empty report with status 200.
func (ctrl *ReportController) Dashboard(c *gin.Context) {
	filters, err := parseReportFilters(c)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, err.Error())
		return
	}
	opts, err := parseReportOptions(c)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, err.Error())
		return
	}
	utils.JSONSuccess(c, http.StatusOK, ctrl.ReportSvc.GetOwnerDashboardReport(c.Request.Context(), ownerID(c), filters, opts))
}

// GET /api/owner/reports/properties
func (ctrl *ReportController) Properties(c *gin.Context) {
	start, end, ok := optionalDateRange(c)
	if !ok {
		return
	}
	out, err := ctrl.ReportSvc.PropertiesReport(c.Request.Context(), ownerID(c), start, end)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, out)
}

// GET /api/owner/reports/properties/:id
func (ctrl *ReportController) Property(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	start, end, ok := optionalDateRange(c)
	if !ok {
		return
	}
	out, err := ctrl.ReportSvc.PropertyReport(c.Request.Context(), ownerID(c), id, start, end)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, out)
}

// GET /api/owner/reports/cache/properties/:id
func (ctrl *ReportController) CachedProperty(c *gin.Context) {
	id, period, ok := cacheTarget(c)
	if !ok {
		return
	}
	row, err := ctrl.ReportSvc.Cache().FindProperty(c.Request.Context(), ownerID(c), id, period)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	if row == nil {
		utils.JSONError(c, http.StatusNotFound, "no cached summary for this period")
		return
	}
	utils.JSONSuccess(c, http.StatusOK, row)
}

// DELETE /api/owner/reports/cache/properties/:id
func (ctrl *ReportController) PurgeProperty(c *gin.Context) {
	id, period, ok := cacheTarget(c)
	if !ok {
		return
	}
	if err := ctrl.ReportSvc.Cache().DeleteProperty(c.Request.Context(), ownerID(c), id, period); err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, gin.H{"message": "Cached summary deleted", "period": period})
}

// GET /api/owner/reports/cache/room-types/:id
func (ctrl *ReportController) CachedRoomType(c *gin.Context) {
	id, period, ok := cacheTarget(c)
	if !ok {
		return
	}
	row, err := ctrl.ReportSvc.Cache().FindRoomType(c.Request.Context(), ownerID(c), id, period)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	if row == nil {
		utils.JSONError(c, http.StatusNotFound, "no cached summary for this period")
		return
	}
	utils.JSONSuccess(c, http.StatusOK, row)
}

// DELETE /api/owner/reports/cache/room-types/:id
func (ctrl *ReportController) PurgeRoomType(c *gin.Context) {
	id, period, ok := cacheTarget(c)
	if !ok {
		return
	}
	if err := ctrl.ReportSvc.Cache().DeleteRoomType(c.Request.Context(), ownerID(c), id, period); err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, gin.H{"message": "Cached summary deleted", "period": period})
}

func cacheTarget(c *gin.Context) (uint, report.PeriodConfig, bool) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return 0, report.PeriodConfig{}, false
	}
	start, end, ok := optionalDateRange(c)
	if !ok {
		return 0, report.PeriodConfig{}, false
	}
	period, err := report.BuildPeriodConfig(start, end)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, err.Error())
		return 0, report.PeriodConfig{}, false
	}
	return id, period, true
}

func optionalDateRange(c *gin.Context) (*time.Time, *time.Time, bool) {
	start, err := report.ParseReportDate(c.Query("startDate"))
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, err.Error())
		return nil, nil, false
	}
	end, err := report.ParseReportDate(c.Query("endDate"))
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, err.Error())
		return nil, nil, false
	}
	return start, end, true
}

func parseReportFilters(c *gin.Context) (report.Filters, error) {
	var f report.Filters
	var err error

	if f.PropertyID, err = optionalID(c, "propertyId"); err != nil {
		return f, err
	}
	if f.RoomTypeID, err = optionalID(c, "roomTypeId"); err != nil {
		return f, err
	}
	if f.StartDate, err = report.ParseReportDate(c.Query("startDate")); err != nil {
		return f, err
	}
	if f.EndDate, err = report.ParseReportDate(c.Query("endDate")); err != nil {
		return f, err
	}

	if raw := strings.TrimSpace(c.Query("reservationStatus")); raw != "" {
		status := models.OrderStatus(strings.ToUpper(raw))
		if !status.Valid() {
			return f, fmt.Errorf("unknown reservationStatus %q", raw)
		}
		f.ReservationStatus = status
	}

	f.PropertySearch = c.Query("propertySearch")
	f.City = c.Query("city")
	f.Province = c.Query("province")
	f.RoomTypeSearch = c.Query("roomTypeSearch")
	f.CustomerName = c.Query("customerName")
	f.Email = c.Query("email")
	f.InvoiceNumber = c.Query("invoiceNumber")
	return f, nil
}

func parseReportOptions(c *gin.Context) (report.Options, error) {
	var o report.Options
	var err error

	if o.Page, err = optionalInt(c, "page"); err != nil {
		return o, err
	}
	if o.PageSize, err = optionalInt(c, "pageSize"); err != nil {
		return o, err
	}
	if o.ReservationPageSize, err = optionalInt(c, "reservationPageSize"); err != nil {
		return o, err
	}
	if o.ReservationPage, o.ReservationPages, err = parseReservationPage(c.Query("reservationPage")); err != nil {
		return o, err
	}

	o.SortBy = c.Query("sortBy")
	o.SortDir = c.Query("sortDir")
	o.Search = c.Query("search")
	o.FetchAllData, _ = strconv.ParseBool(c.Query("fetchAllData"))
	return o, nil
}

// parseReservationPage accepts a page number or a JSON object of pages keyed by room type id.
func parseReservationPage(raw string) (int, map[uint]int, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0, nil, nil
	}
	if strings.HasPrefix(raw, "{") {
		var byKey map[string]int
		if err := json.Unmarshal([]byte(raw), &byKey); err != nil {
			return 0, nil, fmt.Errorf("%w: reservationPage: %v", report.ErrInvalidPagination, err)
		}
		pages := make(map[uint]int, len(byKey))
		for k, v := range byKey {
			id, err := strconv.ParseUint(k, 10, 64)
			if err != nil || v < 1 {
				return 0, nil, fmt.Errorf("%w: reservationPage[%s]", report.ErrInvalidPagination, k)
			}
			pages[uint(id)] = v
		}
		return 0, pages, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 1 {
		return 0, nil, fmt.Errorf("%w: reservationPage must be a positive integer", report.ErrInvalidPagination)
	}
	return n, nil, nil
}

func optionalInt(c *gin.Context, name string) (int, error) {
	raw := strings.TrimSpace(c.Query(name))
	if raw == "" {
		return 0, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 1 {
		return 0, fmt.Errorf("%w: %s must be a positive integer", report.ErrInvalidPagination, name)
	}
	return n, nil
}

func optionalID(c *gin.Context, name string) (*uint, error) {
	raw := strings.TrimSpace(c.Query(name))
	if raw == "" {
		return nil, nil
	}
	n, err := strconv.ParseUint(raw, 10, 64)
	if err != nil || n == 0 {
		return nil, fmt.Errorf("invalid %s", name)
	}
	id := uint(n)
	return &id, nil
}
