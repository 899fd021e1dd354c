package controllers

import (
	"net/http"
	"time"

	"rental-backend/services"
	"rental-backend/services/report"
	"rental-backend/utils"

	"github.com/gin-gonic/gin"
)

type AvailabilityController struct {
	AvailabilitySvc *services.AvailabilityService
}

func NewAvailabilityController(svc *services.AvailabilityService) *AvailabilityController {
	return &AvailabilityController{AvailabilitySvc: svc}
}

type SetAvailabilityRequest struct {
	StartDate string `json:"startDate" binding:"required"`
	EndDate   string `json:"endDate" binding:"required"`
	Count     *int   `json:"count" binding:"required"`
}

// GET /api/owner/room-types/:id/availability?startDate=&endDate=
func (ctrl *AvailabilityController) List(c *gin.Context) {
	roomTypeID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	from, to, ok := dateRange(c, c.Query("startDate"), c.Query("endDate"))
	if !ok {
		return
	}
	rows, err := ctrl.AvailabilitySvc.List(c.Request.Context(), ownerID(c), roomTypeID, from, to)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, rows)
}

// PUT /api/owner/room-types/:id/availability
func (ctrl *AvailabilityController) SetRange(c *gin.Context) {
	roomTypeID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	var req SetAvailabilityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, err.Error())
		return
	}
	from, to, ok := dateRange(c, req.StartDate, req.EndDate)
	if !ok {
		return
	}
	rows, err := ctrl.AvailabilitySvc.SetRange(c.Request.Context(), ownerID(c), roomTypeID, from, to, *req.Count)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, rows)
}

// dateRange requires both dates; it writes a 400 and returns false otherwise.
func dateRange(c *gin.Context, rawStart, rawEnd string) (time.Time, time.Time, bool) {
	start, err := report.ParseReportDate(rawStart)
	if err != nil || start == nil {
		utils.JSONError(c, http.StatusBadRequest, "startDate must be YYYY-MM-DD")
		return time.Time{}, time.Time{}, false
	}
	end, err := report.ParseReportDate(rawEnd)
	if err != nil || end == nil {
		utils.JSONError(c, http.StatusBadRequest, "endDate must be YYYY-MM-DD")
		return time.Time{}, time.Time{}, false
	}
	return *start, *end, true
}
