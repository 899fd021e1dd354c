package controllers

import (
	"net/http"
	"strings"

	"rental-backend/models"
	"rental-backend/services"
	"rental-backend/utils"

	"github.com/gin-gonic/gin"
)

type ReservationController struct {
	ReservationSvc *services.ReservationService
}

func NewReservationController(svc *services.ReservationService) *ReservationController {
	return &ReservationController{ReservationSvc: svc}
}

type UpdateStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// GET /api/owner/reservations/:id
func (ctrl *ReservationController) Get(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	r, err := ctrl.ReservationSvc.Get(c.Request.Context(), ownerID(c), id)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, r)
}

// PATCH /api/owner/reservations/:id/status
func (ctrl *ReservationController) UpdateStatus(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	var req UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, err.Error())
		return
	}
	status := models.OrderStatus(strings.ToUpper(strings.TrimSpace(req.Status)))
	if !status.Valid() {
		utils.JSONError(c, http.StatusBadRequest, "unknown status "+req.Status)
		return
	}

	r, err := ctrl.ReservationSvc.UpdateStatus(c.Request.Context(), ownerID(c), id, status)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, r)
}
