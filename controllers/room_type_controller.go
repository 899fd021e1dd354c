package controllers

import (
	"net/http"

	"rental-backend/services"
	"rental-backend/utils"

	"github.com/gin-gonic/gin"
)

type RoomTypeController struct {
	RoomTypeSvc *services.RoomTypeService
}

func NewRoomTypeController(svc *services.RoomTypeService) *RoomTypeController {
	return &RoomTypeController{RoomTypeSvc: svc}
}

// GET /api/owner/properties/:id/room-types
func (ctrl *RoomTypeController) ListByProperty(c *gin.Context) {
	propertyID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	types, err := ctrl.RoomTypeSvc.ListByProperty(c.Request.Context(), ownerID(c), propertyID)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, types)
}

// POST /api/owner/properties/:id/room-types
func (ctrl *RoomTypeController) Create(c *gin.Context) {
	propertyID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	var in services.RoomTypeInput
	if err := c.ShouldBindJSON(&in); err != nil {
		utils.JSONError(c, http.StatusBadRequest, err.Error())
		return
	}
	rt, err := ctrl.RoomTypeSvc.Create(c.Request.Context(), ownerID(c), propertyID, in)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusCreated, rt)
}

// GET /api/owner/room-types/:id
func (ctrl *RoomTypeController) Get(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	rt, err := ctrl.RoomTypeSvc.GetByID(c.Request.Context(), ownerID(c), id)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, rt)
}

// PUT /api/owner/room-types/:id
func (ctrl *RoomTypeController) Update(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	var in services.RoomTypeInput
	if err := c.ShouldBindJSON(&in); err != nil {
		utils.JSONError(c, http.StatusBadRequest, err.Error())
		return
	}
	rt, err := ctrl.RoomTypeSvc.Update(c.Request.Context(), ownerID(c), id, in)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, rt)
}

// DELETE /api/owner/room-types/:id
func (ctrl *RoomTypeController) Delete(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	if err := ctrl.RoomTypeSvc.Delete(c.Request.Context(), ownerID(c), id); err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, gin.H{"message": "Room type deleted"})
}
