package controllers

import (
	"net/http"

	"rental-backend/services"
	"rental-backend/utils"

	"github.com/gin-gonic/gin"
)

type RoomController struct {
	RoomSvc *services.RoomService
}

func NewRoomController(svc *services.RoomService) *RoomController {
	return &RoomController{RoomSvc: svc}
}

// GET /api/owner/room-types/:id/rooms
func (ctrl *RoomController) ListByRoomType(c *gin.Context) {
	roomTypeID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	rooms, err := ctrl.RoomSvc.ListByRoomType(c.Request.Context(), ownerID(c), roomTypeID)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, rooms)
}

// POST /api/owner/room-types/:id/rooms
func (ctrl *RoomController) Create(c *gin.Context) {
	roomTypeID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	var in services.RoomInput
	if err := c.ShouldBindJSON(&in); err != nil {
		utils.JSONError(c, http.StatusBadRequest, err.Error())
		return
	}
	room, err := ctrl.RoomSvc.Create(c.Request.Context(), ownerID(c), roomTypeID, in)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusCreated, room)
}

// DELETE /api/owner/rooms/:id
func (ctrl *RoomController) Delete(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	if err := ctrl.RoomSvc.Delete(c.Request.Context(), ownerID(c), id); err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, gin.H{"message": "Room deleted"})
}
