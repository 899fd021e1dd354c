package controllers

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"rental-backend/middleware"
	"rental-backend/services"
	"rental-backend/services/report"
	"rental-backend/utils"

	"github.com/gin-gonic/gin"
)

// parseIDParam writes a 400 and returns false when the path parameter is not a positive integer.
func parseIDParam(c *gin.Context, name string) (uint, bool) {
	id, err := strconv.ParseUint(strings.TrimSpace(c.Param(name)), 10, 64)
	if err != nil || id == 0 {
		utils.JSONError(c, http.StatusBadRequest, "invalid "+name)
		return 0, false
	}
	return uint(id), true
}

func ownerID(c *gin.Context) uint {
	return middleware.OwnerID(c)
}

// respondServiceError maps known errors to their status; anything else is a 500
// carrying only the already generic message.
func respondServiceError(c *gin.Context, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, services.ErrPropertyNotFound),
		errors.Is(err, services.ErrRoomTypeNotFound),
		errors.Is(err, services.ErrRoomNotFound),
		errors.Is(err, services.ErrReservationNotFound),
		errors.Is(err, report.ErrNotFound):
		status = http.StatusNotFound
	case errors.Is(err, report.ErrNotOwned):
		status = http.StatusForbidden
	case errors.Is(err, services.ErrDuplicate):
		status = http.StatusConflict
	case errors.Is(err, services.ErrInvalidStatusTransition):
		status = http.StatusUnprocessableEntity
	case errors.Is(err, services.ErrInvalidInput),
		errors.Is(err, report.ErrInvalidDate),
		errors.Is(err, report.ErrInvalidPagination):
		status = http.StatusBadRequest
	}
	utils.JSONErrorWithRequestID(c, status, err.Error())
}
