package controllers

import (
	"net/http"

	"rental-backend/services"
	"rental-backend/utils"

	"github.com/gin-gonic/gin"
)

type PropertyController struct {
	PropertySvc *services.PropertyService
}

func NewPropertyController(svc *services.PropertyService) *PropertyController {
	return &PropertyController{PropertySvc: svc}
}

// GET /api/owner/properties
func (ctrl *PropertyController) List(c *gin.Context) {
	properties, err := ctrl.PropertySvc.ListByOwner(c.Request.Context(), ownerID(c))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, properties)
}

// POST /api/owner/properties
func (ctrl *PropertyController) Create(c *gin.Context) {
	var in services.PropertyInput
	if err := c.ShouldBindJSON(&in); err != nil {
		utils.JSONError(c, http.StatusBadRequest, err.Error())
		return
	}
	p, err := ctrl.PropertySvc.Create(c.Request.Context(), ownerID(c), in)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusCreated, p)
}

// GET /api/owner/properties/:id
func (ctrl *PropertyController) Get(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	p, err := ctrl.PropertySvc.GetByID(c.Request.Context(), ownerID(c), id)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, p)
}

// PUT /api/owner/properties/:id
func (ctrl *PropertyController) Update(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	var in services.PropertyInput
	if err := c.ShouldBindJSON(&in); err != nil {
		utils.JSONError(c, http.StatusBadRequest, err.Error())
		return
	}
	p, err := ctrl.PropertySvc.Update(c.Request.Context(), ownerID(c), id, in)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, p)
}

// DELETE /api/owner/properties/:id
func (ctrl *PropertyController) Delete(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	if err := ctrl.PropertySvc.Delete(c.Request.Context(), ownerID(c), id); err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, gin.H{"message": "Property deleted"})
}
