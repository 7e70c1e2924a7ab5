package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	apperrors "condominio/internal/errors"
	"condominio/internal/pagination"
	"condominio/internal/services"
)

// ResidentHandler handles resident-related requests
type ResidentHandler struct {
	residentService services.ResidentServicer
	auditService    services.AuditServicer
}

// NewResidentHandler creates a new ResidentHandler
func NewResidentHandler(residentService services.ResidentServicer, auditService services.AuditServicer) *ResidentHandler {
	return &ResidentHandler{residentService: residentService, auditService: auditService}
}

// CreateResidentRequest represents the request payload for creating a resident
type CreateResidentRequest struct {
	Name  string `json:"name" binding:"required,max=150"`
	Unit  string `json:"unit" binding:"required,max=50"`
	Email string `json:"email" binding:"omitempty,email,max=255"`
	Phone string `json:"phone" binding:"max=30"`
}

// UpdateResidentRequest represents the request payload for updating a resident
type UpdateResidentRequest struct {
	Name     string `json:"name" binding:"max=150"`
	Unit     string `json:"unit" binding:"max=50"`
	Email    string `json:"email" binding:"omitempty,email,max=255"`
	Phone    string `json:"phone" binding:"max=30"`
	IsActive *bool  `json:"is_active"`
}

// parseActiveQuery parses the optional is_active query filter.
func parseActiveQuery(c *gin.Context) (*bool, error) {
	raw := c.Query("is_active")
	if raw == "" {
		return nil, nil
	}
	active, err := strconv.ParseBool(raw)
	if err != nil {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "Invalid is_active")
	}
	return &active, nil
}

// CreateResident handles the creation of a new resident
// @Summary     Create a resident
// @Description Create a new resident in a condominium
// @Tags        residents
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       condominium_id path int true "Condominium ID"
// @Param       request body CreateResidentRequest true "Resident details"
// @Success     201 {object} models.Resident "Resident created"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Condominium not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /condominiums/{condominium_id}/residents [post]
func (h *ResidentHandler) CreateResident(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	condominiumID, err := parsePathID(c, "condominium_id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req CreateResidentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	resident, err := h.residentService.CreateResident(condominiumID, req.Name, req.Unit, req.Email, req.Phone)
	if err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log(userID, "create", "resident", resident.ID, c.ClientIP(), map[string]interface{}{"unit": resident.Unit})

	c.JSON(http.StatusCreated, resident)
}

// GetResidents handles listing residents of a condominium
// @Summary     List residents
// @Description Get a paginated list of residents, optionally filtered by active flag
// @Tags        residents
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       condominium_id path int true "Condominium ID"
// @Param       page query int false "Page number"
// @Param       page_size query int false "Page size"
// @Param       is_active query bool false "Filter by active flag"
// @Success     200 {object} pagination.PageResponse[models.Resident] "List of residents"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /condominiums/{condominium_id}/residents [get]
func (h *ResidentHandler) GetResidents(c *gin.Context) {
	condominiumID, err := parsePathID(c, "condominium_id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	var page pagination.PageRequest
	if err := c.ShouldBindQuery(&page); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	isActive, err := parseActiveQuery(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	result, err := h.residentService.GetResidents(condominiumID, page, isActive)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// GetResident handles retrieving one resident
// @Summary     Get a resident
// @Description Get a resident by ID
// @Tags        residents
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       id path int true "Resident ID"
// @Success     200 {object} models.Resident "Resident"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /residents/{id} [get]
func (h *ResidentHandler) GetResident(c *gin.Context) {
	id, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	resident, err := h.residentService.GetResidentByID(id)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, resident)
}

// UpdateResident handles updating a resident
// @Summary     Update a resident
// @Description Update a resident's fields, including the active flag
// @Tags        residents
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       id path int true "Resident ID"
// @Param       request body UpdateResidentRequest true "Fields to update"
// @Success     200 {object} models.Resident "Resident updated"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /residents/{id} [put]
func (h *ResidentHandler) UpdateResident(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	id, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req UpdateResidentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	resident, err := h.residentService.UpdateResident(id, req.Name, req.Unit, req.Email, req.Phone, req.IsActive)
	if err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log(userID, "update", "resident", resident.ID, c.ClientIP(), nil)

	c.JSON(http.StatusOK, resident)
}

// DeleteResident handles deleting a resident
// @Summary     Delete a resident
// @Description Soft-delete a resident without recorded payments
// @Tags        residents
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       id path int true "Resident ID"
// @Success     200 {object} MessageResponse "Resident deleted"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Not found"
// @Failure     409 {object} ErrorResponse "Resident has payments"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /residents/{id} [delete]
func (h *ResidentHandler) DeleteResident(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	id, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	if err := h.residentService.DeleteResident(id); err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log(userID, "delete", "resident", id, c.ClientIP(), nil)

	c.JSON(http.StatusOK, gin.H{"message": "Resident deleted"})
}
