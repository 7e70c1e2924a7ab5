package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "condominio/internal/errors"
	"condominio/internal/pagination"
	"condominio/internal/services"
)

// CondominiumHandler handles condominium-related requests
type CondominiumHandler struct {
	condominiumService services.CondominiumServicer
	auditService       services.AuditServicer
}

// NewCondominiumHandler creates a new CondominiumHandler
func NewCondominiumHandler(condominiumService services.CondominiumServicer, auditService services.AuditServicer) *CondominiumHandler {
	return &CondominiumHandler{condominiumService: condominiumService, auditService: auditService}
}

// CreateCondominiumRequest represents the request payload for creating a condominium
type CreateCondominiumRequest struct {
	Name              string `json:"name" binding:"required,max=200"`
	Address           string `json:"address" binding:"max=300"`
	DefaultMonthlyFee int64  `json:"default_monthly_fee" binding:"min=0"`
	UnitCount         int    `json:"unit_count" binding:"min=0"`
	President         string `json:"president" binding:"max=150"`
	Treasurer         string `json:"treasurer" binding:"max=150"`
	Secretary         string `json:"secretary" binding:"max=150"`
}

// UpdateCondominiumRequest represents the request payload for updating a condominium
type UpdateCondominiumRequest struct {
	Name              string  `json:"name" binding:"max=200"`
	Address           string  `json:"address" binding:"max=300"`
	DefaultMonthlyFee *int64  `json:"default_monthly_fee" binding:"omitempty,min=0"`
	UnitCount         *int    `json:"unit_count" binding:"omitempty,min=0"`
	President         *string `json:"president"`
	Treasurer         *string `json:"treasurer"`
	Secretary         *string `json:"secretary"`
}

// CreateCondominium handles the creation of a new condominium
// @Summary     Create a condominium
// @Description Create a new condominium
// @Tags        condominiums
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       request body CreateCondominiumRequest true "Condominium details"
// @Success     201 {object} models.Condominium "Condominium created"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /condominiums [post]
func (h *CondominiumHandler) CreateCondominium(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req CreateCondominiumRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	condo, err := h.condominiumService.CreateCondominium(
		req.Name, req.Address, req.DefaultMonthlyFee, req.UnitCount,
		req.President, req.Treasurer, req.Secretary,
	)
	if err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log(userID, "create", "condominium", condo.ID, c.ClientIP(), map[string]interface{}{"name": condo.Name})

	c.JSON(http.StatusCreated, condo)
}

// GetCondominiums handles listing condominiums
// @Summary     List condominiums
// @Description Get a paginated list of condominiums
// @Tags        condominiums
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       page query int false "Page number"
// @Param       page_size query int false "Page size"
// @Success     200 {object} pagination.PageResponse[models.Condominium] "List of condominiums"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /condominiums [get]
func (h *CondominiumHandler) GetCondominiums(c *gin.Context) {
	var page pagination.PageRequest
	if err := c.ShouldBindQuery(&page); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	result, err := h.condominiumService.GetCondominiums(page)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// GetCondominium handles retrieving one condominium
// @Summary     Get a condominium
// @Description Get a condominium by ID
// @Tags        condominiums
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       condominium_id path int true "Condominium ID"
// @Success     200 {object} models.Condominium "Condominium"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /condominiums/{condominium_id} [get]
func (h *CondominiumHandler) GetCondominium(c *gin.Context) {
	id, err := parsePathID(c, "condominium_id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	condo, err := h.condominiumService.GetCondominiumByID(id)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, condo)
}

// UpdateCondominium handles updating a condominium
// @Summary     Update a condominium
// @Description Update a condominium's fields
// @Tags        condominiums
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       condominium_id path int true "Condominium ID"
// @Param       request body UpdateCondominiumRequest true "Fields to update"
// @Success     200 {object} models.Condominium "Condominium updated"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /condominiums/{condominium_id} [put]
func (h *CondominiumHandler) UpdateCondominium(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	id, err := parsePathID(c, "condominium_id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req UpdateCondominiumRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	condo, err := h.condominiumService.UpdateCondominium(
		id, req.Name, req.Address, req.DefaultMonthlyFee, req.UnitCount,
		req.President, req.Treasurer, req.Secretary,
	)
	if err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log(userID, "update", "condominium", condo.ID, c.ClientIP(), nil)

	c.JSON(http.StatusOK, condo)
}

// DeleteCondominium handles deleting a condominium
// @Summary     Delete a condominium
// @Description Soft-delete a condominium
// @Tags        condominiums
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       condominium_id path int true "Condominium ID"
// @Success     200 {object} MessageResponse "Condominium deleted"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /condominiums/{condominium_id} [delete]
func (h *CondominiumHandler) DeleteCondominium(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	id, err := parsePathID(c, "condominium_id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	if err := h.condominiumService.DeleteCondominium(id); err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log(userID, "delete", "condominium", id, c.ClientIP(), nil)

	c.JSON(http.StatusOK, gin.H{"message": "Condominium deleted"})
}
