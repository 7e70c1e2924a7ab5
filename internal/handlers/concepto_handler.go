package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "condominio/internal/errors"
	"condominio/internal/pagination"
	"condominio/internal/services"
)

// ConceptoHandler handles expense-category requests
type ConceptoHandler struct {
	conceptoService services.ConceptoServicer
	auditService    services.AuditServicer
}

// NewConceptoHandler creates a new ConceptoHandler
func NewConceptoHandler(conceptoService services.ConceptoServicer, auditService services.AuditServicer) *ConceptoHandler {
	return &ConceptoHandler{conceptoService: conceptoService, auditService: auditService}
}

// CreateConceptoRequest represents the request payload for creating a concepto
type CreateConceptoRequest struct {
	Name        string `json:"name" binding:"required,max=150"`
	Description string `json:"description" binding:"max=300"`
}

// UpdateConceptoRequest represents the request payload for updating a concepto
type UpdateConceptoRequest struct {
	Name        string `json:"name" binding:"max=150"`
	Description string `json:"description" binding:"max=300"`
}

// CreateConcepto handles the creation of a new concepto
// @Summary     Create a concepto
// @Description Create a new expense category in a condominium
// @Tags        conceptos
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       condominium_id path int true "Condominium ID"
// @Param       request body CreateConceptoRequest true "Concepto details"
// @Success     201 {object} models.Concepto "Concepto created"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Condominium not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /condominiums/{condominium_id}/conceptos [post]
func (h *ConceptoHandler) CreateConcepto(c *gin.Context) {
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

	var req CreateConceptoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	concepto, err := h.conceptoService.CreateConcepto(condominiumID, req.Name, req.Description)
	if err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log(userID, "create", "concepto", concepto.ID, c.ClientIP(), map[string]interface{}{"name": concepto.Name})

	c.JSON(http.StatusCreated, concepto)
}

// GetConceptos handles listing conceptos of a condominium
// @Summary     List conceptos
// @Description Get a paginated list of expense categories
// @Tags        conceptos
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       condominium_id path int true "Condominium ID"
// @Param       page query int false "Page number"
// @Param       page_size query int false "Page size"
// @Success     200 {object} pagination.PageResponse[models.Concepto] "List of conceptos"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /condominiums/{condominium_id}/conceptos [get]
func (h *ConceptoHandler) GetConceptos(c *gin.Context) {
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

	result, err := h.conceptoService.GetConceptos(condominiumID, page)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// GetConcepto handles retrieving one concepto
// @Summary     Get a concepto
// @Description Get an expense category by ID
// @Tags        conceptos
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       id path int true "Concepto ID"
// @Success     200 {object} models.Concepto "Concepto"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /conceptos/{id} [get]
func (h *ConceptoHandler) GetConcepto(c *gin.Context) {
	id, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	concepto, err := h.conceptoService.GetConceptoByID(id)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, concepto)
}

// UpdateConcepto handles updating a concepto
// @Summary     Update a concepto
// @Description Update an expense category's fields
// @Tags        conceptos
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       id path int true "Concepto ID"
// @Param       request body UpdateConceptoRequest true "Fields to update"
// @Success     200 {object} models.Concepto "Concepto updated"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /conceptos/{id} [put]
func (h *ConceptoHandler) UpdateConcepto(c *gin.Context) {
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

	var req UpdateConceptoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	concepto, err := h.conceptoService.UpdateConcepto(id, req.Name, req.Description)
	if err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log(userID, "update", "concepto", concepto.ID, c.ClientIP(), nil)

	c.JSON(http.StatusOK, concepto)
}

// DeleteConcepto handles deleting a concepto
// @Summary     Delete a concepto
// @Description Soft-delete an expense category
// @Tags        conceptos
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       id path int true "Concepto ID"
// @Success     200 {object} MessageResponse "Concepto deleted"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /conceptos/{id} [delete]
func (h *ConceptoHandler) DeleteConcepto(c *gin.Context) {
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

	if err := h.conceptoService.DeleteConcepto(id); err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log(userID, "delete", "concepto", id, c.ClientIP(), nil)

	c.JSON(http.StatusOK, gin.H{"message": "Concepto deleted"})
}
