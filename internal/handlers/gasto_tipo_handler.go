package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "condominio/internal/errors"
	"condominio/internal/pagination"
	"condominio/internal/services"
)

// GastoTipoHandler handles expense fee-type requests
type GastoTipoHandler struct {
	gastoTipoService services.GastoTipoServicer
	auditService     services.AuditServicer
}

// NewGastoTipoHandler creates a new GastoTipoHandler
func NewGastoTipoHandler(gastoTipoService services.GastoTipoServicer, auditService services.AuditServicer) *GastoTipoHandler {
	return &GastoTipoHandler{gastoTipoService: gastoTipoService, auditService: auditService}
}

// CreateGastoTipoRequest represents the request payload for creating an expense type
type CreateGastoTipoRequest struct {
	Name          string `json:"name" binding:"required,max=150"`
	General       *bool  `json:"general"`
	MonthlyAmount *int64 `json:"monthly_amount" binding:"omitempty,min=0"`
}

// UpdateGastoTipoRequest represents the request payload for updating an expense type
type UpdateGastoTipoRequest struct {
	Name          string `json:"name" binding:"max=150"`
	General       *bool  `json:"general"`
	IsActive      *bool  `json:"is_active"`
	MonthlyAmount *int64 `json:"monthly_amount" binding:"omitempty,min=0"`
}

// AssignConceptosRequest represents the assignment replacement payload
type AssignConceptosRequest struct {
	ConceptoIDs []uint `json:"concepto_ids" binding:"required"`
}

// CreateGastoTipo handles the creation of a new expense type
// @Summary     Create a gasto tipo
// @Description Create a new expense fee type in a condominium
// @Tags        gasto-tipos
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       condominium_id path int true "Condominium ID"
// @Param       request body CreateGastoTipoRequest true "Expense type details"
// @Success     201 {object} models.GastoTipo "Expense type created"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Condominium not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /condominiums/{condominium_id}/gasto-tipos [post]
func (h *GastoTipoHandler) CreateGastoTipo(c *gin.Context) {
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

	var req CreateGastoTipoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	general := true
	if req.General != nil {
		general = *req.General
	}

	gt, err := h.gastoTipoService.CreateGastoTipo(condominiumID, req.Name, general, req.MonthlyAmount)
	if err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log(userID, "create", "gasto_tipo", gt.ID, c.ClientIP(), map[string]interface{}{"name": gt.Name})

	c.JSON(http.StatusCreated, gt)
}

// GetGastoTipos handles listing expense types of a condominium
// @Summary     List gasto tipos
// @Description Get a paginated list of expense fee types
// @Tags        gasto-tipos
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       condominium_id path int true "Condominium ID"
// @Param       page query int false "Page number"
// @Param       page_size query int false "Page size"
// @Param       is_active query bool false "Filter by active flag"
// @Success     200 {object} pagination.PageResponse[models.GastoTipo] "List of expense types"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /condominiums/{condominium_id}/gasto-tipos [get]
func (h *GastoTipoHandler) GetGastoTipos(c *gin.Context) {
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

	result, err := h.gastoTipoService.GetGastoTipos(condominiumID, page, isActive)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// GetGastoTipo handles retrieving one expense type
// @Summary     Get a gasto tipo
// @Description Get an expense fee type by ID
// @Tags        gasto-tipos
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       id path int true "Gasto tipo ID"
// @Success     200 {object} models.GastoTipo "Expense type"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /gasto-tipos/{id} [get]
func (h *GastoTipoHandler) GetGastoTipo(c *gin.Context) {
	id, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	gt, err := h.gastoTipoService.GetGastoTipoByID(id)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gt)
}

// UpdateGastoTipo handles updating an expense type
// @Summary     Update a gasto tipo
// @Description Update an expense fee type's fields
// @Tags        gasto-tipos
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       id path int true "Gasto tipo ID"
// @Param       request body UpdateGastoTipoRequest true "Fields to update"
// @Success     200 {object} models.GastoTipo "Expense type updated"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /gasto-tipos/{id} [put]
func (h *GastoTipoHandler) UpdateGastoTipo(c *gin.Context) {
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

	var req UpdateGastoTipoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	gt, err := h.gastoTipoService.UpdateGastoTipo(id, req.Name, req.General, req.IsActive, req.MonthlyAmount)
	if err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log(userID, "update", "gasto_tipo", gt.ID, c.ClientIP(), nil)

	c.JSON(http.StatusOK, gt)
}

// DeleteGastoTipo handles deleting an expense type
// @Summary     Delete a gasto tipo
// @Description Soft-delete an expense fee type and its assignments
// @Tags        gasto-tipos
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       id path int true "Gasto tipo ID"
// @Success     200 {object} MessageResponse "Expense type deleted"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /gasto-tipos/{id} [delete]
func (h *GastoTipoHandler) DeleteGastoTipo(c *gin.Context) {
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

	if err := h.gastoTipoService.DeleteGastoTipo(id); err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log(userID, "delete", "gasto_tipo", id, c.ClientIP(), nil)

	c.JSON(http.StatusOK, gin.H{"message": "Gasto tipo deleted"})
}

// SetAssignedConceptos handles replacing an expense type's assignment list
// @Summary     Assign conceptos to a gasto tipo
// @Description Replace the list of conceptos a non-general expense type applies to
// @Tags        gasto-tipos
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       id path int true "Gasto tipo ID"
// @Param       request body AssignConceptosRequest true "Concepto IDs"
// @Success     200 {object} MessageResponse "Assignments replaced"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /gasto-tipos/{id}/conceptos [put]
func (h *GastoTipoHandler) SetAssignedConceptos(c *gin.Context) {
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

	var req AssignConceptosRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	if err := h.gastoTipoService.SetAssignedConceptos(id, req.ConceptoIDs); err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log(userID, "assign", "gasto_tipo", id, c.ClientIP(), map[string]interface{}{"conceptos": len(req.ConceptoIDs)})

	c.JSON(http.StatusOK, gin.H{"message": "Assignments replaced"})
}

// GetAssignedConceptos handles listing an expense type's assigned conceptos
// @Summary     List assigned conceptos
// @Description Get the conceptos a non-general expense type applies to
// @Tags        gasto-tipos
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       id path int true "Gasto tipo ID"
// @Success     200 {array} models.Concepto "Assigned conceptos"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /gasto-tipos/{id}/conceptos [get]
func (h *GastoTipoHandler) GetAssignedConceptos(c *gin.Context) {
	id, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	conceptos, err := h.gastoTipoService.GetAssignedConceptos(id)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, conceptos)
}
