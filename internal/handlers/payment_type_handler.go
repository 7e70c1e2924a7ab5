package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "condominio/internal/errors"
	"condominio/internal/pagination"
	"condominio/internal/services"
)

// PaymentTypeHandler handles income fee-type requests
type PaymentTypeHandler struct {
	paymentTypeService services.PaymentTypeServicer
	auditService       services.AuditServicer
}

// NewPaymentTypeHandler creates a new PaymentTypeHandler
func NewPaymentTypeHandler(paymentTypeService services.PaymentTypeServicer, auditService services.AuditServicer) *PaymentTypeHandler {
	return &PaymentTypeHandler{paymentTypeService: paymentTypeService, auditService: auditService}
}

// CreatePaymentTypeRequest represents the request payload for creating a fee type
type CreatePaymentTypeRequest struct {
	Name          string `json:"name" binding:"required,max=150"`
	General       *bool  `json:"general"`
	MonthlyAmount *int64 `json:"monthly_amount" binding:"omitempty,min=0"`
}

// UpdatePaymentTypeRequest represents the request payload for updating a fee type
type UpdatePaymentTypeRequest struct {
	Name          string `json:"name" binding:"max=150"`
	General       *bool  `json:"general"`
	IsActive      *bool  `json:"is_active"`
	MonthlyAmount *int64 `json:"monthly_amount" binding:"omitempty,min=0"`
}

// AssignResidentsRequest represents the assignment replacement payload
type AssignResidentsRequest struct {
	ResidentIDs []uint `json:"resident_ids" binding:"required"`
}

// CreatePaymentType handles the creation of a new fee type
// @Summary     Create a payment type
// @Description Create a new income fee type in a condominium
// @Tags        payment-types
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       condominium_id path int true "Condominium ID"
// @Param       request body CreatePaymentTypeRequest true "Fee type details"
// @Success     201 {object} models.PaymentType "Fee type created"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Condominium not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /condominiums/{condominium_id}/payment-types [post]
func (h *PaymentTypeHandler) CreatePaymentType(c *gin.Context) {
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

	var req CreatePaymentTypeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	general := true
	if req.General != nil {
		general = *req.General
	}

	pt, err := h.paymentTypeService.CreatePaymentType(condominiumID, req.Name, general, req.MonthlyAmount)
	if err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log(userID, "create", "payment_type", pt.ID, c.ClientIP(), map[string]interface{}{"name": pt.Name})

	c.JSON(http.StatusCreated, pt)
}

// GetPaymentTypes handles listing fee types of a condominium
// @Summary     List payment types
// @Description Get a paginated list of income fee types
// @Tags        payment-types
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       condominium_id path int true "Condominium ID"
// @Param       page query int false "Page number"
// @Param       page_size query int false "Page size"
// @Param       is_active query bool false "Filter by active flag"
// @Success     200 {object} pagination.PageResponse[models.PaymentType] "List of fee types"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /condominiums/{condominium_id}/payment-types [get]
func (h *PaymentTypeHandler) GetPaymentTypes(c *gin.Context) {
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

	result, err := h.paymentTypeService.GetPaymentTypes(condominiumID, page, isActive)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// GetPaymentType handles retrieving one fee type
// @Summary     Get a payment type
// @Description Get an income fee type by ID
// @Tags        payment-types
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       id path int true "Payment type ID"
// @Success     200 {object} models.PaymentType "Fee type"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /payment-types/{id} [get]
func (h *PaymentTypeHandler) GetPaymentType(c *gin.Context) {
	id, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	pt, err := h.paymentTypeService.GetPaymentTypeByID(id)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, pt)
}

// UpdatePaymentType handles updating a fee type
// @Summary     Update a payment type
// @Description Update an income fee type's fields
// @Tags        payment-types
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       id path int true "Payment type ID"
// @Param       request body UpdatePaymentTypeRequest true "Fields to update"
// @Success     200 {object} models.PaymentType "Fee type updated"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /payment-types/{id} [put]
func (h *PaymentTypeHandler) UpdatePaymentType(c *gin.Context) {
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

	var req UpdatePaymentTypeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	pt, err := h.paymentTypeService.UpdatePaymentType(id, req.Name, req.General, req.IsActive, req.MonthlyAmount)
	if err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log(userID, "update", "payment_type", pt.ID, c.ClientIP(), nil)

	c.JSON(http.StatusOK, pt)
}

// DeletePaymentType handles deleting a fee type
// @Summary     Delete a payment type
// @Description Soft-delete an income fee type and its assignments
// @Tags        payment-types
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       id path int true "Payment type ID"
// @Success     200 {object} MessageResponse "Fee type deleted"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /payment-types/{id} [delete]
func (h *PaymentTypeHandler) DeletePaymentType(c *gin.Context) {
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

	if err := h.paymentTypeService.DeletePaymentType(id); err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log(userID, "delete", "payment_type", id, c.ClientIP(), nil)

	c.JSON(http.StatusOK, gin.H{"message": "Payment type deleted"})
}

// SetAssignedResidents handles replacing a fee type's assignment list
// @Summary     Assign residents to a payment type
// @Description Replace the list of residents a non-general fee type applies to
// @Tags        payment-types
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       id path int true "Payment type ID"
// @Param       request body AssignResidentsRequest true "Resident IDs"
// @Success     200 {object} MessageResponse "Assignments replaced"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /payment-types/{id}/residents [put]
func (h *PaymentTypeHandler) SetAssignedResidents(c *gin.Context) {
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

	var req AssignResidentsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	if err := h.paymentTypeService.SetAssignedResidents(id, req.ResidentIDs); err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log(userID, "assign", "payment_type", id, c.ClientIP(), map[string]interface{}{"residents": len(req.ResidentIDs)})

	c.JSON(http.StatusOK, gin.H{"message": "Assignments replaced"})
}

// GetAssignedResidents handles listing a fee type's assigned residents
// @Summary     List assigned residents
// @Description Get the residents a non-general fee type applies to
// @Tags        payment-types
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       id path int true "Payment type ID"
// @Success     200 {array} models.Resident "Assigned residents"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /payment-types/{id}/residents [get]
func (h *PaymentTypeHandler) GetAssignedResidents(c *gin.Context) {
	id, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	residents, err := h.paymentTypeService.GetAssignedResidents(id)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, residents)
}
