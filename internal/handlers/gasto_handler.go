package handlers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	apperrors "condominio/internal/errors"
	"condominio/internal/models"
	"condominio/internal/pagination"
	"condominio/internal/services"
)

// GastoHandler handles expense requests
type GastoHandler struct {
	gastoService services.GastoServicer
	auditService services.AuditServicer
}

// NewGastoHandler creates a new GastoHandler
func NewGastoHandler(gastoService services.GastoServicer, auditService services.AuditServicer) *GastoHandler {
	return &GastoHandler{gastoService: gastoService, auditService: auditService}
}

// CreateGastoRequest represents the request payload for recording an expense
type CreateGastoRequest struct {
	ConceptoID  uint                 `json:"concepto_id" binding:"required"`
	GastoTipoID uint                 `json:"gasto_tipo_id" binding:"required"`
	Amount      int64                `json:"amount" binding:"required,min=1"`
	Month       models.Month         `json:"month" binding:"required,month_label"`
	Year        int                  `json:"year" binding:"required,year"`
	Status      models.PaymentStatus `json:"status" binding:"omitempty,payment_status"`
	PaymentDate *time.Time           `json:"payment_date"`
}

// UpdateGastoRequest represents the request payload for updating an expense
type UpdateGastoRequest struct {
	Amount      *int64                `json:"amount" binding:"omitempty,min=1"`
	Status      *models.PaymentStatus `json:"status" binding:"omitempty,payment_status"`
	PaymentDate *time.Time            `json:"payment_date"`
}

// parseGastoFilter builds a GastoFilter from query parameters.
func parseGastoFilter(c *gin.Context) (services.GastoFilter, error) {
	var filter services.GastoFilter

	if raw := c.Query("concepto_id"); raw != "" {
		id, err := strconv.ParseUint(raw, 10, 32)
		if err != nil {
			return filter, apperrors.WithMessage(apperrors.ErrInvalidInput, "Invalid concepto_id")
		}
		cid := uint(id)
		filter.ConceptoID = &cid
	}
	if raw := c.Query("gasto_tipo_id"); raw != "" {
		id, err := strconv.ParseUint(raw, 10, 32)
		if err != nil {
			return filter, apperrors.WithMessage(apperrors.ErrInvalidInput, "Invalid gasto_tipo_id")
		}
		gid := uint(id)
		filter.GastoTipoID = &gid
	}
	if raw := c.Query("year"); raw != "" {
		year, err := strconv.Atoi(raw)
		if err != nil {
			return filter, apperrors.WithMessage(apperrors.ErrInvalidInput, "Invalid year")
		}
		filter.Year = &year
	}
	if raw := c.Query("month"); raw != "" {
		month := models.Month(raw)
		if !models.IsValidMonth(month) {
			return filter, apperrors.ErrInvalidMonth
		}
		filter.Month = &month
	}
	if raw := c.Query("status"); raw != "" {
		status := models.PaymentStatus(raw)
		if status != models.StatusPaid && status != models.StatusPending {
			return filter, apperrors.WithMessage(apperrors.ErrInvalidInput, "Invalid status")
		}
		filter.Status = &status
	}

	return filter, nil
}

// CreateGasto handles recording a new expense
// @Summary     Record an expense
// @Description Record an expense for one month of one expense type
// @Tags        gastos
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       condominium_id path int true "Condominium ID"
// @Param       request body CreateGastoRequest true "Expense details"
// @Success     201 {object} models.Gasto "Expense recorded"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Concepto or expense type not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /condominiums/{condominium_id}/gastos [post]
func (h *GastoHandler) CreateGasto(c *gin.Context) {
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

	var req CreateGastoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	status := req.Status
	if status == "" {
		status = models.StatusPaid
	}
	paymentDate := time.Now()
	if req.PaymentDate != nil {
		paymentDate = *req.PaymentDate
	}

	gasto, err := h.gastoService.CreateGasto(
		condominiumID, req.ConceptoID, req.GastoTipoID,
		req.Amount, req.Month, req.Year, status, paymentDate,
	)
	if err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log(userID, "create", "gasto", gasto.ID, c.ClientIP(), map[string]interface{}{
		"concepto_id": gasto.ConceptoID,
		"month":       gasto.Month,
		"year":        gasto.Year,
		"amount":      gasto.Amount,
	})

	c.JSON(http.StatusCreated, gasto)
}

// GetGastos handles listing expenses of a condominium
// @Summary     List expenses
// @Description Get a paginated, filtered list of expenses
// @Tags        gastos
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       condominium_id path int true "Condominium ID"
// @Param       page query int false "Page number"
// @Param       page_size query int false "Page size"
// @Param       concepto_id query int false "Filter by concepto"
// @Param       gasto_tipo_id query int false "Filter by expense type"
// @Param       year query int false "Filter by year"
// @Param       month query string false "Filter by month label"
// @Param       status query string false "Filter by status (paid/pending)"
// @Success     200 {object} pagination.PageResponse[models.Gasto] "List of expenses"
// @Failure     400 {object} ErrorResponse "Invalid filter"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /condominiums/{condominium_id}/gastos [get]
func (h *GastoHandler) GetGastos(c *gin.Context) {
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

	filter, err := parseGastoFilter(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	result, err := h.gastoService.GetGastos(condominiumID, page, filter)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// GetGasto handles retrieving one expense
// @Summary     Get an expense
// @Description Get an expense by ID
// @Tags        gastos
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       id path int true "Gasto ID"
// @Success     200 {object} models.Gasto "Expense"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /gastos/{id} [get]
func (h *GastoHandler) GetGasto(c *gin.Context) {
	id, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	gasto, err := h.gastoService.GetGastoByID(id)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gasto)
}

// UpdateGasto handles updating an expense
// @Summary     Update an expense
// @Description Update an expense's amount, status or payment date
// @Tags        gastos
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       id path int true "Gasto ID"
// @Param       request body UpdateGastoRequest true "Fields to update"
// @Success     200 {object} models.Gasto "Expense updated"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /gastos/{id} [put]
func (h *GastoHandler) UpdateGasto(c *gin.Context) {
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

	var req UpdateGastoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	gasto, err := h.gastoService.UpdateGasto(id, req.Amount, req.Status, req.PaymentDate)
	if err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log(userID, "update", "gasto", gasto.ID, c.ClientIP(), nil)

	c.JSON(http.StatusOK, gasto)
}

// DeleteGasto handles deleting an expense
// @Summary     Delete an expense
// @Description Soft-delete an expense
// @Tags        gastos
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       id path int true "Gasto ID"
// @Success     200 {object} MessageResponse "Expense deleted"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /gastos/{id} [delete]
func (h *GastoHandler) DeleteGasto(c *gin.Context) {
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

	if err := h.gastoService.DeleteGasto(id); err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log(userID, "delete", "gasto", id, c.ClientIP(), nil)

	c.JSON(http.StatusOK, gin.H{"message": "Gasto deleted"})
}
