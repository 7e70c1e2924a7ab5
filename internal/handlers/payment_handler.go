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

// PaymentHandler handles income payment requests
type PaymentHandler struct {
	paymentService services.PaymentServicer
	auditService   services.AuditServicer
}

// NewPaymentHandler creates a new PaymentHandler
func NewPaymentHandler(paymentService services.PaymentServicer, auditService services.AuditServicer) *PaymentHandler {
	return &PaymentHandler{paymentService: paymentService, auditService: auditService}
}

// CreatePaymentRequest represents the request payload for recording a payment
type CreatePaymentRequest struct {
	ResidentID    uint                 `json:"resident_id" binding:"required"`
	PaymentTypeID uint                 `json:"payment_type_id" binding:"required"`
	Amount        int64                `json:"amount" binding:"required,min=1"`
	Month         models.Month         `json:"month" binding:"required,month_label"`
	Year          int                  `json:"year" binding:"required,year"`
	Status        models.PaymentStatus `json:"status" binding:"omitempty,payment_status"`
	PaymentDate   *time.Time           `json:"payment_date"`
}

// UpdatePaymentRequest represents the request payload for updating a payment.
// Month, year, resident and type are immutable; delete and re-create to move
// a payment to a different slot.
type UpdatePaymentRequest struct {
	Amount      *int64                `json:"amount" binding:"omitempty,min=1"`
	Status      *models.PaymentStatus `json:"status" binding:"omitempty,payment_status"`
	PaymentDate *time.Time            `json:"payment_date"`
}

// parsePaymentFilter builds a PaymentFilter from query parameters.
func parsePaymentFilter(c *gin.Context) (services.PaymentFilter, error) {
	var filter services.PaymentFilter

	if raw := c.Query("resident_id"); raw != "" {
		id, err := strconv.ParseUint(raw, 10, 32)
		if err != nil {
			return filter, apperrors.WithMessage(apperrors.ErrInvalidInput, "Invalid resident_id")
		}
		rid := uint(id)
		filter.ResidentID = &rid
	}
	if raw := c.Query("payment_type_id"); raw != "" {
		id, err := strconv.ParseUint(raw, 10, 32)
		if err != nil {
			return filter, apperrors.WithMessage(apperrors.ErrInvalidInput, "Invalid payment_type_id")
		}
		pid := uint(id)
		filter.PaymentTypeID = &pid
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

// CreatePayment handles recording a new payment
// @Summary     Record a payment
// @Description Record a resident's payment for one month of one fee type
// @Tags        payments
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       condominium_id path int true "Condominium ID"
// @Param       request body CreatePaymentRequest true "Payment details"
// @Success     201 {object} models.Payment "Payment recorded"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Resident or fee type not found"
// @Failure     409 {object} ErrorResponse "Duplicate paid payment"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /condominiums/{condominium_id}/payments [post]
func (h *PaymentHandler) CreatePayment(c *gin.Context) {
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

	var req CreatePaymentRequest
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

	payment, err := h.paymentService.CreatePayment(
		condominiumID, req.ResidentID, req.PaymentTypeID,
		req.Amount, req.Month, req.Year, status, paymentDate,
	)
	if err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log(userID, "create", "payment", payment.ID, c.ClientIP(), map[string]interface{}{
		"resident_id": payment.ResidentID,
		"month":       payment.Month,
		"year":        payment.Year,
		"amount":      payment.Amount,
	})

	c.JSON(http.StatusCreated, payment)
}

// GetPayments handles listing payments of a condominium
// @Summary     List payments
// @Description Get a paginated, filtered list of payments
// @Tags        payments
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       condominium_id path int true "Condominium ID"
// @Param       page query int false "Page number"
// @Param       page_size query int false "Page size"
// @Param       resident_id query int false "Filter by resident"
// @Param       payment_type_id query int false "Filter by fee type"
// @Param       year query int false "Filter by year"
// @Param       month query string false "Filter by month label"
// @Param       status query string false "Filter by status (paid/pending)"
// @Success     200 {object} pagination.PageResponse[models.Payment] "List of payments"
// @Failure     400 {object} ErrorResponse "Invalid filter"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /condominiums/{condominium_id}/payments [get]
func (h *PaymentHandler) GetPayments(c *gin.Context) {
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

	filter, err := parsePaymentFilter(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	result, err := h.paymentService.GetPayments(condominiumID, page, filter)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// GetPayment handles retrieving one payment
// @Summary     Get a payment
// @Description Get a payment by ID
// @Tags        payments
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       id path int true "Payment ID"
// @Success     200 {object} models.Payment "Payment"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /payments/{id} [get]
func (h *PaymentHandler) GetPayment(c *gin.Context) {
	id, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	payment, err := h.paymentService.GetPaymentByID(id)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, payment)
}

// UpdatePayment handles updating a payment
// @Summary     Update a payment
// @Description Update a payment's amount, status or payment date
// @Tags        payments
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       id path int true "Payment ID"
// @Param       request body UpdatePaymentRequest true "Fields to update"
// @Success     200 {object} models.Payment "Payment updated"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /payments/{id} [put]
func (h *PaymentHandler) UpdatePayment(c *gin.Context) {
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

	var req UpdatePaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	payment, err := h.paymentService.UpdatePayment(id, req.Amount, req.Status, req.PaymentDate)
	if err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log(userID, "update", "payment", payment.ID, c.ClientIP(), nil)

	c.JSON(http.StatusOK, payment)
}

// DeletePayment handles deleting a payment
// @Summary     Delete a payment
// @Description Soft-delete a payment, reopening the month it settled
// @Tags        payments
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       id path int true "Payment ID"
// @Success     200 {object} MessageResponse "Payment deleted"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /payments/{id} [delete]
func (h *PaymentHandler) DeletePayment(c *gin.Context) {
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

	if err := h.paymentService.DeletePayment(id); err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log(userID, "delete", "payment", id, c.ClientIP(), nil)

	c.JSON(http.StatusOK, gin.H{"message": "Payment deleted"})
}
