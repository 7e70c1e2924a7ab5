package services

import (
	"errors"
	"time"

	"gorm.io/gorm"

	apperrors "condominio/internal/errors"
	"condominio/internal/models"
	"condominio/internal/pagination"
	"condominio/internal/uuid"
)

// paymentService handles income payment rows.
type paymentService struct {
	db *gorm.DB
}

// NewPaymentService creates a new PaymentServicer.
func NewPaymentService(db *gorm.DB) PaymentServicer {
	return &paymentService{db: db}
}

// CreatePayment records a payment for one month of one fee type. A
// second paid row for the same (resident, type, month, year) tuple is
// rejected: the ledger treats the tuple as settled by a single row.
func (s *paymentService) CreatePayment(condominiumID, residentID, paymentTypeID uint, amount int64, month models.Month, year int, status models.PaymentStatus, paymentDate time.Time) (*models.Payment, error) {
	if !models.IsValidMonth(month) {
		return nil, apperrors.ErrInvalidMonth
	}

	var resident models.Resident
	if err := s.db.Where("id = ? AND condominium_id = ?", residentID, condominiumID).First(&resident).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrResidentNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	var pt models.PaymentType
	if err := s.db.Where("id = ? AND condominium_id = ?", paymentTypeID, condominiumID).First(&pt).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrPaymentTypeNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	if status == models.StatusPaid {
		var count int64
		err := s.db.Model(&models.Payment{}).
			Where("resident_id = ? AND payment_type_id = ? AND month = ? AND year = ? AND status = ?",
				residentID, paymentTypeID, month, year, models.StatusPaid).
			Count(&count).Error
		if err != nil {
			return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
		if count > 0 {
			return nil, apperrors.ErrDuplicatePayment
		}
	}

	payment := &models.Payment{
		CondominiumID: condominiumID,
		ResidentID:    residentID,
		PaymentTypeID: paymentTypeID,
		Amount:        amount,
		Month:         month,
		Year:          year,
		Status:        status,
		PaymentDate:   paymentDate,
		Receipt:       uuid.New(),
	}

	if err := s.db.Create(payment).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return payment, nil
}

// GetPayments returns a paginated, filtered list of payments.
func (s *paymentService) GetPayments(condominiumID uint, page pagination.PageRequest, filter PaymentFilter) (*pagination.PageResponse[models.Payment], error) {
	page.Defaults()

	base := s.db.Model(&models.Payment{}).Where("condominium_id = ?", condominiumID)
	if filter.ResidentID != nil {
		base = base.Where("resident_id = ?", *filter.ResidentID)
	}
	if filter.PaymentTypeID != nil {
		base = base.Where("payment_type_id = ?", *filter.PaymentTypeID)
	}
	if filter.Year != nil {
		base = base.Where("year = ?", *filter.Year)
	}
	if filter.Month != nil {
		base = base.Where("month = ?", *filter.Month)
	}
	if filter.Status != nil {
		base = base.Where("status = ?", *filter.Status)
	}

	var totalItems int64
	if err := base.Count(&totalItems).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	var payments []models.Payment
	if err := base.Preload("Resident").Preload("PaymentType").
		Order("year DESC, payment_date DESC").
		Scopes(pagination.Paginate(page)).Find(&payments).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	result := pagination.NewPageResponse(payments, page.Page, page.PageSize, totalItems)
	return &result, nil
}

// GetPaymentByID returns a payment by ID.
func (s *paymentService) GetPaymentByID(id uint) (*models.Payment, error) {
	var payment models.Payment
	if err := s.db.Preload("Resident").Preload("PaymentType").First(&payment, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrPaymentNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &payment, nil
}

// UpdatePayment updates a payment's amount, status or payment date.
// Month, year, resident and fee type are immutable; record a new row
// instead of moving one.
func (s *paymentService) UpdatePayment(id uint, amount *int64, status *models.PaymentStatus, paymentDate *time.Time) (*models.Payment, error) {
	payment, err := s.GetPaymentByID(id)
	if err != nil {
		return nil, err
	}

	updates := make(map[string]interface{})
	if amount != nil {
		updates["amount"] = *amount
	}
	if status != nil {
		updates["status"] = *status
	}
	if paymentDate != nil {
		updates["payment_date"] = *paymentDate
	}

	if len(updates) > 0 {
		if err := s.db.Model(payment).Updates(updates).Error; err != nil {
			return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
	}
	return payment, nil
}

// DeletePayment soft-deletes a payment.
func (s *paymentService) DeletePayment(id uint) error {
	payment, err := s.GetPaymentByID(id)
	if err != nil {
		return err
	}
	if err := s.db.Delete(payment).Error; err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return nil
}
