package services

import (
	"errors"

	"gorm.io/gorm"

	apperrors "condominio/internal/errors"
	"condominio/internal/models"
	"condominio/internal/pagination"
)

// paymentTypeService handles income fee-type business logic.
type paymentTypeService struct {
	db *gorm.DB
}

// NewPaymentTypeService creates a new PaymentTypeServicer.
func NewPaymentTypeService(db *gorm.DB) PaymentTypeServicer {
	return &paymentTypeService{db: db}
}

// CreatePaymentType creates a fee type in the given condominium.
func (s *paymentTypeService) CreatePaymentType(condominiumID uint, name string, general bool, monthlyAmount *int64) (*models.PaymentType, error) {
	var condo models.Condominium
	if err := s.db.First(&condo, condominiumID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrCondominiumNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	pt := &models.PaymentType{
		CondominiumID: condominiumID,
		Name:          name,
		General:       general,
		MonthlyAmount: monthlyAmount,
		IsActive:      true,
	}

	if err := s.db.Create(pt).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return pt, nil
}

// GetPaymentTypes returns a paginated list of fee types for a condominium.
func (s *paymentTypeService) GetPaymentTypes(condominiumID uint, page pagination.PageRequest, isActive *bool) (*pagination.PageResponse[models.PaymentType], error) {
	page.Defaults()

	base := s.db.Model(&models.PaymentType{}).Where("condominium_id = ?", condominiumID)
	if isActive != nil {
		base = base.Where("is_active = ?", *isActive)
	}

	var totalItems int64
	if err := base.Count(&totalItems).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	var types []models.PaymentType
	if err := base.Order("name").Scopes(pagination.Paginate(page)).Find(&types).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	result := pagination.NewPageResponse(types, page.Page, page.PageSize, totalItems)
	return &result, nil
}

// GetPaymentTypeByID returns a fee type by ID.
func (s *paymentTypeService) GetPaymentTypeByID(id uint) (*models.PaymentType, error) {
	var pt models.PaymentType
	if err := s.db.First(&pt, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrPaymentTypeNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &pt, nil
}

// UpdatePaymentType updates a fee type's fields. Passing a monthlyAmount
// pointer replaces the stored amount, including back to an explicit value
// from nil.
func (s *paymentTypeService) UpdatePaymentType(id uint, name string, general *bool, isActive *bool, monthlyAmount *int64) (*models.PaymentType, error) {
	pt, err := s.GetPaymentTypeByID(id)
	if err != nil {
		return nil, err
	}

	updates := make(map[string]interface{})
	if name != "" {
		updates["name"] = name
	}
	if general != nil {
		updates["general"] = *general
	}
	if isActive != nil {
		updates["is_active"] = *isActive
	}
	if monthlyAmount != nil {
		updates["monthly_amount"] = *monthlyAmount
	}

	if len(updates) > 0 {
		if err := s.db.Model(pt).Updates(updates).Error; err != nil {
			return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
	}
	return pt, nil
}

// DeletePaymentType soft-deletes a fee type and its assignments.
func (s *paymentTypeService) DeletePaymentType(id uint) error {
	pt, err := s.GetPaymentTypeByID(id)
	if err != nil {
		return err
	}

	return s.db.Transaction(func(tx *gorm.DB) error {
		// Assignments are link rows under a composite unique index, so
		// they are removed for real rather than soft-deleted.
		if err := tx.Unscoped().Where("payment_type_id = ?", id).Delete(&models.ResidentPaymentType{}).Error; err != nil {
			return apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
		if err := tx.Delete(pt).Error; err != nil {
			return apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
		return nil
	})
}

// SetAssignedResidents replaces the assignment list of a non-general fee
// type with the given residents.
func (s *paymentTypeService) SetAssignedResidents(paymentTypeID uint, residentIDs []uint) error {
	if _, err := s.GetPaymentTypeByID(paymentTypeID); err != nil {
		return err
	}

	return s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Unscoped().Where("payment_type_id = ?", paymentTypeID).Delete(&models.ResidentPaymentType{}).Error; err != nil {
			return apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
		for _, rid := range residentIDs {
			var resident models.Resident
			if err := tx.First(&resident, rid).Error; err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return apperrors.ErrResidentNotFound
				}
				return apperrors.Wrap(apperrors.ErrInternalServer, err)
			}
			assignment := &models.ResidentPaymentType{ResidentID: rid, PaymentTypeID: paymentTypeID}
			if err := tx.Create(assignment).Error; err != nil {
				return apperrors.Wrap(apperrors.ErrInternalServer, err)
			}
		}
		return nil
	})
}

// GetAssignedResidents returns the residents assigned to a fee type.
func (s *paymentTypeService) GetAssignedResidents(paymentTypeID uint) ([]models.Resident, error) {
	if _, err := s.GetPaymentTypeByID(paymentTypeID); err != nil {
		return nil, err
	}

	var residents []models.Resident
	err := s.db.
		Joins("JOIN resident_payment_types ON resident_payment_types.resident_id = residents.id").
		Where("resident_payment_types.payment_type_id = ? AND resident_payment_types.deleted_at IS NULL", paymentTypeID).
		Find(&residents).Error
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return residents, nil
}
