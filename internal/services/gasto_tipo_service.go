package services

import (
	"errors"

	"gorm.io/gorm"

	apperrors "condominio/internal/errors"
	"condominio/internal/models"
	"condominio/internal/pagination"
)

// gastoTipoService handles expense fee-type business logic. It mirrors
// paymentTypeService on the expense side of the ledger.
type gastoTipoService struct {
	db *gorm.DB
}

// NewGastoTipoService creates a new GastoTipoServicer.
func NewGastoTipoService(db *gorm.DB) GastoTipoServicer {
	return &gastoTipoService{db: db}
}

// CreateGastoTipo creates an expense fee type in the given condominium.
func (s *gastoTipoService) CreateGastoTipo(condominiumID uint, name string, general bool, monthlyAmount *int64) (*models.GastoTipo, error) {
	var condo models.Condominium
	if err := s.db.First(&condo, condominiumID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrCondominiumNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	gt := &models.GastoTipo{
		CondominiumID: condominiumID,
		Name:          name,
		General:       general,
		MonthlyAmount: monthlyAmount,
		IsActive:      true,
	}

	if err := s.db.Create(gt).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return gt, nil
}

// GetGastoTipos returns a paginated list of expense fee types.
func (s *gastoTipoService) GetGastoTipos(condominiumID uint, page pagination.PageRequest, isActive *bool) (*pagination.PageResponse[models.GastoTipo], error) {
	page.Defaults()

	base := s.db.Model(&models.GastoTipo{}).Where("condominium_id = ?", condominiumID)
	if isActive != nil {
		base = base.Where("is_active = ?", *isActive)
	}

	var totalItems int64
	if err := base.Count(&totalItems).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	var tipos []models.GastoTipo
	if err := base.Order("name").Scopes(pagination.Paginate(page)).Find(&tipos).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	result := pagination.NewPageResponse(tipos, page.Page, page.PageSize, totalItems)
	return &result, nil
}

// GetGastoTipoByID returns an expense fee type by ID.
func (s *gastoTipoService) GetGastoTipoByID(id uint) (*models.GastoTipo, error) {
	var gt models.GastoTipo
	if err := s.db.First(&gt, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrGastoTipoNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &gt, nil
}

// UpdateGastoTipo updates an expense fee type's fields.
func (s *gastoTipoService) UpdateGastoTipo(id uint, name string, general *bool, isActive *bool, monthlyAmount *int64) (*models.GastoTipo, error) {
	gt, err := s.GetGastoTipoByID(id)
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
		if err := s.db.Model(gt).Updates(updates).Error; err != nil {
			return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
	}
	return gt, nil
}

// DeleteGastoTipo soft-deletes an expense fee type and its assignments.
func (s *gastoTipoService) DeleteGastoTipo(id uint) error {
	gt, err := s.GetGastoTipoByID(id)
	if err != nil {
		return err
	}

	return s.db.Transaction(func(tx *gorm.DB) error {
		// Assignments are link rows under a composite unique index, so
		// they are removed for real rather than soft-deleted.
		if err := tx.Unscoped().Where("gasto_tipo_id = ?", id).Delete(&models.GastoTipoConcepto{}).Error; err != nil {
			return apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
		if err := tx.Delete(gt).Error; err != nil {
			return apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
		return nil
	})
}

// SetAssignedConceptos replaces the assignment list of a non-general
// expense fee type with the given conceptos.
func (s *gastoTipoService) SetAssignedConceptos(gastoTipoID uint, conceptoIDs []uint) error {
	if _, err := s.GetGastoTipoByID(gastoTipoID); err != nil {
		return err
	}

	return s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Unscoped().Where("gasto_tipo_id = ?", gastoTipoID).Delete(&models.GastoTipoConcepto{}).Error; err != nil {
			return apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
		for _, cid := range conceptoIDs {
			var concepto models.Concepto
			if err := tx.First(&concepto, cid).Error; err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return apperrors.ErrConceptoNotFound
				}
				return apperrors.Wrap(apperrors.ErrInternalServer, err)
			}
			assignment := &models.GastoTipoConcepto{GastoTipoID: gastoTipoID, ConceptoID: cid}
			if err := tx.Create(assignment).Error; err != nil {
				return apperrors.Wrap(apperrors.ErrInternalServer, err)
			}
		}
		return nil
	})
}

// GetAssignedConceptos returns the conceptos assigned to an expense fee type.
func (s *gastoTipoService) GetAssignedConceptos(gastoTipoID uint) ([]models.Concepto, error) {
	if _, err := s.GetGastoTipoByID(gastoTipoID); err != nil {
		return nil, err
	}

	var conceptos []models.Concepto
	err := s.db.
		Joins("JOIN gasto_tipo_conceptos ON gasto_tipo_conceptos.concepto_id = conceptos.id").
		Where("gasto_tipo_conceptos.gasto_tipo_id = ? AND gasto_tipo_conceptos.deleted_at IS NULL", gastoTipoID).
		Find(&conceptos).Error
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return conceptos, nil
}
