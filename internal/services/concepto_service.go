package services

import (
	"errors"

	"gorm.io/gorm"

	apperrors "condominio/internal/errors"
	"condominio/internal/models"
	"condominio/internal/pagination"
)

// conceptoService handles expense-category business logic.
type conceptoService struct {
	db *gorm.DB
}

// NewConceptoService creates a new ConceptoServicer.
func NewConceptoService(db *gorm.DB) ConceptoServicer {
	return &conceptoService{db: db}
}

// CreateConcepto creates an expense category in the given condominium.
func (s *conceptoService) CreateConcepto(condominiumID uint, name, description string) (*models.Concepto, error) {
	var condo models.Condominium
	if err := s.db.First(&condo, condominiumID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrCondominiumNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	concepto := &models.Concepto{
		CondominiumID: condominiumID,
		Name:          name,
		Description:   description,
	}

	if err := s.db.Create(concepto).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return concepto, nil
}

// GetConceptos returns a paginated list of expense categories.
func (s *conceptoService) GetConceptos(condominiumID uint, page pagination.PageRequest) (*pagination.PageResponse[models.Concepto], error) {
	page.Defaults()

	base := s.db.Model(&models.Concepto{}).Where("condominium_id = ?", condominiumID)

	var totalItems int64
	if err := base.Count(&totalItems).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	var conceptos []models.Concepto
	if err := base.Order("name").Scopes(pagination.Paginate(page)).Find(&conceptos).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	result := pagination.NewPageResponse(conceptos, page.Page, page.PageSize, totalItems)
	return &result, nil
}

// GetConceptoByID returns an expense category by ID.
func (s *conceptoService) GetConceptoByID(id uint) (*models.Concepto, error) {
	var concepto models.Concepto
	if err := s.db.First(&concepto, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrConceptoNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &concepto, nil
}

// UpdateConcepto updates an expense category's fields.
func (s *conceptoService) UpdateConcepto(id uint, name, description string) (*models.Concepto, error) {
	concepto, err := s.GetConceptoByID(id)
	if err != nil {
		return nil, err
	}

	updates := make(map[string]interface{})
	if name != "" {
		updates["name"] = name
	}
	if description != "" {
		updates["description"] = description
	}

	if len(updates) > 0 {
		if err := s.db.Model(concepto).Updates(updates).Error; err != nil {
			return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
	}
	return concepto, nil
}

// DeleteConcepto soft-deletes an expense category.
func (s *conceptoService) DeleteConcepto(id uint) error {
	concepto, err := s.GetConceptoByID(id)
	if err != nil {
		return err
	}
	if err := s.db.Delete(concepto).Error; err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return nil
}
