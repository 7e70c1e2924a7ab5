package services

import (
	"errors"

	"gorm.io/gorm"

	apperrors "condominio/internal/errors"
	"condominio/internal/models"
	"condominio/internal/pagination"
)

// condominiumService handles condominium business logic.
type condominiumService struct {
	db *gorm.DB
}

// NewCondominiumService creates a new CondominiumServicer.
func NewCondominiumService(db *gorm.DB) CondominiumServicer {
	return &condominiumService{db: db}
}

// CreateCondominium creates a new condominium.
func (s *condominiumService) CreateCondominium(name, address string, defaultMonthlyFee int64, unitCount int, president, treasurer, secretary string) (*models.Condominium, error) {
	condo := &models.Condominium{
		Name:              name,
		Address:           address,
		DefaultMonthlyFee: defaultMonthlyFee,
		UnitCount:         unitCount,
		President:         president,
		Treasurer:         treasurer,
		Secretary:         secretary,
	}

	if err := s.db.Create(condo).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return condo, nil
}

// GetCondominiums returns a paginated list of condominiums.
func (s *condominiumService) GetCondominiums(page pagination.PageRequest) (*pagination.PageResponse[models.Condominium], error) {
	page.Defaults()

	base := s.db.Model(&models.Condominium{})

	var totalItems int64
	if err := base.Count(&totalItems).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	var condos []models.Condominium
	if err := base.Order("name").Scopes(pagination.Paginate(page)).Find(&condos).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	result := pagination.NewPageResponse(condos, page.Page, page.PageSize, totalItems)
	return &result, nil
}

// GetCondominiumByID returns a condominium by ID.
func (s *condominiumService) GetCondominiumByID(id uint) (*models.Condominium, error) {
	var condo models.Condominium
	if err := s.db.First(&condo, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrCondominiumNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &condo, nil
}

// UpdateCondominium updates a condominium's fields.
func (s *condominiumService) UpdateCondominium(id uint, name, address string, defaultMonthlyFee *int64, unitCount *int, president, treasurer, secretary *string) (*models.Condominium, error) {
	condo, err := s.GetCondominiumByID(id)
	if err != nil {
		return nil, err
	}

	updates := make(map[string]interface{})
	if name != "" {
		updates["name"] = name
	}
	if address != "" {
		updates["address"] = address
	}
	if defaultMonthlyFee != nil {
		updates["default_monthly_fee"] = *defaultMonthlyFee
	}
	if unitCount != nil {
		updates["unit_count"] = *unitCount
	}
	if president != nil {
		updates["president"] = *president
	}
	if treasurer != nil {
		updates["treasurer"] = *treasurer
	}
	if secretary != nil {
		updates["secretary"] = *secretary
	}

	if len(updates) > 0 {
		if err := s.db.Model(condo).Updates(updates).Error; err != nil {
			return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
	}
	return condo, nil
}

// DeleteCondominium soft-deletes a condominium.
func (s *condominiumService) DeleteCondominium(id uint) error {
	condo, err := s.GetCondominiumByID(id)
	if err != nil {
		return err
	}
	if err := s.db.Delete(condo).Error; err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return nil
}
