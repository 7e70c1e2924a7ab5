package services

import (
	"errors"

	"gorm.io/gorm"

	apperrors "condominio/internal/errors"
	"condominio/internal/models"
	"condominio/internal/pagination"
)

// residentService handles resident business logic.
type residentService struct {
	db *gorm.DB
}

// NewResidentService creates a new ResidentServicer.
func NewResidentService(db *gorm.DB) ResidentServicer {
	return &residentService{db: db}
}

// CreateResident creates a resident in the given condominium.
func (s *residentService) CreateResident(condominiumID uint, name, unit, email, phone string) (*models.Resident, error) {
	var condo models.Condominium
	if err := s.db.First(&condo, condominiumID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrCondominiumNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	resident := &models.Resident{
		CondominiumID: condominiumID,
		Name:          name,
		Unit:          unit,
		Email:         email,
		Phone:         phone,
		IsActive:      true,
	}

	if err := s.db.Create(resident).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return resident, nil
}

// GetResidents returns a paginated list of residents for a condominium,
// optionally filtered by active flag.
func (s *residentService) GetResidents(condominiumID uint, page pagination.PageRequest, isActive *bool) (*pagination.PageResponse[models.Resident], error) {
	page.Defaults()

	base := s.db.Model(&models.Resident{}).Where("condominium_id = ?", condominiumID)
	if isActive != nil {
		base = base.Where("is_active = ?", *isActive)
	}

	var totalItems int64
	if err := base.Count(&totalItems).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	var residents []models.Resident
	if err := base.Order("unit").Scopes(pagination.Paginate(page)).Find(&residents).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	result := pagination.NewPageResponse(residents, page.Page, page.PageSize, totalItems)
	return &result, nil
}

// GetResidentByID returns a resident by ID.
func (s *residentService) GetResidentByID(id uint) (*models.Resident, error) {
	var resident models.Resident
	if err := s.db.First(&resident, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrResidentNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &resident, nil
}

// UpdateResident updates a resident's fields.
func (s *residentService) UpdateResident(id uint, name, unit, email, phone string, isActive *bool) (*models.Resident, error) {
	resident, err := s.GetResidentByID(id)
	if err != nil {
		return nil, err
	}

	updates := make(map[string]interface{})
	if name != "" {
		updates["name"] = name
	}
	if unit != "" {
		updates["unit"] = unit
	}
	if email != "" {
		updates["email"] = email
	}
	if phone != "" {
		updates["phone"] = phone
	}
	if isActive != nil {
		updates["is_active"] = *isActive
	}

	if len(updates) > 0 {
		if err := s.db.Model(resident).Updates(updates).Error; err != nil {
			return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
	}
	return resident, nil
}

// DeleteResident soft-deletes a resident. Residents with recorded
// payments cannot be deleted; deactivate them instead.
func (s *residentService) DeleteResident(id uint) error {
	resident, err := s.GetResidentByID(id)
	if err != nil {
		return err
	}

	var paymentCount int64
	if err := s.db.Model(&models.Payment{}).Where("resident_id = ?", id).Count(&paymentCount).Error; err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	if paymentCount > 0 {
		return apperrors.ErrResidentHasRows
	}

	if err := s.db.Delete(resident).Error; err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return nil
}
