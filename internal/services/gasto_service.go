package services

import (
	"errors"
	"time"

	"gorm.io/gorm"

	apperrors "condominio/internal/errors"
	"condominio/internal/models"
	"condominio/internal/pagination"
)

// gastoService handles expense rows.
type gastoService struct {
	db *gorm.DB
}

// NewGastoService creates a new GastoServicer.
func NewGastoService(db *gorm.DB) GastoServicer {
	return &gastoService{db: db}
}

// CreateGasto records an expense for one month of one gasto tipo.
func (s *gastoService) CreateGasto(condominiumID, conceptoID, gastoTipoID uint, amount int64, month models.Month, year int, status models.PaymentStatus, paymentDate time.Time) (*models.Gasto, error) {
	if !models.IsValidMonth(month) {
		return nil, apperrors.ErrInvalidMonth
	}

	var concepto models.Concepto
	if err := s.db.Where("id = ? AND condominium_id = ?", conceptoID, condominiumID).First(&concepto).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrConceptoNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	var gt models.GastoTipo
	if err := s.db.Where("id = ? AND condominium_id = ?", gastoTipoID, condominiumID).First(&gt).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrGastoTipoNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	gasto := &models.Gasto{
		CondominiumID: condominiumID,
		ConceptoID:    conceptoID,
		GastoTipoID:   gastoTipoID,
		Amount:        amount,
		Month:         month,
		Year:          year,
		Status:        status,
		PaymentDate:   paymentDate,
	}

	if err := s.db.Create(gasto).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return gasto, nil
}

// GetGastos returns a paginated, filtered list of expenses.
func (s *gastoService) GetGastos(condominiumID uint, page pagination.PageRequest, filter GastoFilter) (*pagination.PageResponse[models.Gasto], error) {
	page.Defaults()

	base := s.db.Model(&models.Gasto{}).Where("condominium_id = ?", condominiumID)
	if filter.ConceptoID != nil {
		base = base.Where("concepto_id = ?", *filter.ConceptoID)
	}
	if filter.GastoTipoID != nil {
		base = base.Where("gasto_tipo_id = ?", *filter.GastoTipoID)
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

	var gastos []models.Gasto
	if err := base.Preload("Concepto").Preload("GastoTipo").
		Order("year DESC, payment_date DESC").
		Scopes(pagination.Paginate(page)).Find(&gastos).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	result := pagination.NewPageResponse(gastos, page.Page, page.PageSize, totalItems)
	return &result, nil
}

// GetGastoByID returns an expense by ID.
func (s *gastoService) GetGastoByID(id uint) (*models.Gasto, error) {
	var gasto models.Gasto
	if err := s.db.Preload("Concepto").Preload("GastoTipo").First(&gasto, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrGastoNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &gasto, nil
}

// UpdateGasto updates an expense's amount, status or payment date.
func (s *gastoService) UpdateGasto(id uint, amount *int64, status *models.PaymentStatus, paymentDate *time.Time) (*models.Gasto, error) {
	gasto, err := s.GetGastoByID(id)
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
		if err := s.db.Model(gasto).Updates(updates).Error; err != nil {
			return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
	}
	return gasto, nil
}

// DeleteGasto soft-deletes an expense.
func (s *gastoService) DeleteGasto(id uint) error {
	gasto, err := s.GetGastoByID(id)
	if err != nil {
		return err
	}
	if err := s.db.Delete(gasto).Error; err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return nil
}
