package services

import (
	"context"
	"errors"
	"time"

	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"

	apperrors "condominio/internal/errors"
	"condominio/internal/ledger"
	"condominio/internal/models"
)

// debtService computes arrears reports. It loads the row sets the
// ledger package needs and hands them to the pure computation; the
// dashboard query fans the four loads out concurrently.
type debtService struct {
	db  *gorm.DB
	now func() time.Time
}

// NewDebtService creates a new DebtServicer.
func NewDebtService(db *gorm.DB) DebtServicer {
	return &debtService{db: db, now: time.Now}
}

// GetResidentArrears computes the arrears of a single resident for the
// given year and start month.
func (s *debtService) GetResidentArrears(ctx context.Context, residentID uint, year int, startMonth models.Month) (*ledger.ResidentArrears, error) {
	var resident models.Resident
	if err := s.db.WithContext(ctx).First(&resident, residentID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrResidentNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	feeTypes, assignments, payments, err := s.loadLedgerRows(ctx, resident.CondominiumID, year)
	if err != nil {
		return nil, err
	}

	arrears := ledger.ComputeArrears(resident, feeTypes, assignments, payments, year, startMonth, s.now())
	return &arrears, nil
}

// GetDebtOverview computes the debt dashboard for a condominium:
// arrears of every active resident plus per-month and grand totals.
// Inactive residents are filtered out here, at the call boundary; the
// ledger itself does not care about the active flag.
func (s *debtService) GetDebtOverview(ctx context.Context, condominiumID uint, year int, startMonth models.Month) (*ledger.DebtOverview, error) {
	var condo models.Condominium
	if err := s.db.WithContext(ctx).First(&condo, condominiumID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrCondominiumNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	var residents []models.Resident
	if err := s.db.WithContext(ctx).
		Where("condominium_id = ? AND is_active = ?", condominiumID, true).
		Order("unit").Find(&residents).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	feeTypes, assignments, payments, err := s.loadLedgerRows(ctx, condominiumID, year)
	if err != nil {
		return nil, err
	}

	overview := ledger.ComputeDebtOverview(residents, feeTypes, assignments, payments, year, startMonth, s.now())
	return &overview, nil
}

// loadLedgerRows loads the fee types, assignments and payments of one
// condominium for a year.
func (s *debtService) loadLedgerRows(ctx context.Context, condominiumID uint, year int) ([]models.PaymentType, []models.ResidentPaymentType, []models.Payment, error) {
	var (
		feeTypes    []models.PaymentType
		assignments []models.ResidentPaymentType
		payments    []models.Payment
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return s.db.WithContext(gctx).
			Where("condominium_id = ? AND is_active = ?", condominiumID, true).
			Find(&feeTypes).Error
	})
	g.Go(func() error {
		return s.db.WithContext(gctx).
			Joins("JOIN payment_types ON payment_types.id = resident_payment_types.payment_type_id").
			Where("payment_types.condominium_id = ?", condominiumID).
			Find(&assignments).Error
	})
	g.Go(func() error {
		return s.db.WithContext(gctx).
			Where("condominium_id = ? AND year = ?", condominiumID, year).
			Find(&payments).Error
	})

	if err := g.Wait(); err != nil {
		return nil, nil, nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return feeTypes, assignments, payments, nil
}
