package services

import (
	"errors"
	"time"

	"gorm.io/gorm"

	apperrors "condominio/internal/errors"
	"condominio/internal/ledger"
	"condominio/internal/models"
)

// statementService assembles account statements: the per-fee-type
// paid/unpaid month grid the client renders into the printable
// document, with the condominium's signer names alongside.
type statementService struct {
	db  *gorm.DB
	now func() time.Time
}

// NewStatementService creates a new StatementServicer.
func NewStatementService(db *gorm.DB) StatementServicer {
	return &statementService{db: db, now: time.Now}
}

// GetStatement builds the statement for a resident and year, covering
// the full arrears window starting in January.
func (s *statementService) GetStatement(residentID uint, year int) (*Statement, error) {
	var resident models.Resident
	if err := s.db.First(&resident, residentID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrResidentNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	var condo models.Condominium
	if err := s.db.First(&condo, resident.CondominiumID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrCondominiumNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	var feeTypes []models.PaymentType
	if err := s.db.Where("condominium_id = ? AND is_active = ?", condo.ID, true).Find(&feeTypes).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	var assignments []models.ResidentPaymentType
	if err := s.db.Where("resident_id = ?", residentID).Find(&assignments).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	var payments []models.Payment
	if err := s.db.Where("resident_id = ? AND year = ?", residentID, year).Find(&payments).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	statement := &Statement{
		Resident:    resident,
		Condominium: condo,
		Year:        year,
	}

	arrears := ledger.ComputeArrears(resident, feeTypes, assignments, payments, year, models.Enero, s.now())
	statement.TotalOwed = arrears.TotalOwed

	for _, ft := range ledger.ApplicableFeeTypes(resident, feeTypes, assignments) {
		paidSet := ledger.PaidMonths(payments, residentID, ft.ID, year)
		var paid []models.Month
		for _, m := range models.MonthLabels {
			if paidSet[m] {
				paid = append(paid, m)
			}
		}

		var amount int64
		if ft.MonthlyAmount != nil {
			amount = *ft.MonthlyAmount
		}

		entry := StatementFeeType{
			PaymentTypeID: ft.ID,
			Name:          ft.Name,
			MonthlyAmount: amount,
			PaidMonths:    paid,
		}
		if fa, ok := arrears.PerFeeType[ft.ID]; ok {
			entry.UnpaidMonths = fa.UnpaidMonths
			entry.Owed = fa.Owed
		}
		statement.FeeTypes = append(statement.FeeTypes, entry)
	}

	for _, p := range payments {
		if p.Status == models.StatusPaid {
			statement.TotalPaid += p.Amount
		}
	}

	return statement, nil
}
