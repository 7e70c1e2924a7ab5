package services

import (
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	apperrors "condominio/internal/errors"
	"condominio/internal/ledger"
	"condominio/internal/logger"
	"condominio/internal/models"
)

// summaryService computes yearly financial rollups. The ending balance
// of each computed year is cached in financial_summaries so the next
// year's starting balance is a single row read instead of a replay of
// all history.
type summaryService struct {
	db *gorm.DB
}

// NewSummaryService creates a new SummaryServicer.
func NewSummaryService(db *gorm.DB) SummaryServicer {
	return &summaryService{db: db}
}

// GetYearlySummary computes the rollup for a condominium and year. The
// starting balance comes from the cached prior-year row; a missing row
// means zero, not an error. After computing, the result is upserted
// back into the cache; a failed upsert is logged and the in-memory
// result is still returned.
func (s *summaryService) GetYearlySummary(condominiumID uint, year int) (*ledger.YearlySummary, error) {
	var condo models.Condominium
	if err := s.db.First(&condo, condominiumID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrCondominiumNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	startingBalance := s.priorYearEndingBalance(condominiumID, year)

	var payments []models.Payment
	if err := s.db.Where("condominium_id = ? AND year = ?", condominiumID, year).Find(&payments).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	var gastos []models.Gasto
	if err := s.db.Where("condominium_id = ? AND year = ?", condominiumID, year).Find(&gastos).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	summary := ledger.ComputeYearlySummary(year, payments, gastos, startingBalance)

	s.cacheSummary(condominiumID, year, summary.StartingBalance, summary.EndingBalance)

	return &summary, nil
}

// priorYearEndingBalance reads the cached ending balance of year-1.
// Absence of the row is the normal first-year case and yields zero.
func (s *summaryService) priorYearEndingBalance(condominiumID uint, year int) int64 {
	var prior models.FinancialSummary
	err := s.db.Where("condominium_id = ? AND year = ?", condominiumID, year-1).First(&prior).Error
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			logger.Get().Warnw("failed to read prior-year summary, defaulting starting balance to 0",
				"condominium_id", condominiumID,
				"year", year-1,
				"error", err,
			)
		}
		return 0
	}
	return prior.SaldoFinal
}

// cacheSummary upserts the computed balances on the (condominium, year)
// composite key. Failures are logged and never propagate; the caller
// already holds the computed result.
func (s *summaryService) cacheSummary(condominiumID uint, year int, saldoInicial, saldoFinal int64) {
	row := models.FinancialSummary{
		CondominiumID: condominiumID,
		Year:          year,
		SaldoInicial:  saldoInicial,
		SaldoFinal:    saldoFinal,
	}

	err := s.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "condominium_id"}, {Name: "year"}},
		DoUpdates: clause.AssignmentColumns([]string{"saldo_inicial", "saldo_final", "updated_at"}),
	}).Create(&row).Error
	if err != nil {
		logger.Get().Errorw("failed to cache financial summary",
			"condominium_id", condominiumID,
			"year", year,
			"error", err,
		)
	}
}
