package models

// FinancialSummary is the persisted cache of a yearly rollup. It exists
// so next year's computation can read this year's ending balance without
// replaying history. A missing row is not an error; callers default the
// starting balance to zero.
type FinancialSummary struct {
	Base
	CondominiumID uint  `gorm:"not null;uniqueIndex:idx_summary_condo_year" json:"condominium_id"`
	Year          int   `gorm:"not null;uniqueIndex:idx_summary_condo_year" json:"year"`
	SaldoInicial  int64 `gorm:"type:bigint;default:0" json:"saldo_inicial"`
	SaldoFinal    int64 `gorm:"type:bigint;default:0" json:"saldo_final"`
}
