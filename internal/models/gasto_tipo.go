package models

// GastoTipo is a recurring expense-side charge definition. It mirrors
// PaymentType: General means it applies to every concepto, otherwise
// GastoTipoConcepto assignments decide applicability.
type GastoTipo struct {
	Base
	CondominiumID uint   `gorm:"not null;index" json:"condominium_id"`
	Name          string `gorm:"not null" json:"name"`
	IsActive      bool   `gorm:"default:true" json:"is_active"`
	General       bool   `gorm:"not null" json:"general"`
	MonthlyAmount *int64 `gorm:"type:bigint" json:"monthly_amount,omitempty"`
}

// GastoTipoConcepto links a non-general gasto tipo to a concepto.
type GastoTipoConcepto struct {
	Base
	GastoTipoID uint `gorm:"not null;index:idx_gasto_tipo_concepto,unique" json:"gasto_tipo_id"`
	ConceptoID  uint `gorm:"not null;index:idx_gasto_tipo_concepto,unique" json:"concepto_id"`
}
