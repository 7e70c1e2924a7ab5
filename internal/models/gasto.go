package models

import "time"

// Gasto is an expense row: one month of one gasto tipo charged against
// an expense concepto.
type Gasto struct {
	Base
	CondominiumID uint          `gorm:"not null;index" json:"condominium_id"`
	ConceptoID    uint          `gorm:"not null;index" json:"concepto_id"`
	GastoTipoID   uint          `gorm:"not null;index" json:"gasto_tipo_id"`
	Amount        int64         `gorm:"type:bigint;not null" json:"amount"`
	Month         Month         `gorm:"size:3;not null" json:"month"`
	Year          int           `gorm:"not null;index" json:"year"`
	Status        PaymentStatus `gorm:"not null;default:pending" json:"status"`
	PaymentDate   time.Time     `json:"payment_date"`

	Concepto  Concepto  `gorm:"foreignKey:ConceptoID" json:"concepto,omitempty"`
	GastoTipo GastoTipo `gorm:"foreignKey:GastoTipoID" json:"gasto_tipo,omitempty"`
}
