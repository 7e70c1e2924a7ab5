package models

// Concepto is an expense category within a condominium (the expense-side
// counterpart of a resident for assignment purposes).
type Concepto struct {
	Base
	CondominiumID uint   `gorm:"not null;index" json:"condominium_id"`
	Name          string `gorm:"not null" json:"name"`
	Description   string `json:"description"`
}
