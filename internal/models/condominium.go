package models

// Condominium is the top-level owner of residents, fee types, payments
// and expenses. Signer names are used only when rendering statements.
type Condominium struct {
	Base
	Name              string `gorm:"not null" json:"name"`
	Address           string `json:"address"`
	DefaultMonthlyFee int64  `gorm:"type:bigint;default:0" json:"default_monthly_fee"`
	UnitCount         int    `gorm:"default:0" json:"unit_count"`
	President         string `json:"president"`
	Treasurer         string `json:"treasurer"`
	Secretary         string `json:"secretary"`

	Residents []Resident `gorm:"foreignKey:CondominiumID" json:"residents,omitempty"`
}

// TableName pins the table gorm would otherwise pluralize to "condominia".
func (Condominium) TableName() string {
	return "condominiums"
}
