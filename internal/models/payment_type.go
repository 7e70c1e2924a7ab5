package models

// PaymentType is a recurring income-side charge definition. When General
// is true it applies to every active resident of the condominium;
// otherwise applicability comes from ResidentPaymentType assignments.
// MonthlyAmount is in minor currency units; nil means the type carries
// no amount and contributes zero to arrears.
type PaymentType struct {
	Base
	CondominiumID uint   `gorm:"not null;index" json:"condominium_id"`
	Name          string `gorm:"not null" json:"name"`
	IsActive      bool   `gorm:"default:true" json:"is_active"`
	General       bool   `gorm:"not null" json:"general"`
	MonthlyAmount *int64 `gorm:"type:bigint" json:"monthly_amount,omitempty"`
}

// ResidentPaymentType links a non-general payment type to a resident.
type ResidentPaymentType struct {
	Base
	ResidentID    uint `gorm:"not null;index:idx_resident_payment_type,unique" json:"resident_id"`
	PaymentTypeID uint `gorm:"not null;index:idx_resident_payment_type,unique" json:"payment_type_id"`
}
