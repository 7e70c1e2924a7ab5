package models

import "time"

// PaymentStatus represents the settlement state of a payment or expense.
// Only paid rows count toward ledger computations; there is no
// partial-payment state.
type PaymentStatus string

const (
	StatusPaid    PaymentStatus = "paid"
	StatusPending PaymentStatus = "pending"
)

// Payment is an income row: a resident settling one month of one
// payment type. A resident owes a (payment type, month) combination
// unless a paid row exists for that exact tuple.
type Payment struct {
	Base
	CondominiumID uint          `gorm:"not null;index" json:"condominium_id"`
	ResidentID    uint          `gorm:"not null;index" json:"resident_id"`
	PaymentTypeID uint          `gorm:"not null;index" json:"payment_type_id"`
	Amount        int64         `gorm:"type:bigint;not null" json:"amount"`
	Month         Month         `gorm:"size:3;not null" json:"month"`
	Year          int           `gorm:"not null;index" json:"year"`
	Status        PaymentStatus `gorm:"not null;default:pending" json:"status"`
	PaymentDate   time.Time     `json:"payment_date"`
	Receipt       string        `gorm:"size:36" json:"receipt"`

	Resident    Resident    `gorm:"foreignKey:ResidentID" json:"resident,omitempty"`
	PaymentType PaymentType `gorm:"foreignKey:PaymentTypeID" json:"payment_type,omitempty"`
}
