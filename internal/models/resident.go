package models

// Resident represents a unit owner or tenant in a condominium.
// Deleting a resident with existing payments is not cascaded; the
// active flag is the supported way to retire one.
type Resident struct {
	Base
	CondominiumID uint   `gorm:"not null;index" json:"condominium_id"`
	Name          string `gorm:"not null" json:"name"`
	Unit          string `gorm:"not null" json:"unit"`
	IsActive      bool   `gorm:"default:true" json:"is_active"`
	Email         string `json:"email"`
	Phone         string `json:"phone"`

	Condominium Condominium `gorm:"foreignKey:CondominiumID" json:"condominium,omitempty"`
}
