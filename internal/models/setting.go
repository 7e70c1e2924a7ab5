package models

// Setting is a per-user preference (for example the last selected year
// on the debt dashboard), persisted so it survives sessions.
type Setting struct {
	Base
	UserID uint   `gorm:"not null;uniqueIndex:idx_setting_user_key" json:"user_id"`
	Key    string `gorm:"not null;size:100;uniqueIndex:idx_setting_user_key" json:"key"`
	Value  string `json:"value"`
}
