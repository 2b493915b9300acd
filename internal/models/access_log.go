package models

import "time"

// AccessLog запись о переходе по короткой ссылке. Записи не изменяются после создания
// и удаляются только вместе со ссылкой.
type AccessLog struct {
	AccessedAt time.Time `json:"accessed_at" gorm:"not null;index"`
	UserAgent  *string   `json:"user_agent"  gorm:"type:text"`
	IPAddress  string    `json:"ip_address"  gorm:"size:45;not null"`
	ID         uint      `json:"id"          gorm:"primaryKey"`
	LinkID     uint      `json:"link_id"     gorm:"not null;index"`
}
