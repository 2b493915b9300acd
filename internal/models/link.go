package models

import (
	"time"

	"gorm.io/gorm"
)

// Ограничения на значения полей ссылки.
const (
	SlugMinLength   = 6
	SlugMaxLength   = 8
	URLMaxLength    = 2048
	TitleMaxLength  = 255
	SlugAlphabet    = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
	SlugPatternExpr = `^[a-zA-Z0-9]{6,8}$`
)

// Link структура модели хранения сокращенной ссылки.
//
// DeletedAt используется как признак мягкого удаления: такие записи скрыты из обычных выборок,
// но их slug по-прежнему занят до окончательного удаления.
type Link struct {
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	DeletedAt   gorm.DeletedAt `json:"deleted_at"   gorm:"index"`
	Title       *string        `json:"title"        gorm:"size:255"`
	OriginalURL string         `json:"original_url" gorm:"type:text;not null"`
	Slug        string         `json:"slug"         gorm:"size:8;not null;uniqueIndex:idx_links_slug"`
	ID          uint           `json:"id"           gorm:"primaryKey"`
	UserID      uint           `json:"user_id"      gorm:"not null;index"`
	AccessCount uint           `json:"access_count" gorm:"not null;default:0"`
}

// IsTrashed сообщает, помечена ли ссылка как удаленная.
func (l *Link) IsTrashed() bool {
	return l.DeletedAt.Valid
}
