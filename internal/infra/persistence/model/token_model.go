// Package model holds the GORM table mappings.
package model

import (
	"time"
)

// SessionTokenModel mirrors the 'session_tokens' table. One row per client session.
type SessionTokenModel struct {
	Key       string     `gorm:"column:storage_key;type:varchar(255);primaryKey"`
	Token     string     `gorm:"type:text;not null"`
	ExpiresAt *time.Time `gorm:"index"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (SessionTokenModel) TableName() string {
	return "session_tokens"
}
