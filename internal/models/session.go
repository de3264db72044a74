// Package models defines the database models for the resolution monitor.
package models

import "time"

// SessionEntry is one key of a client session cache.
type SessionEntry struct {
	ID        uint   `gorm:"primaryKey"`
	SessionID string `gorm:"size:64;index:ux_session_key,unique"`
	Key       string `gorm:"size:128;index:ux_session_key,unique"`
	Value     string `gorm:"size:256"`
	CreatedAt time.Time
	UpdatedAt time.Time
}
