package models

import "time"

// TableSession is one continuous occupancy of a physical table.
type TableSession struct {
	ID           uint       `gorm:"primaryKey" json:"id"`
	TableNr      uint8      `gorm:"not null;index" json:"table_nr"`
	Customers    uint8      `gorm:"not null" json:"customers"`
	SessionStart time.Time  `gorm:"not null" json:"session_start"`
	SessionEnd   *time.Time `json:"session_end"`
	Active       bool       `gorm:"not null;index" json:"active"`

	// ActiveTableNr equals TableNr while the session is active and is NULL
	// afterwards. The unique index keeps one active session per table.
	ActiveTableNr *uint8 `gorm:"uniqueIndex:idx_table_sessions_active_table" json:"-"`
}
