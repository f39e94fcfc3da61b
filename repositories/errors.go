// Package repositories holds the gorm-backed stores for the catalog,
// table sessions and orders.
package repositories

import "errors"

// ErrActiveSessionExists is returned by TableSessionRepository.Create when
// the table already has an active session. The storage layer enforces this
// with a unique index, so it also fires for concurrent creators.
var ErrActiveSessionExists = errors.New("active session already exists for table")

// ErrSessionNotActive is returned by order writes whose table session is no
// longer active when the write transaction runs.
var ErrSessionNotActive = errors.New("table session is not active")
