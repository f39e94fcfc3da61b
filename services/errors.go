package services

import "errors"

var (
	ErrNoActiveSession      = errors.New("no active session for table")
	ErrSessionAlreadyActive = errors.New("active session already exists for table")
	ErrItemNotFound         = errors.New("item not found")
	ErrOrderNotFound        = errors.New("order not found")
	ErrInvalidCustomers     = errors.New("customers must be at least 1")
	ErrInvalidAmount        = errors.New("amount must be at least 1")
)
