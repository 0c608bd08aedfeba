package repository

import "errors"

var (
	ErrNotFound     = errors.New("record not found")
	ErrSeatConflict = errors.New("seats already sold for this schedule")
)
