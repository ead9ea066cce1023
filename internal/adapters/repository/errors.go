package repository

import "errors"

// Sentinel kinds for catalog errors.
var (
	ErrNotFound    = errors.New("practice not found")
	ErrEmptyID     = errors.New("practice id is empty")
	ErrDuplicateID = errors.New("duplicate practice id")
	ErrLoad        = errors.New("load practices failed")
)
