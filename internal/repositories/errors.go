package repositories

import "errors"

// ErrNotFound is returned when a requested record does not exist in the store.
var ErrNotFound = errors.New("record not found")

// ErrDuplicateEmail is returned when the store rejects a second row with the same email.
var ErrDuplicateEmail = errors.New("email already exists")
