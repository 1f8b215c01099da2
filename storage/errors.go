package storage

import (
	"errors"
)

var (
	// Note: there is another not found error: badger.ErrKeyNotFound. The
	// difference is that badger.ErrKeyNotFound is returned by the badger
	// API, while modules in storage/badger return storage.ErrNotFound.
	ErrNotFound = errors.New("key not found")

	ErrAlreadyExists = errors.New("key already exists")
)
