package store

import "errors"

var (
	ErrNotFound      = errors.New("record not found")
	ErrStorageFailed = errors.New("storage operation failed")
)
