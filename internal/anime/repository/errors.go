package repository

import "errors"

var (
	ErrFailedToInsert = errors.New("failed to insert record")
	ErrFailedToGet    = errors.New("failed to get record")
	ErrFailedToList   = errors.New("failed to list records")
	ErrFailedToSave   = errors.New("failed to save record")
	ErrFailedToDelete = errors.New("failed to delete record")
)
