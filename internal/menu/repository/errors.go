package repository

import "errors"

var (
	ErrFailedToList  = errors.New("failed to list records")
	ErrInvalidOption = errors.New("invalid repository option")
)
