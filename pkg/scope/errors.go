package scope

import "errors"

var (
	ErrEmptyToken   = errors.New("token is empty")
	ErrInvalidToken = errors.New("token is invalid")
)
