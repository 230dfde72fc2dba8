package domain

import "errors"

var (
	ErrItemNotFound = errors.New("item not found")
	ErrInvalidItem  = errors.New("invalid item")
	ErrInvalidRules = errors.New("invalid style rules")
)
