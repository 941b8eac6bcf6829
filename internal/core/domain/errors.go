package domain

import "errors"

var (
	ErrUserNotFound     = errors.New("user not found")
	ErrInvalidPin       = errors.New("invalid pin")
	ErrTaskNotFound     = errors.New("task not found")
	ErrTaskAccessDenied = errors.New("task does not belong to user")
	ErrNothingToUpdate  = errors.New("nothing to update")
)
