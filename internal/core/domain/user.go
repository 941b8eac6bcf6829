package domain

import "time"

type User struct {
	ID        int64
	Pin       *string
	CreatedAt time.Time
}

func (u User) HasPin() bool {
	return u.Pin != nil && *u.Pin != ""
}
