package account

import "time"

type AccountDB struct {
	ID           int64
	Username     string
	PasswordHash string
	Role         string
	Active       bool
	CreatedAt    time.Time
}

type AccountModifyDB struct {
	ID           *int64
	Username     *string
	PasswordHash *string
	Role         *string
	Active       *bool
}
