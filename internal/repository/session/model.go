package session

import "time"

type SessionDB struct {
	Token     string
	AccountID int64
	Username  string
	Role      string
	CreatedAt time.Time
	ExpiresAt time.Time
}
