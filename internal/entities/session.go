package entities

import "time"

// Session is the server-side record behind the opaque token stored in the
// browser cookie. The token is the only thing the client ever sees.
type Session struct {
	Token     string
	AccountID int64
	Username  string
	Role      AccountRoleType
	CreatedAt time.Time
	ExpiresAt time.Time
}

func (s *Session) Expired(now time.Time) bool {
	return now.After(s.ExpiresAt)
}
