package session

import (
	"expresso/internal/entities"
)

func ToDomain(s *SessionDB) *entities.Session {
	if s == nil {
		return nil
	}

	return &entities.Session{
		Token:     s.Token,
		AccountID: s.AccountID,
		Username:  s.Username,
		Role:      entities.AccountRoleType(s.Role),
		CreatedAt: s.CreatedAt,
		ExpiresAt: s.ExpiresAt,
	}
}
