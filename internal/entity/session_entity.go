package entity

import (
	"time"

	"github.com/google/uuid"
)

// Session is what the identity provider's access token tells us about the caller.
type Session struct {
	Id        string // token id (jti); keys the per-client UI state
	UserId    uuid.UUID
	ExpiresAt time.Time
}

func (s *Session) IsExpired(now time.Time) bool {
	return s == nil || (!s.ExpiresAt.IsZero() && now.After(s.ExpiresAt))
}
