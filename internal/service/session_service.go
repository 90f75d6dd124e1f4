package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"ai-chat-workspace-be/internal/entity"
	"ai-chat-workspace-be/internal/pkg/logger"
	"ai-chat-workspace-be/pkg/events"
	"ai-chat-workspace-be/pkg/sessiontoken"

	"github.com/google/uuid"
)

var (
	ErrSessionMissing = errors.New("session missing")
	ErrSessionRevoked = errors.New("session revoked")
)

type RevocationStore interface {
	Revoke(ctx context.Context, sessionId string, ttl time.Duration) error
	IsRevoked(ctx context.Context, sessionId string) (bool, error)
}

// StateTeardown drops the UI state kept for a session.
type StateTeardown interface {
	Delete(sessionId string)
}

type ISessionService interface {
	// Lookup returns (nil, nil) for a missing, invalid, expired or revoked
	// token and an error only when revocation cannot be checked.
	Lookup(ctx context.Context, token string) (*entity.Session, error)
	// Authenticate is Lookup with ErrSessionMissing in place of a nil session.
	Authenticate(ctx context.Context, token string) (*entity.Session, error)
	Logout(ctx context.Context, session *entity.Session) error
}

type sessionService struct {
	codec       *sessiontoken.Codec
	revocations RevocationStore
	states      StateTeardown
	bus         IEventBus
	logger      logger.ILogger
}

func NewSessionService(codec *sessiontoken.Codec, revocations RevocationStore, states StateTeardown, bus IEventBus, log logger.ILogger) ISessionService {
	return &sessionService{
		codec:       codec,
		revocations: revocations,
		states:      states,
		bus:         bus,
		logger:      log,
	}
}

func (s *sessionService) Lookup(ctx context.Context, token string) (*entity.Session, error) {
	if token == "" {
		return nil, nil
	}

	claims, err := s.codec.Parse(token)
	if err != nil {
		s.logger.Debug("SessionService", "Rejected token", map[string]interface{}{"error": err.Error()})
		return nil, nil
	}

	revoked, err := s.revocations.IsRevoked(ctx, claims.ID)
	if err != nil {
		return nil, err
	}
	if revoked {
		return nil, nil
	}

	session := &entity.Session{
		Id:     claims.ID,
		UserId: uuid.MustParse(claims.UserId),
	}
	if claims.ExpiresAt != nil {
		session.ExpiresAt = claims.ExpiresAt.Time
	}
	if session.IsExpired(time.Now()) {
		return nil, nil
	}
	return session, nil
}

func (s *sessionService) Authenticate(ctx context.Context, token string) (*entity.Session, error) {
	session, err := s.Lookup(ctx, token)
	if err != nil {
		return nil, err
	}
	if session == nil {
		return nil, ErrSessionMissing
	}
	return session, nil
}

// Logout revokes the token for its remaining lifetime and tears down the UI
// state so nothing from this session survives sign-out.
func (s *sessionService) Logout(ctx context.Context, session *entity.Session) error {
	if session == nil {
		return ErrSessionMissing
	}

	ttl := time.Until(session.ExpiresAt)
	if session.ExpiresAt.IsZero() {
		ttl = 24 * time.Hour
	}
	if err := s.revocations.Revoke(ctx, session.Id, ttl); err != nil {
		return fmt.Errorf("logout: %w", err)
	}

	s.states.Delete(session.Id)

	if err := s.bus.Publish(ctx, events.New(events.SessionEnded, map[string]interface{}{
		"user_id":    session.UserId.String(),
		"session_id": session.Id,
	})); err != nil {
		s.logger.Warn("SessionService", "Failed to publish session end", map[string]interface{}{"error": err.Error()})
	}

	s.logger.Info("SessionService", "Session ended", map[string]interface{}{
		"user_id":    session.UserId,
		"session_id": session.Id,
	})
	return nil
}
