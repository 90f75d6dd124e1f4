package service

import (
	"context"

	"ai-chat-workspace-be/internal/pkg/logger"
	"ai-chat-workspace-be/pkg/events"
)

// ISessionSyncService applies sign-outs that happened on other instances to
// the state this instance holds.
type ISessionSyncService interface {
	HandleEvent(ctx context.Context, event events.Event) error
}

type sessionSyncService struct {
	states StateTeardown
	logger logger.ILogger
}

func NewSessionSyncService(states StateTeardown, log logger.ILogger) ISessionSyncService {
	return &sessionSyncService{states: states, logger: log}
}

// HandleEvent never fails: an event it cannot use is dropped, not retried.
func (s *sessionSyncService) HandleEvent(ctx context.Context, event events.Event) error {
	if event.EventType() != events.SessionEnded {
		return nil
	}

	sessionId, _ := event.Payload()["session_id"].(string)
	if sessionId == "" {
		s.logger.Warn("SessionSync", "Session end without session id", nil)
		return nil
	}

	s.states.Delete(sessionId)
	s.logger.Debug("SessionSync", "Dropped state for ended session", map[string]interface{}{"session_id": sessionId})
	return nil
}
