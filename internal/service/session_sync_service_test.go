package service

import (
	"context"
	"testing"
	"time"

	"ai-chat-workspace-be/internal/pkg/logger"
	"ai-chat-workspace-be/internal/repository/memory"
	"ai-chat-workspace-be/pkg/events"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestSessionSync_DropsEndedSessions(t *testing.T) {
	states := memory.NewStateRepository(time.Minute)
	kept := states.GetOrCreate("keep", uuid.New())
	ended := states.GetOrCreate("end", uuid.New())
	ended.BeginSwitch(uuid.New())

	svc := NewSessionSyncService(states, logger.NewNopLogger())

	tests := []struct {
		name  string
		event events.Event
	}{
		{"other type", events.New(events.WorkspaceHydrated, map[string]interface{}{"session_id": "keep"})},
		{"missing id", events.New(events.SessionEnded, nil)},
		{"ended", events.New(events.SessionEnded, map[string]interface{}{"session_id": "end"})},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.NoError(t, svc.HandleEvent(context.Background(), tt.event))
		})
	}

	_, ok := states.Get("end")
	assert.False(t, ok)
	assert.False(t, ended.Snapshot().Loading)

	got, ok := states.Get("keep")
	assert.True(t, ok)
	assert.Same(t, kept, got)
}
