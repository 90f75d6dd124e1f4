package controller

import (
	"context"
	"encoding/json"
	"errors"
	"net/http/httptest"
	"strings"
	"testing"

	"ai-chat-workspace-be/internal/dto"
	"ai-chat-workspace-be/internal/entity"
	"ai-chat-workspace-be/internal/pkg/logger"
	"ai-chat-workspace-be/internal/pkg/serverutils"
	"ai-chat-workspace-be/internal/service"
	"ai-chat-workspace-be/pkg/chatsettings"
	"ai-chat-workspace-be/pkg/store"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubAuth struct {
	session *entity.Session
}

func (a *stubAuth) Authenticate(ctx context.Context, token string) (*entity.Session, error) {
	if token != "good" {
		return nil, service.ErrSessionMissing
	}
	return a.session, nil
}

type stubStateService struct {
	mountErr    error
	updateErr   error
	mountedId   uuid.UUID
	mountedWith chatsettings.Overrides
}

func (s *stubStateService) Mount(ctx context.Context, session *entity.Session, workspaceId uuid.UUID, overrides chatsettings.Overrides) (*dto.MountWorkspaceResponse, error) {
	if s.mountErr != nil {
		return nil, s.mountErr
	}
	s.mountedId, s.mountedWith = workspaceId, overrides
	return &dto.MountWorkspaceResponse{WorkspaceId: workspaceId, Generation: 3, Loading: true}, nil
}

func (s *stubStateService) GetState(ctx context.Context, session *entity.Session) (*dto.WorkspaceStateResponse, error) {
	return &dto.WorkspaceStateResponse{WorkspaceId: s.mountedId, Loading: true}, nil
}

func (s *stubStateService) UpdateView(ctx context.Context, session *entity.Session, req *dto.UpdateChatViewRequest) (*dto.ChatViewResponse, error) {
	if s.updateErr != nil {
		return nil, s.updateErr
	}
	return &dto.ChatViewResponse{UserInput: *req.UserInput}, nil
}

func (s *stubStateService) ListWorkspaces(ctx context.Context, session *entity.Session) ([]dto.WorkspaceSummaryResponse, error) {
	return []dto.WorkspaceSummaryResponse{}, nil
}

func newWorkspaceApp(svc *stubStateService) *fiber.App {
	app := fiber.New()
	app.Use(serverutils.ErrorHandlerMiddleware(logger.NewNopLogger()))
	auth := &stubAuth{session: &entity.Session{Id: "s1", UserId: uuid.New()}}
	NewWorkspaceController(svc, auth, "session_token").RegisterRoutes(app.Group("/api"))
	return app
}

func TestWorkspaceController_Mount(t *testing.T) {
	workspaceId := uuid.New()

	tests := []struct {
		name       string
		path       string
		token      string
		mountErr   error
		wantStatus int
	}{
		{"accepted", "/api/workspace/v1/" + workspaceId.String() + "/mount?model=gpt-4o", "good", nil, 202},
		{"no session", "/api/workspace/v1/" + workspaceId.String() + "/mount", "", nil, 401},
		{"bad id", "/api/workspace/v1/not-a-uuid/mount", "good", nil, 400},
		{"model too long", "/api/workspace/v1/" + workspaceId.String() + "/mount?model=" + strings.Repeat("m", 201), "good", nil, 400},
		{"unexpected", "/api/workspace/v1/" + workspaceId.String() + "/mount", "good", errors.New("boom"), 500},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &stubStateService{mountErr: tt.mountErr}
			req := httptest.NewRequest("POST", tt.path, nil)
			if tt.token != "" {
				req.Header.Set("Authorization", "Bearer "+tt.token)
			}

			resp, err := newWorkspaceApp(svc).Test(req)
			require.NoError(t, err)
			assert.Equal(t, tt.wantStatus, resp.StatusCode)

			if tt.wantStatus == 202 {
				var body serverutils.Response[dto.MountWorkspaceResponse]
				require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
				assert.True(t, body.Data.Loading)
				assert.Equal(t, uint64(3), body.Data.Generation)
				assert.Equal(t, workspaceId, svc.mountedId)
				assert.Equal(t, "gpt-4o", svc.mountedWith.Model)
			}
		})
	}
}

func TestWorkspaceController_UpdateView(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		updateErr  error
		wantStatus int
	}{
		{"ok", `{"user_input":"hello"}`, nil, 200},
		{"loading", `{"user_input":"hello"}`, store.ErrHydrationInFlight, 409},
		{"nothing mounted", `{"user_input":"hello"}`, service.ErrNoWorkspaceMounted, 409},
		{"foreign chat", `{"user_input":"hello"}`, service.ErrChatNotInWorkspace, 400},
		{"invalid chat id", `{"selected_chat_id":"x"}`, nil, 400},
		{"malformed", `{`, nil, 400},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app := newWorkspaceApp(&stubStateService{updateErr: tt.updateErr})
			req := httptest.NewRequest("PATCH", "/api/workspace/v1/state/view", strings.NewReader(tt.body))
			req.Header.Set("Content-Type", "application/json")
			req.Header.Set("Authorization", "Bearer good")

			resp, err := app.Test(req)
			require.NoError(t, err)
			assert.Equal(t, tt.wantStatus, resp.StatusCode)
		})
	}
}

func TestWorkspaceController_GetState(t *testing.T) {
	app := newWorkspaceApp(&stubStateService{})
	req := httptest.NewRequest("GET", "/api/workspace/v1/state?token=good", nil)

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)

	var body serverutils.Response[dto.WorkspaceStateResponse]
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.True(t, body.Success)
	assert.True(t, body.Data.Loading)
}
