package service

import (
	"context"
	"errors"

	"ai-chat-workspace-be/internal/dto"
	"ai-chat-workspace-be/internal/entity"
	"ai-chat-workspace-be/internal/pkg/logger"
	"ai-chat-workspace-be/pkg/chatsettings"
	"ai-chat-workspace-be/pkg/store"

	"github.com/google/uuid"
)

var (
	ErrNoWorkspaceMounted = errors.New("no workspace mounted")
	ErrChatNotInWorkspace = errors.New("chat does not belong to the mounted workspace")
)

// StateStore holds one WorkspaceState per session.
type StateStore interface {
	GetOrCreate(sessionId string, userId uuid.UUID) *store.WorkspaceState
	Get(sessionId string) (*store.WorkspaceState, bool)
}

type IWorkspaceStateService interface {
	// Mount clears the session state and starts hydration. A workspace the
	// user does not own is mounted empty with default settings.
	Mount(ctx context.Context, session *entity.Session, workspaceId uuid.UUID, overrides chatsettings.Overrides) (*dto.MountWorkspaceResponse, error)
	GetState(ctx context.Context, session *entity.Session) (*dto.WorkspaceStateResponse, error)
	UpdateView(ctx context.Context, session *entity.Session, req *dto.UpdateChatViewRequest) (*dto.ChatViewResponse, error)
	ListWorkspaces(ctx context.Context, session *entity.Session) ([]dto.WorkspaceSummaryResponse, error)
}

type workspaceStateService struct {
	states     StateStore
	workspaces IWorkspaceService
	hydration  IHydrationService
	logger     logger.ILogger
}

func NewWorkspaceStateService(states StateStore, workspaces IWorkspaceService, hydration IHydrationService, log logger.ILogger) IWorkspaceStateService {
	return &workspaceStateService{
		states:     states,
		workspaces: workspaces,
		hydration:  hydration,
		logger:     log,
	}
}

func (s *workspaceStateService) Mount(ctx context.Context, session *entity.Session, workspaceId uuid.UUID, overrides chatsettings.Overrides) (*dto.MountWorkspaceResponse, error) {
	state := s.states.GetOrCreate(session.Id, session.UserId)

	if _, err := s.workspaces.GetOwned(ctx, session.UserId, workspaceId); err != nil {
		s.logger.Warn("WorkspaceStateService", "Workspace absent, mounting with defaults", map[string]interface{}{
			"user_id":      session.UserId,
			"workspace_id": workspaceId,
			"error":        err.Error(),
		})
		generation := mountAbsent(state, workspaceId, overrides)
		return &dto.MountWorkspaceResponse{
			WorkspaceId: workspaceId,
			Generation:  generation,
			Loading:     false,
		}, nil
	}

	generation, _ := s.hydration.Mount(ctx, state, workspaceId, overrides)

	s.logger.Info("WorkspaceStateService", "Workspace mount started", map[string]interface{}{
		"user_id":      session.UserId,
		"workspace_id": workspaceId,
		"generation":   generation,
	})

	return &dto.MountWorkspaceResponse{
		WorkspaceId: workspaceId,
		Generation:  generation,
		Loading:     true,
	}, nil
}

// mountAbsent switches to a workspace that is missing or not owned: the
// previous workspace's data is cleared and only default settings are
// published. Nothing is read from the foreign workspace.
func mountAbsent(state *store.WorkspaceState, workspaceId uuid.UUID, overrides chatsettings.Overrides) uint64 {
	generation := state.BeginSwitch(workspaceId)
	state.Commit(generation, store.Hydration{
		ChatSettings: chatsettings.Merge(nil, overrides, chatsettings.Defaults()),
	})
	return generation
}

func (s *workspaceStateService) GetState(ctx context.Context, session *entity.Session) (*dto.WorkspaceStateResponse, error) {
	state := s.states.GetOrCreate(session.Id, session.UserId)
	return toStateResponse(state.Snapshot()), nil
}

func (s *workspaceStateService) UpdateView(ctx context.Context, session *entity.Session, req *dto.UpdateChatViewRequest) (*dto.ChatViewResponse, error) {
	state, ok := s.states.Get(session.Id)
	if !ok || state.Snapshot().WorkspaceId == uuid.Nil {
		return nil, ErrNoWorkspaceMounted
	}

	var selected *uuid.UUID
	if req.SelectedChatId != nil {
		id, err := uuid.Parse(*req.SelectedChatId)
		if err != nil {
			return nil, ErrChatNotInWorkspace
		}
		selected = &id
	}

	var view store.ChatView
	err := state.UpdateView(func(v *store.ChatView, data *store.Hydration) error {
		if selected != nil {
			chat := findChat(data.Chats, *selected)
			if chat == nil {
				return ErrChatNotInWorkspace
			}
			if v.SelectedChat == nil || v.SelectedChat.Id != chat.Id {
				v.ChatMessages = []store.ChatMessage{}
				v.ChatFiles = []store.ChatAttachment{}
				v.ChatImages = []store.ChatAttachment{}
			}
			v.SelectedChat = chat
		} else if req.ClearSelectedChat {
			v.SelectedChat = nil
			v.ChatMessages = []store.ChatMessage{}
			v.ChatFiles = []store.ChatAttachment{}
			v.ChatImages = []store.ChatAttachment{}
		}
		applyViewFields(v, req)
		view = copyView(*v)
		return nil
	})
	if err != nil {
		return nil, err
	}

	resp := toChatViewResponse(view)
	return &resp, nil
}

func (s *workspaceStateService) ListWorkspaces(ctx context.Context, session *entity.Session) ([]dto.WorkspaceSummaryResponse, error) {
	workspaces, err := s.workspaces.List(ctx, session.UserId)
	if err != nil {
		return nil, err
	}

	res := make([]dto.WorkspaceSummaryResponse, 0, len(workspaces))
	for _, ws := range workspaces {
		res = append(res, dto.WorkspaceSummaryResponse{Id: ws.Id, Name: ws.Name, IsHome: ws.IsHome})
	}
	return res, nil
}

func findChat(chats []*entity.Chat, id uuid.UUID) *entity.Chat {
	for _, c := range chats {
		if c.Id == id {
			return c
		}
	}
	return nil
}

func applyViewFields(v *store.ChatView, req *dto.UpdateChatViewRequest) {
	if req.UserInput != nil {
		v.UserInput = *req.UserInput
	}
	if req.ChatMessages != nil {
		msgs := make([]store.ChatMessage, 0, len(*req.ChatMessages))
		for _, m := range *req.ChatMessages {
			msgs = append(msgs, store.ChatMessage{Id: m.Id, Role: m.Role, Content: m.Content})
		}
		v.ChatMessages = msgs
	}
	if req.IsGenerating != nil {
		v.IsGenerating = *req.IsGenerating
	}
	if req.FirstTokenReceived != nil {
		v.FirstTokenReceived = *req.FirstTokenReceived
	}
	if req.NewMessageFiles != nil {
		v.NewMessageFiles = toAttachments(*req.NewMessageFiles)
	}
	if req.NewMessageImages != nil {
		v.NewMessageImages = toAttachments(*req.NewMessageImages)
	}
	if req.ShowFilesDisplay != nil {
		v.ShowFilesDisplay = *req.ShowFilesDisplay
	}
}

func toAttachments(in []dto.ChatAttachmentDto) []store.ChatAttachment {
	out := make([]store.ChatAttachment, 0, len(in))
	for _, a := range in {
		out = append(out, store.ChatAttachment{Id: a.Id, Name: a.Name, Type: a.Type, Url: a.Url})
	}
	return out
}

// copyView detaches the returned view from the slices the state keeps.
func copyView(v store.ChatView) store.ChatView {
	v.ChatMessages = append([]store.ChatMessage{}, v.ChatMessages...)
	v.ChatFiles = append([]store.ChatAttachment{}, v.ChatFiles...)
	v.ChatImages = append([]store.ChatAttachment{}, v.ChatImages...)
	v.NewMessageFiles = append([]store.ChatAttachment{}, v.NewMessageFiles...)
	v.NewMessageImages = append([]store.ChatAttachment{}, v.NewMessageImages...)
	return v
}
