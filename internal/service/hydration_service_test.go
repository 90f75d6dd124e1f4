package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"ai-chat-workspace-be/internal/constant"
	"ai-chat-workspace-be/internal/entity"
	"ai-chat-workspace-be/internal/pkg/logger"
	"ai-chat-workspace-be/internal/repository/specification"
	"ai-chat-workspace-be/pkg/chatsettings"
	"ai-chat-workspace-be/pkg/events"
	"ai-chat-workspace-be/pkg/store"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestHydration(uow *fakeUoW, resolver *fakeResolver, bus *recordingBus) IHydrationService {
	return NewHydrationService(&fakeFactory{uow: uow}, resolver, bus, logger.NewNopLogger(), HydrationOptions{
		Timeout:           5 * time.Second,
		AvatarConcurrency: 2,
	})
}

func waitDone(t *testing.T, done <-chan struct{}) {
	t.Helper()
	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("hydration did not finish")
	}
}

func populatedUoW(workspaceId uuid.UUID) *fakeUoW {
	uow := newFakeUoW()
	temp := 0.9
	uow.workspaces.FindOneFunc = func(ctx context.Context, specs ...specification.Specification) (*entity.Workspace, error) {
		return &entity.Workspace{Id: workspaceId, Name: "Research", DefaultTemperature: &temp}, nil
	}
	uow.chats.FindByWorkspaceFunc = func(ctx context.Context, id uuid.UUID) ([]*entity.Chat, error) {
		return []*entity.Chat{{Id: uuid.New(), WorkspaceId: id}}, nil
	}
	uow.folders.FindByWorkspaceFunc = func(ctx context.Context, id uuid.UUID) ([]*entity.Folder, error) {
		return []*entity.Folder{{Id: uuid.New(), WorkspaceId: id}}, nil
	}
	uow.files.FindByWorkspaceFunc = func(ctx context.Context, id uuid.UUID) ([]*entity.File, error) {
		return []*entity.File{{Id: uuid.New()}}, nil
	}
	uow.prompts.FindByWorkspaceFunc = func(ctx context.Context, id uuid.UUID) ([]*entity.Prompt, error) {
		return []*entity.Prompt{{Id: uuid.New()}}, nil
	}
	uow.presets.FindByWorkspaceFunc = func(ctx context.Context, id uuid.UUID) ([]*entity.Preset, error) {
		return []*entity.Preset{{Id: uuid.New()}}, nil
	}
	uow.tools.FindByWorkspaceFunc = func(ctx context.Context, id uuid.UUID) ([]*entity.Tool, error) {
		return []*entity.Tool{{Id: uuid.New()}}, nil
	}
	uow.models.FindByWorkspaceFunc = func(ctx context.Context, id uuid.UUID) ([]*entity.Model, error) {
		return []*entity.Model{{Id: uuid.New()}}, nil
	}
	uow.collections.FindByWorkspaceFunc = func(ctx context.Context, id uuid.UUID) ([]*entity.Collection, error) {
		return []*entity.Collection{{Id: uuid.New()}}, nil
	}
	return uow
}

func TestHydrate_PopulatesEveryCollection(t *testing.T) {
	workspaceId := uuid.New()
	uow := populatedUoW(workspaceId)
	bus := &recordingBus{}
	svc := newTestHydration(uow, &fakeResolver{}, bus)
	state := store.NewWorkspaceState("sess", uuid.New())

	gen, done := svc.Mount(context.Background(), state, workspaceId, chatsettings.Overrides{Model: "claude-3"})
	waitDone(t, done)

	snap := state.Snapshot()
	assert.Equal(t, gen, snap.Generation)
	assert.False(t, snap.Loading)
	require.NotNil(t, snap.Workspace)
	assert.Len(t, snap.Chats, 1)
	assert.Len(t, snap.Folders, 1)
	assert.Len(t, snap.Files, 1)
	assert.Len(t, snap.Prompts, 1)
	assert.Len(t, snap.Presets, 1)
	assert.Len(t, snap.Tools, 1)
	assert.Len(t, snap.Models, 1)
	assert.Len(t, snap.Collections, 1)
	assert.Empty(t, snap.Assistants)
	assert.Equal(t, "claude-3", snap.ChatSettings.Model)
	assert.Equal(t, 0.9, snap.ChatSettings.Temperature)
	assert.Equal(t, constant.DefaultChatContextLength, snap.ChatSettings.ContextLength)
	assert.Equal(t, []string{events.WorkspaceHydrated}, bus.types())
}

func TestHydrate_FilesFailureIsIsolated(t *testing.T) {
	workspaceId := uuid.New()
	uow := populatedUoW(workspaceId)
	uow.files.FindByWorkspaceFunc = func(ctx context.Context, id uuid.UUID) ([]*entity.File, error) {
		return nil, errors.New("permission denied for table files")
	}
	svc := newTestHydration(uow, &fakeResolver{}, &recordingBus{})
	state := store.NewWorkspaceState("sess", uuid.New())

	_, done := svc.Mount(context.Background(), state, workspaceId, chatsettings.Overrides{})
	waitDone(t, done)

	snap := state.Snapshot()
	assert.False(t, snap.Loading)
	require.NotNil(t, snap.Files)
	assert.Empty(t, snap.Files)
	assert.Len(t, snap.Chats, 1)
	assert.Len(t, snap.Prompts, 1)
	assert.Len(t, snap.Collections, 1)
}

func TestHydrate_NilResultsBecomeEmpty(t *testing.T) {
	svc := newTestHydration(newFakeUoW(), &fakeResolver{}, &recordingBus{})
	state := store.NewWorkspaceState("sess", uuid.New())

	_, done := svc.Mount(context.Background(), state, uuid.New(), chatsettings.Overrides{})
	waitDone(t, done)

	snap := state.Snapshot()
	assert.Nil(t, snap.Workspace)
	assert.NotNil(t, snap.Chats)
	assert.NotNil(t, snap.Tools)
	assert.NotNil(t, snap.AssistantImages)
	assert.Equal(t, chatsettings.Defaults(), snap.ChatSettings)
}

func TestHydrate_WorkspaceLookupErrorUsesDefaults(t *testing.T) {
	uow := newFakeUoW()
	uow.workspaces.FindOneFunc = func(ctx context.Context, specs ...specification.Specification) (*entity.Workspace, error) {
		return nil, errors.New("timeout")
	}
	svc := newTestHydration(uow, &fakeResolver{}, &recordingBus{})
	state := store.NewWorkspaceState("sess", uuid.New())

	_, done := svc.Mount(context.Background(), state, uuid.New(), chatsettings.Overrides{})
	waitDone(t, done)

	snap := state.Snapshot()
	assert.False(t, snap.Loading)
	assert.Nil(t, snap.Workspace)
	assert.Equal(t, chatsettings.Defaults(), snap.ChatSettings)
}

func TestHydrate_Avatars(t *testing.T) {
	workspaceId := uuid.New()
	withImage := &entity.Assistant{Id: uuid.New(), ImagePath: "u/a.png"}
	broken := &entity.Assistant{Id: uuid.New(), ImagePath: "u/missing.png"}
	noImage := &entity.Assistant{Id: uuid.New()}

	uow := newFakeUoW()
	uow.assistants.FindWorkspaceLinksFunc = func(ctx context.Context, id uuid.UUID) ([]*entity.AssistantWorkspace, error) {
		return []*entity.AssistantWorkspace{
			{AssistantId: withImage.Id, WorkspaceId: id},
			{AssistantId: broken.Id, WorkspaceId: id},
			{AssistantId: noImage.Id, WorkspaceId: id},
			{AssistantId: noImage.Id, WorkspaceId: id},
		}, nil
	}
	uow.assistants.FindAllFunc = func(ctx context.Context, specs ...specification.Specification) ([]*entity.Assistant, error) {
		if assert.Len(t, specs, 1) {
			byIds, ok := specs[0].(specification.ByIDs)
			if assert.True(t, ok) {
				assert.Len(t, byIds.IDs, 3)
			}
		}
		return []*entity.Assistant{withImage, broken, noImage}, nil
	}

	resolver := &fakeResolver{ResolveFunc: func(ctx context.Context, path string) string {
		if path == "u/a.png" {
			return "data:image/png;base64,AAAA"
		}
		return ""
	}}

	svc := newTestHydration(uow, resolver, &recordingBus{})
	state := store.NewWorkspaceState("sess", uuid.New())

	_, done := svc.Mount(context.Background(), state, workspaceId, chatsettings.Overrides{})
	waitDone(t, done)

	snap := state.Snapshot()
	assert.False(t, snap.Loading, "an unresolvable avatar must not block readiness")
	assert.Len(t, snap.Assistants, 3)
	assert.Equal(t, map[uuid.UUID]string{
		withImage.Id: "data:image/png;base64,AAAA",
		broken.Id:    "",
		noImage.Id:   "",
	}, snap.AssistantImages)
}

func TestHydrate_NoAssistantLinksSkipsSecondQuery(t *testing.T) {
	uow := newFakeUoW()
	uow.assistants.FindWorkspaceLinksFunc = func(ctx context.Context, id uuid.UUID) ([]*entity.AssistantWorkspace, error) {
		return []*entity.AssistantWorkspace{}, nil
	}
	svc := newTestHydration(uow, &fakeResolver{}, &recordingBus{})
	state := store.NewWorkspaceState("sess", uuid.New())

	_, done := svc.Mount(context.Background(), state, uuid.New(), chatsettings.Overrides{})
	waitDone(t, done)

	assert.Zero(t, uow.assistants.findAllCalls)
	assert.Empty(t, state.Snapshot().Assistants)
}

func TestMount_ClearsStateSynchronously(t *testing.T) {
	oldWorkspace, newWorkspace := uuid.New(), uuid.New()
	state := store.NewWorkspaceState("sess", uuid.New())
	gen := state.BeginSwitch(oldWorkspace)
	require.True(t, state.Commit(gen, store.Hydration{
		Workspace: &entity.Workspace{Id: oldWorkspace},
		Chats:     []*entity.Chat{{Id: uuid.New(), WorkspaceId: oldWorkspace}},
	}))
	require.NoError(t, state.UpdateView(func(view *store.ChatView, data *store.Hydration) error {
		view.SelectedChat = data.Chats[0]
		view.UserInput = "half-typed"
		view.IsGenerating = true
		view.ChatMessages = []store.ChatMessage{{Id: uuid.New(), Role: "user", Content: "hi"}}
		view.NewMessageFiles = []store.ChatAttachment{{Id: uuid.New(), Name: "a.pdf"}}
		view.ShowFilesDisplay = true
		return nil
	}))

	release := make(chan struct{})
	uow := populatedUoW(newWorkspace)
	uow.workspaces.FindOneFunc = func(ctx context.Context, specs ...specification.Specification) (*entity.Workspace, error) {
		<-release
		return &entity.Workspace{Id: newWorkspace}, nil
	}
	svc := newTestHydration(uow, &fakeResolver{}, &recordingBus{})

	_, done := svc.Mount(context.Background(), state, newWorkspace, chatsettings.Overrides{})

	snap := state.Snapshot()
	assert.True(t, snap.Loading)
	assert.Equal(t, newWorkspace, snap.WorkspaceId)
	assert.Nil(t, snap.Workspace)
	assert.Nil(t, snap.SelectedChat)
	assert.Empty(t, snap.Chats)
	assert.Empty(t, snap.ChatMessages)
	assert.Empty(t, snap.UserInput)
	assert.False(t, snap.IsGenerating)
	assert.Empty(t, snap.NewMessageFiles)
	assert.False(t, snap.ShowFilesDisplay)

	close(release)
	waitDone(t, done)

	snap = state.Snapshot()
	assert.False(t, snap.Loading)
	require.NotNil(t, snap.Workspace)
	assert.Equal(t, newWorkspace, snap.Workspace.Id)
	for _, c := range snap.Chats {
		assert.Equal(t, newWorkspace, c.WorkspaceId)
	}
}

func TestMount_StaleHydrationIsDiscarded(t *testing.T) {
	first, second := uuid.New(), uuid.New()
	release := make(chan struct{})

	uow := newFakeUoW()
	uow.workspaces.FindOneFunc = func(ctx context.Context, specs ...specification.Specification) (*entity.Workspace, error) {
		byId := specs[0].(specification.ByID)
		if byId.ID == first {
			<-release
		}
		return &entity.Workspace{Id: byId.ID}, nil
	}
	bus := &recordingBus{}
	svc := newTestHydration(uow, &fakeResolver{}, bus)
	state := store.NewWorkspaceState("sess", uuid.New())

	_, firstDone := svc.Mount(context.Background(), state, first, chatsettings.Overrides{})
	secondGen, secondDone := svc.Mount(context.Background(), state, second, chatsettings.Overrides{})
	waitDone(t, secondDone)

	close(release)
	waitDone(t, firstDone)

	snap := state.Snapshot()
	assert.Equal(t, secondGen, snap.Generation)
	require.NotNil(t, snap.Workspace)
	assert.Equal(t, second, snap.Workspace.Id)
	assert.False(t, snap.Loading)
	assert.ElementsMatch(t, []string{events.WorkspaceHydrated, events.WorkspaceHydrationDiscarded}, bus.types())
}

func TestMount_SurvivesRequestCancellation(t *testing.T) {
	workspaceId := uuid.New()
	uow := populatedUoW(workspaceId)
	uow.chats.FindByWorkspaceFunc = func(ctx context.Context, id uuid.UUID) ([]*entity.Chat, error) {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		return []*entity.Chat{{Id: uuid.New(), WorkspaceId: id}}, nil
	}
	svc := newTestHydration(uow, &fakeResolver{}, &recordingBus{})
	state := store.NewWorkspaceState("sess", uuid.New())

	ctx, cancel := context.WithCancel(context.Background())
	_, done := svc.Mount(ctx, state, workspaceId, chatsettings.Overrides{})
	cancel()
	waitDone(t, done)

	assert.Len(t, state.Snapshot().Chats, 1)
}
