package service

import (
	"context"
	"sync"

	"ai-chat-workspace-be/internal/entity"
	"ai-chat-workspace-be/internal/repository/contract"
	"ai-chat-workspace-be/internal/repository/specification"
	"ai-chat-workspace-be/internal/repository/unitofwork"
	"ai-chat-workspace-be/pkg/events"

	"github.com/google/uuid"
)

type fakeWorkspaceRepo struct {
	FindOneFunc func(ctx context.Context, specs ...specification.Specification) (*entity.Workspace, error)
}

func (f *fakeWorkspaceRepo) Create(ctx context.Context, w *entity.Workspace) error { return nil }

func (f *fakeWorkspaceRepo) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Workspace, error) {
	if f.FindOneFunc == nil {
		return nil, nil
	}
	return f.FindOneFunc(ctx, specs...)
}

func (f *fakeWorkspaceRepo) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Workspace, error) {
	return nil, nil
}

type fakeAssistantRepo struct {
	FindWorkspaceLinksFunc func(ctx context.Context, workspaceId uuid.UUID) ([]*entity.AssistantWorkspace, error)
	FindAllFunc            func(ctx context.Context, specs ...specification.Specification) ([]*entity.Assistant, error)

	mu           sync.Mutex
	findAllCalls int
}

func (f *fakeAssistantRepo) Create(ctx context.Context, a *entity.Assistant) error { return nil }

func (f *fakeAssistantRepo) Link(ctx context.Context, l *entity.AssistantWorkspace) error { return nil }

func (f *fakeAssistantRepo) FindWorkspaceLinks(ctx context.Context, workspaceId uuid.UUID) ([]*entity.AssistantWorkspace, error) {
	if f.FindWorkspaceLinksFunc == nil {
		return nil, nil
	}
	return f.FindWorkspaceLinksFunc(ctx, workspaceId)
}

func (f *fakeAssistantRepo) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Assistant, error) {
	f.mu.Lock()
	f.findAllCalls++
	f.mu.Unlock()
	if f.FindAllFunc == nil {
		return nil, nil
	}
	return f.FindAllFunc(ctx, specs...)
}

type fakeScopedRepo[E any] struct {
	FindByWorkspaceFunc func(ctx context.Context, workspaceId uuid.UUID) ([]*E, error)
}

func (f *fakeScopedRepo[E]) Create(ctx context.Context, item *E) error { return nil }

func (f *fakeScopedRepo[E]) Link(ctx context.Context, userId, itemId, workspaceId uuid.UUID) error {
	return nil
}

func (f *fakeScopedRepo[E]) FindByWorkspace(ctx context.Context, workspaceId uuid.UUID, specs ...specification.Specification) ([]*E, error) {
	if f.FindByWorkspaceFunc == nil {
		return nil, nil
	}
	return f.FindByWorkspaceFunc(ctx, workspaceId)
}

type fakeUoW struct {
	workspaces  *fakeWorkspaceRepo
	assistants  *fakeAssistantRepo
	chats       *fakeScopedRepo[entity.Chat]
	folders     *fakeScopedRepo[entity.Folder]
	files       *fakeScopedRepo[entity.File]
	prompts     *fakeScopedRepo[entity.Prompt]
	presets     *fakeScopedRepo[entity.Preset]
	tools       *fakeScopedRepo[entity.Tool]
	models      *fakeScopedRepo[entity.Model]
	collections *fakeScopedRepo[entity.Collection]
}

func newFakeUoW() *fakeUoW {
	return &fakeUoW{
		workspaces:  &fakeWorkspaceRepo{},
		assistants:  &fakeAssistantRepo{},
		chats:       &fakeScopedRepo[entity.Chat]{},
		folders:     &fakeScopedRepo[entity.Folder]{},
		files:       &fakeScopedRepo[entity.File]{},
		prompts:     &fakeScopedRepo[entity.Prompt]{},
		presets:     &fakeScopedRepo[entity.Preset]{},
		tools:       &fakeScopedRepo[entity.Tool]{},
		models:      &fakeScopedRepo[entity.Model]{},
		collections: &fakeScopedRepo[entity.Collection]{},
	}
}

func (u *fakeUoW) Begin(ctx context.Context) error { return nil }
func (u *fakeUoW) Commit() error { return nil }
func (u *fakeUoW) Rollback() error { return nil }

func (u *fakeUoW) WorkspaceRepository() contract.WorkspaceRepository { return u.workspaces }
func (u *fakeUoW) AssistantRepository() contract.AssistantRepository { return u.assistants }
func (u *fakeUoW) ChatRepository() contract.ChatRepository { return u.chats }
func (u *fakeUoW) FolderRepository() contract.FolderRepository { return u.folders }
func (u *fakeUoW) FileRepository() contract.FileRepository { return u.files }
func (u *fakeUoW) PromptRepository() contract.PromptRepository { return u.prompts }
func (u *fakeUoW) PresetRepository() contract.PresetRepository { return u.presets }
func (u *fakeUoW) ToolRepository() contract.ToolRepository { return u.tools }
func (u *fakeUoW) ModelRepository() contract.ModelRepository { return u.models }
func (u *fakeUoW) CollectionRepository() contract.CollectionRepository { return u.collections }

type fakeFactory struct {
	uow unitofwork.UnitOfWork
}

func (f *fakeFactory) NewUnitOfWork(ctx context.Context) unitofwork.UnitOfWork {
	return f.uow
}

type fakeResolver struct {
	ResolveFunc func(ctx context.Context, path string) string
}

func (f *fakeResolver) Resolve(ctx context.Context, path string) string {
	if f.ResolveFunc == nil {
		return ""
	}
	return f.ResolveFunc(ctx, path)
}

type recordingBus struct {
	mu     sync.Mutex
	events []events.Event
}

func (b *recordingBus) Publish(ctx context.Context, e events.Event) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.events = append(b.events, e)
	return nil
}

func (b *recordingBus) types() []string {
	b.mu.Lock()
	defer b.mu.Unlock()
	out := make([]string, len(b.events))
	for i, e := range b.events {
		out[i] = e.EventType()
	}
	return out
}
