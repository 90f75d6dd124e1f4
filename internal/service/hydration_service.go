package service

import (
	"context"
	"sync"
	"time"

	"ai-chat-workspace-be/internal/entity"
	"ai-chat-workspace-be/internal/pkg/logger"
	"ai-chat-workspace-be/internal/repository/contract"
	"ai-chat-workspace-be/internal/repository/specification"
	"ai-chat-workspace-be/internal/repository/unitofwork"
	"ai-chat-workspace-be/internal/tracer"
	"ai-chat-workspace-be/pkg/avatar"
	"ai-chat-workspace-be/pkg/chatsettings"
	"ai-chat-workspace-be/pkg/events"
	"ai-chat-workspace-be/pkg/store"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/sync/errgroup"
)

const (
	defaultHydrationTimeout  = 30 * time.Second
	defaultAvatarConcurrency = 4
)

type IHydrationService interface {
	// Mount clears state synchronously for workspaceId and hydrates it in the
	// background. done closes once the hydration has committed or been
	// discarded.
	Mount(ctx context.Context, state *store.WorkspaceState, workspaceId uuid.UUID, overrides chatsettings.Overrides) (generation uint64, done <-chan struct{})
	// Hydrate fetches everything for workspaceId and commits it under
	// generation. It reports whether the commit was accepted.
	Hydrate(ctx context.Context, state *store.WorkspaceState, generation uint64, workspaceId uuid.UUID, overrides chatsettings.Overrides) (store.Hydration, bool)
}

type HydrationOptions struct {
	Timeout           time.Duration
	AvatarConcurrency int
}

type hydrationService struct {
	uowFactory unitofwork.RepositoryFactory
	resolver   avatar.IResolver
	bus        IEventBus
	logger     logger.ILogger
	opts       HydrationOptions
	tracer     trace.Tracer
}

func NewHydrationService(uowFactory unitofwork.RepositoryFactory, resolver avatar.IResolver, bus IEventBus, log logger.ILogger, opts HydrationOptions) IHydrationService {
	if opts.Timeout <= 0 {
		opts.Timeout = defaultHydrationTimeout
	}
	if opts.AvatarConcurrency <= 0 {
		opts.AvatarConcurrency = defaultAvatarConcurrency
	}
	return &hydrationService{
		uowFactory: uowFactory,
		resolver:   resolver,
		bus:        bus,
		logger:     log,
		opts:       opts,
		tracer:     tracer.Tracer("hydration"),
	}
}

func (s *hydrationService) Mount(ctx context.Context, state *store.WorkspaceState, workspaceId uuid.UUID, overrides chatsettings.Overrides) (uint64, <-chan struct{}) {
	generation := state.BeginSwitch(workspaceId)

	done := make(chan struct{})
	go func() {
		defer close(done)
		// Detached from the request: the response is sent before this ends.
		hctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), s.opts.Timeout)
		defer cancel()
		s.Hydrate(hctx, state, generation, workspaceId, overrides)
	}()

	return generation, done
}

func (s *hydrationService) Hydrate(ctx context.Context, state *store.WorkspaceState, generation uint64, workspaceId uuid.UUID, overrides chatsettings.Overrides) (store.Hydration, bool) {
	ctx, span := s.tracer.Start(ctx, "workspace.hydrate", trace.WithAttributes(
		attribute.String("workspace.id", workspaceId.String()),
		attribute.Int64("workspace.generation", int64(generation)),
	))
	defer span.End()

	started := time.Now()
	uow := s.uowFactory.NewUnitOfWork(ctx)

	var h store.Hydration
	var g errgroup.Group

	g.Go(func() error {
		h.Workspace = s.fetchWorkspace(ctx, uow, workspaceId)
		return nil
	})
	g.Go(func() error {
		h.Assistants, h.AssistantImages = s.fetchAssistants(ctx, uow, workspaceId)
		return nil
	})
	g.Go(func() error {
		h.Chats = fetchScoped(ctx, s.logger, "chats", uow.ChatRepository(), workspaceId)
		return nil
	})
	g.Go(func() error {
		h.Folders = fetchScoped(ctx, s.logger, "folders", uow.FolderRepository(), workspaceId)
		return nil
	})
	g.Go(func() error {
		h.Files = fetchScoped(ctx, s.logger, "files", uow.FileRepository(), workspaceId)
		return nil
	})
	g.Go(func() error {
		h.Prompts = fetchScoped(ctx, s.logger, "prompts", uow.PromptRepository(), workspaceId)
		return nil
	})
	g.Go(func() error {
		h.Presets = fetchScoped(ctx, s.logger, "presets", uow.PresetRepository(), workspaceId)
		return nil
	})
	g.Go(func() error {
		h.Tools = fetchScoped(ctx, s.logger, "tools", uow.ToolRepository(), workspaceId)
		return nil
	})
	g.Go(func() error {
		h.Models = fetchScoped(ctx, s.logger, "models", uow.ModelRepository(), workspaceId)
		return nil
	})
	g.Go(func() error {
		h.Collections = fetchScoped(ctx, s.logger, "collections", uow.CollectionRepository(), workspaceId)
		return nil
	})
	_ = g.Wait()

	h.ChatSettings = chatsettings.Merge(h.Workspace, overrides, chatsettings.Defaults())

	committed := state.Commit(generation, h)
	span.SetAttributes(attribute.Bool("workspace.committed", committed))

	details := map[string]interface{}{
		"session_id":   state.SessionId(),
		"workspace_id": workspaceId,
		"generation":   generation,
		"duration_ms":  time.Since(started).Milliseconds(),
	}
	eventType := events.WorkspaceHydrated
	if committed {
		s.logger.Info("HydrationService", "Workspace hydrated", details)
	} else {
		eventType = events.WorkspaceHydrationDiscarded
		s.logger.Info("HydrationService", "Discarded stale hydration", details)
	}

	if err := s.bus.Publish(ctx, events.New(eventType, map[string]interface{}{
		"user_id":      state.UserId().String(),
		"session_id":   state.SessionId(),
		"workspace_id": workspaceId.String(),
		"generation":   generation,
	})); err != nil {
		s.logger.Warn("HydrationService", "Failed to publish hydration event", map[string]interface{}{"error": err.Error()})
	}

	return h, committed
}

// fetchWorkspace treats both "not found" and a failed lookup as absent.
func (s *hydrationService) fetchWorkspace(ctx context.Context, uow unitofwork.UnitOfWork, workspaceId uuid.UUID) *entity.Workspace {
	ws, err := uow.WorkspaceRepository().FindOne(ctx, specification.ByID{ID: workspaceId})
	if err != nil {
		s.logger.Warn("HydrationService", "Workspace lookup failed, using defaults", map[string]interface{}{
			"workspace_id": workspaceId,
			"error":        err.Error(),
		})
		return nil
	}
	if ws == nil {
		s.logger.Warn("HydrationService", "Workspace not found, using defaults", map[string]interface{}{"workspace_id": workspaceId})
	}
	return ws
}

// fetchAssistants reads link rows, then the assistants they name, then
// resolves every avatar. Each assistant gets an image entry, "" when none.
func (s *hydrationService) fetchAssistants(ctx context.Context, uow unitofwork.UnitOfWork, workspaceId uuid.UUID) ([]*entity.Assistant, map[uuid.UUID]string) {
	images := map[uuid.UUID]string{}
	repo := uow.AssistantRepository()

	links, err := repo.FindWorkspaceLinks(ctx, workspaceId)
	if err != nil {
		s.logger.Warn("HydrationService", "Failed to fetch assistant links", map[string]interface{}{
			"workspace_id": workspaceId,
			"error":        err.Error(),
		})
		return []*entity.Assistant{}, images
	}

	seen := make(map[uuid.UUID]struct{}, len(links))
	ids := make([]uuid.UUID, 0, len(links))
	for _, link := range links {
		if link == nil {
			continue
		}
		if _, dup := seen[link.AssistantId]; dup {
			continue
		}
		seen[link.AssistantId] = struct{}{}
		ids = append(ids, link.AssistantId)
	}
	if len(ids) == 0 {
		return []*entity.Assistant{}, images
	}

	assistants, err := repo.FindAll(ctx, specification.ByIDs{IDs: ids})
	if err != nil {
		s.logger.Warn("HydrationService", "Failed to fetch assistants", map[string]interface{}{
			"workspace_id": workspaceId,
			"error":        err.Error(),
		})
		return []*entity.Assistant{}, images
	}
	if assistants == nil {
		assistants = []*entity.Assistant{}
	}

	for _, a := range assistants {
		images[a.Id] = ""
	}

	ctx, span := s.tracer.Start(ctx, "workspace.resolve_avatars", trace.WithAttributes(
		attribute.Int("assistants", len(assistants)),
	))
	defer span.End()

	var mu sync.Mutex
	var g errgroup.Group
	g.SetLimit(s.opts.AvatarConcurrency)
	for _, a := range assistants {
		if !a.HasImage() {
			continue
		}
		g.Go(func() error {
			url := s.resolver.Resolve(ctx, a.ImagePath)
			mu.Lock()
			images[a.Id] = url
			mu.Unlock()
			return nil
		})
	}
	_ = g.Wait()

	return assistants, images
}

// fetchScoped normalizes every failure to an empty slice so one collection
// never blocks the others.
func fetchScoped[E any](ctx context.Context, log logger.ILogger, kind string, repo contract.WorkspaceScopedRepository[E], workspaceId uuid.UUID) []*E {
	items, err := repo.FindByWorkspace(ctx, workspaceId)
	if err != nil {
		log.Warn("HydrationService", "Failed to fetch workspace collection", map[string]interface{}{
			"kind":         kind,
			"workspace_id": workspaceId,
			"error":        err.Error(),
		})
		return []*E{}
	}
	if items == nil {
		return []*E{}
	}
	return items
}
