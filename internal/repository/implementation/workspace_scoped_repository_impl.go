package implementation

import (
	"context"
	"fmt"
	"time"

	"ai-chat-workspace-be/internal/entity"
	"ai-chat-workspace-be/internal/mapper"
	"ai-chat-workspace-be/internal/model"
	"ai-chat-workspace-be/internal/repository/contract"
	"ai-chat-workspace-be/internal/repository/scope"
	"ai-chat-workspace-be/internal/repository/specification"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type entityMapper[M any, E any] interface {
	ToEntity(m *M) *E
	ToModel(e *E) *M
	ToEntities(models []*M) []*E
}

// Linkage says how a kind belongs to a workspace. An empty LinkTable means the
// row carries workspace_id itself.
type Linkage struct {
	LinkTable string
	Column    string
}

type WorkspaceScopedRepositoryImpl[M any, E any] struct {
	db      *gorm.DB
	mapper  entityMapper[M, E]
	kind    string
	linkage Linkage
}

func newWorkspaceScopedRepository[M any, E any](db *gorm.DB, kind string, m entityMapper[M, E], linkage Linkage) *WorkspaceScopedRepositoryImpl[M, E] {
	return &WorkspaceScopedRepositoryImpl[M, E]{
		db:      db,
		mapper:  m,
		kind:    kind,
		linkage: linkage,
	}
}

func (r *WorkspaceScopedRepositoryImpl[M, E]) Create(ctx context.Context, item *E) error {
	m := r.mapper.ToModel(item)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return fmt.Errorf("create %s: %w", r.kind, err)
	}
	*item = *r.mapper.ToEntity(m)
	return nil
}

func (r *WorkspaceScopedRepositoryImpl[M, E]) Link(ctx context.Context, userId, itemId, workspaceId uuid.UUID) error {
	if r.linkage.LinkTable == "" {
		return fmt.Errorf("link %s: %w", r.kind, contract.ErrDirectlyOwned)
	}
	row := map[string]interface{}{
		r.linkage.Column: itemId,
		"workspace_id":   workspaceId,
		"user_id":        userId,
		"created_at":     time.Now(),
	}
	if err := r.db.WithContext(ctx).Table(r.linkage.LinkTable).Create(row).Error; err != nil {
		return fmt.Errorf("link %s: %w", r.kind, err)
	}
	return nil
}

func (r *WorkspaceScopedRepositoryImpl[M, E]) FindByWorkspace(ctx context.Context, workspaceId uuid.UUID, specs ...specification.Specification) ([]*E, error) {
	var models []*M
	query := r.db.WithContext(ctx).Model(new(M))
	if r.linkage.LinkTable == "" {
		query = specification.ByWorkspaceID{WorkspaceID: workspaceId}.Apply(query)
	} else {
		query = specification.LinkedToWorkspace{
			LinkTable:   r.linkage.LinkTable,
			Column:      r.linkage.Column,
			WorkspaceID: workspaceId,
		}.Apply(query)
	}
	query = applySpecifications(query, specs...)
	if len(specs) == 0 {
		query = query.Scopes(scope.OrderByCreatedDesc)
	}
	if err := query.Find(&models).Error; err != nil {
		return nil, fmt.Errorf("find %s by workspace: %w", r.kind, err)
	}
	return r.mapper.ToEntities(models), nil
}

func NewChatRepository(db *gorm.DB) contract.ChatRepository {
	return newWorkspaceScopedRepository[model.Chat, entity.Chat](db, "chats", mapper.NewChatMapper(), Linkage{})
}

func NewFolderRepository(db *gorm.DB) contract.FolderRepository {
	return newWorkspaceScopedRepository[model.Folder, entity.Folder](db, "folders", mapper.NewFolderMapper(), Linkage{})
}

func NewFileRepository(db *gorm.DB) contract.FileRepository {
	return newWorkspaceScopedRepository[model.File, entity.File](db, "files", mapper.NewFileMapper(),
		Linkage{LinkTable: "file_workspaces", Column: "file_id"})
}

func NewPromptRepository(db *gorm.DB) contract.PromptRepository {
	return newWorkspaceScopedRepository[model.Prompt, entity.Prompt](db, "prompts", mapper.NewPromptMapper(),
		Linkage{LinkTable: "prompt_workspaces", Column: "prompt_id"})
}

func NewPresetRepository(db *gorm.DB) contract.PresetRepository {
	return newWorkspaceScopedRepository[model.Preset, entity.Preset](db, "presets", mapper.NewPresetMapper(),
		Linkage{LinkTable: "preset_workspaces", Column: "preset_id"})
}

func NewToolRepository(db *gorm.DB) contract.ToolRepository {
	return newWorkspaceScopedRepository[model.Tool, entity.Tool](db, "tools", mapper.NewToolMapper(),
		Linkage{LinkTable: "tool_workspaces", Column: "tool_id"})
}

func NewModelRepository(db *gorm.DB) contract.ModelRepository {
	return newWorkspaceScopedRepository[model.Model, entity.Model](db, "models", mapper.NewModelMapper(),
		Linkage{LinkTable: "model_workspaces", Column: "model_id"})
}

func NewCollectionRepository(db *gorm.DB) contract.CollectionRepository {
	return newWorkspaceScopedRepository[model.Collection, entity.Collection](db, "collections", mapper.NewCollectionMapper(),
		Linkage{LinkTable: "collection_workspaces", Column: "collection_id"})
}
