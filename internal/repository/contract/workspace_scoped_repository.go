package contract

import (
	"context"

	"ai-chat-workspace-be/internal/entity"
	"ai-chat-workspace-be/internal/repository/specification"

	"github.com/google/uuid"
)

// WorkspaceScopedRepository is the one fetch shape shared by every entity kind
// that belongs to a workspace, whether through a workspace_id column or a
// <kind>_workspaces link table.
type WorkspaceScopedRepository[E any] interface {
	Create(ctx context.Context, item *E) error
	// Link attaches an existing item to a workspace. Kinds owned through a
	// workspace_id column return ErrDirectlyOwned.
	Link(ctx context.Context, userId, itemId, workspaceId uuid.UUID) error
	FindByWorkspace(ctx context.Context, workspaceId uuid.UUID, specs ...specification.Specification) ([]*E, error)
}

type (
	ChatRepository       = WorkspaceScopedRepository[entity.Chat]
	FolderRepository     = WorkspaceScopedRepository[entity.Folder]
	FileRepository       = WorkspaceScopedRepository[entity.File]
	PromptRepository     = WorkspaceScopedRepository[entity.Prompt]
	PresetRepository     = WorkspaceScopedRepository[entity.Preset]
	ToolRepository       = WorkspaceScopedRepository[entity.Tool]
	ModelRepository      = WorkspaceScopedRepository[entity.Model]
	CollectionRepository = WorkspaceScopedRepository[entity.Collection]
)
