package contract

import (
	"context"

	"ai-chat-workspace-be/internal/entity"
	"ai-chat-workspace-be/internal/repository/specification"

	"github.com/google/uuid"
)

// AssistantRepository reads assistants in two narrow steps: link rows for a
// workspace, then the assistant rows by id.
type AssistantRepository interface {
	Create(ctx context.Context, assistant *entity.Assistant) error
	Link(ctx context.Context, link *entity.AssistantWorkspace) error
	FindWorkspaceLinks(ctx context.Context, workspaceId uuid.UUID) ([]*entity.AssistantWorkspace, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Assistant, error)
}
