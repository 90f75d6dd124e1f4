package unitofwork

import (
	"context"

	"ai-chat-workspace-be/internal/repository/contract"
)

type UnitOfWork interface {
	Begin(ctx context.Context) error
	Commit() error
	Rollback() error

	WorkspaceRepository() contract.WorkspaceRepository
	AssistantRepository() contract.AssistantRepository

	ChatRepository() contract.ChatRepository
	FolderRepository() contract.FolderRepository
	FileRepository() contract.FileRepository
	PromptRepository() contract.PromptRepository
	PresetRepository() contract.PresetRepository
	ToolRepository() contract.ToolRepository
	ModelRepository() contract.ModelRepository
	CollectionRepository() contract.CollectionRepository
}
