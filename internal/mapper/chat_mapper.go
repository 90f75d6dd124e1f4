package mapper

import (
	"ai-chat-workspace-be/internal/entity"
	"ai-chat-workspace-be/internal/model"
)

type ChatMapper struct{}

func NewChatMapper() *ChatMapper {
	return &ChatMapper{}
}

func (m *ChatMapper) ToEntity(c *model.Chat) *entity.Chat {
	if c == nil {
		return nil
	}
	return &entity.Chat{
		Id:                           c.Id,
		UserId:                       c.UserId,
		WorkspaceId:                  c.WorkspaceId,
		FolderId:                     c.FolderId,
		AssistantId:                  c.AssistantId,
		Name:                         c.Name,
		Model:                        c.Model,
		Prompt:                       c.Prompt,
		Temperature:                  c.Temperature,
		ContextLength:                c.ContextLength,
		IncludeProfileContext:        c.IncludeProfileContext,
		IncludeWorkspaceInstructions: c.IncludeWorkspaceInstructions,
		EmbeddingsProvider:           c.EmbeddingsProvider,
		Sharing:                      c.Sharing,
		CreatedAt:                    c.CreatedAt,
		UpdatedAt:                    optionalTime(c.UpdatedAt),
	}
}

func (m *ChatMapper) ToModel(c *entity.Chat) *model.Chat {
	if c == nil {
		return nil
	}
	return &model.Chat{
		Id:                           c.Id,
		UserId:                       c.UserId,
		WorkspaceId:                  c.WorkspaceId,
		FolderId:                     c.FolderId,
		AssistantId:                  c.AssistantId,
		Name:                         c.Name,
		Model:                        c.Model,
		Prompt:                       c.Prompt,
		Temperature:                  c.Temperature,
		ContextLength:                c.ContextLength,
		IncludeProfileContext:        c.IncludeProfileContext,
		IncludeWorkspaceInstructions: c.IncludeWorkspaceInstructions,
		EmbeddingsProvider:           c.EmbeddingsProvider,
		Sharing:                      c.Sharing,
		CreatedAt:                    c.CreatedAt,
		UpdatedAt:                    requiredTime(c.UpdatedAt),
	}
}

func (m *ChatMapper) ToEntities(chats []*model.Chat) []*entity.Chat {
	entities := make([]*entity.Chat, len(chats))
	for i, c := range chats {
		entities[i] = m.ToEntity(c)
	}
	return entities
}

type FolderMapper struct{}

func NewFolderMapper() *FolderMapper {
	return &FolderMapper{}
}

func (m *FolderMapper) ToEntity(f *model.Folder) *entity.Folder {
	if f == nil {
		return nil
	}
	return &entity.Folder{
		Id:          f.Id,
		UserId:      f.UserId,
		WorkspaceId: f.WorkspaceId,
		Name:        f.Name,
		Description: f.Description,
		Type:        f.Type,
		CreatedAt:   f.CreatedAt,
		UpdatedAt:   optionalTime(f.UpdatedAt),
	}
}

func (m *FolderMapper) ToModel(f *entity.Folder) *model.Folder {
	if f == nil {
		return nil
	}
	return &model.Folder{
		Id:          f.Id,
		UserId:      f.UserId,
		WorkspaceId: f.WorkspaceId,
		Name:        f.Name,
		Description: f.Description,
		Type:        f.Type,
		CreatedAt:   f.CreatedAt,
		UpdatedAt:   requiredTime(f.UpdatedAt),
	}
}

func (m *FolderMapper) ToEntities(folders []*model.Folder) []*entity.Folder {
	entities := make([]*entity.Folder, len(folders))
	for i, f := range folders {
		entities[i] = m.ToEntity(f)
	}
	return entities
}
