package mapper

import (
	"ai-chat-workspace-be/internal/entity"
	"ai-chat-workspace-be/internal/model"
)

type AssistantMapper struct{}

func NewAssistantMapper() *AssistantMapper {
	return &AssistantMapper{}
}

func (m *AssistantMapper) ToEntity(a *model.Assistant) *entity.Assistant {
	if a == nil {
		return nil
	}
	return &entity.Assistant{
		Id:                           a.Id,
		UserId:                       a.UserId,
		FolderId:                     a.FolderId,
		Name:                         a.Name,
		Description:                  a.Description,
		Model:                        a.Model,
		Prompt:                       a.Prompt,
		Temperature:                  a.Temperature,
		ContextLength:                a.ContextLength,
		IncludeProfileContext:        a.IncludeProfileContext,
		IncludeWorkspaceInstructions: a.IncludeWorkspaceInstructions,
		EmbeddingsProvider:           a.EmbeddingsProvider,
		ImagePath:                    a.ImagePath,
		Sharing:                      a.Sharing,
		CreatedAt:                    a.CreatedAt,
		UpdatedAt:                    optionalTime(a.UpdatedAt),
	}
}

func (m *AssistantMapper) ToModel(a *entity.Assistant) *model.Assistant {
	if a == nil {
		return nil
	}
	return &model.Assistant{
		Id:                           a.Id,
		UserId:                       a.UserId,
		FolderId:                     a.FolderId,
		Name:                         a.Name,
		Description:                  a.Description,
		Model:                        a.Model,
		Prompt:                       a.Prompt,
		Temperature:                  a.Temperature,
		ContextLength:                a.ContextLength,
		IncludeProfileContext:        a.IncludeProfileContext,
		IncludeWorkspaceInstructions: a.IncludeWorkspaceInstructions,
		EmbeddingsProvider:           a.EmbeddingsProvider,
		ImagePath:                    a.ImagePath,
		Sharing:                      a.Sharing,
		CreatedAt:                    a.CreatedAt,
		UpdatedAt:                    requiredTime(a.UpdatedAt),
	}
}

func (m *AssistantMapper) ToEntities(assistants []*model.Assistant) []*entity.Assistant {
	entities := make([]*entity.Assistant, len(assistants))
	for i, a := range assistants {
		entities[i] = m.ToEntity(a)
	}
	return entities
}

func (m *AssistantMapper) LinkToEntity(l *model.AssistantWorkspace) *entity.AssistantWorkspace {
	if l == nil {
		return nil
	}
	return &entity.AssistantWorkspace{
		UserId:      l.UserId,
		AssistantId: l.AssistantId,
		WorkspaceId: l.WorkspaceId,
		CreatedAt:   l.CreatedAt,
	}
}

func (m *AssistantMapper) LinkToModel(l *entity.AssistantWorkspace) *model.AssistantWorkspace {
	if l == nil {
		return nil
	}
	return &model.AssistantWorkspace{
		UserId:      l.UserId,
		AssistantId: l.AssistantId,
		WorkspaceId: l.WorkspaceId,
		CreatedAt:   l.CreatedAt,
	}
}

func (m *AssistantMapper) LinksToEntities(links []*model.AssistantWorkspace) []*entity.AssistantWorkspace {
	entities := make([]*entity.AssistantWorkspace, len(links))
	for i, l := range links {
		entities[i] = m.LinkToEntity(l)
	}
	return entities
}
