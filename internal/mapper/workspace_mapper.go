package mapper

import (
	"ai-chat-workspace-be/internal/entity"
	"ai-chat-workspace-be/internal/model"
)

type WorkspaceMapper struct{}

func NewWorkspaceMapper() *WorkspaceMapper {
	return &WorkspaceMapper{}
}

func (m *WorkspaceMapper) ToEntity(w *model.Workspace) *entity.Workspace {
	if w == nil {
		return nil
	}
	return &entity.Workspace{
		Id:                           w.Id,
		UserId:                       w.UserId,
		Name:                         w.Name,
		Description:                  w.Description,
		Instructions:                 w.Instructions,
		IsHome:                       w.IsHome,
		Sharing:                      w.Sharing,
		ImagePath:                    w.ImagePath,
		DefaultModel:                 w.DefaultModel,
		DefaultPrompt:                w.DefaultPrompt,
		DefaultTemperature:           w.DefaultTemperature,
		DefaultContextLength:         w.DefaultContextLength,
		IncludeProfileContext:        w.IncludeProfileContext,
		IncludeWorkspaceInstructions: w.IncludeWorkspaceInstructions,
		EmbeddingsProvider:           w.EmbeddingsProvider,
		CreatedAt:                    w.CreatedAt,
		UpdatedAt:                    optionalTime(w.UpdatedAt),
	}
}

func (m *WorkspaceMapper) ToModel(w *entity.Workspace) *model.Workspace {
	if w == nil {
		return nil
	}
	return &model.Workspace{
		Id:                           w.Id,
		UserId:                       w.UserId,
		Name:                         w.Name,
		Description:                  w.Description,
		Instructions:                 w.Instructions,
		IsHome:                       w.IsHome,
		Sharing:                      w.Sharing,
		ImagePath:                    w.ImagePath,
		DefaultModel:                 w.DefaultModel,
		DefaultPrompt:                w.DefaultPrompt,
		DefaultTemperature:           w.DefaultTemperature,
		DefaultContextLength:         w.DefaultContextLength,
		IncludeProfileContext:        w.IncludeProfileContext,
		IncludeWorkspaceInstructions: w.IncludeWorkspaceInstructions,
		EmbeddingsProvider:           w.EmbeddingsProvider,
		CreatedAt:                    w.CreatedAt,
		UpdatedAt:                    requiredTime(w.UpdatedAt),
	}
}

func (m *WorkspaceMapper) ToEntities(workspaces []*model.Workspace) []*entity.Workspace {
	entities := make([]*entity.Workspace, len(workspaces))
	for i, w := range workspaces {
		entities[i] = m.ToEntity(w)
	}
	return entities
}
