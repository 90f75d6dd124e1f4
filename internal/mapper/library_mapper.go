package mapper

import (
	"encoding/json"

	"ai-chat-workspace-be/internal/entity"
	"ai-chat-workspace-be/internal/model"

	"gorm.io/datatypes"
)

// Mappers for the kinds linked to workspaces through <kind>_workspaces.

type FileMapper struct{}

func NewFileMapper() *FileMapper {
	return &FileMapper{}
}

func (m *FileMapper) ToEntity(f *model.File) *entity.File {
	if f == nil {
		return nil
	}
	return &entity.File{
		Id:          f.Id,
		UserId:      f.UserId,
		FolderId:    f.FolderId,
		Name:        f.Name,
		Description: f.Description,
		FilePath:    f.FilePath,
		Size:        f.Size,
		Tokens:      f.Tokens,
		Type:        f.Type,
		Sharing:     f.Sharing,
		CreatedAt:   f.CreatedAt,
		UpdatedAt:   optionalTime(f.UpdatedAt),
	}
}

func (m *FileMapper) ToModel(f *entity.File) *model.File {
	if f == nil {
		return nil
	}
	return &model.File{
		Id:          f.Id,
		UserId:      f.UserId,
		FolderId:    f.FolderId,
		Name:        f.Name,
		Description: f.Description,
		FilePath:    f.FilePath,
		Size:        f.Size,
		Tokens:      f.Tokens,
		Type:        f.Type,
		Sharing:     f.Sharing,
		CreatedAt:   f.CreatedAt,
		UpdatedAt:   requiredTime(f.UpdatedAt),
	}
}

func (m *FileMapper) ToEntities(files []*model.File) []*entity.File {
	entities := make([]*entity.File, len(files))
	for i, f := range files {
		entities[i] = m.ToEntity(f)
	}
	return entities
}

type PromptMapper struct{}

func NewPromptMapper() *PromptMapper {
	return &PromptMapper{}
}

func (m *PromptMapper) ToEntity(p *model.Prompt) *entity.Prompt {
	if p == nil {
		return nil
	}
	return &entity.Prompt{
		Id:        p.Id,
		UserId:    p.UserId,
		FolderId:  p.FolderId,
		Name:      p.Name,
		Content:   p.Content,
		Sharing:   p.Sharing,
		CreatedAt: p.CreatedAt,
		UpdatedAt: optionalTime(p.UpdatedAt),
	}
}

func (m *PromptMapper) ToModel(p *entity.Prompt) *model.Prompt {
	if p == nil {
		return nil
	}
	return &model.Prompt{
		Id:        p.Id,
		UserId:    p.UserId,
		FolderId:  p.FolderId,
		Name:      p.Name,
		Content:   p.Content,
		Sharing:   p.Sharing,
		CreatedAt: p.CreatedAt,
		UpdatedAt: requiredTime(p.UpdatedAt),
	}
}

func (m *PromptMapper) ToEntities(prompts []*model.Prompt) []*entity.Prompt {
	entities := make([]*entity.Prompt, len(prompts))
	for i, p := range prompts {
		entities[i] = m.ToEntity(p)
	}
	return entities
}

type PresetMapper struct{}

func NewPresetMapper() *PresetMapper {
	return &PresetMapper{}
}

func (m *PresetMapper) ToEntity(p *model.Preset) *entity.Preset {
	if p == nil {
		return nil
	}
	return &entity.Preset{
		Id:                           p.Id,
		UserId:                       p.UserId,
		FolderId:                     p.FolderId,
		Name:                         p.Name,
		Description:                  p.Description,
		Model:                        p.Model,
		Prompt:                       p.Prompt,
		Temperature:                  p.Temperature,
		ContextLength:                p.ContextLength,
		IncludeProfileContext:        p.IncludeProfileContext,
		IncludeWorkspaceInstructions: p.IncludeWorkspaceInstructions,
		EmbeddingsProvider:           p.EmbeddingsProvider,
		Sharing:                      p.Sharing,
		CreatedAt:                    p.CreatedAt,
		UpdatedAt:                    optionalTime(p.UpdatedAt),
	}
}

func (m *PresetMapper) ToModel(p *entity.Preset) *model.Preset {
	if p == nil {
		return nil
	}
	return &model.Preset{
		Id:                           p.Id,
		UserId:                       p.UserId,
		FolderId:                     p.FolderId,
		Name:                         p.Name,
		Description:                  p.Description,
		Model:                        p.Model,
		Prompt:                       p.Prompt,
		Temperature:                  p.Temperature,
		ContextLength:                p.ContextLength,
		IncludeProfileContext:        p.IncludeProfileContext,
		IncludeWorkspaceInstructions: p.IncludeWorkspaceInstructions,
		EmbeddingsProvider:           p.EmbeddingsProvider,
		Sharing:                      p.Sharing,
		CreatedAt:                    p.CreatedAt,
		UpdatedAt:                    requiredTime(p.UpdatedAt),
	}
}

func (m *PresetMapper) ToEntities(presets []*model.Preset) []*entity.Preset {
	entities := make([]*entity.Preset, len(presets))
	for i, p := range presets {
		entities[i] = m.ToEntity(p)
	}
	return entities
}

type ToolMapper struct{}

func NewToolMapper() *ToolMapper {
	return &ToolMapper{}
}

func (m *ToolMapper) ToEntity(t *model.Tool) *entity.Tool {
	if t == nil {
		return nil
	}
	return &entity.Tool{
		Id:            t.Id,
		UserId:        t.UserId,
		FolderId:      t.FolderId,
		Name:          t.Name,
		Description:   t.Description,
		Url:           t.Url,
		Schema:        json.RawMessage(t.Schema),
		CustomHeaders: json.RawMessage(t.CustomHeaders),
		Sharing:       t.Sharing,
		CreatedAt:     t.CreatedAt,
		UpdatedAt:     optionalTime(t.UpdatedAt),
	}
}

func (m *ToolMapper) ToModel(t *entity.Tool) *model.Tool {
	if t == nil {
		return nil
	}
	return &model.Tool{
		Id:            t.Id,
		UserId:        t.UserId,
		FolderId:      t.FolderId,
		Name:          t.Name,
		Description:   t.Description,
		Url:           t.Url,
		Schema:        datatypes.JSON(t.Schema),
		CustomHeaders: datatypes.JSON(t.CustomHeaders),
		Sharing:       t.Sharing,
		CreatedAt:     t.CreatedAt,
		UpdatedAt:     requiredTime(t.UpdatedAt),
	}
}

func (m *ToolMapper) ToEntities(tools []*model.Tool) []*entity.Tool {
	entities := make([]*entity.Tool, len(tools))
	for i, t := range tools {
		entities[i] = m.ToEntity(t)
	}
	return entities
}

type ModelMapper struct{}

func NewModelMapper() *ModelMapper {
	return &ModelMapper{}
}

func (m *ModelMapper) ToEntity(c *model.Model) *entity.Model {
	if c == nil {
		return nil
	}
	return &entity.Model{
		Id:            c.Id,
		UserId:        c.UserId,
		FolderId:      c.FolderId,
		Name:          c.Name,
		Description:   c.Description,
		ModelId:       c.ModelId,
		BaseUrl:       c.BaseUrl,
		ApiKey:        c.ApiKey,
		ContextLength: c.ContextLength,
		Sharing:       c.Sharing,
		CreatedAt:     c.CreatedAt,
		UpdatedAt:     optionalTime(c.UpdatedAt),
	}
}

func (m *ModelMapper) ToModel(c *entity.Model) *model.Model {
	if c == nil {
		return nil
	}
	return &model.Model{
		Id:            c.Id,
		UserId:        c.UserId,
		FolderId:      c.FolderId,
		Name:          c.Name,
		Description:   c.Description,
		ModelId:       c.ModelId,
		BaseUrl:       c.BaseUrl,
		ApiKey:        c.ApiKey,
		ContextLength: c.ContextLength,
		Sharing:       c.Sharing,
		CreatedAt:     c.CreatedAt,
		UpdatedAt:     requiredTime(c.UpdatedAt),
	}
}

func (m *ModelMapper) ToEntities(models []*model.Model) []*entity.Model {
	entities := make([]*entity.Model, len(models))
	for i, c := range models {
		entities[i] = m.ToEntity(c)
	}
	return entities
}

type CollectionMapper struct{}

func NewCollectionMapper() *CollectionMapper {
	return &CollectionMapper{}
}

func (m *CollectionMapper) ToEntity(c *model.Collection) *entity.Collection {
	if c == nil {
		return nil
	}
	return &entity.Collection{
		Id:          c.Id,
		UserId:      c.UserId,
		FolderId:    c.FolderId,
		Name:        c.Name,
		Description: c.Description,
		Sharing:     c.Sharing,
		CreatedAt:   c.CreatedAt,
		UpdatedAt:   optionalTime(c.UpdatedAt),
	}
}

func (m *CollectionMapper) ToModel(c *entity.Collection) *model.Collection {
	if c == nil {
		return nil
	}
	return &model.Collection{
		Id:          c.Id,
		UserId:      c.UserId,
		FolderId:    c.FolderId,
		Name:        c.Name,
		Description: c.Description,
		Sharing:     c.Sharing,
		CreatedAt:   c.CreatedAt,
		UpdatedAt:   requiredTime(c.UpdatedAt),
	}
}

func (m *CollectionMapper) ToEntities(collections []*model.Collection) []*entity.Collection {
	entities := make([]*entity.Collection, len(collections))
	for i, c := range collections {
		entities[i] = m.ToEntity(c)
	}
	return entities
}
