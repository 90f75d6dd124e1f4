package service

import (
	"ai-chat-workspace-be/internal/dto"
	"ai-chat-workspace-be/internal/entity"
	"ai-chat-workspace-be/pkg/store"
)

func mapAll[E any, D any](items []*E, fn func(*E) D) []D {
	out := make([]D, 0, len(items))
	for _, item := range items {
		if item != nil {
			out = append(out, fn(item))
		}
	}
	return out
}

func toStateResponse(snap store.Snapshot) *dto.WorkspaceStateResponse {
	images := make(map[string]string, len(snap.AssistantImages))
	for id, url := range snap.AssistantImages {
		images[id.String()] = url
	}

	return &dto.WorkspaceStateResponse{
		WorkspaceId:     snap.WorkspaceId,
		Generation:      snap.Generation,
		Loading:         snap.Loading,
		Workspace:       toWorkspaceResponse(snap.Workspace),
		Assistants:      mapAll(snap.Assistants, func(a *entity.Assistant) dto.AssistantResponse { return toAssistantResponse(a, snap.AssistantImages[a.Id]) }),
		AssistantImages: images,
		Chats:           mapAll(snap.Chats, toChatResponse),
		Folders: mapAll(snap.Folders, func(f *entity.Folder) dto.FolderResponse {
			return dto.FolderResponse{Id: f.Id, Name: f.Name, Description: f.Description, Type: f.Type}
		}),
		Files: mapAll(snap.Files, func(f *entity.File) dto.FileResponse {
			return dto.FileResponse{Id: f.Id, FolderId: f.FolderId, Name: f.Name, Description: f.Description, FilePath: f.FilePath, Size: f.Size, Tokens: f.Tokens, Type: f.Type}
		}),
		Prompts: mapAll(snap.Prompts, func(p *entity.Prompt) dto.PromptResponse {
			return dto.PromptResponse{Id: p.Id, FolderId: p.FolderId, Name: p.Name, Content: p.Content}
		}),
		Presets: mapAll(snap.Presets, toPresetResponse),
		Tools: mapAll(snap.Tools, func(t *entity.Tool) dto.ToolResponse {
			return dto.ToolResponse{Id: t.Id, FolderId: t.FolderId, Name: t.Name, Description: t.Description, Url: t.Url, Schema: t.Schema, CustomHeaders: t.CustomHeaders}
		}),
		Models: mapAll(snap.Models, func(m *entity.Model) dto.ModelResponse {
			return dto.ModelResponse{Id: m.Id, FolderId: m.FolderId, Name: m.Name, Description: m.Description, ModelId: m.ModelId, BaseUrl: m.BaseUrl, HasApiKey: m.ApiKey != "", ContextLength: m.ContextLength}
		}),
		Collections: mapAll(snap.Collections, func(c *entity.Collection) dto.CollectionResponse {
			return dto.CollectionResponse{Id: c.Id, FolderId: c.FolderId, Name: c.Name, Description: c.Description}
		}),
		ChatSettings: dto.ChatSettingsResponse{
			Model:                        snap.ChatSettings.Model,
			Prompt:                       snap.ChatSettings.Prompt,
			Temperature:                  snap.ChatSettings.Temperature,
			ContextLength:                snap.ChatSettings.ContextLength,
			IncludeProfileContext:        snap.ChatSettings.IncludeProfileContext,
			IncludeWorkspaceInstructions: snap.ChatSettings.IncludeWorkspaceInstructions,
			EmbeddingsProvider:           snap.ChatSettings.EmbeddingsProvider,
		},
		View: toChatViewResponse(snap.ChatView),
	}
}

func toWorkspaceResponse(w *entity.Workspace) *dto.WorkspaceResponse {
	if w == nil {
		return nil
	}
	return &dto.WorkspaceResponse{
		Id:                           w.Id,
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
		UpdatedAt:                    w.UpdatedAt,
	}
}

func toAssistantResponse(a *entity.Assistant, imageURL string) dto.AssistantResponse {
	return dto.AssistantResponse{
		Id:                           a.Id,
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
		ImageURL:                     imageURL,
		CreatedAt:                    a.CreatedAt,
	}
}

func toChatResponse(c *entity.Chat) dto.ChatResponse {
	return dto.ChatResponse{
		Id:            c.Id,
		FolderId:      c.FolderId,
		AssistantId:   c.AssistantId,
		Name:          c.Name,
		Model:         c.Model,
		Prompt:        c.Prompt,
		Temperature:   c.Temperature,
		ContextLength: c.ContextLength,
		CreatedAt:     c.CreatedAt,
		UpdatedAt:     c.UpdatedAt,
	}
}

func toPresetResponse(p *entity.Preset) dto.PresetResponse {
	return dto.PresetResponse{
		Id:                           p.Id,
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
	}
}

func toChatViewResponse(v store.ChatView) dto.ChatViewResponse {
	res := dto.ChatViewResponse{
		ChatMessages:       make([]dto.ChatMessageDto, 0, len(v.ChatMessages)),
		UserInput:          v.UserInput,
		IsGenerating:       v.IsGenerating,
		FirstTokenReceived: v.FirstTokenReceived,
		ChatFiles:          toAttachmentDtos(v.ChatFiles),
		ChatImages:         toAttachmentDtos(v.ChatImages),
		NewMessageFiles:    toAttachmentDtos(v.NewMessageFiles),
		NewMessageImages:   toAttachmentDtos(v.NewMessageImages),
		ShowFilesDisplay:   v.ShowFilesDisplay,
	}
	if v.SelectedChat != nil {
		id := v.SelectedChat.Id
		res.SelectedChatId = &id
	}
	for _, m := range v.ChatMessages {
		res.ChatMessages = append(res.ChatMessages, dto.ChatMessageDto{Id: m.Id, Role: m.Role, Content: m.Content})
	}
	return res
}

func toAttachmentDtos(in []store.ChatAttachment) []dto.ChatAttachmentDto {
	out := make([]dto.ChatAttachmentDto, 0, len(in))
	for _, a := range in {
		out = append(out, dto.ChatAttachmentDto{Id: a.Id, Name: a.Name, Type: a.Type, Url: a.Url})
	}
	return out
}
