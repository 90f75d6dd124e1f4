package main

import (
	"context"
	"encoding/json"
	"fmt"

	"ai-chat-workspace-be/internal/constant"
	"ai-chat-workspace-be/internal/entity"
	"ai-chat-workspace-be/internal/repository/unitofwork"

	"github.com/google/uuid"
)

// demoAssistantImagePathFormat is where the seeded assistant expects its
// avatar, relative to the assistant images bucket.
const demoAssistantImagePathFormat = "%s/demo-assistant.png"

type seedResult struct {
	HomeWorkspaceId     uuid.UUID
	ResearchWorkspaceId uuid.UUID
	AssistantImagePath  string
	Counts              map[string]int
}

func strPtr(s string) *string     { return &s }
func floatPtr(f float64) *float64 { return &f }

// seedDemoWorkspaces creates a home and a research workspace for userId with
// one item of every kind linked to the home workspace, all in one
// transaction.
func seedDemoWorkspaces(ctx context.Context, uow unitofwork.UnitOfWork, userId uuid.UUID) (*seedResult, error) {
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	res, err := seedInTx(ctx, uow, userId)
	if err != nil {
		_ = uow.Rollback()
		return nil, err
	}
	if err := uow.Commit(); err != nil {
		return nil, err
	}
	return res, nil
}

func seedInTx(ctx context.Context, uow unitofwork.UnitOfWork, userId uuid.UUID) (*seedResult, error) {
	res := &seedResult{Counts: map[string]int{}}

	home := &entity.Workspace{
		UserId:             userId,
		Name:               "Home",
		Description:        "Your personal workspace",
		IsHome:             true,
		Sharing:            "private",
		DefaultModel:       strPtr(constant.DefaultChatModel),
		DefaultTemperature: floatPtr(0.7),
	}
	research := &entity.Workspace{
		UserId:       userId,
		Name:         "Research",
		Instructions: "Cite sources for every claim.",
		Sharing:      "private",
	}
	for _, ws := range []*entity.Workspace{home, research} {
		if err := uow.WorkspaceRepository().Create(ctx, ws); err != nil {
			return nil, fmt.Errorf("create workspace %s: %w", ws.Name, err)
		}
	}
	res.HomeWorkspaceId, res.ResearchWorkspaceId = home.Id, research.Id
	res.Counts["workspaces"] = 2

	res.AssistantImagePath = fmt.Sprintf(demoAssistantImagePathFormat, userId)
	assistant := &entity.Assistant{
		UserId:        userId,
		Name:          "Writing Coach",
		Description:   "Helps tighten prose",
		Model:         constant.DefaultChatModel,
		Prompt:        "You are a concise writing coach.",
		Temperature:   0.5,
		ContextLength: 4096,
		ImagePath:     res.AssistantImagePath,
		Sharing:       "private",
	}
	if err := uow.AssistantRepository().Create(ctx, assistant); err != nil {
		return nil, fmt.Errorf("create assistant: %w", err)
	}
	if err := uow.AssistantRepository().Link(ctx, &entity.AssistantWorkspace{UserId: userId, AssistantId: assistant.Id, WorkspaceId: home.Id}); err != nil {
		return nil, fmt.Errorf("link assistant: %w", err)
	}
	res.Counts["assistants"] = 1

	folder := &entity.Folder{UserId: userId, WorkspaceId: home.Id, Name: "Drafts", Type: "chats"}
	if err := uow.FolderRepository().Create(ctx, folder); err != nil {
		return nil, fmt.Errorf("create folder: %w", err)
	}
	res.Counts["folders"] = 1

	chat := &entity.Chat{
		UserId:        userId,
		WorkspaceId:   home.Id,
		FolderId:      &folder.Id,
		AssistantId:   &assistant.Id,
		Name:          "Welcome chat",
		Model:         constant.DefaultChatModel,
		Prompt:        constant.DefaultChatPrompt,
		Temperature:   constant.DefaultChatTemperature,
		ContextLength: constant.DefaultChatContextLength,
		Sharing:       "private",
	}
	if err := uow.ChatRepository().Create(ctx, chat); err != nil {
		return nil, fmt.Errorf("create chat: %w", err)
	}
	res.Counts["chats"] = 1

	file := &entity.File{UserId: userId, Name: "style-guide.md", FilePath: userId.String() + "/style-guide.md", Size: 2048, Tokens: 512, Type: "text/markdown", Sharing: "private"}
	if err := uow.FileRepository().Create(ctx, file); err != nil {
		return nil, fmt.Errorf("create file: %w", err)
	}
	if err := uow.FileRepository().Link(ctx, userId, file.Id, home.Id); err != nil {
		return nil, err
	}
	res.Counts["files"] = 1

	prompt := &entity.Prompt{UserId: userId, Name: "Summarize", Content: "Summarize the text above in three bullet points.", Sharing: "private"}
	if err := uow.PromptRepository().Create(ctx, prompt); err != nil {
		return nil, fmt.Errorf("create prompt: %w", err)
	}
	if err := uow.PromptRepository().Link(ctx, userId, prompt.Id, home.Id); err != nil {
		return nil, err
	}
	res.Counts["prompts"] = 1

	preset := &entity.Preset{UserId: userId, Name: "Precise", Model: constant.DefaultChatModel, Temperature: 0.1, ContextLength: 4096, Sharing: "private"}
	if err := uow.PresetRepository().Create(ctx, preset); err != nil {
		return nil, fmt.Errorf("create preset: %w", err)
	}
	if err := uow.PresetRepository().Link(ctx, userId, preset.Id, home.Id); err != nil {
		return nil, err
	}
	res.Counts["presets"] = 1

	schema, _ := json.Marshal(map[string]interface{}{
		"openapi": "3.1.0",
		"info":    map[string]string{"title": "Weather", "version": "1.0.0"},
	})
	tool := &entity.Tool{UserId: userId, Name: "Weather", Url: "https://api.example.com", Schema: schema, CustomHeaders: json.RawMessage(`{}`), Sharing: "private"}
	if err := uow.ToolRepository().Create(ctx, tool); err != nil {
		return nil, fmt.Errorf("create tool: %w", err)
	}
	if err := uow.ToolRepository().Link(ctx, userId, tool.Id, home.Id); err != nil {
		return nil, err
	}
	res.Counts["tools"] = 1

	customModel := &entity.Model{UserId: userId, Name: "Local Llama", ModelId: "llama3", BaseUrl: "http://localhost:11434/v1", ContextLength: 8192, Sharing: "private"}
	if err := uow.ModelRepository().Create(ctx, customModel); err != nil {
		return nil, fmt.Errorf("create model: %w", err)
	}
	if err := uow.ModelRepository().Link(ctx, userId, customModel.Id, home.Id); err != nil {
		return nil, err
	}
	res.Counts["models"] = 1

	collection := &entity.Collection{UserId: userId, Name: "Reading list", Sharing: "private"}
	if err := uow.CollectionRepository().Create(ctx, collection); err != nil {
		return nil, fmt.Errorf("create collection: %w", err)
	}
	if err := uow.CollectionRepository().Link(ctx, userId, collection.Id, home.Id); err != nil {
		return nil, err
	}
	res.Counts["collections"] = 1

	return res, nil
}
