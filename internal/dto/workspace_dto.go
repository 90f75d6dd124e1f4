package dto

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

type MountWorkspaceRequest struct {
	WorkspaceId string `params:"workspaceId" validate:"required,uuid"`
	Model       string `validate:"max=200"`
}

type MountWorkspaceResponse struct {
	WorkspaceId uuid.UUID `json:"workspace_id"`
	Generation  uint64    `json:"generation"`
	Loading     bool      `json:"loading"`
}

type WorkspaceResponse struct {
	Id                           uuid.UUID  `json:"id"`
	Name                         string     `json:"name"`
	Description                  string     `json:"description"`
	Instructions                 string     `json:"instructions"`
	IsHome                       bool       `json:"is_home"`
	Sharing                      string     `json:"sharing"`
	ImagePath                    string     `json:"image_path,omitempty"`
	DefaultModel                 *string    `json:"default_model"`
	DefaultPrompt                *string    `json:"default_prompt"`
	DefaultTemperature           *float64   `json:"default_temperature"`
	DefaultContextLength         *int       `json:"default_context_length"`
	IncludeProfileContext        *bool      `json:"include_profile_context"`
	IncludeWorkspaceInstructions *bool      `json:"include_workspace_instructions"`
	EmbeddingsProvider           *string    `json:"embeddings_provider"`
	CreatedAt                    time.Time  `json:"created_at"`
	UpdatedAt                    *time.Time `json:"updated_at"`
}

type AssistantResponse struct {
	Id                           uuid.UUID  `json:"id"`
	FolderId                     *uuid.UUID `json:"folder_id"`
	Name                         string     `json:"name"`
	Description                  string     `json:"description"`
	Model                        string     `json:"model"`
	Prompt                       string     `json:"prompt"`
	Temperature                  float64    `json:"temperature"`
	ContextLength                int        `json:"context_length"`
	IncludeProfileContext        bool       `json:"include_profile_context"`
	IncludeWorkspaceInstructions bool       `json:"include_workspace_instructions"`
	EmbeddingsProvider           string     `json:"embeddings_provider"`
	ImagePath                    string     `json:"image_path"`
	ImageURL                     string     `json:"image_url"`
	CreatedAt                    time.Time  `json:"created_at"`
}

type ChatResponse struct {
	Id            uuid.UUID  `json:"id"`
	FolderId      *uuid.UUID `json:"folder_id"`
	AssistantId   *uuid.UUID `json:"assistant_id"`
	Name          string     `json:"name"`
	Model         string     `json:"model"`
	Prompt        string     `json:"prompt"`
	Temperature   float64    `json:"temperature"`
	ContextLength int        `json:"context_length"`
	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     *time.Time `json:"updated_at"`
}

type FolderResponse struct {
	Id          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Type        string    `json:"type"`
}

type FileResponse struct {
	Id          uuid.UUID  `json:"id"`
	FolderId    *uuid.UUID `json:"folder_id"`
	Name        string     `json:"name"`
	Description string     `json:"description"`
	FilePath    string     `json:"file_path"`
	Size        int64      `json:"size"`
	Tokens      int        `json:"tokens"`
	Type        string     `json:"type"`
}

type PromptResponse struct {
	Id       uuid.UUID  `json:"id"`
	FolderId *uuid.UUID `json:"folder_id"`
	Name     string     `json:"name"`
	Content  string     `json:"content"`
}

type PresetResponse struct {
	Id                           uuid.UUID  `json:"id"`
	FolderId                     *uuid.UUID `json:"folder_id"`
	Name                         string     `json:"name"`
	Description                  string     `json:"description"`
	Model                        string     `json:"model"`
	Prompt                       string     `json:"prompt"`
	Temperature                  float64    `json:"temperature"`
	ContextLength                int        `json:"context_length"`
	IncludeProfileContext        bool       `json:"include_profile_context"`
	IncludeWorkspaceInstructions bool       `json:"include_workspace_instructions"`
	EmbeddingsProvider           string     `json:"embeddings_provider"`
}

type ToolResponse struct {
	Id            uuid.UUID       `json:"id"`
	FolderId      *uuid.UUID      `json:"folder_id"`
	Name          string          `json:"name"`
	Description   string          `json:"description"`
	Url           string          `json:"url"`
	Schema        json.RawMessage `json:"schema,omitempty"`
	CustomHeaders json.RawMessage `json:"custom_headers,omitempty"`
}

// ModelResponse never carries the model's API key.
type ModelResponse struct {
	Id            uuid.UUID  `json:"id"`
	FolderId      *uuid.UUID `json:"folder_id"`
	Name          string     `json:"name"`
	Description   string     `json:"description"`
	ModelId       string     `json:"model_id"`
	BaseUrl       string     `json:"base_url"`
	HasApiKey     bool       `json:"has_api_key"`
	ContextLength int        `json:"context_length"`
}

type CollectionResponse struct {
	Id          uuid.UUID  `json:"id"`
	FolderId    *uuid.UUID `json:"folder_id"`
	Name        string     `json:"name"`
	Description string     `json:"description"`
}

type ChatSettingsResponse struct {
	Model                        string  `json:"model"`
	Prompt                       string  `json:"prompt"`
	Temperature                  float64 `json:"temperature"`
	ContextLength                int     `json:"context_length"`
	IncludeProfileContext        bool    `json:"include_profile_context"`
	IncludeWorkspaceInstructions bool    `json:"include_workspace_instructions"`
	EmbeddingsProvider           string  `json:"embeddings_provider"`
}

type ChatMessageDto struct {
	Id      uuid.UUID `json:"id"`
	Role    string    `json:"role" validate:"required,oneof=user assistant system"`
	Content string    `json:"content"`
}

type ChatAttachmentDto struct {
	Id   uuid.UUID `json:"id"`
	Name string    `json:"name" validate:"required,max=255"`
	Type string    `json:"type" validate:"required,max=100"`
	Url  string    `json:"url,omitempty"`
}

type ChatViewResponse struct {
	SelectedChatId     *uuid.UUID          `json:"selected_chat_id"`
	ChatMessages       []ChatMessageDto    `json:"chat_messages"`
	UserInput          string              `json:"user_input"`
	IsGenerating       bool                `json:"is_generating"`
	FirstTokenReceived bool                `json:"first_token_received"`
	ChatFiles          []ChatAttachmentDto `json:"chat_files"`
	ChatImages         []ChatAttachmentDto `json:"chat_images"`
	NewMessageFiles    []ChatAttachmentDto `json:"new_message_files"`
	NewMessageImages   []ChatAttachmentDto `json:"new_message_images"`
	ShowFilesDisplay   bool                `json:"show_files_display"`
}

type WorkspaceStateResponse struct {
	WorkspaceId     uuid.UUID            `json:"workspace_id"`
	Generation      uint64               `json:"generation"`
	Loading         bool                 `json:"loading"`
	Workspace       *WorkspaceResponse   `json:"workspace"`
	Assistants      []AssistantResponse  `json:"assistants"`
	AssistantImages map[string]string    `json:"assistant_images"`
	Chats           []ChatResponse       `json:"chats"`
	Folders         []FolderResponse     `json:"folders"`
	Files           []FileResponse       `json:"files"`
	Prompts         []PromptResponse     `json:"prompts"`
	Presets         []PresetResponse     `json:"presets"`
	Tools           []ToolResponse       `json:"tools"`
	Models          []ModelResponse      `json:"models"`
	Collections     []CollectionResponse `json:"collections"`
	ChatSettings    ChatSettingsResponse `json:"chat_settings"`
	View            ChatViewResponse     `json:"view"`
}

// UpdateChatViewRequest changes only the fields that are present.
type UpdateChatViewRequest struct {
	SelectedChatId     *string              `json:"selected_chat_id" validate:"omitempty,uuid"`
	ClearSelectedChat  bool                 `json:"clear_selected_chat"`
	UserInput          *string              `json:"user_input" validate:"omitempty,max=100000"`
	ChatMessages       *[]ChatMessageDto    `json:"chat_messages" validate:"omitempty,dive"`
	IsGenerating       *bool                `json:"is_generating"`
	FirstTokenReceived *bool                `json:"first_token_received"`
	NewMessageFiles    *[]ChatAttachmentDto `json:"new_message_files" validate:"omitempty,dive"`
	NewMessageImages   *[]ChatAttachmentDto `json:"new_message_images" validate:"omitempty,dive"`
	ShowFilesDisplay   *bool                `json:"show_files_display"`
}

type WorkspaceSummaryResponse struct {
	Id     uuid.UUID `json:"id"`
	Name   string    `json:"name"`
	IsHome bool      `json:"is_home"`
}
