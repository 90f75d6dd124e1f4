package entity

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// Chat and Folder are owned by a workspace through a direct foreign key.
type Chat struct {
	Id                           uuid.UUID
	UserId                       uuid.UUID
	WorkspaceId                  uuid.UUID
	FolderId                     *uuid.UUID
	AssistantId                  *uuid.UUID
	Name                         string
	Model                        string
	Prompt                       string
	Temperature                  float64
	ContextLength                int
	IncludeProfileContext        bool
	IncludeWorkspaceInstructions bool
	EmbeddingsProvider           string
	Sharing                      string
	CreatedAt                    time.Time
	UpdatedAt                    *time.Time
}

type Folder struct {
	Id          uuid.UUID
	UserId      uuid.UUID
	WorkspaceId uuid.UUID
	Name        string
	Description string
	Type        string // chats, files, prompts, presets, tools, models, collections, assistants
	CreatedAt   time.Time
	UpdatedAt   *time.Time
}

// The remaining kinds are linked to workspaces through <kind>_workspaces tables.

type File struct {
	Id          uuid.UUID
	UserId      uuid.UUID
	FolderId    *uuid.UUID
	Name        string
	Description string
	FilePath    string
	Size        int64
	Tokens      int
	Type        string
	Sharing     string
	CreatedAt   time.Time
	UpdatedAt   *time.Time
}

type Prompt struct {
	Id        uuid.UUID
	UserId    uuid.UUID
	FolderId  *uuid.UUID
	Name      string
	Content   string
	Sharing   string
	CreatedAt time.Time
	UpdatedAt *time.Time
}

type Preset struct {
	Id                           uuid.UUID
	UserId                       uuid.UUID
	FolderId                     *uuid.UUID
	Name                         string
	Description                  string
	Model                        string
	Prompt                       string
	Temperature                  float64
	ContextLength                int
	IncludeProfileContext        bool
	IncludeWorkspaceInstructions bool
	EmbeddingsProvider           string
	Sharing                      string
	CreatedAt                    time.Time
	UpdatedAt                    *time.Time
}

type Tool struct {
	Id            uuid.UUID
	UserId        uuid.UUID
	FolderId      *uuid.UUID
	Name          string
	Description   string
	Url           string
	Schema        json.RawMessage
	CustomHeaders json.RawMessage
	Sharing       string
	CreatedAt     time.Time
	UpdatedAt     *time.Time
}

// Model is a user-registered custom model endpoint.
type Model struct {
	Id            uuid.UUID
	UserId        uuid.UUID
	FolderId      *uuid.UUID
	Name          string
	Description   string
	ModelId       string
	BaseUrl       string
	ApiKey        string
	ContextLength int
	Sharing       string
	CreatedAt     time.Time
	UpdatedAt     *time.Time
}

type Collection struct {
	Id          uuid.UUID
	UserId      uuid.UUID
	FolderId    *uuid.UUID
	Name        string
	Description string
	Sharing     string
	CreatedAt   time.Time
	UpdatedAt   *time.Time
}
