package entity

import (
	"time"

	"github.com/google/uuid"
)

type Assistant struct {
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
	ImagePath                    string // storage path inside the assistant images bucket
	Sharing                      string
	CreatedAt                    time.Time
	UpdatedAt                    *time.Time
}

func (a *Assistant) HasImage() bool {
	return a != nil && a.ImagePath != ""
}

// AssistantWorkspace is one row of the assistant <-> workspace link table.
type AssistantWorkspace struct {
	UserId      uuid.UUID
	AssistantId uuid.UUID
	WorkspaceId uuid.UUID
	CreatedAt   time.Time
}
