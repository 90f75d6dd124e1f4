package entity

import (
	"time"

	"github.com/google/uuid"
)

// Workspace carries the chat defaults a user configured for one scope.
// Nullable defaults stay pointers: nil means "not set", not zero.
type Workspace struct {
	Id                           uuid.UUID
	UserId                       uuid.UUID
	Name                         string
	Description                  string
	Instructions                 string
	IsHome                       bool
	Sharing                      string
	ImagePath                    string
	DefaultModel                 *string
	DefaultPrompt                *string
	DefaultTemperature           *float64
	DefaultContextLength         *int
	IncludeProfileContext        *bool
	IncludeWorkspaceInstructions *bool
	EmbeddingsProvider           *string
	CreatedAt                    time.Time
	UpdatedAt                    *time.Time
}
