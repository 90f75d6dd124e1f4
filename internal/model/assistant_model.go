package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Assistant struct {
	Id                           uuid.UUID  `gorm:"type:uuid;primaryKey"`
	UserId                       uuid.UUID  `gorm:"type:uuid;not null;index"`
	FolderId                     *uuid.UUID `gorm:"type:uuid;index"`
	Name                         string     `gorm:"type:varchar(100);not null"`
	Description                  string     `gorm:"type:varchar(500);not null;default:''"`
	Model                        string     `gorm:"type:varchar(1000);not null"`
	Prompt                       string     `gorm:"type:text;not null;default:''"`
	Temperature                  float64    `gorm:"not null;default:0.5"`
	ContextLength                int        `gorm:"not null;default:4096"`
	IncludeProfileContext        bool       `gorm:"not null;default:true"`
	IncludeWorkspaceInstructions bool       `gorm:"not null;default:true"`
	EmbeddingsProvider           string     `gorm:"type:varchar(20);not null;default:'openai'"`
	ImagePath                    string     `gorm:"type:text;not null;default:''"`
	Sharing                      string     `gorm:"type:varchar(20);not null;default:'private'"`
	CreatedAt                    time.Time  `gorm:"autoCreateTime"`
	UpdatedAt                    time.Time  `gorm:"autoUpdateTime"`
}

func (Assistant) TableName() string {
	return "assistants"
}

func (a *Assistant) BeforeCreate(tx *gorm.DB) error {
	assignId(&a.Id)
	return nil
}

// AssistantWorkspace links assistants to workspaces (many-to-many).
type AssistantWorkspace struct {
	AssistantId uuid.UUID `gorm:"type:uuid;primaryKey"`
	WorkspaceId uuid.UUID `gorm:"type:uuid;primaryKey;index"`
	UserId      uuid.UUID `gorm:"type:uuid;not null;index"`
	CreatedAt   time.Time `gorm:"autoCreateTime"`
}

func (AssistantWorkspace) TableName() string {
	return "assistant_workspaces"
}
