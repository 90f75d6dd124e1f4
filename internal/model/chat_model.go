package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Chat struct {
	Id                           uuid.UUID  `gorm:"type:uuid;primaryKey"`
	UserId                       uuid.UUID  `gorm:"type:uuid;not null;index"`
	WorkspaceId                  uuid.UUID  `gorm:"type:uuid;not null;index"`
	FolderId                     *uuid.UUID `gorm:"type:uuid;index"`
	AssistantId                  *uuid.UUID `gorm:"type:uuid;index"`
	Name                         string     `gorm:"type:varchar(200);not null"`
	Model                        string     `gorm:"type:varchar(1000);not null"`
	Prompt                       string     `gorm:"type:text;not null;default:''"`
	Temperature                  float64    `gorm:"not null;default:0.5"`
	ContextLength                int        `gorm:"not null;default:4096"`
	IncludeProfileContext        bool       `gorm:"not null;default:true"`
	IncludeWorkspaceInstructions bool       `gorm:"not null;default:true"`
	EmbeddingsProvider           string     `gorm:"type:varchar(20);not null;default:'openai'"`
	Sharing                      string     `gorm:"type:varchar(20);not null;default:'private'"`
	CreatedAt                    time.Time  `gorm:"autoCreateTime"`
	UpdatedAt                    time.Time  `gorm:"autoUpdateTime"`
}

func (Chat) TableName() string {
	return "chats"
}

func (c *Chat) BeforeCreate(tx *gorm.DB) error {
	assignId(&c.Id)
	return nil
}

type Folder struct {
	Id          uuid.UUID `gorm:"type:uuid;primaryKey"`
	UserId      uuid.UUID `gorm:"type:uuid;not null;index"`
	WorkspaceId uuid.UUID `gorm:"type:uuid;not null;index"`
	Name        string    `gorm:"type:varchar(200);not null"`
	Description string    `gorm:"type:text;not null;default:''"`
	Type        string    `gorm:"type:varchar(20);not null"`
	CreatedAt   time.Time `gorm:"autoCreateTime"`
	UpdatedAt   time.Time `gorm:"autoUpdateTime"`
}

func (Folder) TableName() string {
	return "folders"
}

func (f *Folder) BeforeCreate(tx *gorm.DB) error {
	assignId(&f.Id)
	return nil
}
