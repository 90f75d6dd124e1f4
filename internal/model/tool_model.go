package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type Tool struct {
	Id            uuid.UUID      `gorm:"type:uuid;primaryKey"`
	UserId        uuid.UUID      `gorm:"type:uuid;not null;index"`
	FolderId      *uuid.UUID     `gorm:"type:uuid;index"`
	Name          string         `gorm:"type:varchar(100);not null"`
	Description   string         `gorm:"type:varchar(500);not null;default:''"`
	Url           string         `gorm:"type:text;not null"`
	Schema        datatypes.JSON `gorm:"type:jsonb"`
	CustomHeaders datatypes.JSON `gorm:"type:jsonb"`
	Sharing       string         `gorm:"type:varchar(20);not null;default:'private'"`
	CreatedAt     time.Time      `gorm:"autoCreateTime"`
	UpdatedAt     time.Time      `gorm:"autoUpdateTime"`
}

func (Tool) TableName() string {
	return "tools"
}

func (t *Tool) BeforeCreate(tx *gorm.DB) error {
	assignId(&t.Id)
	return nil
}

type ToolWorkspace struct {
	ToolId      uuid.UUID `gorm:"type:uuid;primaryKey"`
	WorkspaceId uuid.UUID `gorm:"type:uuid;primaryKey;index"`
	UserId      uuid.UUID `gorm:"type:uuid;not null;index"`
	CreatedAt   time.Time `gorm:"autoCreateTime"`
}

func (ToolWorkspace) TableName() string {
	return "tool_workspaces"
}
