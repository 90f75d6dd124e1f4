package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Model is a user-registered model endpoint (table "models").
type Model struct {
	Id            uuid.UUID  `gorm:"type:uuid;primaryKey"`
	UserId        uuid.UUID  `gorm:"type:uuid;not null;index"`
	FolderId      *uuid.UUID `gorm:"type:uuid;index"`
	Name          string     `gorm:"type:varchar(100);not null"`
	Description   string     `gorm:"type:varchar(500);not null;default:''"`
	ModelId       string     `gorm:"type:varchar(1000);not null"`
	BaseUrl       string     `gorm:"type:text;not null"`
	ApiKey        string     `gorm:"type:text;not null;default:''"`
	ContextLength int        `gorm:"not null;default:4096"`
	Sharing       string     `gorm:"type:varchar(20);not null;default:'private'"`
	CreatedAt     time.Time  `gorm:"autoCreateTime"`
	UpdatedAt     time.Time  `gorm:"autoUpdateTime"`
}

func (Model) TableName() string {
	return "models"
}

func (m *Model) BeforeCreate(tx *gorm.DB) error {
	assignId(&m.Id)
	return nil
}

type ModelWorkspace struct {
	ModelId     uuid.UUID `gorm:"type:uuid;primaryKey"`
	WorkspaceId uuid.UUID `gorm:"type:uuid;primaryKey;index"`
	UserId      uuid.UUID `gorm:"type:uuid;not null;index"`
	CreatedAt   time.Time `gorm:"autoCreateTime"`
}

func (ModelWorkspace) TableName() string {
	return "model_workspaces"
}
