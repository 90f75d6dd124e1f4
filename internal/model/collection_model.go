package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Collection struct {
	Id          uuid.UUID  `gorm:"type:uuid;primaryKey"`
	UserId      uuid.UUID  `gorm:"type:uuid;not null;index"`
	FolderId    *uuid.UUID `gorm:"type:uuid;index"`
	Name        string     `gorm:"type:varchar(200);not null"`
	Description string     `gorm:"type:varchar(500);not null;default:''"`
	Sharing     string     `gorm:"type:varchar(20);not null;default:'private'"`
	CreatedAt   time.Time  `gorm:"autoCreateTime"`
	UpdatedAt   time.Time  `gorm:"autoUpdateTime"`
}

func (Collection) TableName() string {
	return "collections"
}

func (c *Collection) BeforeCreate(tx *gorm.DB) error {
	assignId(&c.Id)
	return nil
}

type CollectionWorkspace struct {
	CollectionId uuid.UUID `gorm:"type:uuid;primaryKey"`
	WorkspaceId  uuid.UUID `gorm:"type:uuid;primaryKey;index"`
	UserId       uuid.UUID `gorm:"type:uuid;not null;index"`
	CreatedAt    time.Time `gorm:"autoCreateTime"`
}

func (CollectionWorkspace) TableName() string {
	return "collection_workspaces"
}
