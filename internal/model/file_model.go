package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type File struct {
	Id          uuid.UUID  `gorm:"type:uuid;primaryKey"`
	UserId      uuid.UUID  `gorm:"type:uuid;not null;index"`
	FolderId    *uuid.UUID `gorm:"type:uuid;index"`
	Name        string     `gorm:"type:varchar(100);not null"`
	Description string     `gorm:"type:varchar(500);not null;default:''"`
	FilePath    string     `gorm:"type:text;not null"`
	Size        int64      `gorm:"not null;default:0"`
	Tokens      int        `gorm:"not null;default:0"`
	Type        string     `gorm:"type:varchar(100);not null"`
	Sharing     string     `gorm:"type:varchar(20);not null;default:'private'"`
	CreatedAt   time.Time  `gorm:"autoCreateTime"`
	UpdatedAt   time.Time  `gorm:"autoUpdateTime"`
}

func (File) TableName() string {
	return "files"
}

func (f *File) BeforeCreate(tx *gorm.DB) error {
	assignId(&f.Id)
	return nil
}

type FileWorkspace struct {
	FileId      uuid.UUID `gorm:"type:uuid;primaryKey"`
	WorkspaceId uuid.UUID `gorm:"type:uuid;primaryKey;index"`
	UserId      uuid.UUID `gorm:"type:uuid;not null;index"`
	CreatedAt   time.Time `gorm:"autoCreateTime"`
}

func (FileWorkspace) TableName() string {
	return "file_workspaces"
}
