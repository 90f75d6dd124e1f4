package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Workspace struct {
	Id                           uuid.UUID `gorm:"type:uuid;primaryKey"`
	UserId                       uuid.UUID `gorm:"type:uuid;not null;index"`
	Name                         string    `gorm:"type:varchar(200);not null"`
	Description                  string    `gorm:"type:text;not null;default:''"`
	Instructions                 string    `gorm:"type:text;not null;default:''"`
	IsHome                       bool      `gorm:"not null;default:false;index"`
	Sharing                      string    `gorm:"type:varchar(20);not null;default:'private'"`
	ImagePath                    string    `gorm:"type:text;not null;default:''"`
	DefaultModel                 *string   `gorm:"type:varchar(1000)"`
	DefaultPrompt                *string   `gorm:"type:text"`
	DefaultTemperature           *float64
	DefaultContextLength         *int
	IncludeProfileContext        *bool
	IncludeWorkspaceInstructions *bool
	EmbeddingsProvider           *string   `gorm:"type:varchar(20)"`
	CreatedAt                    time.Time `gorm:"autoCreateTime"`
	UpdatedAt                    time.Time `gorm:"autoUpdateTime"`
}

func (Workspace) TableName() string {
	return "workspaces"
}

func (w *Workspace) BeforeCreate(tx *gorm.DB) error {
	assignId(&w.Id)
	return nil
}
