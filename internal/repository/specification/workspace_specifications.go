package specification

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type UserOwnedBy struct {
	UserID uuid.UUID
}

func (s UserOwnedBy) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("user_id = ?", s.UserID)
}

type IsHome struct{}

func (s IsHome) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("is_home = ?", true)
}

// ByWorkspaceID matches rows that carry a workspace_id column (chats,
// folders, link tables).
type ByWorkspaceID struct {
	WorkspaceID uuid.UUID
}

func (s ByWorkspaceID) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("workspace_id = ?", s.WorkspaceID)
}

// LinkedToWorkspace matches rows whose id appears in a <kind>_workspaces
// link table for the given workspace.
type LinkedToWorkspace struct {
	LinkTable   string
	Column      string
	WorkspaceID uuid.UUID
}

func (s LinkedToWorkspace) Apply(db *gorm.DB) *gorm.DB {
	linked := db.Session(&gorm.Session{NewDB: true}).
		Table(s.LinkTable).
		Select(s.Column).
		Where("workspace_id = ?", s.WorkspaceID)
	return db.Where("id IN (?)", linked)
}
