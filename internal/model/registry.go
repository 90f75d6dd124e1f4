package model

// All returns every table this service reads, in dependency order, for
// AutoMigrate.
func All() []interface{} {
	return []interface{}{
		&Workspace{},
		&Assistant{},
		&AssistantWorkspace{},
		&Chat{},
		&Folder{},
		&File{},
		&FileWorkspace{},
		&Prompt{},
		&PromptWorkspace{},
		&Preset{},
		&PresetWorkspace{},
		&Tool{},
		&ToolWorkspace{},
		&Model{},
		&ModelWorkspace{},
		&Collection{},
		&CollectionWorkspace{},
	}
}
