// Package chatsettings resolves the chat settings a workspace view starts with.
package chatsettings

import (
	"ai-chat-workspace-be/internal/constant"
	"ai-chat-workspace-be/internal/entity"
)

// Overrides are request-time values. Only Model is honoured.
type Overrides struct {
	Model string
}

// Defaults returns the hardcoded last-resort settings.
func Defaults() entity.ChatSettings {
	return entity.ChatSettings{
		Model:                        constant.DefaultChatModel,
		Prompt:                       constant.DefaultChatPrompt,
		Temperature:                  constant.DefaultChatTemperature,
		ContextLength:                constant.DefaultChatContextLength,
		IncludeProfileContext:        constant.DefaultIncludeProfileContext,
		IncludeWorkspaceInstructions: constant.DefaultIncludeWorkspaceInstructions,
		EmbeddingsProvider:           constant.DefaultEmbeddingsProvider,
	}
}

// Merge applies, per field: query override (model only), then the workspace's
// stored value, then defaults. A nil workspace means "not found".
//
// Model treats an empty string as unset at every layer; the other fields only
// fall back when the workspace value is nil.
func Merge(ws *entity.Workspace, overrides Overrides, defaults entity.ChatSettings) entity.ChatSettings {
	settings := defaults

	switch {
	case overrides.Model != "":
		settings.Model = overrides.Model
	case ws != nil && ws.DefaultModel != nil && *ws.DefaultModel != "":
		settings.Model = *ws.DefaultModel
	}

	if ws == nil {
		return settings
	}

	if ws.DefaultPrompt != nil {
		settings.Prompt = *ws.DefaultPrompt
	}
	if ws.DefaultTemperature != nil {
		settings.Temperature = *ws.DefaultTemperature
	}
	if ws.DefaultContextLength != nil {
		settings.ContextLength = *ws.DefaultContextLength
	}
	if ws.IncludeProfileContext != nil {
		settings.IncludeProfileContext = *ws.IncludeProfileContext
	}
	if ws.IncludeWorkspaceInstructions != nil {
		settings.IncludeWorkspaceInstructions = *ws.IncludeWorkspaceInstructions
	}
	if ws.EmbeddingsProvider != nil {
		settings.EmbeddingsProvider = *ws.EmbeddingsProvider
	}

	return settings
}
