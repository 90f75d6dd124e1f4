package chatsettings

import (
	"testing"

	"ai-chat-workspace-be/internal/entity"

	"github.com/stretchr/testify/assert"
)

func strPtr(s string) *string      { return &s }
func floatPtr(f float64) *float64 { return &f }
func intPtr(i int) *int           { return &i }
func boolPtr(b bool) *bool        { return &b }

func TestMerge_NoWorkspaceNoOverride(t *testing.T) {
	got := Merge(nil, Overrides{}, Defaults())

	assert.Equal(t, entity.ChatSettings{
		Model:                        "gpt-4-1106-preview",
		Prompt:                       "You are a friendly, helpful AI assistant.",
		Temperature:                  0.5,
		ContextLength:                4096,
		IncludeProfileContext:        true,
		IncludeWorkspaceInstructions: true,
		EmbeddingsProvider:           "openai",
	}, got)
}

func TestMerge_Precedence(t *testing.T) {
	full := &entity.Workspace{
		DefaultModel:                 strPtr("gpt-y"),
		DefaultPrompt:                strPtr("Be terse."),
		DefaultTemperature:           floatPtr(0.9),
		DefaultContextLength:         intPtr(8192),
		IncludeProfileContext:        boolPtr(false),
		IncludeWorkspaceInstructions: boolPtr(false),
		EmbeddingsProvider:           strPtr("local"),
	}

	tests := []struct {
		name      string
		workspace *entity.Workspace
		overrides Overrides
		want      entity.ChatSettings
	}{
		{
			name:      "override wins over workspace model",
			workspace: full,
			overrides: Overrides{Model: "gpt-x"},
			want: entity.ChatSettings{
				Model: "gpt-x", Prompt: "Be terse.", Temperature: 0.9, ContextLength: 8192,
				IncludeProfileContext: false, IncludeWorkspaceInstructions: false, EmbeddingsProvider: "local",
			},
		},
		{
			name:      "workspace values used without override",
			workspace: full,
			want: entity.ChatSettings{
				Model: "gpt-y", Prompt: "Be terse.", Temperature: 0.9, ContextLength: 8192,
				IncludeProfileContext: false, IncludeWorkspaceInstructions: false, EmbeddingsProvider: "local",
			},
		},
		{
			name:      "override applies even when workspace is missing",
			workspace: nil,
			overrides: Overrides{Model: "gpt-x"},
			want: func() entity.ChatSettings {
				d := Defaults()
				d.Model = "gpt-x"
				return d
			}(),
		},
		{
			name:      "empty workspace model falls back to default",
			workspace: &entity.Workspace{DefaultModel: strPtr("")},
			want:      Defaults(),
		},
		{
			name:      "empty workspace prompt is kept",
			workspace: &entity.Workspace{DefaultPrompt: strPtr("")},
			want: func() entity.ChatSettings {
				d := Defaults()
				d.Prompt = ""
				return d
			}(),
		},
		{
			name:      "zero temperature is a stored value, not absence",
			workspace: &entity.Workspace{DefaultTemperature: floatPtr(0)},
			want: func() entity.ChatSettings {
				d := Defaults()
				d.Temperature = 0
				return d
			}(),
		},
		{
			name:      "workspace with no defaults",
			workspace: &entity.Workspace{Name: "Home"},
			want:      Defaults(),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Merge(tt.workspace, tt.overrides, Defaults()))
		})
	}
}

func TestMerge_Idempotent(t *testing.T) {
	ws := &entity.Workspace{DefaultModel: strPtr("gpt-y"), DefaultContextLength: intPtr(2048)}
	first := Merge(ws, Overrides{Model: "gpt-x"}, Defaults())
	second := Merge(ws, Overrides{Model: "gpt-x"}, Defaults())

	assert.Equal(t, first, second)
	assert.Equal(t, "gpt-y", *ws.DefaultModel, "merge must not mutate the workspace")
}
