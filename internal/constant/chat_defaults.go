package constant

// Last-resort chat defaults, used when neither the request nor the workspace
// supplies a value.
const (
	DefaultChatModel                    = "gpt-4-1106-preview"
	DefaultChatPrompt                   = "You are a friendly, helpful AI assistant."
	DefaultChatTemperature              = 0.5
	DefaultChatContextLength            = 4096
	DefaultIncludeProfileContext        = true
	DefaultIncludeWorkspaceInstructions = true
	DefaultEmbeddingsProvider           = "openai"
)

// ModelOverrideQueryParam is the only query parameter read at mount time.
const ModelOverrideQueryParam = "model"
