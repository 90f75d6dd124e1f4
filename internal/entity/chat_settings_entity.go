package entity

// ChatSettings is the merged generation config a mounted workspace starts with.
type ChatSettings struct {
	Model                        string
	Prompt                       string
	Temperature                  float64
	ContextLength                int
	IncludeProfileContext        bool
	IncludeWorkspaceInstructions bool
	EmbeddingsProvider           string
}
