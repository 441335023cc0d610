package config

// Config holds all application configuration values.
// Defaults are set in DefaultConfig() and can be overridden via dotfile.
// NOTE: Values in config files override defaults, including explicit zero values.
// Missing keys are left at their default values.
type Config struct {
	Agent AgentConfig `json:"agent"`
	PNCP  PNCPConfig  `json:"pncp"`
}

// AgentConfig controls the model and the agent loop.
type AgentConfig struct {
	Model       string  `json:"model"`       // Default: "gemini-2.5-flash"
	Temperature float32 `json:"temperature"` // Default: 0.7
	MaxTokens   int32   `json:"max_tokens"`  // Default: 2000

	// MaxIterations bounds the number of model invocations per query.
	// This is the only liveness mechanism against a model that keeps
	// requesting tools. Default: 15
	MaxIterations int `json:"max_iterations"`

	// HistoryLimit is the number of past turns retained between queries
	// within a session. Default: 20
	HistoryLimit int `json:"history_limit"`
}

// PNCPConfig controls the PNCP consultation client.
type PNCPConfig struct {
	BaseURL        string `json:"base_url"`        // Default: the public consulta endpoint
	TimeoutSeconds int    `json:"timeout_seconds"` // Default: 30

	// MaxPages caps automatic page aggregation on open-ended searches.
	// Default: 5
	MaxPages int `json:"max_pages"`
}

// DefaultBaseURL is the public PNCP consultation API root.
const DefaultBaseURL = "https://pncp.gov.br/api/consulta"

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		Agent: AgentConfig{
			Model:         "gemini-2.5-flash",
			Temperature:   0.7,
			MaxTokens:     2000,
			MaxIterations: 15,
			HistoryLimit:  20,
		},
		PNCP: PNCPConfig{
			BaseURL:        DefaultBaseURL,
			TimeoutSeconds: 30,
			MaxPages:       5,
		},
	}
}
