package config

import (
	"fmt"
)

// Validate checks config values for correctness.
// Returns an error if any values are invalid.
func (c *Config) Validate() error {
	var errs []string

	// Agent validation
	if c.Agent.Model == "" {
		errs = append(errs, "agent.model must not be empty")
	}
	if c.Agent.Temperature < 0 || c.Agent.Temperature > 2 {
		errs = append(errs, "agent.temperature must be in [0, 2]")
	}
	if c.Agent.MaxTokens < 1 {
		errs = append(errs, "agent.max_tokens must be >= 1")
	}
	if c.Agent.MaxIterations < 1 {
		errs = append(errs, "agent.max_iterations must be >= 1")
	}
	if c.Agent.HistoryLimit < 0 {
		errs = append(errs, "agent.history_limit must be >= 0")
	}

	// PNCP validation
	if c.PNCP.BaseURL == "" {
		errs = append(errs, "pncp.base_url must not be empty")
	}
	if c.PNCP.TimeoutSeconds < 1 {
		errs = append(errs, "pncp.timeout_seconds must be >= 1")
	}
	if c.PNCP.MaxPages < 1 {
		errs = append(errs, "pncp.max_pages must be >= 1")
	}

	if len(errs) > 0 {
		return fmt.Errorf("config validation failed: %v", errs)
	}

	return nil
}
