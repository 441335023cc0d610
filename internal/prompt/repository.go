// Package prompt ships the static prompt texts used by the agent.
// Prompts live in JSON files embedded at build time so deployments
// cannot drift from the texts the tests exercise.
package prompt

import (
	"embed"
	"encoding/json"
	"fmt"
	"time"
)

//go:embed agent_prompts.json tool_prompts.json
var promptFS embed.FS

// Repository provides access to the agent and tool prompt texts.
type Repository struct {
	agent map[string]string
	tools map[string]string
}

// NewRepository parses the embedded prompt files.
func NewRepository() (*Repository, error) {
	agent, err := loadFile("agent_prompts.json")
	if err != nil {
		return nil, err
	}
	tools, err := loadFile("tool_prompts.json")
	if err != nil {
		return nil, err
	}
	return &Repository{agent: agent, tools: tools}, nil
}

func loadFile(name string) (map[string]string, error) {
	data, err := promptFS.ReadFile(name)
	if err != nil {
		return nil, fmt.Errorf("failed to read embedded prompt file %s: %w", name, err)
	}
	var prompts map[string]string
	if err := json.Unmarshal(data, &prompts); err != nil {
		return nil, fmt.Errorf("failed to parse prompt file %s: %w", name, err)
	}
	return prompts, nil
}

// SystemPrompt returns the base system prompt.
func (r *Repository) SystemPrompt() string {
	return r.agent["system_prompt"]
}

// WelcomeMessage returns the greeting shown when a session starts.
func (r *Repository) WelcomeMessage() string {
	if msg, ok := r.agent["welcome_message"]; ok {
		return msg
	}
	return "Olá! Como posso ajudá-lo?"
}

// ErrorMessage returns the friendly text for unrecoverable processing errors.
func (r *Repository) ErrorMessage() string {
	if msg, ok := r.agent["error_message"]; ok {
		return msg
	}
	return "Desculpe, ocorreu um erro."
}

// ExhaustionMessage returns the text emitted when the agent loop hits its
// iteration bound without producing a final answer.
func (r *Repository) ExhaustionMessage() string {
	if msg, ok := r.agent["exhaustion_message"]; ok {
		return msg
	}
	return r.ErrorMessage()
}

// ToolDescription returns the registered description for a tool prompt key.
func (r *Repository) ToolDescription(key string) string {
	return r.tools[key]
}

// SystemPromptWithDate appends the temporal context the model needs to
// compute PNCP date parameters. The API requires dataFinal >= today in
// YYYYMMDD, and users phrase dates relatively ("próximo mês").
func (r *Repository) SystemPromptWithDate(now time.Time) string {
	in30 := now.AddDate(0, 0, 30)
	return fmt.Sprintf(
		"%s\n\nCONTEXTO TEMPORAL:\n"+
			"Data atual: %s (formato API: %s)\n"+
			"Ao consultar editais no PNCP, a data final (data_final) DEVE ser maior ou igual à data atual.\n"+
			"Para datas relativas, calcule no formato YYYYMMDD a partir de hoje. "+
			"Exemplo: 'daqui 30 dias' = %s",
		r.SystemPrompt(),
		now.Format("02/01/2006"),
		now.Format("20060102"),
		in30.Format("20060102"),
	)
}
