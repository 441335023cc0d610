package models

// Message represents a single turn in the conversation history
type Message struct {
	Role    string // "user", "assistant", "system", "model", "function"
	Content string

	// For model messages with tool calls
	ToolCalls []ToolCall

	// For function messages with tool results
	ToolResults []ToolResult
}

// ToolCall represents a structured tool invocation requested by the model.
type ToolCall struct {
	ID   string
	Name string
	Args map[string]interface{}
}

// ToolResult represents the outcome of a tool dispatch. Exactly one of
// Content or Error is populated: validation failures, unknown tools and
// remote failures all land in Error so the model can self-correct.
type ToolResult struct {
	ID      string // Matches ToolCall.ID
	Name    string // Tool name
	Content string // JSON result envelope on success
	Error   string // Failure reason, "<field>: <reason>" for validation
}

// Succeeded reports whether the dispatch produced a usable payload.
func (r ToolResult) Succeeded() bool {
	return r.Error == ""
}
