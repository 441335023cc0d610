// Package orchestrator runs the bounded tool-calling agent loop: it feeds
// the conversation to the model, dispatches the tool calls the model
// requests, and stops when the model produces a final answer or the
// iteration cap is reached.
package orchestrator

import (
	"context"
	"fmt"

	"github.com/contratai/contratai/internal/orchestrator/adapter"
	"github.com/contratai/contratai/internal/orchestrator/models"
	provider "github.com/contratai/contratai/internal/provider/models"
	"golang.org/x/sync/errgroup"
)

// runState tracks where a single query is in its lifecycle.
type runState int

const (
	stateAwaitingModel runState = iota
	stateDispatchingTools
	stateDone
	stateExhausted
)

// StatusReporter receives ephemeral progress updates ("thinking",
// "executing"). The chat UI implements it; tests use a no-op.
type StatusReporter interface {
	WriteStatus(phase string, message string)
}

type noopStatus struct{}

func (noopStatus) WriteStatus(string, string) {}

// Options carries the loop configuration.
type Options struct {
	// SystemPrompt is the base instruction, already carrying the temporal
	// context for date arithmetic.
	SystemPrompt string

	// ExhaustionMessage is returned when MaxIterations model invocations
	// pass without a final answer.
	ExhaustionMessage string

	// MaxIterations bounds model invocations per query. This is the only
	// liveness guarantee against a model that keeps requesting tools.
	MaxIterations int

	// HistoryLimit is how many turns are retained between queries.
	// Zero disables retention.
	HistoryLimit int

	Temperature float32
	MaxTokens   int32
}

// Orchestrator manages the agent loop, tool dispatch, and the session's
// conversation history. It is not safe for concurrent use: one query runs
// to completion before the next is accepted, per session.
type Orchestrator struct {
	provider provider.Provider
	registry *adapter.Registry
	status   StatusReporter
	opts     Options

	history []models.Message
}

// New creates an Orchestrator. A nil status reporter is replaced with a
// no-op.
func New(p provider.Provider, registry *adapter.Registry, status StatusReporter, opts Options) *Orchestrator {
	if status == nil {
		status = noopStatus{}
	}
	return &Orchestrator{
		provider: p,
		registry: registry,
		status:   status,
		opts:     opts,
		history:  make([]models.Message, 0),
	}
}

// Ask runs one query through the agent loop and returns the final answer,
// or the exhaustion message when the iteration cap is hit. Tool failures
// never surface as errors here; they are fed back into the conversation.
// An error is returned only when the model itself cannot be invoked.
func (o *Orchestrator) Ask(ctx context.Context, userInput string) (string, error) {
	messages := make([]models.Message, 0, len(o.history)+1)
	messages = append(messages, o.history...)
	messages = append(messages, models.Message{Role: "user", Content: userInput})

	state := stateAwaitingModel
	iterations := 0

	for {
		switch state {
		case stateAwaitingModel:
			if iterations >= o.opts.MaxIterations {
				state = stateExhausted
				continue
			}
			iterations++

			if err := ctx.Err(); err != nil {
				return "", err
			}

			o.status.WriteStatus("thinking", "Consultando o modelo...")
			response, err := o.provider.Generate(ctx, o.buildRequest(messages))
			if err != nil {
				return "", fmt.Errorf("provider error: %w", err)
			}

			switch response.Content.Type {
			case provider.ResponseTypeToolCall:
				if len(response.Content.ToolCalls) == 0 {
					messages = append(messages, models.Message{
						Role:    "system",
						Content: "Error: empty tool call list",
					})
					continue
				}
				messages = append(messages, models.Message{
					Role:      "model",
					ToolCalls: response.Content.ToolCalls,
				})
				state = stateDispatchingTools

			case provider.ResponseTypeText:
				o.commitHistory(userInput, response.Content.Text)
				state = stateDone
				return response.Content.Text, nil

			case provider.ResponseTypeRefusal:
				messages = append(messages, models.Message{
					Role:    "system",
					Content: fmt.Sprintf("Model refused: %s", response.Content.RefusalReason),
				})

			default:
				messages = append(messages, models.Message{
					Role:    "system",
					Content: fmt.Sprintf("Error: unknown response type %v", response.Content.Type),
				})
			}

		case stateDispatchingTools:
			// The last message holds the calls for this iteration. All of
			// them are dispatched and joined before the model is invoked
			// again; a failed result is just another turn fed back.
			calls := messages[len(messages)-1].ToolCalls
			results := o.dispatchAll(ctx, calls)
			messages = append(messages, models.Message{
				Role:        "function",
				ToolResults: results,
			})
			state = stateAwaitingModel

		case stateExhausted:
			return o.opts.ExhaustionMessage, nil
		}
	}
}

// dispatchAll executes every tool call of one iteration concurrently and
// joins before returning. Results land at the index of their request, so
// the order appended to history matches the order the model asked for.
func (o *Orchestrator) dispatchAll(ctx context.Context, calls []models.ToolCall) []models.ToolResult {
	results := make([]models.ToolResult, len(calls))

	eg, egCtx := errgroup.WithContext(ctx)
	for i, call := range calls {
		eg.Go(func() error {
			results[i] = o.executeToolCall(egCtx, call)
			return nil
		})
	}
	// Tool failures are carried inside the results, never as goroutine
	// errors, so Wait only observes context cancellation.
	_ = eg.Wait()

	return results
}

// executeToolCall runs a single tool call and converts every failure mode
// into a ToolResult. Nothing escapes this boundary as a Go error.
func (o *Orchestrator) executeToolCall(ctx context.Context, call models.ToolCall) models.ToolResult {
	tool, exists := o.registry.Get(call.Name)
	if !exists {
		return models.ToolResult{
			ID:    call.ID,
			Name:  call.Name,
			Error: fmt.Sprintf("unknown tool '%s'", call.Name),
		}
	}

	o.status.WriteStatus("executing", fmt.Sprintf("Executando %s...", call.Name))
	result, err := tool.Execute(ctx, call.Args)
	if err != nil {
		return models.ToolResult{
			ID:    call.ID,
			Name:  call.Name,
			Error: err.Error(),
		}
	}

	return models.ToolResult{
		ID:      call.ID,
		Name:    call.Name,
		Content: result,
	}
}

// buildRequest assembles the provider request for the current messages.
func (o *Orchestrator) buildRequest(messages []models.Message) *provider.GenerateRequest {
	temperature := o.opts.Temperature
	maxTokens := o.opts.MaxTokens
	return &provider.GenerateRequest{
		History:           messages,
		SystemInstruction: o.opts.SystemPrompt,
		Config: &provider.GenerateConfig{
			Temperature:     &temperature,
			MaxOutputTokens: &maxTokens,
		},
		Tools: o.registry.Definitions(),
	}
}

// commitHistory records a completed exchange, trimming to the retention
// limit. Exhausted or failed queries are not committed, matching the
// session semantics of the original assistant.
func (o *Orchestrator) commitHistory(userInput, answer string) {
	if o.opts.HistoryLimit == 0 {
		return
	}
	o.history = append(o.history,
		models.Message{Role: "user", Content: userInput},
		models.Message{Role: "assistant", Content: answer},
	)
	if len(o.history) > o.opts.HistoryLimit {
		o.history = o.history[len(o.history)-o.opts.HistoryLimit:]
	}
}

// ClearHistory discards the retained conversation.
func (o *Orchestrator) ClearHistory() {
	o.history = o.history[:0]
}

// History returns a copy of the retained conversation turns.
func (o *Orchestrator) History() []models.Message {
	return append([]models.Message(nil), o.history...)
}
