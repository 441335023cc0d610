package adapter

import (
	provider "github.com/contratai/contratai/internal/provider/models"
)

// Registry holds the fixed set of tools available to the agent. The
// registration order is preserved so the schemas presented to the model
// are identical on every call.
type Registry struct {
	order  []Tool
	byName map[string]Tool
}

// NewRegistry creates a registry from the given tools. Later registrations
// with a duplicate name are ignored; the first one wins.
func NewRegistry(tools ...Tool) *Registry {
	r := &Registry{
		byName: make(map[string]Tool, len(tools)),
	}
	for _, t := range tools {
		if _, exists := r.byName[t.Name()]; exists {
			continue
		}
		r.order = append(r.order, t)
		r.byName[t.Name()] = t
	}
	return r
}

// List returns the tools in registration order.
func (r *Registry) List() []Tool {
	return append([]Tool(nil), r.order...)
}

// Definitions returns the tool definitions in registration order.
func (r *Registry) Definitions() []provider.ToolDefinition {
	defs := make([]provider.ToolDefinition, 0, len(r.order))
	for _, t := range r.order {
		defs = append(defs, t.Definition())
	}
	return defs
}

// Get looks a tool up by name.
func (r *Registry) Get(name string) (Tool, bool) {
	t, ok := r.byName[name]
	return t, ok
}
