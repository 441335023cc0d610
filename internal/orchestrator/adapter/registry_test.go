package adapter

import (
	"context"
	"testing"

	provider "github.com/contratai/contratai/internal/provider/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type namedTool struct {
	name string
}

func (t namedTool) Name() string        { return t.name }
func (t namedTool) Description() string { return "tool " + t.name }
func (t namedTool) Definition() provider.ToolDefinition {
	return provider.ToolDefinition{Name: t.name, Description: "tool " + t.name}
}
func (t namedTool) Execute(ctx context.Context, args map[string]any) (string, error) {
	return t.name, nil
}

func TestRegistry_PreservesOrder(t *testing.T) {
	t.Parallel()

	r := NewRegistry(namedTool{"c"}, namedTool{"a"}, namedTool{"b"})

	defs := r.Definitions()
	require.Len(t, defs, 3)
	assert.Equal(t, "c", defs[0].Name)
	assert.Equal(t, "a", defs[1].Name)
	assert.Equal(t, "b", defs[2].Name)

	// Repeated calls see the same order
	again := r.Definitions()
	assert.Equal(t, defs, again)
}

func TestRegistry_FirstRegistrationWins(t *testing.T) {
	t.Parallel()

	first := namedTool{"dup"}
	r := NewRegistry(first, namedTool{"dup"}, namedTool{"other"})

	assert.Len(t, r.List(), 2)
	got, ok := r.Get("dup")
	require.True(t, ok)
	assert.Equal(t, first, got)
}

func TestRegistry_GetUnknown(t *testing.T) {
	t.Parallel()

	r := NewRegistry(namedTool{"a"})

	_, ok := r.Get("missing")
	assert.False(t, ok)
}
