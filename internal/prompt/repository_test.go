package prompt

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRepository_LoadsEmbeddedPrompts(t *testing.T) {
	t.Parallel()

	repo, err := NewRepository()
	require.NoError(t, err)

	assert.NotEmpty(t, repo.SystemPrompt())
	assert.NotEmpty(t, repo.WelcomeMessage())
	assert.NotEmpty(t, repo.ErrorMessage())
	assert.NotEmpty(t, repo.ExhaustionMessage())
}

func TestToolDescriptions_AllToolsCovered(t *testing.T) {
	t.Parallel()

	repo, err := NewRepository()
	require.NoError(t, err)

	keys := []string{
		"pncp_description",
		"uf_description",
		"municipio_description",
		"modalidade_description",
	}
	for _, key := range keys {
		assert.NotEmpty(t, repo.ToolDescription(key), "missing description for %s", key)
	}
}

func TestSystemPromptWithDate(t *testing.T) {
	t.Parallel()

	repo, err := NewRepository()
	require.NoError(t, err)

	now := time.Date(2026, 2, 10, 15, 30, 0, 0, time.UTC)
	prompt := repo.SystemPromptWithDate(now)

	assert.Contains(t, prompt, repo.SystemPrompt())
	assert.Contains(t, prompt, "CONTEXTO TEMPORAL")
	assert.Contains(t, prompt, "10/02/2026")
	assert.Contains(t, prompt, "20260210")
	// Worked example 30 days out
	assert.Contains(t, prompt, "20260312")
}
