package views

import (
	"testing"

	"github.com/contratai/contratai/internal/ui/models"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	"github.com/stretchr/testify/assert"
)

// MockMarkdownRenderer returns the content unchanged
type MockMarkdownRenderer struct{}

func (MockMarkdownRenderer) Render(content string, width int) (string, error) {
	return content, nil
}

func createTestViewport() viewport.Model {
	return viewport.New(80, 20)
}

func createTestSpinner() spinner.Model {
	return spinner.New(spinner.WithSpinner(spinner.Dot))
}

func TestRenderChat_NoMessages(t *testing.T) {
	state := models.State{Messages: []models.Message{}}
	result := RenderChat(state, MockMarkdownRenderer{})
	assert.Contains(t, result, "Nenhuma mensagem ainda")
}

func TestRenderChat_WithMessages(t *testing.T) {
	vp := createTestViewport()
	vp.SetContent("Conteúdo renderizado")

	state := models.State{
		Messages: []models.Message{{Role: "user", Content: "Olá"}},
		Viewport: vp,
	}

	result := RenderChat(state, MockMarkdownRenderer{})
	assert.Contains(t, result, "Conteúdo renderizado")
}

func TestFormatChatContent(t *testing.T) {
	messages := []models.Message{
		{Role: "user", Content: "editais no Amazonas"},
		{Role: "assistant", Content: "Encontrei 3 editais."},
	}

	result := FormatChatContent(messages, 80, MockMarkdownRenderer{})

	assert.Contains(t, result, "Você: editais no Amazonas")
	assert.Contains(t, result, "Encontrei 3 editais.")
}

func TestRenderStatus_Done(t *testing.T) {
	state := models.State{
		StatusPhase:   "done",
		StatusMessage: "Consulta concluída",
	}

	result := RenderStatus(state)

	assert.Contains(t, result, "✔")
	assert.Contains(t, result, "Consulta concluída")
}

func TestRenderStatus_Thinking(t *testing.T) {
	state := models.State{
		StatusPhase:   "thinking",
		StatusMessage: "Consultando o modelo...",
		DotCount:      2,
		Spinner:       createTestSpinner(),
	}

	result := RenderStatus(state)

	assert.Contains(t, result, "Consultando o modelo.....")
}

func TestRenderStatus_Default(t *testing.T) {
	result := RenderStatus(models.State{})
	assert.Contains(t, result, "Pronto")
}

func TestRenderStatus_ShowsModelName(t *testing.T) {
	state := models.State{CurrentModel: "gemini-2.5-flash"}

	result := RenderStatus(state)
	assert.Contains(t, result, "gemini-2.5-flash")
}

func TestRenderRoot_JoinsSections(t *testing.T) {
	state := models.State{
		Input:   textinput.New(),
		Spinner: createTestSpinner(),
	}

	result := RenderRoot(state, MockMarkdownRenderer{})
	assert.Contains(t, result, "Nenhuma mensagem ainda")
	assert.Contains(t, result, "Pronto")
}
