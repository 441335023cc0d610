package ui

import (
	"testing"

	uimodels "github.com/contratai/contratai/internal/ui/models"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// plainRenderer returns the content unchanged
type plainRenderer struct{}

func (plainRenderer) Render(content string, width int) (string, error) {
	return content, nil
}

func newTestSpinner() spinner.Model {
	return spinner.New(spinner.WithSpinner(spinner.Dot))
}

func newTestModel(channels *UIChannels) BubbleTeaModel {
	return newBubbleTeaModel(
		channels.InputReq,
		channels.InputResp,
		channels.StatusChan,
		channels.MessageChan,
		channels.CommandChan,
		nil,
		plainRenderer{},
		newTestSpinner,
		"gemini-2.5-flash",
	)
}

func TestUpdate_MessageReceived(t *testing.T) {
	m := newTestModel(NewUIChannels())

	updated, _ := m.Update(messageReceivedMsg("Encontrei 3 editais."))

	model := updated.(BubbleTeaModel)
	require.Len(t, model.state.Messages, 1)
	assert.Equal(t, "assistant", model.state.Messages[0].Role)
	assert.Equal(t, "Encontrei 3 editais.", model.state.Messages[0].Content)
}

func TestUpdate_StatusUpdate(t *testing.T) {
	m := newTestModel(NewUIChannels())

	updated, _ := m.Update(statusUpdateMsg{phase: "thinking", message: "Consultando..."})

	model := updated.(BubbleTeaModel)
	assert.Equal(t, "thinking", model.state.StatusPhase)
	assert.Equal(t, "Consultando...", model.state.StatusMessage)
}

func TestUpdate_InputRequestEnablesSubmit(t *testing.T) {
	m := newTestModel(NewUIChannels())
	assert.False(t, m.state.CanSubmit)

	updated, _ := m.Update(inputRequestMsg{prompt: "Digite uma pergunta..."})

	model := updated.(BubbleTeaModel)
	assert.True(t, model.state.CanSubmit)
}

func TestHandleKeyPress_SubmitSendsInput(t *testing.T) {
	channels := NewUIChannels()
	m := newTestModel(channels)
	m.state.CanSubmit = true
	m.state.Input.SetValue("editais no Amazonas")

	done := make(chan string, 1)
	go func() {
		done <- <-channels.InputResp
	}()

	updated, _ := m.handleKeyPress(tea.KeyMsg{Type: tea.KeyEnter})

	assert.Equal(t, "editais no Amazonas", <-done)
	model := updated.(BubbleTeaModel)
	assert.False(t, model.state.CanSubmit)
	assert.Empty(t, model.state.Input.Value())
	require.Len(t, model.state.Messages, 1)
	assert.Equal(t, "user", model.state.Messages[0].Role)
}

func TestHandleCommand_Limpar(t *testing.T) {
	channels := NewUIChannels()
	m := newTestModel(channels)
	m.state.CanSubmit = true
	m.state.Messages = append(m.state.Messages, uimodels.Message{Role: "user", Content: "antiga"})
	m.state.Input.SetValue("/limpar")

	updated, _ := m.handleKeyPress(tea.KeyMsg{Type: tea.KeyEnter})

	cmd := <-channels.CommandChan
	assert.Equal(t, "clear_history", cmd.Type)

	model := updated.(BubbleTeaModel)
	assert.Empty(t, model.state.Messages)
}

func TestHandleCommand_Ajuda(t *testing.T) {
	m := newTestModel(NewUIChannels())
	m.state.CanSubmit = true
	m.state.Input.SetValue("/ajuda")

	updated, _ := m.handleKeyPress(tea.KeyMsg{Type: tea.KeyEnter})

	model := updated.(BubbleTeaModel)
	require.Len(t, model.state.Messages, 1)
	assert.Contains(t, model.state.Messages[0].Content, "/limpar")
	assert.Contains(t, model.state.Messages[0].Content, "/ajuda")
}
