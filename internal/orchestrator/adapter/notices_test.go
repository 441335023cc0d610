package adapter

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/contratai/contratai/internal/pncp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// MockSearcher implements NoticesSearcher for testing
type MockSearcher struct {
	Called      bool
	LastRequest pncp.NoticesRequest
	SearchFunc  func(ctx context.Context, req pncp.NoticesRequest) (*pncp.SearchResult, error)
}

func (m *MockSearcher) SearchNotices(ctx context.Context, req pncp.NoticesRequest) (*pncp.SearchResult, error) {
	m.Called = true
	m.LastRequest = req
	if m.SearchFunc != nil {
		return m.SearchFunc(ctx, req)
	}
	return &pncp.SearchResult{Success: true, Fonte: pncp.SourceName, Editais: []pncp.Notice{}}, nil
}

func TestNoticesAdapter_Definition(t *testing.T) {
	t.Parallel()

	tool := NewNoticesAdapter(&MockSearcher{}, "Busca editais no PNCP")

	assert.Equal(t, "consultar_editais_pncp", tool.Name())
	def := tool.Definition()
	assert.Equal(t, "consultar_editais_pncp", def.Name)
	assert.Equal(t, "Busca editais no PNCP", def.Description)
	require.NotNil(t, def.Parameters)
	assert.Contains(t, def.Parameters.Properties, "data_final")
	assert.Contains(t, def.Parameters.Properties, "uf")
	assert.Equal(t, []string{"data_final"}, def.Parameters.Required)
}

func TestNoticesAdapter_MissingDataFinal(t *testing.T) {
	t.Parallel()

	searcher := &MockSearcher{}
	tool := NewNoticesAdapter(searcher, "desc")

	_, err := tool.Execute(context.Background(), map[string]any{"uf": "AM"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "data_final")
	assert.False(t, searcher.Called, "validation failure must not reach the client")
}

func TestNoticesAdapter_PageSizeOutOfRange(t *testing.T) {
	t.Parallel()

	searcher := &MockSearcher{}
	tool := NewNoticesAdapter(searcher, "desc")

	_, err := tool.Execute(context.Background(), map[string]any{
		"data_final":     "20991231",
		"tamanho_pagina": float64(5), // JSON numbers arrive as float64
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "tamanho_pagina")
	assert.Contains(t, err.Error(), "10-500")
	assert.False(t, searcher.Called)
}

func TestNoticesAdapter_PastDate(t *testing.T) {
	t.Parallel()

	searcher := &MockSearcher{}
	tool := NewNoticesAdapter(searcher, "desc")

	_, err := tool.Execute(context.Background(), map[string]any{"data_final": "20200101"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "anterior à data atual")
	assert.Contains(t, err.Error(), time.Now().Format(pncp.DateLayout))
	assert.False(t, searcher.Called)
}

func TestNoticesAdapter_Success(t *testing.T) {
	t.Parallel()

	searcher := &MockSearcher{
		SearchFunc: func(ctx context.Context, req pncp.NoticesRequest) (*pncp.SearchResult, error) {
			return &pncp.SearchResult{
				Success:          true,
				Fonte:            pncp.SourceName,
				TotalRegistros:   7,
				TotalPaginas:     1,
				PaginasColetadas: 1,
				Editais: []pncp.Notice{
					{NumeroControlePNCP: "001", Objeto: "Aquisição de merenda escolar"},
				},
			}, nil
		},
	}
	tool := NewNoticesAdapter(searcher, "desc")

	result, err := tool.Execute(context.Background(), map[string]any{
		"data_final":        "20991231",
		"uf":                "AM",
		"codigo_modalidade": float64(6),
	})
	require.NoError(t, err)

	assert.Equal(t, "AM", searcher.LastRequest.UF)
	assert.Equal(t, 6, searcher.LastRequest.CodigoModalidade)

	var envelope pncp.SearchResult
	require.NoError(t, json.Unmarshal([]byte(result), &envelope))
	assert.True(t, envelope.Success)
	assert.Equal(t, pncp.SourceName, envelope.Fonte)
	assert.Equal(t, 7, envelope.TotalRegistros)
	require.Len(t, envelope.Editais, 1)
	assert.Equal(t, "Aquisição de merenda escolar", envelope.Editais[0].Objeto)
}
