//go:build integration

package orchestrator

import (
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/contratai/contratai/internal/catalog"
	orchadapter "github.com/contratai/contratai/internal/orchestrator/adapter"
	"github.com/contratai/contratai/internal/orchestrator/models"
	"github.com/contratai/contratai/internal/pncp"
	provider "github.com/contratai/contratai/internal/provider/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type scriptedSearcher struct {
	lastRequest pncp.NoticesRequest
}

func (s *scriptedSearcher) SearchNotices(ctx context.Context, req pncp.NoticesRequest) (*pncp.SearchResult, error) {
	s.lastRequest = req
	return &pncp.SearchResult{
		Success:          true,
		Fonte:            pncp.SourceName,
		TotalRegistros:   12,
		TotalPaginas:     1,
		PaginasColetadas: 1,
		Editais: []pncp.Notice{
			{NumeroControlePNCP: "001", Objeto: "Aquisição de lanchas escolares"},
		},
	}, nil
}

// Full two-hop flow against the real adapters and catalog: the state name is
// resolved to a sigla, the sigla drives the notice search, and the final
// answer cites the total.
func TestAsk_AmazonasScenario(t *testing.T) {
	t.Parallel()

	cat, err := catalog.New()
	require.NoError(t, err)

	searcher := &scriptedSearcher{}
	registry := orchadapter.NewRegistry(
		orchadapter.NewNoticesAdapter(searcher, "busca editais"),
		orchadapter.NewUFAdapter(cat, "consulta estados"),
	)

	step := 0
	mockProvider := &MockProvider{
		GenerateFunc: func(ctx context.Context, req *provider.GenerateRequest) (*provider.GenerateResponse, error) {
			step++
			switch step {
			case 1:
				return toolCallResponse(models.ToolCall{
					ID:   "call-0",
					Name: "consultar_uf",
					Args: map[string]interface{}{"nome": "Amazonas"},
				}), nil

			case 2:
				last := req.History[len(req.History)-1]
				require.Len(t, last.ToolResults, 1)
				require.True(t, last.ToolResults[0].Succeeded())

				var ufResp orchadapter.UFResponse
				require.NoError(t, json.Unmarshal([]byte(last.ToolResults[0].Content), &ufResp))
				require.Equal(t, 1, ufResp.TotalEncontrados)
				assert.Equal(t, "AM", ufResp.Estados[0].Sigla)

				return toolCallResponse(models.ToolCall{
					ID:   "call-1",
					Name: "consultar_editais_pncp",
					Args: map[string]interface{}{
						"uf":         ufResp.Estados[0].Sigla,
						"data_final": "20991231",
					},
				}), nil

			default:
				last := req.History[len(req.History)-1]
				require.Len(t, last.ToolResults, 1)
				require.True(t, last.ToolResults[0].Succeeded())

				var result pncp.SearchResult
				require.NoError(t, json.Unmarshal([]byte(last.ToolResults[0].Content), &result))
				assert.Equal(t, 12, result.TotalRegistros)

				return textResponse("Encontrei 12 editais abertos no Amazonas."), nil
			}
		},
	}

	orch := New(mockProvider, registry, nil, testOptions())

	answer, err := orch.Ask(context.Background(), "Quais editais estão abertos no Amazonas?")
	require.NoError(t, err)

	assert.Equal(t, 3, step)
	assert.Equal(t, "AM", searcher.lastRequest.UF)
	assert.True(t, strings.Contains(answer, "12"))
}
