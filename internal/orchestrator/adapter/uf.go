package adapter

import (
	"context"

	"github.com/contratai/contratai/internal/catalog"
	provider "github.com/contratai/contratai/internal/provider/models"
)

// UFRequest selects states from the catalog.
type UFRequest struct {
	ID         int    `mapstructure:"id"`
	Sigla      string `mapstructure:"sigla"`
	Nome       string `mapstructure:"nome"`
	RegiaoNome string `mapstructure:"regiao_nome"`
}

// UFResponse is the envelope returned to the model.
type UFResponse struct {
	Success          bool            `json:"success"`
	TotalEncontrados int             `json:"total_encontrados"`
	Estados          []catalog.State `json:"estados,omitempty"`
	Message          string          `json:"message,omitempty"`
}

// NewUFAdapter creates the consultar_uf lookup tool.
func NewUFAdapter(cat *catalog.Catalog, description string) Tool {
	schema := &provider.ParameterSchema{
		Type: "object",
		Properties: map[string]provider.PropertySchema{
			"id": {
				Type:        "integer",
				Description: "Código IBGE do estado (ex: 35 para São Paulo, 13 para Amazonas).",
			},
			"sigla": {
				Type:        "string",
				Description: "Sigla do estado (ex: SP, RJ, AM).",
			},
			"nome": {
				Type:        "string",
				Description: "Nome completo ou parcial do estado (ex: 'Amazonas', 'Minas').",
			},
			"regiao_nome": {
				Type:        "string",
				Description: "Nome da região para listar estados (Norte, Nordeste, Sudeste, Sul, Centro-Oeste).",
			},
		},
	}

	return NewBaseAdapter(
		"consultar_uf",
		description,
		schema,
		func(ctx context.Context, req UFRequest) (UFResponse, error) {
			states := cat.States(catalog.StateFilter{
				ID:     req.ID,
				Sigla:  req.Sigla,
				Nome:   req.Nome,
				Regiao: req.RegiaoNome,
			})
			if len(states) == 0 {
				return UFResponse{
					Success: false,
					Message: "Nenhum estado encontrado com os critérios especificados",
				}, nil
			}
			return UFResponse{
				Success:          true,
				TotalEncontrados: len(states),
				Estados:          states,
			}, nil
		},
	)
}
