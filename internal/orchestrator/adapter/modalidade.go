package adapter

import (
	"context"

	"github.com/contratai/contratai/internal/catalog"
	provider "github.com/contratai/contratai/internal/provider/models"
)

// ModalidadeRequest selects contracting modalities.
type ModalidadeRequest struct {
	Nome string `mapstructure:"nome"`
}

// ModalidadeResponse is the envelope returned to the model. When nothing
// matches, the full table comes along so the model can pick without another
// round trip.
type ModalidadeResponse struct {
	Success                bool               `json:"success"`
	TotalEncontrados       int                `json:"total_encontrados,omitempty"`
	Modalidades            []catalog.Modality `json:"modalidades,omitempty"`
	Message                string             `json:"message,omitempty"`
	ModalidadesDisponiveis []catalog.Modality `json:"modalidades_disponiveis,omitempty"`
}

// NewModalidadeAdapter creates the consultar_modalidade lookup tool.
func NewModalidadeAdapter(cat *catalog.Catalog, description string) Tool {
	schema := &provider.ParameterSchema{
		Type: "object",
		Properties: map[string]provider.PropertySchema{
			"nome": {
				Type: "string",
				Description: "Nome completo ou parcial da modalidade (ex: 'Pregão', 'Dispensa'). " +
					"Omita para listar todas as modalidades.",
			},
		},
	}

	return NewBaseAdapter(
		"consultar_modalidade",
		description,
		schema,
		func(ctx context.Context, req ModalidadeRequest) (ModalidadeResponse, error) {
			modalities := cat.Modalities(req.Nome)
			if len(modalities) == 0 {
				return ModalidadeResponse{
					Success:                false,
					Message:                "Nenhuma modalidade encontrada com os critérios especificados",
					ModalidadesDisponiveis: cat.AllModalities(),
				}, nil
			}
			return ModalidadeResponse{
				Success:          true,
				TotalEncontrados: len(modalities),
				Modalidades:      modalities,
			}, nil
		},
	)
}
