package adapter

import (
	"context"
	"errors"

	"github.com/contratai/contratai/internal/catalog"
	provider "github.com/contratai/contratai/internal/provider/models"
)

// MunicipioRequest selects municipalities from the catalog.
type MunicipioRequest struct {
	ID      int    `mapstructure:"id"`
	Nome    string `mapstructure:"nome"`
	UFID    int    `mapstructure:"uf_id"`
	UFSigla string `mapstructure:"uf_sigla"`
}

// Validate requires at least one search criterion: an unfiltered listing of
// every municipality would flood the conversation.
func (r MunicipioRequest) Validate() error {
	if r.ID == 0 && r.Nome == "" && r.UFID == 0 && r.UFSigla == "" {
		return errors.New("criterio: forneça ao menos um critério de busca (id, nome, uf_id ou uf_sigla)")
	}
	return nil
}

// MunicipioResponse is the envelope returned to the model.
type MunicipioResponse struct {
	Success          bool                   `json:"success"`
	TotalEncontrados int                    `json:"total_encontrados"`
	Municipios       []catalog.Municipality `json:"municipios,omitempty"`
	Message          string                 `json:"message,omitempty"`
}

// NewMunicipioAdapter creates the consultar_municipio lookup tool.
func NewMunicipioAdapter(cat *catalog.Catalog, description string) Tool {
	schema := &provider.ParameterSchema{
		Type: "object",
		Properties: map[string]provider.PropertySchema{
			"id": {
				Type:        "integer",
				Description: "Código IBGE do município (ex: 3550308 para São Paulo/SP).",
			},
			"nome": {
				Type:        "string",
				Description: "Nome completo ou parcial do município (ex: 'Campinas', 'Rio'). Retorna até 50 resultados.",
			},
			"uf_id": {
				Type:        "integer",
				Description: "Código IBGE do estado para listar seus municípios.",
			},
			"uf_sigla": {
				Type:        "string",
				Description: "Sigla do estado para listar seus municípios (ex: 'SP', 'AM').",
			},
		},
	}

	return NewBaseAdapter(
		"consultar_municipio",
		description,
		schema,
		func(ctx context.Context, req MunicipioRequest) (MunicipioResponse, error) {
			municipalities := cat.Municipalities(catalog.MunicipalityFilter{
				ID:      req.ID,
				Nome:    req.Nome,
				UFID:    req.UFID,
				UFSigla: req.UFSigla,
			})
			if len(municipalities) == 0 {
				return MunicipioResponse{
					Success: false,
					Message: "Nenhum município encontrado com os critérios especificados",
				}, nil
			}
			return MunicipioResponse{
				Success:          true,
				TotalEncontrados: len(municipalities),
				Municipios:       municipalities,
			}, nil
		},
	)
}
