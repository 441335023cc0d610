package adapter

import (
	"context"

	"github.com/contratai/contratai/internal/pncp"
	provider "github.com/contratai/contratai/internal/provider/models"
)

// NoticesSearcher is the slice of the PNCP client the adapter needs.
type NoticesSearcher interface {
	SearchNotices(ctx context.Context, req pncp.NoticesRequest) (*pncp.SearchResult, error)
}

// NewNoticesAdapter creates the consultar_editais_pncp tool, the main
// consultation over the PNCP open-proposal endpoint.
func NewNoticesAdapter(client NoticesSearcher, description string) Tool {
	schema := &provider.ParameterSchema{
		Type: "object",
		Properties: map[string]provider.PropertySchema{
			"data_final": {
				Type: "string",
				Description: "Data final da busca no formato YYYYMMDD (ex: 20260220). " +
					"Deve ser maior ou igual à data atual.",
			},
			"pagina": {
				Type: "integer",
				Description: "Número da página específica. Omita para agregar " +
					"páginas automaticamente.",
			},
			"tamanho_pagina": {
				Type:        "integer",
				Description: "Registros por página (mínimo: 10, máximo: 500).",
			},
			"uf": {
				Type:        "string",
				Description: "Sigla do estado para filtrar (ex: SP, RJ, AM).",
			},
			"cnpj": {
				Type:        "string",
				Description: "CNPJ do órgão/entidade (14 dígitos, com ou sem formatação).",
			},
			"codigo_modalidade": {
				Type:        "integer",
				Description: "Código da modalidade de contratação (ex: 6 para Pregão Eletrônico).",
			},
			"codigo_municipio_ibge": {
				Type:        "string",
				Description: "Código IBGE do município para filtrar.",
			},
		},
		Required: []string{"data_final"},
	}

	return NewBaseAdapter(
		"consultar_editais_pncp",
		description,
		schema,
		func(ctx context.Context, req pncp.NoticesRequest) (*pncp.SearchResult, error) {
			return client.SearchNotices(ctx, req)
		},
	)
}
