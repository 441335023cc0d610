package pncp

import (
	"fmt"
	"regexp"
	"strings"
	"time"
)

// Page size bounds enforced by the consultation API. Requests outside the
// range are rejected upstream with a 400, so we fail them locally instead.
const (
	MinPageSize = 10
	MaxPageSize = 500
)

// DateLayout is the wire format for PNCP date parameters.
const DateLayout = "20060102"

var (
	datePattern  = regexp.MustCompile(`^\d{8}$`)
	ufPattern    = regexp.MustCompile(`^[A-Za-z]{2}$`)
	digitPattern = regexp.MustCompile(`^\d+$`)
)

// NoticesRequest holds the parameters for a procurement notice search.
// Field names follow the tool schema exposed to the model.
type NoticesRequest struct {
	// DataFinal is required, YYYYMMDD, and must not be in the past.
	DataFinal string `mapstructure:"data_final" json:"data_final"`

	// Pagina pins a specific result page. Zero means "aggregate pages
	// automatically up to the configured cap".
	Pagina int `mapstructure:"pagina" json:"pagina,omitempty"`

	// TamanhoPagina is the page size. Zero means the API minimum.
	TamanhoPagina int `mapstructure:"tamanho_pagina" json:"tamanho_pagina,omitempty"`

	UF                  string `mapstructure:"uf" json:"uf,omitempty"`
	CNPJ                string `mapstructure:"cnpj" json:"cnpj,omitempty"`
	CodigoModalidade    int    `mapstructure:"codigo_modalidade" json:"codigo_modalidade,omitempty"`
	CodigoMunicipioIBGE string `mapstructure:"codigo_municipio_ibge" json:"codigo_municipio_ibge,omitempty"`
}

// Validate checks every domain constraint before any network call is made.
// Failures come back as "<field>: <reason>" so the model can correct the
// offending argument and retry.
func (r NoticesRequest) Validate() error {
	if strings.TrimSpace(r.DataFinal) == "" {
		return fmt.Errorf("data_final: parâmetro obrigatório (formato YYYYMMDD)")
	}
	if !datePattern.MatchString(r.DataFinal) {
		return fmt.Errorf("data_final: formato inválido %q, use YYYYMMDD", r.DataFinal)
	}
	final, err := time.Parse(DateLayout, r.DataFinal)
	if err != nil {
		return fmt.Errorf("data_final: data inexistente %q", r.DataFinal)
	}
	today := truncateToDay(time.Now())
	if final.Before(today) {
		return fmt.Errorf("data_final: %s é anterior à data atual (%s)",
			r.DataFinal, today.Format(DateLayout))
	}

	if r.Pagina < 0 {
		return fmt.Errorf("pagina: deve ser >= 1")
	}

	if r.TamanhoPagina != 0 && (r.TamanhoPagina < MinPageSize || r.TamanhoPagina > MaxPageSize) {
		return fmt.Errorf("tamanho_pagina: %d fora do intervalo permitido %d-%d",
			r.TamanhoPagina, MinPageSize, MaxPageSize)
	}

	if r.UF != "" && !ufPattern.MatchString(strings.TrimSpace(r.UF)) {
		return fmt.Errorf("uf: %q não é uma sigla de estado válida (2 letras, ex: AM)", r.UF)
	}

	if r.CNPJ != "" {
		if digits := stripCNPJ(r.CNPJ); len(digits) != 14 || !digitPattern.MatchString(digits) {
			return fmt.Errorf("cnpj: %q deve conter 14 dígitos", r.CNPJ)
		}
	}

	if r.CodigoModalidade < 0 {
		return fmt.Errorf("codigo_modalidade: deve ser um código positivo")
	}

	if r.CodigoMunicipioIBGE != "" && !digitPattern.MatchString(r.CodigoMunicipioIBGE) {
		return fmt.Errorf("codigo_municipio_ibge: %q deve conter apenas dígitos", r.CodigoMunicipioIBGE)
	}

	return nil
}

// normalized returns a copy with the upstream's expected formatting applied:
// uppercased UF, punctuation-free CNPJ, page size clamped to the minimum.
func (r NoticesRequest) normalized() NoticesRequest {
	r.UF = strings.ToUpper(strings.TrimSpace(r.UF))
	r.CNPJ = stripCNPJ(r.CNPJ)
	if r.TamanhoPagina == 0 {
		r.TamanhoPagina = MinPageSize
	}
	return r
}

func stripCNPJ(cnpj string) string {
	replacer := strings.NewReplacer(".", "", "/", "", "-", "", " ", "")
	return replacer.Replace(cnpj)
}

func truncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// Notice is the summarized procurement notice returned to the model.
type Notice struct {
	NumeroControlePNCP        string  `json:"numero_controle_pncp"`
	NumeroCompra              string  `json:"numero_compra,omitempty"`
	Processo                  string  `json:"processo,omitempty"`
	Objeto                    string  `json:"objeto"`
	Modalidade                string  `json:"modalidade"`
	ModoDisputa               string  `json:"modo_disputa,omitempty"`
	Situacao                  string  `json:"situacao,omitempty"`
	ValorEstimado             float64 `json:"valor_estimado,omitempty"`
	ValorHomologado           float64 `json:"valor_homologado,omitempty"`
	SRP                       bool    `json:"srp"`
	DataAberturaProposta      string  `json:"data_abertura_proposta,omitempty"`
	DataEncerramentoProposta  string  `json:"data_encerramento_proposta,omitempty"`
	DataPublicacaoPNCP        string  `json:"data_publicacao_pncp,omitempty"`
	OrgaoEntidade             Orgao   `json:"orgao_entidade"`
	UnidadeOrgao              Unidade `json:"unidade_orgao"`
	AmparoLegal               Amparo  `json:"amparo_legal"`
	TipoInstrumento           string  `json:"tipo_instrumento,omitempty"`
	LinkSistemaOrigem         string  `json:"link_sistema_origem,omitempty"`
	InformacaoComplementar    string  `json:"informacao_complementar,omitempty"`
}

// Orgao identifies the contracting body.
type Orgao struct {
	CNPJ        string `json:"cnpj"`
	RazaoSocial string `json:"razao_social"`
	Poder       string `json:"poder,omitempty"`
	Esfera      string `json:"esfera,omitempty"`
}

// Unidade identifies the contracting unit and its location.
type Unidade struct {
	Nome       string `json:"nome"`
	Municipio  string `json:"municipio"`
	UF         string `json:"uf"`
	CodigoIBGE string `json:"codigo_ibge,omitempty"`
}

// Amparo is the legal basis of the notice.
type Amparo struct {
	Nome      string `json:"nome,omitempty"`
	Descricao string `json:"descricao,omitempty"`
}

// SearchResult is the success envelope appended to the conversation as a
// tool turn.
type SearchResult struct {
	Success          bool     `json:"success"`
	Fonte            string   `json:"fonte"`
	TotalRegistros   int      `json:"total_registros"`
	TotalPaginas     int      `json:"total_paginas"`
	PaginasColetadas int      `json:"paginas_coletadas"`
	Editais          []Notice `json:"editais"`
}

// Upstream wire types. The consultation API uses camelCase and nests the
// organization data.

type apiResponse struct {
	TotalRegistros   int       `json:"totalRegistros"`
	TotalPaginas     int       `json:"totalPaginas"`
	NumeroPagina     int       `json:"numeroPagina"`
	PaginasRestantes int       `json:"paginasRestantes"`
	Data             []apiItem `json:"data"`
}

type apiItem struct {
	NumeroControlePNCP       string  `json:"numeroControlePNCP"`
	NumeroCompra             string  `json:"numeroCompra"`
	Processo                 string  `json:"processo"`
	ObjetoCompra             string  `json:"objetoCompra"`
	ModalidadeNome           string  `json:"modalidadeNome"`
	ModoDisputaNome          string  `json:"modoDisputaNome"`
	SituacaoCompraNome       string  `json:"situacaoCompraNome"`
	ValorTotalEstimado       float64 `json:"valorTotalEstimado"`
	ValorTotalHomologado     float64 `json:"valorTotalHomologado"`
	SRP                      bool    `json:"srp"`
	DataAberturaProposta     string  `json:"dataAberturaProposta"`
	DataEncerramentoProposta string  `json:"dataEncerramentoProposta"`
	DataPublicacaoPncp       string  `json:"dataPublicacaoPncp"`
	OrgaoEntidade            struct {
		CNPJ        string `json:"cnpj"`
		RazaoSocial string `json:"razaoSocial"`
		PoderID     string `json:"poderId"`
		EsferaID    string `json:"esferaId"`
	} `json:"orgaoEntidade"`
	UnidadeOrgao struct {
		NomeUnidade   string `json:"nomeUnidade"`
		MunicipioNome string `json:"municipioNome"`
		UFSigla       string `json:"ufSigla"`
		CodigoIBGE    string `json:"codigoIbge"`
	} `json:"unidadeOrgao"`
	AmparoLegal struct {
		Nome      string `json:"nome"`
		Descricao string `json:"descricao"`
	} `json:"amparoLegal"`
	TipoInstrumentoConvocatorioNome string `json:"tipoInstrumentoConvocatorioNome"`
	LinkSistemaOrigem               string `json:"linkSistemaOrigem"`
	InformacaoComplementar          string `json:"informacaoComplementar"`
}

func (i apiItem) toNotice() Notice {
	return Notice{
		NumeroControlePNCP:       i.NumeroControlePNCP,
		NumeroCompra:             i.NumeroCompra,
		Processo:                 i.Processo,
		Objeto:                   i.ObjetoCompra,
		Modalidade:               i.ModalidadeNome,
		ModoDisputa:              i.ModoDisputaNome,
		Situacao:                 i.SituacaoCompraNome,
		ValorEstimado:            i.ValorTotalEstimado,
		ValorHomologado:          i.ValorTotalHomologado,
		SRP:                      i.SRP,
		DataAberturaProposta:     i.DataAberturaProposta,
		DataEncerramentoProposta: i.DataEncerramentoProposta,
		DataPublicacaoPNCP:       i.DataPublicacaoPncp,
		OrgaoEntidade: Orgao{
			CNPJ:        i.OrgaoEntidade.CNPJ,
			RazaoSocial: i.OrgaoEntidade.RazaoSocial,
			Poder:       i.OrgaoEntidade.PoderID,
			Esfera:      i.OrgaoEntidade.EsferaID,
		},
		UnidadeOrgao: Unidade{
			Nome:       i.UnidadeOrgao.NomeUnidade,
			Municipio:  i.UnidadeOrgao.MunicipioNome,
			UF:         i.UnidadeOrgao.UFSigla,
			CodigoIBGE: i.UnidadeOrgao.CodigoIBGE,
		},
		AmparoLegal: Amparo{
			Nome:      i.AmparoLegal.Nome,
			Descricao: i.AmparoLegal.Descricao,
		},
		TipoInstrumento:        i.TipoInstrumentoConvocatorioNome,
		LinkSistemaOrigem:      i.LinkSistemaOrigem,
		InformacaoComplementar: i.InformacaoComplementar,
	}
}
