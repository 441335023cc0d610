// Package catalog holds the static PNCP reference data: Brazilian states,
// municipalities and contracting modalities. The model resolves user-facing
// names ("Amazonas", "Campinas", "Pregão") into the codes the consultation
// API expects through these lookups, all served from embedded data without
// network access.
package catalog

import (
	"embed"
	"encoding/json"
	"fmt"
	"strings"
)

//go:embed data/estados.json data/municipios.json
var dataFS embed.FS

// Region is an IBGE macro-region.
type Region struct {
	ID    int    `json:"id"`
	Sigla string `json:"sigla"`
	Nome  string `json:"nome"`
}

// State is a Brazilian federative unit.
type State struct {
	ID     int    `json:"id"` // IBGE state code
	Sigla  string `json:"sigla"`
	Nome   string `json:"nome"`
	Regiao Region `json:"regiao"`
}

// UFRef is the state reference carried by a municipality entry.
type UFRef struct {
	ID    int    `json:"id"`
	Sigla string `json:"sigla"`
	Nome  string `json:"nome"`
}

// Municipality is a Brazilian municipality with its IBGE code.
type Municipality struct {
	ID   int    `json:"id"` // IBGE municipality code
	Nome string `json:"nome"`
	UF   UFRef  `json:"uf"`
}

// Modality is a PNCP contracting modality.
type Modality struct {
	Codigo int    `json:"codigo"`
	Nome   string `json:"nome"`
	Tipo   string `json:"tipo"`
}

// MaxMunicipalityResults caps name searches so a broad query ("São") does
// not flood the conversation with records.
const MaxMunicipalityResults = 50

// Catalog serves the embedded reference data.
type Catalog struct {
	states         []State
	municipalities []Municipality
	modalities     []Modality
}

// New parses the embedded data files.
func New() (*Catalog, error) {
	var states []State
	if err := loadJSON("data/estados.json", &states); err != nil {
		return nil, err
	}

	var municipalities []Municipality
	if err := loadJSON("data/municipios.json", &municipalities); err != nil {
		return nil, err
	}

	return &Catalog{
		states:         states,
		municipalities: municipalities,
		modalities:     pncpModalities(),
	}, nil
}

func loadJSON(name string, out any) error {
	data, err := dataFS.ReadFile(name)
	if err != nil {
		return fmt.Errorf("failed to read embedded data file %s: %w", name, err)
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("failed to parse data file %s: %w", name, err)
	}
	return nil
}

// pncpModalities returns the fixed PNCP modality table. Codes 2, 3 and 10
// are reserved/retired upstream and intentionally absent.
func pncpModalities() []Modality {
	return []Modality{
		{Codigo: 1, Nome: "Leilão - Eletrônico", Tipo: "Leilão"},
		{Codigo: 4, Nome: "Concorrência - Eletrônica", Tipo: "Concorrência"},
		{Codigo: 5, Nome: "Concorrência - Presencial", Tipo: "Concorrência"},
		{Codigo: 6, Nome: "Pregão - Eletrônico", Tipo: "Pregão"},
		{Codigo: 7, Nome: "Pregão - Presencial", Tipo: "Pregão"},
		{Codigo: 8, Nome: "Dispensa", Tipo: "Dispensa"},
		{Codigo: 9, Nome: "Inexigibilidade", Tipo: "Inexigibilidade"},
		{Codigo: 11, Nome: "Pré-qualificação", Tipo: "Pré-qualificação"},
		{Codigo: 12, Nome: "Credenciamento", Tipo: "Credenciamento"},
		{Codigo: 13, Nome: "Leilão - Presencial", Tipo: "Leilão"},
	}
}

// StateFilter selects states. The first non-zero criterion wins, in the
// order ID, Sigla, Nome, Regiao; with no criteria every state is returned.
type StateFilter struct {
	ID     int
	Sigla  string
	Nome   string
	Regiao string
}

// States returns the states matching the filter. The result order is the
// IBGE code order of the embedded file, so repeated calls are stable.
func (c *Catalog) States(f StateFilter) []State {
	switch {
	case f.ID != 0:
		return filter(c.states, func(s State) bool { return s.ID == f.ID })
	case f.Sigla != "":
		sigla := strings.ToUpper(strings.TrimSpace(f.Sigla))
		return filter(c.states, func(s State) bool { return s.Sigla == sigla })
	case f.Nome != "":
		nome := normalize(f.Nome)
		return filter(c.states, func(s State) bool {
			return strings.Contains(normalize(s.Nome), nome)
		})
	case f.Regiao != "":
		regiao := normalize(f.Regiao)
		return filter(c.states, func(s State) bool {
			return strings.Contains(normalize(s.Regiao.Nome), regiao)
		})
	default:
		return append([]State(nil), c.states...)
	}
}

// MunicipalityFilter selects municipalities. The first non-zero criterion
// wins, in the order ID, Nome, UFID, UFSigla.
type MunicipalityFilter struct {
	ID      int
	Nome    string
	UFID    int
	UFSigla string
}

// Empty reports whether no criterion was provided.
func (f MunicipalityFilter) Empty() bool {
	return f.ID == 0 && f.Nome == "" && f.UFID == 0 && f.UFSigla == ""
}

// Municipalities returns the municipalities matching the filter.
// Name searches are capped at MaxMunicipalityResults entries.
func (c *Catalog) Municipalities(f MunicipalityFilter) []Municipality {
	switch {
	case f.ID != 0:
		return filter(c.municipalities, func(m Municipality) bool { return m.ID == f.ID })
	case f.Nome != "":
		nome := normalize(f.Nome)
		results := filter(c.municipalities, func(m Municipality) bool {
			return strings.Contains(normalize(m.Nome), nome)
		})
		if len(results) > MaxMunicipalityResults {
			results = results[:MaxMunicipalityResults]
		}
		return results
	case f.UFID != 0:
		return filter(c.municipalities, func(m Municipality) bool { return m.UF.ID == f.UFID })
	case f.UFSigla != "":
		sigla := strings.ToUpper(strings.TrimSpace(f.UFSigla))
		return filter(c.municipalities, func(m Municipality) bool { return m.UF.Sigla == sigla })
	default:
		return nil
	}
}

// Modalities returns the modalities whose name or type matches nome.
// An empty nome returns the full table.
func (c *Catalog) Modalities(nome string) []Modality {
	if strings.TrimSpace(nome) == "" {
		return append([]Modality(nil), c.modalities...)
	}

	query := normalize(nome)
	return filter(c.modalities, func(m Modality) bool {
		if strings.Contains(normalize(m.Nome), query) || strings.Contains(normalize(m.Tipo), query) {
			return true
		}
		// Match any single word of a multi-word query ("pregão presencial")
		for _, word := range strings.Fields(query) {
			if strings.Contains(normalize(m.Nome), word) {
				return true
			}
		}
		return false
	})
}

// AllModalities returns the full modality table.
func (c *Catalog) AllModalities() []Modality {
	return append([]Modality(nil), c.modalities...)
}

// normalize lowers the text and collapses hyphens and runs of whitespace so
// "Pregão - Eletrônico" matches "pregão eletrônico".
func normalize(s string) string {
	s = strings.ReplaceAll(s, "-", " ")
	return strings.Join(strings.Fields(strings.ToLower(s)), " ")
}

func filter[T any](items []T, keep func(T) bool) []T {
	var out []T
	for _, item := range items {
		if keep(item) {
			out = append(out, item)
		}
	}
	return out
}
