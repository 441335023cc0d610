package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newCatalog(t *testing.T) *Catalog {
	t.Helper()
	cat, err := New()
	require.NoError(t, err)
	return cat
}

func TestStates_All(t *testing.T) {
	t.Parallel()

	states := newCatalog(t).States(StateFilter{})
	assert.Len(t, states, 27)
}

func TestStates_ByName(t *testing.T) {
	t.Parallel()

	cat := newCatalog(t)

	states := cat.States(StateFilter{Nome: "Amazonas"})
	require.Len(t, states, 1)
	assert.Equal(t, "AM", states[0].Sigla)
	assert.Equal(t, 13, states[0].ID)
	assert.Equal(t, "Norte", states[0].Regiao.Nome)

	// Case-insensitive partial match
	states = cat.States(StateFilter{Nome: "minas"})
	require.Len(t, states, 1)
	assert.Equal(t, "MG", states[0].Sigla)
}

func TestStates_BySigla(t *testing.T) {
	t.Parallel()

	states := newCatalog(t).States(StateFilter{Sigla: "sp"})
	require.Len(t, states, 1)
	assert.Equal(t, "São Paulo", states[0].Nome)
	assert.Equal(t, 35, states[0].ID)
}

func TestStates_ByRegion(t *testing.T) {
	t.Parallel()

	states := newCatalog(t).States(StateFilter{Regiao: "Nordeste"})
	assert.Len(t, states, 9)
}

func TestStates_FirstCriterionWins(t *testing.T) {
	t.Parallel()

	// ID takes precedence over a conflicting name
	states := newCatalog(t).States(StateFilter{ID: 13, Nome: "São Paulo"})
	require.Len(t, states, 1)
	assert.Equal(t, "AM", states[0].Sigla)
}

func TestMunicipalities_ByID(t *testing.T) {
	t.Parallel()

	results := newCatalog(t).Municipalities(MunicipalityFilter{ID: 1302603})
	require.Len(t, results, 1)
	assert.Equal(t, "Manaus", results[0].Nome)
	assert.Equal(t, "AM", results[0].UF.Sigla)
}

func TestMunicipalities_ByName(t *testing.T) {
	t.Parallel()

	results := newCatalog(t).Municipalities(MunicipalityFilter{Nome: "campinas"})
	require.NotEmpty(t, results)
	assert.Equal(t, 3509502, results[0].ID)
}

func TestMunicipalities_NameSearchCapped(t *testing.T) {
	t.Parallel()

	// Single letter matches broadly; the cap keeps the payload bounded
	results := newCatalog(t).Municipalities(MunicipalityFilter{Nome: "a"})
	assert.LessOrEqual(t, len(results), MaxMunicipalityResults)
}

func TestMunicipalities_EmptyFilter(t *testing.T) {
	t.Parallel()

	assert.Empty(t, newCatalog(t).Municipalities(MunicipalityFilter{}))
	assert.True(t, MunicipalityFilter{}.Empty())
}

func TestModalities_MatchesHyphenatedNames(t *testing.T) {
	t.Parallel()

	cat := newCatalog(t)

	// "pregão eletrônico" must match "Pregão - Eletrônico"
	results := cat.Modalities("pregão eletrônico")
	codes := make([]int, 0, len(results))
	for _, m := range results {
		codes = append(codes, m.Codigo)
	}
	assert.Contains(t, codes, 6)
}

func TestModalities_ByType(t *testing.T) {
	t.Parallel()

	results := newCatalog(t).Modalities("Dispensa")
	require.Len(t, results, 1)
	assert.Equal(t, 8, results[0].Codigo)
}

func TestModalities_EmptyReturnsAll(t *testing.T) {
	t.Parallel()

	cat := newCatalog(t)
	assert.Len(t, cat.Modalities(""), 10)
	assert.Len(t, cat.AllModalities(), 10)
}

func TestModalities_ReservedCodesAbsent(t *testing.T) {
	t.Parallel()

	for _, m := range newCatalog(t).AllModalities() {
		assert.NotContains(t, []int{2, 3, 10}, m.Codigo)
	}
}
