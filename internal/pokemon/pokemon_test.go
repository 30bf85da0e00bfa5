package pokemon

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestName(t *testing.T) {
	p := Pokemon{
		ID:    25,
		Names: LocalizedNames{"en": "Pikachu", "fr": "Pikachu", "ja": "ピカチュウ"},
	}

	tests := []struct {
		name     string
		locale   string
		expected string
	}{
		{name: "exact locale", locale: "ja", expected: "ピカチュウ"},
		{name: "fallback to en", locale: "ko", expected: "Pikachu"},
		{name: "empty locale falls back", locale: "", expected: "Pikachu"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, p.Name(tt.locale))
		})
	}
}

func TestNameFallsBackToID(t *testing.T) {
	p := Pokemon{ID: 999, Names: LocalizedNames{}}
	assert.Equal(t, "999", p.Name("en"))
}

func TestHasAllTypes(t *testing.T) {
	p := Pokemon{ID: 6, Types: []string{"fire", "flying"}}

	assert.True(t, p.HasAllTypes(nil), "empty set always matches")
	assert.True(t, p.HasAllTypes([]string{"fire"}))
	assert.True(t, p.HasAllTypes([]string{"fire", "flying"}))
	assert.False(t, p.HasAllTypes([]string{"fire", "water"}), "partial match must be excluded")
}

func TestTypeInfoLabel(t *testing.T) {
	ti := TypeInfo{
		BackgroundColor: "#F08030",
		Translations:    LocalizedNames{"en": "Fire", "fr": "Feu"},
	}

	assert.Equal(t, "Feu", ti.Label("fire", "fr"))
	assert.Equal(t, "Fire", ti.Label("fire", "ko"))
	assert.Equal(t, "fire", TypeInfo{}.Label("fire", "fr"), "raw identifier when no translations")
}

func TestNormalizeIDQuery(t *testing.T) {
	tests := []struct {
		query   string
		want    string
		numeric bool
	}{
		{query: "007", want: "7", numeric: true},
		{query: "25", want: "25", numeric: true},
		{query: "000", want: "", numeric: true},
		{query: "pika", want: "", numeric: false},
		{query: "", want: "", numeric: false},
		{query: " 7 ", want: "7", numeric: true},
	}

	for _, tt := range tests {
		t.Run(tt.query, func(t *testing.T) {
			got, numeric := NormalizeIDQuery(tt.query)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.numeric, numeric)
		})
	}
}

func TestMatchesID(t *testing.T) {
	assert.True(t, MatchesID(7, "007"), "leading zeros stripped")
	assert.True(t, MatchesID(7, "7"))
	assert.False(t, MatchesID(7, "70"))
	assert.False(t, MatchesID(7, "squirtle"))
	assert.True(t, MatchesID(7, "000"), "all-zero query behaves as pass-through")
}

func TestIDFromURL(t *testing.T) {
	assert.Equal(t, "7", IDFromURL("https://pokeapi.co/api/v2/pokemon/7/"))
	assert.Equal(t, "132", IDFromURL("https://pokeapi.co/api/v2/pokemon/132"))
	assert.Equal(t, "", IDFromURL(""))
}
