package locale

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cristianoliveira/pokedex-cli/internal/pokemon"
	"github.com/cristianoliveira/pokedex-cli/internal/storage"
)

func TestDefaultWhenNothingStored(t *testing.T) {
	s := NewStore(storage.NewMemoryStore())
	assert.Equal(t, pokemon.DefaultLocale, s.Current())
}

func TestSetPersistsBareString(t *testing.T) {
	backend := storage.NewMemoryStore()
	s := NewStore(backend)

	require.NoError(t, s.Set("de"))
	assert.Equal(t, "de", s.Current())

	data, err := backend.Get(StorageKey)
	require.NoError(t, err)
	assert.Equal(t, "de", string(data), "stored as a bare code, not JSON")
}

func TestPersistedLocaleSurvivesReopen(t *testing.T) {
	backend := storage.NewMemoryStore()
	require.NoError(t, NewStore(backend).Set("ja"))

	assert.Equal(t, "ja", NewStore(backend).Current())
}

func TestUnsupportedLanguageRejected(t *testing.T) {
	s := NewStore(storage.NewMemoryStore())

	err := s.Set("tlh")
	assert.ErrorIs(t, err, ErrUnsupported)
	assert.Equal(t, pokemon.DefaultLocale, s.Current())
}

func TestUnsupportedPersistedValueIgnored(t *testing.T) {
	backend := storage.NewMemoryStore()
	require.NoError(t, backend.Set(StorageKey, []byte("xx")))

	s := NewStore(backend)
	assert.Equal(t, pokemon.DefaultLocale, s.Current())
}

func TestSubscribersNotifiedOnChange(t *testing.T) {
	s := NewStore(storage.NewMemoryStore())

	var got []string
	unsubscribe := s.Subscribe(func(lang string) { got = append(got, lang) })

	require.NoError(t, s.Set("en"))
	require.NoError(t, s.Set("en"), "repeating the current language must not notify")
	require.NoError(t, s.Set("it"))

	unsubscribe()
	require.NoError(t, s.Set("es"))

	assert.Equal(t, []string{"en", "it"}, got)
}

func TestMultipleSubscribers(t *testing.T) {
	s := NewStore(storage.NewMemoryStore())

	first, second := 0, 0
	s.Subscribe(func(string) { first++ })
	s.Subscribe(func(string) { second++ })

	require.NoError(t, s.Set("ko"))
	assert.Equal(t, 1, first)
	assert.Equal(t, 1, second)
}
