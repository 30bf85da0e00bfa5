package cmd

import (
	"bytes"
	"os"
	"strings"
	"testing"

	"github.com/cristianoliveira/pokedex-cli/internal/colors"
	"github.com/cristianoliveira/pokedex-cli/internal/favorites"
	"github.com/cristianoliveira/pokedex-cli/internal/locale"
	"github.com/cristianoliveira/pokedex-cli/internal/storage"
)

// testApp wires the command dependencies over in-memory storage.
func testApp() *app {
	store := storage.NewMemoryStore()
	favs := favorites.NewStore(store)
	favs.Init()
	return &app{
		store:     store,
		favorites: favs,
		locales:   locale.NewStore(store),
	}
}

func withTestApp(t *testing.T, a *app) {
	t.Helper()
	orig := newAppFunc
	newAppFunc = func() (*app, error) { return a, nil }
	t.Cleanup(func() { newAppFunc = orig })
}

func captureOutput(t *testing.T) (*bytes.Buffer, *bytes.Buffer) {
	t.Helper()
	var out, errOut bytes.Buffer
	colors.SetOutput(&out, &errOut)
	t.Cleanup(func() { colors.SetOutput(os.Stdout, os.Stderr) })
	return &out, &errOut
}

func TestRunFavoriteToggles(t *testing.T) {
	a := testApp()
	withTestApp(t, a)
	out, _ := captureOutput(t)

	runFavorite(favoriteCmd, []string{"25"})
	if !strings.Contains(out.String(), "Added") {
		t.Errorf("expected add confirmation, got %q", out.String())
	}

	fav, err := a.favorites.IsFavorite(25)
	if err != nil || !fav {
		t.Fatalf("expected 25 to be a favourite, got fav=%v err=%v", fav, err)
	}

	out.Reset()
	runFavorite(favoriteCmd, []string{"25"})
	if !strings.Contains(out.String(), "Removed") {
		t.Errorf("expected removal confirmation, got %q", out.String())
	}
}

func TestRunFavoriteRejectsNonNumeric(t *testing.T) {
	a := testApp()
	withTestApp(t, a)
	_, errOut := captureOutput(t)

	runFavorite(favoriteCmd, []string{"pikachu"})
	if !strings.Contains(errOut.String(), "positive") {
		t.Errorf("expected validation error, got %q", errOut.String())
	}
}

func TestRunFavoritesListsIDs(t *testing.T) {
	a := testApp()
	withTestApp(t, a)
	captureOutput(t)

	if _, err := a.favorites.Toggle(150); err != nil {
		t.Fatal(err)
	}
	if _, err := a.favorites.Toggle(1); err != nil {
		t.Fatal(err)
	}

	origWriter := favoritesOutputWriter
	origIDs := favoritesIDs
	defer func() {
		favoritesOutputWriter = origWriter
		favoritesIDs = origIDs
	}()

	var buf bytes.Buffer
	favoritesOutputWriter = &buf
	favoritesIDs = true
	runFavorites(favoritesCmd, nil)

	if got := buf.String(); got != "1\n150\n" {
		t.Errorf("expected sorted id list, got %q", got)
	}
}

func TestRunLocaleShowAndSet(t *testing.T) {
	a := testApp()
	withTestApp(t, a)
	captureOutput(t)

	origWriter := localeOutputWriter
	defer func() { localeOutputWriter = origWriter }()

	var buf bytes.Buffer
	localeOutputWriter = &buf
	runLocale(localeCmd, nil)
	if got := strings.TrimSpace(buf.String()); got != "fr" {
		t.Errorf("expected default locale fr, got %q", got)
	}

	runLocale(localeCmd, []string{"de"})
	if a.locales.Current() != "de" {
		t.Errorf("expected locale de, got %q", a.locales.Current())
	}

	_, errOut := captureOutput(t)
	runLocale(localeCmd, []string{"xx"})
	if !strings.Contains(errOut.String(), "unsupported") {
		t.Errorf("expected unsupported language error, got %q", errOut.String())
	}
}
