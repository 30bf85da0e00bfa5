// Package pokemon defines the canonical data model shared by the clients,
// the listing engine and the stores.
package pokemon

// SupportedLocales lists the locale codes the application can display.
// "en" is the guaranteed fallback; the rest may be absent from any given
// name map.
var SupportedLocales = []string{
	"en", "fr", "de", "es", "it", "ja", "ja-Hrkt", "roomaji", "ko", "zh-Hans", "zh-Hant",
}

// DefaultLocale is the locale used when none is stored.
const DefaultLocale = "fr"

// FallbackLocale is always present in upstream name maps.
const FallbackLocale = "en"

// LocalizedNames maps a locale code to a display name. Keys are not
// guaranteed to cover every supported locale.
type LocalizedNames map[string]string

// Stats holds the base-stat sextuple. Values are non-negative; the nominal
// upper bound of 255 is not enforced.
type Stats struct {
	HP             int `json:"hp"`
	Attack         int `json:"attack"`
	Defense        int `json:"defense"`
	SpecialAttack  int `json:"specialAttack"`
	SpecialDefense int `json:"specialDefense"`
	Speed          int `json:"speed"`
}

// Pokemon is the canonical detail record. It is read-only after
// construction: a fresh fetch replaces it wholesale, it is never mutated
// in place.
type Pokemon struct {
	// ID is the Pokédex number, stable and immutable once fetched.
	ID int `json:"id"`
	// Height in decimeters.
	Height int `json:"height"`
	// Weight in hectograms.
	Weight int `json:"weight"`
	// Image is the resolved image URL after the fallback chain.
	Image string `json:"image"`
	// Types holds type identifiers in game-data order; the first is primary.
	Types []string `json:"types"`
	// Moves holds move identifiers.
	Moves []string `json:"moves"`
	// Names maps locale codes to display names.
	Names LocalizedNames `json:"names"`
	// Stats are the base stats.
	Stats Stats `json:"stats"`
	// EvolutionChainURL points at the evolution-chain resource, if known.
	EvolutionChainURL string `json:"evolutionChainUrl,omitempty"`
}

// Name returns the display name for the given locale, falling back to "en"
// and finally to the string form of the ID.
func (p Pokemon) Name(locale string) string {
	if n, ok := p.Names[locale]; ok && n != "" {
		return n
	}
	if n, ok := p.Names[FallbackLocale]; ok && n != "" {
		return n
	}
	return FormatID(p.ID)
}

// HasType reports whether the record carries the given type identifier.
func (p Pokemon) HasType(typeID string) bool {
	for _, t := range p.Types {
		if t == typeID {
			return true
		}
	}
	return false
}

// HasAllTypes reports whether the record's type set is a superset of the
// given identifiers. An empty argument always matches.
func (p Pokemon) HasAllTypes(typeIDs []string) bool {
	for _, t := range typeIDs {
		if !p.HasType(t) {
			return false
		}
	}
	return true
}

// TypeInfo describes one type for badge rendering and labeling.
type TypeInfo struct {
	// BackgroundColor is a hex or CSS color for the type badge.
	BackgroundColor string `json:"backgroundColor"`
	// Translations maps locale codes to localized labels.
	Translations LocalizedNames `json:"translations"`
}

// Label returns the localized label for the type, falling back to "en" and
// finally to the raw identifier.
func (ti TypeInfo) Label(typeID, locale string) string {
	if l, ok := ti.Translations[locale]; ok && l != "" {
		return l
	}
	if l, ok := ti.Translations[FallbackLocale]; ok && l != "" {
		return l
	}
	return typeID
}

// TypesMap maps canonical type identifiers (lowercase slugs) to their info.
// Loaded once per active locale and replaced, never merged, on locale change.
type TypesMap map[string]TypeInfo

// ListingEntry is a lightweight pre-hydration catalog entry. Names here are
// un-localized slugs.
type ListingEntry struct {
	Name string `json:"name"`
	URL  string `json:"url"`
}
