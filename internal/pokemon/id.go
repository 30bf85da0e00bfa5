package pokemon

import (
	"strconv"
	"strings"
)

// FormatID returns the string form of an identifier.
func FormatID(id int) string {
	return strconv.Itoa(id)
}

// NormalizeIDQuery strips leading zeros from a query so "007" compares
// equal to identifier 7. Returns the normalized digits and true when the
// query is purely numeric (after stripping), or "" and false otherwise.
// A query of all zeros normalizes to the empty string and still reports
// numeric.
func NormalizeIDQuery(query string) (string, bool) {
	q := strings.TrimSpace(query)
	if q == "" {
		return "", false
	}
	for _, r := range q {
		if r < '0' || r > '9' {
			return "", false
		}
	}
	return strings.TrimLeft(q, "0"), true
}

// MatchesID reports whether a numeric query (leading zeros stripped)
// equals the identifier. An all-zero query matches nothing but is treated
// as a pass-through, mirroring an empty query.
func MatchesID(id int, query string) bool {
	qNum, ok := NormalizeIDQuery(query)
	if !ok {
		return false
	}
	if qNum == "" {
		return true
	}
	n, err := strconv.Atoi(qNum)
	if err != nil {
		return false
	}
	return n == id
}

// IDFromURL extracts the trailing numeric path segment of a resource URL,
// e.g. "https://pokeapi.co/api/v2/pokemon/7/" yields "7". Returns the raw
// last segment; callers compare it as a string.
func IDFromURL(url string) string {
	parts := strings.Split(strings.TrimRight(url, "/"), "/")
	if len(parts) == 0 {
		return ""
	}
	return parts[len(parts)-1]
}
