// Package destinations holds the built-in destination catalog and interest
// presets offered when planning a trip, with fuzzy suggestion lookup.
package destinations

import (
	"strings"

	"github.com/sahilm/fuzzy"
)

// Suggestion limits.
const (
	// DefaultBrowseLimit is the number of destinations listed for an empty query.
	DefaultBrowseLimit = 8

	// DefaultMatchLimit caps suggestions for a non-empty query.
	DefaultMatchLimit = 6
)

// Destination is one catalog entry.
type Destination struct {
	Name    string `yaml:"name"`
	Flag    string `yaml:"flag"`
	Tagline string `yaml:"tagline"`
}

// catalog is the built-in destination list, in display order.
var catalog = []Destination{
	{Name: "Paris", Flag: "🇫🇷", Tagline: "City of Light"},
	{Name: "Tokyo", Flag: "🇯🇵", Tagline: "Neon & Tradition"},
	{Name: "New York", Flag: "🇺🇸", Tagline: "The Big Apple"},
	{Name: "London", Flag: "🇬🇧", Tagline: "Royal Heritage"},
	{Name: "Rome", Flag: "🇮🇹", Tagline: "Eternal City"},
	{Name: "Dubai", Flag: "🇦🇪", Tagline: "City of Gold"},
	{Name: "Barcelona", Flag: "🇪🇸", Tagline: "Art & Architecture"},
	{Name: "Bangkok", Flag: "🇹🇭", Tagline: "Temple & Street Food"},
	{Name: "Sydney", Flag: "🇦🇺", Tagline: "Harbour City"},
	{Name: "Singapore", Flag: "🇸🇬", Tagline: "Garden City"},
	{Name: "Amsterdam", Flag: "🇳🇱", Tagline: "Canal City"},
	{Name: "Istanbul", Flag: "🇹🇷", Tagline: "Two Continents"},
	{Name: "Bali", Flag: "🇮🇩", Tagline: "Island of Gods"},
	{Name: "Kyoto", Flag: "🇯🇵", Tagline: "Ancient Japan"},
	{Name: "Prague", Flag: "🇨🇿", Tagline: "Golden City"},
	{Name: "Seoul", Flag: "🇰🇷", Tagline: "K-Culture Hub"},
	{Name: "Bangalore", Flag: "🇮🇳", Tagline: "Silicon Valley of India"},
	{Name: "Mumbai", Flag: "🇮🇳", Tagline: "City of Dreams"},
}

// catalogSource adapts the catalog to fuzzy.Source.
type catalogSource []Destination

func (s catalogSource) String(i int) string { return s[i].Name }
func (s catalogSource) Len() int            { return len(s) }

// All returns a copy of the catalog.
func All() []Destination {
	out := make([]Destination, len(catalog))
	copy(out, catalog)
	return out
}

// Lookup finds a destination by name, ignoring case and surrounding space.
func Lookup(name string) (Destination, bool) {
	name = strings.TrimSpace(name)
	for _, d := range catalog {
		if strings.EqualFold(d.Name, name) {
			return d, true
		}
	}
	return Destination{}, false
}

// Suggest returns destinations matching query.
//
// An empty query lists the first DefaultBrowseLimit entries. Otherwise
// case-insensitive substring matches come first in catalog order, followed
// by fuzzy matches ranked by score, capped at limit (DefaultMatchLimit when
// limit <= 0).
func Suggest(query string, limit int) []Destination {
	query = strings.TrimSpace(query)
	if query == "" {
		n := min(DefaultBrowseLimit, len(catalog))
		return append([]Destination(nil), catalog[:n]...)
	}
	if limit <= 0 {
		limit = DefaultMatchLimit
	}

	lowerQuery := strings.ToLower(query)
	seen := make(map[int]bool)
	var out []Destination

	for i, d := range catalog {
		if len(out) == limit {
			return out
		}
		if strings.Contains(strings.ToLower(d.Name), lowerQuery) {
			seen[i] = true
			out = append(out, d)
		}
	}

	for _, m := range fuzzy.FindFrom(query, catalogSource(catalog)) {
		if len(out) == limit {
			break
		}
		if seen[m.Index] {
			continue
		}
		seen[m.Index] = true
		out = append(out, catalog[m.Index])
	}
	return out
}

// Names returns the names of the given destinations.
func Names(ds []Destination) []string {
	names := make([]string, len(ds))
	for i, d := range ds {
		names[i] = d.Name
	}
	return names
}
