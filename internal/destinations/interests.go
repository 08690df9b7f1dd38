package destinations

import (
	"slices"
	"strings"
)

// Interest limits.
const (
	MaxInterests      = 20
	MaxInterestLength = 50
)

// Preset is a built-in interest tag with its display label.
type Preset struct {
	Label string `yaml:"label"`
	Value string `yaml:"value"`
}

var presets = []Preset{
	{Label: "🏛️ History", Value: "history"},
	{Label: "🍜 Food & Dining", Value: "food"},
	{Label: "🎨 Art & Museums", Value: "art"},
	{Label: "🌿 Nature & Parks", Value: "nature"},
	{Label: "🛍️ Shopping", Value: "shopping"},
	{Label: "🎭 Entertainment", Value: "entertainment"},
	{Label: "🏖️ Beaches", Value: "beaches"},
	{Label: "📸 Photography", Value: "photography"},
	{Label: "🏔️ Adventure", Value: "adventure"},
	{Label: "🍷 Nightlife", Value: "nightlife"},
	{Label: "🧘 Wellness", Value: "wellness"},
	{Label: "⛪ Architecture", Value: "architecture"},
	{Label: "🚵 Sports", Value: "sports"},
	{Label: "🎵 Music & Events", Value: "music"},
}

// Presets returns a copy of the built-in interest tags.
func Presets() []Preset {
	return slices.Clone(presets)
}

// Interests is an ordered set of free-text interest tags.
// Tags are opaque: they are only trimmed and de-duplicated.
type Interests []string

// Toggle removes tag if present and appends it otherwise.
func (in Interests) Toggle(tag string) Interests {
	if i := slices.Index(in, tag); i != -1 {
		return slices.Delete(slices.Clone(in), i, i+1)
	}
	return append(slices.Clone(in), tag)
}

// Add appends a custom tag. Blank tags and tags already present are ignored.
func (in Interests) Add(tag string) Interests {
	tag = strings.TrimSpace(tag)
	if tag == "" || slices.Contains(in, tag) {
		return in
	}
	return append(slices.Clone(in), tag)
}

// NormalizeInterests trims each tag, dropping blanks and repeats while
// keeping first-seen order.
func NormalizeInterests(tags []string) Interests {
	var out Interests
	for _, t := range tags {
		out = out.Add(t)
	}
	return out
}
