package itinerary

import (
	"regexp"
	"strings"
)

// Precompiled line shape patterns. Each pattern runs against the trimmed line.
var (
	// ### Evening
	subHeaderPattern = regexp.MustCompile(`^###\s+(.*)$`)

	// # Day 1, ## Day 1
	sectionHeaderPattern = regexp.MustCompile(`^#{1,2}\s+(.*)$`)

	// - item, * item, • item
	bulletPattern = regexp.MustCompile(`^[-*•]\s+(.*)$`)

	// 1. item, 12) item
	numberedPattern = regexp.MustCompile(`^(\d+)[.)]\s+(.*)$`)

	// **Morning (9:00 AM)**
	timeLabelPattern = regexp.MustCompile(`^\*\*([^*]+)\*\*$`)
)

// lineRule maps one line shape to a block kind.
// match returns the stripped text, the ordinal (if any) and whether the rule applied.
type lineRule struct {
	kind  BlockKind
	match func(line string) (text, ordinal string, ok bool)
}

// lineRules is the classification precedence, first match wins.
// SubHeader stays ahead of SectionHeader.
var lineRules = []lineRule{
	{kind: SubHeader, match: captureRule(subHeaderPattern)},
	{kind: SectionHeader, match: captureRule(sectionHeaderPattern)},
	{kind: Bullet, match: captureRule(bulletPattern)},
	{kind: NumberedItem, match: matchNumbered},
	{kind: TimeLabel, match: captureRule(timeLabelPattern)},
}

// captureRule builds a matcher whose single capture group is the block text.
func captureRule(re *regexp.Regexp) func(string) (string, string, bool) {
	return func(line string) (string, string, bool) {
		m := re.FindStringSubmatch(line)
		if m == nil {
			return "", "", false
		}
		return m[1], "", true
	}
}

// matchNumbered captures the digit run as written and the item text.
func matchNumbered(line string) (string, string, bool) {
	m := numberedPattern.FindStringSubmatch(line)
	if m == nil {
		return "", "", false
	}
	return m[2], m[1], true
}

// Classify splits raw itinerary text into lines and assigns each one a
// BlockKind. Runs of blank lines collapse to a single Blank block.
// Classification is total and never fails. An empty document is one empty
// line and yields a single Blank block.
func Classify(raw string) []Block {
	lines := strings.Split(raw, "\n")
	blocks := make([]Block, 0, len(lines))

	prevBlank := false
	for _, line := range lines {
		b := classifyLine(line)
		if b.Kind == Blank {
			if prevBlank {
				continue
			}
			prevBlank = true
		} else {
			prevBlank = false
		}
		b.Index = len(blocks)
		blocks = append(blocks, b)
	}

	return blocks
}

// classifyLine applies the ordered rule table to a single line.
func classifyLine(line string) Block {
	trimmed := strings.TrimSpace(line)
	if trimmed == "" {
		return Block{Kind: Blank}
	}

	for _, r := range lineRules {
		if text, ordinal, ok := r.match(trimmed); ok {
			return Block{Kind: r.kind, Ordinal: ordinal, Text: text}
		}
	}

	return Block{Kind: Plain, Text: trimmed}
}
