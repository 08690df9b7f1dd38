package main

import (
	"fmt"
	"strings"

	"github.com/alnah/go-itinerary/internal/destinations"
)

// runSuggestCmd lists destinations matching a query, or interest presets.
func runSuggestCmd(args []string, env *Environment) error {
	flags, query, err := parseSuggestFlags(args, env.Stderr)
	if err != nil {
		return err
	}
	if flags.limit < 0 {
		return fmt.Errorf("%w: --limit must not be negative, got %d", ErrUsage, flags.limit)
	}

	s, err := newSession(&flags.common, env)
	if err != nil {
		return err
	}

	if flags.interests {
		for _, p := range destinations.Presets() {
			fmt.Fprintf(env.Stdout, "%-14s %s\n", p.Value, p.Label)
		}
		return nil
	}

	q := strings.Join(query, " ")
	matches := destinations.Suggest(q, flags.limit)
	s.log.Debug().Str("query", q).Int("matches", len(matches)).Msg("suggest")

	if len(matches) == 0 {
		if !flags.common.quiet {
			fmt.Fprintf(env.Stderr, "No destinations match %q\n", q)
		}
		return nil
	}
	for _, d := range matches {
		fmt.Fprintf(env.Stdout, "%s %-10s %s\n", d.Flag, d.Name, d.Tagline)
	}
	return nil
}
