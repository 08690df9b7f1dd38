package main

import (
	"context"
	"fmt"

	"github.com/goccy/go-yaml"

	itinerary "github.com/alnah/go-itinerary"
)

// runClassifyCmd prints the classified blocks of one itinerary as YAML.
// Without an argument the itinerary is read from stdin.
func runClassifyCmd(ctx context.Context, args []string, env *Environment) error {
	flags, inputs, err := parseClassifyFlags(args, env.Stderr)
	if err != nil {
		return err
	}
	if len(inputs) > 1 {
		return fmt.Errorf("%w: classify takes one input, got %d", ErrUsage, len(inputs))
	}

	s, err := newSession(flags, env)
	if err != nil {
		return err
	}

	input := stdio
	if len(inputs) == 1 {
		input = inputs[0]
	}
	content, err := readInput(input, env.Stdin)
	if err != nil {
		return err
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	blocks := itinerary.Render(string(content))
	s.log.Debug().Str("input", input).Int("blocks", len(blocks)).Msg("classified")

	out, err := marshalBlocks(blocks)
	if err != nil {
		return err
	}
	_, err = env.Stdout.Write(out)
	return err
}

// marshalBlocks encodes blocks as a YAML sequence. Kinds are written by name.
func marshalBlocks(blocks []itinerary.RenderedBlock) ([]byte, error) {
	if blocks == nil {
		blocks = []itinerary.RenderedBlock{}
	}
	out, err := yaml.Marshal(blocks)
	if err != nil {
		return nil, fmt.Errorf("encoding blocks: %w", err)
	}
	return out, nil
}
