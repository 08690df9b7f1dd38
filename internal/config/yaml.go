package config

import (
	"errors"
	"fmt"

	"github.com/goccy/go-yaml"
)

// MaxInputSize limits YAML input to prevent memory exhaustion (1MB).
const MaxInputSize = 1 << 20

// Sentinel errors for YAML decoding.
var (
	ErrEmptyData     = errors.New("empty YAML data")
	ErrNilTarget     = errors.New("nil decode target")
	ErrInputTooLarge = errors.New("YAML input exceeds maximum size")
)

func checkDecodeInput(data []byte, v any) error {
	if len(data) == 0 {
		return ErrEmptyData
	}
	if len(data) > MaxInputSize {
		return fmt.Errorf("%w: %d bytes (max %d)", ErrInputTooLarge, len(data), MaxInputSize)
	}
	if v == nil {
		return ErrNilTarget
	}
	return nil
}

// decodeStrict decodes YAML into v, rejecting unknown fields.
func decodeStrict(data []byte, v any) error {
	if err := checkDecodeInput(data, v); err != nil {
		return err
	}
	return yaml.UnmarshalWithOptions(data, v, yaml.Strict())
}

// Marshal encodes the config as YAML.
func (c *Config) Marshal() ([]byte, error) {
	return yaml.Marshal(c)
}
