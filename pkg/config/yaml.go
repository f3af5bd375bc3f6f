package config

import (
	"io"

	"gopkg.in/yaml.v3"

	"github.com/patternworks/patterns/pkg/errors"
)

// DecodeStrict decodes YAML from a reader and rejects any unknown fields.
// This ensures the YAML only contains recognized configuration keys.
func DecodeStrict(r io.Reader, out interface{}) error {
	decoder := yaml.NewDecoder(r)
	decoder.KnownFields(true)
	if err := decoder.Decode(out); err != nil {
		return errors.Wrap(err, "invalid config")
	}
	return nil
}
