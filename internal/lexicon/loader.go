package lexicon

import (
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// LoadFile reads a YAML lexicon override from path and merges it over the
// built-in tables. Tables absent from the file keep their defaults.
func LoadFile(path string) (*Lexicon, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("lexicon: open %q: %w", path, err)
	}
	defer f.Close()

	lex, err := LoadFromReader(f)
	if err != nil {
		return nil, fmt.Errorf("lexicon: parse %q: %w", path, err)
	}
	return lex, nil
}

// LoadFromReader decodes a YAML override from r, merges it over Default and
// validates the result.
func LoadFromReader(r io.Reader) (*Lexicon, error) {
	override := &Lexicon{}
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(override); err != nil && err != io.EOF {
		return nil, fmt.Errorf("lexicon: decode yaml: %w", err)
	}
	lex := Default().Merge(override)
	if err := lex.Validate(); err != nil {
		return nil, err
	}
	return lex, nil
}
