// Package preset loads named mask definitions from YAML.
//
// A preset document looks like:
//
//	presets:
//	  - name: hex-color
//	    pattern: '\#hhhhhh'
//	    format_chars:
//	      h: {match: "[0-9a-fA-F]", transform: lower}
//
// A builtin set is embedded in the package.
package preset

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/iw2rmb/inputmask/internal/grapheme"
	"github.com/iw2rmb/inputmask/mask"
	"github.com/iw2rmb/inputmask/pattern"
)

//go:embed builtin.yaml
var builtinYAML []byte

// ErrInvalidPreset reports a preset that cannot describe a mask.
var ErrInvalidPreset = errors.New("preset: invalid preset")

// Preset is one named mask definition.
type Preset struct {
	Name            string                    `yaml:"name"`
	Description     string                    `yaml:"description"`
	Pattern         string                    `yaml:"pattern"`
	Placeholder     string                    `yaml:"placeholder"`
	HidePlaceholder bool                      `yaml:"hide_placeholder"`
	Revealing       bool                      `yaml:"revealing"`
	FormatChars     map[string]FormatCharSpec `yaml:"format_chars"`
}

// FormatCharSpec defines or removes one format character. Match is a
// regular expression a single character must match in full; Transform is
// "", "upper" or "lower".
type FormatCharSpec struct {
	Match     string `yaml:"match"`
	Transform string `yaml:"transform"`
	Remove    bool   `yaml:"remove"`
}

type document struct {
	Presets []Preset `yaml:"presets"`
}

// Builtin returns the embedded presets.
func Builtin() ([]Preset, error) {
	list, err := Load(bytes.NewReader(builtinYAML))
	if err != nil {
		return nil, fmt.Errorf("builtin presets: %w", err)
	}
	return list, nil
}

// Load decodes and validates a preset document. Unknown keys are errors.
func Load(r io.Reader) ([]Preset, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var doc document
	if err := dec.Decode(&doc); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("decoding presets: %w", err)
	}

	seen := make(map[string]bool, len(doc.Presets))
	for i, p := range doc.Presets {
		if p.Name == "" {
			return nil, fmt.Errorf("%w: entry %d has no name", ErrInvalidPreset, i)
		}
		if seen[p.Name] {
			return nil, fmt.Errorf("%w: duplicate name %q", ErrInvalidPreset, p.Name)
		}
		seen[p.Name] = true

		if err := p.validate(); err != nil {
			return nil, err
		}
	}
	return doc.Presets, nil
}

// LoadFile loads a preset document from path.
func LoadFile(path string) ([]Preset, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening presets: %w", err)
	}
	defer f.Close()

	list, err := Load(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return list, nil
}

// Find returns the preset called name.
func Find(list []Preset, name string) (Preset, bool) {
	for _, p := range list {
		if p.Name == name {
			return p, true
		}
	}
	return Preset{}, false
}

// Options builds editor options for the preset, starting from value.
func (p Preset) Options(value string) (mask.Options, error) {
	if p.Pattern == "" {
		return mask.Options{}, fmt.Errorf("%w: %q has no pattern", ErrInvalidPreset, p.Name)
	}

	var fc pattern.FormatChars
	for key, spec := range p.FormatChars {
		if !grapheme.IsSingle(key) {
			return mask.Options{}, fmt.Errorf("%w: %q: format character key %q is not a single character", ErrInvalidPreset, p.Name, key)
		}
		if fc == nil {
			fc = make(pattern.FormatChars, len(p.FormatChars))
		}
		if spec.Remove {
			fc[key] = nil
			continue
		}
		if spec.Match == "" {
			return mask.Options{}, fmt.Errorf("%w: %q: format character %q needs match or remove", ErrInvalidPreset, p.Name, key)
		}
		def, err := pattern.MatchFormatChar(spec.Match, spec.Transform)
		if err != nil {
			return mask.Options{}, fmt.Errorf("preset %q: %w", p.Name, err)
		}
		fc[key] = def
	}

	return mask.Options{
		Pattern:         p.Pattern,
		FormatChars:     fc,
		Placeholder:     p.Placeholder,
		HidePlaceholder: p.HidePlaceholder,
		Revealing:       p.Revealing,
		Value:           value,
	}, nil
}

func (p Preset) validate() error {
	opt, err := p.Options("")
	if err != nil {
		return err
	}
	_, err = pattern.Compile(opt.Pattern, pattern.Options{
		FormatChars:     pattern.MergeFormatChars(opt.FormatChars),
		Placeholder:     opt.Placeholder,
		HidePlaceholder: opt.HidePlaceholder,
	})
	if err != nil {
		return fmt.Errorf("preset %q: %w", p.Name, err)
	}
	return nil
}
