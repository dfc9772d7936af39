package uniquenames

import (
	"errors"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

// Preset is a reusable generator configuration, usually kept in a YAML file:
//
//	dictionaries:
//	  - adjectives          # built-in dictionary by name
//	  - [red, green, blue]  # inline word list
//	  - animals
//	separator: "-"
//	length: 3
//	style: capital
//
// Fields left out of the document keep the generator defaults.
type Preset struct {
	Dictionaries []Dictionary `yaml:"dictionaries"`
	Separator    *string      `yaml:"separator"`
	Length       *int         `yaml:"length"`
	Style        *Style       `yaml:"style"`
}

// DecodePreset reads a single YAML preset document from r.
func DecodePreset(r io.Reader) (*Preset, error) {
	var p Preset
	if err := yaml.NewDecoder(r).Decode(&p); err != nil {
		return nil, errors.Join(ErrFailedToParsePreset, err)
	}
	return &p, nil
}

// Options converts the fields present in the preset into generator options.
func (p *Preset) Options() []Option {
	var opts []Option
	if p.Separator != nil {
		opts = append(opts, WithSeparator(*p.Separator))
	}
	if p.Length != nil {
		opts = append(opts, WithLength(*p.Length))
	}
	if p.Style != nil {
		opts = append(opts, WithStyle(*p.Style))
	}
	return opts
}

// Generator builds a Generator from the preset. Extra options are applied
// after the preset's own, so they win.
func (p *Preset) Generator(opts ...Option) *Generator {
	return New(p.Dictionaries, append(p.Options(), opts...)...)
}

// UnmarshalYAML accepts either a sequence of words or the name of a built-in dictionary.
func (d *Dictionary) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.ScalarNode:
		words := Builtin(node.Value)
		if words == nil {
			return fmt.Errorf("%w: %q (line %d)", ErrUnknownDictionary, node.Value, node.Line)
		}
		*d = words
		return nil
	case yaml.SequenceNode:
		var words []string
		if err := node.Decode(&words); err != nil {
			return err
		}
		*d = words
		return nil
	default:
		return fmt.Errorf("dictionary at line %d must be a word list or a built-in name", node.Line)
	}
}

// UnmarshalYAML decodes a style name; unrecognized names become NoStyle.
func (s *Style) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.ScalarNode {
		return fmt.Errorf("style at line %d must be a string", node.Line)
	}
	return s.UnmarshalText([]byte(node.Value))
}
