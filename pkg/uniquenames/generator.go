package uniquenames

import (
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"strings"

	"github.com/samber/lo"
)

// Dictionary is an ordered list of candidate words for one position of a name.
type Dictionary []string

// Config is a snapshot of the settings a Generator was built with.
type Config struct {
	Dictionaries []Dictionary
	Separator    string
	Length       int
	Style        Style
}

// Generator produces names by picking one word from each dictionary in order.
// It holds no mutable state, so Generate may be called concurrently as long
// as the configured Source is safe for concurrent use (DefaultSource is).
type Generator struct {
	dictionaries []Dictionary
	separator    string
	length       int
	style        Style
	source       Source
	logger       *slog.Logger
}

// New stores a copy of the dictionaries together with the options. It performs
// no validation; configuration errors are reported by Generate.
func New(dictionaries []Dictionary, opts ...Option) *Generator {
	o := defaultOptions()
	for _, opt := range opts {
		opt(o)
	}

	return &Generator{
		dictionaries: cloneDictionaries(dictionaries),
		separator:    o.separator,
		length:       o.length,
		style:        o.style,
		source:       o.source,
		logger:       o.logger,
	}
}

// Generate returns a new name. The first min(length, len(dictionaries))
// dictionaries each contribute one uniformly chosen word, in order; an empty
// dictionary contributes "". Words are joined with the separator and the
// style is applied to the result. If every word is empty the result is "".
func (g *Generator) Generate() (string, error) {
	if len(g.dictionaries) == 0 {
		g.logger.Warn("name generation failed", slog.String("reason", ErrMissingDictionaries.Error()))
		return "", errors.Join(ErrInvalidConfiguration, ErrMissingDictionaries)
	}
	if g.length < 1 {
		g.logger.Warn("name generation failed",
			slog.String("reason", ErrInvalidLength.Error()),
			slog.Int("length", g.length))
		return "", errors.Join(ErrInvalidConfiguration, ErrInvalidLength)
	}

	count := min(g.length, len(g.dictionaries))
	words := make([]string, count)
	for i, dict := range g.dictionaries[:count] {
		if len(dict) == 0 {
			continue
		}
		words[i] = dict[g.source.IntN(len(dict))]
	}

	if lo.EveryBy(words, func(w string) bool { return w == "" }) {
		return "", nil
	}

	name := g.style.Format(strings.Join(words, g.separator), g.separator)

	g.logger.Debug("name generated",
		slog.String("name", name),
		slog.Int("dictionaries", len(g.dictionaries)),
		slog.Int("length", count),
		slog.String("separator", g.separator),
		slog.String("style", g.style.String()))

	return name, nil
}

// Config returns a copy of the generator's settings. Mutating the returned
// dictionaries does not affect the generator.
func (g *Generator) Config() Config {
	return Config{
		Dictionaries: cloneDictionaries(g.dictionaries),
		Separator:    g.separator,
		Length:       g.length,
		Style:        g.style,
	}
}

// Generate is a shortcut for New(dictionaries, opts...).Generate(). Unlike
// New it rejects missing dictionaries up front with ErrDictionariesRequired.
func Generate(dictionaries []Dictionary, opts ...Option) (string, error) {
	if len(dictionaries) == 0 {
		return "", errors.Join(ErrInvalidConfiguration, ErrDictionariesRequired)
	}
	return New(dictionaries, opts...).Generate()
}

// MustGenerate works like Generate but panics if the configuration is invalid.
func MustGenerate(dictionaries []Dictionary, opts ...Option) string {
	name, err := Generate(dictionaries, opts...)
	if err != nil {
		panic(fmt.Sprintf("Failed to generate name: %v", err))
	}
	return name
}

func cloneDictionaries(dictionaries []Dictionary) []Dictionary {
	if dictionaries == nil {
		return nil
	}
	return lo.Map(dictionaries, func(d Dictionary, _ int) Dictionary {
		return slices.Clone(d)
	})
}
