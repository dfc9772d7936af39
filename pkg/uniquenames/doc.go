// Package uniquenames generates memorable random names by picking one word
// from each of several dictionaries and joining them with a separator, e.g.
// "brave_crimson_otter". The result is suitable for container names, session
// labels or test fixtures. Names are not guaranteed to be unique and the
// randomness is not cryptographically secure.
//
// # Usage
//
// Import the package:
//
//	import "github.com/dmitrymomot/uniquenames/pkg/uniquenames"
//
// Generate a single name with the defaults (separator "_", three words):
//
//	name, err := uniquenames.Generate([]uniquenames.Dictionary{
//		uniquenames.Adjectives(),
//		uniquenames.Colors(),
//		uniquenames.Animals(),
//	})
//
// Build a reusable Generator with options:
//
//	g := uniquenames.New(dicts,
//		uniquenames.WithSeparator("-"),
//		uniquenames.WithLength(2),
//		uniquenames.WithStyle(uniquenames.Capital), // "Brave-Crimson"
//	)
//	name, err := g.Generate()
//
// # Algorithm
//
// The first min(length, len(dictionaries)) dictionaries are used in the order
// given, each contributing one uniformly chosen word. An empty dictionary
// contributes an empty word. The words are joined with the separator and the
// Style is applied to the joined string as a whole. When every selected word
// is empty the result is "".
//
// # Configuration
//
//   - WithSeparator sets the separator (default "_").
//   - WithLength sets the word count (default 3). Zero and negative values are
//     rejected by Generate with ErrInvalidLength.
//   - WithStyle applies LowerCase, UpperCase or Capital.
//   - WithSource injects a Source of random indexes, e.g. a seeded *rand.Rand.
//   - WithLogger attaches a *slog.Logger.
//
// Defaults can also come from the environment (see Settings and LoadSettings)
// or from YAML documents (see Preset and DecodePreset).
//
// # Error Handling
//
// Configuration errors match ErrInvalidConfiguration and one of
// ErrMissingDictionaries, ErrInvalidLength or ErrDictionariesRequired via errors.Is.
package uniquenames
