package uniquenames

import "errors"

var (
	// ErrInvalidConfiguration is the base error for every configuration failure.
	// All other configuration errors in this package match it with errors.Is.
	ErrInvalidConfiguration = errors.New("invalid name generator configuration")

	// ErrMissingDictionaries is returned by Generator.Generate when no dictionaries were provided.
	ErrMissingDictionaries = errors.New("missing dictionaries")

	// ErrInvalidLength is returned when the configured length is not a positive integer.
	ErrInvalidLength = errors.New("invalid length: must be a positive integer")

	// ErrDictionariesRequired is returned by Generate before a generator is built.
	ErrDictionariesRequired = errors.New(`a "dictionaries" slice must be provided, e.g. uniquenames.Generate([]uniquenames.Dictionary{uniquenames.Adjectives(), uniquenames.Animals()})`)

	ErrUnknownDictionary   = errors.New("unknown built-in dictionary")
	ErrFailedToParsePreset = errors.New("failed to parse name preset")
)
