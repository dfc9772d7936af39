package uniquenames

import "log/slog"

// Defaults applied when the corresponding option is not given.
const (
	DefaultSeparator = "_"
	DefaultLength    = 3
)

// Option is a functional option for configuring a Generator
type Option func(*options)

type options struct {
	separator string
	length    int
	style     Style
	source    Source
	logger    *slog.Logger
}

func defaultOptions() *options {
	return &options{
		separator: DefaultSeparator,
		length:    DefaultLength,
		style:     NoStyle,
		source:    DefaultSource,
		logger:    slog.New(slog.DiscardHandler),
	}
}

// WithSeparator sets the string placed between words. An empty separator is allowed.
func WithSeparator(s string) Option {
	return func(o *options) {
		o.separator = s
	}
}

// WithLength sets how many dictionaries contribute a word.
// It is validated when a name is generated, not here: zero and negative
// values make Generate fail with ErrInvalidLength. Values above the number
// of dictionaries are capped.
func WithLength(n int) Option {
	return func(o *options) {
		o.length = n
	}
}

// WithStyle sets the case transform applied to the joined name.
func WithStyle(s Style) Option {
	return func(o *options) {
		o.style = s
	}
}

// WithSource replaces the random index provider. Nil is ignored.
// A Generator shared between goroutines needs a Source that is safe for concurrent use.
func WithSource(src Source) Option {
	return func(o *options) {
		if src != nil {
			o.source = src
		}
	}
}

// WithLogger sets the logger for the generator
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) {
		if logger != nil {
			o.logger = logger
		}
	}
}
