package uniquenames

import "github.com/dmitrymomot/uniquenames/pkg/config"

// Settings holds generator defaults read from the environment.
type Settings struct {
	Separator string `env:"UNIQUENAMES_SEPARATOR" envDefault:"_"`
	Length    int    `env:"UNIQUENAMES_LENGTH" envDefault:"3"`
	Style     Style  `env:"UNIQUENAMES_STYLE"`
}

// LoadSettings reads Settings through the cached config loader.
func LoadSettings() (Settings, error) {
	var s Settings
	if err := config.Load(&s); err != nil {
		return Settings{}, err
	}
	return s, nil
}

// Options converts the settings into generator options.
func (s Settings) Options() []Option {
	return []Option{
		WithSeparator(s.Separator),
		WithLength(s.Length),
		WithStyle(s.Style),
	}
}
