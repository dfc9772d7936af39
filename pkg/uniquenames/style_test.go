package uniquenames_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/uniquenames/pkg/uniquenames"
)

func TestParseStyle(t *testing.T) {
	tests := []struct {
		input    string
		expected uniquenames.Style
	}{
		{input: "lowerCase", expected: uniquenames.LowerCase},
		{input: "LOWERCASE", expected: uniquenames.LowerCase},
		{input: "capital", expected: uniquenames.Capital},
		{input: " Capital ", expected: uniquenames.Capital},
		{input: "upperCase", expected: uniquenames.UpperCase},
		{input: "", expected: uniquenames.NoStyle},
		{input: "none", expected: uniquenames.NoStyle},
		{input: "camelCase", expected: uniquenames.NoStyle},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.expected, uniquenames.ParseStyle(tt.input))
		})
	}
}

func TestStyle_Format(t *testing.T) {
	tests := []struct {
		name      string
		style     uniquenames.Style
		input     string
		separator string
		expected  string
	}{
		{name: "none keeps input", style: uniquenames.NoStyle, input: "MiXed_Case", separator: "_", expected: "MiXed_Case"},
		{name: "lower", style: uniquenames.LowerCase, input: "MiXed_Case", separator: "_", expected: "mixed_case"},
		{name: "upper", style: uniquenames.UpperCase, input: "MiXed_Case", separator: "_", expected: "MIXED_CASE"},
		{name: "capital lowers the rest", style: uniquenames.Capital, input: "hELLO_wORLD", separator: "_", expected: "Hello_World"},
		{name: "capital multi-char separator", style: uniquenames.Capital, input: "brave::red::fox", separator: "::", expected: "Brave::Red::Fox"},
		{name: "capital ignores other delimiters", style: uniquenames.Capital, input: "mid-size_fox", separator: "_", expected: "Mid-size_Fox"},
		{name: "capital empty separator", style: uniquenames.Capital, input: "braveFOX", separator: "", expected: "Bravefox"},
		{name: "capital empty segments", style: uniquenames.Capital, input: "-b-", separator: "-", expected: "-B-"},
		{name: "capital non-ascii", style: uniquenames.Capital, input: "élan_über", separator: "_", expected: "Élan_Über"},
		{name: "empty input", style: uniquenames.UpperCase, input: "", separator: "_", expected: ""},
		{name: "unknown style", style: uniquenames.Style(42), input: "Keep_Me", separator: "_", expected: "Keep_Me"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.style.Format(tt.input, tt.separator))
		})
	}
}

func TestStyle_Text(t *testing.T) {
	assert.Equal(t, "lowerCase", uniquenames.LowerCase.String())
	assert.Equal(t, "capital", uniquenames.Capital.String())
	assert.Equal(t, "upperCase", uniquenames.UpperCase.String())
	assert.Equal(t, "none", uniquenames.NoStyle.String())
	assert.Equal(t, "none", uniquenames.Style(42).String())

	for _, style := range []uniquenames.Style{uniquenames.NoStyle, uniquenames.LowerCase, uniquenames.Capital, uniquenames.UpperCase} {
		text, err := style.MarshalText()
		require.NoError(t, err)

		var decoded uniquenames.Style
		require.NoError(t, decoded.UnmarshalText(text))
		assert.Equal(t, style, decoded)
	}

	s := uniquenames.Capital
	require.NoError(t, s.UnmarshalText([]byte("unknown")))
	assert.Equal(t, uniquenames.NoStyle, s)
}
