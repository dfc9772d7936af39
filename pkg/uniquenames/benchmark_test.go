package uniquenames_test

import (
	"testing"

	"github.com/dmitrymomot/uniquenames/pkg/uniquenames"
)

func BenchmarkGenerate(b *testing.B) {
	dicts := []uniquenames.Dictionary{
		uniquenames.Adjectives(),
		uniquenames.Colors(),
		uniquenames.Animals(),
	}

	b.Run("Default", func(b *testing.B) {
		g := uniquenames.New(dicts)
		b.ReportAllocs()
		for b.Loop() {
			_, _ = g.Generate()
		}
	})

	b.Run("Capital", func(b *testing.B) {
		g := uniquenames.New(dicts, uniquenames.WithStyle(uniquenames.Capital))
		b.ReportAllocs()
		for b.Loop() {
			_, _ = g.Generate()
		}
	})

	b.Run("Stateless", func(b *testing.B) {
		b.ReportAllocs()
		for b.Loop() {
			_, _ = uniquenames.Generate(dicts)
		}
	})
}
