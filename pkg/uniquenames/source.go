package uniquenames

import "math/rand/v2"

// Source picks a random index in [0, n). Implementations are called with n > 0 only.
//
// *rand.Rand from math/rand/v2 satisfies Source, which makes seeded runs reproducible:
//
//	src := rand.New(rand.NewPCG(1, 2))
//	g := uniquenames.New(dicts, uniquenames.WithSource(src))
type Source interface {
	IntN(n int) int
}

// SourceFunc adapts an ordinary function to the Source interface.
type SourceFunc func(n int) int

func (f SourceFunc) IntN(n int) int { return f(n) }

// DefaultSource uses the top-level math/rand/v2 generator, which is safe for concurrent use.
var DefaultSource Source = SourceFunc(rand.IntN)
