package ports

// RandomSource supplies uniformly distributed integers.
// IntN returns a value in [0, n) and panics if n <= 0, matching math/rand/v2.
type RandomSource interface {
	IntN(n int) int
}
