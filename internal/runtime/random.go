package runtime

import (
	"math/rand/v2"

	"github.com/aretw0/domino/pkg/ports"
)

type processSource struct{}

func (processSource) IntN(n int) int { return rand.IntN(n) }

// ProcessSource returns the process-wide uniform generator.
// It is safe for concurrent use by many controllers.
func ProcessSource() ports.RandomSource {
	return processSource{}
}

// SeededSource returns a deterministic generator for replays and tests.
// It is not safe for concurrent use; give each controller its own.
func SeededSource(seed uint64) ports.RandomSource {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}
