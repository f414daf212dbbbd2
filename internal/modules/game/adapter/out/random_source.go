package out

import (
	"math/rand/v2"
	"time"

	gameout "pickpack/internal/modules/game/port/out"
)

const streamSalt = 0x9e3779b97f4a7c15

type PCGRandom struct {
	rng *rand.Rand
}

// NewSeededRandom returns a PCG-backed source. Equal non-zero seeds replay
// the same grids and orders; seed zero draws from the wall clock.
func NewSeededRandom(seed uint64) gameout.RandomSource {
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	return &PCGRandom{rng: rand.New(rand.NewPCG(seed, seed^streamSalt))}
}

func (r *PCGRandom) IntN(n int) int {
	return r.rng.IntN(n)
}
