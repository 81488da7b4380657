package catch

import "math/rand/v2"

// diceStream selects the PCG stream; any fixed odd constant works.
const diceStream = 0x9e3779b97f4a7c15

// Dice is a random source stored by value inside state. Every draw returns
// the value together with the Dice to use next, so reducers stay pure and a
// run is fully determined by its seed and inputs.
type Dice struct {
	Seed uint64
}

// NewDice returns a Dice seeded with seed.
func NewDice(seed int64) Dice {
	return Dice{Seed: uint64(seed)}
}

func (d Dice) rng() *rand.Rand {
	return rand.New(rand.NewPCG(d.Seed, diceStream))
}

// Float64 draws from [0, 1).
func (d Dice) Float64() (float64, Dice) {
	r := d.rng()
	v := r.Float64()
	return v, Dice{Seed: r.Uint64()}
}

// Range draws from [min, max). It returns min when the range is empty.
func (d Dice) Range(min, max float64) (float64, Dice) {
	v, next := d.Float64()
	if max <= min {
		return min, next
	}
	return min + v*(max-min), next
}

// IntN draws from [0, n). n must be positive.
func (d Dice) IntN(n int) (int, Dice) {
	r := d.rng()
	v := r.IntN(n)
	return v, Dice{Seed: r.Uint64()}
}
