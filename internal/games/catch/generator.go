package catch

// BallGenerator decides when the next ball enters the field. Offset is the
// vertical distance between the newest ball and the one to spawn next.
type BallGenerator struct {
	Offset float64
}

// RandomGenerator draws an offset from [min, max).
func RandomGenerator(d Dice, min, max float64) (BallGenerator, Dice) {
	offset, d := d.Range(min, max)
	return BallGenerator{Offset: offset}, d
}

// MaybeGenerate returns the spawn offset once latest has fallen far enough
// that a ball Offset above it would be inside a field of height fieldH.
func (g BallGenerator) MaybeGenerate(fieldH int, latest BallState) (float64, bool) {
	if latest.Position.Y+g.Offset <= float64(fieldH) {
		return g.Offset, true
	}
	return 0, false
}
