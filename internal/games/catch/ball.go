package catch

import (
	"github.com/vovakirdan/ballcatch/internal/core"
	"github.com/vovakirdan/ballcatch/internal/elm"
)

// BallState is one falling ball.
type BallState struct {
	Position  core.Vec2
	Speed     core.Vec2   // world units per second; negative Y falls
	Lane      BarPosition // column the ball was spawned in
	MovesBall bool
}

// NewBall returns a frozen ball at pos falling at speed cells per second.
func NewBall(pos core.Vec2, lane BarPosition, speed float64) BallState {
	return BallState{
		Position: pos,
		Speed:    core.Vec2{Y: -speed},
		Lane:     lane,
	}
}

// UpdateBall is the ball reducer.
func UpdateBall(b BallState, msg BallMsg) BallState {
	switch msg := msg.(type) {
	case NextFrame:
		if !b.MovesBall {
			return b
		}
		b.Position = b.Position.Add(b.Speed.Scale(msg.Dt))
		return b
	case OnCollisionBar, OnOutOfArea:
		return b
	default:
		panic(elm.UnhandledMessage(msg))
	}
}
