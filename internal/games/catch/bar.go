package catch

import (
	"github.com/vovakirdan/ballcatch/internal/config"
	"github.com/vovakirdan/ballcatch/internal/core"
	"github.com/vovakirdan/ballcatch/internal/elm"
)

// BarPosition is one of the three columns the bar can stand in.
type BarPosition uint8

const (
	BarLeft BarPosition = iota
	BarCenter
	BarRight
)

var barPositions = [...]BarPosition{BarLeft, BarCenter, BarRight}

func (p BarPosition) String() string {
	switch p {
	case BarLeft:
		return "left"
	case BarCenter:
		return "center"
	case BarRight:
		return "right"
	default:
		return "unknown"
	}
}

// Step moves one column towards dir (-1 left, +1 right), stopping at the edges.
func (p BarPosition) Step(dir int) BarPosition {
	return BarPosition(core.Clamp(int(p)+dir, int(BarLeft), int(BarRight)))
}

// MovePos holds the world coordinates of the three columns.
type MovePos struct {
	Left   core.Vec2
	Center core.Vec2
	Right  core.Vec2
}

// NewMovePos lays the columns out for a field of the given size.
func NewMovePos(size Size, bar config.CatchBar) MovePos {
	y := float64(bar.Row) + 0.5
	half := float64(bar.Width) / 2
	left := float64(bar.Margin) + half
	right := float64(size.W-bar.Margin) - half
	if right < left {
		left, right = half, float64(size.W)-half
	}
	return MovePos{
		Left:   core.Vec2{X: left, Y: y},
		Center: core.Vec2{X: float64(size.W) / 2, Y: y},
		Right:  core.Vec2{X: right, Y: y},
	}
}

// Pos returns the coordinates of column p.
func (m MovePos) Pos(p BarPosition) core.Vec2 {
	switch p {
	case BarLeft:
		return m.Left
	case BarCenter:
		return m.Center
	case BarRight:
		return m.Right
	default:
		panic(elm.UnhandledMessage(p))
	}
}

// BarState is the paddle.
type BarState struct {
	MovePos     MovePos
	BarPosition BarPosition
	Width       int
	CanMove     bool
}

// NewBar returns a frozen bar in the center column.
func NewBar(size Size, bar config.CatchBar) BarState {
	return BarState{
		MovePos:     NewMovePos(size, bar),
		BarPosition: BarCenter,
		Width:       bar.Width,
	}
}

// Position returns the world coordinates of the bar's center.
func (b BarState) Position() core.Vec2 {
	return b.MovePos.Pos(b.BarPosition)
}

// Rect returns the cells the bar covers in a field of height fieldH.
func (b BarState) Rect(fieldH int) core.Rect {
	x, y := b.Position().Cell(fieldH)
	return core.NewRect(x-b.Width/2, y, b.Width, 1)
}

// UpdateBar is the bar reducer.
func UpdateBar(b BarState, msg BarMsg) BarState {
	switch msg := msg.(type) {
	case MoveBar:
		if !b.CanMove {
			return b
		}
		b.BarPosition = msg.Position
		return b
	case UpdateInitialBarPos:
		b.MovePos = msg.MovePos
		return b
	default:
		panic(elm.UnhandledMessage(msg))
	}
}
