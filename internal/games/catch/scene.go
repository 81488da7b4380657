package catch

import (
	"slices"

	"github.com/vovakirdan/ballcatch/internal/config"
	"github.com/vovakirdan/ballcatch/internal/core"
	"github.com/vovakirdan/ballcatch/internal/elm"
)

// Mode is the coarse state of a round.
type Mode uint8

const (
	ModeReady Mode = iota
	ModePlaying
	ModePausing
	ModeGameOver
)

func (m Mode) String() string {
	switch m {
	case ModeReady:
		return "ready"
	case ModePlaying:
		return "playing"
	case ModePausing:
		return "pausing"
	case ModeGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

// Rules are the configuration values the reducer needs. They are copied
// into state so Update depends on nothing but its arguments.
type Rules struct {
	BallSpeed  float64
	Spawn      config.CatchSpawn
	Bar        config.CatchBar
	Difficulty config.Difficulty
}

// SceneState is the whole game.
type SceneState struct {
	Balls     []BallState // last element is the newest ball
	BallInit  BallState
	Bar       BarState
	BarInit   BarState
	UI        UIState
	Mode      Mode
	Generator BallGenerator
	Canvas    Size
	Dice      Dice
	Rules     Rules
	Caught    int
	Quit      bool // escape was pressed while paused or after game over
}

// NewScene builds the initial state for a field of the given size. The
// result still has to receive InitGame before it is playable.
func NewScene(cfg config.CatchConfig, size Size, seed int64) SceneState {
	rules := Rules{
		BallSpeed:  cfg.Physics.BallSpeed,
		Spawn:      cfg.Spawn,
		Bar:        cfg.Bar,
		Difficulty: config.NewDifficulty(cfg.Difficulty),
	}
	bar := NewBar(size, cfg.Bar)
	ball := NewBall(core.Vec2{X: bar.MovePos.Center.X, Y: topY(size)}, BarCenter, rules.Difficulty.Speed(rules.BallSpeed, 0, 0))
	gen, dice := RandomGenerator(NewDice(seed), cfg.Spawn.InitialMin, cfg.Spawn.InitialMax)

	return SceneState{
		Balls:     []BallState{ball},
		BallInit:  ball,
		Bar:       bar,
		BarInit:   bar,
		Mode:      ModeReady,
		Generator: gen,
		Canvas:    size,
		Dice:      dice,
		Rules:     rules,
	}
}

// Update is the top-level reducer.
func Update(s SceneState, msg Msg) SceneState {
	switch msg := msg.(type) {
	case InitGame:
		return initGame(s)
	case OnInput:
		return updateInput(s, msg.Input)
	case OnChangedCanvasSize:
		return resize(s, msg.Size)
	case WrapBallMessage:
		return updateBall(s, msg)
	case WrapBarMessage:
		s.Bar = UpdateBar(s.Bar, msg.Msg)
		return s
	case WrapUIMessage:
		if _, ok := msg.Msg.(StatusClicked); ok {
			s = updateInput(s, InputState{BarPosition: s.Bar.BarPosition, PushedEnter: true})
		}
		s.UI = UpdateUI(s.UI, msg.Msg)
		return s
	default:
		panic(elm.UnhandledMessage(msg))
	}
}

func initGame(s SceneState) SceneState {
	s.UI = UpdateUI(s.UI, ToGameReadyUI{})
	s.Bar = s.BarInit
	s.Balls = []BallState{s.BallInit}
	s.Generator, s.Dice = RandomGenerator(s.Dice, s.Rules.Spawn.InitialMin, s.Rules.Spawn.InitialMax)
	s.Mode = ModeReady
	s.Caught = 0
	s.Quit = false
	return s
}

func play(s SceneState) SceneState {
	s.UI = UpdateUI(s.UI, ToGamePlayUI{})
	s.Bar.CanMove = true
	s.Balls = setMovable(s.Balls, true)
	s.Mode = ModePlaying
	return s
}

func pause(s SceneState) SceneState {
	s.Balls = setMovable(s.Balls, false)
	s.Bar.CanMove = false
	s.UI = UpdateUI(s.UI, ToPauseUI{})
	s.Mode = ModePausing
	return s
}

func gameOver(s SceneState) SceneState {
	s.UI = UpdateUI(s.UI, ToGameOverUI{})
	s.Balls = setMovable(s.Balls, false)
	s.Bar.CanMove = false
	s.Mode = ModeGameOver
	return s
}

// updateInput applies one input change. Escape wins over enter and over
// bar movement in every mode.
func updateInput(s SceneState, in InputState) SceneState {
	switch s.Mode {
	case ModeReady:
		if in.PushedEnter {
			return play(s)
		}
		return s
	case ModePlaying:
		if in.PushedEscape {
			return pause(s)
		}
		s.Bar = UpdateBar(s.Bar, MoveBar{Position: in.BarPosition})
		return s
	case ModePausing:
		if in.PushedEscape {
			s.Quit = true
			return s
		}
		if in.PushedEnter {
			return play(s)
		}
		return s
	case ModeGameOver:
		if in.PushedEscape {
			s.Quit = true
			return s
		}
		if in.PushedEnter {
			return initGame(s)
		}
		return s
	default:
		panic(elm.UnhandledMessage(s.Mode))
	}
}

func updateBall(s SceneState, msg WrapBallMessage) SceneState {
	// A sprite may report for a ball removed earlier in the same frame.
	if msg.ID < 0 || msg.ID >= len(s.Balls) {
		return s
	}
	s.Balls = slices.Clone(s.Balls)
	s.Balls[msg.ID] = UpdateBall(s.Balls[msg.ID], msg.Msg)

	switch msg.Msg.(type) {
	case OnOutOfArea:
		return gameOver(s)
	case OnCollisionBar:
		s.Balls = slices.Delete(s.Balls, msg.ID, msg.ID+1)
		s.UI = UpdateUI(s.UI, IncScore{})
		s.Caught++
		if len(s.Balls) == 0 {
			return respawn(s)
		}
		return s
	case NextFrame:
		return maybeSpawn(s)
	default:
		return s
	}
}

// maybeSpawn adds a ball once the newest one has fallen far enough for the
// next spawn position to be inside the field. Only while playing.
func maybeSpawn(s SceneState) SceneState {
	if s.Mode != ModePlaying {
		return s
	}
	latest, ok := s.LatestBall()
	if !ok {
		return s
	}
	offset, ok := s.Generator.MaybeGenerate(s.Canvas.H, latest)
	if !ok {
		return s
	}
	return spawn(s, latest.Position.Y+offset)
}

// respawn puts a ball at the top of the field after the last one was caught.
func respawn(s SceneState) SceneState {
	return spawn(s, topY(s.Canvas))
}

// spawn appends a ball at height y in a random column and draws the next
// spawn offset. s.Balls must already be a private copy.
func spawn(s SceneState, y float64) SceneState {
	var i int
	i, s.Dice = s.Dice.IntN(len(barPositions))
	lane := barPositions[i]

	speed := s.Rules.Difficulty.Speed(s.Rules.BallSpeed, s.UI.Score, 0)
	ball := NewBall(core.Vec2{X: s.Bar.MovePos.Pos(lane).X, Y: y}, lane, speed)
	ball.MovesBall = s.Mode == ModePlaying
	s.Balls = append(s.Balls, ball)

	spacing := s.Rules.Difficulty.Spacing(s.Rules.Spawn.Max, s.Rules.Spawn.Min, s.UI.Score, 0)
	s.Generator, s.Dice = RandomGenerator(s.Dice, s.Rules.Spawn.Min, spacing)
	return s
}

// resize adopts a new field size. Columns are recomputed for the live and
// the template bar, and balls keep their lane.
func resize(s SceneState, size Size) SceneState {
	s.Canvas = size
	pos := NewMovePos(size, s.Rules.Bar)
	s.Bar = UpdateBar(s.Bar, UpdateInitialBarPos{MovePos: pos})
	s.BarInit = UpdateBar(s.BarInit, UpdateInitialBarPos{MovePos: pos})
	s.BallInit.Position = core.Vec2{X: pos.Center.X, Y: topY(size)}

	if s.Mode == ModeReady {
		s.Balls = []BallState{s.BallInit}
		return s
	}
	s.Balls = slices.Clone(s.Balls)
	for i := range s.Balls {
		s.Balls[i].Position.X = pos.Pos(s.Balls[i].Lane).X
	}
	return s
}

// topY is the center of the field's top row.
func topY(size Size) float64 {
	return float64(size.H) - 0.5
}

func setMovable(balls []BallState, moves bool) []BallState {
	balls = slices.Clone(balls)
	for i := range balls {
		balls[i].MovesBall = moves
	}
	return balls
}

// LatestBall returns the most recently spawned ball.
func (s SceneState) LatestBall() (BallState, bool) {
	if len(s.Balls) == 0 {
		return BallState{}, false
	}
	return s.Balls[len(s.Balls)-1], true
}
