package catch

import (
	"errors"
	"slices"
	"testing"

	"github.com/vovakirdan/ballcatch/internal/config"
	"github.com/vovakirdan/ballcatch/internal/core"
	"github.com/vovakirdan/ballcatch/internal/elm"
)

var testField = Size{W: 60, H: 20}

func readyScene(t *testing.T) SceneState {
	t.Helper()
	return Update(NewScene(config.DefaultCatchConfig(), testField, 7), InitGame{})
}

func playingScene(t *testing.T) SceneState {
	t.Helper()
	s := Update(readyScene(t), OnInput{Input: InputState{BarPosition: BarCenter, PushedEnter: true}})
	if s.Mode != ModePlaying {
		t.Fatalf("mode = %v, expected playing", s.Mode)
	}
	return s
}

func press(enter, escape bool) Msg {
	return OnInput{Input: InputState{BarPosition: BarCenter, PushedEnter: enter, PushedEscape: escape}}
}

func assertFrozen(t *testing.T, s SceneState, frozen bool) {
	t.Helper()
	if s.Bar.CanMove == frozen {
		t.Errorf("Bar.CanMove = %v, expected %v", s.Bar.CanMove, !frozen)
	}
	for i, b := range s.Balls {
		if b.MovesBall == frozen {
			t.Errorf("Balls[%d].MovesBall = %v, expected %v", i, b.MovesBall, !frozen)
		}
	}
}

func TestInitGameEntersReady(t *testing.T) {
	s := NewScene(config.DefaultCatchConfig(), testField, 7)
	s.UI.Score = 12
	s = Update(s, InitGame{})

	if s.Mode != ModeReady {
		t.Errorf("Mode = %v, expected ready", s.Mode)
	}
	if s.UI.Score != 0 {
		t.Errorf("Score = %d, expected 0", s.UI.Score)
	}
	if !s.UI.ShowMessage || s.UI.StatusMessage != ReadyMessage {
		t.Errorf("UI = %+v, expected ready banner", s.UI)
	}
	if len(s.Balls) != 1 {
		t.Fatalf("len(Balls) = %d, expected 1", len(s.Balls))
	}
	assertFrozen(t, s, true)
}

func TestEnterStartsPlaying(t *testing.T) {
	s := Update(readyScene(t), press(true, false))

	if s.Mode != ModePlaying {
		t.Fatalf("Mode = %v, expected playing", s.Mode)
	}
	if s.UI.Score != 0 {
		t.Errorf("Score = %d, expected 0", s.UI.Score)
	}
	if s.UI.ShowMessage {
		t.Error("banner should be hidden while playing")
	}
	assertFrozen(t, s, false)
}

func TestReadyIgnoresOtherInput(t *testing.T) {
	ready := readyScene(t)
	s := Update(ready, OnInput{Input: InputState{BarPosition: BarLeft, PushedEscape: true}})

	if s.Mode != ModeReady {
		t.Errorf("Mode = %v, expected ready", s.Mode)
	}
	if s.Bar.BarPosition != BarCenter {
		t.Errorf("bar moved to %v while not playing", s.Bar.BarPosition)
	}
	if s.Quit {
		t.Error("escape in ready should not quit")
	}
}

func TestEscapeTakesPrecedence(t *testing.T) {
	tests := []struct {
		name     string
		setup    func(*testing.T) SceneState
		wantMode Mode
		wantQuit bool
	}{
		{"playing pauses", playingScene, ModePausing, false},
		{"pausing quits", func(t *testing.T) SceneState {
			return Update(playingScene(t), press(false, true))
		}, ModePausing, true},
		{"game over quits", func(t *testing.T) SceneState {
			return Update(playingScene(t), WrapBallMessage{ID: 0, Msg: OnOutOfArea{}})
		}, ModeGameOver, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			s := Update(tc.setup(t), press(true, true))
			if s.Mode != tc.wantMode {
				t.Errorf("Mode = %v, expected %v", s.Mode, tc.wantMode)
			}
			if s.Quit != tc.wantQuit {
				t.Errorf("Quit = %v, expected %v", s.Quit, tc.wantQuit)
			}
		})
	}
}

func TestPauseAndResume(t *testing.T) {
	s := Update(playingScene(t), press(false, true))
	if s.Mode != ModePausing {
		t.Fatalf("Mode = %v, expected pausing", s.Mode)
	}
	if s.UI.StatusMessage != PausingMessage || !s.UI.ShowMessage {
		t.Errorf("UI = %+v, expected pausing banner", s.UI)
	}
	assertFrozen(t, s, true)

	s = Update(s, press(true, false))
	if s.Mode != ModePlaying {
		t.Fatalf("Mode = %v, expected playing", s.Mode)
	}
	assertFrozen(t, s, false)
}

func TestOutOfAreaEndsGame(t *testing.T) {
	s := playingScene(t)
	s.UI.Score = 4
	s = Update(s, WrapBallMessage{ID: 0, Msg: OnOutOfArea{}})

	if s.Mode != ModeGameOver {
		t.Fatalf("Mode = %v, expected game over", s.Mode)
	}
	if s.UI.StatusMessage != GameOverMessage {
		t.Errorf("StatusMessage = %q, expected %q", s.UI.StatusMessage, GameOverMessage)
	}
	if s.UI.Score != 4 {
		t.Errorf("Score = %d, expected 4 to be kept", s.UI.Score)
	}
	assertFrozen(t, s, true)

	s = Update(s, press(true, false))
	if s.Mode != ModeReady || s.UI.Score != 0 {
		t.Errorf("after enter: Mode = %v Score = %d, expected ready with 0", s.Mode, s.UI.Score)
	}
	if len(s.Balls) != 1 || s.Balls[0] != s.BallInit {
		t.Errorf("Balls = %+v, expected only the template ball", s.Balls)
	}
}

func TestCollisionRemovesBall(t *testing.T) {
	s := playingScene(t)
	second := NewBall(core.Vec2{X: s.Bar.MovePos.Left.X, Y: 15}, BarLeft, 6)
	second.MovesBall = true
	s.Balls = append(slices.Clone(s.Balls), second)

	s = Update(s, WrapBallMessage{ID: 0, Msg: OnCollisionBar{}})

	if s.UI.Score != 1 || s.Caught != 1 {
		t.Errorf("Score = %d Caught = %d, expected 1 and 1", s.UI.Score, s.Caught)
	}
	if len(s.Balls) != 1 {
		t.Fatalf("len(Balls) = %d, expected 1", len(s.Balls))
	}
	if s.Balls[0] != second {
		t.Errorf("remaining ball = %+v, expected %+v", s.Balls[0], second)
	}
}

func TestCollisionWithLastBallRespawns(t *testing.T) {
	s := Update(playingScene(t), WrapBallMessage{ID: 0, Msg: OnCollisionBar{}})

	if s.UI.Score != 1 {
		t.Errorf("Score = %d, expected 1", s.UI.Score)
	}
	if len(s.Balls) != 1 {
		t.Fatalf("len(Balls) = %d, expected 1", len(s.Balls))
	}
	b := s.Balls[0]
	if !b.MovesBall {
		t.Error("respawned ball should move")
	}
	if b.Position.Y != topY(testField) {
		t.Errorf("respawn Y = %v, expected %v", b.Position.Y, topY(testField))
	}
	if b.Position.X != s.Bar.MovePos.Pos(b.Lane).X {
		t.Errorf("respawn X = %v, expected lane %v at %v", b.Position.X, b.Lane, s.Bar.MovePos.Pos(b.Lane).X)
	}
}

func TestNextFrameSpawnsWhenRoomAtTop(t *testing.T) {
	tests := []struct {
		name      string
		offset    float64
		wantBalls int
	}{
		{"spawns", 5, 2},
		{"waits", 10, 1},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			s := playingScene(t)
			s.Generator = BallGenerator{Offset: tc.offset}
			start := s.Balls[0].Position.Y

			s = Update(s, WrapBallMessage{ID: 0, Msg: NextFrame{Dt: 1}})

			moved := s.Balls[0].Position.Y
			if moved != start-6 {
				t.Errorf("ball Y = %v, expected %v", moved, start-6)
			}
			if len(s.Balls) != tc.wantBalls {
				t.Fatalf("len(Balls) = %d, expected %d", len(s.Balls), tc.wantBalls)
			}
			if tc.wantBalls == 1 {
				return
			}
			spawned := s.Balls[1]
			if spawned.Position.Y != moved+tc.offset {
				t.Errorf("spawn Y = %v, expected %v", spawned.Position.Y, moved+tc.offset)
			}
			if !spawned.MovesBall {
				t.Error("spawned ball should move")
			}
			spawn := s.Rules.Spawn
			if s.Generator.Offset < spawn.Min || s.Generator.Offset >= spawn.Max {
				t.Errorf("next offset %v outside [%v, %v)", s.Generator.Offset, spawn.Min, spawn.Max)
			}
		})
	}
}

func TestNoSpawnUnlessPlaying(t *testing.T) {
	s := readyScene(t)
	s.Generator = BallGenerator{Offset: 0}
	before := s.Balls[0]

	s = Update(s, WrapBallMessage{ID: 0, Msg: NextFrame{Dt: 1}})

	if len(s.Balls) != 1 {
		t.Errorf("len(Balls) = %d, expected 1", len(s.Balls))
	}
	if s.Balls[0] != before {
		t.Error("frozen ball moved")
	}
}

func TestStaleBallMessageIgnored(t *testing.T) {
	s := playingScene(t)
	for _, id := range []int{-1, 1, 5} {
		got := Update(s, WrapBallMessage{ID: id, Msg: OnCollisionBar{}})
		if got.UI.Score != s.UI.Score || len(got.Balls) != len(s.Balls) {
			t.Errorf("message for ball %d changed the scene", id)
		}
	}
}

func TestBarFollowsInputWhilePlaying(t *testing.T) {
	s := Update(playingScene(t), OnInput{Input: InputState{BarPosition: BarLeft}})
	if s.Bar.BarPosition != BarLeft {
		t.Errorf("BarPosition = %v, expected left", s.Bar.BarPosition)
	}

	s = Update(s, WrapBarMessage{Msg: MoveBar{Position: BarRight}})
	if s.Bar.BarPosition != BarRight {
		t.Errorf("BarPosition = %v, expected right", s.Bar.BarPosition)
	}
}

func TestResizeRecomputesColumns(t *testing.T) {
	s := playingScene(t)
	lefty := NewBall(core.Vec2{X: s.Bar.MovePos.Left.X, Y: 10}, BarLeft, 6)
	s.Balls = append(slices.Clone(s.Balls), lefty)

	size := Size{W: 100, H: 30}
	s = Update(s, OnChangedCanvasSize{Size: size})

	want := NewMovePos(size, s.Rules.Bar)
	if s.Canvas != size {
		t.Errorf("Canvas = %+v, expected %+v", s.Canvas, size)
	}
	if s.Bar.MovePos != want || s.BarInit.MovePos != want {
		t.Errorf("bar columns = %+v / %+v, expected %+v", s.Bar.MovePos, s.BarInit.MovePos, want)
	}
	if s.Balls[1].Position.X != want.Left.X || s.Balls[1].Position.Y != 10 {
		t.Errorf("left ball = %+v, expected x=%v y=10", s.Balls[1].Position, want.Left.X)
	}
	if s.BallInit.Position.Y != topY(size) {
		t.Errorf("template ball Y = %v, expected %v", s.BallInit.Position.Y, topY(size))
	}
}

func TestResizeInReadyMovesTemplateBall(t *testing.T) {
	size := Size{W: 40, H: 12}
	s := Update(readyScene(t), OnChangedCanvasSize{Size: size})
	if len(s.Balls) != 1 || s.Balls[0] != s.BallInit {
		t.Fatalf("Balls = %+v, expected the template ball", s.Balls)
	}
	if s.Balls[0].Position.X != float64(size.W)/2 {
		t.Errorf("ball X = %v, expected %v", s.Balls[0].Position.X, float64(size.W)/2)
	}
}

func TestStatusClickedActsAsEnter(t *testing.T) {
	s := Update(readyScene(t), WrapUIMessage{Msg: StatusClicked{}})
	if s.Mode != ModePlaying {
		t.Errorf("Mode = %v, expected playing", s.Mode)
	}

	s = Update(s, WrapUIMessage{Msg: IncScore{}})
	if s.UI.Score != 1 {
		t.Errorf("Score = %d, expected 1", s.UI.Score)
	}
}

func TestUpdateDoesNotMutateItsInput(t *testing.T) {
	s := playingScene(t)
	s.Balls = append(slices.Clone(s.Balls), NewBall(core.Vec2{X: 1, Y: 15}, BarLeft, 6))
	snapshot := slices.Clone(s.Balls)

	_ = Update(s, WrapBallMessage{ID: 0, Msg: OnCollisionBar{}})
	_ = Update(s, WrapBallMessage{ID: 1, Msg: NextFrame{Dt: 0.5}})
	_ = Update(s, press(false, true))

	if !slices.Equal(s.Balls, snapshot) {
		t.Errorf("Balls changed underneath the caller: %+v, expected %+v", s.Balls, snapshot)
	}
}

type strayMsg struct{}

func (strayMsg) sceneMsg() {}

func TestUpdatePanicsOnUnknownMessage(t *testing.T) {
	err := elm.Catch(func() {
		Update(readyScene(t), strayMsg{})
	})
	var unhandled *elm.UnhandledMessageError
	if !errors.As(err, &unhandled) {
		t.Fatalf("err = %v, expected *elm.UnhandledMessageError", err)
	}
	if _, ok := unhandled.Message.(strayMsg); !ok {
		t.Errorf("Message = %T, expected strayMsg", unhandled.Message)
	}
}

func TestInvariantsHoldDuringPlay(t *testing.T) {
	s := playingScene(t)
	for i := 0; i < 400; i++ {
		var msg Msg = WrapBallMessage{ID: len(s.Balls) - 1, Msg: NextFrame{Dt: 0.05}}
		if i%7 == 0 {
			msg = WrapBallMessage{ID: 0, Msg: OnCollisionBar{}}
		}
		s = Update(s, msg)

		if len(s.Balls) == 0 {
			t.Fatalf("step %d: no balls while playing", i)
		}
		if s.UI.Score < 0 {
			t.Fatalf("step %d: negative score", i)
		}
		assertFrozen(t, s, false)
	}
}
