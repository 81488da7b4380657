// Package catch implements Ball Catch: balls fall down the field and a
// paddle that stands in one of three columns has to catch them.
//
// All game rules live in pure reducers (Update, UpdateBall, UpdateBar,
// UpdateUI) driven by an elm.Runtime. The sprites in this package are the
// render sinks; ball sprites also feed the physics loop back into the
// runtime.
package catch

import (
	"io"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/vovakirdan/ballcatch/internal/config"
	"github.com/vovakirdan/ballcatch/internal/core"
	"github.com/vovakirdan/ballcatch/internal/elm"
	"github.com/vovakirdan/ballcatch/internal/registry"
)

// ID is the registry identifier of the game.
const ID = "catch"

// Minimum screen size the game can be played on.
const (
	MinScreenW = 30
	MinScreenH = 12
)

// Package-level configuration, set by the CLI before the registry creates
// a game.
var (
	gameConfig = config.DefaultCatchConfig()
	gameLogger = log.New(io.Discard)
)

// SetConfig sets the configuration used by games created afterwards.
func SetConfig(cfg config.CatchConfig) {
	gameConfig = cfg
}

// SetLogger sets the logger used by games created afterwards.
func SetLogger(l *log.Logger) {
	if l == nil {
		l = log.New(io.Discard)
	}
	gameLogger = l
}

func init() {
	registry.Register(ID, func() registry.Game {
		return New()
	})
}

// Runtime is the dispatch runtime specialised for the scene.
type Runtime = elm.Runtime[struct{}, SceneState, Msg]

// Game adapts the scene runtime to the platform's fixed-tick game loop.
type Game struct {
	cfg     config.CatchConfig
	base    *log.Logger
	log     *log.Logger
	runtime core.RuntimeConfig

	rt     *Runtime
	scene  *SceneRender
	input  *InputSubscription
	buffer *elm.BufferDispatcher[Msg]

	runID    uuid.UUID
	dt       float64
	ticks    int
	lastMode Mode
	err      error
}

// New creates a game with the package-level configuration.
func New() *Game {
	return NewWithConfig(gameConfig, gameLogger)
}

// NewWithConfig creates a game with an explicit configuration and logger.
func NewWithConfig(cfg config.CatchConfig, logger *log.Logger) *Game {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Game{cfg: cfg, base: logger, log: logger}
}

// ID returns the game identifier.
func (g *Game) ID() string { return ID }

// Title returns the display name.
func (g *Game) Title() string { return "Ball Catch" }

// Reset starts a new run: fresh state, fresh sprites and a fresh runtime
// that has already processed InitGame.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	if g.scene != nil {
		g.scene.Close()
	}
	g.runtime = cfg
	g.runID = uuid.New()
	g.log = g.base.With("run", g.runID.String())
	g.ticks = 0
	g.err = nil
	g.dt = min(cfg.TickSeconds(), g.cfg.Physics.MaxStep)

	g.scene = NewSceneRender()
	g.input = NewInputSubscription()
	g.buffer = &elm.BufferDispatcher[Msg]{}
	elm.SetupWrapped[InputState, Msg](g.input, g.buffer, func(s InputState) Msg {
		return OnInput{Input: s}
	})

	state := NewScene(g.cfg, FieldSize(cfg.ScreenW, cfg.ScreenH), cfg.Seed)
	rt, err := elm.Start[struct{}, SceneState, Msg](
		struct{}{}, InitGame{}, g.scene, state, Update,
		elm.WithMaxRenders(g.cfg.Runtime.MaxRenders),
		elm.WithLogger(g.log),
	)
	if err != nil {
		g.rt = nil
		g.fail(err)
		return
	}
	g.rt = rt
	g.buffer.Attach(rt)
	g.lastMode = rt.State().Mode
	g.log.Info("game started", "seed", cfg.Seed, "screen_w", cfg.ScreenW, "screen_h", cfg.ScreenH)
}

// Step runs one fixed tick: input first, then the ball sprites.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if g.rt == nil || g.err != nil {
		return core.StepResult{State: g.State(), Quit: g.err != nil}
	}
	g.ticks++
	g.guard(func() {
		g.input.Poll(in, g.rt.State().Bar.BarPosition)
		g.scene.Tick(g.dt)
	})
	g.observe()
	return core.StepResult{
		State: g.State(),
		Quit:  g.err != nil || g.rt.State().Quit,
	}
}

// Render draws the scene into dst.
func (g *Game) Render(dst *core.Screen) {
	if dst.Width() < MinScreenW || dst.Height() < MinScreenH {
		dst.DrawTextCentered(dst.Height()/2, "Terminal too small", core.ColorRed)
		return
	}
	if g.scene != nil {
		g.scene.Draw(dst)
	}
}

// Resize reports a new screen size to the scene.
func (g *Game) Resize(w, h int) {
	if g.rt == nil || (w == g.runtime.ScreenW && h == g.runtime.ScreenH) {
		return
	}
	g.runtime.ScreenW, g.runtime.ScreenH = w, h
	g.scene.Invalidate()
	g.guard(func() {
		g.buffer.Dispatch(OnChangedCanvasSize{Size: FieldSize(w, h)})
	})
	g.log.Debug("resized", "screen_w", w, "screen_h", h)
}

// Click forwards a mouse click at screen cell (x, y).
func (g *Game) Click(x, y int) {
	if g.rt == nil || g.err != nil {
		return
	}
	g.guard(func() {
		g.scene.Click(x, y)
	})
	g.observe()
}

// State reports score, game over and pause.
func (g *Game) State() core.GameState {
	if g.rt == nil {
		return core.GameState{}
	}
	s := g.rt.State()
	return core.GameState{
		Score:    s.UI.Score,
		GameOver: s.Mode == ModeGameOver,
		Paused:   s.Mode == ModePausing,
	}
}

// Err returns the runtime failure that stopped the game, if any.
func (g *Game) Err() error { return g.err }

// Scene returns the committed scene state.
func (g *Game) Scene() SceneState {
	if g.rt == nil {
		return SceneState{}
	}
	return g.rt.State()
}

// Stats returns the runtime counters.
func (g *Game) Stats() elm.Stats {
	if g.rt == nil {
		return elm.Stats{}
	}
	return g.rt.Stats()
}

// RunID identifies the current run in logs.
func (g *Game) RunID() uuid.UUID { return g.runID }

// Ticks returns the number of ticks since the last Reset.
func (g *Game) Ticks() int { return g.ticks }

func (g *Game) guard(fn func()) {
	if err := elm.Catch(fn); err != nil {
		g.fail(err)
	}
}

func (g *Game) fail(err error) {
	if g.err == nil {
		g.err = err
	}
	g.log.Error("runtime failure", "err", err, "ticks", g.ticks)
}

// observe logs mode transitions.
func (g *Game) observe() {
	if g.rt == nil {
		return
	}
	s := g.rt.State()
	if s.Mode == g.lastMode {
		return
	}
	if s.Mode == ModeGameOver {
		g.log.Info("game over", "score", s.UI.Score, "caught", s.Caught, "ticks", g.ticks)
	} else {
		g.log.Info("mode changed", "from", g.lastMode, "to", s.Mode)
	}
	g.lastMode = s.Mode
}
