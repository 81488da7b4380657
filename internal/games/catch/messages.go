package catch

// Msg is a message for the scene reducer.
type Msg interface {
	sceneMsg()
}

// BallMsg is a message for a single ball.
type BallMsg interface {
	ballMsg()
}

// BarMsg is a message for the bar.
type BarMsg interface {
	barMsg()
}

// UIMsg is a message for the status panel.
type UIMsg interface {
	uiMsg()
}

// Scene messages.
type (
	// InitGame puts the scene back into Ready with a fresh bar and ball.
	InitGame struct{}

	// OnInput carries the input state after it changed.
	OnInput struct {
		Input InputState
	}

	// OnChangedCanvasSize reports a new play field size.
	OnChangedCanvasSize struct {
		Size Size
	}

	// WrapBallMessage routes a ball message to the ball at index ID.
	WrapBallMessage struct {
		ID  int
		Msg BallMsg
	}

	// WrapBarMessage routes a message to the bar.
	WrapBarMessage struct {
		Msg BarMsg
	}

	// WrapUIMessage routes a message to the status panel.
	WrapUIMessage struct {
		Msg UIMsg
	}
)

func (InitGame) sceneMsg()            {}
func (OnInput) sceneMsg()             {}
func (OnChangedCanvasSize) sceneMsg() {}
func (WrapBallMessage) sceneMsg()     {}
func (WrapBarMessage) sceneMsg()      {}
func (WrapUIMessage) sceneMsg()       {}

// Ball messages.
type (
	// NextFrame advances the ball by Dt seconds.
	NextFrame struct {
		Dt float64
	}

	// OnCollisionBar reports that the ball touched the bar.
	OnCollisionBar struct{}

	// OnOutOfArea reports that the ball fell below the field.
	OnOutOfArea struct{}
)

func (NextFrame) ballMsg()      {}
func (OnCollisionBar) ballMsg() {}
func (OnOutOfArea) ballMsg()    {}

// Bar messages.
type (
	// MoveBar moves the bar to a column.
	MoveBar struct {
		Position BarPosition
	}

	// UpdateInitialBarPos replaces the column coordinates, e.g. after a resize.
	UpdateInitialBarPos struct {
		MovePos MovePos
	}
)

func (MoveBar) barMsg()             {}
func (UpdateInitialBarPos) barMsg() {}

// UI messages.
type (
	IncScore      struct{}
	ToGameReadyUI struct{}
	ToGamePlayUI  struct{}
	ToPauseUI     struct{}
	ToGameOverUI  struct{}

	// StatusClicked is sent when the status banner is clicked.
	StatusClicked struct{}
)

func (IncScore) uiMsg()      {}
func (ToGameReadyUI) uiMsg() {}
func (ToGamePlayUI) uiMsg()  {}
func (ToPauseUI) uiMsg()     {}
func (ToGameOverUI) uiMsg()  {}
func (StatusClicked) uiMsg() {}

// Size is the play field size in cells.
type Size struct {
	W, H int
}

