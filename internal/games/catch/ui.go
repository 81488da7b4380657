package catch

import "github.com/vovakirdan/ballcatch/internal/elm"

// Status banner texts.
const (
	ReadyMessage    = "Ready?"
	PausingMessage  = "Pausing"
	GameOverMessage = "Game Over"
)

// UIState is the score and the status banner.
type UIState struct {
	Score         int
	StatusMessage string
	ShowMessage   bool
}

// UpdateUI is the status panel reducer.
func UpdateUI(s UIState, msg UIMsg) UIState {
	switch msg.(type) {
	case IncScore:
		s.Score++
	case ToGameReadyUI:
		s.Score = 0
		s.StatusMessage = ReadyMessage
		s.ShowMessage = true
	case ToGamePlayUI:
		s.StatusMessage = ""
		s.ShowMessage = false
	case ToPauseUI:
		s.StatusMessage = PausingMessage
		s.ShowMessage = true
	case ToGameOverUI:
		s.StatusMessage = GameOverMessage
		s.ShowMessage = true
	case StatusClicked:
		// Handled by the scene.
	default:
		panic(elm.UnhandledMessage(msg))
	}
	return s
}
