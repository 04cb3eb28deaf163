package model

// ServerMessage carries any number of updates for one console. Empty slices
// mean nothing of that sort changed.
type ServerMessage struct {
	Setup  []Setup
	Cells  []CellUpdate
	Status []Status
	Over   []GameOver
	Errors []string
}

type Setup struct {
	Board      int
	Difficulty Difficulty
	Players    int
}

// CellUpdate asks the display to show Cell at (X, Y).
type CellUpdate struct {
	X, Y int
	Cell Descriptor
}

// Status is the readout next to the matrix: dice, moves and timers.
type Status struct {
	Dice      int
	Rolling   bool
	Moves     int
	Active    int32
	Paused    bool
	Remaining []int64
}

type Outcome int

const (
	Playing Outcome = iota
	Won
	TimedOut
	Forfeit
)

func (o Outcome) Name() string {
	switch o {
	case Playing:
		return "PLAYING"
	case Won:
		return "WON"
	case TimedOut:
		return "TIMED_OUT"
	case Forfeit:
		return "FORFEIT"
	default:
		return "N/A"
	}
}

type GameOver struct {
	Outcome Outcome
	Winner  int32
}

type Difficulty int

const (
	Easy Difficulty = iota + 1
	Medium
	Hard
)

func (d Difficulty) Name() string {
	switch d {
	case Easy:
		return "EASY"
	case Medium:
		return "MEDIUM"
	case Hard:
		return "HARD"
	default:
		return "N/A"
	}
}

type Input int

const (
	NoInput Input = iota
	MoveOne
	MoveTwo
	ToggleRoll
	Pause
	Nudge
	Select
)

func (i Input) Name() string {
	switch i {
	case NoInput:
		return "NONE"
	case MoveOne:
		return "MOVE_ONE"
	case MoveTwo:
		return "MOVE_TWO"
	case ToggleRoll:
		return "TOGGLE_ROLL"
	case Pause:
		return "PAUSE"
	case Nudge:
		return "NUDGE"
	case Select:
		return "SELECT"
	default:
		return "N/A"
	}
}

// ClientMessage is one input event from a console. DX and DY are used by
// Nudge, Select by Select.
type ClientMessage struct {
	Input  Input
	DX, DY int
	Select Setup
}
