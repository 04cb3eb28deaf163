package game

import (
	"errors"
	"fmt"

	log "github.com/sirupsen/logrus"
	"github.com/zucenko/ladders/model"
)

var (
	ErrUnknownDifficulty = errors.New("unknown difficulty")
	ErrPlayerCount       = errors.New("a game has one or two players")
)

// Budget returns the time budget of a difficulty tier.
func Budget(d model.Difficulty) (int64, error) {
	switch d {
	case model.Easy:
		return Unlimited, nil
	case model.Medium:
		return MediumBudget, nil
	case model.Hard:
		return HardBudget, nil
	default:
		return 0, fmt.Errorf("difficulty %d: %w", d, ErrUnknownDifficulty)
	}
}

// Event is one discrete input. DX and DY are only read for Nudge.
type Event struct {
	Input  model.Input
	DX, DY int
}

func EventFrom(m model.ClientMessage) Event {
	return Event{Input: m.Input, DX: m.DX, DY: m.DY}
}

// Session owns every piece of mutable game state. It is driven by Tick only
// and must not be shared between goroutines.
type Session struct {
	Setup   model.Setup
	Board   *model.Board
	Players []*model.Player
	Dice    *Dice
	Clock   *TurnClock
	Flash   *FlashScheduler
	Active  int
	Paused  bool
	Moves   int
	Outcome model.Outcome
	Winner  int32
	Log     log.FieldLogger
}

func NewSession(setup model.Setup, layout model.Layout, rng Rand, now int64) (*Session, error) {
	budget, err := Budget(setup.Difficulty)
	if err != nil {
		return nil, err
	}
	if setup.Players != 1 && setup.Players != 2 {
		return nil, fmt.Errorf("%d players: %w", setup.Players, ErrPlayerCount)
	}
	board, err := model.NewBoard(layout)
	if err != nil {
		return nil, fmt.Errorf("load board %d: %w", setup.Board, err)
	}
	start, found := board.Find(model.Start)
	if !found {
		start = model.Point{}
	}
	players := make([]*model.Player, setup.Players)
	for i := range players {
		players[i] = &model.Player{Id: int32(i + 1), X: start.X, Y: start.Y, Visible: true}
	}
	return &Session{
		Setup:   setup,
		Board:   board,
		Players: players,
		Dice:    NewDice(rng),
		Clock:   NewTurnClock(budget, setup.Players, now),
		Flash:   NewFlashScheduler(setup.Players, now),
		Log: log.WithFields(log.Fields{
			"board":      setup.Board,
			"difficulty": setup.Difficulty.Name(),
			"players":    setup.Players,
		}),
	}, nil
}

func (s *Session) Over() bool {
	return s.Outcome != model.Playing
}

// Tick advances the session to now: it charges the time elapsed to the player
// holding the turn, handles at most one event, then runs the dice and flash
// cadences. It returns the cells to redraw. A win in the event beats a budget
// running out in the same tick. Once the session is over Tick does nothing.
func (s *Session) Tick(now int64, ev Event) []model.CellUpdate {
	if s.Over() {
		return nil
	}
	charged := s.Active
	expired := !s.Paused && s.Clock.Tick(charged, now)
	updates := s.handle(now, ev)
	if s.Over() {
		return updates
	}
	if expired {
		s.expire(charged)
		return updates
	}
	if s.Paused {
		return updates
	}
	s.Dice.Tick(now)
	for i, p := range s.Players {
		if u, ok := s.Flash.Tick(i, p, s.view(p.X, p.Y, i), now); ok {
			updates = append(updates, u)
		}
	}
	return updates
}

func (s *Session) handle(now int64, ev Event) []model.CellUpdate {
	switch ev.Input {
	case model.NoInput, model.Select:
		return nil
	case model.Pause:
		s.togglePause(now)
		return nil
	}
	if s.Paused {
		return nil
	}
	if ev.Input == model.ToggleRoll {
		if !s.Dice.Rolling {
			s.Dice.Start(now)
			s.Log.WithField("player", s.Players[s.Active].Id).Debug("dice rolling")
			return nil
		}
		value := s.Dice.Stop()
		s.Log.WithFields(log.Fields{"player": s.Players[s.Active].Id, "dice": value}).Debug("dice stopped")
		return s.advance(now, value)
	}
	if s.Dice.Rolling {
		return nil
	}
	switch ev.Input {
	case model.MoveOne:
		return s.advance(now, 1)
	case model.MoveTwo:
		return s.advance(now, 2)
	case model.Nudge:
		dx, dy, ok := NudgeStep(ev.DX, ev.DY)
		if !ok {
			return nil
		}
		return s.move(now, log.Fields{"dx": dx, "dy": dy}, func(p *model.Player) { Nudge(p, dx, dy) })
	}
	return nil
}

func (s *Session) togglePause(now int64) {
	if !s.Paused {
		s.Paused = true
		return
	}
	s.Paused = false
	s.Dice.Anchor(now)
	s.Clock.Anchor(now)
	s.Flash.Anchor(now)
}

// advance is a committed move: it counts and, with two players, passes the
// turn.
func (s *Session) advance(now int64, steps int) []model.CellUpdate {
	s.Moves++
	updates := s.move(now, log.Fields{"steps": steps, "moves": s.Moves}, func(p *model.Player) { Advance(p, steps) })
	if !s.Over() && len(s.Players) > 1 {
		s.Active = (s.Active + 1) % len(s.Players)
	}
	return updates
}

// move applies fn to the active player, then settles: tunnels are resolved
// and the finish is checked. fields describe the command in the log.
func (s *Session) move(now int64, fields log.Fields, fn func(p *model.Player)) []model.CellUpdate {
	p := s.Players[s.Active]
	from := p.Position()
	fn(p)
	entry := s.Log.WithFields(fields).WithField("player", p.Id)
	entry.WithFields(log.Fields{"x": p.X, "y": p.Y, "ascended": p.Ascended}).Debug("moved")
	if Resolve(s.Board, p) {
		entry.WithFields(log.Fields{"x": p.X, "y": p.Y}).Debug("tunnel")
	}
	s.Flash.Reset(s.Active, p, now)
	updates := []model.CellUpdate{
		{X: from.X, Y: from.Y, Cell: s.view(from.X, from.Y, -1)},
		{X: p.X, Y: p.Y, Cell: p.Marker()},
	}
	if Finished(s.Board, p) {
		s.Outcome = model.Won
		s.Winner = p.Id
		entry.Info("finish reached")
	}
	return updates
}

// expire ends the game because player i ran out of time.
func (s *Session) expire(i int) {
	if len(s.Players) == 1 {
		s.Outcome = model.TimedOut
		s.Log.Info("time is up")
		return
	}
	loser := s.Players[i]
	s.Outcome = model.Forfeit
	s.Winner = s.Players[(i+1)%len(s.Players)].Id
	s.Log.WithFields(log.Fields{"loser": loser.Id, "winner": s.Winner}).Info("forfeit")
}

// view is what the cell shows: the marker of a visible player standing on it
// other than skip, else the static descriptor.
func (s *Session) view(x, y int, skip int) model.Descriptor {
	for i, p := range s.Players {
		if i != skip && p.Visible && p.X == x && p.Y == y {
			return p.Marker()
		}
	}
	return s.Board.Get(x, y)
}

// Redraw returns every cell of the board with the players on top.
func (s *Session) Redraw() []model.CellUpdate {
	updates := make([]model.CellUpdate, 0, model.Width*model.Height+len(s.Players))
	for x := 0; x < model.Width; x++ {
		for y := 0; y < model.Height; y++ {
			updates = append(updates, model.CellUpdate{X: x, Y: y, Cell: s.Board.Get(x, y)})
		}
	}
	for i := len(s.Players) - 1; i >= 0; i-- {
		p := s.Players[i]
		updates = append(updates, model.CellUpdate{X: p.X, Y: p.Y, Cell: p.Marker()})
	}
	return updates
}

func (s *Session) Status() model.Status {
	return model.Status{
		Dice:      s.Dice.Value,
		Rolling:   s.Dice.Rolling,
		Moves:     s.Moves,
		Active:    s.Players[s.Active].Id,
		Paused:    s.Paused,
		Remaining: s.Clock.Budgets(),
	}
}

func (s *Session) GameOver() model.GameOver {
	return model.GameOver{Outcome: s.Outcome, Winner: s.Winner}
}
