package server

import (
	"fmt"
	"math/rand"
	"reflect"

	log "github.com/sirupsen/logrus"
	"github.com/zucenko/ladders/game"
	"github.com/zucenko/ladders/model"
)

// Step runs one tick of the console at now with at most one input. It
// returns the message for the display and whether there is anything in it.
func (c *Console) Step(now int64, cm model.ClientMessage) (model.ServerMessage, bool) {
	if cm.Input == model.Select {
		return c.selectGame(now, cm.Select), true
	}
	if c.State != CS_PLAY {
		return model.ServerMessage{}, false
	}
	before := c.Session.Status()
	out := model.ServerMessage{Cells: c.Session.Tick(now, game.EventFrom(cm))}
	if status := c.Session.Status(); !reflect.DeepEqual(before, status) {
		out.Status = []model.Status{status}
	}
	if c.Session.Over() {
		over := c.Session.GameOver()
		out.Over = []model.GameOver{over}
		c.log.WithFields(log.Fields{
			"outcome": over.Outcome.Name(),
			"winner":  over.Winner,
			"moves":   c.Session.Moves,
		}).Info("game over")
		c.setState(CS_OVER)
	}
	return out, len(out.Cells) > 0 || len(out.Status) > 0 || len(out.Over) > 0
}

func (c *Console) selectGame(now int64, setup model.Setup) model.ServerMessage {
	if c.State == CS_PLAY {
		return rejected("a game is running")
	}
	layout, found := c.layouts[setup.Board]
	if !found {
		return rejected(fmt.Sprintf("unknown board %d", setup.Board))
	}
	seed, err := c.Seed()
	if err != nil {
		c.log.Errorf("selectGame seed %v", err)
		return rejected("no dice available")
	}
	session, err := game.NewSession(setup, layout, rand.New(rand.NewSource(seed)), now)
	if err != nil {
		c.log.Warnf("selectGame %v", err)
		return rejected(err.Error())
	}
	session.Log = session.Log.WithField("console", c.Id)
	c.Session = session
	c.setState(CS_PLAY)
	c.log.WithFields(log.Fields{
		"board":      setup.Board,
		"difficulty": setup.Difficulty.Name(),
		"players":    setup.Players,
	}).Info("game started")
	return model.ServerMessage{
		Setup:  []model.Setup{setup},
		Cells:  session.Redraw(),
		Status: []model.Status{session.Status()},
	}
}

func rejected(reason string) model.ServerMessage {
	return model.ServerMessage{Errors: []string{reason}}
}

func (c *Console) setState(state ConsoleState) {
	c.State = state
	if c.Server == nil {
		return
	}
	select {
	case c.Server.StateChanges <- c.Info():
	case <-c.Server.Quit:
	}
}

func (c *Console) Info() ConsoleInfo {
	info := ConsoleInfo{Id: c.Id, State: c.State.Name(), Stats: c.Debug.Snapshot()}
	if c.Session != nil {
		info.Setup = c.Session.Setup
	}
	return info
}
