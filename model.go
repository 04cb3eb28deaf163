package main

import (
	"bytes"
	"encoding/gob"
	"fmt"

	"github.com/gorilla/websocket"
	log "github.com/sirupsen/logrus"
	"github.com/zucenko/ladders/model"
)

// Selection is the pre-game surface: board, difficulty and player count.
type Selection struct {
	Setup  model.Setup
	Boards []int
}

func NewSelection(boards []int) Selection {
	s := Selection{Boards: boards, Setup: model.Setup{Difficulty: model.Easy, Players: 1}}
	if len(boards) > 0 {
		s.Setup.Board = boards[0]
	}
	return s
}

func (s *Selection) NextBoard() {
	if len(s.Boards) == 0 {
		return
	}
	for i, b := range s.Boards {
		if b == s.Setup.Board {
			s.Setup.Board = s.Boards[(i+1)%len(s.Boards)]
			return
		}
	}
	s.Setup.Board = s.Boards[0]
}

func (s *Selection) Message() model.ClientMessage {
	return model.ClientMessage{Input: model.Select, Select: s.Setup}
}

// Link is the client end of a console connection.
type Link struct {
	conn     *websocket.Conn
	Incoming chan model.ServerMessage
	Errors   chan error
}

func Dial(url string) (*Link, error) {
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	if err != nil {
		return nil, fmt.Errorf("dial %s: %w", url, err)
	}
	l := &Link{
		conn:     conn,
		Incoming: make(chan model.ServerMessage, 64),
		Errors:   make(chan error, 1),
	}
	go l.read()
	return l, nil
}

func (l *Link) read() {
	for {
		_, reader, err := l.conn.NextReader()
		if err != nil {
			l.Errors <- err
			return
		}
		var m model.ServerMessage
		if err := gob.NewDecoder(reader).Decode(&m); err != nil {
			l.Errors <- err
			return
		}
		l.Incoming <- m
	}
}

func (l *Link) Send(cm model.ClientMessage) error {
	var buf bytes.Buffer
	if err := gob.NewEncoder(&buf).Encode(cm); err != nil {
		return err
	}
	return l.conn.WriteMessage(websocket.BinaryMessage, buf.Bytes())
}

func (l *Link) Close() error {
	return l.conn.Close()
}

// Model is everything the client window shows.
type Model struct {
	Display   model.Display
	Selection Selection
	Offline   error
}

// Drain applies whatever the link delivered since the last frame.
func (m *Model) Drain(incoming <-chan model.ServerMessage, errs <-chan error) int {
	n := 0
	for {
		select {
		case msg := <-incoming:
			m.Display.Apply(msg)
			for _, e := range msg.Errors {
				log.WithField("board", m.Selection.Setup.Board).Warn(e)
			}
			n++
		case err := <-errs:
			log.Errorf("link closed: %v", err)
			m.Offline = err
		default:
			return n
		}
	}
}

// Choosing reports whether the selection surface is shown.
func (m *Model) Choosing() bool {
	return m.Display.Setup == nil || m.Display.Over != nil
}
