package server

import (
	"sync/atomic"
	"time"

	"github.com/gorilla/websocket"
	log "github.com/sirupsen/logrus"
	"github.com/zucenko/ladders/game"
	"github.com/zucenko/ladders/model"
)

type GameServer struct {
	Config          Config
	Upgrader        *websocket.Upgrader
	ConsoleRequests chan ConsoleRequest
	StateChanges    chan ConsoleInfo
	Closed          chan string
	ListRequests    chan chan []ConsoleInfo
	Quit            chan struct{}

	consoles map[string]ConsoleInfo
	live     map[string]*Console
}

type Config struct {
	Layouts     model.Catalog
	TickPeriod  time.Duration
	MaxConsoles int
	// Seed fixes the dice of every game when not zero.
	Seed int64
}

type ConsoleState int

const (
	CS_NEW ConsoleState = iota + 1
	CS_PLAY
	CS_OVER
	CS_ERR
)

// Console is one game box: one link, one clock, at most one game at a time.
// Session and State are owned by the goroutine running Loop.
type Console struct {
	State   ConsoleState
	Id      string
	Server  *GameServer
	Conn    *websocket.Conn
	Session *game.Session
	Clock   Clock
	Seed    func() (int64, error)

	layouts model.Catalog

	Events         chan model.ClientMessage
	MessagesToSend chan model.ServerMessage
	Errors         chan error
	Done           chan struct{}

	log log.FieldLogger

	Debug LinkStats
}

// LinkStats counts link traffic. The link goroutines write it, the registry
// reads it.
type LinkStats struct {
	inMessages  atomic.Int64
	outMessages atomic.Int64
	pings       atomic.Int64
	lastMessage atomic.Int64
	lastPing    atomic.Int64
}

func (l *LinkStats) messageIn(at time.Time) {
	l.inMessages.Add(1)
	l.lastMessage.Store(at.UnixMilli())
}

func (l *LinkStats) messageOut() {
	l.outMessages.Add(1)
}

func (l *LinkStats) ping(at time.Time) {
	l.pings.Add(1)
	l.lastPing.Store(at.UnixMilli())
}

func (l *LinkStats) Snapshot() ConsoleStats {
	return ConsoleStats{
		InMessages:    l.inMessages.Load(),
		OutMessages:   l.outMessages.Load(),
		Pings:         l.pings.Load(),
		LastMessageMs: l.lastMessage.Load(),
		LastPingMs:    l.lastPing.Load(),
	}
}

// ConsoleStats is LinkStats as listed by /consoles. Times are unix
// milliseconds, 0 when nothing happened yet.
type ConsoleStats struct {
	InMessages    int64 `json:"in_messages"`
	OutMessages   int64 `json:"out_messages"`
	Pings         int64 `json:"pings"`
	LastMessageMs int64 `json:"last_message_ms"`
	LastPingMs    int64 `json:"last_ping_ms"`
}

// ConsoleInfo is the registry view of a console.
type ConsoleInfo struct {
	Id    string       `json:"id"`
	State string       `json:"state"`
	Setup model.Setup  `json:"setup"`
	Stats ConsoleStats `json:"stats"`
}

// Clock is a monotonic millisecond counter.
type Clock interface {
	Now() int64
}

type MonotonicClock struct {
	start time.Time
}

func NewMonotonicClock() *MonotonicClock {
	return &MonotonicClock{start: time.Now()}
}

func (c *MonotonicClock) Now() int64 {
	return time.Since(c.start).Milliseconds()
}
