package server

import (
	"encoding/gob"
	"encoding/json"
	"net"
	"net/http"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/matryer/way"
	log "github.com/sirupsen/logrus"
	"github.com/zucenko/ladders/game"
	"github.com/zucenko/ladders/model"
)

const handshakeTimeout = 200 * time.Millisecond

func NewGameServer(cfg Config) *GameServer {
	if cfg.TickPeriod <= 0 {
		cfg.TickPeriod = 10 * time.Millisecond
	}
	if cfg.Layouts == nil {
		cfg.Layouts = model.DefaultCatalog()
	}
	return &GameServer{
		Config:          cfg,
		Upgrader:        &websocket.Upgrader{},
		ConsoleRequests: make(chan ConsoleRequest),
		StateChanges:    make(chan ConsoleInfo),
		Closed:          make(chan string),
		ListRequests:    make(chan chan []ConsoleInfo),
		Quit:            make(chan struct{}),
		consoles:        make(map[string]ConsoleInfo),
		live:            make(map[string]*Console),
	}
}

func (s *GameServer) seed() (int64, error) {
	if s.Config.Seed != 0 {
		return s.Config.Seed, nil
	}
	return game.NewSeed()
}

func (s *GameServer) HandleHttpCall() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log.Debug("HandleHttpCall - connection received")

		cas := make(chan ConsoleAwaiting, 1)
		select {
		case s.ConsoleRequests <- ConsoleRequest{ConsoleAwaiting: cas}:
		case <-time.After(handshakeTimeout):
			log.Warn("ConsoleRequests TIMEOUTED")
			w.WriteHeader(HTTP_TIMEOUT)
			return
		}

		var ca ConsoleAwaiting
		select {
		case ca = <-cas:
			if ca.ResponseCode != CONSOLE_READY {
				log.Warnf("HandleHttpCall refused, code:%d", ca.ResponseCode)
				w.WriteHeader(ca.ResponseCode.ToHttp())
				return
			}
		case <-time.After(handshakeTimeout):
			log.Warn("HandleHttpCall ConsoleAwaiting <- TIMEOUTED")
			w.WriteHeader(HTTP_TIMEOUT)
			return
		}

		con, err := s.Upgrader.Upgrade(w, r, nil)
		if err != nil {
			// Upgrade has already answered the request
			log.Warnf("HandleHttpCall websocket upgrade err %v", err)
			s.close(ca.Console.Id)
			return
		}
		defer con.Close()

		ca.Console.Run(con)
		s.close(ca.Console.Id)
	}
}

func (s *GameServer) close(id string) {
	select {
	case s.Closed <- id:
	case <-s.Quit:
	}
}

// HandleLayout serves the text form of a board, /layouts/:board.
func (s *GameServer) HandleLayout() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		board, err := strconv.Atoi(way.Param(r.Context(), "board"))
		if err != nil {
			w.WriteHeader(HTTP_BAD_REQUEST)
			return
		}
		layout, found := s.Config.Layouts[board]
		if !found {
			w.WriteHeader(HTTP_NOT_FOUND)
			return
		}
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		if _, err := w.Write([]byte(layout.String())); err != nil {
			log.Warnf("HandleLayout write %v", err)
		}
	}
}

func (s *GameServer) HandleConsoles() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		reply := make(chan []ConsoleInfo, 1)
		select {
		case s.ListRequests <- reply:
		case <-time.After(handshakeTimeout):
			w.WriteHeader(HTTP_TIMEOUT)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(<-reply); err != nil {
			log.Warnf("HandleConsoles encode %v", err)
		}
	}
}

// Loop owns the console registry. It returns when Quit is closed.
func (s *GameServer) Loop() {
	log.Info("GameServer.Loop starting")
	for {
		select {
		case req := <-s.ConsoleRequests:
			if len(s.Config.Layouts) == 0 {
				req.ConsoleAwaiting <- ConsoleAwaiting{ResponseCode: CONSOLE_INVALID}
				continue
			}
			if s.Config.MaxConsoles > 0 && len(s.consoles) >= s.Config.MaxConsoles {
				log.Warnf("GameServer.Loop console limit %d reached", s.Config.MaxConsoles)
				req.ConsoleAwaiting <- ConsoleAwaiting{ResponseCode: CONSOLE_LIMIT}
				continue
			}
			c := s.NewConsole()
			s.consoles[c.Id] = c.Info()
			s.live[c.Id] = c
			log.WithField("console", c.Id).Info("console registered")
			req.ConsoleAwaiting <- ConsoleAwaiting{ResponseCode: CONSOLE_READY, Console: c}
		case info := <-s.StateChanges:
			if _, found := s.consoles[info.Id]; found {
				s.consoles[info.Id] = info
			}
		case id := <-s.Closed:
			delete(s.consoles, id)
			delete(s.live, id)
			log.WithField("console", id).Info("console closed")
		case reply := <-s.ListRequests:
			list := make([]ConsoleInfo, 0, len(s.consoles))
			for id, info := range s.consoles {
				if c, found := s.live[id]; found {
					info.Stats = c.Debug.Snapshot()
				}
				list = append(list, info)
			}
			reply <- list
		case <-s.Quit:
			log.Info("GameServer.Loop stopped")
			return
		}
	}
}

func (s *GameServer) NewConsole() *Console {
	c := NewConsole(s.Config.Layouts, NewMonotonicClock(), s.seed)
	c.Server = s
	return c
}

func NewConsole(layouts model.Catalog, clock Clock, seed func() (int64, error)) *Console {
	id := uuid.New().String()
	return &Console{
		State:          CS_NEW,
		Id:             id,
		Clock:          clock,
		Seed:           seed,
		layouts:        layouts,
		Events:         make(chan model.ClientMessage, 16),
		MessagesToSend: make(chan model.ServerMessage, 64),
		Errors:         make(chan error, 2),
		Done:           make(chan struct{}),
		log:            log.WithField("console", id),
	}
}

// Run serves a connected console until its link fails or the server quits.
func (c *Console) Run(conn *websocket.Conn) {
	c.Conn = conn
	conn.SetPingHandler(
		func(message string) error {
			err := conn.WriteControl(websocket.PongMessage, []byte(message), time.Now().Add(time.Second))
			c.Debug.ping(time.Now())
			if err == websocket.ErrCloseSent {
				return nil
			} else if e, ok := err.(net.Error); ok && e.Timeout() {
				return nil
			}
			return err
		})
	go c.LoopChannelRead()
	go c.LoopChannelWrite()
	c.Loop()
}

// Loop is the cooperative game loop: every tick it takes at most one event,
// reads the clock once and ships whatever changed.
func (c *Console) Loop() {
	period := 10 * time.Millisecond
	var quit chan struct{}
	if c.Server != nil {
		period = c.Server.Config.TickPeriod
		quit = c.Server.Quit
	}
	ticker := time.NewTicker(period)
	defer ticker.Stop()
	defer close(c.Done)
	c.log.Info("Console.Loop start")
	for {
		select {
		case err := <-c.Errors:
			c.log.Warnf("Console.Loop link failed: %v", err)
			c.setState(CS_ERR)
			return
		case <-quit:
			c.log.Info("Console.Loop server stopped")
			return
		case <-ticker.C:
			var msg model.ClientMessage
			select {
			case msg = <-c.Events:
			default:
			}
			if out, ok := c.Step(c.Clock.Now(), msg); ok {
				c.send(out)
			}
		}
	}
}

func (c *Console) send(m model.ServerMessage) {
	select {
	case c.MessagesToSend <- m:
	default:
		c.log.Warn("Console.send dropping message, MessagesToSend FULL")
	}
}

func (c *Console) fail(err error) {
	select {
	case c.Errors <- err:
	default:
	}
}

func (c *Console) LoopChannelRead() {
	c.log.Debug("LoopChannelRead STARTED")
loop:
	for {
		_, r, err := c.Conn.NextReader()
		if err != nil {
			c.fail(err)
			break loop
		}
		cm := model.ClientMessage{}
		if err := gob.NewDecoder(r).Decode(&cm); err != nil {
			c.log.Warnf("LoopChannelRead cant decode %v", err)
			c.fail(err)
			break loop
		}
		c.Debug.messageIn(time.Now())

		select {
		case c.Events <- cm:
		default:
			c.log.Warnf("Dropping %s, Console.Events FULL", cm.Input.Name())
		}
	}
	c.log.Debug("LoopChannelRead ENDED")
}

// this function only consumes. no worries about full buffer stuck
func (c *Console) LoopChannelWrite() {
	c.log.Debug("LoopChannelWrite STARTED")
loop:
	for {
		select {
		case <-c.Done:
			break loop
		case mes := <-c.MessagesToSend:
			w, err := c.Conn.NextWriter(websocket.BinaryMessage)
			if err != nil {
				c.log.Warnf("LoopChannelWrite cant get writer %v", err)
				c.fail(err)
				break loop
			}
			if err = gob.NewEncoder(w).Encode(mes); err != nil {
				c.log.Warnf("LoopChannelWrite cant encode %v", err)
				c.fail(err)
				break loop
			}
			if err = w.Close(); err != nil {
				c.log.Warnf("LoopChannelWrite cant flush %v", err)
				c.fail(err)
				break loop
			}
			c.Debug.messageOut()
		}
	}
	c.log.Debug("LoopChannelWrite ENDED")
}
