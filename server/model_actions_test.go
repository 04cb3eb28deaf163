package server

import (
	"bytes"
	"encoding/gob"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/matryer/way"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zucenko/ladders/model"
)

func startServer(t *testing.T, cfg Config) (*GameServer, *httptest.Server) {
	t.Helper()
	gs := NewGameServer(cfg)
	go gs.Loop()
	router := way.NewRouter()
	router.HandleFunc("GET", "/play", gs.HandleHttpCall())
	router.HandleFunc("GET", "/layouts/:board", gs.HandleLayout())
	router.HandleFunc("GET", "/consoles", gs.HandleConsoles())
	ts := httptest.NewServer(router)
	t.Cleanup(func() {
		ts.Close()
		close(gs.Quit)
	})
	return gs, ts
}

func dial(t *testing.T, ts *httptest.Server) *websocket.Conn {
	t.Helper()
	url := "ws" + strings.TrimPrefix(ts.URL, "http") + "/play"
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })
	return conn
}

func sendMessage(t *testing.T, conn *websocket.Conn, cm model.ClientMessage) {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, gob.NewEncoder(&buf).Encode(cm))
	require.NoError(t, conn.WriteMessage(websocket.BinaryMessage, buf.Bytes()))
}

// readUntil folds server messages into a display until done is satisfied.
func readUntil(t *testing.T, conn *websocket.Conn, display *model.Display, done func(*model.Display) bool) {
	t.Helper()
	require.NoError(t, conn.SetReadDeadline(time.Now().Add(5*time.Second)))
	for !done(display) {
		_, r, err := conn.NextReader()
		require.NoError(t, err)
		var m model.ServerMessage
		require.NoError(t, gob.NewDecoder(r).Decode(&m))
		display.Apply(m)
	}
}

func TestConsolePlaysOverWebsocket(t *testing.T) {
	_, ts := startServer(t, Config{TickPeriod: 2 * time.Millisecond, Seed: 1})
	conn := dial(t, ts)

	sendMessage(t, conn, model.ClientMessage{
		Input:  model.Select,
		Select: model.Setup{Board: 1, Difficulty: model.Easy, Players: 1},
	})
	var display model.Display
	readUntil(t, conn, &display, func(d *model.Display) bool { return d.Setup != nil })
	assert.Equal(t, model.Finish.Descriptor(), display.Cells[0][model.Height-1])

	sendMessage(t, conn, model.ClientMessage{Input: model.MoveOne})
	readUntil(t, conn, &display, func(d *model.Display) bool { return d.Status.Moves == 1 })
	assert.Equal(t, model.Player1Marker.Descriptor(), display.Cells[1][0])

	resp, err := http.Get(ts.URL + "/consoles")
	require.NoError(t, err)
	defer resp.Body.Close()
	var consoles []ConsoleInfo
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&consoles))
	require.Len(t, consoles, 1)
	assert.Equal(t, "PLAY", consoles[0].State)
	assert.Equal(t, 1, consoles[0].Setup.Board)
	assert.GreaterOrEqual(t, consoles[0].Stats.InMessages, int64(2))
	assert.GreaterOrEqual(t, consoles[0].Stats.OutMessages, int64(1))
	assert.NotZero(t, consoles[0].Stats.LastMessageMs)
}

func TestConsoleLimit(t *testing.T) {
	_, ts := startServer(t, Config{MaxConsoles: 1})
	dial(t, ts)

	url := "ws" + strings.TrimPrefix(ts.URL, "http") + "/play"
	_, resp, err := websocket.DefaultDialer.Dial(url, nil)
	require.Error(t, err)
	require.NotNil(t, resp)
	assert.Equal(t, HTTP_SERVER_ERR, resp.StatusCode)
}

func TestHandleLayout(t *testing.T) {
	_, ts := startServer(t, Config{})

	resp, err := http.Get(ts.URL + "/layouts/1")
	require.NoError(t, err)
	body, err := io.ReadAll(resp.Body)
	resp.Body.Close()
	require.NoError(t, err)
	assert.Equal(t, HTTP_SUCCESS, resp.StatusCode)
	assert.Equal(t, model.ClassicLayout.String(), string(body))

	resp, err = http.Get(ts.URL + "/layouts/9")
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, HTTP_NOT_FOUND, resp.StatusCode)

	resp, err = http.Get(ts.URL + "/layouts/classic")
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, HTTP_BAD_REQUEST, resp.StatusCode)
}

func TestResponseCodes(t *testing.T) {
	assert.Equal(t, HTTP_SUCCESS, CONSOLE_READY.ToHttp())
	assert.Equal(t, HTTP_SERVER_ERR, CONSOLE_LIMIT.ToHttp())
	assert.Equal(t, HTTP_BAD_REQUEST, CONSOLE_INVALID.ToHttp())
	assert.Panics(t, func() { ResponseCode(99).ToHttp() })
}
