package main

import (
	"github.com/matryer/way"
)

const URI_WS = "/play"
const URI_LAYOUT = "/layouts/:board"
const URI_CONSOLES = "/consoles"

func (s *Server) routes() {
	s.router = way.NewRouter()
	s.router.HandleFunc("GET", URI_WS, s.GameServer.HandleHttpCall())
	s.router.HandleFunc("GET", URI_LAYOUT, s.GameServer.HandleLayout())
	s.router.HandleFunc("GET", URI_CONSOLES, s.GameServer.HandleConsoles())
}
