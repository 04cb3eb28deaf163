package main

import (
	"net/http"
	"os"

	"github.com/matryer/way"
	log "github.com/sirupsen/logrus"
	"github.com/zucenko/ladders/server"
)

type Server struct {
	router     *way.Router
	GameServer *server.GameServer
}

func main() {
	cfg, err := LoadConfig()
	if err != nil {
		log.Fatalf("config: %v", err)
	}
	level, err := log.ParseLevel(cfg.LogLevel)
	if err != nil {
		log.Fatalf("config: %v", err)
	}
	log.SetLevel(level)
	log.SetOutput(os.Stdout)

	layouts, err := server.LoadLayouts(cfg.LayoutFile)
	if err != nil {
		log.Fatalf("layouts: %v", err)
	}

	Server := Server{
		GameServer: server.NewGameServer(server.Config{
			Layouts:     layouts,
			TickPeriod:  cfg.TickPeriod,
			MaxConsoles: cfg.MaxConsoles,
			Seed:        cfg.Seed,
		}),
	}
	go Server.GameServer.Loop()
	Server.routes()
	log.Infof("listening on :%s", cfg.Port)
	log.Fatalln(http.ListenAndServe(":"+cfg.Port, Server.router))
}
