package main

import (
	"net/http"
	"os"

	"github.com/matryer/way"
	log "github.com/sirupsen/logrus"
	"github.com/zucenko/sweeper/server"
)

type Server struct {
	router     *way.Router
	GameServer *server.GameServer
}

func main() {
	if level, err := log.ParseLevel(os.Getenv("LOG_LEVEL")); err == nil {
		log.SetLevel(level)
	}
	cfg, err := server.LoadConfig()
	if err != nil {
		log.Fatal(err)
	}
	newState, err := server.Load(cfg)
	if err != nil {
		log.Fatal(err)
	}

	s := Server{
		GameServer: server.NewGameServer(cfg.MaxSessions, newState),
	}
	go s.GameServer.Loop()
	s.routes()
	log.Infof("serving %s on :%s", URI_WS, cfg.Port)
	log.Fatalln(http.ListenAndServe(":"+cfg.Port, s.router))
}
