package server

import (
	"github.com/gorilla/websocket"
	"github.com/zucenko/sweeper/model"
)

type GameServer struct {
	GameSessions map[int32]*GameSession
	GameRequests chan GameRequest
	Finished     chan int32
	Upgrader     *websocket.Upgrader
	MaxSessions  int
	// NewState builds the GameState for every new session.
	NewState func() *model.GameState

	nextId int32
}

type GameSessionState int

const (
	GS_NEW GameSessionState = iota
	GS_PLAY
	GS_ERR
	GS_OVER
)

// GameSession owns one GameState. Only its Loop goroutine touches it.
type GameSession struct {
	Id                    int32
	State                 GameSessionState
	Model                 *model.GameState
	Player                *PlayerSession
	Errors                chan int32
	Events                chan PlayerEvent
	PlayerConnectRequests chan PlayerConnectRequest
	finished              chan<- int32
}

type PlayerSessionState int

const (
	PS_NEW PlayerSessionState = iota + 1
	PS_PLAY
	PS_OVER
	PS_ERR
)

type PlayerSession struct {
	State       PlayerSessionState
	Id          int32
	GameSession *GameSession
	Conn        *websocket.Conn
	GameOver    chan struct{}
	// closed by the session loop to stop the socket loops
	done chan struct{}

	MessagesToSend chan model.ServerMessage
}
