package server

import (
	"encoding/gob"
	"net"
	"net/http"
	"time"

	"github.com/gorilla/websocket"
	log "github.com/sirupsen/logrus"
	"github.com/zucenko/sweeper/model"
)

const (
	requestTimeout = time.Second
	// a session nobody connects to within this window is dropped
	connectTimeout = 5 * time.Second
	sendBuffer     = 10
)

func NewGameServer(maxSessions int, newState func() *model.GameState) *GameServer {
	if newState == nil {
		newState = func() *model.GameState { return model.NewGameState(nil) }
	}
	return &GameServer{
		GameSessions: make(map[int32]*GameSession),
		GameRequests: make(chan GameRequest),
		Finished:     make(chan int32),
		Upgrader:     &websocket.Upgrader{},
		MaxSessions:  maxSessions,
		NewState:     newState,
	}
}

func (s *GameServer) HandleHttpCall() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log.Debug("HandleHttpCall - connection received")

		gcas := make(chan GameContextAwaiting, 1)
		select {
		case s.GameRequests <- GameRequest{GameContextAwaiting: gcas}:
		case <-time.After(requestTimeout):
			log.Warn("GameRequests TIMEOUTED")
			w.WriteHeader(http.StatusRequestTimeout)
			return
		}

		var gca GameContextAwaiting
		select {
		case gca = <-gcas:
			if gca.ResponseCode != GAME_READY {
				log.Warnf("HandleHttpCall refused, code:%d", gca.ResponseCode)
				w.WriteHeader(gca.ResponseCode.ToHttp())
				return
			}
		case <-time.After(requestTimeout):
			log.Warn("HandleHttpCall GameContextAwaiting <- TIMEOUTED")
			w.WriteHeader(http.StatusRequestTimeout)
			return
		}

		// Upgrade writes its own error response.
		con, err := s.Upgrader.Upgrade(w, r, nil)
		if err != nil {
			log.Warnf("HandleHttpCall websocket upgrade err %v", err)
			return
		}
		defer con.Close()

		gameOver := make(chan struct{})
		select {
		case gca.GameSession.PlayerConnectRequests <- PlayerConnectRequest{
			Con:      con,
			GameOver: gameOver}:
		case <-time.After(requestTimeout):
			log.Warn("HandleHttpCall PlayerConnectRequests TIMEOUTED")
			return
		}

		<-gameOver
		log.WithField("session", gca.GameSession.Id).Info("HandleHttpCall game over")
	}
}

// Loop creates and retires sessions. It never returns.
func (s *GameServer) Loop() {
	log.Info("GameServer.Loop starting")
	for {
		select {
		case gameReq := <-s.GameRequests:
			if s.MaxSessions > 0 && len(s.GameSessions) >= s.MaxSessions {
				log.Warnf("GameServer.Loop session limit %d reached", s.MaxSessions)
				gameReq.GameContextAwaiting <- GameContextAwaiting{ResponseCode: GAME_BUSY}
				continue
			}
			s.nextId++
			gs := &GameSession{
				Id:                    s.nextId,
				State:                 GS_NEW,
				Model:                 s.NewState(),
				Errors:                make(chan int32),
				Events:                make(chan PlayerEvent),
				PlayerConnectRequests: make(chan PlayerConnectRequest),
				finished:              s.Finished,
			}
			s.GameSessions[gs.Id] = gs
			go gs.Loop()
			log.WithField("session", gs.Id).Info("GameServer.Loop created session")

			gameReq.GameContextAwaiting <- GameContextAwaiting{
				ResponseCode: GAME_READY,
				GameSession:  gs,
			}
		case id := <-s.Finished:
			delete(s.GameSessions, id)
			log.WithField("session", id).Info("GameServer.Loop removed session")
		}
	}
}

func (gs *GameSession) Loop() {
	logger := log.WithField("session", gs.Id)
	logger.Info("GameSession.Loop start")
	defer func() {
		gs.finished <- gs.Id
	}()

	waiting := time.After(connectTimeout)
	for {
		select {
		case <-waiting:
			logger.Warn("GameSession.Loop no player connected")
			gs.State = GS_OVER
			return
		case pcr := <-gs.PlayerConnectRequests:
			waiting = nil
			gs.addPlayer(pcr.Con, pcr.GameOver)
			gs.State = GS_PLAY
			gs.Player.State = PS_PLAY
			gs.send(model.MakeServerMessage(gs.Model, true))
		case errPlayer := <-gs.Errors:
			gs.State = GS_OVER
			gs.Player.State = PS_OVER
			logger.Infof("GameSession.Loop ending, player %d gone, %s/%s", errPlayer, gs.State.Name(), gs.Player.State.Name())
			close(gs.Player.done)
			close(gs.Player.GameOver)
			return
		case pe := <-gs.Events:
			gs.send(gs.Turn(pe))
		}
	}
}

// Turn applies one client action to the session state.
func (gs *GameSession) Turn(pe PlayerEvent) model.ServerMessage {
	applied := false
	switch pe.GameEvent.Action {
	case model.REVEAL:
		applied = gs.Model.Reveal(pe.GameEvent.Index)
	case model.RESTART:
		// same rule as the dialog: restart only ends a finished game
		if gs.Model.Phase().Terminal() {
			gs.Model.Reset()
			applied = true
		}
	default:
		log.Warnf("GameSession.Turn unknown action %d", pe.GameEvent.Action)
	}
	log.WithFields(log.Fields{
		"session": gs.Id,
		"action":  pe.GameEvent.Action,
		"index":   pe.GameEvent.Index,
		"applied": applied,
		"phase":   gs.Model.Phase().Name(),
	}).Debug("GameSession.Turn")
	return model.MakeServerMessage(gs.Model, applied)
}

func (gs *GameSession) send(m model.ServerMessage) {
	select {
	case gs.Player.MessagesToSend <- m:
	default:
		log.WithField("session", gs.Id).Warn("dropping message, send buffer FULL")
	}
}

func (gs *GameSession) addPlayer(
	conn *websocket.Conn,
	gameOver chan struct{},
) {
	ps := &PlayerSession{
		State:          PS_NEW,
		Id:             gs.Id,
		GameSession:    gs,
		Conn:           conn,
		GameOver:       gameOver,
		done:           make(chan struct{}),
		MessagesToSend: make(chan model.ServerMessage, sendBuffer),
	}
	conn.SetPingHandler(
		func(message string) error {
			err := conn.WriteControl(websocket.PongMessage, []byte(message), time.Now().Add(time.Second))
			if err == websocket.ErrCloseSent {
				return nil
			} else if e, ok := err.(net.Error); ok && e.Temporary() {
				return nil
			}
			return err
		})
	go ps.LoopChannelRead()
	go ps.LoopChannelWrite()
	gs.Player = ps
}

// fail reports a broken socket unless the session already ended.
func (ps *PlayerSession) fail() {
	select {
	case ps.GameSession.Errors <- ps.Id:
	case <-ps.done:
	}
}

func (ps *PlayerSession) LoopChannelRead() {
	logger := log.WithField("session", ps.Id)
	for {
		_, r, err := ps.Conn.NextReader()
		if err != nil {
			if websocket.IsCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				logger.Info("LoopChannelRead closed by client")
			} else {
				logger.Warnf("LoopChannelRead err reading message from Conn %v", err)
			}
			ps.fail()
			return
		}
		cm := &model.ClientMessage{}
		if err = gob.NewDecoder(r).Decode(cm); err != nil {
			logger.Warnf("LoopChannelRead cant decode %v", err)
			ps.fail()
			return
		}

		select {
		case ps.GameSession.Events <- PlayerEvent{
			Player:    ps.Id,
			GameEvent: GameEvent{Action: cm.Action, Index: cm.Index},
		}:
		case <-ps.done:
			return
		}
	}
}

// LoopChannelWrite only consumes, so a full buffer never blocks the session.
func (ps *PlayerSession) LoopChannelWrite() {
	logger := log.WithField("session", ps.Id)
	for {
		select {
		case mes := <-ps.MessagesToSend:
			if err := ps.write(mes); err != nil {
				logger.Warnf("LoopChannelWrite %v", err)
				ps.fail()
				return
			}
		case <-ps.done:
			return
		}
	}
}

func (ps *PlayerSession) write(mes model.ServerMessage) error {
	w, err := ps.Conn.NextWriter(websocket.BinaryMessage)
	if err != nil {
		return err
	}
	if err = gob.NewEncoder(w).Encode(mes); err != nil {
		w.Close()
		return err
	}
	return w.Close()
}
