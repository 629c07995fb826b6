package main

import (
	"net/http"
	"strings"

	"github.com/gorilla/websocket"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		log.Debug("\tws origin: ", r.Host)
		return true
	},
}

// Live editing surface: every text message is a newline-separated
// command batch (see [executeCommand]); after each message the full
// session state is pushed back.
func handleConnectWs(w http.ResponseWriter, r *http.Request) {
	session, ok := fetchSession(w, r)
	if !ok {
		return
	}
	c, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Error("upgrade: ", err)
		return
	}
	defer c.Close()
	for {
		mt, message, err := c.ReadMessage()
		if err != nil {
			if !websocket.IsCloseError(err, websocket.CloseNormalClosure) {
				log.Warn("read: ", err)
			}
			break
		}
		if mt != websocket.TextMessage {
			break
		}
		text := strings.TrimSpace(string(message))
		log.Debug("\t> ", text)
		session.Lock()
		for _, cmd := range byPiece(text, "\n") {
			if err := executeCommand(session.Game, cmd); err != nil {
				log.Error("command: ", err)
				session.Unlock()
				return
			}
		}
		session.Touch()
		err = c.WriteJSON(session)
		session.Unlock()
		if err != nil {
			log.Error("write: ", err)
			break
		}
		log.Debug("\t< <session data>")
	}
}
