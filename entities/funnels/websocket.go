package funnels

import (
	"net/http"
	"sync"

	"github.com/gorilla/websocket"
	"github.com/rs/zerolog/log"
)

type FunnelWSMessage struct {
	Action  string `json:"action"`
	Payload any    `json:"payload"`
	Details string `json:"details"`
}

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

var wsClients = make(map[*websocket.Conn]bool)
var wsMutex sync.Mutex

func broadcastFunnelUpdate(msg FunnelWSMessage) {
	wsMutex.Lock()
	defer wsMutex.Unlock()
	for client := range wsClients {
		err := client.WriteJSON(msg)
		if err != nil {
			client.Close()
			delete(wsClients, client)
		}
	}
}

// BroadcastBoardUpdate publica mudanças do board para os clientes conectados.
// Também é usado pelo pacote de oportunidades após criar/mover/excluir cards.
func BroadcastBoardUpdate(action string, payload any, details string) {
	broadcastFunnelUpdate(FunnelWSMessage{
		Action:  action,
		Payload: payload,
		Details: details,
	})
}

func FunnelWebSocketHandler(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		http.Error(w, "Não foi possível fazer upgrade para websocket", http.StatusInternalServerError)
		return
	}
	defer conn.Close()

	wsMutex.Lock()
	wsClients[conn] = true
	wsMutex.Unlock()

	log.Debug().Str("remote", r.RemoteAddr).Msg("cliente websocket do funil conectado")

	for {
		msg := FunnelWSMessage{}
		err := conn.ReadJSON(&msg)
		if err != nil {
			break
		}

		broadcastFunnelUpdate(msg)
	}

	wsMutex.Lock()
	delete(wsClients, conn)
	wsMutex.Unlock()
}
