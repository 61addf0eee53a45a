package ws

import (
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	"github.com/radieske/cricket-predictor/internal/predictor-api/account"
)

const writeWait = 5 * time.Second

// client guarda o filtro da conexão; gorilla não aceita escritas concorrentes
type client struct {
	conn    *websocket.Conn
	writeMu sync.Mutex
	matchID string
}

func (c *client) send(v any) error {
	c.writeMu.Lock()
	defer c.writeMu.Unlock()
	_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
	return c.conn.WriteJSON(v)
}

// Hub mantém as conexões do feed ao vivo e o último snapshot recebido
type Hub struct {
	upgrader websocket.Upgrader
	log      *zap.Logger

	mu      sync.RWMutex
	clients map[*client]struct{}
	latest  []account.Prediction

	OnConnections func(n int) // métricas
}

// NewHub cria o hub com a política de origem informada
func NewHub(allowOrigin func(r *http.Request) bool, log *zap.Logger) *Hub {
	return &Hub{
		upgrader: websocket.Upgrader{CheckOrigin: allowOrigin},
		log:      log,
		clients:  make(map[*client]struct{}),
		latest:   []account.Prediction{},
	}
}

// HandleWS envia o snapshot atual na conexão e depois atende subscribe/unsubscribe/ping
func (h *Hub) HandleWS(w http.ResponseWriter, r *http.Request) {
	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		return
	}
	defer conn.Close()

	c := &client{conn: conn, matchID: r.URL.Query().Get("matchId")}
	h.add(c)
	defer h.remove(c)

	h.mu.RLock()
	initial := filter(h.latest, c.matchID)
	h.mu.RUnlock()
	if err := c.send(Snapshot{Type: "predictions", MatchID: c.matchID, Payload: initial}); err != nil {
		return
	}

	for {
		var msg ClientMsg
		if err := conn.ReadJSON(&msg); err != nil {
			break
		}
		switch msg.Type {
		case "subscribe", "unsubscribe":
			id := msg.MatchID
			if msg.Type == "unsubscribe" {
				id = ""
			}
			h.mu.Lock()
			c.matchID = id
			snap := filter(h.latest, id)
			h.mu.Unlock()
			_ = c.send(Snapshot{Type: "predictions", MatchID: id, Payload: snap})
		case "ping":
			_ = c.send(map[string]string{"type": "pong"})
		}
	}
}

// Broadcast guarda o snapshot e envia para cada conexão conforme seu filtro.
// Assinatura compatível com o callback de feed.Subscribe.
func (h *Hub) Broadcast(ps []account.Prediction) {
	h.mu.Lock()
	h.latest = ps
	targets := make(map[*client]string, len(h.clients))
	for c := range h.clients {
		targets[c] = c.matchID
	}
	h.mu.Unlock()

	for c, id := range targets {
		if err := c.send(Snapshot{Type: "predictions", MatchID: id, Payload: filter(ps, id)}); err != nil {
			h.log.Debug("ws send failed", zap.Error(err))
		}
	}
}

func (h *Hub) add(c *client) {
	h.mu.Lock()
	h.clients[c] = struct{}{}
	n := len(h.clients)
	h.mu.Unlock()
	if h.OnConnections != nil {
		h.OnConnections(n)
	}
}

func (h *Hub) remove(c *client) {
	h.mu.Lock()
	delete(h.clients, c)
	n := len(h.clients)
	h.mu.Unlock()
	if h.OnConnections != nil {
		h.OnConnections(n)
	}
}

func filter(ps []account.Prediction, matchID string) []account.Prediction {
	if matchID == "" {
		return ps
	}
	out := []account.Prediction{}
	for _, p := range ps {
		if p.MatchID == matchID {
			out = append(out, p)
		}
	}
	return out
}
