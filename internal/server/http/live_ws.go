package httpserver

import (
	"encoding/json"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"github.com/rs/zerolog/log"
)

// LivePayload 推给前端的搜索进度事件：每完成一层发一条
type LivePayload struct {
	Event     string  `json:"event"` // "snapshot" / "depth"
	Depth     int     `json:"depth,omitempty"`
	Score     int     `json:"score,omitempty"`
	Move      MoveDTO `json:"move"`
	Nodes     int64   `json:"nodes,omitempty"`
	UpdatedAt int64   `json:"updated_at_ms"`
}

type liveClient struct {
	conn *websocket.Conn
	send chan []byte
}

// LiveHub 把搜索进度广播给所有在线的 websocket 客户端。
// 广播信道打满时直接丢事件，搜索不等前端。
type LiveHub struct {
	mu        sync.Mutex
	clients   map[*liveClient]struct{}
	broadcast chan LivePayload
	done      chan struct{}
	once      sync.Once
}

func NewLiveHub() *LiveHub {
	return &LiveHub{
		clients:   make(map[*liveClient]struct{}),
		broadcast: make(chan LivePayload, 64),
		done:      make(chan struct{}),
	}
}

func (h *LiveHub) Run() {
	for {
		select {
		case <-h.done:
			return
		case payload := <-h.broadcast:
			payload.UpdatedAt = time.Now().UnixMilli()
			data, err := json.Marshal(payload)
			if err != nil {
				continue
			}
			h.mu.Lock()
			for c := range h.clients {
				select {
				case c.send <- data:
				default:
				}
			}
			h.mu.Unlock()
		}
	}
}

func (h *LiveHub) Close() { h.once.Do(func() { close(h.done) }) }

func (h *LiveHub) Publish(payload LivePayload) {
	select {
	case h.broadcast <- payload:
	default:
	}
}

func (h *LiveHub) register(c *liveClient) {
	h.mu.Lock()
	h.clients[c] = struct{}{}
	h.mu.Unlock()
}

func (h *LiveHub) unregister(c *liveClient) {
	h.mu.Lock()
	if _, ok := h.clients[c]; ok {
		delete(h.clients, c)
		close(c.send)
	}
	h.mu.Unlock()
}

func (h *LiveHub) ServeWS(w http.ResponseWriter, r *http.Request) {
	upgrader := websocket.Upgrader{CheckOrigin: func(r *http.Request) bool { return true }}
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Warn().Msgf("ws upgrade failed: %v", err)
		return
	}
	client := &liveClient{conn: conn, send: make(chan []byte, 16)}
	h.register(client)

	go func() {
		defer conn.Close()
		for data := range client.send {
			if err := conn.WriteMessage(websocket.TextMessage, data); err != nil {
				return
			}
		}
	}()

	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			h.unregister(client)
			return
		}
	}
}
