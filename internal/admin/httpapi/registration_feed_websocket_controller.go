package httpapi

import (
	"context"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"pushbridge/internal/admin/domain"
	"pushbridge/internal/admin/usecases"
	"pushbridge/internal/infra/async"
	"pushbridge/internal/infra/httpserver"

	"github.com/gorilla/websocket"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		// Allow connections from any origin for development
		// In production, you should validate the origin
		return true
	},
}

type RegistrationMessage struct {
	Type      string    `json:"type"`
	TokenID   string    `json:"token_id"`
	Platform  string    `json:"platform"`
	Timestamp time.Time `json:"timestamp"`
}

// RegistrationFeedWebSocketController streams token registration events to
// connected dashboards.
type RegistrationFeedWebSocketController struct {
	broker     async.InternalBroker
	clients    map[*websocket.Conn]bool
	clientsMux sync.RWMutex
	broadcast  chan RegistrationMessage
	register   chan *websocket.Conn
	unregister chan *websocket.Conn
	ctx        context.Context
	cancel     context.CancelFunc
}

func NewRegistrationFeedWebSocketController(broker async.InternalBroker) *RegistrationFeedWebSocketController {
	ctx, cancel := context.WithCancel(context.Background())

	wsc := &RegistrationFeedWebSocketController{
		broker:     broker,
		clients:    make(map[*websocket.Conn]bool),
		broadcast:  make(chan RegistrationMessage, 256),
		register:   make(chan *websocket.Conn),
		unregister: make(chan *websocket.Conn),
		ctx:        ctx,
		cancel:     cancel,
	}

	go wsc.run()

	return wsc
}

var _ httpserver.Controller = (*RegistrationFeedWebSocketController)(nil)

func (wsc *RegistrationFeedWebSocketController) AddRoutes(router *http.ServeMux) {
	router.Handle("GET /v1/registrations/ws", wsc.handleWebSocket())
}

func (wsc *RegistrationFeedWebSocketController) handleWebSocket() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			slog.Error("websocket upgrade failed", slog.Any("error", err))
			return
		}

		slog.Info("new websocket connection established", slog.String("remote_addr", r.RemoteAddr))

		wsc.register <- conn

		go wsc.handlePingPong(conn)
		go wsc.handleClient(conn)
	}
}

func (wsc *RegistrationFeedWebSocketController) handleClient(conn *websocket.Conn) {
	defer func() {
		wsc.unregister <- conn
		conn.Close()
	}()

	conn.SetReadLimit(512)
	conn.SetReadDeadline(time.Now().Add(60 * time.Second))
	conn.SetPongHandler(func(string) error {
		conn.SetReadDeadline(time.Now().Add(60 * time.Second))
		return nil
	})

	for {
		_, _, err := conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				slog.Error("websocket read error", slog.Any("error", err))
			} else {
				slog.Debug("websocket connection closed", slog.Any("error", err))
			}
			break
		}
	}
}

func (wsc *RegistrationFeedWebSocketController) handlePingPong(conn *websocket.Conn) {
	ticker := time.NewTicker(54 * time.Second)
	defer ticker.Stop()

	for {
		select {
		case <-wsc.ctx.Done():
			return
		case <-ticker.C:
			conn.SetWriteDeadline(time.Now().Add(10 * time.Second))
			if err := conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}

func (wsc *RegistrationFeedWebSocketController) run() {
	subscription, err := wsc.broker.Subscribe(usecases.BrokerTopicRegistrations)
	if err != nil {
		slog.Error("failed to subscribe to registrations", slog.Any("error", err))
		return
	}
	defer wsc.broker.Unsubscribe(usecases.BrokerTopicRegistrations, subscription)

	for {
		select {
		case <-wsc.ctx.Done():
			return

		case client := <-wsc.register:
			wsc.clientsMux.Lock()
			wsc.clients[client] = true
			wsc.clientsMux.Unlock()
			slog.Info("websocket client registered", slog.Int("total_clients", len(wsc.clients)))

		case client := <-wsc.unregister:
			wsc.clientsMux.Lock()
			if _, ok := wsc.clients[client]; ok {
				delete(wsc.clients, client)
				client.Close()
			}
			wsc.clientsMux.Unlock()
			slog.Info("websocket client unregistered", slog.Int("total_clients", len(wsc.clients)))

		case message := <-wsc.broadcast:
			wsc.clientsMux.Lock()
			for client := range wsc.clients {
				client.SetWriteDeadline(time.Now().Add(10 * time.Second))
				if err := client.WriteJSON(message); err != nil {
					slog.Error("failed to write message to websocket client", slog.Any("error", err))
					client.Close()
					delete(wsc.clients, client)
				}
			}
			wsc.clientsMux.Unlock()

		case brokerMsg := <-subscription.Receiver:
			pushToken, ok := brokerMsg.Value.(domain.PushToken)
			if !ok {
				continue
			}
			registrationMsg := RegistrationMessage{
				Type:      brokerMsg.Event,
				TokenID:   pushToken.ID.String(),
				Platform:  pushToken.Platform,
				Timestamp: pushToken.UpdatedAt.Time,
			}

			select {
			case wsc.broadcast <- registrationMsg:
			default:
				slog.Warn("broadcast channel full, dropping message")
			}
		}
	}
}

func (wsc *RegistrationFeedWebSocketController) Shutdown() {
	slog.Info("shutting down registration feed websocket controller")
	wsc.cancel()

	wsc.clientsMux.Lock()
	for client := range wsc.clients {
		client.Close()
	}
	wsc.clientsMux.Unlock()
}
