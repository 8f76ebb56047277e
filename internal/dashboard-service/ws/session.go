package ws

import (
	"context"
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	"github.com/radieske/bancas-dashboard/internal/bancas"
)

// ViewFunc recalcula a view inteira para uma seleção
type ViewFunc func(ctx context.Context, sel bancas.Selection, channel, session string) (*bancas.View, error)

// Handler atende sessões WebSocket do dashboard.
// Cada conexão tem um único loop de leitura: as interações de um cliente
// são processadas uma de cada vez, na ordem em que chegam.
type Handler struct {
	upgrader websocket.Upgrader
	render   ViewFunc
	log      *zap.Logger

	OnConnect    func() // métricas
	OnDisconnect func() // métricas
}

// NewHandler cria o handler com política customizada de origem (CORS)
func NewHandler(log *zap.Logger, render ViewFunc, allowOrigin func(r *http.Request) bool) *Handler {
	return &Handler{
		upgrader: websocket.Upgrader{CheckOrigin: allowOrigin},
		render:   render,
		log:      log,
	}
}

// ServeHTTP gerencia o ciclo de vida de uma conexão
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		return
	}
	defer conn.Close()

	session := uuid.NewString()
	log := h.log.With(zap.String("session", session))
	log.Debug("ws session opened")
	if h.OnConnect != nil {
		h.OnConnect()
	}
	defer func() {
		if h.OnDisconnect != nil {
			h.OnDisconnect()
		}
		log.Debug("ws session closed")
	}()

	for {
		var msg ClientMsg
		if err := conn.ReadJSON(&msg); err != nil {
			break
		}

		var out ServerMsg
		switch msg.Type {
		case "select":
			v, err := h.render(r.Context(), bancas.NewSelection(msg.Owners, msg.Days), "ws", session)
			if err != nil {
				out = ServerMsg{Type: "error", Error: err.Error()}
				break
			}
			out = ServerMsg{Type: "view", View: v}
		case "ping":
			out = ServerMsg{Type: "pong"}
		default:
			out = ServerMsg{Type: "error", Error: "unknown message type: " + msg.Type}
		}

		if err := conn.WriteJSON(out); err != nil {
			log.Warn("ws write failed", zap.Error(err))
			return
		}
	}
}
