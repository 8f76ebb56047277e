package ws

import "github.com/radieske/bancas-dashboard/internal/bancas"

// ClientMsg representa uma mensagem recebida do cliente WebSocket
// Type: select | ping
type ClientMsg struct {
	Type   string   `json:"type"`
	Owners []string `json:"owners"` // requerido em select (pode ser vazio)
	Days   string   `json:"days"`
}

// ServerMsg é a resposta para cada mensagem do cliente
// Type: view | error | pong
type ServerMsg struct {
	Type  string       `json:"type"`
	View  *bancas.View `json:"view,omitempty"`
	Error string       `json:"error,omitempty"`
}
