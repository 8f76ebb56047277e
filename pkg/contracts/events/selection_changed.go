package events

import "time"

// Evento publicado a cada interação do dashboard (seleção de donos / dias)
type SelectionChanged struct {
	SessionID     string    `json:"session_id"`
	Channel       string    `json:"channel"` // "http" | "ws"
	Owners        []string  `json:"owners"`
	DaysInput     string    `json:"days_input"`
	SimulatedDays int       `json:"simulated_days"`
	Validation    string    `json:"validation,omitempty"`
	Rows          int       `json:"rows"`
	FailedCharts  []string  `json:"failed_charts,omitempty"`
	Ts            time.Time `json:"ts"`
}
