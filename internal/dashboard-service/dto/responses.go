package dto

import "github.com/radieske/bancas-dashboard/internal/bancas"

// Centro inicial do mapa (São Paulo)
var MapCenter = [2]float64{-23.5489, -46.638823}

const MapZoom = 12

type OwnersResponse struct {
	Owners []string `json:"owners"`
}

type MapResponse struct {
	Center  [2]float64      `json:"center"`
	Zoom    int             `json:"zoom"`
	Markers []bancas.Marker `json:"markers"`
}

type ErrorResponse struct {
	Error string `json:"error"`
	Chart string `json:"chart,omitempty"`
}
