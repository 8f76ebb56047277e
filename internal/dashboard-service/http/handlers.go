package httpapi

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/url"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"github.com/radieske/bancas-dashboard/internal/bancas"
	"github.com/radieske/bancas-dashboard/internal/dashboard-service/charts"
	"github.com/radieske/bancas-dashboard/internal/dashboard-service/dto"
)

// writeJSON serializa a resposta em JSON e define o status HTTP
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// selectionFrom lê ?owner=A&owner=B&days=N
func selectionFrom(r *http.Request) bancas.Selection {
	q := r.URL.Query()
	return bancas.NewSelection(q["owner"], q.Get("days"))
}

func selectionQuery(sel bancas.Selection) string {
	q := url.Values{}
	for _, o := range sel.Owners {
		q.Add("owner", o)
	}
	q.Set("days", sel.Days)
	return q.Encode()
}

// viewFor calcula a view de uma interação HTTP (publica o evento)
func (s *Server) viewFor(w http.ResponseWriter, r *http.Request, sel bancas.Selection) (*bancas.View, bool) {
	v, err := s.View(r.Context(), sel, "http", middleware.GetReqID(r.Context()))
	return v, s.viewOK(w, err)
}

// viewOK responde 400 para donos desconhecidos; demais erros viram 500
func (s *Server) viewOK(w http.ResponseWriter, err error) bool {
	if err == nil {
		return true
	}
	if errors.Is(err, bancas.ErrUnknownOwner) {
		writeJSON(w, http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return false
	}
	writeJSON(w, http.StatusInternalServerError, dto.ErrorResponse{Error: err.Error()})
	return false
}

// listOwners retorna os donos em ordem alfabética
func (s *Server) listOwners(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, dto.OwnersResponse{Owners: s.data.Index.Owners()})
}

// getMap retorna os marcadores dos donos selecionados
func (s *Server) getMap(w http.ResponseWriter, r *http.Request) {
	sel := selectionFrom(r)
	if err := s.data.Index.Validate(sel.Owners); err != nil {
		writeJSON(w, http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}
	markers := s.data.Index.Markers(sel.Owners)
	if markers == nil {
		markers = []bancas.Marker{}
	}
	writeJSON(w, http.StatusOK, dto.MapResponse{Center: dto.MapCenter, Zoom: dto.MapZoom, Markers: markers})
}

// getView retorna a view completa (inclui mensagem de validação)
func (s *Server) getView(w http.ResponseWriter, r *http.Request) {
	v, ok := s.viewFor(w, r, selectionFrom(r))
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, v)
}

// getChart desenha um dos quatro gráficos como PNG
func (s *Server) getChart(w http.ResponseWriter, r *http.Request) {
	kind, ok := bancas.ParseChartKind(chi.URLParam(r, "chart"))
	if !ok {
		writeJSON(w, http.StatusNotFound, dto.ErrorResponse{Error: "unknown chart"})
		return
	}

	// a imagem não é uma nova interação: sem evento selection_changed
	v, err := s.render(r.Context(), selectionFrom(r), "chart")
	if !s.viewOK(w, err) {
		return
	}
	c, ok := v.Chart(kind)
	if !ok {
		// seleção vazia: nenhum gráfico é exibido
		w.WriteHeader(http.StatusNoContent)
		return
	}

	var buf bytes.Buffer
	if err := s.charts.Render(&buf, c); err != nil {
		switch {
		case errors.Is(err, charts.ErrNothingToPlot):
			w.WriteHeader(http.StatusNoContent)
		case c.Err() != nil:
			writeJSON(w, http.StatusUnprocessableEntity, dto.ErrorResponse{Error: err.Error(), Chart: string(kind)})
		default:
			s.log.Error("chart render failed", zap.String("chart", string(kind)), zap.Error(err))
			writeJSON(w, http.StatusInternalServerError, dto.ErrorResponse{Error: err.Error(), Chart: string(kind)})
		}
		return
	}

	s.metrics.ChartsRendered.WithLabelValues(string(kind)).Inc()
	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("Cache-Control", "no-store")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(buf.Bytes())
}

type chartSlot struct {
	Kind  bancas.ChartKind
	Title string
	Error string
	Src   string
}

type pageData struct {
	Owners   []string
	Selected map[string]bool
	Days     string
	View     *bancas.View
	Charts   []chartSlot
	Center   [2]float64
	Zoom     int
	Error    string
}

// dashboard renderiza a página inteira; cada envio do formulário recalcula tudo
func (s *Server) dashboard(w http.ResponseWriter, r *http.Request) {
	sel := selectionFrom(r)
	data := pageData{
		Owners:   s.data.Index.Owners(),
		Selected: make(map[string]bool, len(sel.Owners)),
		Days:     sel.Days,
		Center:   dto.MapCenter,
		Zoom:     dto.MapZoom,
	}
	for _, o := range sel.Owners {
		data.Selected[o] = true
	}

	status := http.StatusOK
	v, err := s.View(r.Context(), sel, "http", middleware.GetReqID(r.Context()))
	if err != nil {
		status = http.StatusBadRequest
		data.Error = err.Error()
	} else {
		data.View = v
		q := selectionQuery(sel)
		for _, c := range v.Charts {
			data.Charts = append(data.Charts, chartSlot{
				Kind:  c.Kind,
				Title: c.Title,
				Error: c.Error,
				Src:   "/v1/charts/" + string(c.Kind) + ".png?" + q,
			})
		}
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	if err := s.page.Execute(w, data); err != nil {
		s.log.Error("page render failed", zap.Error(err))
	}
}
