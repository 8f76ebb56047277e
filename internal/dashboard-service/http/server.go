package httpapi

import (
	"context"
	"embed"
	"html/template"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"github.com/radieske/bancas-dashboard/internal/bancas"
	"github.com/radieske/bancas-dashboard/internal/dashboard-service/cache"
	"github.com/radieske/bancas-dashboard/internal/dashboard-service/charts"
	"github.com/radieske/bancas-dashboard/internal/dashboard-service/producer"
	"github.com/radieske/bancas-dashboard/internal/dashboard-service/ws"
	"github.com/radieske/bancas-dashboard/internal/shared/metrics"
	"github.com/radieske/bancas-dashboard/pkg/contracts/events"
)

//go:embed templates/*.html
var templateFS embed.FS

// ViewCache é satisfeito pelo cache Redis; nil desliga o cache
type ViewCache interface {
	GetView(ctx context.Context, key string, dst any) (bool, error)
	SetView(ctx context.Context, key string, v any, ttl time.Duration) error
}

// Server expõe o dashboard: página, views JSON, gráficos PNG e WebSocket
type Server struct {
	log      *zap.Logger
	data     *bancas.Dataset
	charts   *charts.Renderer
	publ     producer.Publisher
	metrics  *metrics.Dashboard
	cache    ViewCache
	cacheTTL time.Duration
	now      func() time.Time
	page     *template.Template
}

type Option func(*Server)

// WithCache liga o cache de views
func WithCache(c ViewCache, ttl time.Duration) Option {
	return func(s *Server) { s.cache, s.cacheTTL = c, ttl }
}

// WithPublisher liga a publicação de eventos de interação
func WithPublisher(p producer.Publisher) Option {
	return func(s *Server) { s.publ = p }
}

// WithMetrics usa coletores já registrados
func WithMetrics(m *metrics.Dashboard) Option {
	return func(s *Server) { s.metrics = m }
}

// WithClock troca o relógio (testes)
func WithClock(now func() time.Time) Option {
	return func(s *Server) { s.now = now }
}

// NewServer instancia o servidor; data é imutável e compartilhado entre requisições
func NewServer(log *zap.Logger, data *bancas.Dataset, opts ...Option) *Server {
	s := &Server{
		log:     log,
		data:    data,
		charts:  charts.New(),
		publ:    producer.NoopPublisher{},
		metrics: metrics.NewDashboard(),
		now:     time.Now,
	}
	for _, o := range opts {
		o(s)
	}
	s.page = template.Must(template.New("index.html").Funcs(template.FuncMap{
		"brl": charts.BRL,
	}).ParseFS(templateFS, "templates/index.html"))
	return s
}

// Router retorna o roteador HTTP com as rotas do dashboard
func (s *Server) Router() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(s.requestLogger)

	wsh := ws.NewHandler(s.log, s.View, func(*http.Request) bool { return true })
	wsh.OnConnect = s.metrics.WSConnections.Inc
	wsh.OnDisconnect = s.metrics.WSConnections.Dec

	r.Get("/", s.dashboard)                     // Página do dashboard
	r.Get("/v1/owners", s.listOwners)           // Donos disponíveis
	r.Get("/v1/map", s.getMap)                  // Marcadores do mapa
	r.Get("/v1/view", s.getView)                // View completa
	r.Get("/v1/charts/{chart}.png", s.getChart) // Imagem de um gráfico
	r.Method(http.MethodGet, "/v1/ws", wsh)     // Interação via WebSocket
	return r
}

// View recalcula (ou busca no cache) a view de uma seleção e publica a interação
func (s *Server) View(ctx context.Context, sel bancas.Selection, channel, session string) (*bancas.View, error) {
	v, err := s.render(ctx, sel, channel)
	if err != nil {
		return nil, err
	}
	if err := s.publ.PublishSelectionChanged(ctx, selectionEvent(v, channel, session)); err != nil {
		s.log.Warn("publish selection_changed failed", zap.Error(err))
	}
	return v, nil
}

// render não publica nada: as imagens de gráfico pertencem à interação que gerou a página
func (s *Server) render(ctx context.Context, sel bancas.Selection, channel string) (*bancas.View, error) {
	now := s.now()
	key := cache.Key(sel, now)

	if v, hit := s.cached(ctx, key); hit {
		return v, nil
	}

	start := time.Now()
	v, err := bancas.Render(s.data, sel, now)
	if err != nil {
		return nil, err
	}
	s.observe(channel, v, time.Since(start))

	if s.cache != nil {
		if err := s.cache.SetView(ctx, key, v, s.cacheTTL); err != nil {
			s.log.Warn("view cache set failed", zap.Error(err))
		}
	}
	return v, nil
}

func (s *Server) cached(ctx context.Context, key string) (*bancas.View, bool) {
	if s.cache == nil {
		return nil, false
	}
	var v bancas.View
	ok, err := s.cache.GetView(ctx, key, &v)
	switch {
	case err != nil:
		s.metrics.CacheLookups.WithLabelValues("error").Inc()
		s.log.Warn("view cache get failed", zap.Error(err))
		return nil, false
	case !ok:
		s.metrics.CacheLookups.WithLabelValues("miss").Inc()
		return nil, false
	}
	s.metrics.CacheLookups.WithLabelValues("hit").Inc()
	return &v, true
}

func (s *Server) observe(channel string, v *bancas.View, took time.Duration) {
	s.metrics.Renders.WithLabelValues(channel).Inc()
	s.metrics.RenderDuration.Observe(took.Seconds())
	if v.Validation != "" {
		s.metrics.ValidationErrors.Inc()
	}
	for _, c := range v.Charts {
		if c.Err() != nil {
			s.metrics.DerivationErrors.WithLabelValues(string(c.Kind)).Inc()
			s.log.Warn("chart blocked by derivation error",
				zap.String("chart", string(c.Kind)),
				zap.Strings("owners", v.Owners),
				zap.String("error", c.Error),
			)
		}
	}
}

func selectionEvent(v *bancas.View, channel, session string) events.SelectionChanged {
	e := events.SelectionChanged{
		SessionID:     session,
		Channel:       channel,
		Owners:        v.Owners,
		DaysInput:     v.DaysInput,
		SimulatedDays: v.SimulatedDays,
		Validation:    v.Validation,
		Rows:          len(v.Rows),
		Ts:            time.Now().UTC(),
	}
	for _, c := range v.Charts {
		if c.Error != "" {
			e.FailedCharts = append(e.FailedCharts, string(c.Kind))
		}
	}
	return e
}

// requestLogger registra cada requisição no logger estruturado
func (s *Server) requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()
		next.ServeHTTP(ww, r)
		s.log.Debug("http request",
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.Int("status", ww.Status()),
			zap.Duration("latency", time.Since(start)),
			zap.String("request_id", middleware.GetReqID(r.Context())),
		)
	})
}
