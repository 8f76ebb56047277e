package main

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/radieske/bancas-dashboard/internal/bancas"
	vcache "github.com/radieske/bancas-dashboard/internal/dashboard-service/cache"
	dhttp "github.com/radieske/bancas-dashboard/internal/dashboard-service/http"
	"github.com/radieske/bancas-dashboard/internal/dashboard-service/producer"
	"github.com/radieske/bancas-dashboard/internal/dashboard-service/source"
	"github.com/radieske/bancas-dashboard/internal/shared/cache"
	"github.com/radieske/bancas-dashboard/internal/shared/config"
	"github.com/radieske/bancas-dashboard/internal/shared/db"
	"github.com/radieske/bancas-dashboard/internal/shared/kafka"
	"github.com/radieske/bancas-dashboard/internal/shared/logger"
	"github.com/radieske/bancas-dashboard/internal/shared/metrics"
)

func main() {
	// carrega config
	cfg := config.Load()

	// inicia logger
	log, err := logger.New(cfg.ServiceName, cfg.Env, cfg.LogLevel)
	if err != nil {
		panic(fmt.Errorf("logger init: %w", err))
	}
	defer log.Sync()

	log.Info("starting service",
		zap.String("service", cfg.ServiceName),
		zap.String("env", cfg.Env),
		zap.String("source", cfg.RecordSource),
	)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Postgres só quando é a origem dos registros
	var pg *sql.DB
	var loader source.Loader
	switch cfg.RecordSource {
	case config.SourcePostgres:
		pg, err = db.ConnectPostgres(ctx, cfg.PostgresDSN)
		if err != nil {
			log.Fatal("failed to connect postgres", zap.Error(err))
		}
		defer pg.Close()
		log.Info("postgres connected")
		loader = source.NewPostgres(pg)
	case config.SourceXLSX:
		loader = source.NewXLSX(cfg.DataFile, cfg.DataSheet)
	default:
		log.Fatal("unknown record source", zap.String("source", cfg.RecordSource))
	}

	// carga única: registros e índice ficam imutáveis até o fim do processo
	records, err := loader.Load(ctx)
	if err != nil {
		var le *bancas.LoadError
		if errors.As(err, &le) {
			log.Fatal("load records", zap.String("source", le.Source), zap.Int("row", le.Row), zap.Error(err))
		}
		log.Fatal("load records", zap.Error(err))
	}

	data, err := bancas.NewDataset(records)
	if err != nil {
		log.Fatal("build owner index", zap.Error(err))
	}
	log.Info("records loaded", zap.Int("records", len(records)), zap.Int("owners", len(data.Index.Owners())))

	m := metrics.NewDashboard()
	m.MustRegister(prometheus.DefaultRegisterer)

	opts := []dhttp.Option{dhttp.WithMetrics(m)}

	// Redis opcional: cache de views
	var rdb *redis.Client
	if cfg.RedisAddr != "" {
		rdb, err = cache.ConnectRedis(ctx, cfg.RedisAddr)
		if err != nil {
			log.Fatal("failed to connect redis", zap.Error(err))
		}
		defer rdb.Close()
		opts = append(opts, dhttp.WithCache(vcache.New(rdb), cfg.ViewCacheTTL))
		log.Info("redis connected", zap.Duration("ttl", cfg.ViewCacheTTL))
	}

	// Kafka opcional: eventos de interação
	var writer *kafka.Writer
	if cfg.KafkaBrokers != "" {
		writer = kafka.NewWriter(cfg.KafkaBrokers, cfg.TopicSelectionEvent)
		defer writer.Close()
		opts = append(opts, dhttp.WithPublisher(producer.NewKafkaPublisher(writer)))
		log.Info("kafka writer ready", zap.String("topic", cfg.TopicSelectionEvent))
	}

	// metrics/health
	metricsSrv := metrics.StartMetricsServer(log, cfg.MetricsPort, func(ctx context.Context) error {
		if pg != nil {
			if err := pg.PingContext(ctx); err != nil {
				return fmt.Errorf("postgres: %w", err)
			}
		}
		if rdb != nil {
			if err := rdb.Ping(ctx).Err(); err != nil {
				return fmt.Errorf("redis: %w", err)
			}
		}
		return nil
	})

	// HTTP público
	api := dhttp.NewServer(log, data, opts...)
	apiSrv := &http.Server{
		Addr:              fmt.Sprintf(":%s", cfg.HTTPPort),
		Handler:           api.Router(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		log.Info("dashboard listening", zap.String("addr", apiSrv.Addr))
		if err := apiSrv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("api", zap.Error(err))
		}
	}()

	<-ctx.Done()
	log.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	_ = apiSrv.Shutdown(shutdownCtx)
	_ = metricsSrv.Shutdown(shutdownCtx)
}
