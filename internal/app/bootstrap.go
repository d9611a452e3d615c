package app

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"strings"
	"time"

	"github.com/Gunvolt24/distinsert/config"
	"github.com/Gunvolt24/distinsert/internal/domain"
	"github.com/Gunvolt24/distinsert/internal/kafka"
	"github.com/Gunvolt24/distinsert/internal/ports"
	"github.com/Gunvolt24/distinsert/internal/repo"
	"github.com/Gunvolt24/distinsert/internal/seeddata"
	"github.com/Gunvolt24/distinsert/internal/sink"
	rest "github.com/Gunvolt24/distinsert/internal/transport/http"
	"github.com/Gunvolt24/distinsert/internal/usecase"
	"github.com/Gunvolt24/distinsert/pkg/ctxmeta"
	"github.com/Gunvolt24/distinsert/pkg/logger"
	"github.com/Gunvolt24/distinsert/pkg/metrics"
	"github.com/Gunvolt24/distinsert/pkg/telemetry"
	"github.com/Gunvolt24/distinsert/pkg/validate"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// Seeder — то, что выполняет прогон (usecase.Runner).
type Seeder interface {
	Run(ctx context.Context) []*domain.Report
}

// App — собранное приложение: раннер задач и необязательный HTTP-сервер метрик.
type App struct {
	Logger          ports.Logger  // логгер
	Seeder          Seeder        // три задачи вставки
	HTTPServer      *http.Server  // /ping, /metrics, /reports; nil — не поднимается
	shutdownTimeout time.Duration // время ожидания завершения HTTP-сервера
}

// Cleanup — функция освобождения ресурсов.
type Cleanup func()

// applyGinMode — устанавливает режим Gin по строке;
// неизвестное значение → release и предупреждение в лог.
func applyGinMode(ctx context.Context, mode string, log ports.Logger) {
	switch strings.ToLower(strings.TrimSpace(mode)) {
	case "", "release":
		gin.SetMode(gin.ReleaseMode)
	case "test":
		gin.SetMode(gin.TestMode)
	case "debug":
		gin.SetMode(gin.DebugMode)
	default:
		gin.SetMode(gin.ReleaseMode)
		log.Warnf(ctx, "unknown GIN_MODE=%q, fallback to release", mode)
	}
}

// Bootstrap — собирает зависимости и возвращает приложение, функцию очистки и ошибку.
// Ошибки здесь — ошибки запуска: конфигурация, недоступное хранилище, брокер.
func Bootstrap(ctx context.Context, cfg *config.Config) (*App, Cleanup, error) {
	// Логгер (dev/prod режим задаётся конфигурацией).
	logg, cleanupLogger, err := logger.NewZapLogger(cfg.Logger.IsProd)
	if err != nil {
		return nil, func() {}, err
	}
	return bootstrapWith(ctx, cfg, logg, func() {
		_ = cleanupLogger()
	})
}

func bootstrapWith(ctx context.Context, cfg *config.Config, logg ports.Logger, closeLogger func()) (*App, Cleanup, error) {
	// Регистрация метрик (Prometheus).
	metrics.MustRegister()

	// Трейсинг OTEL (при включённой конфигурации); по умолчанию — no-op.
	shutdownTrace := func(context.Context) error { return nil }
	if cfg.Tracing.Enabled {
		setup, tErr := telemetry.SetupTracing(ctx, cfg.Tracing.ServiceName, cfg.Tracing.Endpoint, cfg.Tracing.SampleRatio)
		if tErr != nil {
			logg.Warnf(ctx, "failed to setup tracing: %v", tErr)
		} else {
			logg.Infof(ctx, "otel tracing enabled service=%s endpoint=%s sample=%.2f",
				cfg.Tracing.ServiceName, cfg.Tracing.Endpoint, cfg.Tracing.SampleRatio)
			shutdownTrace = setup
		}
	}
	stopTrace := func() {
		if terr := shutdownTrace(context.Background()); terr != nil {
			logg.Warnf(ctx, "shutdown tracing: %v", terr)
		}
	}

	// Клиенты хранилищ и статическая маршрутизация.
	clients, closeStores, err := openStores(ctx, &cfg.Store, logg)
	if err != nil {
		stopTrace()
		closeLogger()
		return nil, func() {}, err
	}
	router, err := repo.NewRouter(clients...)
	if err != nil {
		closeStores()
		stopTrace()
		closeLogger()
		return nil, func() {}, err
	}

	// Приёмники отчётов: лог, табло для HTTP и (если заданы брокеры) Kafka.
	board := sink.NewBoard()
	sinks := []ports.ResultSink{sink.NewLogSink(logg), board}
	var producer *kafka.Producer
	if len(cfg.Kafka.Brokers) > 0 {
		producer, err = kafka.NewProducer(&kafka.ProducerConfig{
			Brokers:      cfg.Kafka.Brokers,
			Topic:        cfg.Kafka.Topic,
			WriteTimeout: cfg.Kafka.WriteTimeout,
		}, logg)
		if err != nil {
			closeStores()
			stopTrace()
			closeLogger()
			return nil, func() {}, err
		}
		sinks = append(sinks, producer)
		logg.Infof(ctx, "kafka report sink enabled topic=%s brokers=%v", cfg.Kafka.Topic, cfg.Kafka.Brokers)
	}
	fanOut := sink.NewMultiSink(sinks...)

	jobs, err := buildJobs(router, fanOut, logg)
	if err != nil {
		closeStores()
		stopTrace()
		closeLogger()
		return nil, func() {}, err
	}

	app := &App{
		Logger:          logg,
		Seeder:          usecase.NewRunner(logg, jobs...),
		shutdownTimeout: cfg.ShutdownTimeout,
	}

	// HTTP-сервер метрик — только по явному адресу.
	if cfg.Metrics.Addr != "" {
		applyGinMode(ctx, cfg.Metrics.GinMode, logg)

		// Имя сервиса для otelgin (только при включённом трейсинге).
		otelServiceName := ""
		if cfg.Tracing.Enabled {
			otelServiceName = cfg.Tracing.ServiceName
		}
		app.HTTPServer = &http.Server{
			Addr:              cfg.Metrics.Addr,
			Handler:           rest.NewRouter(rest.NewHandler(board, logg), otelServiceName),
			ReadHeaderTimeout: 5 * time.Second,
		}
	}

	// Очистка ресурсов (в обратном порядке).
	cleanup := func() {
		if producer != nil {
			if err := producer.Close(); err != nil {
				logg.Warnf(ctx, "kafka producer close error: %v", err)
			}
		}
		closeStores()
		stopTrace()
		closeLogger()
	}

	return app, cleanup, nil
}

// buildJobs — по задаче на хранилище со своим сидом.
func buildJobs(router *repo.Router, out ports.ResultSink, logg ports.Logger) ([]usecase.Job, error) {
	validator := validate.NewRecordValidator()
	jobs := make([]usecase.Job, 0, len(domain.Stores()))
	for _, s := range domain.Stores() {
		client, err := router.ClientFor(s)
		if err != nil {
			return nil, err
		}
		job, err := usecase.NewInsertionJob(s, seeddata.ForStore(s), client, validator, out, logg)
		if err != nil {
			return nil, fmt.Errorf("build %s job: %w", s, err)
		}
		jobs = append(jobs, job)
	}
	return jobs, nil
}

// Run — один прогон: три задачи параллельно, затем остановка HTTP-сервера.
// Отчёты возвращаются вызывающему; сбои отдельных записей ошибкой не считаются.
func (a *App) Run(ctx context.Context) []*domain.Report {
	ctx = ctxmeta.WithRunID(ctx, uuid.NewString())

	if a.HTTPServer != nil {
		// запросы во время прогона несут его run_id
		baseCtx := context.WithoutCancel(ctx)
		a.HTTPServer.BaseContext = func(net.Listener) context.Context { return baseCtx }
		go func() {
			a.Logger.Infof(ctx, "http server starting (addr=%s)", a.HTTPServer.Addr)
			if err := a.HTTPServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				a.Logger.Warnf(ctx, "http server failed: %v", err)
			}
		}()
	}

	a.Logger.Infof(ctx, "seeding started")
	reports := a.Seeder.Run(ctx)

	if a.HTTPServer != nil {
		gt := a.shutdownTimeout
		if gt <= 0 {
			gt = 5 * time.Second
		}

		// Корректная остановка HTTP-сервера.
		shutdownCtx, cancel := context.WithTimeout(context.Background(), gt)
		defer cancel()

		if err := a.HTTPServer.Shutdown(shutdownCtx); err != nil {
			a.Logger.Warnf(ctx, "http server shutdown failed: %v", err)
		} else {
			a.Logger.Infof(ctx, "http server stopped gracefully")
		}
	}

	a.Logger.Infof(ctx, "seeding finished")
	return reports
}
