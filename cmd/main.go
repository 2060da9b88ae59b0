package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jonboulle/clockwork"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sirupsen/logrus"

	"github.com/shenikar/santiago_crash_dashboard/internal/config"
	v1 "github.com/shenikar/santiago_crash_dashboard/internal/handler/http/v1"
	"github.com/shenikar/santiago_crash_dashboard/internal/observability"
	"github.com/shenikar/santiago_crash_dashboard/internal/repository"
	"github.com/shenikar/santiago_crash_dashboard/internal/service"
	"github.com/shenikar/santiago_crash_dashboard/pkg/logger"
	"github.com/shenikar/santiago_crash_dashboard/pkg/postgres"
	redisclient "github.com/shenikar/santiago_crash_dashboard/pkg/redis"
	"github.com/shenikar/santiago_crash_dashboard/web"

	_ "github.com/shenikar/santiago_crash_dashboard/docs"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// @title Santiago Crash Dashboard API
// @version 1.0
// @description Dashboard API over geo-referenced car accident records of Santiago de Chile.
// @host localhost:8080
// @BasePath /api/v1
// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name X-API-Key
func main() {
	// Загрузка конфигурации
	cfg, err := config.LoadConfig()
	if err != nil {
		logrus.Fatalf("Failed to load config: %v", err)
	}

	// Инициализация логгера
	log := logger.New(cfg.LogLevel)
	metrics := observability.NewMetrics()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Источник датасета: CSV или таблица accidents
	source, dbpool, err := newAccidentSource(ctx, cfg, log)
	if err != nil {
		log.Fatalf("Failed to init dataset source: %v", err)
	}

	// Датасет загружается один раз, без него не стартуем
	records, err := service.LoadDataset(ctx, source, log)
	if dbpool != nil {
		dbpool.Close()
	}
	if err != nil {
		log.Fatalf("Failed to load dataset: %v", err)
	}

	// Кэш агрегатов опционален
	var cache service.AggregateCache
	if cfg.RedisAddr != "" {
		redisClient, err := redisclient.NewRedisClient(ctx, cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)
		if err != nil {
			log.Fatalf("Failed to connect to Redis: %v", err)
		}
		defer redisClient.Close()
		cache = repository.NewRedisAggregateCache(redisClient, cfg.CacheTTL)
		log.Info("Successfully connected to Redis")
	} else {
		log.Info("REDIS_ADDR is empty, aggregate cache disabled")
	}

	// Инициализация сервисов
	dashboardService := service.NewDashboardService(records, cache, log, cfg, metrics, clockwork.NewRealClock())

	// Инициализация хэндлеров
	handler := v1.NewHandler(dashboardService, log, cfg)

	// Настройка Gin роутера
	router := gin.New()
	router.Use(gin.Recovery(), requestLogger(log), v1.MetricsMiddleware(metrics))
	api := router.Group("/api/v1")
	handler.RegisterRoutes(api)

	web.RegisterRoutes(router)
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))
	// Добавление маршрута для Swagger UI
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Запуск HTTP-сервера
	serverAddr := fmt.Sprintf(":%s", cfg.HTTPPort)

	srv := &http.Server{
		Addr:              serverAddr,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
	}

	// Запуск сервера в горутине
	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("Error starting HTTP server: %v", err)
		}
	}()
	log.WithField("records", len(records)).Infof("HTTP server started on port %s", cfg.HTTPPort)

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("Received shutdown signal, shutting down server...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	log.Info("Server gracefully stopped")
}

// newAccidentSource возвращает источник датасета. Пул postgres нужен только
// на время загрузки, вызывающий закрывает его сам.
func newAccidentSource(ctx context.Context, cfg *config.Config, log *logrus.Logger) (service.AccidentSource, *pgxpool.Pool, error) {
	switch cfg.DatasetSource {
	case config.SourcePostgres:
		dbpool, err := postgres.NewPostgresDB(ctx, cfg.DatabaseURL)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to connect to PostgreSQL: %w", err)
		}
		log.Info("Successfully connected to PostgreSQL")
		return repository.NewPostgresAccidentSource(dbpool, log), dbpool, nil
	default:
		return repository.NewCSVAccidentSource(cfg, log), nil, nil
	}
}

// requestLogger пишет access-лог через logrus вместо стандартного логгера gin
func requestLogger(log *logrus.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		log.WithFields(logrus.Fields{
			"method":   c.Request.Method,
			"path":     c.Request.URL.Path,
			"status":   c.Writer.Status(),
			"duration": time.Since(start).String(),
			"client":   c.ClientIP(),
		}).Info("HTTP request")
	}
}
