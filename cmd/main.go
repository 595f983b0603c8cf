package main

import (
	"context"
	"database/sql"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	_ "github.com/lib/pq"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"

	createBlockoutHandler "github.com/m04kA/SMC-ViewingService/internal/api/handlers/create_blockout"
	createViewingHandler "github.com/m04kA/SMC-ViewingService/internal/api/handlers/create_viewing"
	deleteBlockoutHandler "github.com/m04kA/SMC-ViewingService/internal/api/handlers/delete_blockout"
	getAgencyViewingsHandler "github.com/m04kA/SMC-ViewingService/internal/api/handlers/get_agency_viewings"
	getAvailabilityHandler "github.com/m04kA/SMC-ViewingService/internal/api/handlers/get_availability"
	getAvailableSlotsHandler "github.com/m04kA/SMC-ViewingService/internal/api/handlers/get_available_slots"
	getBlockoutsHandler "github.com/m04kA/SMC-ViewingService/internal/api/handlers/get_blockouts"
	getViewingFeasibilityHandler "github.com/m04kA/SMC-ViewingService/internal/api/handlers/get_viewing_feasibility"
	updateAvailabilityHandler "github.com/m04kA/SMC-ViewingService/internal/api/handlers/update_availability"
	updateViewingStatusHandler "github.com/m04kA/SMC-ViewingService/internal/api/handlers/update_viewing_status"
	"github.com/m04kA/SMC-ViewingService/internal/api/middleware"
	"github.com/m04kA/SMC-ViewingService/internal/config"
	slotCache "github.com/m04kA/SMC-ViewingService/internal/infra/cache/slots"
	availabilityRepo "github.com/m04kA/SMC-ViewingService/internal/infra/storage/availability"
	blockoutRepo "github.com/m04kA/SMC-ViewingService/internal/infra/storage/blockout"
	propertyRepo "github.com/m04kA/SMC-ViewingService/internal/infra/storage/property"
	viewingRepo "github.com/m04kA/SMC-ViewingService/internal/infra/storage/viewing"
	"github.com/m04kA/SMC-ViewingService/internal/scheduling"
	availabilityService "github.com/m04kA/SMC-ViewingService/internal/service/availability"
	blockoutsService "github.com/m04kA/SMC-ViewingService/internal/service/blockouts"
	viewingsService "github.com/m04kA/SMC-ViewingService/internal/service/viewings"
	"github.com/m04kA/SMC-ViewingService/internal/travel"
	checkFeasibilityUC "github.com/m04kA/SMC-ViewingService/internal/usecase/check_viewing_feasibility"
	createViewingUC "github.com/m04kA/SMC-ViewingService/internal/usecase/create_viewing"
	getAvailableSlotsUC "github.com/m04kA/SMC-ViewingService/internal/usecase/get_available_slots"
	"github.com/m04kA/SMC-ViewingService/pkg/dbmetrics"
	"github.com/m04kA/SMC-ViewingService/pkg/logger"
	"github.com/m04kA/SMC-ViewingService/pkg/metrics"
	"github.com/m04kA/SMC-ViewingService/pkg/txmanager"
)

// slotCacheBackend кэш слотов, общий для use case и сервисов, которые его сбрасывают
type slotCacheBackend interface {
	getAvailableSlotsUC.SlotCache
	Invalidate(ctx context.Context, agencyID int64) error
}

func main() {
	// Загружаем конфигурацию
	cfg, err := config.Load("config.toml")
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Инициализируем логгер
	log, err := logger.New(cfg.Logs.File, cfg.Logs.Level)
	if err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Close()

	log.Info("Starting SMC-ViewingService...")

	// Инициализируем метрики (если включены); nil-коллектор безопасен для всех вызовов
	var metricsCollector *metrics.Metrics
	stopMetricsCh := make(chan struct{})

	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	// Подключаемся к базе данных
	db, err := sql.Open("postgres", cfg.Database.DSN())
	if err != nil {
		log.Fatal("Failed to connect to database: %v", err)
	}
	defer db.Close()

	db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	db.SetConnMaxLifetime(time.Duration(cfg.Database.ConnMaxLifetime) * time.Second)

	if err := db.Ping(); err != nil {
		log.Fatal("Failed to ping database: %v", err)
	}
	log.Info("Successfully connected to database (host=%s, port=%d, db=%s)",
		cfg.Database.Host, cfg.Database.Port, cfg.Database.DBName)

	var wrappedDB *dbmetrics.DB
	if cfg.Metrics.Enabled {
		wrappedDB = dbmetrics.WrapWithDefault(db, metricsCollector, stopMetricsCh)
		log.Info("Database metrics collection started")
	} else {
		wrappedDB = dbmetrics.Wrap(db, nil)
	}
	txMgr := txmanager.NewTransactionManager(wrappedDB)

	// Кэш слотов: Redis, если включен и доступен, иначе без кэширования
	var cache slotCacheBackend = slotCache.NewNoopCache()
	if cfg.Redis.Enabled {
		redisClient := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		defer redisClient.Close()

		pingCtx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
		err := redisClient.Ping(pingCtx).Err()
		cancel()
		if err != nil {
			log.Warn("Redis unavailable at %s, slot cache disabled: %v", cfg.Redis.Addr, err)
		} else {
			cache = slotCache.NewRedisCache(
				redisClient,
				time.Duration(cfg.Redis.SlotsTTLSeconds)*time.Second,
				metricsCollector,
				log,
			)
			log.Info("Slot cache enabled (redis=%s, ttl=%ds)", cfg.Redis.Addr, cfg.Redis.SlotsTTLSeconds)
		}
	}

	// Инициализируем репозитории
	propertyRepository := propertyRepo.NewRepository(wrappedDB)
	viewingRepository := viewingRepo.NewRepository(wrappedDB)
	availabilityRepository := availabilityRepo.NewRepository(wrappedDB)
	blockoutRepository := blockoutRepo.NewRepository(wrappedDB)

	// Движок подбора слотов
	resolver := travel.NewResolver()
	estimator := travel.NewEstimator(travel.Config{
		AverageSpeedKmh:        cfg.Travel.AverageSpeedKmh,
		FixedCostMinutes:       cfg.Travel.FixedCostMinutes,
		RoundingUnitMinutes:    cfg.Travel.RoundingUnitMinutes,
		UnknownLocationMinutes: cfg.Travel.UnknownLocationMinutes,
	}, resolver)
	engine := scheduling.NewEngine(scheduling.Config{
		ViewingDurationMinutes: cfg.Scheduling.ViewingDurationMinutes,
		TravelBufferMinutes:    cfg.Scheduling.TravelBufferMinutes,
		SlotStepMinutes:        cfg.Scheduling.SlotStepMinutes,
		TightThresholdMinutes:  cfg.Scheduling.TightThresholdMinutes,
		SameDayLeadMinutes:     cfg.Scheduling.SameDayLeadMinutes,
	}, estimator)

	// Инициализируем сервисы
	viewingSvc := viewingsService.NewService(viewingRepository, engine, cache, txMgr, log)
	availabilitySvc := availabilityService.NewService(availabilityRepository, cache, txMgr, log)
	blockoutSvc := blockoutsService.NewService(blockoutRepository, cache, log)

	// Инициализируем use cases
	getAvailableSlotsUseCase := getAvailableSlotsUC.NewUseCase(
		propertyRepository,
		availabilityRepository,
		blockoutRepository,
		viewingRepository,
		engine,
		resolver,
		cache,
		metricsCollector,
		log,
	)
	checkFeasibilityUseCase := checkFeasibilityUC.NewUseCase(viewingRepository, engine, metricsCollector, log)
	createViewingUseCase := createViewingUC.NewUseCase(
		viewingRepository,
		propertyRepository,
		cfg.Scheduling.SameDayLeadMinutes,
		log,
	)

	// Инициализируем handlers
	getAvailableSlots := getAvailableSlotsHandler.NewHandler(getAvailableSlotsUseCase, log)
	getViewingFeasibility := getViewingFeasibilityHandler.NewHandler(checkFeasibilityUseCase, log)
	createViewing := createViewingHandler.NewHandler(createViewingUseCase, log)
	getAgencyViewings := getAgencyViewingsHandler.NewHandler(viewingSvc, log)
	updateViewingStatus := updateViewingStatusHandler.NewHandler(viewingSvc, log)
	getAvailability := getAvailabilityHandler.NewHandler(availabilitySvc, log)
	updateAvailability := updateAvailabilityHandler.NewHandler(availabilitySvc, log)
	getBlockouts := getBlockoutsHandler.NewHandler(blockoutSvc, log)
	createBlockout := createBlockoutHandler.NewHandler(blockoutSvc, log)
	deleteBlockout := deleteBlockoutHandler.NewHandler(blockoutSvc, log)

	// Настраиваем роутер
	r := mux.NewRouter()
	r.Use(middleware.RequestID)

	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	api := r.PathPrefix("/api/v1").Subrouter()

	// --- Арендаторы ---
	api.HandleFunc("/properties/{propertyId}/available-slots", getAvailableSlots.Handle).Methods(http.MethodGet)
	var createViewingRoute http.Handler = http.HandlerFunc(createViewing.Handle)
	if cfg.RateLimit.Enabled {
		limiter := middleware.NewRateLimiter(cfg.RateLimit.RequestsPerMinute, cfg.RateLimit.Burst, log)
		createViewingRoute = limiter.Middleware(createViewingRoute)
		log.Info("Rate limit for viewing requests: %d/min, burst=%d", cfg.RateLimit.RequestsPerMinute, cfg.RateLimit.Burst)
	}
	api.Handle("/viewings", createViewingRoute).Methods(http.MethodPost)

	// --- Агенты ---
	api.HandleFunc("/viewings/{viewingId}", updateViewingStatus.Handle).Methods(http.MethodPatch)
	api.HandleFunc("/viewings/{viewingId}/feasibility", getViewingFeasibility.Handle).Methods(http.MethodGet)
	api.HandleFunc("/agencies/{agencyId}/viewings", getAgencyViewings.Handle).Methods(http.MethodGet)

	// --- Расписание агентства ---
	api.HandleFunc("/agencies/{agencyId}/availability", getAvailability.Handle).Methods(http.MethodGet)
	api.HandleFunc("/agencies/{agencyId}/availability", updateAvailability.Handle).Methods(http.MethodPut)
	api.HandleFunc("/agencies/{agencyId}/blockouts", getBlockouts.Handle).Methods(http.MethodGet)
	api.HandleFunc("/agencies/{agencyId}/blockouts", createBlockout.Handle).Methods(http.MethodPost)
	api.HandleFunc("/agencies/{agencyId}/blockouts/{blockoutId}", deleteBlockout.Handle).Methods(http.MethodDelete)

	// Создаем HTTP сервер
	addr := fmt.Sprintf(":%d", cfg.Server.HTTPPort)
	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(cfg.Server.IdleTimeout) * time.Second,
	}

	go func() {
		log.Info("Starting server on %s", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Server failed to start: %v", err)
		}
	}()

	// Ожидаем сигнал завершения
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server...")

	close(stopMetricsCh)

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Duration(cfg.Server.ShutdownTimeout)*time.Second,
	)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("Server forced to shutdown: %v", err)
	}

	log.Info("Server stopped gracefully")
}
