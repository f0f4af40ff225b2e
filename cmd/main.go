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

	gorillaHandlers "github.com/gorilla/handlers"
	"github.com/gorilla/mux"
	_ "github.com/lib/pq"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	cancelReservationHandler "github.com/m04kA/SMC-ParkingService/internal/api/handlers/cancel_reservation"
	createReservationHandler "github.com/m04kA/SMC-ParkingService/internal/api/handlers/create_reservation"
	getAvailableSlotsHandler "github.com/m04kA/SMC-ParkingService/internal/api/handlers/get_available_slots"
	getReservationHandler "github.com/m04kA/SMC-ParkingService/internal/api/handlers/get_reservation"
	getUserReservationsHandler "github.com/m04kA/SMC-ParkingService/internal/api/handlers/get_user_reservations"
	getUserStatsHandler "github.com/m04kA/SMC-ParkingService/internal/api/handlers/get_user_stats"
	loginHandler "github.com/m04kA/SMC-ParkingService/internal/api/handlers/login"
	"github.com/m04kA/SMC-ParkingService/internal/api/middleware"
	"github.com/m04kA/SMC-ParkingService/internal/config"
	"github.com/m04kA/SMC-ParkingService/internal/domain"
	reservationRepo "github.com/m04kA/SMC-ParkingService/internal/infra/storage/reservation"
	slotRepo "github.com/m04kA/SMC-ParkingService/internal/infra/storage/slot"
	authServiceClient "github.com/m04kA/SMC-ParkingService/internal/integrations/authservice"
	reservationsService "github.com/m04kA/SMC-ParkingService/internal/service/reservations"
	createReservationUC "github.com/m04kA/SMC-ParkingService/internal/usecase/create_reservation"
	getAvailableSlotsUC "github.com/m04kA/SMC-ParkingService/internal/usecase/get_available_slots"
	"github.com/m04kA/SMC-ParkingService/pkg/dbmetrics"
	"github.com/m04kA/SMC-ParkingService/pkg/logger"
	"github.com/m04kA/SMC-ParkingService/pkg/metrics"
	"github.com/m04kA/SMC-ParkingService/pkg/simpletxmanager"
	"github.com/m04kA/SMC-ParkingService/pkg/txmanager"
)

// TxManager интерфейс transaction manager для use cases
type TxManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
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

	log.Info("Starting SMC-ParkingService...")
	log.Info("Configuration loaded from config.toml")

	// Инициализируем метрики (если включены)
	var metricsCollector *metrics.Metrics
	var wrappedDB *dbmetrics.DB
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

	// Настраиваем connection pool
	db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	db.SetConnMaxLifetime(time.Duration(cfg.Database.ConnMaxLifetime) * time.Second)

	// Проверяем соединение
	if err := db.Ping(); err != nil {
		log.Fatal("Failed to ping database: %v", err)
	}
	log.Info("Successfully connected to database (host=%s, port=%d, db=%s)",
		cfg.Database.Host, cfg.Database.Port, cfg.Database.DBName)

	// Инициализируем клиента AuthService
	authClient := authServiceClient.NewClient(
		cfg.AuthService.URL,
		time.Duration(cfg.AuthService.Timeout)*time.Second,
		log,
	)
	log.Info("Integration clients initialized (AuthService=%s timeout=%ds)",
		cfg.AuthService.URL, cfg.AuthService.Timeout)

	// Инициализируем репозитории (с метриками или без)
	var (
		reservationRepository *reservationRepo.Repository
		slotRepository        *slotRepo.Repository
		txMgr                 TxManager
	)

	if cfg.Metrics.Enabled {
		wrappedDB = dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
		log.Info("Database metrics collection started")

		reservationRepository = reservationRepo.NewRepository(wrappedDB)
		slotRepository = slotRepo.NewRepository(wrappedDB)
		txMgr = txmanager.NewTransactionManager(wrappedDB)
	} else {
		reservationRepository = reservationRepo.NewRepository(db)
		slotRepository = slotRepo.NewRepository(db)
		txMgr = simpletxmanager.NewTransactionManager(db)
	}

	// Заполняем каталог слотов (idempotent)
	if err := slotRepository.Seed(context.Background(), domain.SeedSlots()); err != nil {
		log.Fatal("Failed to seed parking slots: %v", err)
	}
	log.Info("Parking slot catalog ready (%d slots)", domain.TotalSlots)

	// Инициализируем сервисы
	reservationSvc := reservationsService.NewService(
		reservationRepository,
		log,
	)

	// Инициализируем use cases
	createReservationUseCase := createReservationUC.NewUseCase(
		reservationRepository,
		slotRepository,
		authClient,
		txMgr,
		log,
	)

	getAvailableSlotsUseCase := getAvailableSlotsUC.NewUseCase(
		slotRepository,
		reservationRepository,
		log,
	)

	// Инициализируем handlers
	login := loginHandler.NewHandler(
		authClient,
		cfg.Auth.JWTSecret,
		time.Duration(cfg.Auth.TokenTTL)*time.Minute,
		log,
	)
	createReservation := createReservationHandler.NewHandler(createReservationUseCase, log)
	getAvailableSlots := getAvailableSlotsHandler.NewHandler(getAvailableSlotsUseCase, log)
	getReservation := getReservationHandler.NewHandler(reservationSvc, log)
	cancelReservation := cancelReservationHandler.NewHandler(reservationSvc, log)
	getUserReservations := getUserReservationsHandler.NewHandler(reservationSvc, log)
	getUserStats := getUserStatsHandler.NewHandler(reservationSvc, log)

	// Настраиваем роутер
	r := mux.NewRouter()

	// Добавляем metrics middleware (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector, cfg.Metrics.ServiceName))
		log.Info("HTTP metrics middleware enabled")
	}

	// Metrics endpoint (публичный, без аутентификации)
	if cfg.Metrics.Enabled {
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// ============================================================
	// PUBLIC ROUTES (без аутентификации)
	// ============================================================

	// Аутентификация и выдача токена
	api.HandleFunc("/auth/login", login.Handle).Methods(http.MethodPost)

	// Получение свободных слотов на период
	api.HandleFunc("/slots/available", getAvailableSlots.Handle).Methods(http.MethodGet)

	// ============================================================
	// PROTECTED ROUTES (требуют Bearer JWT)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth(cfg.Auth.JWTSecret))

	// --- Бронирования ---
	// Создание бронирования
	protected.HandleFunc("/reservations", createReservation.Handle).Methods(http.MethodPost)

	// Получение бронирования по ID
	protected.HandleFunc("/reservations/{reservationId}", getReservation.Handle).Methods(http.MethodGet)

	// Отмена бронирования
	protected.HandleFunc("/reservations/{reservationId}/cancel", cancelReservation.Handle).Methods(http.MethodPatch)

	// --- Профиль пользователя ---
	// История бронирований пользователя
	protected.HandleFunc("/users/{userId}/reservations", getUserReservations.Handle).Methods(http.MethodGet)

	// Статистика пользователя
	protected.HandleFunc("/users/{userId}/stats", getUserStats.Handle).Methods(http.MethodGet)

	// CORS для фронтенда
	corsHandler := gorillaHandlers.CORS(
		gorillaHandlers.AllowedOrigins([]string{"*"}),
		gorillaHandlers.AllowedMethods([]string{
			http.MethodGet, http.MethodPost, http.MethodPatch, http.MethodOptions,
		}),
		gorillaHandlers.AllowedHeaders([]string{"Content-Type", "Authorization"}),
	)(r)

	// Создаем HTTP сервер
	addr := fmt.Sprintf(":%d", cfg.Server.HTTPPort)
	srv := &http.Server{
		Addr:         addr,
		Handler:      corsHandler,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(cfg.Server.IdleTimeout) * time.Second,
	}

	// Graceful shutdown
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

	// Останавливаем сбор метрик connection pool
	if cfg.Metrics.Enabled {
		close(stopMetricsCh)
		log.Info("Metrics collection stopped")
	}

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
