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

	cancelBookingsHandler "github.com/divetrip/booking-service/internal/api/handlers/cancel_bookings"
	convertOptionsHandler "github.com/divetrip/booking-service/internal/api/handlers/convert_options"
	createConfirmedHandler "github.com/divetrip/booking-service/internal/api/handlers/create_confirmed"
	createOptionHandler "github.com/divetrip/booking-service/internal/api/handlers/create_option"
	createTripHandler "github.com/divetrip/booking-service/internal/api/handlers/create_trip"
	createWaitlistHandler "github.com/divetrip/booking-service/internal/api/handlers/create_waitlist"
	getBookingHandler "github.com/divetrip/booking-service/internal/api/handlers/get_booking"
	getOwnerBookingsHandler "github.com/divetrip/booking-service/internal/api/handlers/get_owner_bookings"
	getTripBookingsHandler "github.com/divetrip/booking-service/internal/api/handlers/get_trip_bookings"
	promoteWaitlistHandler "github.com/divetrip/booking-service/internal/api/handlers/promote_waitlist"
	purgeExpiredHandler "github.com/divetrip/booking-service/internal/api/handlers/purge_expired_options"
	resolveScheduleHandler "github.com/divetrip/booking-service/internal/api/handlers/resolve_boat_schedule"
	setSingleUseHandler "github.com/divetrip/booking-service/internal/api/handlers/set_single_use"
	"github.com/divetrip/booking-service/internal/api/middleware"
	"github.com/divetrip/booking-service/internal/config"
	boatRepo "github.com/divetrip/booking-service/internal/infra/storage/boat"
	bookingRepo "github.com/divetrip/booking-service/internal/infra/storage/booking"
	tripRepo "github.com/divetrip/booking-service/internal/infra/storage/trip"
	identityClient "github.com/divetrip/booking-service/internal/integrations/identityservice"
	bookingsService "github.com/divetrip/booking-service/internal/service/bookings"
	capacityService "github.com/divetrip/booking-service/internal/service/capacity"
	gendercohortService "github.com/divetrip/booking-service/internal/service/gendercohort"
	penaltyService "github.com/divetrip/booking-service/internal/service/penalty"
	repricerService "github.com/divetrip/booking-service/internal/service/repricer"
	cancelBookingsUC "github.com/divetrip/booking-service/internal/usecase/cancel_bookings"
	convertOptionsUC "github.com/divetrip/booking-service/internal/usecase/convert_options"
	createConfirmedUC "github.com/divetrip/booking-service/internal/usecase/create_confirmed"
	createOptionUC "github.com/divetrip/booking-service/internal/usecase/create_option"
	createTripUC "github.com/divetrip/booking-service/internal/usecase/create_trip"
	createWaitlistUC "github.com/divetrip/booking-service/internal/usecase/create_waitlist"
	promoteWaitlistUC "github.com/divetrip/booking-service/internal/usecase/promote_waitlist"
	purgeExpiredUC "github.com/divetrip/booking-service/internal/usecase/purge_expired_options"
	resolveScheduleUC "github.com/divetrip/booking-service/internal/usecase/resolve_boat_schedule"
	setSingleUseUC "github.com/divetrip/booking-service/internal/usecase/set_single_use"
	"github.com/divetrip/booking-service/pkg/dbmetrics"
	"github.com/divetrip/booking-service/pkg/logger"
	"github.com/divetrip/booking-service/pkg/metrics"
	"github.com/divetrip/booking-service/pkg/simpletxmanager"
	"github.com/divetrip/booking-service/pkg/txmanager"
)

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

	log.Info("Starting DiveTrip-BookingService...")
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

	// Инициализируем клиент IdentityService
	identity := identityClient.NewClient(
		cfg.IdentityService.URL,
		time.Duration(cfg.IdentityService.Timeout)*time.Second,
		log,
	)
	log.Info("Integration clients initialized (IdentityService=%s timeout=%ds)",
		cfg.IdentityService.URL, cfg.IdentityService.Timeout)

	// Инициализируем репозитории (с метриками или без)
	var (
		bookingRepository *bookingRepo.Repository
		tripRepository    *tripRepo.Repository
		boatRepository    *boatRepo.Repository
	)

	// Интерфейс для transaction manager (используется в usecases)
	type TxManager interface {
		DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
	}
	var txMgr TxManager

	if cfg.Metrics.Enabled {
		wrappedDB = dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
		log.Info("Database metrics collection started")

		bookingRepository = bookingRepo.NewRepository(wrappedDB)
		tripRepository = tripRepo.NewRepository(wrappedDB)
		boatRepository = boatRepo.NewRepository(wrappedDB)
		txMgr = txmanager.NewTransactionManager(wrappedDB)
	} else {
		bookingRepository = bookingRepo.NewRepository(db)
		tripRepository = tripRepo.NewRepository(db)
		boatRepository = boatRepo.NewRepository(db)
		txMgr = simpletxmanager.NewTransactionManager(db)
	}

	// Инициализируем сервисы
	ledger := capacityService.NewService(tripRepository, log)
	genderPolicy := gendercohortService.NewService()
	penaltyCalc := penaltyService.NewService()
	repricer := repricerService.NewService()
	bookingSvc := bookingsService.NewService(bookingRepository, tripRepository, log)

	// Инициализируем use cases
	createOptionUseCase := createOptionUC.NewUseCase(
		bookingRepository, tripRepository, boatRepository,
		ledger, genderPolicy, identity, txMgr, log,
	)
	createConfirmedUseCase := createConfirmedUC.NewUseCase(
		bookingRepository, tripRepository, boatRepository,
		ledger, genderPolicy, identity, txMgr, log,
	)
	createWaitlistUseCase := createWaitlistUC.NewUseCase(
		bookingRepository, tripRepository, identity, txMgr, log,
	)
	convertOptionsUseCase := convertOptionsUC.NewUseCase(
		bookingRepository, txMgr, log,
	)
	cancelBookingsUseCase := cancelBookingsUC.NewUseCase(
		bookingRepository, tripRepository, ledger, penaltyCalc, txMgr, log,
	)
	promoteWaitlistUseCase := promoteWaitlistUC.NewUseCase(
		bookingRepository, tripRepository, boatRepository,
		ledger, genderPolicy, txMgr, log,
	)
	setSingleUseUseCase := setSingleUseUC.NewUseCase(
		bookingRepository, repricer, txMgr, log,
	)
	purgeExpiredUseCase := purgeExpiredUC.NewUseCase(
		bookingRepository, tripRepository, ledger, txMgr, log,
	)
	resolveScheduleUseCase := resolveScheduleUC.NewUseCase(
		boatRepository, tripRepository,
		cfg.Schedule.BufferDays, cfg.Schedule.ExcludeBufferConflicts, log,
	)
	createTripUseCase := createTripUC.NewUseCase(
		boatRepository, tripRepository, txMgr,
		cfg.Schedule.BufferDays, cfg.Schedule.ExcludeBufferConflicts, log,
	)

	// Инициализируем handlers
	createOption := createOptionHandler.NewHandler(createOptionUseCase, log)
	createConfirmed := createConfirmedHandler.NewHandler(createConfirmedUseCase, log)
	createWaitlist := createWaitlistHandler.NewHandler(createWaitlistUseCase, log)
	convertOptions := convertOptionsHandler.NewHandler(convertOptionsUseCase, log)
	cancelBookings := cancelBookingsHandler.NewHandler(cancelBookingsUseCase, log)
	promoteWaitlist := promoteWaitlistHandler.NewHandler(promoteWaitlistUseCase, log)
	setSingleUse := setSingleUseHandler.NewHandler(setSingleUseUseCase, log)
	purgeExpired := purgeExpiredHandler.NewHandler(purgeExpiredUseCase, log)
	resolveSchedule := resolveScheduleHandler.NewHandler(resolveScheduleUseCase, log)
	createTrip := createTripHandler.NewHandler(createTripUseCase, log)
	getBooking := getBookingHandler.NewHandler(bookingSvc, log)
	getTripBookings := getTripBookingsHandler.NewHandler(bookingSvc, log)
	getOwnerBookings := getOwnerBookingsHandler.NewHandler(bookingSvc, log)

	// Настраиваем роутер
	r := mux.NewRouter()

	// Добавляем metrics middleware (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.Metrics(metricsCollector))
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

	// Подбор свободных лодок под диапазон дат
	api.HandleFunc("/boats/schedule", resolveSchedule.Handle).Methods(http.MethodGet)

	// Бронирования рейса со счетчиками мест
	api.HandleFunc("/trips/{tripId}/bookings", getTripBookings.Handle).Methods(http.MethodGet)

	// Получение бронирования по ID
	api.HandleFunc("/bookings/{bookingId}", getBooking.Handle).Methods(http.MethodGet)

	// ============================================================
	// PROTECTED ROUTES (требуют X-User-ID header)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth)

	// --- Рейсы ---
	// Создание рейса с проверкой расписания лодки
	protected.HandleFunc("/trips", createTrip.Handle).Methods(http.MethodPost)

	// Очистка просроченных опционов рейса
	protected.HandleFunc("/trips/{tripId}/purge-expired", purgeExpired.Handle).Methods(http.MethodPost)

	// --- Бронирования ---
	// Создание опциона (бронь с дедлайном)
	protected.HandleFunc("/trips/{tripId}/options", createOption.Handle).Methods(http.MethodPost)

	// Создание подтвержденного бронирования
	protected.HandleFunc("/trips/{tripId}/bookings", createConfirmed.Handle).Methods(http.MethodPost)

	// Постановка в лист ожидания
	protected.HandleFunc("/trips/{tripId}/waitlist", createWaitlist.Handle).Methods(http.MethodPost)

	// Конвертация опционов в подтвержденные бронирования
	protected.HandleFunc("/bookings/convert", convertOptions.Handle).Methods(http.MethodPost)

	// Отмена бронирований с расчетом штрафа
	protected.HandleFunc("/bookings/cancel", cancelBookings.Handle).Methods(http.MethodPost)

	// Повышение записи листа ожидания до подтвержденного бронирования
	protected.HandleFunc("/waitlist/{bookingId}/promote", promoteWaitlist.Handle).Methods(http.MethodPost)

	// Одноместное размещение (наценка к цене)
	protected.HandleFunc("/bookings/{bookingId}/single-use", setSingleUse.Handle).Methods(http.MethodPut)

	// История бронирований пользователя
	protected.HandleFunc("/users/me/bookings", getOwnerBookings.Handle).Methods(http.MethodGet)

	// Создаем HTTP сервер
	addr := fmt.Sprintf(":%d", cfg.Server.HTTPPort)
	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
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
		log.Fatal("Server forced to shutdown: %v", err)
	}

	log.Info("Server exited gracefully")
}
