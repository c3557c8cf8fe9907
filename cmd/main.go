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

	_ "github.com/lib/pq"
	"github.com/redis/go-redis/v9"

	"github.com/m04kA/SMC-ShuttleService/internal/api/router"
	"github.com/m04kA/SMC-ShuttleService/internal/config"
	"github.com/m04kA/SMC-ShuttleService/internal/domain"
	availabilityRepo "github.com/m04kA/SMC-ShuttleService/internal/infra/storage/availability"
	demandRepo "github.com/m04kA/SMC-ShuttleService/internal/infra/storage/demand"
	paymentRepo "github.com/m04kA/SMC-ShuttleService/internal/infra/storage/payment"
	routeConfigRepo "github.com/m04kA/SMC-ShuttleService/internal/infra/storage/routeconfig"
	"github.com/m04kA/SMC-ShuttleService/internal/integrations/graph"
	"github.com/m04kA/SMC-ShuttleService/internal/integrations/ics"
	"github.com/m04kA/SMC-ShuttleService/internal/integrations/resend"
	"github.com/m04kA/SMC-ShuttleService/internal/integrations/yoco"
	adminService "github.com/m04kA/SMC-ShuttleService/internal/service/admin"
	availabilityService "github.com/m04kA/SMC-ShuttleService/internal/service/availability"
	demandService "github.com/m04kA/SMC-ShuttleService/internal/service/demand"
	"github.com/m04kA/SMC-ShuttleService/internal/service/notifications"
	paymentsService "github.com/m04kA/SMC-ShuttleService/internal/service/payments"
	routesService "github.com/m04kA/SMC-ShuttleService/internal/service/routes"
	confirmDemandUC "github.com/m04kA/SMC-ShuttleService/internal/usecase/confirm_demand"
	getAvailableSlotsUC "github.com/m04kA/SMC-ShuttleService/internal/usecase/get_available_slots"
	pushCalendarBlocksUC "github.com/m04kA/SMC-ShuttleService/internal/usecase/push_calendar_blocks"
	removeCalendarBlocksUC "github.com/m04kA/SMC-ShuttleService/internal/usecase/remove_calendar_blocks"
	syncCalendarUC "github.com/m04kA/SMC-ShuttleService/internal/usecase/sync_calendar"
	"github.com/m04kA/SMC-ShuttleService/pkg/logger"
	"github.com/m04kA/SMC-ShuttleService/pkg/metrics"
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

	log.Info("Starting SMC-ShuttleService...")
	log.Info("Configuration loaded from config.toml (storage=%s)", cfg.Storage.Driver)

	// Инициализируем метрики (если включены)
	var (
		metricsCollector *metrics.Metrics
		demandMetrics    demandService.MetricsRecorder
		paymentMetrics   paymentsService.MetricsRecorder
		notifyMetrics    notifications.MetricsRecorder
	)
	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		demandMetrics = metricsCollector
		paymentMetrics = metricsCollector
		notifyMetrics = metricsCollector
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	// Инициализируем хранилища
	var (
		availabilityRepository availabilityService.AvailabilityRepository
		demandRepository       demandService.DemandRepository
		routeConfigRepository  routesService.RouteConfigRepository
		paymentRepository      paymentsService.PaymentRepository
	)

	defaultRoutes := domain.DefaultRouteConfig(cfg.Demand.Enabled)

	switch cfg.Storage.Driver {
	case config.StoragePostgres:
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

		availabilityRepository = availabilityRepo.NewRepository(db)
		demandRepository = demandRepo.NewRepository(db)
		routeConfigRepository = routeConfigRepo.NewRepository(db, defaultRoutes)
	default:
		availabilityRepository = availabilityRepo.NewMemoryRepository()
		demandRepository = demandRepo.NewMemoryRepository()
		routeConfigRepository = routeConfigRepo.NewMemoryRepository(defaultRoutes)
		log.Warn("Using in-memory storage, state is lost on restart")
	}

	if cfg.Redis.Enabled {
		rdb := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		defer rdb.Close()

		if err := rdb.Ping(context.Background()).Err(); err != nil {
			log.Fatal("Failed to ping redis: %v", err)
		}
		paymentRepository = paymentRepo.NewRepository(rdb, time.Duration(cfg.Redis.TTLHours)*time.Hour)
		log.Info("Payment references stored in redis (addr=%s, ttl=%dh)", cfg.Redis.Addr, cfg.Redis.TTLHours)
	} else {
		paymentRepository = paymentRepo.NewMemoryRepository()
	}

	// Инициализируем интеграционных клиентов
	yocoClient := yoco.NewClient(
		cfg.Payments.YocoURL,
		cfg.Payments.WebhooksURL,
		cfg.Payments.SecretKey,
		time.Duration(cfg.Payments.Timeout)*time.Second,
		log,
	)
	graphClient := graph.NewClient(graph.Config{
		TenantID:     cfg.Graph.TenantID,
		ClientID:     cfg.Graph.ClientID,
		ClientSecret: cfg.Graph.ClientSecret,
		UserUPN:      cfg.Graph.UserUPN,
		AuthURL:      cfg.Graph.AuthURL,
		BaseURL:      cfg.Graph.BaseURL,
		Timeout:      time.Duration(cfg.Graph.Timeout) * time.Second,
	}, log)
	resendClient := resend.NewClient(
		cfg.Resend.URL,
		cfg.Resend.APIKey,
		cfg.Resend.From,
		time.Duration(cfg.Resend.Timeout)*time.Second,
	)
	icsClient := ics.NewClient(cfg.ICS.URL, time.Duration(cfg.ICS.Timeout)*time.Second, log)
	log.Info("Integration clients initialized (yoco=%t, graph=%t, resend=%t, ics=%t, test_mode=%t)",
		yocoClient.Configured(), graphClient.Configured(), resendClient.Configured(),
		icsClient.Configured(), cfg.Payments.TestMode)

	// Письма: сначала Graph, затем Resend
	senders := make([]notifications.Sender, 0, 2)
	if graphClient.Configured() {
		senders = append(senders, graphClient)
	}
	if resendClient.Configured() {
		senders = append(senders, resendClient)
	}
	if len(senders) == 0 {
		log.Warn("No mail transport configured, notifications will be skipped")
	}

	// Инициализируем сервисы
	notifier := notifications.NewService(senders, notifyMetrics, log)
	availabilitySvc := availabilityService.NewService(availabilityRepository, log)
	demandSvc := demandService.NewService(demandRepository, cfg.Demand.Threshold, demandMetrics, log)
	routesSvc := routesService.NewService(routeConfigRepository, cfg.Demand.Threshold, log)
	adminSvc := adminService.NewService(cfg.Admin.Pin, log)
	paymentsSvc := paymentsService.NewService(
		paymentsService.Config{
			SiteURL:     cfg.Server.SiteURL,
			TestMode:    cfg.Payments.TestMode,
			AdminEmail:  cfg.Notify.AdminEmail,
			ClientEmail: cfg.Notify.ClientEmail,
		},
		paymentRepository,
		yocoClient,
		notifier,
		paymentMetrics,
		log,
	)

	// Инициализируем use cases
	confirmDemandUseCase := confirmDemandUC.NewUseCase(
		demandSvc,
		notifier,
		confirmDemandUC.Config{
			AdminEmail:  cfg.Notify.AdminEmail,
			ClientEmail: cfg.Notify.ClientEmail,
		},
		log,
	)
	getAvailableSlotsUseCase := getAvailableSlotsUC.NewUseCase(availabilitySvc, routesSvc, demandSvc, log)
	syncCalendarUseCase := syncCalendarUC.NewUseCase(icsClient, graphClient, availabilitySvc, log)
	pushBlocksUseCase := pushCalendarBlocksUC.NewUseCase(
		availabilitySvc,
		graphClient,
		pushCalendarBlocksUC.Config{
			TimeZone: cfg.Graph.TimeZone,
			Subject:  cfg.Graph.BlockSubject,
		},
		log,
	)
	removeBlocksUseCase := removeCalendarBlocksUC.NewUseCase(graphClient, cfg.Graph.BlockSubject, log)

	// Настраиваем роутер
	handler := router.New(router.Deps{
		Availability:   availabilitySvc,
		Demand:         demandSvc,
		Routes:         routesSvc,
		Admin:          adminSvc,
		Payments:       paymentsSvc,
		ICS:            icsClient,
		Graph:          graphClient,
		Yoco:           yocoClient,
		ConfirmDemand:  confirmDemandUseCase,
		AvailableSlots: getAvailableSlotsUseCase,
		SyncCalendar:   syncCalendarUseCase,
		PushBlocks:     pushBlocksUseCase,
		RemoveBlocks:   removeBlocksUseCase,
		Metrics:        metricsCollector,
		MetricsPath:    cfg.Metrics.Path,
		StaticDir:      cfg.Server.StaticDir,
		SiteURL:        cfg.Server.SiteURL,
		Logger:         log,
	})

	if !adminSvc.RequiresPin() {
		log.Warn("Admin PIN is not set, protected endpoints are open")
	}

	// Создаем HTTP сервер
	addr := fmt.Sprintf(":%d", cfg.Server.HTTPPort)
	srv := &http.Server{
		Addr:         addr,
		Handler:      handler,
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
