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

	cancelBookingHandler "github.com/m04kA/studio-service/internal/api/handlers/cancel_booking"
	createAvailabilityRuleHandler "github.com/m04kA/studio-service/internal/api/handlers/create_availability_rule"
	createBookingHandler "github.com/m04kA/studio-service/internal/api/handlers/create_booking"
	createOrderHandler "github.com/m04kA/studio-service/internal/api/handlers/create_order"
	deleteAvailabilityRuleHandler "github.com/m04kA/studio-service/internal/api/handlers/delete_availability_rule"
	featuredProductsHandler "github.com/m04kA/studio-service/internal/api/handlers/featured_products"
	featuredProjectsHandler "github.com/m04kA/studio-service/internal/api/handlers/featured_projects"
	getAvailableSlotsHandler "github.com/m04kA/studio-service/internal/api/handlers/get_available_slots"
	getBookingHandler "github.com/m04kA/studio-service/internal/api/handlers/get_booking"
	getOrderHandler "github.com/m04kA/studio-service/internal/api/handlers/get_order"
	getProductHandler "github.com/m04kA/studio-service/internal/api/handlers/get_product"
	getProjectHandler "github.com/m04kA/studio-service/internal/api/handlers/get_project"
	getServiceHandler "github.com/m04kA/studio-service/internal/api/handlers/get_service"
	healthzHandler "github.com/m04kA/studio-service/internal/api/handlers/healthz"
	listAvailabilityRulesHandler "github.com/m04kA/studio-service/internal/api/handlers/list_availability_rules"
	listBookingsHandler "github.com/m04kA/studio-service/internal/api/handlers/list_bookings"
	listPortfolioCategoriesHandler "github.com/m04kA/studio-service/internal/api/handlers/list_portfolio_categories"
	listProductCategoriesHandler "github.com/m04kA/studio-service/internal/api/handlers/list_product_categories"
	listProductsHandler "github.com/m04kA/studio-service/internal/api/handlers/list_products"
	listProjectsHandler "github.com/m04kA/studio-service/internal/api/handlers/list_projects"
	listServicesHandler "github.com/m04kA/studio-service/internal/api/handlers/list_services"
	submitContactHandler "github.com/m04kA/studio-service/internal/api/handlers/submit_contact"
	subscribeHandler "github.com/m04kA/studio-service/internal/api/handlers/subscribe"
	subscriptionStatusHandler "github.com/m04kA/studio-service/internal/api/handlers/subscription_status"
	unsubscribeHandler "github.com/m04kA/studio-service/internal/api/handlers/unsubscribe"
	updateBookingStatusHandler "github.com/m04kA/studio-service/internal/api/handlers/update_booking_status"
	validateCouponHandler "github.com/m04kA/studio-service/internal/api/handlers/validate_coupon"
	"github.com/m04kA/studio-service/internal/api/middleware"
	"github.com/m04kA/studio-service/internal/config"
	"github.com/m04kA/studio-service/internal/domain"
	availabilityRepo "github.com/m04kA/studio-service/internal/infra/storage/availability"
	bookingRepo "github.com/m04kA/studio-service/internal/infra/storage/booking"
	bookingServiceRepo "github.com/m04kA/studio-service/internal/infra/storage/bookingservice"
	couponRepo "github.com/m04kA/studio-service/internal/infra/storage/coupon"
	orderRepo "github.com/m04kA/studio-service/internal/infra/storage/order"
	portfolioRepo "github.com/m04kA/studio-service/internal/infra/storage/portfolio"
	productRepo "github.com/m04kA/studio-service/internal/infra/storage/product"
	subscriberRepo "github.com/m04kA/studio-service/internal/infra/storage/subscriber"
	availabilityService "github.com/m04kA/studio-service/internal/service/availability"
	bookingsService "github.com/m04kA/studio-service/internal/service/bookings"
	catalogService "github.com/m04kA/studio-service/internal/service/catalog"
	newsletterService "github.com/m04kA/studio-service/internal/service/newsletter"
	portfolioService "github.com/m04kA/studio-service/internal/service/portfolio"
	shopService "github.com/m04kA/studio-service/internal/service/shop"
	createBookingUC "github.com/m04kA/studio-service/internal/usecase/create_booking"
	createOrderUC "github.com/m04kA/studio-service/internal/usecase/create_order"
	getAvailableSlotsUC "github.com/m04kA/studio-service/internal/usecase/get_available_slots"
	validateCouponUC "github.com/m04kA/studio-service/internal/usecase/validate_coupon"
	"github.com/m04kA/studio-service/migrations"
	"github.com/m04kA/studio-service/pkg/cache"
	"github.com/m04kA/studio-service/pkg/dbmetrics"
	"github.com/m04kA/studio-service/pkg/logger"
	"github.com/m04kA/studio-service/pkg/metrics"
	"github.com/m04kA/studio-service/pkg/txmanager"
	"github.com/m04kA/studio-service/pkg/types"
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

	log.Info("Starting studio-service...")

	// Инициализируем метрики (если включены)
	var metricsCollector *metrics.Metrics
	var recorder dbmetrics.Recorder
	stopMetricsCh := make(chan struct{})

	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		recorder = metricsCollector
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

	startupCtx, cancelStartup := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancelStartup()

	// Проверяем соединение
	if err := db.PingContext(startupCtx); err != nil {
		log.Fatal("Failed to ping database: %v", err)
	}
	log.Info("Successfully connected to database (host=%s, port=%d, db=%s)",
		cfg.Database.Host, cfg.Database.Port, cfg.Database.DBName)

	// Миграции
	if cfg.Database.AutoMigrate {
		if err := migrations.Up(startupCtx, db); err != nil {
			log.Fatal("Failed to apply migrations: %v", err)
		}
		version, _ := migrations.Version(startupCtx, db)
		log.Info("Migrations applied (version=%d)", version)
	}

	// Обертка с метриками запросов; без recorder работает как обычное соединение
	wrappedDB := dbmetrics.WrapWithDefault(db, recorder, stopMetricsCh)
	txMgr := txmanager.NewTransactionManager(wrappedDB, log,
		txmanager.WithMaxRetries(cfg.Booking.SerializableRetries),
	)

	// Кэш каталога
	var catalogCache catalogService.Cache = cache.NoopCache{}
	if cfg.Cache.Enabled {
		client, err := cache.Connect(startupCtx, cfg.Cache.Addr, cfg.Cache.Password, cfg.Cache.DB)
		if err != nil {
			log.Warn("Redis unavailable, catalog cache disabled: %v", err)
		} else {
			defer client.Close()
			catalogCache = cache.NewRedisCache(client, cfg.Cache.Prefix)
			log.Info("Catalog cache enabled (addr=%s, ttl=%s)", cfg.Cache.Addr, cfg.Cache.TTL())
		}
	}

	// Параметры календаря
	location, _ := cfg.Booking.Location()
	windowStart, _ := types.NewTimeStringFromString(cfg.Booking.DefaultWindowStart)
	windowEnd, _ := types.NewTimeStringFromString(cfg.Booking.DefaultWindowEnd)
	occupancy, _ := domain.ParseSlotOccupancy(cfg.Booking.SlotOccupancy)

	// Инициализируем репозитории
	bookingRepository := bookingRepo.NewRepository(wrappedDB)
	bookingServiceRepository := bookingServiceRepo.NewRepository(wrappedDB)
	availabilityRepository := availabilityRepo.NewRepository(wrappedDB)
	productRepository := productRepo.NewRepository(wrappedDB)
	couponRepository := couponRepo.NewRepository(wrappedDB)
	orderRepository := orderRepo.NewRepository(wrappedDB)
	portfolioRepository := portfolioRepo.NewRepository(wrappedDB)
	subscriberRepository := subscriberRepo.NewRepository(wrappedDB)

	// Инициализируем сервисы
	bookingSvc := bookingsService.NewService(bookingRepository, log)
	availabilitySvc := availabilityService.NewService(availabilityRepository, log)
	catalogSvc := catalogService.NewService(bookingServiceRepository, catalogCache, cfg.Cache.TTL(), log)
	shopSvc := shopService.NewService(productRepository, orderRepository, log)
	portfolioSvc := portfolioService.NewService(portfolioRepository, log)
	newsletterSvc := newsletterService.NewService(subscriberRepository, log)

	// Инициализируем use cases
	getAvailableSlotsUseCase := getAvailableSlotsUC.NewUseCase(
		bookingRepository,
		availabilityRepository,
		bookingServiceRepository,
		getAvailableSlotsUC.Settings{
			DefaultDuration:    time.Duration(cfg.Booking.DefaultDurationHours * float64(time.Hour)),
			Step:               time.Duration(cfg.Booking.SlotStepMinutes) * time.Minute,
			DefaultWindowStart: windowStart,
			DefaultWindowEnd:   windowEnd,
			Occupancy:          occupancy,
			Location:           location,
		},
		log,
	)

	createBookingUseCase := createBookingUC.NewUseCase(
		bookingRepository,
		bookingServiceRepository,
		txMgr,
		metricsCollector,
		location,
		log,
	)

	createOrderUseCase := createOrderUC.NewUseCase(
		productRepository,
		couponRepository,
		orderRepository,
		txMgr,
		metricsCollector,
		log,
	)

	validateCouponUseCase := validateCouponUC.NewUseCase(couponRepository, log)

	// Инициализируем handlers
	listServices := listServicesHandler.NewHandler(catalogSvc, log)
	getService := getServiceHandler.NewHandler(catalogSvc, log)
	getAvailableSlots := getAvailableSlotsHandler.NewHandler(getAvailableSlotsUseCase, log)
	createBooking := createBookingHandler.NewHandler(createBookingUseCase, log)
	listBookings := listBookingsHandler.NewHandler(bookingSvc, log)
	getBooking := getBookingHandler.NewHandler(bookingSvc, log)
	cancelBooking := cancelBookingHandler.NewHandler(bookingSvc, log)
	updateBookingStatus := updateBookingStatusHandler.NewHandler(bookingSvc, log)
	listAvailabilityRules := listAvailabilityRulesHandler.NewHandler(availabilitySvc, log)
	createAvailabilityRule := createAvailabilityRuleHandler.NewHandler(availabilitySvc, log)
	deleteAvailabilityRule := deleteAvailabilityRuleHandler.NewHandler(availabilitySvc, log)

	listProductCategories := listProductCategoriesHandler.NewHandler(shopSvc, log)
	listProducts := listProductsHandler.NewHandler(shopSvc, log)
	featuredProducts := featuredProductsHandler.NewHandler(shopSvc, log)
	getProduct := getProductHandler.NewHandler(shopSvc, log)
	createOrder := createOrderHandler.NewHandler(createOrderUseCase, log)
	getOrder := getOrderHandler.NewHandler(shopSvc, log)
	validateCoupon := validateCouponHandler.NewHandler(validateCouponUseCase, log)

	listPortfolioCategories := listPortfolioCategoriesHandler.NewHandler(portfolioSvc, log)
	listProjects := listProjectsHandler.NewHandler(portfolioSvc, log)
	featuredProjects := featuredProjectsHandler.NewHandler(portfolioSvc, log)
	getProject := getProjectHandler.NewHandler(portfolioSvc, log)
	submitContact := submitContactHandler.NewHandler(portfolioSvc, log)

	subscribe := subscribeHandler.NewHandler(newsletterSvc, log)
	unsubscribe := unsubscribeHandler.NewHandler(newsletterSvc, log)
	subscriptionStatus := subscriptionStatusHandler.NewHandler(newsletterSvc, log)

	healthz := healthzHandler.NewHandler(wrappedDB, log)

	// Настраиваем роутер
	r := mux.NewRouter()
	r.Use(middleware.Recover(log))

	// Добавляем metrics middleware (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.Metrics(metricsCollector))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	r.HandleFunc("/healthz", healthz.Handle).Methods(http.MethodGet)

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// Публичные POST ограничиваются по частоте на IP
	limited := func(h http.HandlerFunc) http.Handler {
		return h
	}
	if cfg.RateLimit.Enabled {
		rateLimit := middleware.RateLimit(middleware.RateLimitOptions{
			RequestsPerMinute: cfg.RateLimit.RequestsPerMinute,
			Burst:             cfg.RateLimit.Burst,
			TrustProxy:        cfg.RateLimit.TrustProxy,
			IdleTTL:           cfg.RateLimit.IdleTTL(),
		}, log)
		limited = func(h http.HandlerFunc) http.Handler {
			return rateLimit(h)
		}
		log.Info("Rate limit enabled (rpm=%d, burst=%d, trust_proxy=%t)", cfg.RateLimit.RequestsPerMinute, cfg.RateLimit.Burst, cfg.RateLimit.TrustProxy)
	}

	// ============================================================
	// BOOKING
	// ============================================================

	api.HandleFunc("/booking/services", listServices.Handle).Methods(http.MethodGet)
	api.HandleFunc("/booking/services/{slug}", getService.Handle).Methods(http.MethodGet)

	api.HandleFunc("/booking/bookings/available-slots", getAvailableSlots.Handle).Methods(http.MethodGet)
	api.Handle("/booking/bookings", limited(createBooking.Handle)).Methods(http.MethodPost)
	api.HandleFunc("/booking/bookings", listBookings.Handle).Methods(http.MethodGet)
	api.HandleFunc("/booking/bookings/{bookingNumber}", getBooking.Handle).Methods(http.MethodGet)
	api.HandleFunc("/booking/bookings/{bookingNumber}/cancel", cancelBooking.Handle).Methods(http.MethodPatch)

	// --- Операторские маршруты (X-Operator-Token) ---
	operator := api.PathPrefix("/booking").Subrouter()
	operator.Use(middleware.OperatorAuth(cfg.Operator.Token, log))

	operator.HandleFunc("/bookings/{bookingNumber}/status", updateBookingStatus.Handle).Methods(http.MethodPatch)
	operator.HandleFunc("/availability", listAvailabilityRules.Handle).Methods(http.MethodGet)
	operator.HandleFunc("/availability", createAvailabilityRule.Handle).Methods(http.MethodPost)
	operator.HandleFunc("/availability/{id}", deleteAvailabilityRule.Handle).Methods(http.MethodDelete)

	// ============================================================
	// SHOP
	// ============================================================

	api.HandleFunc("/shop/categories", listProductCategories.Handle).Methods(http.MethodGet)
	api.HandleFunc("/shop/products", listProducts.Handle).Methods(http.MethodGet)
	api.HandleFunc("/shop/products/featured", featuredProducts.Handle).Methods(http.MethodGet)
	api.HandleFunc("/shop/products/{slug}", getProduct.Handle).Methods(http.MethodGet)
	api.Handle("/shop/orders", limited(createOrder.Handle)).Methods(http.MethodPost)
	api.HandleFunc("/shop/orders/{orderNumber}", getOrder.Handle).Methods(http.MethodGet)
	api.Handle("/shop/coupons/validate", limited(validateCoupon.Handle)).Methods(http.MethodPost)

	// ============================================================
	// PORTFOLIO
	// ============================================================

	api.HandleFunc("/portfolio/categories", listPortfolioCategories.Handle).Methods(http.MethodGet)
	api.HandleFunc("/portfolio/projects", listProjects.Handle).Methods(http.MethodGet)
	api.HandleFunc("/portfolio/projects/featured", featuredProjects.Handle).Methods(http.MethodGet)
	api.HandleFunc("/portfolio/projects/{slug}", getProject.Handle).Methods(http.MethodGet)
	api.Handle("/portfolio/contact", limited(submitContact.Handle)).Methods(http.MethodPost)

	// ============================================================
	// NEWSLETTER
	// ============================================================

	api.Handle("/newsletter/subscribe", limited(subscribe.Handle)).Methods(http.MethodPost)
	api.Handle("/newsletter/unsubscribe", limited(unsubscribe.Handle)).Methods(http.MethodPost)
	api.HandleFunc("/newsletter/status", subscriptionStatus.Handle).Methods(http.MethodGet)

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

	// Останавливаем сбор статистики connection pool
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
