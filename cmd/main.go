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

	"github.com/gorilla/mux"
	_ "github.com/jackc/pgx/v5/stdlib"
	_ "github.com/lib/pq"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	exportFloorViewHandler "github.com/m04kA/SMC-RoomOccupancy/internal/api/handlers/export_floor_view"
	getDataHandler "github.com/m04kA/SMC-RoomOccupancy/internal/api/handlers/get_data"
	getFiltersHandler "github.com/m04kA/SMC-RoomOccupancy/internal/api/handlers/get_filters"
	getFloorRoomsHandler "github.com/m04kA/SMC-RoomOccupancy/internal/api/handlers/get_floor_rooms"
	getFloorViewHandler "github.com/m04kA/SMC-RoomOccupancy/internal/api/handlers/get_floor_view"
	getOccupancyHandler "github.com/m04kA/SMC-RoomOccupancy/internal/api/handlers/get_occupancy"
	reloadDatasetHandler "github.com/m04kA/SMC-RoomOccupancy/internal/api/handlers/reload_dataset"
	renderFloorOverlayHandler "github.com/m04kA/SMC-RoomOccupancy/internal/api/handlers/render_floor_overlay"
	"github.com/m04kA/SMC-RoomOccupancy/internal/api/middleware"
	"github.com/m04kA/SMC-RoomOccupancy/internal/config"
	"github.com/m04kA/SMC-RoomOccupancy/internal/domain"
	datasetCache "github.com/m04kA/SMC-RoomOccupancy/internal/infra/cache/dataset"
	"github.com/m04kA/SMC-RoomOccupancy/internal/infra/floorplan"
	scheduleRepo "github.com/m04kA/SMC-RoomOccupancy/internal/infra/storage/schedule"
	dataServiceClient "github.com/m04kA/SMC-RoomOccupancy/internal/integrations/dataservice"
	"github.com/m04kA/SMC-RoomOccupancy/internal/occupancy"
	catalogService "github.com/m04kA/SMC-RoomOccupancy/internal/service/catalog"
	"github.com/m04kA/SMC-RoomOccupancy/internal/sqldump"
	getFloorViewUC "github.com/m04kA/SMC-RoomOccupancy/internal/usecase/get_floor_view"
	getOccupancyUC "github.com/m04kA/SMC-RoomOccupancy/internal/usecase/get_occupancy"
	loadDatasetUC "github.com/m04kA/SMC-RoomOccupancy/internal/usecase/load_dataset"
	"github.com/m04kA/SMC-RoomOccupancy/pkg/dbmetrics"
	"github.com/m04kA/SMC-RoomOccupancy/pkg/logger"
	"github.com/m04kA/SMC-RoomOccupancy/pkg/metrics"
)

func main() {
	configPath := "config.toml"
	if v := os.Getenv("CONFIG_PATH"); v != "" {
		configPath = v
	}

	// Загружаем конфигурацию
	cfg, err := config.Load(configPath)
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

	log.Info("Starting SMC-RoomOccupancy...")
	log.Info("Configuration loaded from %s (source=%s)", configPath, cfg.Source.Kind)

	// Инициализируем метрики (если включены)
	var metricsCollector *metrics.Metrics
	stopMetricsCh := make(chan struct{})

	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	// Подключаемся к базе данных (только для реляционного источника)
	var db *sql.DB
	if cfg.UsesDatabase() {
		db, err = sql.Open(cfg.Database.Driver, cfg.Database.DSN())
		if err != nil {
			log.Fatal("Failed to connect to database: %v", err)
		}
		defer db.Close()

		// Настраиваем connection pool
		db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
		db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
		db.SetConnMaxLifetime(config.Duration(cfg.Database.ConnMaxLifetime))

		// Проверяем соединение
		if err := db.Ping(); err != nil {
			log.Fatal("Failed to ping database: %v", err)
		}
		log.Info("Successfully connected to database (driver=%s, host=%s, port=%d, db=%s)",
			cfg.Database.Driver, cfg.Database.Host, cfg.Database.Port, cfg.Database.DBName)
	}

	// Выбираем источник набора данных
	var source loadDatasetUC.Source
	switch cfg.Source.Kind {
	case config.SourcePostgres:
		if cfg.Metrics.Enabled {
			wrappedDB := dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Database.DBName, stopMetricsCh)
			source = scheduleRepo.NewRepository(wrappedDB)
			log.Info("Database metrics collection started")
		} else {
			source = scheduleRepo.NewRepository(db)
		}

	case config.SourceRemote:
		client := dataServiceClient.NewClient(
			cfg.Source.RemoteURL,
			cfg.Source.RemoteToken,
			config.Duration(cfg.Source.RemoteTimeout),
			cfg.Source.RemoteRetries,
			log,
		)
		source = loadDatasetUC.SourceFunc(client.FetchDocument)
		log.Info("Remote data service client initialized (url=%s, timeout=%ds, retries=%d)",
			cfg.Source.RemoteURL, cfg.Source.RemoteTimeout, cfg.Source.RemoteRetries)

	case config.SourceSQLDump:
		source = sqldump.NewFileSource(cfg.Source.DumpFile, log)
		log.Info("SQL dump source initialized (file=%s)", cfg.Source.DumpFile)
	}

	// Кэш исходного документа (опционально)
	var cache loadDatasetUC.DatasetCache
	if cfg.Cache.Enabled {
		redisClient := datasetCache.NewRedisClient(cfg.Cache.Addr, cfg.Cache.Password, cfg.Cache.DB)
		defer redisClient.Close()
		cache = datasetCache.NewCache(datasetCache.NewRedisKV(redisClient), cfg.Cache.Key, config.Duration(cfg.Cache.TTL))
		log.Info("Dataset cache enabled (addr=%s, key=%s, ttl=%ds)", cfg.Cache.Addr, cfg.Cache.Key, cfg.Cache.TTL)
	}

	// Таблица этажей: недостающие размеры берем из файлов изображений
	renderer := floorplan.NewRenderer(cfg.Floorplan.ImagesDir)
	floors := domain.NewFloorCatalog(renderer.ProbeSizes(cfg.FloorConfigs(), log))
	log.Info("Floor catalog initialized (%d floors)", len(floors.Floors()))

	// Хранилище снимков и use cases
	store := occupancy.NewStore()

	// Метрики передаются только когда включены, чтобы не получить typed nil
	var (
		loadDatasetUseCase  *loadDatasetUC.UseCase
		getOccupancyUseCase *getOccupancyUC.UseCase
		getFloorViewUseCase *getFloorViewUC.UseCase
	)
	if cfg.Metrics.Enabled {
		loadDatasetUseCase = loadDatasetUC.NewUseCase(cfg.Source.Kind, source, cache, store, metricsCollector, log)
		getOccupancyUseCase = getOccupancyUC.NewUseCase(store, metricsCollector, log)
		getFloorViewUseCase = getFloorViewUC.NewUseCase(store, floors, cfg.Floorplan.MaxViewport, metricsCollector, log)
	} else {
		loadDatasetUseCase = loadDatasetUC.NewUseCase(cfg.Source.Kind, source, cache, store, nil, log)
		getOccupancyUseCase = getOccupancyUC.NewUseCase(store, nil, log)
		getFloorViewUseCase = getFloorViewUC.NewUseCase(store, floors, cfg.Floorplan.MaxViewport, nil, log)
	}

	catalogSvc := catalogService.NewService(store, floors, cfg.Floorplan.URLPrefix, log)

	// Первичная загрузка; при ошибке сервис работает и отвечает 503 до успешной перезагрузки
	loadCtx, cancelLoad := context.WithTimeout(context.Background(), 30*time.Second)
	if resp, err := loadDatasetUseCase.Execute(loadCtx, &loadDatasetUC.Request{}); err != nil {
		log.Error("Initial dataset load failed: %v", err)
	} else {
		log.Info("Initial dataset loaded (rooms=%d, classInfo=%d, schedules=%d, rejected=%d, fromCache=%t)",
			resp.Rooms, resp.ClassInfo, resp.Schedules, len(resp.Rejected), resp.FromCache)
	}
	cancelLoad()

	// Инициализируем handlers
	getData := getDataHandler.NewHandler(catalogSvc, log)
	getFilters := getFiltersHandler.NewHandler(catalogSvc, log)
	getFloorRooms := getFloorRoomsHandler.NewHandler(catalogSvc, log)
	getOccupancy := getOccupancyHandler.NewHandler(getOccupancyUseCase, log)
	getFloorView := getFloorViewHandler.NewHandler(getFloorViewUseCase, catalogSvc, log)
	exportFloorView := exportFloorViewHandler.NewHandler(getFloorViewUseCase, log)
	renderFloorOverlay := renderFloorOverlayHandler.NewHandler(getFloorViewUseCase, renderer, log)
	reloadDataset := reloadDatasetHandler.NewHandler(loadDatasetUseCase, log)

	// Настраиваем роутер
	r := mux.NewRouter()
	r.Use(middleware.RequestID)

	// Добавляем metrics middleware (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector, cfg.Metrics.ServiceName))
		log.Info("HTTP metrics middleware enabled")

		// Metrics endpoint (публичный, без сессии)
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	var session mux.MiddlewareFunc
	if cfg.Session.Enabled {
		session = middleware.Session(middleware.SessionOptions{
			CookieName: cfg.Session.CookieName,
			Secret:     cfg.Session.Secret,
			LoginURL:   cfg.Session.LoginURL,
			APIPrefix:  "/api",
		}, log)
		log.Info("Session check enabled (cookie=%s)", cfg.Session.CookieName)
	}

	// API prefix
	api := r.PathPrefix("/api").Subrouter()
	if session != nil {
		api.Use(session)
	}

	// Исходный набор данных
	api.HandleFunc("/data", getData.Handle).Methods(http.MethodGet)
	api.HandleFunc("/reload", reloadDataset.Handle).Methods(http.MethodPost)

	// Фильтры и аудитории
	api.HandleFunc("/filters", getFilters.Handle).Methods(http.MethodGet)
	api.HandleFunc("/rooms/floor/{floor}", getFloorRooms.Handle).Methods(http.MethodGet)
	api.HandleFunc("/occupancy/{day}/{period}/{floor}", getOccupancy.Handle).Methods(http.MethodGet)

	// Представление этажа
	api.HandleFunc("/view", getFloorView.Handle).Methods(http.MethodGet)
	api.HandleFunc("/view/export.xlsx", exportFloorView.Handle).Methods(http.MethodGet)
	api.HandleFunc("/floors/{floor}/overlay.png", renderFloorOverlay.Handle).Methods(http.MethodGet)

	// Статика: изображения этажей и фронтенд (страница входа доступна без сессии)
	var static http.Handler = http.FileServer(http.Dir(cfg.Server.StaticDir))
	var images http.Handler = http.StripPrefix(cfg.Floorplan.URLPrefix, http.FileServer(http.Dir(cfg.Floorplan.ImagesDir)))
	if session != nil {
		static = exceptLogin(cfg.Session.LoginURL, static, session(static))
		images = session(images)
	}
	r.PathPrefix(cfg.Floorplan.URLPrefix).Handler(images)
	r.PathPrefix("/").Handler(static)

	// Создаем HTTP сервер
	addr := fmt.Sprintf(":%d", cfg.Server.HTTPPort)
	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  config.Duration(cfg.Server.ReadTimeout),
		WriteTimeout: config.Duration(cfg.Server.WriteTimeout),
		IdleTimeout:  config.Duration(cfg.Server.IdleTimeout),
	}

	// Graceful shutdown
	go func() {
		log.Info("Starting server on %s", addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("Server failed to start: %v", err)
		}
	}()

	// Ожидаем сигнал завершения
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server...")

	// Останавливаем сбор метрик connection pool
	close(stopMetricsCh)

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		config.Duration(cfg.Server.ShutdownTimeout),
	)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("Server forced to shutdown: %v", err)
	}

	log.Info("Server stopped gracefully")
}

// exceptLogin отдает страницу входа без проверки сессии
func exceptLogin(loginURL string, open, protected http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == loginURL {
			open.ServeHTTP(w, r)
			return
		}
		protected.ServeHTTP(w, r)
	})
}
