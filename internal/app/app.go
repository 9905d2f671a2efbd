package app

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net/http"

	"github.com/RubachokBoss/school-monitoring/internal/config"
	"github.com/RubachokBoss/school-monitoring/internal/database"
	"github.com/RubachokBoss/school-monitoring/internal/delivery/httpd"
	"github.com/RubachokBoss/school-monitoring/internal/repository"
	"github.com/RubachokBoss/school-monitoring/internal/service"
	"github.com/RubachokBoss/school-monitoring/internal/worker"
	"github.com/RubachokBoss/school-monitoring/internal/worker/queue"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/rs/zerolog"
)

type App struct {
	server       *http.Server
	logger       zerolog.Logger
	config       *config.Config
	db           *sql.DB
	authService  service.AuthService
	ingestWorker worker.IngestWorker
	publisher    queue.RabbitMQPublisher
	rabbitConn   *queue.Connection
	cancel       context.CancelFunc
}

func New(cfg *config.Config, log zerolog.Logger, db *sql.DB) (*App, error) {
	a := &App{
		logger: log,
		config: cfg,
		db:     db,
	}

	adminRepo := repository.NewAdminRepository(db, log)
	tokenRepo := repository.NewTokenRepository(db, log)
	cameraRepo := repository.NewCameraRepository(db, log)
	classroomRepo := repository.NewClassroomRepository(db, log)
	studentRepo := repository.NewStudentRepository(db, log)
	teacherRepo := repository.NewTeacherRepository(db, log)
	eventRepo := repository.NewBehaviorEventRepository(db, log)
	notificationRepo := repository.NewNotificationRepository(db, log)
	schemaRepo := repository.NewSchemaRepository(db, log)

	snapshotRepo := a.newSnapshotRepository()

	var consumer queue.RabbitMQConsumer
	if cfg.RabbitMQ.Enabled {
		var err error
		consumer, err = a.connectRabbitMQ()
		if err != nil {
			// брокер необязателен: API работает и без приёма событий
			log.Warn().Err(err).Msg("RabbitMQ unavailable, event ingestion and notification publishing disabled")
			a.closeRabbitMQ()
		}
	} else {
		log.Info().Msg("RabbitMQ disabled by configuration")
	}

	var notificationPublisher service.NotificationPublisher
	if a.publisher != nil {
		notificationPublisher = a.publisher
	}

	a.authService = service.NewAuthService(adminRepo, tokenRepo, log, service.AuthConfig{
		PasswordScheme:       cfg.Auth.PasswordScheme,
		DefaultAdminEmail:    cfg.Auth.DefaultAdminEmail,
		DefaultAdminName:     cfg.Auth.DefaultAdminName,
		DefaultAdminPassword: cfg.Auth.DefaultAdminPassword,
	})
	eventService := service.NewBehaviorEventService(eventRepo, log)

	if consumer != nil {
		a.ingestWorker = worker.NewIngestWorker(
			worker.NewWorkerPool(cfg.Worker.MaxWorkers, log),
			consumer,
			queue.NewMessageHandler(eventService, log),
			log,
		)
	}

	handler := httpd.NewHandler(httpd.Services{
		Auth:          a.authService,
		Cameras:       service.NewCameraService(cameraRepo, snapshotRepo, log),
		Classrooms:    service.NewClassroomService(classroomRepo, log),
		Students:      service.NewStudentService(studentRepo, log),
		Teachers:      service.NewTeacherService(teacherRepo, log),
		Reports:       service.NewReportService(studentRepo, teacherRepo, eventRepo, log),
		Dashboard:     service.NewDashboardService(classroomRepo, studentRepo, teacherRepo, cameraRepo, eventRepo, log),
		Notifications: service.NewNotificationService(notificationRepo, notificationPublisher, log),
		Events:        eventService,
		Seed:          service.NewSeedService(classroomRepo, studentRepo, teacherRepo, cameraRepo, notificationRepo, log),
		Probe:         service.NewProbeService(schemaRepo, cfg.Database.Name, log),
	}, cfg.Server.MaxUploadSize, log)

	router := chi.NewRouter()

	router.Use(middleware.RequestID)
	router.Use(middleware.RealIP)
	router.Use(httpd.RequestLogger(log))
	router.Use(httpd.Recovery(log))
	router.Use(middleware.Timeout(cfg.Server.RequestTimeout))

	router.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.CORS.AllowedOrigins,
		AllowedMethods:   cfg.CORS.AllowedMethods,
		AllowedHeaders:   cfg.CORS.AllowedHeaders,
		ExposedHeaders:   cfg.CORS.ExposedHeaders,
		AllowCredentials: cfg.CORS.AllowCredentials,
		MaxAge:           cfg.CORS.MaxAge,
	}))

	handler.RegisterRoutes(router)

	a.server = &http.Server{
		Addr:         cfg.Server.Address,
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	return a, nil
}

func (a *App) newSnapshotRepository() repository.SnapshotRepository {
	cfg := a.config.MinIO
	if cfg.Endpoint == "" {
		a.logger.Info().Msg("MinIO endpoint not set, camera snapshots disabled")
		return nil
	}

	repo, err := repository.NewMinIOSnapshotRepository(
		cfg.Endpoint,
		cfg.AccessKey,
		cfg.SecretKey,
		cfg.Bucket,
		cfg.Region,
		cfg.UseSSL,
		a.logger,
	)
	if err != nil {
		a.logger.Warn().Err(err).Msg("MinIO unavailable, camera snapshots disabled")
		return nil
	}
	return repo
}

func (a *App) connectRabbitMQ() (queue.RabbitMQConsumer, error) {
	cfg := a.config.RabbitMQ

	conn, err := queue.Dial(cfg.URL, a.logger)
	if err != nil {
		return nil, err
	}
	a.rabbitConn = conn

	if err := conn.SetupTopology(cfg.Exchange, cfg.EventsQueue, cfg.EventsRoutingKey); err != nil {
		return nil, err
	}

	publishChannel, err := conn.Channel()
	if err != nil {
		return nil, err
	}
	a.publisher = queue.NewRabbitMQPublisher(publishChannel, cfg.Exchange, cfg.NotificationsRouting, a.logger)

	consumeChannel, err := conn.Channel()
	if err != nil {
		return nil, err
	}

	return queue.NewRabbitMQConsumer(consumeChannel, cfg.EventsQueue, cfg.ConsumerTag, a.logger), nil
}

func (a *App) closeRabbitMQ() {
	if a.publisher != nil {
		if err := a.publisher.Close(); err != nil {
			a.logger.Error().Err(err).Msg("Failed to close RabbitMQ publisher")
		}
		a.publisher = nil
	}
	if a.rabbitConn != nil {
		if err := a.rabbitConn.Close(); err != nil {
			a.logger.Error().Err(err).Msg("Failed to close RabbitMQ connection")
		}
		a.rabbitConn = nil
	}
}

// Bootstrap применяет миграции и создаёт администратора по умолчанию.
// Недоступная БД не мешает старту: эндпоинты, которым нужна база, ответят 500.
func (a *App) Bootstrap(ctx context.Context) {
	if err := database.Ping(ctx, a.db, a.config.Database); err != nil {
		a.logger.Error().Err(err).Msg("Database unavailable, serving without storage")
		return
	}
	a.logger.Info().Msg("Database connection established")

	if err := runMigrations(ctx, a.config.Database); err != nil {
		a.logger.Error().Err(err).Msg("Failed to apply migrations")
		return
	}

	if err := a.authService.EnsureDefaultAdmin(ctx); err != nil {
		a.logger.Error().Err(err).Msg("Failed to ensure default admin")
	}
}

func runMigrations(ctx context.Context, cfg config.DatabaseConfig) error {
	migrator, err := database.NewMigrator(ctx, cfg)
	if err != nil {
		return err
	}
	return migrator.Up()
}

func (a *App) Run() error {
	ctx, cancel := context.WithCancel(context.Background())
	a.cancel = cancel

	if a.ingestWorker != nil {
		if err := a.ingestWorker.Start(ctx); err != nil {
			a.logger.Error().Err(err).Msg("Failed to start ingest worker")
			return fmt.Errorf("failed to start ingest worker: %w", err)
		}
	}

	a.logger.Info().Msgf("Starting school monitoring API on %s", a.config.Server.Address)
	if err := a.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

func (a *App) Shutdown(ctx context.Context) error {
	a.logger.Info().Msg("Shutting down school monitoring API...")

	if a.ingestWorker != nil {
		if err := a.ingestWorker.Stop(); err != nil {
			a.logger.Error().Err(err).Msg("Failed to stop ingest worker")
		}
	}
	if a.cancel != nil {
		a.cancel()
	}

	a.closeRabbitMQ()

	if err := a.server.Shutdown(ctx); err != nil {
		a.logger.Error().Err(err).Msg("Failed to shutdown HTTP server")
		return err
	}

	if a.db != nil {
		if err := a.db.Close(); err != nil {
			a.logger.Error().Err(err).Msg("Failed to close database connection")
		}
	}

	a.logger.Info().Msg("School monitoring API stopped")
	return nil
}
