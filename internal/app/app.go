package app

import (
	"context"
	"errors"
	"net/http"

	"github.com/RubachokBoss/ontrack-service/internal/config"
	"github.com/RubachokBoss/ontrack-service/internal/delivery/httpd"
	"github.com/RubachokBoss/ontrack-service/internal/repository"
	"github.com/RubachokBoss/ontrack-service/internal/service"
	"github.com/RubachokBoss/ontrack-service/internal/service/integration"
	"github.com/RubachokBoss/ontrack-service/internal/worker"
	"github.com/RubachokBoss/ontrack-service/internal/worker/queue"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/rs/zerolog"
)

type App struct {
	server    *http.Server
	logger    zerolog.Logger
	config    *config.Config
	publisher integration.EventPublisher
	worker    worker.NotificationWorker
}

func New(cfg *config.Config, log zerolog.Logger) (*App, error) {
	transport, consumer := newEventBus(cfg, log)

	publisher := integration.NewEventPublisher(transport, integration.RoutingKeys{
		TaskSubmitted:    cfg.RabbitMQ.TaskSubmittedKey,
		FeedbackProvided: cfg.RabbitMQ.FeedbackProvidedKey,
	}, log)

	taskService := service.NewTaskService(repository.NewTaskRepository(log), log)
	feedbackService := service.NewFeedbackService(repository.NewFeedbackRepository(log), log)
	notificationService := service.NewNotificationService(repository.NewNotificationRepository(log), log)

	services := httpd.Services{
		Tasks:         taskService,
		Feedback:      feedbackService,
		Tutoring:      service.NewTutoringService(repository.NewSessionRepository(log), log),
		StudyGroups:   service.NewStudyGroupService(repository.NewStudyGroupRepository(log), log),
		Reports:       service.NewProgressReportService(log),
		Notifications: notificationService,
		Workflow:      service.NewWorkflowService(taskService, feedbackService, publisher, log),
	}

	notificationWorker := worker.NewNotificationWorker(
		worker.NewWorkerPool(cfg.Worker.MaxWorkers, log),
		consumer,
		queue.NewMessageHandler(notificationService, log),
		log,
	)

	handler := httpd.NewHandler(services, notificationWorker.GetStats, log)

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

	server := &http.Server{
		Addr:         cfg.Server.Address,
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	return &App{
		server:    server,
		logger:    log,
		config:    cfg,
		publisher: publisher,
		worker:    notificationWorker,
	}, nil
}

// newEventBus picks the event transport. A RabbitMQ connection failure falls
// back to the in-process queue so the service stays usable in development.
func newEventBus(cfg *config.Config, log zerolog.Logger) (integration.MessagePublisher, queue.Consumer) {
	if cfg.Events.Driver == config.EventsDriverRabbitMQ {
		client, err := integration.NewRabbitMQClient(
			cfg.RabbitMQ.URL,
			cfg.RabbitMQ.Exchange,
			cfg.RabbitMQ.QueueName,
			[]string{cfg.RabbitMQ.TaskSubmittedKey, cfg.RabbitMQ.FeedbackProvidedKey},
			log,
		)
		if err == nil {
			return client, queue.NewRabbitMQConsumer(client.Channel(), client.QueueName(), cfg.RabbitMQ.ConsumerTag, log)
		}

		log.Error().Err(err).Msg("Failed to create RabbitMQ client, using in-memory event queue")
	}

	local := queue.NewLocalQueue(cfg.Events.BufferSize, log)
	return local, local
}

func (a *App) Handler() http.Handler {
	return a.server.Handler
}

// Start launches the notification worker without serving HTTP.
func (a *App) Start(ctx context.Context) error {
	return a.worker.Start(ctx)
}

func (a *App) Run() error {
	if err := a.Start(context.Background()); err != nil {
		return err
	}

	a.logger.Info().Msgf("Starting ontrack service on %s", a.config.Server.Address)

	if err := a.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

func (a *App) Shutdown(ctx context.Context) error {
	a.logger.Info().Msg("Shutting down ontrack service...")

	err := a.server.Shutdown(ctx)

	if stopErr := a.worker.Stop(); stopErr != nil {
		a.logger.Error().Err(stopErr).Msg("Failed to stop notification worker")
	}

	if closeErr := a.publisher.Close(); closeErr != nil {
		a.logger.Error().Err(closeErr).Msg("Failed to close event publisher")
	}

	return err
}
