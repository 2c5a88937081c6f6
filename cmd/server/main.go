package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/subosito/gotenv"
	"go.uber.org/zap"

	"github.com/talentops/hiring-ops/internal/application/service"
	"github.com/talentops/hiring-ops/internal/config"
	"github.com/talentops/hiring-ops/internal/domain/workflow"
	"github.com/talentops/hiring-ops/internal/export"
	"github.com/talentops/hiring-ops/internal/infrastructure/persistence/repository"
	httpserver "github.com/talentops/hiring-ops/internal/interfaces/http"
	"github.com/talentops/hiring-ops/internal/notification"
	"github.com/talentops/hiring-ops/internal/worker"
	"github.com/talentops/hiring-ops/pkg/database"
	"github.com/talentops/hiring-ops/pkg/utils"
)

func main() {
	// .env values never override real environment variables
	_ = gotenv.Load()

	cfg, err := config.Load("configs/config.yaml")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	logger, err := utils.NewLogger(utils.LoggerConfig{
		Level:      cfg.Logger.Level,
		OutputPath: cfg.Logger.OutputPath,
		Format:     cfg.Logger.Format,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	logger.Info("Starting hiring operations service",
		zap.String("version", "1.0.0"),
		zap.Int("port", cfg.Server.Port))

	db, err := database.New(database.Config{
		Path:            cfg.Database.Path,
		MaxOpenConns:    cfg.Database.MaxOpenConns,
		MaxIdleConns:    cfg.Database.MaxIdleConns,
		ConnMaxLifetime: cfg.Database.ConnMaxLifetime,
	}, logger)
	if err != nil {
		logger.Fatal("Failed to initialize database", zap.Error(err))
	}
	defer db.Close()

	migrator := database.NewMigrator(db, logger)
	if err := migrator.RunMigrations(cfg.Database.MigrationsDir); err != nil {
		logger.Fatal("Failed to run database migrations", zap.Error(err))
	}

	// Repositories
	candidateRepo := repository.NewCandidateRepository(db.DB, logger)
	jobRepo := repository.NewJobRepository(db.DB, logger)
	interviewRepo := repository.NewInterviewRepository(db.DB, logger)
	projectRepo := repository.NewProjectRepository(db.DB, logger)
	assignmentRepo := repository.NewAssignmentRepository(db.DB, logger)
	taskRepo := repository.NewAnnotationTaskRepository(db.DB, logger)
	notificationRepo := repository.NewNotificationRepository(db.DB, logger)
	changeRepo := repository.NewStatusChangeRepository(db.DB, logger)

	notifier := notification.NewQueueNotifier(notificationRepo, logger)

	// Services
	registry := workflow.Default()
	cascades := service.NewCascadeExecutor(registry, interviewRepo, assignmentRepo, taskRepo, notifier, logger)
	transitions := service.NewTransitionService(
		registry, interviewRepo, jobRepo, projectRepo, assignmentRepo, taskRepo, changeRepo, cascades, logger)

	services := httpserver.Services{
		Candidates:  service.NewCandidateService(candidateRepo, logger),
		Jobs:        service.NewJobService(jobRepo, projectRepo, logger),
		Interviews:  service.NewInterviewService(interviewRepo, candidateRepo, jobRepo, logger),
		Projects:    service.NewProjectService(projectRepo, logger),
		Assignments: service.NewAssignmentService(assignmentRepo, candidateRepo, projectRepo, logger),
		Tasks:       service.NewAnnotationTaskService(taskRepo, projectRepo, assignmentRepo, logger),
		Transitions: transitions,
		Roster:      export.NewRosterExporter(interviewRepo, candidateRepo, jobRepo, logger),
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Background workers
	manager := worker.NewManager(logger)
	manager.Register(worker.NewReminderPoller(
		interviewRepo, notifier, cfg.Worker.ReminderInterval, cfg.Worker.ReminderLookahead, logger))
	manager.Register(worker.NewDigestWorker(
		interviewRepo, notifier, cfg.Worker.DigestSchedule, logger))
	manager.Register(worker.NewDispatcher(
		notificationRepo, cfg.Worker.DispatchInterval, cfg.Worker.DispatchBatchSize, logger))

	if err := manager.StartAll(ctx); err != nil {
		logger.Fatal("Failed to start background workers", zap.Error(err))
	}
	defer manager.StopAll()

	server := httpserver.NewServer(httpserver.ServerConfig{
		Host:         cfg.Server.Host,
		Port:         cfg.Server.Port,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}, services, logger)

	go func() {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
		<-quit
		logger.Info("Shutdown signal received")
		cancel()
	}()

	if err := server.Start(ctx); err != nil {
		logger.Error("Server exited with error", zap.Error(err))
		os.Exit(1)
	}

	logger.Info("Server exited")
}
