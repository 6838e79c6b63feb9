package main

import (
	"context"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	api "mytask-backend/cmd/api"
	authDelivery "mytask-backend/internal/auth/delivery"
	boardDelivery "mytask-backend/internal/board/delivery"
	boardRepo "mytask-backend/internal/board/repository"
	notificationDelivery "mytask-backend/internal/notification/delivery"
	notificationRepo "mytask-backend/internal/notification/repository"
	planDelivery "mytask-backend/internal/plan/delivery"
	planRepo "mytask-backend/internal/plan/repository"
	"mytask-backend/internal/reminder"
	reminderDelivery "mytask-backend/internal/reminder/delivery"
	taskDelivery "mytask-backend/internal/task/delivery"
	taskRepo "mytask-backend/internal/task/repository"
	taskUsecase "mytask-backend/internal/task/usecase"
	"mytask-backend/pkg/config"
	"mytask-backend/pkg/database"
	"mytask-backend/pkg/mailer"
)

func main() {
	// Load configuration
	cfg := config.Load()

	logrus.SetFormatter(&logrus.JSONFormatter{})

	// Initialize Firebase (Firestore + Auth)
	ctx := context.Background()
	clients, err := database.NewFirebaseClients(ctx, cfg)
	if err != nil {
		logrus.WithError(err).Fatal("failed to initialize Firebase clients")
	}
	defer clients.Close()

	// Initialize repositories (dependency injection)
	tasks := taskRepo.NewFirestoreTaskRepository(clients.Firestore)
	boards := boardRepo.NewFirestoreBoardRepository(clients.Firestore)
	plans := planRepo.NewFirestorePlanRepository(clients.Firestore)
	notifications := notificationRepo.NewFirestoreNotificationRepository(clients.Firestore)

	// Initialize the mailer. A missing API key leaves it nil, which disables
	// reminder dispatch without affecting the rest of the app.
	var m mailer.Mailer
	if cfg.ResendAPIKey != "" {
		m = mailer.NewResendMailer(cfg.ResendAPIKey)
	} else {
		logrus.Warn("RESEND_API_KEY not configured, reminder emails disabled")
	}

	loc, err := time.LoadLocation(cfg.TimeZone)
	if err != nil {
		logrus.WithError(err).WithField("tz", cfg.TimeZone).Warn("unknown timezone, falling back to UTC")
		loc = time.UTC
	}

	// Reminder engine + inspector + in-process scheduler
	engine := reminder.NewEngine(tasks, notifications, m, reminder.Config{
		SenderAddress: cfg.SenderAddress,
		SenderName:    cfg.SenderName,
		Window:        cfg.ReminderWindow,
		Location:      loc,
	})
	inspector := reminder.NewInspector(tasks, cfg.ReminderWindow)

	scheduler := reminder.NewScheduler(engine, cfg.ScanInterval)
	scheduler.Start()
	defer scheduler.Stop()

	// HTTP router
	r := gin.Default()
	api.SetupRoutes(r, api.Handlers{
		Verifier:      authDelivery.NewFirebaseVerifier(clients.Auth),
		Boards:        boardDelivery.NewBoardHandler(boards),
		Tasks:         taskDelivery.NewTaskHandler(taskUsecase.NewTaskUsecase(tasks)),
		Plans:         planDelivery.NewPlanHandler(plans),
		Notifications: notificationDelivery.NewNotificationHandler(notifications),
		Jobs:          reminderDelivery.NewJobHandler(engine, inspector),
	})

	logrus.WithField("port", cfg.Port).Info("server starting")
	if err := r.Run(":" + cfg.Port); err != nil {
		logrus.WithError(err).Fatal("failed to start server")
	}
}
