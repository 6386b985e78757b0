package main

import (
	"context"
	"medtrack-portal/internal/app/config"
	"medtrack-portal/internal/app/contracts"
	"medtrack-portal/internal/app/delivery/http/controllers"
	"medtrack-portal/internal/app/delivery/http/middlewares"
	"medtrack-portal/internal/app/delivery/http/routers"
	"medtrack-portal/internal/app/delivery/http/views"
	"medtrack-portal/internal/app/drivers/database"
	"medtrack-portal/internal/app/drivers/logger"
	"medtrack-portal/internal/app/drivers/messaging"
	"medtrack-portal/internal/app/drivers/storage"
	"medtrack-portal/internal/app/services/core/admins"
	"medtrack-portal/internal/app/services/core/auth"
	"medtrack-portal/internal/app/services/core/dashboards"
	"medtrack-portal/internal/app/services/core/doctors"
	"medtrack-portal/internal/app/services/core/patients"
	"medtrack-portal/internal/app/services/core/pharmacists"
	"medtrack-portal/internal/app/services/core/session"
	adminAPI "medtrack-portal/internal/app/services/medtrack_api/admins"
	authAPI "medtrack-portal/internal/app/services/medtrack_api/auth"
	doctorAPI "medtrack-portal/internal/app/services/medtrack_api/doctors"
	patientAPI "medtrack-portal/internal/app/services/medtrack_api/patients"
	pharmacistAPI "medtrack-portal/internal/app/services/medtrack_api/pharmacists"
	"medtrack-portal/internal/app/services/shared/apiclient"
	"medtrack-portal/internal/app/services/shared/notifier"
	"medtrack-portal/internal/app/services/shared/redis"
	minioStorage "medtrack-portal/internal/app/services/shared/storage"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/sirupsen/logrus"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

func main() {
	driverConfig := config.NewDriverConfig()
	internalConfig := config.NewInternalConfig()

	log := logger.NewZapLogger(driverConfig, internalConfig)
	bootLog := logger.NewLogrusLogger(driverConfig, internalConfig, os.Stdout)

	location, err := time.LoadLocation(internalConfig.App.Timezone)
	if err != nil {
		bootLog.Fatalf("Error loading location: %v", err)
	}
	time.Local = location

	redisClient := database.NewRedisClient(driverConfig)
	rabbitMQ := messaging.NewRabbitMQ(driverConfig)
	minioClient := storage.NewMinio(driverConfig, internalConfig)
	chiRouter := chi.NewRouter()

	bootstrap := &config.Bootstrap{
		Router:         chiRouter,
		Redis:          redisClient,
		Logger:         log,
		RabbitMQ:       rabbitMQ,
		Minio:          minioClient,
		InternalConfig: internalConfig,
		DriverConfig:   driverConfig,
	}
	err = bootstrapingTheApp(bootstrap, bootLog)
	if err != nil {
		bootLog.Fatalf("Error bootstrapping the app: %v", err)
	}

	server := &http.Server{
		Addr:    internalConfig.App.Port,
		Handler: chiRouter,
	}

	go func() {
		bootLog.Printf("Portal %s listening on %s", internalConfig.App.Version, internalConfig.App.Port)
		err := server.ListenAndServe()
		if err != nil && err != http.ErrServerClosed {
			bootLog.Fatalf("Server failed to start: %v", err)
		}
	}()

	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	<-c

	bootLog.Println("Waiting for pending requests that already received by server to be processed..")

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Second*time.Duration(internalConfig.App.ShutdownTimeout),
	)
	defer cancel()

	// Shutdown does not track hijacked websocket connections.
	if bootstrap.LiveStop != nil {
		bootstrap.LiveStop()
		bootstrap.LiveStop = nil
	}

	err = server.Shutdown(shutdownCtx)
	if err != nil {
		bootLog.Errorf("Server forced to shutdown: %v", err)
	}

	err = bootstrap.Shutdown(shutdownCtx)
	if err != nil {
		bootLog.Errorf("Error releasing resources: %v", err)
	}

	bootLog.Println("Server exiting")
}

func bootstrapingTheApp(bootstrap *config.Bootstrap, bootLog *logrus.Logger) error {
	internalConfig := bootstrap.InternalConfig
	log := bootstrap.Logger

	// Redis
	redisRepository := redis.NewRedisRepository(bootstrap.Redis)

	// Session
	sessionStore := session.NewRedisSessionStore(redisRepository, internalConfig.Session.TTL())
	sessionService := session.NewSessionService(sessionStore, internalConfig.Session.Secret, internalConfig.Session.TTL(), log)

	// Backend API
	limiter := rate.NewLimiter(rate.Limit(internalConfig.API.MaxRequestsPerSecond), internalConfig.API.Burst)
	api := apiclient.NewAPIClient(internalConfig.API.BaseUrl, internalConfig.API.Timeout(), limiter, log)
	authAPIClient := authAPI.NewAuthAPIClient(api, log)
	patientAPIClient := patientAPI.NewPatientAPIClient(api, log)
	doctorAPIClient := doctorAPI.NewDoctorAPIClient(api, log)
	pharmacistAPIClient := pharmacistAPI.NewPharmacistAPIClient(api, log)
	adminAPIClient := adminAPI.NewAdminAPIClient(api, log)

	// Reminder events
	reminderNotifier, err := notifier.NewReminderNotifier(bootstrap.RabbitMQ, internalConfig.RabbitMQ.ReminderQueue, log)
	if err != nil {
		return err
	}

	// Profile images
	var profileStorage contracts.Storage
	if bootstrap.Minio != nil {
		profileStorage = minioStorage.NewMinioStorage(
			bootstrap.Minio,
			internalConfig.Minio.BucketName,
			time.Duration(internalConfig.Minio.PresignedURLInHours)*time.Hour,
			log,
		)
	}

	// Usecases
	authUsecase := auth.NewAuthUsecase(authAPIClient, sessionService, log)
	patientUsecase := patients.NewPatientUsecase(patientAPIClient, reminderNotifier, log)
	doctorUsecase := doctors.NewDoctorUsecase(doctorAPIClient, log)
	pharmacistUsecase := pharmacists.NewPharmacistUsecase(pharmacistAPIClient, log)
	adminUsecase := admins.NewAdminUsecase(adminAPIClient, log)

	// Live dashboards
	feed := &dashboards.Feed{
		Patients:    patientUsecase,
		Doctors:     doctorUsecase,
		Pharmacists: pharmacistUsecase,
		Admins:      adminUsecase,
	}
	hub := dashboards.NewHub(log)
	go hub.Run()
	bootstrap.LiveStop = hub.Stop

	// Views
	renderer, err := views.NewRenderer(internalConfig.App.TemplatesDir, log)
	if err != nil {
		return err
	}
	if internalConfig.App.TemplatesDir != "" {
		bootLog.Printf("Serving templates from %s", internalConfig.App.TemplatesDir)
	}

	// Controllers
	base := controllers.NewBaseController(log, renderer, sessionService, profileStorage, internalConfig)
	authController := controllers.NewAuthController(base, authUsecase)
	patientController := controllers.NewPatientController(base, patientUsecase)
	doctorController := controllers.NewDoctorController(base, doctorUsecase)
	pharmacistController := controllers.NewPharmacistController(base, pharmacistUsecase)
	adminController := controllers.NewAdminController(base, adminUsecase, adminAPIClient)
	liveController := controllers.NewLiveController(base, feed, hub)

	// Middlewares
	middlewares := middlewares.NewMiddlewares(log, sessionService, internalConfig)

	routers.SetupRoutes(
		bootstrap.Router,
		internalConfig,
		middlewares,
		log,
		bootLog,
		authController,
		patientController,
		doctorController,
		pharmacistController,
		adminController,
		liveController,
	)

	log.Info("Portal bootstrapped",
		zap.String("env", internalConfig.App.Env),
		zap.String("apiBaseUrl", internalConfig.API.BaseUrl),
		zap.Bool("profileImages", profileStorage != nil),
		zap.Bool("reminderEvents", bootstrap.RabbitMQ != nil),
	)
	return nil
}
