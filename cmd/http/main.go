package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"plantao-service/internal/app/config"
	"plantao-service/internal/app/delivery/http/controllers"
	"plantao-service/internal/app/delivery/http/middlewares"
	"plantao-service/internal/app/delivery/http/routers"
	"plantao-service/internal/app/drivers/database"
	"plantao-service/internal/app/drivers/logger"
	"plantao-service/internal/app/drivers/messaging"
	"plantao-service/internal/app/drivers/storage"
	"plantao-service/internal/app/services/core/auth"
	"plantao-service/internal/app/services/core/availability"
	"plantao-service/internal/app/services/core/dashboard"
	"plantao-service/internal/app/services/core/profiles"
	"plantao-service/internal/app/services/core/proposals"
	"plantao-service/internal/app/services/core/reminders"
	"plantao-service/internal/app/services/core/session"
	"plantao-service/internal/app/services/core/shiftcontracts"
	"plantao-service/internal/app/services/core/transactions"
	"plantao-service/internal/app/services/core/verification"
	"plantao-service/internal/app/services/shared/jwtmanager"
	"plantao-service/internal/app/services/shared/locker"
	"plantao-service/internal/app/services/shared/mailer"
	"plantao-service/internal/app/services/shared/ratelimiter"
	"plantao-service/internal/app/services/shared/redis"
	minioStorage "plantao-service/internal/app/services/shared/storage"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func main() {
	driverConfig := config.NewDriverConfig()
	internalConfig := config.NewInternalConfig()

	log := logger.NewZapLogger(driverConfig, internalConfig)

	location, err := time.LoadLocation(internalConfig.App.Timezone)
	if err != nil {
		log.Fatal("Error loading location", zap.String("timezone", internalConfig.App.Timezone), zap.Error(err))
	}
	time.Local = location

	mongoDB := database.NewMongoDB(driverConfig, log)
	redisClient := database.NewRedisClient(driverConfig, log)
	minioClient := storage.NewMinio(driverConfig, log)
	rabbitMQ := messaging.NewRabbitMQ(driverConfig, log)
	chiRouter := chi.NewRouter()

	bootstrap := &config.Bootstrap{
		Router:         chiRouter,
		MongoDB:        mongoDB,
		Redis:          redisClient,
		Minio:          minioClient,
		RabbitMQ:       rabbitMQ,
		Logger:         log,
		DriverConfig:   driverConfig,
		InternalConfig: internalConfig,
	}

	err = bootstrapingTheApp(bootstrap)
	if err != nil {
		log.Fatal("Failed to bootstrap the app", zap.Error(err))
	}

	server := &http.Server{
		Addr:    internalConfig.App.Port,
		Handler: chiRouter,
	}

	go func() {
		log.Info("Server started", zap.String("port", internalConfig.App.Port))
		err := server.ListenAndServe()
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("Server failed to start", zap.Error(err))
		}
	}()

	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	<-c

	log.Info("Waiting for pending requests that already received by server to be processed..")

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Second*time.Duration(internalConfig.App.ShutdownTimeoutInSeconds),
	)
	defer cancel()

	err = server.Shutdown(shutdownCtx)
	if err != nil {
		log.Error("Server forced to shutdown", zap.Error(err))
	}

	err = bootstrap.Shutdown(shutdownCtx)
	if err != nil {
		log.Error("Failed to release resources", zap.Error(err))
	}

	log.Info("Server exiting")
}

func bootstrapingTheApp(bootstrap *config.Bootstrap) error {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	dbName := bootstrap.DriverConfig.MongoDB.DbName

	err := messaging.DeclareQueues(
		bootstrap.RabbitMQ,
		bootstrap.InternalConfig.RabbitMQ.MailerQueue,
		bootstrap.InternalConfig.RabbitMQ.NotificationQueue,
	)
	if err != nil {
		return err
	}

	err = storage.EnsureBucket(ctx, bootstrap.Minio, bootstrap.InternalConfig.Minio.BucketName)
	if err != nil {
		return err
	}

	// Shared
	redisRepository := redis.NewRedisRepository(bootstrap.Redis)
	lockerService := locker.NewLockService(redisRepository, bootstrap.Logger)
	fileStorage := minioStorage.NewMinioStorage(bootstrap.Minio)
	tokenManager := jwtmanager.NewJWTManager(bootstrap.InternalConfig)
	resourceLimiter := ratelimiter.NewResourceLimiter(redisRepository, bootstrap.Logger)
	mailerService, err := mailer.NewMailerService(
		bootstrap.RabbitMQ,
		bootstrap.InternalConfig.RabbitMQ.MailerQueue,
		bootstrap.InternalConfig.RabbitMQ.NotificationQueue,
		bootstrap.Logger,
	)
	if err != nil {
		return err
	}

	// Core
	sessionService := session.NewSessionService(redisRepository, bootstrap.Logger)
	transactor := transactions.NewMongoTransactor(bootstrap.MongoDB)

	// Repositories
	userRepository := auth.NewUserMongoRepository(bootstrap.MongoDB, dbName)
	err = userRepository.EnsureIndexes(ctx)
	if err != nil {
		return err
	}
	contractRepository := shiftcontracts.NewContractMongoRepository(bootstrap.MongoDB, dbName)
	err = contractRepository.EnsureIndexes(ctx)
	if err != nil {
		return err
	}
	doctorProfileRepository := profiles.NewDoctorProfileMongoRepository(bootstrap.MongoDB, dbName)
	timeSlotRepository := availability.NewTimeSlotMongoRepository(bootstrap.MongoDB, dbName)
	proposalRepository := proposals.NewProposalMongoRepository(bootstrap.MongoDB, dbName)
	facialDataRepository := verification.NewFacialDataMongoRepository(bootstrap.MongoDB, dbName)

	// Verification
	verificationService := verification.NewVerificationService(
		doctorProfileRepository,
		facialDataRepository,
		fileStorage,
		verification.NewArchiveMatcher(),
		sessionService,
		bootstrap.InternalConfig,
		bootstrap.Logger,
	)

	// Auth
	authUsecase := auth.NewAuthUsecase(
		userRepository,
		doctorProfileRepository,
		transactor,
		redisRepository,
		sessionService,
		tokenManager,
		mailerService,
		resourceLimiter,
		bootstrap.InternalConfig,
		bootstrap.Logger,
	)
	authController := controllers.NewAuthController(bootstrap.Logger, authUsecase, bootstrap.InternalConfig)

	// Availability
	availabilityUsecase := availability.NewAvailabilityUsecase(
		timeSlotRepository,
		transactor,
		lockerService,
		sessionService,
		bootstrap.InternalConfig,
		bootstrap.Logger,
	)
	availabilityController := controllers.NewAvailabilityController(bootstrap.Logger, availabilityUsecase, bootstrap.InternalConfig)

	// Proposal
	proposalUsecase := proposals.NewProposalUsecase(
		proposalRepository,
		contractRepository,
		transactor,
		sessionService,
		mailerService,
		bootstrap.Logger,
	)
	proposalController := controllers.NewProposalController(bootstrap.Logger, proposalUsecase, bootstrap.InternalConfig)

	// Contract
	shiftContractUsecase := shiftcontracts.NewShiftContractUsecase(
		contractRepository,
		verificationService,
		lockerService,
		sessionService,
		bootstrap.Logger,
	)
	contractController := controllers.NewContractController(bootstrap.Logger, shiftContractUsecase, bootstrap.InternalConfig)

	// Profile
	profileUsecase := profiles.NewProfileUsecase(
		doctorProfileRepository,
		fileStorage,
		sessionService,
		bootstrap.InternalConfig,
		bootstrap.Logger,
	)
	profileController := controllers.NewProfileController(bootstrap.Logger, profileUsecase, verificationService, bootstrap.InternalConfig)

	// Dashboard
	dashboardUsecase := dashboard.NewDashboardUsecase(
		timeSlotRepository,
		proposalRepository,
		contractRepository,
		doctorProfileRepository,
		sessionService,
		bootstrap.InternalConfig,
		bootstrap.Logger,
	)
	dashboardController := controllers.NewDashboardController(bootstrap.Logger, dashboardUsecase, bootstrap.InternalConfig)

	// Middlewares
	middlewares := middlewares.NewMiddlewares(bootstrap.Logger, sessionService, tokenManager, bootstrap.InternalConfig)

	routers.SetupRoutes(bootstrap.Router, bootstrap.InternalConfig, middlewares, &routers.Controllers{
		Auth:         authController,
		Availability: availabilityController,
		Proposal:     proposalController,
		Contract:     contractController,
		Profile:      profileController,
		Dashboard:    dashboardController,
	})

	// Reminders
	reminderWorker := reminders.NewWorker(
		bootstrap.Logger,
		bootstrap.InternalConfig,
		lockerService,
		contractRepository,
		doctorProfileRepository,
		mailerService,
	)
	err = reminderWorker.Start(context.Background())
	if err != nil {
		return err
	}
	bootstrap.WorkerStop = reminderWorker.Stop

	return nil
}
