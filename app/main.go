package main

import (
	"context"
	"os"
	"os/signal"
	"sync"
	"time"

	"github.com/Mohan160597/blood-donation/config"
	"github.com/Mohan160597/blood-donation/services/blooddonation/delivery"
	"github.com/Mohan160597/blood-donation/services/blooddonation/repository"
	"github.com/Mohan160597/blood-donation/services/blooddonation/usecase"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

var log *logrus.Logger
var wg sync.WaitGroup

const usecaseTimeout = 10 * time.Second

func main() {
	if err := godotenv.Load(); err != nil {
		logrus.Warn("No .env file found, relying on environment")
	}

	log = config.GetLogrusInstance()

	startHTTP()
}

func startHTTP() {
	log.Info("Starting HTTP")
	app := fiber.New(config.GetFiberConfig())

	// CORS Middleware
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,PUT,DELETE",
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
	}))

	ctx := context.Background()

	if _, err := config.BootDB(); err != nil {
		log.Fatalf("Failed to boot DB: %v", err)
		return
	}

	pool, err := config.BootPgxPool(ctx)
	if err != nil {
		log.Fatalf("Failed to boot pgx pool: %v", err)
		return
	}
	defer pool.Close()

	fcmClient, err := config.BootFCM(ctx)
	if err != nil {
		log.Fatalf("Failed to boot FCM: %v", err)
		return
	}

	// Repositories
	donorRepo := repository.NewDonorRepository(pool)
	staffRepo := repository.NewDeliveryStaffRepository(pool)
	hospitalRepo := repository.NewHospitalRepository(pool)
	requestRepo := repository.NewBloodRequestRepository(pool)
	unitRepo := repository.NewBloodUnitRepository(pool)
	pushSender := repository.NewFCMSender(fcmClient)

	// Usecases
	authUC := usecase.NewAuthUseCase(donorRepo, staffRepo, hospitalRepo, usecaseTimeout)
	donorUC := usecase.NewDonorUseCase(donorRepo, usecaseTimeout)
	staffUC := usecase.NewDeliveryStaffUseCase(staffRepo, usecaseTimeout)
	hospitalUC := usecase.NewHospitalUseCase(hospitalRepo, usecaseTimeout)
	requestUC := usecase.NewBloodRequestUseCase(requestRepo, hospitalRepo, donorRepo, pushSender, log, usecaseTimeout)
	unitUC := usecase.NewBloodUnitUseCase(unitRepo, hospitalRepo, usecaseTimeout)

	// Delivery
	delivery.NewAuthHandler(app, authUC)
	delivery.NewDonorHandler(app, donorUC)
	delivery.NewDeliveryStaffHandler(app, staffUC)
	delivery.NewHospitalHandler(app, hospitalUC)
	delivery.NewBloodRequestHandler(app, requestUC)
	delivery.NewBloodUnitHandler(app, unitUC)
	delivery.NewRealtimeRelay(app, log)

	wg.Add(1)
	go func() {
		defer wg.Done()
		log.Infof("Starting HTTP server for Public on port %s", config.GetFiberHttpPort())
		if err := app.Listen(config.GetFiberListenAddress()); err != nil {
			log.Fatalf("Error starting server: %v", err)
		}
	}()

	signalChan := make(chan os.Signal, 1)
	signal.Notify(signalChan, os.Interrupt, os.Kill)

	<-signalChan

	log.Info("Shutting down the server...")

	if err := app.Shutdown(); err != nil {
		log.Errorf("Error during server shutdown: %v", err)
	}

	wg.Wait()
	log.Info("Server shut down gracefully")
}
