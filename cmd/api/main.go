package main

import (
	"context"
	"log"
	"os"

	"cloud.google.com/go/firestore"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"google.golang.org/api/option"

	fbapp "firebase.google.com/go/v4"

	"ethiohomes/internal/adapter/api"
	"ethiohomes/internal/adapter/api/handler"
	apimiddleware "ethiohomes/internal/adapter/api/middleware"
	"ethiohomes/internal/adapter/api/router"
	"ethiohomes/internal/adapter/repository"
	"ethiohomes/internal/infrastructure/firebase"
	"ethiohomes/internal/usecase"
	"ethiohomes/pkg/config"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	ctx := context.Background()

	var opt option.ClientOption

	// Service account from environment variable (for production)
	serviceAccountJSON := os.Getenv("FIREBASE_SERVICE_ACCOUNT_JSON")
	if serviceAccountJSON != "" {
		log.Printf("Using Firebase service account from environment variable")
		opt = option.WithCredentialsJSON([]byte(serviceAccountJSON))
	} else {
		// Fallback to file path (for local development)
		serviceAccountPath := os.Getenv("FIREBASE_SERVICE_ACCOUNT_PATH")
		if serviceAccountPath == "" {
			serviceAccountPath = "./service-account.json"
		}

		if _, err := os.Stat(serviceAccountPath); os.IsNotExist(err) {
			log.Fatalf("Service account file does not exist: %s", serviceAccountPath)
		}

		log.Printf("Using Firebase service account from file: %s", serviceAccountPath)
		opt = option.WithCredentialsFile(serviceAccountPath)
	}

	firebaseApp, err := fbapp.NewApp(ctx, &fbapp.Config{ProjectID: cfg.FirebaseProject}, opt)
	if err != nil {
		log.Fatalf("Failed to initialize Firebase: %v", err)
	}

	authClient, err := firebaseApp.Auth(ctx)
	if err != nil {
		log.Fatalf("Failed to initialize Firebase Auth: %v", err)
	}

	firestoreClient, err := firestore.NewClient(ctx, cfg.FirebaseProject, opt)
	if err != nil {
		log.Fatalf("Failed to create Firestore client: %v", err)
	}
	defer firestoreClient.Close()

	userRepo := repository.NewFirestoreUserRepository(firestoreClient)
	listingRepo := repository.NewFirestoreListingRepository(firestoreClient)
	submissionRepo := repository.NewFirestoreSubmissionRepository(firestoreClient)
	applicationRepo := repository.NewFirestoreApplicationRepository(firestoreClient)
	paymentRepo := repository.NewFirestorePaymentRepository(firestoreClient)
	bannerRepo := repository.NewFirestoreBannerRepository(firestoreClient)

	firebaseAuthClient := firebase.NewAuthClient(authClient, cfg.FirebaseApiKey)

	authUseCase := usecase.NewAuthUseCase(userRepo, firebaseAuthClient)
	userUseCase := usecase.NewUserUseCase(userRepo, listingRepo, firebaseAuthClient)
	listingUseCase := usecase.NewListingUseCase(listingRepo, paymentRepo, userRepo)
	submissionUseCase := usecase.NewSubmissionUseCase(submissionRepo, userRepo)
	applicationUseCase := usecase.NewApplicationUseCase(applicationRepo, listingRepo, userRepo, firebaseAuthClient)
	paymentUseCase := usecase.NewPaymentUseCase(paymentRepo, userRepo, cfg.CbeAccount, cfg.TelebirrAccount)
	bannerUseCase := usecase.NewBannerUseCase(bannerRepo, userRepo)
	adminUseCase := usecase.NewAdminUseCase(listingRepo, submissionRepo, applicationRepo, paymentRepo, userRepo)

	handler.Setup(
		authUseCase,
		userUseCase,
		listingUseCase,
		submissionUseCase,
		applicationUseCase,
		paymentUseCase,
		bannerUseCase,
		adminUseCase,
	)
	handler.SetupHealthHandler(firebaseAuthClient)

	e := echo.New()

	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.CORS())

	e.Validator = api.NewValidator()

	authMiddleware := apimiddleware.NewAuthMiddleware(authClient)
	roleMiddleware := apimiddleware.NewRoleMiddleware(userRepo)

	router.Setup(e, authMiddleware, roleMiddleware)

	log.Printf("Starting server on port %s...", cfg.ServerPort)
	e.Logger.Fatal(e.Start(":" + cfg.ServerPort))
}
