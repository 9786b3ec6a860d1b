package main

import (
	"context"

	config "housing-assist-backend/config"
	"housing-assist-backend/internal/tasks"
	"housing-assist-backend/middleware"
	"housing-assist-backend/utils"

	// Repositories

	clients_repositories "housing-assist-backend/clients/repositories"
	importer_repositories "housing-assist-backend/importer/repositories"
	poolfund_repositories "housing-assist-backend/poolfund/repositories"
	properties_repositories "housing-assist-backend/properties/repositories"
	reimbursements_repositories "housing-assist-backend/reimbursements/repositories"

	// Routes

	client_routes "housing-assist-backend/clients/routes"
	import_routes "housing-assist-backend/importer/routes"
	poolfund_routes "housing-assist-backend/poolfund/routes"
	property_routes "housing-assist-backend/properties/routes"
	reimbursement_routes "housing-assist-backend/reimbursements/routes"

	// bleve
	bleveControllers "housing-assist-backend/bleve/controllers"
	bleveRepositories "housing-assist-backend/bleve/repositories"
	bleveRoutes "housing-assist-backend/bleve/routes"
	bleveServices "housing-assist-backend/bleve/services"

	"github.com/gofiber/fiber/v2"
	"github.com/hibiken/asynq"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

func main() {
	// Initialize Zap logger
	config.InitLogger()

	// Load environment variables
	err := godotenv.Load(".env")
	if err != nil {
		config.Logger.Warn("No .env file loaded, relying on process environment", zap.Error(err))
	}

	app := fiber.New()

	// Apply CORS middleware from middleware package
	middleware.InitCors(app)

	// Initialize database and configs
	db := config.ConfigureDatabase()
	port := config.GetEnv("PORT")
	if port == "" {
		port = "8080"
	}
	ctx := context.Background()

	// Redis client for Asynq and cache invalidation
	redisAddr := config.GetEnv("REDIS_ADDRESS")
	if redisAddr == "" {
		redisAddr = "localhost:6379" // Default for development
		config.Logger.Warn("REDIS_ADDRESS not set, using default: localhost:6379")
	}

	redisClient := config.InitRedisServer(ctx, redisAddr)

	asynqRedisOpt := asynq.RedisClientOpt{
		Addr: redisAddr,
		DB:   0,
	}

	asynqClient := asynq.NewClient(asynqRedisOpt)
	defer asynqClient.Close()

	indexPath := config.GetEnv("BLEVE_INDEX_PATH")
	if indexPath == "" {
		indexPath = "./bleve_data" // Default for local development
		config.Logger.Warn("BLEVE_INDEX_PATH not set, using default: ./bleve_data")
	}

	// Initialize the mailer
	utils.InitializeMailer()
	if utils.GetMailer() == nil {
		config.Logger.Fatal("Mailer not initialized")
	}

	// Serve static files (error reports live under /public/files)
	app.Static("/public", "./public")

	// Repositories
	bleveIndexingService := bleveServices.NewIndexingService(config.Logger, indexPath)
	bleveServiceRepo, bleveInterfaceRepo := bleveRepositories.NewBleveRepository(bleveIndexingService)
	clientRepo := clients_repositories.NewClientRepository(db)
	buildingRepo := properties_repositories.NewBuildingRepository(db)
	propertyRepo := properties_repositories.NewPropertyRepository(db)
	poolFundRepo := poolfund_repositories.NewPoolFundRepository(db)
	reimbursementRepo := reimbursements_repositories.NewReimbursementRepository(db)
	importRepo := importer_repositories.NewImportRepository(db)

	// Routes
	client_routes.ClientInitRoutes(app, clientRepo, bleveInterfaceRepo, db)
	property_routes.PropertyInitRoutes(app, buildingRepo, propertyRepo, bleveInterfaceRepo, db)
	poolfund_routes.PoolFundInitRoutes(app, poolFundRepo, db)
	reimbursement_routes.ReimbursementInitRoutes(app, reimbursementRepo, db)
	import_routes.ImportInitRoutes(app, importRepo, asynqClient, db)

	// Bleve Routes
	bleveController := bleveControllers.NewSearchController(bleveServiceRepo)
	bleveRoutes.InitBleveRoutes(app, bleveController, db)

	// Background email worker for import error reports
	go tasks.RunEmailWorker(redisAddr, importRepo)

	// Background cleanup tasks
	go utils.RunScheduledCleanup(redisClient)

	// Start the application
	config.Logger.Info("Server starting", zap.String("port", port))
	config.Logger.Fatal("Server failed", zap.String("port", port), zap.Error(app.Listen(":"+port)))
}
