package main

import (
	"github.com/gin-gonic/gin"
	"github.com/yeremiapane/table-order-service/config"
	"github.com/yeremiapane/table-order-service/database"
	"github.com/yeremiapane/table-order-service/events"
	"github.com/yeremiapane/table-order-service/kds"
	"github.com/yeremiapane/table-order-service/queue"
	"github.com/yeremiapane/table-order-service/repositories"
	"github.com/yeremiapane/table-order-service/router"
	"github.com/yeremiapane/table-order-service/services"
	"github.com/yeremiapane/table-order-service/utils"
)

func main() {
	cfg, envLoaded := config.Load()

	logFile, err := utils.ConfigureLogger(cfg.LogLevel, cfg.LogFile)
	if err != nil {
		utils.ErrorLogger.Fatalf("Failed to configure logger: %v", err)
	}
	defer logFile.Close()

	if !envLoaded {
		utils.InfoLogger.Println("Warning: .env file not found")
	}

	if cfg.GinMode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Initialize DB
	db, err := config.InitDB(cfg)
	if err != nil {
		utils.ErrorLogger.Fatalf("Failed to connect to database: %v", err)
	}
	if err := database.Migrate(db); err != nil {
		utils.ErrorLogger.Fatalf("Failed to migrate: %v", err)
	}
	if cfg.CatalogSeed != "" {
		if _, err := database.SeedCatalog(db, cfg.CatalogSeed); err != nil {
			utils.ErrorLogger.Fatalf("Failed to seed catalog: %v", err)
		}
	}

	catalog := repositories.NewCachedCatalog(
		repositories.NewCatalogRepository(db),
		config.NewRedisClient(cfg),
		cfg.CatalogCacheTTL,
	)

	hub := kds.NewHub()
	notifiers := events.Multi{hub}
	if cfg.AMQPURL != "" {
		publisher, err := queue.NewPublisher(cfg.AMQPURL, cfg.OrderQueue)
		if err != nil {
			utils.ErrorLogger.Errorf("Order events will not be queued: %v", err)
		} else {
			defer publisher.Close()
			notifiers = append(notifiers, publisher)
		}
	}

	tableService := services.NewTableService(db, catalog, notifiers)

	r := router.SetupRouter(tableService, hub, cfg)

	utils.InfoLogger.Printf("Listening on port %s", cfg.Port)
	if err := r.Run(":" + cfg.Port); err != nil {
		utils.ErrorLogger.Fatal(err)
	}
}
