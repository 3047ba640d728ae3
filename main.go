package main

import (
	"log"
	"time"

	"stash-api/config"
	"stash-api/database"
	calculateapi "stash-api/internal/api/calculate"
	debugapi "stash-api/internal/api/debug"
	healthapi "stash-api/internal/api/health"
	optionsapi "stash-api/internal/api/options"
	plansapi "stash-api/internal/api/plans"
	subscriptionsapi "stash-api/internal/api/subscriptions"
	usersapi "stash-api/internal/api/users"
	routes "stash-api/internal/app/http"
	"stash-api/internal/domain/options"
	"stash-api/internal/domain/plans"
	"stash-api/internal/domain/subscriptions"
	"stash-api/internal/domain/users"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

func main() {
	// gin.SetMode(gin.ReleaseMode) uncomment only in production
	config.LoadEnv()

	// Monetary fields serialize as JSON numbers, matching the public API.
	decimal.MarshalJSONWithoutQuotes = true

	db := database.InitDB(config.DB_URL)
	if config.SEED_DB {
		if err := database.Seed(db); err != nil {
			log.Fatal("Seeding failed:", err)
		}
	}

	userRepo := users.NewRepository(db)
	planRepo := plans.NewRepository(db)
	optionRepo := options.NewRepository(db)
	subscriptionRepo := subscriptions.NewRepository(db)
	subOptionRepo := subscriptions.NewOptionRepository(db)

	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{config.CORS_ORIGIN},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	routes.RegisterRoutes(r, config.API_VERSION, routes.Handlers{
		Health:        healthapi.NewHandler(db),
		Users:         usersapi.NewHandler(userRepo),
		Plans:         plansapi.NewHandler(planRepo),
		Options:       optionsapi.NewHandler(optionRepo),
		Subscriptions: subscriptionsapi.NewHandler(subscriptionRepo, subOptionRepo, userRepo, planRepo, optionRepo),
		Calculate:     calculateapi.NewHandler(planRepo),
		Debug:         debugapi.NewHandler(userRepo, subscriptionRepo),
	})

	r.Run(":" + config.PORT)
}
