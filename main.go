// main.go
package main

import (
	"context"
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"go-grocery/config"
	"go-grocery/controllers"
	"go-grocery/database"
	"go-grocery/middleware"
	"go-grocery/routes"
	"go-grocery/utils"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	log := utils.NewLogger(cfg.App.LogLevel)

	// Set the JWT secret key
	utils.JwtKey = []byte(cfg.JWT.Secret)
	utils.TokenTTL = cfg.JWT.TTL

	// Connect to MongoDB
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	store, err := database.Connect(ctx, cfg.Mongo.URI, cfg.Mongo.Database, log)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to the document store")
	}
	defer func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := store.Disconnect(ctx); err != nil {
			log.Error().Err(err).Msg("failed to disconnect from the document store")
		}
	}()

	// Initialize EmailService
	emailService := utils.NewEmailService(cfg.Email.SendgridAPIKey, cfg.Email.Sender, log)

	// Initialize controllers
	userController := controllers.NewUserController(store, log)
	catalogController := controllers.NewCatalogController(store, log)
	orderController := controllers.NewOrderController(store, emailService, log)

	// Set up the router
	router := mux.NewRouter()
	router.Use(middleware.RequestID)
	router.Use(middleware.Logging(log))

	// Register routes
	routes.RegisterRoutes(router, userController, catalogController, orderController)

	log.Info().Str("port", cfg.App.Port).Msg("server is running")
	if err := http.ListenAndServe(":"+cfg.App.Port, router); err != nil {
		log.Fatal().Err(err).Msg("server stopped")
	}
}
