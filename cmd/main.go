// main.go
package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/rishii-05/stroke-prediction-project/docs"
	"github.com/rishii-05/stroke-prediction-project/internal/config"
	"github.com/rishii-05/stroke-prediction-project/internal/database"
	"github.com/rishii-05/stroke-prediction-project/internal/handlers"
	"github.com/rishii-05/stroke-prediction-project/internal/middleware"
	"github.com/rishii-05/stroke-prediction-project/internal/models"
	"github.com/rishii-05/stroke-prediction-project/internal/repository"
	"github.com/rishii-05/stroke-prediction-project/internal/risk"
	"github.com/rishii-05/stroke-prediction-project/internal/service"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// @title Stroke Prediction API
// @version 1.0
// @description Веб-сервис оценки риска инсульта: форма с факторами риска, обученный классификатор, ручная оценка и рекомендации
// @BasePath /api/v1
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	config.InitLogger()
	slog.Info("Starting application", "version", "1.0.0")

	cfg := config.Load()
	slog.Info("Configuration loaded successfully",
		"server_port", cfg.Server.Port,
		"gin_mode", cfg.Server.Mode,
		"db_host", cfg.Database.Host,
		"model_url", cfg.Model.ServiceURL,
	)

	db, err := database.Connect(cfg.Database)
	if err != nil {
		slog.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}

	if err := database.Migrate(db, &models.User{}, &models.Prediction{}); err != nil {
		slog.Error("Failed to run migrations", "error", err)
		os.Exit(1)
	}

	// Артефакты загружаются один раз на старте. При ошибке загрузки сервис
	// продолжает работать в деградированном режиме: предсказания отвечают
	// сентинелом, ленивых перезагрузок нет.
	engine := buildEngine(cfg.Model)

	// Репозитории и сервисы
	userRepo := repository.NewUserRepository(db)
	predictionRepo := repository.NewPredictionRepository(db)

	jwtService := service.NewJWTService()
	userService := service.NewUserService(userRepo, jwtService)
	predictionService := service.NewPredictionService(engine, predictionRepo)

	// Обработчики
	authHandlers := handlers.NewAuthHandlers(userService, jwtService)
	predictionHandler := handlers.NewPredictionHandler(predictionService)
	jwtMiddleware := middleware.NewJWTMiddleware(jwtService, userService)

	gin.SetMode(cfg.Server.Mode)
	router := setupRouter(authHandlers, predictionHandler, jwtMiddleware)

	server := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		slog.Info("Starting HTTP server", "port", cfg.Server.Port)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("Failed to start server", "error", err)
			os.Exit(1)
		}
	}()

	slog.Info("Server started successfully", "port", cfg.Server.Port)

	waitForShutdown(server)
}

// buildEngine загружает scaler и проверяет доступность model-сервиса.
func buildEngine(cfg config.ModelConfig) *risk.Engine {
	scaler, err := risk.LoadScaler(cfg.ScalerPath)
	if err != nil {
		slog.Error("Scaler failed to load, predictions disabled",
			"error", err,
			"path", cfg.ScalerPath,
		)
		scaler = nil
	} else {
		slog.Info("Scaler loaded successfully", "path", cfg.ScalerPath)
	}

	var model risk.Classifier
	classifier := risk.NewHTTPClassifier(cfg.ServiceURL, time.Duration(cfg.Timeout)*time.Second)

	healthCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := classifier.Health(healthCtx); err != nil {
		slog.Error("Model service unavailable, predictions disabled",
			"error", err,
			"url", cfg.ServiceURL,
		)
	} else {
		slog.Info("Model service is healthy", "url", cfg.ServiceURL)
		model = classifier
	}

	return risk.NewEngine(scaler, model)
}

func setupRouter(
	authHandlers *handlers.UserHandlers,
	predictionHandler *handlers.PredictionHandler,
	jwtMiddleware *middleware.JWTMiddleware,
) *gin.Engine {
	router := gin.New()
	router.Use(
		gin.Logger(),
		gin.Recovery(),
		cors.New(cors.Config{
			AllowOrigins: []string{"*"},
			AllowMethods: []string{"GET", "POST", "PUT", "OPTIONS"},
			AllowHeaders: []string{"Origin", "Content-Type", "Authorization"},
			MaxAge:       12 * time.Hour,
		}),
	)

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	api := router.Group("/api/v1")
	{
		api.GET("/health", predictionHandler.Health)

		auth := api.Group("/auth")
		{
			auth.POST("/register", authHandlers.Register)
			auth.POST("/login", authHandlers.Login)
			auth.POST("/refresh", authHandlers.RefreshToken)
			auth.POST("/logout", authHandlers.Logout)
			auth.GET("/me", jwtMiddleware.RequireAuth(), authHandlers.GetProfile)
		}

		api.POST("/predict", jwtMiddleware.OptionalAuth(), predictionHandler.Predict)

		authorized := api.Group("/", jwtMiddleware.RequireAuth())
		{
			authorized.GET("/predictions", predictionHandler.History)
			authorized.GET("/predictions/stats", predictionHandler.Stats)
			authorized.PUT("/profile/theme", authHandlers.UpdateTheme)
		}
	}

	return router
}

func waitForShutdown(server *http.Server) {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	<-quit
	slog.Info("Shutdown signal received")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		slog.Error("Server forced to shutdown", "error", err)
		os.Exit(1)
	}

	slog.Info("Server gracefully stopped")
}
