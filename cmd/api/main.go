package main

import (
	"context"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	dbadapter "todolist/internal/adapter/db"
	httpadapter "todolist/internal/adapter/http"
	"todolist/internal/adapter/http/handlers"
	httpmiddleware "todolist/internal/adapter/http/middleware"
	appservice "todolist/internal/app/service"
	"todolist/internal/config"
	"todolist/pkg/translator"
)

func main() {
	logger, err := zap.NewProduction()
	if err != nil {
		panic(err)
	}
	// Make zap available to packages that log through zap.L().
	zap.ReplaceGlobals(logger)
	defer func() {
		if err := logger.Sync(); err != nil {
			zap.L().Debug("failed to sync logger", zap.Error(err))
		}
	}()

	translator.InitTranslator()

	cfg := config.LoadConfig()

	db, err := dbadapter.ConnectDB(cfg)
	if err != nil {
		logger.Fatal("failed to open mysql pool", zap.Error(err))
	}
	defer func() {
		if err := db.Close(); err != nil {
			logger.Warn("failed to close mysql connection", zap.Error(err))
		}
	}()

	// Bootstrap is tolerated to fail: the server starts either way and
	// storage calls error individually until the database comes up.
	dbadapter.BootstrapSchema(context.Background(), cfg, db)

	userRepository := dbadapter.NewUserRepository(db)
	taskRepository := dbadapter.NewTaskRepository(db)
	authService := appservice.NewAuthService(userRepository)
	taskService := appservice.NewTaskService(taskRepository, userRepository)

	r := gin.New()
	r.Use(
		gin.Recovery(),
		httpmiddleware.GinZapMiddleware(logger),
		httpmiddleware.CORSMiddleware(cfg.FrontendURL),
	)
	if err := r.SetTrustedProxies(cfg.TrustedProxies); err != nil {
		logger.Warn("failed to set trusted proxies", zap.Error(err))
	}

	healthHandler := handlers.NewHealthHandler(db)
	authHandler := handlers.NewAuthHandler(authService, cfg.DevMode())
	taskHandler := handlers.NewTaskHandler(taskService, cfg.DevMode())
	httpadapter.RegisterRoutes(r, healthHandler, authHandler, taskHandler)

	addr := ":" + cfg.AppPort
	logger.Info("starting server",
		zap.String("addr", addr),
		zap.String("env", cfg.AppEnv),
		zap.String("database", cfg.DbName),
	)
	if err := r.Run(addr); err != nil {
		logger.Fatal("could not start server", zap.Error(err))
	}
}
