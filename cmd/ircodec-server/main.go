package main

import (
	"fmt"
	"log"

	"github.com/edgeflow/irflow/internal/api"
	"github.com/edgeflow/irflow/internal/config"
	"github.com/edgeflow/irflow/internal/logger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"go.uber.org/zap"
)

var Version = "0.1.0"

func main() {
	cfg, err := config.Load("")
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logCfg := logger.DefaultConfig()
	logCfg.Level = cfg.Logger.Level
	logCfg.Format = cfg.Logger.Format
	if err := logger.Init(logCfg); err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logger.Sync()

	app := fiber.New(fiber.Config{
		AppName: "ircodec-server v" + Version,
	})

	app.Use(recover.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,OPTIONS",
		AllowHeaders: "Origin, Content-Type, Accept",
	}))

	api.NewHandler().SetupRoutes(app)

	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	logger.Info("ircodec-server starting", zap.String("addr", addr))

	if err := app.Listen(addr); err != nil {
		logger.Get().Fatal("server stopped", zap.Error(err))
	}
}
