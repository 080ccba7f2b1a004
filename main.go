package main

import (
	"fmt"

	"github.com/gin-gonic/gin"

	"storefront/configs"
	"storefront/middlewares"
	"storefront/pkg/logger"
	"storefront/routes"
)

func main() {
	cfg := configs.LoadConfig()

	// DB
	if err := configs.ConnectionDB(cfg); err != nil {
		logger.L().Fatal().Err(err).Msg("connect database failed")
	}
	db := configs.DB()

	// migrate
	if err := configs.SetupDatabase(); err != nil {
		logger.L().Fatal().Err(err).Msg("migrate failed")
	}

	if err := configs.SeedStaff(); err != nil {
		logger.L().Fatal().Err(err).Msg("seed staff failed")
	}

	// HTTP
	r := gin.Default()
	r.Use(middlewares.CORSMiddleware())
	routes.RegisterRoutes(r, db, cfg)

	addr := fmt.Sprintf(":%s", cfg.Port)
	logger.L().Info().Str("addr", addr).Msg("server running")
	if err := r.Run(addr); err != nil {
		logger.L().Fatal().Err(err).Msg("server stopped")
	}
}
