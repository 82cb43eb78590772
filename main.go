// @title AltaCoach Admin API
// @version 1.0
// @description Multi-tenant coaching platform backend with chat suggestion reconciliation.

// @host localhost:8080
// @BasePath /api
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization

package main

import (
	"flag"
	"log"

	"altacoach_backend/internal/app"
	"altacoach_backend/internal/config"
	"altacoach_backend/internal/i18n"
	"altacoach_backend/pkg/logger"
)

func main() {
	migrateOnly := flag.Bool("migrate-only", false, "run database migrations and exit")
	migrate := flag.Bool("migrate", false, "force database migrations on startup")
	flag.Parse()

	cfg, err := config.LoadConfig("configs")
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	cfg.ForceMigrate = *migrate || *migrateOnly
	cfg.MigrateOnly = *migrateOnly

	translator, err := i18n.Load(cfg.I18n.TranslationsPath, cfg.I18n.DefaultLanguage)
	if err != nil {
		log.Fatalf("Failed to load translations: %v", err)
	}

	application := app.NewApp(cfg, translator)
	defer logger.Log.Sync()

	if *migrateOnly {
		log.Println("Database migration completed, exiting")
		return
	}

	application.Run()
}
