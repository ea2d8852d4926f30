package main

import (
	"gin-pantry/infra"

	"go.uber.org/zap"
)

func main() {
	envFiles := infra.Initialize()
	cfg, err := infra.LoadConfig()
	if err != nil {
		panic(err)
	}
	log, err := infra.NewLogger(cfg.Env)
	if err != nil {
		panic(err)
	}
	defer log.Sync()
	if len(envFiles) == 0 {
		log.Info("No .env file found; using environment variables")
	} else {
		log.Info("Loaded environment files", zap.Strings("files", envFiles))
	}

	if cfg.UsePostgres() || cfg.DatabaseURL != "" {
		if err := infra.RunMigrations(cfg.PostgresURL(), log); err != nil {
			log.Fatal("Failed to migrate database", zap.Error(err))
		}
	} else {
		log.Info("No PostgreSQL database configured, the in-memory database is migrated at startup")
	}

	tokenDB, err := infra.SetupTokenDB(cfg.TokenDBPath)
	if err != nil {
		log.Fatal("Failed to open token blacklist database", zap.Error(err))
	}
	if err := infra.AutoMigrateTokens(tokenDB); err != nil {
		log.Fatal("Failed to migrate token blacklist database", zap.Error(err))
	}
}
