package infra

import (
	"fmt"

	"gin-pantry/models"

	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func SetupDB(cfg *Config, log *zap.Logger) (*gorm.DB, error) {
	// Without DB_NAME we fall back to in-memory SQLite, which is what the tests use.
	if !cfg.UsePostgres() {
		db, err := SetupInMemoryDB()
		if err != nil {
			return nil, err
		}
		log.Info("Setup sqlite database (in-memory)")
		return db, nil
	}

	// sslmode=require in production, disable everywhere else
	sslmode := "disable"
	if cfg.IsProd() {
		sslmode = "require"
	}

	dsn := fmt.Sprintf(
		"host=%s user=%s password=%s dbname=%s port=%s sslmode=%s TimeZone=UTC connect_timeout=10",
		cfg.DBHost,
		cfg.DBUser,
		cfg.DBPassword,
		cfg.DBName,
		cfg.DBPort,
		sslmode,
	)

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database %s on %s:%s: %w", cfg.DBName, cfg.DBHost, cfg.DBPort, err)
	}
	log.Info("Setup postgres database",
		zap.String("host", cfg.DBHost),
		zap.String("dbname", cfg.DBName),
		zap.String("port", cfg.DBPort),
	)
	return db, nil
}

// SetupInMemoryDB opens a private in-memory SQLite database.
// The pool is pinned to a single connection because every new SQLite
// connection to ":memory:" would see an empty database.
func SetupInMemoryDB() (*gorm.DB, error) {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open sqlite database: %w", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxOpenConns(1)
	return db, nil
}

// SetupTokenDB opens the SQLite database holding blacklisted tokens.
func SetupTokenDB(path string) (*gorm.DB, error) {
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open token blacklist database: %w", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxOpenConns(1)
	return db, nil
}

// AutoMigrate creates or updates the application tables from the gorm models.
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.User{},
		&models.UserPreference{},
		&models.PantryItem{},
		&models.Recipe{},
		&models.RecipeIngredient{},
		&models.RecipeNutrition{},
		&models.MealPlan{},
		&models.ShoppingListItem{},
	)
}

func AutoMigrateTokens(db *gorm.DB) error {
	return db.AutoMigrate(&models.BlacklistedToken{})
}
