package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"gin-pantry/ai"
	"gin-pantry/controllers"
	"gin-pantry/infra"
	"gin-pantry/jobs"
	"gin-pantry/metrics"
	"gin-pantry/middlewares"
	"gin-pantry/repositories"
	"gin-pantry/services"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type app struct {
	router      *gin.Engine
	rateLimiter *middlewares.RateLimiter
	tokens      repositories.ITokenRepository
}

func setupRouter(db *gorm.DB, tokenDB *gorm.DB, cfg *infra.Config, logger *zap.Logger, assistant services.IRecipeAssistant) *app {
	authRepository := repositories.NewAuthRepository(db)
	tokenRepository := repositories.NewTokenRepository(tokenDB)
	preferenceRepository := repositories.NewPreferenceRepository(db)
	pantryRepository := repositories.NewPantryRepository(db)
	recipeRepository := repositories.NewRecipeRepository(db)
	mealPlanRepository := repositories.NewMealPlanRepository(db)
	shoppingListRepository := repositories.NewShoppingListRepository(db)

	authService := services.NewAuthService(authRepository, tokenRepository, cfg.SecretKey, cfg.TokenTTL)
	userService := services.NewUserService(authRepository, preferenceRepository)
	pantryService := services.NewPantryService(pantryRepository)
	recipeService := services.NewRecipeService(recipeRepository, pantryRepository, assistant)
	mealPlanService := services.NewMealPlanService(mealPlanRepository, recipeRepository)
	shoppingListService := services.NewShoppingListService(shoppingListRepository)

	authController := controllers.NewAuthController(authService, logger)
	userController := controllers.NewUserController(userService, logger)
	pantryController := controllers.NewPantryController(pantryService, logger)
	recipeController := controllers.NewRecipeController(recipeService, logger)
	mealPlanController := controllers.NewMealPlanController(mealPlanService, logger)
	shoppingListController := controllers.NewShoppingListController(shoppingListService, logger)

	rateLimiter := middlewares.NewRateLimiter(cfg.AIRatePerMinute, cfg.AIRateBurst, logger)
	authMiddleware := middlewares.AuthMiddleware(authService)

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middlewares.RequestLogger(logger))
	r.Use(middlewares.Metrics())
	if origins := cfg.AllowedOrigins(); len(origins) > 0 {
		corsConfig := cors.DefaultConfig()
		corsConfig.AllowOrigins = origins
		corsConfig.AddAllowHeaders("Authorization")
		r.Use(cors.New(corsConfig))
	} else {
		r.Use(cors.Default())
	}

	r.GET("/health", func(ctx *gin.Context) {
		ctx.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.GET("/metrics", gin.WrapH(metrics.Handler()))

	api := r.Group("/api")

	authRouter := api.Group("/auth")
	authRouter.POST("/signup", authController.Signup)
	authRouter.POST("/login", authController.Login)
	authRouter.POST("/reset-password", authController.ResetPassword)
	authRouter.GET("/me", authMiddleware, authController.Me)
	authRouter.POST("/logout", authMiddleware, authController.Logout)

	userRouter := api.Group("/users", authMiddleware)
	userRouter.GET("/profile", userController.GetProfile)
	userRouter.PUT("/profile", userController.UpdateProfile)
	userRouter.PUT("/preferences", userController.UpdatePreferences)
	userRouter.PUT("/change-password", userController.ChangePassword)
	userRouter.DELETE("/delete", userController.DeleteAccount)

	pantryRouter := api.Group("/pantry", authMiddleware)
	pantryRouter.GET("", pantryController.FindAll)
	pantryRouter.GET("/stats", pantryController.Stats)
	pantryRouter.GET("/expiring-soon", pantryController.ExpiringSoon)
	pantryRouter.POST("", pantryController.Create)
	pantryRouter.PUT("/:id", pantryController.Update)
	pantryRouter.DELETE("/:id", pantryController.Delete)

	recipeRouter := api.Group("/recipes", authMiddleware)
	aiLimit := rateLimiter.Handler()
	recipeRouter.POST("/generate", aiLimit, recipeController.Generate)
	recipeRouter.POST("/suggestions", aiLimit, recipeController.Suggestions)
	recipeRouter.POST("/:id/tips", aiLimit, recipeController.Tips)
	recipeRouter.GET("", recipeController.FindAll)
	recipeRouter.GET("/recent", recipeController.Recent)
	recipeRouter.GET("/stats", recipeController.Stats)
	recipeRouter.GET("/:id", recipeController.FindById)
	recipeRouter.POST("", recipeController.Create)
	recipeRouter.PUT("/:id", recipeController.Update)
	recipeRouter.DELETE("/:id", recipeController.Delete)

	mealPlanRouter := api.Group("/meal-plans", authMiddleware)
	mealPlanRouter.GET("/weekly", mealPlanController.Weekly)
	mealPlanRouter.GET("/upcoming", mealPlanController.Upcoming)
	mealPlanRouter.GET("/stats", mealPlanController.Stats)
	mealPlanRouter.POST("", mealPlanController.Add)
	mealPlanRouter.DELETE("/:id", mealPlanController.Delete)

	shoppingRouter := api.Group("/shopping-list", authMiddleware)
	shoppingRouter.GET("", shoppingListController.FindAll)
	shoppingRouter.POST("/generate", shoppingListController.Generate)
	shoppingRouter.POST("", shoppingListController.Create)
	shoppingRouter.PUT("/:id", shoppingListController.Update)
	shoppingRouter.PUT("/:id/toggle", shoppingListController.Toggle)
	shoppingRouter.DELETE("/:id", shoppingListController.Delete)
	shoppingRouter.DELETE("/clear/checked", shoppingListController.ClearChecked)
	shoppingRouter.DELETE("/clear/all", shoppingListController.ClearAll)
	shoppingRouter.POST("/add-to-pantry", shoppingListController.AddToPantry)

	return &app{router: r, rateLimiter: rateLimiter, tokens: tokenRepository}
}

func initDB(cfg *infra.Config, logger *zap.Logger) (*gorm.DB, *gorm.DB) {
	db, err := infra.SetupDB(cfg, logger)
	if err != nil {
		logger.Fatal("Failed to connect to database", zap.Error(err))
	}
	// the in-memory database starts empty every time
	if cfg.AutoMigrate || !cfg.UsePostgres() {
		if err := infra.AutoMigrate(db); err != nil {
			logger.Fatal("Failed to migrate database", zap.Error(err))
		}
	}

	tokenDB, err := infra.SetupTokenDB(cfg.TokenDBPath)
	if err != nil {
		logger.Fatal("Failed to open token blacklist database", zap.Error(err))
	}
	if err := infra.AutoMigrateTokens(tokenDB); err != nil {
		logger.Fatal("Failed to migrate token blacklist database", zap.Error(err))
	}
	return db, tokenDB
}

func newAssistant(cfg *infra.Config, logger *zap.Logger) services.IRecipeAssistant {
	if cfg.GeminiAPIKey == "" {
		logger.Warn("GEMINI_API_KEY not set, recipe generation is disabled")
		return nil
	}
	client, err := ai.NewGeminiClient(context.Background(), cfg.GeminiAPIKey, cfg.GeminiModel)
	if err != nil {
		logger.Fatal("Failed to create Gemini client", zap.Error(err))
	}
	return ai.NewRecipeAssistant(client)
}

func main() {
	envFiles := infra.Initialize()
	cfg, err := infra.LoadConfig()
	if err != nil {
		panic(err)
	}
	logger, err := infra.NewLogger(cfg.Env)
	if err != nil {
		panic(err)
	}
	defer logger.Sync()
	if len(envFiles) == 0 {
		logger.Info("No .env file found; using environment variables")
	} else {
		logger.Info("Loaded environment files", zap.Strings("files", envFiles))
	}

	if cfg.IsProd() {
		gin.SetMode(gin.ReleaseMode)
	}

	db, tokenDB := initDB(cfg, logger)
	a := setupRouter(db, tokenDB, cfg, logger, newAssistant(cfg, logger))

	scheduler, err := jobs.NewScheduler(a.tokens, a.rateLimiter, logger)
	if err != nil {
		logger.Fatal("Failed to schedule jobs", zap.Error(err))
	}
	scheduler.Start()

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      a.router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 90 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Info("Starting server", zap.String("port", cfg.Port), zap.String("env", cfg.Env))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server...")
	scheduler.Stop()
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Fatal("Server forced to shutdown", zap.Error(err))
	}
	logger.Info("Server exited")
}
