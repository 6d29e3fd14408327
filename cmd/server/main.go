package main

import (
	"context"
	"log"
	"log/slog"
	"net/http"
	"os"

	"studyshare-backend/auth"
	"studyshare-backend/config"
	"studyshare-backend/handlers"
	"studyshare-backend/migrations"
	"studyshare-backend/repository"
	"studyshare-backend/service"
	"studyshare-backend/storage"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joho/godotenv"
	"github.com/rs/cors"
)

func main() {
	// Load .env file from project root (relative to cmd/server/)
	if err := godotenv.Load(); err != nil {
		if err := godotenv.Load("../../.env"); err != nil {
			log.Printf("Warning: No .env file found, using environment variables")
		}
	}

	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stdout, nil)))

	cfg := config.Load()
	ctx := context.Background()

	if err := migrations.Run(ctx, cfg.DatabaseURL); err != nil {
		log.Fatal("Failed to run migrations:", err)
	}

	db, err := initPostgres(ctx, cfg.DatabaseURL)
	if err != nil {
		log.Fatal("Failed to initialize Postgres:", err)
	}
	defer db.Close()

	fileStorage, err := storage.NewStorageFromEnv()
	if err != nil {
		log.Fatalf("Failed to initialize storage: %v", err)
	}
	slog.Info("storage initialized")

	// Initialize repositories
	userRepo := repository.NewUserRepository(db)
	resourceRepo := repository.NewResourceRepository(db)

	// Initialize services
	accountService := service.NewAccountService(
		service.WithUserRepository(userRepo),
	)
	resourceService := service.NewResourceService(
		service.WithResourceRepository(resourceRepo),
		service.WithUserLookup(userRepo),
	)

	provider := auth.NewGoogleProvider(cfg.GoogleClientID, cfg.GoogleClientSecret, cfg.GoogleCallbackURL)

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(accountService, provider, cfg)
	resourceHandler := handlers.NewResourceHandler(resourceService)
	fileHandler := handlers.NewFileHandler(fileStorage)

	// Setup Gin router
	r := gin.Default()

	// Health check endpoint
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status": "ok",
		})
	})

	// Local storage serves uploads directly
	if local, ok := fileStorage.(*storage.LocalStorage); ok {
		r.Static("/files", local.BasePath())
	}

	requireAuth := auth.RequireAuth([]byte(cfg.JWTSecret))

	// API routes
	api := r.Group("/api")
	{
		// Auth endpoints
		api.GET("/auth/google", authHandler.GoogleLogin)
		api.GET("/auth/google/callback", authHandler.GoogleCallback)
		api.GET("/me", requireAuth, authHandler.Me)
		api.POST("/update-profile", requireAuth, authHandler.UpdateProfile)
		api.POST("/logout", authHandler.Logout)
		api.GET("/user/:id", authHandler.PublicUser)

		// Resource endpoints
		api.POST("/resources", requireAuth, resourceHandler.Create)
		api.GET("/resources", resourceHandler.List)
		api.DELETE("/resources/:id", requireAuth, resourceHandler.Delete)

		// File endpoints
		api.POST("/upload", requireAuth, fileHandler.Upload)
	}

	// Credentialed CORS for the frontend
	corsHandler := cors.New(cors.Options{
		AllowedOrigins:   []string{"http://localhost:5173", cfg.FrontendURL},
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodDelete},
		AllowedHeaders:   []string{"Authorization", "Content-Type"},
		AllowCredentials: true,
	}).Handler(r)

	slog.Info("server starting", "addr", cfg.Addr)
	if err := http.ListenAndServe(cfg.Addr, corsHandler); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}

func initPostgres(ctx context.Context, connString string) (*pgxpool.Pool, error) {
	pool, err := pgxpool.New(ctx, connString)
	if err != nil {
		return nil, err
	}

	if err := pool.Ping(ctx); err != nil {
		return nil, err
	}

	slog.Info("postgres connection established")
	return pool, nil
}
