// @title         portfolio API
// @version       1.0
// @description   Backend for the portfolio site: resolved content sections with embedded fallbacks, a GitHub activity aggregator and a contact-form relay.
// @BasePath      /api/v1
// @schemes       http
// @host          localhost:8080
package main

import (
	"context"
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/jackc/pgx/v5/pgxpool"

	apihttp "github.com/dancanmurithi/portfolio/api/http"
	"github.com/dancanmurithi/portfolio/api/http/handlers"
	"github.com/dancanmurithi/portfolio/pkg/cache"
	"github.com/dancanmurithi/portfolio/pkg/config"
	"github.com/dancanmurithi/portfolio/pkg/contact"
	"github.com/dancanmurithi/portfolio/pkg/content"
	"github.com/dancanmurithi/portfolio/pkg/github"
	ghrest "github.com/dancanmurithi/portfolio/pkg/github/rest"
	"github.com/dancanmurithi/portfolio/pkg/health"
	healthpg "github.com/dancanmurithi/portfolio/pkg/health/checkers"
	"github.com/dancanmurithi/portfolio/pkg/mailer"
	"github.com/dancanmurithi/portfolio/pkg/mailer/resend"
	pgrepo "github.com/dancanmurithi/portfolio/pkg/repository/postgres"
	"github.com/dancanmurithi/portfolio/pkg/storage/postgres"
)

func main() {
	app := fiber.New()

	// Load configuration from env/.env
	cfg := config.Load()

	// Preflight support for the frontend; the header list matches what the
	// supabase-js client sends.
	app.Use(cors.New(cors.Config{
		AllowOrigins: cfg.CORSOrigin,
		AllowMethods: "GET,POST,OPTIONS",
		AllowHeaders: "authorization, x-client-info, apikey, content-type",
	}))

	// Connect to PostgreSQL. A missing or unreachable store is not fatal:
	// the service keeps running and every section resolves to fallback data.
	pool := connectStore(cfg.DatabaseURL)
	if pool != nil {
		defer pool.Close()
	}

	// Snapshot cache: shared Redis when configured, in-process otherwise.
	store := openCache(cfg.RedisURL)

	var contentRepo content.Repository
	var messageRepo contact.Repository
	if pool != nil {
		contentRepo = pgrepo.NewContentRepository(pool)
		mr, err := pgrepo.NewMessageRepository(pool)
		if err != nil {
			log.Fatalf("init message repo: %v", err)
		}
		messageRepo = mr
	}

	// Wire dependencies (Clean Architecture)
	contentUC := content.NewService(contentRepo, store)
	sectionsHandler := handlers.NewContentHandler(contentUC)

	var sender mailer.Sender
	if cfg.ResendAPIKey != "" {
		sender = resend.New(cfg.ResendAPIKey, cfg.ResendAPIBase)
	} else {
		log.Print("RESEND_API_KEY not set; contact notifications disabled")
	}
	contactUC := contact.NewService(messageRepo, sender, cfg.NotificationEmail)
	contactHandler := handlers.NewContactHandler(contactUC)

	ghClient := ghrest.New(cfg.GitHubAPIBase, cfg.GitHubToken)
	githubUC := github.NewService(ghClient, store)
	githubHandler := handlers.NewGitHubHandler(githubUC)

	// Health service: compose checkers
	readiness := health.NewService(healthpg.NewPostgresChecker(pool))
	healthHandler := handlers.NewHealthHandler(readiness)

	// Register routes
	apihttp.Register(app, sectionsHandler, contactHandler, githubHandler, healthHandler)

	// Start server
	port := cfg.Port
	log.Printf("HTTP server listening on :%s", port)
	if err := app.Listen(":" + port); err != nil {
		log.Fatalf("server stopped: %v", err)
	}
}

// connectStore opens the pgx pool, or returns nil to run in fallback-only
// mode when no DSN is configured or the store is unreachable at boot.
func connectStore(dsn string) *pgxpool.Pool {
	if dsn == "" {
		log.Print("DATABASE_URL not set; serving fallback content only")
		return nil
	}
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	pool, err := postgres.Connect(ctx, dsn)
	if err != nil {
		log.Printf("postgres connect: %v; serving fallback content only", err)
		return nil
	}
	return pool
}

// openCache prefers a shared Redis snapshot cache, falling back to the
// in-process store.
func openCache(redisURL string) cache.Store {
	if redisURL == "" {
		return cache.NewMemory()
	}
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	store, err := cache.NewRedis(ctx, redisURL, "portfolio")
	if err != nil {
		log.Printf("redis connect: %v; using in-process cache", err)
		return cache.NewMemory()
	}
	return store
}
