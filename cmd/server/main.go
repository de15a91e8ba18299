package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"membership-portal/internal/audit"
	"membership-portal/internal/auth"
	"membership-portal/internal/config"
	"membership-portal/internal/db"
	"membership-portal/internal/export"
	"membership-portal/internal/members"
	"membership-portal/internal/middleware"
	"membership-portal/internal/relocation"
	"membership-portal/internal/repository"

	"github.com/rs/cors"
)

func main() {
	// Create context
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	cfg, err := config.Load(".")
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Run migrations before opening the pool
	if err := db.RunMigrations(cfg.DB, "./migrations"); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	// Setup database connection
	conn, err := db.NewConnection(ctx, cfg.DB)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer conn.Close()

	// Create repositories and stores
	store := repository.NewStore(conn)
	memberRepo := repository.NewMemberRepository(conn)
	auditRepo := repository.NewAuditRepository(conn)

	// Create services
	relocationService := relocation.NewService(store)
	memberService := members.NewService(memberRepo)
	auditService := audit.NewService(auditRepo)
	exportService := export.NewService(memberRepo, auditRepo)

	// Setup CORS
	corsHandler := cors.New(cors.Options{
		AllowedOrigins:   cfg.Server.AllowedOrigins,
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"*"},
	})

	mux := http.NewServeMux()
	mux.Handle("/api/members/relocate", relocation.NewHTTPHandler(relocationService))
	mux.Handle("/api/members", members.NewHTTPHandler(memberService))
	mux.Handle("/api/relocations", audit.NewHTTPHandler(auditService))
	mux.Handle("/api/export/", export.NewHTTPHandler(exportService))

	handler := middleware.LoggingMiddleware(corsHandler.Handler(auth.Middleware(mux)))

	// Create HTTP server
	server := &http.Server{
		Addr:         cfg.Server.Addr,
		Handler:      handler,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start server in a goroutine
	go func() {
		log.Printf("Starting membership portal server on %s", cfg.Server.Addr)

		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	// Wait for interrupt signal for graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Fatalf("Failed to shut down server: %v", err)
	}

	log.Println("Server stopped")
}
