package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"

	"github.com/midgardgame/character-api/internal/clients/currency"
	"github.com/midgardgame/character-api/internal/clients/recipe"
	"github.com/midgardgame/character-api/internal/clients/trait"
	"github.com/midgardgame/character-api/internal/clients/wardrobe"
	"github.com/midgardgame/character-api/internal/config"
	v1 "github.com/midgardgame/character-api/internal/handlers/api/v1"
	"github.com/midgardgame/character-api/internal/notifications"
	charorchestrator "github.com/midgardgame/character-api/internal/orchestrators/character"
	"github.com/midgardgame/character-api/internal/redis"
	characterrepo "github.com/midgardgame/character-api/internal/repositories/character"
	selectionrepo "github.com/midgardgame/character-api/internal/repositories/selection"
)

var httpPort int

var serverCmd = &cobra.Command{
	Use:   "server",
	Short: "Start the HTTP server",
	Long:  `Start the character service HTTP server with all configured dependencies.`,
	RunE:  runServer,
}

func init() {
	serverCmd.Flags().IntVar(&httpPort, "port", 0, "HTTP server port (overrides PORT)")
}

func runServer(cmd *cobra.Command, args []string) error {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	if httpPort != 0 {
		cfg.Port = httpPort
	}

	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: cfg.SlogLevel(),
	})))

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-sigChan
		slog.Info("received shutdown signal, gracefully stopping")
		cancel()
	}()

	redisClient, err := redis.NewClient(cfg.RedisAddr, nil)
	if err != nil {
		return fmt.Errorf("failed to create redis client: %w", err)
	}
	defer func() { _ = redisClient.Close() }()

	charRepo, db, err := characterrepo.NewSQLite(&characterrepo.SQLiteConfig{
		Path: cfg.DatabasePath,
	})
	if err != nil {
		return fmt.Errorf("failed to open character store: %w", err)
	}
	defer func() { _ = db.Close() }()

	selRepo, err := selectionrepo.NewRedis(&selectionrepo.RedisConfig{Client: redisClient})
	if err != nil {
		return fmt.Errorf("failed to create selection repository: %w", err)
	}

	publisher, err := notifications.NewRedis(&notifications.RedisConfig{Client: redisClient})
	if err != nil {
		return fmt.Errorf("failed to create publisher: %w", err)
	}

	wardrobeClient, err := wardrobe.NewHTTP(&wardrobe.Config{BaseURL: cfg.WardrobeServiceURL, Timeout: cfg.ClientTimeout})
	if err != nil {
		return fmt.Errorf("failed to create wardrobe client: %w", err)
	}
	traitClient, err := trait.NewHTTP(&trait.Config{BaseURL: cfg.TraitServiceURL, Timeout: cfg.ClientTimeout})
	if err != nil {
		return fmt.Errorf("failed to create trait client: %w", err)
	}
	currencyClient, err := currency.NewHTTP(&currency.Config{BaseURL: cfg.CurrencyServiceURL, Timeout: cfg.ClientTimeout})
	if err != nil {
		return fmt.Errorf("failed to create currency client: %w", err)
	}
	recipeClient, err := recipe.NewHTTP(&recipe.Config{BaseURL: cfg.RecipeServiceURL, Timeout: cfg.ClientTimeout})
	if err != nil {
		return fmt.Errorf("failed to create recipe client: %w", err)
	}

	orchestrator, err := charorchestrator.New(&charorchestrator.Config{
		CharacterRepo:  charRepo,
		SelectionRepo:  selRepo,
		WardrobeClient: wardrobeClient,
		TraitClient:    traitClient,
		CurrencyClient: currencyClient,
		RecipeClient:   recipeClient,
		Publisher:      publisher,
	})
	if err != nil {
		return fmt.Errorf("failed to create character orchestrator: %w", err)
	}

	handler, err := v1.NewHandler(&v1.HandlerConfig{CharacterService: orchestrator})
	if err != nil {
		return fmt.Errorf("failed to create character handler: %w", err)
	}

	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(gin.Recovery())
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	handler.RegisterRoutes(router)

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.Port),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errChan := make(chan error, 1)
	go func() {
		slog.Info("HTTP server starting", "port", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errChan <- fmt.Errorf("failed to serve: %w", err)
		}
	}()

	select {
	case <-ctx.Done():
		slog.Info("shutting down HTTP server")

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer shutdownCancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			slog.Warn("graceful shutdown failed, forcing close", "error", err.Error())
			_ = srv.Close()
		}
		return nil
	case err := <-errChan:
		return err
	}
}
