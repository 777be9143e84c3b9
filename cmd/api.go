package cmd

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"github.com/swaggo/swag"

	config "github.com/localscan/explorer/configs"
	"github.com/localscan/explorer/docs"
	"github.com/localscan/explorer/internal/explorer"
	"github.com/localscan/explorer/internal/handlers"
	"github.com/localscan/explorer/internal/middleware"
	"github.com/localscan/explorer/internal/rpc"
	"github.com/localscan/explorer/internal/storage"
)

var (
	apiCmd = &cobra.Command{
		Use:     "serve",
		Aliases: []string{"api"},
		Short:   "Serve the explorer and storage API",
		Long:    "Serves the explorer API over the configured RPC node and the storage API over the configured metadata backend.",
		Run: func(cmd *cobra.Command, args []string) {
			RunApi(cmd, args)
		},
	}
)

// @title Local Explorer
// @version v0.1.0
// @description API for browsing a local development chain and its verified contracts
// @license.name Apache 2.0
// @BasePath /
// @Security BasicAuth
// @securityDefinitions.basic BasicAuth
func RunApi(cmd *cobra.Command, args []string) {
	docs.SwaggerInfo.Host = config.Cfg.API.Host

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	store, err := openMetadataStorage()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to open metadata storage")
	}
	defer store.Close()

	handlerOpts := []handlers.HandlerOption{
		handlers.WithPageSizes(config.Cfg.API.DefaultPageSize, config.Cfg.API.MaxPageSize),
	}
	var service *explorer.Service
	client, err := rpc.Initialize(ctx)
	if err != nil {
		// the storage API stays usable without a node
		log.Error().Err(err).Str("url", config.Cfg.RPC.URL).Msg("Failed to connect to RPC, explorer endpoints disabled")
	} else {
		defer client.Close()
		service, err = explorer.NewService(client, store)
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to create explorer service")
		}
		if chainId := client.GetChainID(); chainId != nil {
			handlerOpts = append(handlerOpts, handlers.WithChainId(chainId.Uint64()))
		}
	}

	r := gin.New()
	r.Use(middleware.Logger())
	r.Use(gin.Recovery())
	r.Use(middleware.Cors)

	// Add Swagger route
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	// Add Swagger JSON endpoint
	r.GET("/openapi.json", func(c *gin.Context) {
		doc, err := swag.ReadDoc()
		if err != nil {
			log.Error().Err(err).Msg("Failed to read Swagger documentation")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to provide Swagger documentation"})
			return
		}
		c.Header("Content-Type", "application/json")
		c.String(http.StatusOK, doc)
	})
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))
	r.GET("/health", func(c *gin.Context) {
		if client != nil {
			if _, err := client.GetLatestBlockNumber(c.Request.Context()); err != nil {
				c.String(http.StatusServiceUnavailable, "rpc unavailable")
				return
			}
		}
		c.String(http.StatusOK, "ok")
	})

	authorized := r.Group("/")
	authorized.Use(middleware.Authorization(config.Cfg.API.BasicAuth.Username, config.Cfg.API.BasicAuth.Password))
	handlers.NewHandler(service, store, handlerOpts...).RegisterRoutes(authorized)

	srv := &http.Server{
		Addr:    config.Cfg.API.Listen,
		Handler: r,
	}
	go func() {
		log.Info().Str("listen", srv.Addr).Str("storage", storageName(store)).Msg("Starting API server")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("API server failed")
		}
	}()

	<-ctx.Done()
	log.Info().Msg("Shutting down API server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("API server shutdown failed")
	}
}

// openMetadataStorage opens the configured backend, or an embedded pebble store when none is configured.
func openMetadataStorage() (storage.IMetadataStorage, error) {
	cfg := config.Cfg.Storage.Metadata
	if cfg.Pebble == nil && cfg.Badger == nil && cfg.Memory == nil && cfg.Sqlite == nil &&
		cfg.Postgres == nil && cfg.Redis == nil && cfg.Remote == nil {
		cfg.Pebble = &config.PebbleConfig{}
	}
	return storage.NewMetadataStorage(&cfg)
}

func storageName(store storage.IMetadataStorage) string {
	if named, ok := store.(interface{ Backend() string }); ok {
		return named.Backend()
	}
	return "unknown"
}
