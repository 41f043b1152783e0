package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
	"github.com/rs/cors"

	cartHTTP "github.com/nvasilev/storefront/internal/cart/delivery/http"
	cartrepo "github.com/nvasilev/storefront/internal/cart/repository"
	catalogHTTP "github.com/nvasilev/storefront/internal/catalog/delivery/http"
	catalogrepo "github.com/nvasilev/storefront/internal/catalog/repository"
	"github.com/nvasilev/storefront/internal/config"
	"github.com/nvasilev/storefront/internal/delivery/middleware"
	"github.com/nvasilev/storefront/internal/integrity"
	"github.com/nvasilev/storefront/internal/media"
	orderHTTP "github.com/nvasilev/storefront/internal/order/delivery/http"
	orderrepo "github.com/nvasilev/storefront/internal/order/repository"
	ordercommand "github.com/nvasilev/storefront/internal/order/usecase/command"
	reviewHTTP "github.com/nvasilev/storefront/internal/review/delivery/http"
	reviewrepo "github.com/nvasilev/storefront/internal/review/repository"
	"github.com/nvasilev/storefront/internal/session"
	userHTTP "github.com/nvasilev/storefront/internal/user/delivery/http"
	userrepo "github.com/nvasilev/storefront/internal/user/repository"
	wishlistHTTP "github.com/nvasilev/storefront/internal/wishlist/delivery/http"
	wishlistrepo "github.com/nvasilev/storefront/internal/wishlist/repository"
	"github.com/nvasilev/storefront/kafka"
	"github.com/nvasilev/storefront/pkg/auth"
	"github.com/nvasilev/storefront/pkg/database"
	"github.com/nvasilev/storefront/pkg/logger"
	"github.com/nvasilev/storefront/pkg/tracing"
)

const serviceName = "storefront"

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	logger.Init(serviceName, cfg.LogLevel, cfg.IsDevelopment())

	tp, err := tracing.InitTracer(serviceName, cfg.JaegerEndpoint)
	if err != nil {
		logger.Logger.Fatal().Err(err).Msg("Failed to initialize tracer")
	}
	defer func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := tracing.Shutdown(ctx, tp); err != nil {
			logger.Logger.Error().Err(err).Msg("Failed to shut down tracer")
		}
	}()

	db, err := database.NewGormConnection(cfg.Database)
	if err != nil {
		logger.Logger.Fatal().Err(err).Msg("Failed to connect to database")
	}
	sqlDB, err := db.DB()
	if err != nil {
		logger.Logger.Fatal().Err(err).Msg("Failed to get database instance")
	}
	defer sqlDB.Close()

	// Repositories
	users := userrepo.NewGormUserRepository(db)
	admins := userrepo.NewGormAdminRepository(db)
	addresses := userrepo.NewGormAddressRepository(db)
	products := catalogrepo.NewGormProductRepository(db)
	brands := catalogrepo.NewGormBrandRepository(db)
	categories := catalogrepo.NewGormCategoryRepository(db)
	carts := cartrepo.NewGormCartRepository(db)
	cartItems := cartrepo.NewGormCartItemRepository(db)
	orders := orderrepo.NewGormOrderRepository(db)
	orderItems := orderrepo.NewGormOrderItemRepository(db)
	wishLists := wishlistrepo.NewGormWishListRepository(db)
	wishListItems := wishlistrepo.NewGormWishListItemRepository(db)
	reviews := reviewrepo.NewGormReviewRepository(db)

	for _, migrate := range []func() error{
		users.AutoMigrate,
		products.AutoMigrate,
		carts.AutoMigrate,
		orders.AutoMigrate,
		wishLists.AutoMigrate,
		reviews.AutoMigrate,
	} {
		if err := migrate(); err != nil {
			logger.Logger.Fatal().Err(err).Msg("Failed to run migrations")
		}
	}

	// Integrity engine
	runner := integrity.NewGormRunner(db)
	cascader := integrity.NewCascader(runner)

	// Sessions
	codec := auth.NewTokenCodec(cfg.SessionSecret)
	sessions := session.NewManager(codec, cfg.SecureCookies)
	authmw := middleware.NewAuth(sessions)

	// Media storage
	blobs, err := media.NewFSBlobStore(cfg.BlobDir, "/static/uploads")
	if err != nil {
		logger.Logger.Fatal().Err(err).Msg("Failed to initialize blob store")
	}

	// Redis response cache, optional
	var redisClient *redis.Client
	if cfg.RedisAddr != "" {
		redisClient = redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})
	}
	cacheConfig := middleware.DefaultCacheConfig()
	if cfg.CacheTTL > 0 {
		cacheConfig.DefaultTTL = cfg.CacheTTL
	}
	cache := middleware.NewCache(redisClient, cacheConfig)

	// Kafka publisher, optional
	var publisher ordercommand.OrderEventPublisher
	if len(cfg.KafkaBrokers) > 0 {
		kafkaPublisher, err := kafka.NewPublisher(cfg.KafkaBrokers)
		if err != nil {
			logger.Logger.Fatal().Err(err).Msg("Failed to initialize Kafka publisher")
		}
		defer kafkaPublisher.Close()
		publisher = kafkaPublisher
	}

	// HTTP handlers
	userHandler := userHTTP.NewUserHandler(users, admins, addresses, runner, cascader, sessions, authmw, blobs)
	catalogHandler := catalogHTTP.NewCatalogHandler(products, brands, categories, cascader, authmw, cache, blobs)
	cartHandler := cartHTTP.NewCartHandler(carts, cartItems, runner, cascader, authmw)
	orderHandler := orderHTTP.NewOrderHandler(orders, orderItems, runner, cascader, publisher, authmw)
	wishlistHandler := wishlistHTTP.NewWishListHandler(wishLists, wishListItems, runner, cascader, authmw)
	reviewHandler := reviewHTTP.NewReviewHandler(reviews, users, products, authmw)

	router := mux.NewRouter()
	userHandler.RegisterRoutes(router)
	userHandler.RegisterHealthCheck(router, sqlDB)
	catalogHandler.RegisterRoutes(router)
	cartHandler.RegisterRoutes(router)
	orderHandler.RegisterRoutes(router)
	wishlistHandler.RegisterRoutes(router)
	reviewHandler.RegisterRoutes(router)

	router.Handle("/metrics", promhttp.Handler())
	router.PathPrefix("/static/uploads/").Handler(
		http.StripPrefix("/static/uploads/", http.FileServer(http.Dir(cfg.BlobDir))))

	c := cors.New(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"*"},
		AllowCredentials: true,
	})

	server := &http.Server{
		Addr:         ":" + cfg.HTTPPort,
		Handler:      c.Handler(router),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
	}

	go func() {
		logger.Logger.Info().
			Str("port", cfg.HTTPPort).
			Str("env", cfg.AppEnv).
			Msg("HTTP server starting")
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Logger.Fatal().Err(err).Msg("Failed to start HTTP server")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Logger.Info().Msg("Shutting down server...")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		logger.Logger.Error().Err(err).Msg("Forced shutdown")
	}
}
