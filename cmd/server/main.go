package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"guesthouse-service/config"
	"guesthouse-service/internal/api"
	"guesthouse-service/internal/broker"
	"guesthouse-service/internal/redisclient"
	"guesthouse-service/internal/service"
	"guesthouse-service/internal/store"
	"guesthouse-service/internal/util"
	"guesthouse-service/internal/worker"

	"github.com/gin-gonic/gin"
)

func main() {

	cfg := config.Load()

	if err := util.InitLogger(cfg.Server.Env); err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer util.SyncLogger()

	logger := util.GetLogger()
	logger.Info("Starting guesthouse service")

	tp, err := util.InitTracer("guesthouse-service", cfg.Observ.JaegerEndpoint)
	if err != nil {
		log.Fatalf("Failed to initialize tracer: %v", err)
	}
	defer func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := tp.Shutdown(ctx); err != nil {
			log.Printf("Error shutting down tracer: %v", err)
		}
	}()

	// A dead pool at startup is a misconfiguration, not a condition to
	// serve through: fail fast.
	var st store.Store
	switch cfg.Database.Backend {
	case "memory":
		st = store.NewMemStore()
		log.Println("Using in-memory store")
	default:
		st, err = store.NewPostgres(cfg.Database.URL, cfg.Database.MaxOpenConns)
		if err != nil {
			log.Fatalf("Failed to connect to database: %v", err)
		}
		log.Println("Database connected")
	}
	defer st.Close()

	// The cache is an optimization, not the store: run uncached if Redis
	// is unreachable.
	var cache *redisclient.Client
	cacheTTL := time.Duration(cfg.Redis.CacheTTLSeconds) * time.Second
	cache, err = redisclient.NewClient(cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB, cacheTTL)
	if err != nil {
		log.Printf("Redis unavailable, running without booking view cache: %v", err)
		cache = nil
	} else {
		defer cache.Close()
		log.Println("Redis connected")
	}

	producer := broker.NewProducer(cfg.Kafka.Brokers, cfg.Kafka.TopicEvents)
	defer producer.Close()
	log.Println("Kafka producer initialized")

	eventPublisher := broker.NewEventPublisher(producer)

	// keep the interface value nil when Redis is down, not a typed nil
	var viewCache service.BookingViewCache
	if cache != nil {
		viewCache = cache
	}

	inventoryService := service.NewInventoryService(st, eventPublisher)
	roomService := service.NewRoomService(st, viewCache, eventPublisher)
	clientService := service.NewClientService(st, viewCache, eventPublisher)
	categoryService := service.NewCategoryService(st, eventPublisher)
	bookingService := service.NewBookingService(st, viewCache, eventPublisher)

	workerCtx, workerCancel := context.WithCancel(context.Background())
	defer workerCancel()

	var cacheWorker *worker.CacheWorker
	if cache != nil {
		consumer := broker.NewConsumer(cfg.Kafka.Brokers, cfg.Kafka.TopicEvents, cfg.Kafka.ConsumerGroup)
		cacheWorker = worker.NewCacheWorker(consumer, cache)
		go func() {
			if err := cacheWorker.Start(workerCtx); err != nil {
				log.Printf("Cache worker error: %v", err)
			}
		}()
	}

	if cfg.Server.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	handler := api.NewHandler(inventoryService, roomService, clientService, categoryService, bookingService, st)
	handler.SetupRoutes(router)

	srv := &http.Server{
		Addr:    fmt.Sprintf(":%s", cfg.Server.Port),
		Handler: router,
	}

	go func() {
		log.Printf("Starting HTTP server on port %s", cfg.Server.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Printf("Server forced to shutdown: %v", err)
	}

	workerCancel()
	if cacheWorker != nil {
		cacheWorker.Stop()
	}

	log.Println("Server exited")
}
