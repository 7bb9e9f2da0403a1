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

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"

	"github.com/odalivan/experience_storefront/internal/adapter/gateway/backendhttp"
	"github.com/odalivan/experience_storefront/internal/adapter/handler"
	"github.com/odalivan/experience_storefront/internal/adapter/repository/memstore"
	"github.com/odalivan/experience_storefront/internal/adapter/repository/redisstore"
	"github.com/odalivan/experience_storefront/internal/core/ports"
	"github.com/odalivan/experience_storefront/internal/core/services"
	"github.com/odalivan/experience_storefront/internal/platform/backend"
)

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}

	return fallback
}

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using OS environment variables.")
	}

	backendURL := getenv("BACKEND_API_URL", "http://localhost:8000/api")

	backendTimeout, err := time.ParseDuration(getenv("BACKEND_TIMEOUT", "10s"))
	if err != nil {
		log.Fatalf("Invalid BACKEND_TIMEOUT: %v", err)
	}

	checkoutTTL, err := time.ParseDuration(getenv("CHECKOUT_SESSION_TTL", "30m"))
	if err != nil {
		log.Fatalf("Invalid CHECKOUT_SESSION_TTL: %v", err)
	}

	backendCfg := backend.Config{
		BaseURL: backendURL,
		Timeout: backendTimeout,
	}

	httpClient := backend.NewHTTPClient(backendCfg)

	probeCtx, cancelProbe := context.WithTimeout(context.Background(), 30*time.Second)
	backend.WaitUntilReachable(probeCtx, httpClient, backendCfg)
	cancelProbe()

	gateway := backendhttp.New(backendURL, httpClient)

	sweepCtx, stopSweep := context.WithCancel(context.Background())
	defer stopSweep()

	var store ports.DraftStore

	if redisHost := os.Getenv("REDIS_HOST"); redisHost != "" {
		redisPort := getenv("REDIS_PORT", "6379")

		log.Printf("Connecting to Redis at %s:%s...", redisHost, redisPort)

		redisClient := redis.NewClient(&redis.Options{
			Addr: fmt.Sprintf("%s:%s", redisHost, redisPort),
			DB:   0,
		})

		if err := redisClient.Ping(context.Background()).Err(); err != nil {
			log.Fatalf("Failed to connect to Redis: %v", err)
		}
		log.Println("Redis connected successfully!")

		store = redisstore.NewDraftStore(redisClient, checkoutTTL)
	} else {
		log.Println("REDIS_HOST not set, keeping checkout sessions in memory.")

		memStore := memstore.NewDraftStore(checkoutTTL)

		go memStore.RunExpirySweep(sweepCtx)

		store = memStore
	}

	catalogService := services.NewCatalogService(gateway)

	catalogHandler := handler.NewCatalogHandler(catalogService)
	checkoutHandler := handler.NewCheckoutHandler(store, gateway, gateway)

	mux := http.NewServeMux()

	mux.HandleFunc("/health", handler.Health)

	mux.HandleFunc("/experiences", catalogHandler.ListExperiences)
	mux.HandleFunc("/experiences/", catalogHandler.GetExperience)

	mux.HandleFunc("/checkout", checkoutHandler.CreateDraft)
	mux.HandleFunc("/checkout/", checkoutHandler.Session)

	port := getenv("PORT", "8080")

	server := &http.Server{
		Addr:         ":" + port,
		Handler:      mux,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	go func() {
		log.Printf("Server starting on port :%s", port)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server startup failed: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	<-quit
	log.Println("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	log.Println("Server exiting")
}
