package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/segmentio/kafka-go"

	"example.com/recommendation/internal/api"
	"example.com/recommendation/internal/auth"
	"example.com/recommendation/internal/catalog"
	"example.com/recommendation/internal/config"
	"example.com/recommendation/internal/consumer"
	"example.com/recommendation/internal/domain"
	httptransport "example.com/recommendation/internal/transport/http"
)

func main() {
	cfg := config.Load()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	source, store := buildSource(cfg)
	service := domain.NewService(source, domain.Options{
		MaxPerPattern:       cfg.MaxPerPattern,
		DisableTrendOverlay: cfg.DisableTrendOverlay,
	})

	var wg sync.WaitGroup
	if len(cfg.KafkaBrokers) > 0 {
		if store == nil {
			log.Printf("KAFKA_BROKERS set but catalog is not store-backed, consumer disabled")
		} else {
			startConsumers(ctx, &wg, cfg, store)
		}
	}

	handler := api.NewHandler(service)

	mux := http.NewServeMux()
	handler.RegisterRoutes(mux)
	mux.Handle("/metrics", promhttp.Handler())

	// Simple CORS middleware for local dev
	cors := func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Access-Control-Allow-Origin", "http://localhost:5173")
			w.Header().Set("Access-Control-Allow-Credentials", "true")
			w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")
			w.Header().Set("Access-Control-Allow-Methods", "GET,POST,OPTIONS")
			if r.Method == http.MethodOptions {
				w.WriteHeader(http.StatusNoContent)
				return
			}
			next.ServeHTTP(w, r)
		})
	}

	middleware := auth.NewMiddleware(auth.Config{Secret: cfg.JWTSecret, Issuer: cfg.JWTIssuer})

	// Basic request logger
	logger := func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			log.Printf("%s %s", r.Method, r.URL.Path)
			next.ServeHTTP(w, r)
		})
	}

	server := httptransport.NewServer(httptransport.ServerConfig{
		Address: cfg.HTTPAddress,
	}, cors(logger(middleware.Wrap(mux))))

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		log.Printf("recommendation service listening on %s", cfg.HTTPAddress)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("server error: %v", err)
		}
	}()

	<-stop
	log.Println("recommendation service shutting down")
	cancel()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Printf("graceful shutdown failed: %v", err)
	}

	wg.Wait()
}

// buildSource selects the catalog source. The second return is non-nil only
// when the catalog is store-backed and can accept consumer writes.
func buildSource(cfg config.Config) (domain.Source, *catalog.Store) {
	if cfg.CatalogURL != "" {
		log.Printf("using HTTP catalog source at %s (ttl %s)", cfg.CatalogURL, cfg.CatalogCacheTTL)
		return catalog.NewCached(catalog.NewHTTPSource(cfg.CatalogURL, cfg.HTTPTimeout), cfg.CatalogCacheTTL), nil
	}
	if cfg.CatalogFile != "" {
		log.Printf("using file catalog source %s (ttl %s)", cfg.CatalogFile, cfg.CatalogCacheTTL)
		return catalog.NewCached(catalog.NewFileSource(cfg.CatalogFile), cfg.CatalogCacheTTL), nil
	}
	log.Printf("CATALOG_URL and CATALOG_FILE not set, using seeded in-memory catalog")
	store := catalog.NewSeededStore()
	return store, store
}

// startConsumers launches one reader goroutine per configured topic, all
// writing into the shared store.
func startConsumers(ctx context.Context, wg *sync.WaitGroup, cfg config.Config, store *catalog.Store) {
	handler := consumer.NewCatalogHandler(store)

	for _, topic := range cfg.ConsumerTopics {
		reader := kafka.NewReader(kafka.ReaderConfig{
			Brokers:        cfg.KafkaBrokers,
			GroupID:        cfg.ConsumerGroup,
			Topic:          topic,
			MinBytes:       1e3,
			MaxBytes:       10e6,
			CommitInterval: time.Second,
		})
		proc := consumer.NewProcessor(reader, handler)

		wg.Add(1)
		go func(tp string, r *kafka.Reader) {
			defer wg.Done()
			defer r.Close()
			log.Printf("catalog consumer started (topic=%s)", tp)
			if err := proc.Run(ctx); err != nil && err != context.Canceled {
				log.Printf("consumer stopped with error (topic=%s): %v", tp, err)
			}
		}(topic, reader)
	}
}
