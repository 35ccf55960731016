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

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/segmentio/kafka-go"

	"github.com/thesaddamsyed/fitness-microservices/internal/ai"
	"github.com/thesaddamsyed/fitness-microservices/internal/config"
	"github.com/thesaddamsyed/fitness-microservices/internal/consumer"
	"github.com/thesaddamsyed/fitness-microservices/internal/persistence/postgres"
	"github.com/thesaddamsyed/fitness-microservices/internal/recommend"
)

func main() {
	cfg := config.Load()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pool, err := pgxpool.New(ctx, cfg.PostgresURL)
	if err != nil {
		log.Fatalf("failed to connect to postgres: %v", err)
	}
	defer pool.Close()

	client, err := ai.NewGeminiClient(ai.GeminiConfig{
		APIURL:  cfg.GeminiAPIURL,
		APIKey:  cfg.GeminiAPIKey,
		Timeout: cfg.GeminiTimeout,
	})
	if err != nil {
		log.Fatalf("failed to build gemini client: %v", err)
	}

	generator := recommend.NewGenerator(client)
	repo := postgres.NewRecommendationRepository(pool)
	handler := consumer.NewRecommendationHandler(generator, repo)

	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())
	mux.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	metricsSrv := &http.Server{Addr: cfg.MetricsAddress, Handler: mux}

	go func() {
		log.Printf("ai worker metrics listening on %s", cfg.MetricsAddress)
		if err := metricsSrv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Printf("metrics server error: %v", err)
		}
	}()

	var wg sync.WaitGroup
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	// One reader per worker; they share a consumer group so partitions are
	// balanced across them.
	for i := 0; i < cfg.WorkerCount; i++ {
		reader := kafka.NewReader(kafka.ReaderConfig{
			Brokers:         cfg.KafkaBrokers,
			GroupID:         cfg.ConsumerGroupID,
			Topic:           cfg.ActivityTopic,
			MinBytes:        1e3,
			MaxBytes:        10e6,
			CommitInterval:  time.Second,
			RetentionTime:   24 * time.Hour,
			ReadLagInterval: -1,
		})

		proc := consumer.NewProcessor(reader, handler)

		wg.Add(1)
		go func(worker int, r *kafka.Reader) {
			defer wg.Done()
			defer r.Close()

			log.Printf("ai worker %d started (topic=%s, group=%s)", worker, cfg.ActivityTopic, cfg.ConsumerGroupID)
			if err := proc.Run(ctx); err != nil && err != context.Canceled {
				log.Printf("ai worker %d stopped with error: %v", worker, err)
			}
		}(i, reader)
	}

	<-stop
	log.Println("ai worker shutdown requested")
	cancel()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()
	if err := metricsSrv.Shutdown(shutdownCtx); err != nil {
		log.Printf("metrics server shutdown error: %v", err)
	}

	wg.Wait()
}
