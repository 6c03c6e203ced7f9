package main

import (
	"context"
	"database/sql"
	"log"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/joho/godotenv"
	_ "github.com/lib/pq"

	"github.com/Vovarama1992/rcs-story-bridge/internal/ai"
	"github.com/Vovarama1992/rcs-story-bridge/internal/config"
	"github.com/Vovarama1992/rcs-story-bridge/internal/relay"
	"github.com/Vovarama1992/rcs-story-bridge/internal/vonage"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config error: %v", err)
	}

	// --- DB (optional receipt sink) ---
	var receipts relay.ReceiptStore
	if cfg.DatabaseURL != "" {
		db, err := sql.Open("postgres", cfg.DatabaseURL)
		if err != nil {
			log.Fatalf("db open error: %v", err)
		}
		defer db.Close()

		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := db.PingContext(ctx); err != nil {
			log.Fatalf("db ping error: %v", err)
		}

		receipts, err = relay.NewReceiptStore(db)
		if err != nil {
			log.Fatalf("db migrate error: %v", err)
		}
	}

	// --- Vonage client ---
	tokens, err := vonage.NewTokenSource(cfg.VonageApplicationID, cfg.VonagePrivateKeyPath)
	if err != nil {
		log.Fatalf("vonage key error: %v", err)
	}
	sender := vonage.NewClient(cfg.VonageAPIURL, tokens)

	// --- Router ---
	r := chi.NewRouter()
	r.Use(relay.Recover)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Authorization", "Content-Type"},
	}))

	// --- Relay module wiring ---
	aiClient := ai.NewOpenAIClient(cfg.OpenAIAPIKey, cfg.OpenAIModel)
	generator := relay.NewStoryGenerator(aiClient)
	relayService := relay.NewService(generator, sender, receipts, cfg.ToNumber, cfg.RCSSenderID)
	relayHandler := relay.NewHandler(relayService)

	verify := relay.VerifySignature(cfg.VonageSignatureSecret, cfg.VonageAPIKey)
	relay.RegisterRoutes(r, relayHandler, verify)

	// --- health ---
	r.Get("/ping", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("pong"))
	})

	log.Printf("listening on :%s", cfg.Port)
	if err := http.ListenAndServe(":"+cfg.Port, r); err != nil {
		log.Fatalf("server error: %v", err)
	}
}
