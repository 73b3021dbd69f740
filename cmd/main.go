package main

import (
	"log"
	"net/http"
	"time"

	"github.com/Vovarama1992/go-utils/logger"

	"github.com/chatnova/chatnova/internal/ai"
	"github.com/chatnova/chatnova/internal/config"
	"github.com/chatnova/chatnova/internal/delivery"
	"github.com/chatnova/chatnova/internal/memory"
	"github.com/chatnova/chatnova/internal/notify"
	"github.com/chatnova/chatnova/internal/search"
	"github.com/chatnova/chatnova/internal/speech"
	"github.com/chatnova/chatnova/internal/telegram"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

func main() {

	// =========================================================================
	// ENV / CONFIG INIT
	// =========================================================================

	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	baseLogger, _ := zap.NewProduction()
	defer baseLogger.Sync()
	zl := logger.NewZapLogger(baseLogger.Sugar())

	// =========================================================================
	// CONVERSATION MEMORY
	// =========================================================================

	mem := memory.NewStore(cfg.HistoryLimit, cfg.SessionIdle)

	// =========================================================================
	// CLIENTS (AI / STT / SEARCH)
	// =========================================================================

	openAIClient := ai.NewOpenAIClient(cfg.OpenAIAPIKey)

	var searchClient search.Client
	if cfg.GoogleSearchAPIKey != "" && cfg.GoogleSearchCX != "" {
		searchClient = search.NewGoogleClient(cfg.GoogleSearchAPIKey, cfg.GoogleSearchCX)
	} else {
		log.Printf("[main] web search disabled: GOOGLE_SEARCH_API_KEY / GOOGLE_SEARCH_CX not set")
	}

	// =========================================================================
	// ERROR NOTIFICATION
	// =========================================================================

	errInfra := notify.NewInfra(cfg.AdminChatID)
	errService := notify.NewService(errInfra)

	// =========================================================================
	// DOMAIN SERVICES
	// =========================================================================

	aiService := ai.NewService(openAIClient, mem)

	speechService := speech.NewService(
		openAIClient, // Whisper
		speech.NewFFmpegConverter(),
	)

	// =========================================================================
	// TELEGRAM BOT
	// =========================================================================

	botApp := telegram.NewBotApp(
		aiService,
		speechService,
		searchClient,
		mem,
		errService,
		cfg.LogoPath,
	)

	if err := botApp.InitBot(cfg.TelegramBotToken); err != nil {
		log.Fatalf("failed to init telegram bot: %v", err)
	}

	errInfra.SetBot(botApp.GetBot())

	go botApp.Run()

	// =========================================================================
	// BACKGROUND JOBS
	// =========================================================================

	go func() {
		ticker := time.NewTicker(cfg.SweepInterval)
		defer ticker.Stop()

		for range ticker.C {
			if removed := mem.Sweep(); removed > 0 {
				log.Printf("[session-sweep] removed %d stale sessions", removed)
			}
		}
	}()

	// =========================================================================
	// HTTP ROUTER
	// =========================================================================

	r := chi.NewRouter()
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type"},
	}))

	delivery.RegisterRoutes(r, delivery.NewStatusHandler(mem, zl))

	// =========================================================================
	// START SERVER
	// =========================================================================

	addr := ":" + cfg.Port
	zl.Log(logger.LogEntry{
		Level:   "info",
		Message: "listening at " + addr,
		Service: "chatnova",
	})

	if err := http.ListenAndServe(addr, r); err != nil {
		log.Fatalf("server error: %v", err)
	}
}
