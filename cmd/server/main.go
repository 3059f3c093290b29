package main

import (
	"context"
	"net/http"
	"os"

	webAdapter "bookkeeper/internal/adapters/web"
	"bookkeeper/internal/ai"
	"bookkeeper/internal/app"
	"bookkeeper/internal/db"
	"bookkeeper/internal/logger"

	"github.com/joho/godotenv"
)

func main() {
	_ = godotenv.Load()
	if err := logger.Setup(logger.FromEnv()); err != nil {
		os.Exit(1)
	}
	log := logger.WithComponent("server")

	ctx := context.Background()
	pool, err := db.NewPool(ctx)
	if err != nil {
		log.Fatal().Err(err).Msg("database connection failed")
	}
	defer pool.Close()

	var agent ai.AgentService
	if apiKey := os.Getenv("OPENAI_API_KEY"); apiKey != "" {
		agent = ai.NewAgent(apiKey)
	} else {
		log.Warn().Msg("OPENAI_API_KEY not set, /api/commentary disabled")
	}

	svc := app.NewAppService(db.NewStore(pool), agent, nil)
	handler := webAdapter.NewHandler(svc)

	port := os.Getenv("SERVER_PORT")
	if port == "" {
		port = "8080"
	}

	log.Info().Str("port", port).Msg("server starting")
	if err := http.ListenAndServe(":"+port, handler); err != nil {
		log.Fatal().Err(err).Msg("server stopped")
	}
}
