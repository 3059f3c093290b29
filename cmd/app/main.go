package main

import (
	"context"
	"os"

	"bookkeeper/internal/adapters/cli"
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
	log := logger.WithComponent("app")

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
		log.Debug().Msg("OPENAI_API_KEY not set, commentary disabled")
	}

	svc := app.NewAppService(db.NewStore(pool), agent, nil)

	root := cli.NewRootCommand(svc)
	if err := root.ExecuteContext(ctx); err != nil {
		log.Error().Err(err).Msg("command failed")
		os.Exit(1)
	}
}
