package main

import (
	"context"
	"log"

	"github.com/abhishek-creditor/quiz-frontend/internal/bot"
	"github.com/abhishek-creditor/quiz-frontend/internal/client"
	"github.com/abhishek-creditor/quiz-frontend/internal/config"
	"github.com/abhishek-creditor/quiz-frontend/internal/service"
	"github.com/abhishek-creditor/quiz-frontend/internal/session"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

func setupLogger(env string) *zap.Logger {
	var logger *zap.Logger
	if env == "development" {
		logger, _ = zap.NewDevelopment()
	} else {
		logger, _ = zap.NewProduction()
	}
	return logger
}

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file found")
	}

	cfg, err := config.Init()
	if err != nil {
		log.Fatal("failed load config " + err.Error())
		return
	}

	logger := setupLogger(cfg.Env)

	api := client.NewQuizAPI(cfg.API, logger)
	sessions := session.NewStore()
	services := service.InitServices(api, sessions, logger)

	ctx, cancel := context.WithTimeout(context.Background(), cfg.App.Timeout)
	services.RefreshLeaderboard(ctx)
	cancel()

	handler, err := bot.NewTelegramAPI(cfg.BotToken, cfg.Env, services, sessions)
	if err != nil {
		logger.Fatal(err.Error())
		return
	}

	handler.Start()
}
