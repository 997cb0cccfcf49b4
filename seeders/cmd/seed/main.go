package main

import (
	"context"
	"flag"
	"log"

	"officials-tracker/internal/repositories"
	"officials-tracker/pkg/config"
	"officials-tracker/pkg/database/jsonfile"
	applogger "officials-tracker/pkg/logger"
	"officials-tracker/seeders"
)

func main() {
	runMention := flag.Bool("mention", false, "Добавить тестовое упоминание первой персоне")
	flag.Parse()

	if !*runMention {
		log.Println("❌ Не выбран ни один сидер для запуска.")
		log.Println("")
		log.Println("Доступные флаги:")
		flag.PrintDefaults()
		return
	}

	cfg := config.New()
	logger := applogger.NewLogger()
	defer logger.Sync()

	storage, err := jsonfile.New(cfg.Storage.BasePath, cfg.Storage.LockTimeout)
	if err != nil {
		log.Fatalf("❌ Не удалось открыть хранилище: %v", err)
	}

	personRepo := repositories.NewPersonRepository(storage)
	mentionRepo := repositories.NewMentionRepository(storage, logger)

	if err := seeders.SeedTestMention(context.Background(), personRepo, mentionRepo); err != nil {
		log.Fatalf("❌ Ошибка сидера упоминаний: %v", err)
	}
}
