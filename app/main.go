// Файл: main.go

package main

import (
	"context"
	"flag"
	"fmt"
	"log"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"officials-tracker/internal/repositories"
	"officials-tracker/internal/services"
	"officials-tracker/pkg/config"
	"officials-tracker/pkg/customvalidator"
	"officials-tracker/pkg/database/jsonfile"
	applogger "officials-tracker/pkg/logger"
)

func main() {
	var (
		importCSV   = flag.String("import-csv", "", "импорт реестра из CSV-файла")
		importExcel = flag.String("import-excel", "", "импорт реестра из Excel-файла")
		mentionsFor = flag.String("mentions", "", "показать упоминания персоны по id")
	)
	flag.Parse()

	cfg := config.New()
	logger := applogger.NewLogger()
	defer logger.Sync()

	v := validator.New()
	if err := customvalidator.RegisterCustomValidations(v); err != nil {
		logger.Fatal("Ошибка регистрации кастомных правил валидации", zap.Error(err))
	}

	storage, err := jsonfile.New(cfg.Storage.BasePath, cfg.Storage.LockTimeout)
	if err != nil {
		log.Fatalf("Не удалось открыть хранилище: %v", err)
	}

	positionRepo := repositories.NewPositionRepository(storage)
	personRepo := repositories.NewPersonRepository(storage)
	departmentRepo := repositories.NewDepartmentRepository(storage)
	subdepartmentRepo := repositories.NewSubdepartmentRepository(storage)
	mentionRepo := repositories.NewMentionRepository(storage, logger)

	mentionService := services.NewMentionService(mentionRepo, v, logger, cfg.Tracker.CurrentUser)
	dashboardService := services.NewDashboardService(positionRepo, personRepo, mentionRepo, logger)
	importService := services.NewOfficialsImportService(
		positionRepo, personRepo, departmentRepo, subdepartmentRepo, logger,
	)

	ctx := context.Background()

	switch {
	case *importCSV != "":
		summary, err := importService.ImportCSV(ctx, *importCSV)
		if err != nil {
			logger.Fatal("Импорт не удался", zap.Error(err))
		}
		printSummary(summary)

	case *importExcel != "":
		summary, err := importService.ImportExcel(ctx, *importExcel)
		if err != nil {
			logger.Fatal("Импорт не удался", zap.Error(err))
		}
		printSummary(summary)

	case *mentionsFor != "":
		mentions, err := mentionService.GetMentionsForPerson(ctx, *mentionsFor)
		if err != nil {
			logger.Fatal("Не удалось загрузить упоминания", zap.Error(err))
		}
		for _, m := range mentions {
			fmt.Printf("%s  %-20s  %s\n", m.Date, m.Source, m.Title.String)
		}
		fmt.Printf("Всего упоминаний: %d\n", len(mentions))

	// Без аргументов — сводка по базе.
	default:
		stats, err := dashboardService.GetStats(ctx)
		if err != nil {
			logger.Fatal("Не удалось собрать статистику", zap.Error(err))
		}
		fmt.Printf("Должностей:            %d (активных: %d)\n", stats.TotalPositions, stats.ActivePositions)
		fmt.Printf("Персон:                %d\n", stats.TotalPersons)
		fmt.Printf("Действующих чиновников: %d\n", stats.CurrentOfficials)
		fmt.Printf("Упоминаний:            %d\n", stats.TotalMentions)
	}
}

func printSummary(summary *services.ImportSummary) {
	fmt.Println("Импорт завершён!")
	fmt.Printf("   Ведомств:       %d\n", summary.Departments)
	fmt.Printf("   Подразделений:  %d\n", summary.Subdepartments)
	fmt.Printf("   Должностей:     %d\n", summary.Positions)
	fmt.Printf("   Персон:         %d\n", summary.Persons)
}
