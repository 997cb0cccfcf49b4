package seeders

import (
	"context"
	"fmt"
	"log"

	"github.com/aarondl/null/v8"

	"officials-tracker/internal/entities"
	"officials-tracker/internal/repositories"
)

// SeedTestMention добавляет тестовое упоминание первой персоне в базе —
// быстрая проверка, что хранилище упоминаний работает.
func SeedTestMention(ctx context.Context,
	personRepo repositories.PersonRepositoryInterface,
	mentionRepo repositories.MentionRepositoryInterface,
) error {
	persons, err := personRepo.LoadAll(ctx)
	if err != nil {
		return err
	}
	if len(persons) == 0 {
		return fmt.Errorf("персоны не найдены, сначала импортируйте данные")
	}

	person := persons[0]
	log.Printf("▶️  Добавляем тестовое упоминание для: %s (%s)", person.Name, person.ID)

	mention := entities.Mention{
		ID:               entities.NewMentionID(person.ID),
		PersonID:         person.ID,
		Date:             entities.Today(),
		Source:           "Тестовый источник",
		URL:              null.StringFrom("https://example.com/test-article"),
		Title:            null.StringFrom("Тестовая статья о чиновнике"),
		Text:             "Это тестовое упоминание. Здесь должен быть текст статьи или цитата из новостей.",
		Tags:             []string{"тест", "пример"},
		CollectionMethod: "manual",
		CollectedBy:      "seed_script",
		CollectedAt:      entities.NowTimestamp(),
		Approved:         true,
	}

	if err := mentionRepo.Save(ctx, mention); err != nil {
		return err
	}

	mentions, err := mentionRepo.LoadForPerson(ctx, person.ID)
	if err != nil {
		return err
	}
	log.Printf("✅ Упоминание добавлено: %s (файл %s)", mention.ID, mention.Filename())
	log.Printf("📊 Всего упоминаний у %s: %d", person.Name, len(mentions))
	return nil
}
