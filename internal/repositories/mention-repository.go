package repositories

import (
	"context"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"go.uber.org/zap"

	"officials-tracker/internal/entities"
	"officials-tracker/pkg/database/jsonfile"
	apperrors "officials-tracker/pkg/errors"
)

// Упоминания не лежат в общей коллекции: у каждой персоны свой
// подкаталог data/mentions/<person_id>/, по файлу на упоминание.
// Так запись нового упоминания не переписывает чужие данные и не
// конкурирует за блокировку с другими персонами.
type MentionRepositoryInterface interface {
	Save(ctx context.Context, mention entities.Mention) error
	LoadForPerson(ctx context.Context, personID string) ([]entities.Mention, error)
	GetByID(ctx context.Context, personID, mentionID string) (*entities.Mention, error)
	LoadAll(ctx context.Context, limit int) ([]entities.Mention, error)
	CountAll() (int, error)
}

type MentionRepository struct {
	storage *jsonfile.Store
	logger  *zap.Logger
}

func NewMentionRepository(storage *jsonfile.Store, logger *zap.Logger) MentionRepositoryInterface {
	return &MentionRepository{
		storage: storage,
		logger:  logger,
	}
}

func mentionResource(personID string) string {
	return "mentions_" + personID
}

// Save пишет упоминание отдельным файлом под блокировкой поддерева
// персоны. Одинаковое имя файла молча перезаписывается.
func (r *MentionRepository) Save(ctx context.Context, mention entities.Mention) error {
	relPath := filepath.Join("mentions", mention.PersonID, mention.Filename())
	return r.storage.WriteDocument(ctx, mentionResource(mention.PersonID), relPath, mention)
}

// LoadForPerson возвращает упоминания персоны, новые первыми (сортировка
// по ISO-дате строкой, упоминания без даты — в конце). Повреждённый файл
// логируется и пропускается: частичный результат лучше полного отказа.
func (r *MentionRepository) LoadForPerson(ctx context.Context, personID string) ([]entities.Mention, error) {
	personDir := filepath.Join(r.storage.MentionsPath(), personID)

	entries, err := os.ReadDir(personDir)
	if os.IsNotExist(err) {
		return []entities.Mention{}, nil
	}
	if err != nil {
		return nil, err
	}

	mentions := make([]entities.Mention, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".json") {
			continue
		}
		path := filepath.Join(personDir, entry.Name())

		var mention entities.Mention
		if err := r.storage.ReadFile(path, &mention); err != nil {
			r.logger.Warn("Не удалось прочитать упоминание, файл пропущен",
				zap.String("file", path),
				zap.Error(err),
			)
			continue
		}
		if mention.Tags == nil {
			mention.Tags = []string{}
		}
		mentions = append(mentions, mention)
	}

	sortMentions(mentions)
	return mentions, nil
}

func (r *MentionRepository) GetByID(ctx context.Context, personID, mentionID string) (*entities.Mention, error) {
	mentions, err := r.LoadForPerson(ctx, personID)
	if err != nil {
		return nil, err
	}
	for i := range mentions {
		if mentions[i].ID == mentionID {
			return &mentions[i], nil
		}
	}
	return nil, apperrors.ErrNotFound
}

// LoadAll собирает упоминания по всем персонам. Стоимость линейна от
// общего числа упоминаний — для одного ведомства это приемлемо.
// limit <= 0 означает "без ограничения".
func (r *MentionRepository) LoadAll(ctx context.Context, limit int) ([]entities.Mention, error) {
	dirs, err := os.ReadDir(r.storage.MentionsPath())
	if os.IsNotExist(err) {
		return []entities.Mention{}, nil
	}
	if err != nil {
		return nil, err
	}

	allMentions := make([]entities.Mention, 0)
	for _, dir := range dirs {
		if !dir.IsDir() {
			continue
		}
		mentions, err := r.LoadForPerson(ctx, dir.Name())
		if err != nil {
			return nil, err
		}
		allMentions = append(allMentions, mentions...)
	}

	sortMentions(allMentions)

	if limit > 0 && len(allMentions) > limit {
		return allMentions[:limit], nil
	}
	return allMentions, nil
}

// CountAll считает файлы упоминаний без разбора содержимого —
// для статистики этого достаточно.
func (r *MentionRepository) CountAll() (int, error) {
	dirs, err := os.ReadDir(r.storage.MentionsPath())
	if os.IsNotExist(err) {
		return 0, nil
	}
	if err != nil {
		return 0, err
	}

	total := 0
	for _, dir := range dirs {
		if !dir.IsDir() {
			continue
		}
		files, err := os.ReadDir(filepath.Join(r.storage.MentionsPath(), dir.Name()))
		if err != nil {
			continue
		}
		for _, f := range files {
			if !f.IsDir() && strings.HasSuffix(f.Name(), ".json") {
				total++
			}
		}
	}
	return total, nil
}

func sortMentions(mentions []entities.Mention) {
	sort.SliceStable(mentions, func(i, j int) bool {
		return mentions[i].Date > mentions[j].Date
	})
}
