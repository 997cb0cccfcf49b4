package entities

import (
	"fmt"
	"strings"
	"time"

	"github.com/aarondl/null/v8"

	"officials-tracker/pkg/utils"
)

// Mention — упоминание персоны в СМИ или прямая речь. Принадлежит
// ровно одной персоне и хранится отдельным файлом в её подкаталоге.
type Mention struct {
	ID               string      `json:"id"`
	PersonID         string      `json:"person_id"`
	Date             string      `json:"date"`
	Source           string      `json:"source"`
	URL              null.String `json:"url"`
	Title            null.String `json:"title"`
	Text             string      `json:"text"`
	Tags             []string    `json:"tags"`
	CollectionMethod string      `json:"collection_method"`
	CollectedBy      string      `json:"collected_by"`
	CollectedAt      string      `json:"collected_at"`
	Approved         bool        `json:"approved"`
	ApprovedBy       null.String `json:"approved_by"`
	ApprovedAt       null.String `json:"approved_at"`
}

// Filename — детерминированное имя файла упоминания:
// "20240518_российская_газета_mention_person_001_20240518120000.json".
// Совпадение имён (та же персона, источник, дата и секунда) молча
// перезаписывает файл.
func (m *Mention) Filename() string {
	datePart := "nodate"
	if m.Date != "" {
		digits := []rune(strings.ReplaceAll(m.Date, "-", ""))
		if len(digits) > 8 {
			digits = digits[:8]
		}
		datePart = string(digits)
	}
	return fmt.Sprintf("%s_%s_%s.json", datePart, utils.SourceSlug(m.Source), m.ID)
}

// NewMentionID строит id из персоны и текущей секунды. Два упоминания
// одной персоны в одну секунду получают одинаковый id — при целевых
// объёмах (ручной ввод) это принятое упрощение.
func NewMentionID(personID string) string {
	return fmt.Sprintf("mention_%s_%s", personID, time.Now().Format("20060102150405"))
}
