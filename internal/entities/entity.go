// Пакет entities — записи трекера чиновников в том виде, в котором они
// лежат в JSON-документах. Порядок полей в структурах фиксирован:
// повторное сохранение неизменённой коллекции даёт байт-в-байт тот же
// документ.
package entities

import "time"

// Метки времени created_at/collected_at хранятся строкой в ISO-формате
// с микросекундами.
const timestampLayout = "2006-01-02T15:04:05.000000"

// Дата событий (назначения, упоминания) — YYYY-MM-DD.
const DateLayout = "2006-01-02"

func NowTimestamp() string {
	return time.Now().Format(timestampLayout)
}

func Today() string {
	return time.Now().Format(DateLayout)
}
