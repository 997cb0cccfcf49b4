package utils

import "strings"

// NormalizeName приводит имя-ключ к каноническому виду.
// Названия ведомств и подразделений сравниваются по имени, а не по id,
// поэтому вся нормализация собрана здесь, а не размазана по репозиториям.
func NormalizeName(name string) string {
	return strings.Join(strings.Fields(name), " ")
}

// SameName сравнивает два имени-ключа после нормализации.
func SameName(a, b string) bool {
	return NormalizeName(a) == NormalizeName(b)
}

// SourceSlug строит часть имени файла упоминания из названия источника.
// "Российская Газета" -> "российская_газета"
// Пробелы заменяются подчёркиванием, берутся первые 20 символов (рун),
// всё в нижнем регистре.
func SourceSlug(source string) string {
	slug := strings.ReplaceAll(source, " ", "_")
	runes := []rune(slug)
	if len(runes) > 20 {
		runes = runes[:20]
	}
	return strings.ToLower(string(runes))
}
