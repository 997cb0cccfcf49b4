package utils

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/aarondl/null/v8"
)

var (
	isoDateRe  = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}`)
	yearRe     = regexp.MustCompile(`\d{4}`)
	onlyYearRe = regexp.MustCompile(`^\d{4}$`)
)

// Русские названия месяцев в родительном падеже, как они приходят
// из выгрузок ("18 мая 2000").
var monthsRu = map[string]string{
	"января": "01", "февраля": "02", "марта": "03", "апреля": "04",
	"мая": "05", "июня": "06", "июля": "07", "августа": "08",
	"сентября": "09", "октября": "10", "ноября": "11", "декабря": "12",
}

// CleanDate приводит дату из выгрузки к ISO-формату YYYY-MM-DD.
// Понимает "18 мая 2000", "июнь 2000 г.", "2008 г." и голый год.
// Пустое значение и "?" означают отсутствие даты. Нераспознанная
// строка возвращается как есть: лучше сохранить сырое значение,
// чем потерять его.
func CleanDate(raw string) null.String {
	s := strings.TrimSpace(raw)
	if s == "" || s == "?" {
		return null.String{}
	}

	if isoDateRe.MatchString(s) {
		return null.StringFrom(s)
	}

	lower := strings.ToLower(s)
	for monthRu, monthNum := range monthsRu {
		if !strings.Contains(lower, monthRu) {
			continue
		}
		parts := strings.Fields(s)
		day := "01"
		if len(parts) > 0 && isDigits(parts[0]) {
			day = parts[0]
			if len(day) == 1 {
				day = "0" + day
			}
		}
		year := "2000"
		if y := yearRe.FindString(s); y != "" {
			year = y
		}
		return null.StringFrom(fmt.Sprintf("%s-%s-%s", year, monthNum, day))
	}

	if strings.Contains(s, "г.") {
		if y := yearRe.FindString(s); y != "" {
			return null.StringFrom(y + "-01-01")
		}
	}

	if onlyYearRe.MatchString(s) {
		return null.StringFrom(s + "-01-01")
	}

	return null.StringFrom(s)
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
