package utils

import (
	"testing"

	"github.com/aarondl/null/v8"
	"github.com/stretchr/testify/assert"
)

func TestCleanDate(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want null.String
	}{
		{"empty", "", null.String{}},
		{"whitespace only", "   ", null.String{}},
		{"question mark", "?", null.String{}},
		{"iso passthrough", "2020-01-15", null.StringFrom("2020-01-15")},
		{"iso with time tail", "2020-01-15 10:30", null.StringFrom("2020-01-15 10:30")},
		{"russian full date", "18 мая 2000", null.StringFrom("2000-05-18")},
		{"russian single digit day", "5 марта 2012", null.StringFrom("2012-03-05")},
		{"russian month and year", "июнь 2000 г.", null.StringFrom("2000-06-01")},
		{"year with suffix", "2008 г.", null.StringFrom("2008-01-01")},
		{"bare year", "1999", null.StringFrom("1999-01-01")},
		{"unparseable kept as is", "конец девяностых", null.StringFrom("конец девяностых")},
		{"trimmed", "  2020-01-15  ", null.StringFrom("2020-01-15")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CleanDate(tt.raw))
		})
	}
}
