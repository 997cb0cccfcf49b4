package entities

import "github.com/aarondl/null/v8"

// Department — министерство или ведомство. Ключом в запросах служит
// название, а не id: должности ссылаются на ведомство по имени.
type Department struct {
	ID            string      `json:"id"`
	Name          string      `json:"name"`
	Level         string      `json:"level"`
	IsActive      bool        `json:"is_active"`
	CreatedAt     string      `json:"created_at"`
	DeactivatedAt null.String `json:"deactivated_at"`
}

func NewDepartment(id, name, level string) Department {
	if level == "" {
		level = "federal"
	}
	return Department{
		ID:        id,
		Name:      name,
		Level:     level,
		IsActive:  true,
		CreatedAt: NowTimestamp(),
	}
}
