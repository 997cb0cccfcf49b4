package entities

import "github.com/aarondl/null/v8"

// DefaultSubdepartment — корзина по умолчанию для руководящих
// должностей уровня ведомства, у которых нет своего подразделения.
const DefaultSubdepartment = "Руководство"

// Position — государственная должность, независимо от того, кто её
// занимает. Принадлежность к ведомству и подразделению денормализована
// именами: переименование ведомства не каскадируется на должности.
type Position struct {
	ID            string      `json:"id"`
	Title         string      `json:"title"`
	Department    string      `json:"department"`
	Subdepartment null.String `json:"subdepartment"`
	Level         string      `json:"level"`
	CreatedAt     string      `json:"created_at"`
	IsActive      bool        `json:"is_active"`
}

func NewPosition(id, title, department string, subdepartment null.String, level string) Position {
	if level == "" {
		level = "federal"
	}
	return Position{
		ID:            id,
		Title:         title,
		Department:    department,
		Subdepartment: subdepartment,
		Level:         level,
		CreatedAt:     NowTimestamp(),
		IsActive:      true,
	}
}
