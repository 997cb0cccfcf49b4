package entities

import "github.com/aarondl/null/v8"

// Subdepartment — подразделение внутри ведомства. Уникален по паре
// (name, department_name): одинаково названные управления в разных
// ведомствах — разные записи, id сам по себе ключом не является.
type Subdepartment struct {
	ID             string      `json:"id"`
	Name           string      `json:"name"`
	DepartmentName string      `json:"department_name"`
	IsActive       bool        `json:"is_active"`
	CreatedAt      string      `json:"created_at"`
	DeactivatedAt  null.String `json:"deactivated_at"`
}

func NewSubdepartment(id, name, departmentName string) Subdepartment {
	return Subdepartment{
		ID:             id,
		Name:           name,
		DepartmentName: departmentName,
		IsActive:       true,
		CreatedAt:      NowTimestamp(),
	}
}
