package dto

import "github.com/aarondl/null/v8"

type CreatePositionDTO struct {
	Title         string      `json:"title" validate:"required"`
	Department    string      `json:"department" validate:"required"`
	Subdepartment null.String `json:"subdepartment"`
	Level         string      `json:"level" validate:"omitempty,oneof=federal regional municipal"`
}
