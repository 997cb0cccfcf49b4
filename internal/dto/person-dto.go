package dto

import "github.com/aarondl/null/v8"

type CreatePersonDTO struct {
	Name string `json:"name" validate:"required"`
}

type AssignPositionDTO struct {
	PositionID string      `json:"position_id" validate:"required"`
	StartDate  null.String `json:"start_date" validate:"omitempty,iso_date"`
	EndDate    null.String `json:"end_date" validate:"omitempty,iso_date"`
}
