package dto

import "github.com/aarondl/null/v8"

type CreateMentionDTO struct {
	PersonID         string      `json:"person_id" validate:"required"`
	Date             string      `json:"date" validate:"required,iso_date"`
	Source           string      `json:"source" validate:"required"`
	URL              null.String `json:"url"`
	Title            null.String `json:"title"`
	Text             string      `json:"text"`
	Tags             []string    `json:"tags"`
	CollectionMethod string      `json:"collection_method" validate:"omitempty,oneof=manual auto import"`
}
