package services

import (
	"context"

	"go.uber.org/zap"

	"officials-tracker/internal/repositories"
	"officials-tracker/pkg/types"
)

type DashboardService struct {
	positionRepository repositories.PositionRepositoryInterface
	personRepository   repositories.PersonRepositoryInterface
	mentionRepository  repositories.MentionRepositoryInterface
	logger             *zap.Logger
}

func NewDashboardService(positionRepository repositories.PositionRepositoryInterface,
	personRepository repositories.PersonRepositoryInterface,
	mentionRepository repositories.MentionRepositoryInterface,
	logger *zap.Logger,
) *DashboardService {
	return &DashboardService{
		positionRepository: positionRepository,
		personRepository:   personRepository,
		mentionRepository:  mentionRepository,
		logger:             logger,
	}
}

// GetStats — сводка по базе: должности и персоны читаются целиком,
// упоминания считаются по файлам без разбора. Чистое чтение; на пустых
// коллекциях возвращаются нули.
func (s *DashboardService) GetStats(ctx context.Context) (*types.TrackerStats, error) {
	positions, err := s.positionRepository.LoadAll(ctx)
	if err != nil {
		return nil, err
	}
	persons, err := s.personRepository.LoadAll(ctx)
	if err != nil {
		return nil, err
	}
	totalMentions, err := s.mentionRepository.CountAll()
	if err != nil {
		return nil, err
	}

	stats := &types.TrackerStats{
		TotalPositions: len(positions),
		TotalPersons:   len(persons),
		TotalMentions:  totalMentions,
	}
	for _, p := range positions {
		if p.IsActive {
			stats.ActivePositions++
		}
	}
	for i := range persons {
		if persons[i].CurrentPosition() != nil {
			stats.CurrentOfficials++
		}
	}
	return stats, nil
}
