package services

import (
	"context"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"officials-tracker/internal/dto"
	"officials-tracker/internal/entities"
	"officials-tracker/internal/repositories"
	apperrors "officials-tracker/pkg/errors"
	"officials-tracker/pkg/utils"
)

type PositionService struct {
	positionRepository repositories.PositionRepositoryInterface
	validator          *validator.Validate
	logger             *zap.Logger
}

func NewPositionService(positionRepository repositories.PositionRepositoryInterface,
	validator *validator.Validate,
	logger *zap.Logger,
) *PositionService {
	return &PositionService{
		positionRepository: positionRepository,
		validator:          validator,
		logger:             logger,
	}
}

func (s *PositionService) GetPositions(ctx context.Context) ([]entities.Position, error) {
	return s.positionRepository.LoadAll(ctx)
}

func (s *PositionService) FindPosition(ctx context.Context, id string) (*entities.Position, error) {
	data, err := s.positionRepository.GetByID(ctx, id)
	if err != nil {
		if err != apperrors.ErrNotFound {
			s.logger.Error("Ошибка при поиске должности", zap.Error(err))
		}
		return nil, err
	}
	return data, nil
}

func (s *PositionService) CreatePosition(ctx context.Context, payload dto.CreatePositionDTO) (*entities.Position, error) {
	if err := s.validator.Struct(payload); err != nil {
		return nil, apperrors.NewInvalidInputError("некорректные данные должности: %v", err)
	}

	id, err := s.positionRepository.NextID(ctx)
	if err != nil {
		return nil, err
	}

	position := entities.NewPosition(
		id,
		utils.NormalizeName(payload.Title),
		utils.NormalizeName(payload.Department),
		payload.Subdepartment,
		payload.Level,
	)

	if err := s.positionRepository.Add(ctx, position); err != nil {
		s.logger.Error("Ошибка при создании должности", zap.Error(err))
		return nil, err
	}
	s.logger.Info("Должность создана", zap.String("id", position.ID), zap.String("title", position.Title))
	return &position, nil
}

func (s *PositionService) UpdatePosition(ctx context.Context, position entities.Position) error {
	if err := s.positionRepository.Update(ctx, position); err != nil {
		if err != apperrors.ErrNotFound {
			s.logger.Error("Ошибка при обновлении должности", zap.Error(err))
		}
		return err
	}
	return nil
}

// DeactivatePosition помечает должность упразднённой. Сама запись
// остаётся: на неё могут ссылаться старые назначения.
func (s *PositionService) DeactivatePosition(ctx context.Context, id string) error {
	position, err := s.positionRepository.GetByID(ctx, id)
	if err != nil {
		return err
	}
	position.IsActive = false
	return s.positionRepository.Update(ctx, *position)
}
