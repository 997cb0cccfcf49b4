package services

import (
	"context"

	"github.com/aarondl/null/v8"
	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"officials-tracker/internal/dto"
	"officials-tracker/internal/entities"
	"officials-tracker/internal/repositories"
	apperrors "officials-tracker/pkg/errors"
	"officials-tracker/pkg/utils"
)

type PersonService struct {
	personRepository repositories.PersonRepositoryInterface
	validator        *validator.Validate
	logger           *zap.Logger
}

func NewPersonService(personRepository repositories.PersonRepositoryInterface,
	validator *validator.Validate,
	logger *zap.Logger,
) *PersonService {
	return &PersonService{
		personRepository: personRepository,
		validator:        validator,
		logger:           logger,
	}
}

func (s *PersonService) GetPersons(ctx context.Context) ([]entities.Person, error) {
	return s.personRepository.LoadAll(ctx)
}

func (s *PersonService) FindPerson(ctx context.Context, id string) (*entities.Person, error) {
	return s.personRepository.GetByID(ctx, id)
}

func (s *PersonService) CreatePerson(ctx context.Context, payload dto.CreatePersonDTO) (*entities.Person, error) {
	if err := s.validator.Struct(payload); err != nil {
		return nil, apperrors.NewInvalidInputError("некорректные данные персоны: %v", err)
	}

	id, err := s.personRepository.NextID(ctx)
	if err != nil {
		return nil, err
	}

	person := entities.NewPerson(id, utils.NormalizeName(payload.Name))
	if err := s.personRepository.Add(ctx, person); err != nil {
		s.logger.Error("Ошибка при создании персоны", zap.Error(err))
		return nil, err
	}
	s.logger.Info("Персона создана", zap.String("id", person.ID), zap.String("name", person.Name))
	return &person, nil
}

// AssignPosition добавляет персоне назначение. Чтение и запись — две
// отдельные блокируемые операции: если между ними ту же персону изменит
// другая сессия, победит последняя запись. Для двух-трёх редакторов это
// принятое ограничение.
func (s *PersonService) AssignPosition(ctx context.Context, personID string, payload dto.AssignPositionDTO) error {
	if err := s.validator.Struct(payload); err != nil {
		return apperrors.NewInvalidInputError("некорректные данные назначения: %v", err)
	}

	person, err := s.personRepository.GetByID(ctx, personID)
	if err != nil {
		return err
	}

	person.AddAssignment(payload.PositionID, payload.StartDate, payload.EndDate)

	if err := s.personRepository.Update(ctx, *person); err != nil {
		s.logger.Error("Ошибка при назначении на должность",
			zap.String("person_id", personID),
			zap.String("position_id", payload.PositionID),
			zap.Error(err),
		)
		return err
	}
	s.logger.Info("Назначение добавлено",
		zap.String("person_id", personID),
		zap.String("position_id", payload.PositionID),
	)
	return nil
}

// ClosePosition закрывает текущие назначения персоны на должность:
// проставляет end_date и снимает is_current. Оба поля меняются вместе —
// порознь их состояние быстро расходится.
func (s *PersonService) ClosePosition(ctx context.Context, personID, positionID, endDate string) error {
	person, err := s.personRepository.GetByID(ctx, personID)
	if err != nil {
		return err
	}

	closed := 0
	for i := range person.Positions {
		if person.Positions[i].PositionID == positionID && person.Positions[i].IsCurrent {
			person.Positions[i].EndDate = null.StringFrom(endDate)
			person.Positions[i].IsCurrent = false
			closed++
		}
	}
	if closed == 0 {
		return apperrors.ErrNotFound
	}

	return s.personRepository.Update(ctx, *person)
}

// PersonsHoldingPosition — кто занимал или занимает должность.
func (s *PersonService) PersonsHoldingPosition(ctx context.Context, positionID string, currentOnly bool) ([]entities.Person, error) {
	return s.personRepository.GetByPosition(ctx, positionID, currentOnly)
}
