package services

import (
	"context"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"officials-tracker/internal/dto"
	"officials-tracker/internal/entities"
	"officials-tracker/internal/repositories"
	apperrors "officials-tracker/pkg/errors"
)

type MentionService struct {
	mentionRepository repositories.MentionRepositoryInterface
	validator         *validator.Validate
	logger            *zap.Logger
	currentUser       string
}

func NewMentionService(mentionRepository repositories.MentionRepositoryInterface,
	validator *validator.Validate,
	logger *zap.Logger,
	currentUser string,
) *MentionService {
	return &MentionService{
		mentionRepository: mentionRepository,
		validator:         validator,
		logger:            logger,
		currentUser:       currentUser,
	}
}

func (s *MentionService) AddMention(ctx context.Context, payload dto.CreateMentionDTO) (*entities.Mention, error) {
	if err := s.validator.Struct(payload); err != nil {
		return nil, apperrors.NewInvalidInputError("некорректные данные упоминания: %v", err)
	}

	method := payload.CollectionMethod
	if method == "" {
		method = "manual"
	}
	tags := payload.Tags
	if tags == nil {
		tags = []string{}
	}

	mention := entities.Mention{
		ID:               entities.NewMentionID(payload.PersonID),
		PersonID:         payload.PersonID,
		Date:             payload.Date,
		Source:           payload.Source,
		URL:              payload.URL,
		Title:            payload.Title,
		Text:             payload.Text,
		Tags:             tags,
		CollectionMethod: method,
		CollectedBy:      s.currentUser,
		CollectedAt:      entities.NowTimestamp(),
		Approved:         true,
	}

	if err := s.mentionRepository.Save(ctx, mention); err != nil {
		s.logger.Error("Ошибка при сохранении упоминания",
			zap.String("person_id", mention.PersonID),
			zap.Error(err),
		)
		return nil, err
	}
	s.logger.Info("Упоминание сохранено",
		zap.String("id", mention.ID),
		zap.String("file", mention.Filename()),
	)
	return &mention, nil
}

func (s *MentionService) GetMentionsForPerson(ctx context.Context, personID string) ([]entities.Mention, error) {
	return s.mentionRepository.LoadForPerson(ctx, personID)
}

func (s *MentionService) GetAllMentions(ctx context.Context, limit int) ([]entities.Mention, error) {
	return s.mentionRepository.LoadAll(ctx, limit)
}

func (s *MentionService) FindMention(ctx context.Context, personID, mentionID string) (*entities.Mention, error) {
	return s.mentionRepository.GetByID(ctx, personID, mentionID)
}
