package services

import (
	"testing"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"officials-tracker/internal/repositories"
	"officials-tracker/pkg/customvalidator"
	"officials-tracker/pkg/database/jsonfile"
)

// testEnv — сервисы поверх настоящего хранилища во временном каталоге.
// Моков нет: слой тонкий, честное хранилище дешевле поддельного.
type testEnv struct {
	storage            *jsonfile.Store
	positionRepository repositories.PositionRepositoryInterface
	personRepository   repositories.PersonRepositoryInterface
	departmentRepo     repositories.DepartmentRepositoryInterface
	subdepartmentRepo  repositories.SubdepartmentRepositoryInterface
	mentionRepository  repositories.MentionRepositoryInterface
	validator          *validator.Validate
	logger             *zap.Logger
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	storage, err := jsonfile.New(t.TempDir(), 2*time.Second)
	require.NoError(t, err)

	v := validator.New()
	require.NoError(t, customvalidator.RegisterCustomValidations(v))

	logger := zap.NewNop()
	return &testEnv{
		storage:            storage,
		positionRepository: repositories.NewPositionRepository(storage),
		personRepository:   repositories.NewPersonRepository(storage),
		departmentRepo:     repositories.NewDepartmentRepository(storage),
		subdepartmentRepo:  repositories.NewSubdepartmentRepository(storage),
		mentionRepository:  repositories.NewMentionRepository(storage, logger),
		validator:          v,
		logger:             logger,
	}
}
