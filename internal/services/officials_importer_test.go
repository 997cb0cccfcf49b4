package services

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/aarondl/null/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const importFixture = `Реестр должностных лиц,,,,,
Ведомство,Подразделение,Должность,ФИО,Дата начала,Дата окончания
Министерство финансов,,Министр,Иванов Иван,2020-01-01,
,Правовое управление,Начальник управления,Петров Пётр,2015-03-01,2019-12-31
,,Начальник управления,Сидоров Сидор,18 мая 2020,?
,,Министр,Козлов Козьма,2010-01-01,2019-12-31
`

func newImportService(t *testing.T) (*OfficialsImportService, *testEnv) {
	t.Helper()
	env := newTestEnv(t)
	service := NewOfficialsImportService(
		env.positionRepository,
		env.personRepository,
		env.departmentRepo,
		env.subdepartmentRepo,
		env.logger,
	)
	return service, env
}

func TestOfficialsImportService_ImportCSV(t *testing.T) {
	service, env := newImportService(t)
	ctx := context.Background()

	path := filepath.Join(t.TempDir(), "registry.csv")
	require.NoError(t, os.WriteFile(path, []byte(importFixture), 0o644))

	summary, err := service.ImportCSV(ctx, path)
	require.NoError(t, err)

	assert.Equal(t, 1, summary.Departments)
	assert.Equal(t, 2, summary.Subdepartments)
	assert.Equal(t, 3, summary.Positions, "Повторная должность не дублируется")
	assert.Equal(t, 4, summary.Persons)

	positions, err := env.positionRepository.LoadAll(ctx)
	require.NoError(t, err)
	require.Len(t, positions, 3)

	// Ведомство протягивается вниз, пустое подразделение означает
	// руководство.
	assert.Equal(t, "Министерство финансов", positions[0].Department)
	assert.Equal(t, null.StringFrom("Руководство"), positions[0].Subdepartment)
	assert.Equal(t, "Министерство финансов", positions[1].Department)
	assert.Equal(t, null.StringFrom("Правовое управление"), positions[1].Subdepartment)
	assert.Equal(t, null.StringFrom("Руководство"), positions[2].Subdepartment,
		"Та же должность в руководстве — отдельная запись")

	persons, err := env.personRepository.LoadAll(ctx)
	require.NoError(t, err)
	require.Len(t, persons, 4)

	t.Run("open assignment is current", func(t *testing.T) {
		ivanov := persons[0]
		require.Len(t, ivanov.Positions, 1)
		assert.True(t, ivanov.Positions[0].IsCurrent)
		assert.Equal(t, "pos_001", ivanov.Positions[0].PositionID)
	})

	t.Run("dated end closes assignment", func(t *testing.T) {
		petrov := persons[1]
		require.Len(t, petrov.Positions, 1)
		assert.False(t, petrov.Positions[0].IsCurrent)
		assert.Equal(t, null.StringFrom("2019-12-31"), petrov.Positions[0].EndDate)
	})

	t.Run("question mark means gone with unknown date", func(t *testing.T) {
		sidorov := persons[2]
		require.Len(t, sidorov.Positions, 1)
		assert.False(t, sidorov.Positions[0].IsCurrent)
		assert.False(t, sidorov.Positions[0].EndDate.Valid)
		assert.Equal(t, null.StringFrom("2020-05-18"), sidorov.Positions[0].StartDate,
			"Русская дата начала приводится к ISO")
	})

	t.Run("duplicate position reused", func(t *testing.T) {
		kozlov := persons[3]
		require.Len(t, kozlov.Positions, 1)
		assert.Equal(t, "pos_001", kozlov.Positions[0].PositionID)
	})

	t.Run("org units derived sorted", func(t *testing.T) {
		departments, err := env.departmentRepo.LoadAll(ctx)
		require.NoError(t, err)
		require.Len(t, departments, 1)
		assert.Equal(t, "dept_001", departments[0].ID)
		assert.Equal(t, "Министерство финансов", departments[0].Name)

		subdepartments, err := env.subdepartmentRepo.LoadAll(ctx)
		require.NoError(t, err)
		require.Len(t, subdepartments, 2)
		assert.Equal(t, "Правовое управление", subdepartments[0].Name)
		assert.Equal(t, "Руководство", subdepartments[1].Name)
	})
}

func TestOfficialsImportService_ImportCSV_MissingFile(t *testing.T) {
	service, _ := newImportService(t)

	_, err := service.ImportCSV(context.Background(), filepath.Join(t.TempDir(), "nope.csv"))
	assert.Error(t, err)
}
