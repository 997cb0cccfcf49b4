package entities

import (
	"testing"

	"github.com/aarondl/null/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPerson_AddAssignment(t *testing.T) {
	person := NewPerson("person_001", "Иванов Иван")

	person.AddAssignment("pos_001", null.StringFrom("2015-05-01"), null.StringFrom("2019-12-31"))
	person.AddAssignment("pos_002", null.StringFrom("2020-01-01"), null.String{})

	require.Len(t, person.Positions, 2)
	assert.False(t, person.Positions[0].IsCurrent, "Закрытый период — не текущая должность")
	assert.True(t, person.Positions[1].IsCurrent, "Открытый период — текущая должность")
}

func TestPerson_CurrentPosition(t *testing.T) {
	t.Run("no assignments", func(t *testing.T) {
		person := NewPerson("person_001", "Иванов")
		assert.Nil(t, person.CurrentPosition())
	})

	t.Run("all closed", func(t *testing.T) {
		person := NewPerson("person_001", "Иванов")
		person.AddAssignment("pos_001", null.StringFrom("2015-05-01"), null.StringFrom("2019-12-31"))
		assert.Nil(t, person.CurrentPosition())
	})

	t.Run("first current wins", func(t *testing.T) {
		// Совместитель: две открытые должности одновременно.
		person := NewPerson("person_001", "Иванов")
		person.AddAssignment("pos_001", null.StringFrom("2018-01-01"), null.String{})
		person.AddAssignment("pos_002", null.StringFrom("2020-01-01"), null.String{})

		current := person.CurrentPosition()
		require.NotNil(t, current)
		assert.Equal(t, "pos_001", current.PositionID)
	})

	t.Run("skips closed before current", func(t *testing.T) {
		person := NewPerson("person_001", "Иванов")
		person.AddAssignment("pos_001", null.StringFrom("2015-05-01"), null.StringFrom("2019-12-31"))
		person.AddAssignment("pos_002", null.StringFrom("2020-01-01"), null.String{})

		current := person.CurrentPosition()
		require.NotNil(t, current)
		assert.Equal(t, "pos_002", current.PositionID)
	})
}
