package routines

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"gorm.io/datatypes"
)

func TestRoutineDueOn(t *testing.T) {
	sunday := time.Date(2026, 8, 23, 9, 0, 0, 0, time.UTC)
	monday := sunday.AddDate(0, 0, 1)
	wednesday := sunday.AddDate(0, 0, 3)

	t.Run("empty days means every day", func(t *testing.T) {
		r := Routine{Days: datatypes.JSONSlice[int]{}}
		assert.True(t, r.DueOn(sunday))
		assert.True(t, r.DueOn(wednesday))
	})

	t.Run("nil days means every day", func(t *testing.T) {
		r := Routine{}
		assert.True(t, r.DueOn(monday))
	})

	t.Run("scheduled weekdays only", func(t *testing.T) {
		r := Routine{Days: datatypes.JSONSlice[int]{1, 3}} // Mon, Wed
		assert.True(t, r.DueOn(monday))
		assert.True(t, r.DueOn(wednesday))
		assert.False(t, r.DueOn(sunday))
	})

	t.Run("sunday is day zero", func(t *testing.T) {
		r := Routine{Days: datatypes.JSONSlice[int]{0}}
		assert.True(t, r.DueOn(sunday))
		assert.False(t, r.DueOn(monday))
	})
}

func TestRoutineCompletedOn(t *testing.T) {
	day := time.Date(2026, 8, 26, 22, 30, 0, 0, time.UTC)

	r := Routine{CompletedDates: datatypes.JSONSlice[string]{"2026-08-25", "2026-08-26"}}
	assert.True(t, r.CompletedOn(day))
	assert.True(t, r.CompletedOn(day.Add(-24*time.Hour)))
	assert.False(t, r.CompletedOn(day.Add(24*time.Hour)))

	empty := Routine{}
	assert.False(t, empty.CompletedOn(day))
}
