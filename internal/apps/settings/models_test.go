package settings

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestProfileGoalHours(t *testing.T) {
	tests := []struct {
		name string
		goal int
		want int
	}{
		{"stored goal wins", 18, 18},
		{"zero falls back", 0, DefaultFastingGoal},
		{"negative falls back", -5, DefaultFastingGoal},
		{"one hour is kept", 1, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := Profile{FastingGoal: tt.goal}
			assert.Equal(t, tt.want, p.GoalHours())
		})
	}
}
