package scheduler

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildDailySpec(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"03:30", "30 3 * * *"},
		{"00:00", "0 0 * * *"},
		{"23:59", "59 23 * * *"},
	}
	for _, tt := range tests {
		got, err := buildDailySpec(tt.in)
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, got)
	}
}

func TestBuildDailySpecRejectsMalformedInput(t *testing.T) {
	for _, in := range []string{"", "330", "24:00", "12:60", "ab:cd", "12:30:00", "-1:30"} {
		_, err := buildDailySpec(in)
		assert.Error(t, err, in)
	}
}
