package entries

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func entryAt(t time.Time) Entry {
	return Entry{Type: TypeJournal, Timestamp: t}
}

func TestStreak(t *testing.T) {
	now := time.Date(2026, 8, 26, 10, 0, 0, 0, time.UTC) // Wednesday

	day := func(offset int, hour int) time.Time {
		return time.Date(2026, 8, 26+offset, hour, 0, 0, 0, time.UTC)
	}

	tests := []struct {
		name string
		list []Entry
		want int
	}{
		{
			name: "empty list",
			list: nil,
			want: 0,
		},
		{
			name: "single entry today",
			list: []Entry{entryAt(day(0, 8))},
			want: 1,
		},
		{
			name: "single entry yesterday still counts",
			list: []Entry{entryAt(day(-1, 8))},
			want: 1,
		},
		{
			name: "last entry two days ago breaks streak",
			list: []Entry{entryAt(day(-2, 8)), entryAt(day(-3, 8))},
			want: 0,
		},
		{
			name: "three consecutive days ending today",
			list: []Entry{entryAt(day(-2, 8)), entryAt(day(-1, 8)), entryAt(day(0, 8))},
			want: 3,
		},
		{
			name: "gap in the middle stops the walk",
			list: []Entry{entryAt(day(0, 8)), entryAt(day(-1, 8)), entryAt(day(-3, 8))},
			want: 2,
		},
		{
			name: "multiple entries per day collapse to one date",
			list: []Entry{entryAt(day(0, 7)), entryAt(day(0, 12)), entryAt(day(0, 22))},
			want: 1,
		},
		{
			name: "unsorted input",
			list: []Entry{entryAt(day(-1, 9)), entryAt(day(0, 8)), entryAt(day(-2, 23))},
			want: 3,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Streak(tt.list, now))
		})
	}
}

func TestStreakMealsAcrossThreeMornings(t *testing.T) {
	// Mon/Tue/Wed 08:00 meals evaluated Wed 10:00.
	list := []Entry{
		{Type: TypeMeal, Timestamp: time.Date(2026, 8, 24, 8, 0, 0, 0, time.UTC)},
		{Type: TypeMeal, Timestamp: time.Date(2026, 8, 25, 8, 0, 0, 0, time.UTC)},
		{Type: TypeMeal, Timestamp: time.Date(2026, 8, 26, 8, 0, 0, 0, time.UTC)},
	}
	now := time.Date(2026, 8, 26, 10, 0, 0, 0, time.UTC)

	assert.Equal(t, 3, Streak(list, now))
}
