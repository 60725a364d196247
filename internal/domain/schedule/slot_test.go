//go:build unit

package schedule_test

import (
	"strings"
	"testing"

	"slotbook/internal/domain/schedule"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func params(mutate func(*schedule.GenerateParams)) schedule.GenerateParams {
	p := schedule.GenerateParams{
		Day:        "2026-09-07",
		Start:      "09:00",
		End:        "17:00",
		SlotLength: 60,
	}
	if mutate != nil {
		mutate(&p)
	}
	return p
}

func TestBuildRanges(t *testing.T) {
	t.Run("full day without break emits floor((end-start)/len) slots", func(t *testing.T) {
		ranges, err := schedule.BuildRanges(params(nil))
		require.NoError(t, err)
		assert.Len(t, ranges, 8)
		assert.Equal(t, "09:00 - 10:00", ranges[0])
		assert.Equal(t, "16:00 - 17:00", ranges[7])
	})

	t.Run("break window is skipped entirely", func(t *testing.T) {
		ranges, err := schedule.BuildRanges(params(func(p *schedule.GenerateParams) {
			p.End = "12:00"
			p.BreakStart = "10:00"
			p.BreakEnd = "11:00"
		}))
		require.NoError(t, err)

		expected := []string{"09:00 - 10:00", "11:00 - 12:00"}
		if diff := cmp.Diff(expected, ranges); diff != "" {
			t.Errorf("ranges mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("no emitted slot overlaps the break", func(t *testing.T) {
		ranges, err := schedule.BuildRanges(params(func(p *schedule.GenerateParams) {
			p.BreakStart = "12:30"
			p.BreakEnd = "13:30"
			p.SlotLength = 30
		}))
		require.NoError(t, err)

		for _, r := range ranges {
			start := strings.SplitN(r, " - ", 2)[0]
			assert.False(t, start >= "12:30" && start < "13:30",
				"slot %q starts inside the break window", r)
		}
	})

	t.Run("trailing partial interval is dropped", func(t *testing.T) {
		ranges, err := schedule.BuildRanges(params(func(p *schedule.GenerateParams) {
			p.End = "10:30"
		}))
		require.NoError(t, err)
		assert.Equal(t, []string{"09:00 - 10:00"}, ranges)
	})

	t.Run("break not aligned to the grid resumes at break end", func(t *testing.T) {
		ranges, err := schedule.BuildRanges(params(func(p *schedule.GenerateParams) {
			p.End = "12:00"
			p.BreakStart = "09:30"
			p.BreakEnd = "10:15"
		}))
		require.NoError(t, err)
		// 09:00 slot starts before the break so it is emitted as-is; the
		// cursor lands in the break at 10:00 and resumes at 10:15.
		assert.Equal(t, []string{"09:00 - 10:00", "10:15 - 11:15"}, ranges)
	})

	t.Run("inverted window emits nothing", func(t *testing.T) {
		ranges, err := schedule.BuildRanges(params(func(p *schedule.GenerateParams) {
			p.Start = "17:00"
			p.End = "09:00"
		}))
		require.NoError(t, err)
		assert.Empty(t, ranges)
	})

	t.Run("deterministic for identical input", func(t *testing.T) {
		first, err := schedule.BuildRanges(params(nil))
		require.NoError(t, err)
		second, err := schedule.BuildRanges(params(nil))
		require.NoError(t, err)
		assert.Equal(t, first, second)
	})
}

func TestBuildRangesErrors(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*schedule.GenerateParams)
		errIs  error
	}{
		{
			name:   "zero slot length",
			mutate: func(p *schedule.GenerateParams) { p.SlotLength = 0 },
			errIs:  schedule.ErrInvalidSlotLength,
		},
		{
			name:   "negative slot length",
			mutate: func(p *schedule.GenerateParams) { p.SlotLength = -15 },
			errIs:  schedule.ErrInvalidSlotLength,
		},
		{
			name:   "malformed day",
			mutate: func(p *schedule.GenerateParams) { p.Day = "07/09/2026" },
			errIs:  schedule.ErrInvalidDay,
		},
		{
			name:   "malformed start time",
			mutate: func(p *schedule.GenerateParams) { p.Start = "9am" },
			errIs:  schedule.ErrInvalidClockTime,
		},
		{
			name:   "malformed break end",
			mutate: func(p *schedule.GenerateParams) { p.BreakStart = "10:00"; p.BreakEnd = "eleven" },
			errIs:  schedule.ErrInvalidClockTime,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := schedule.BuildRanges(params(tc.mutate))
			require.ErrorIs(t, err, tc.errIs)
		})
	}
}
