package schedule

import (
	"fmt"
	"time"

	"slotbook/internal/pkg/errs"
)

const (
	DayFormat   = "2006-01-02"
	ClockFormat = "15:04"
)

type SlotStatus string

const (
	StatusAvailable SlotStatus = "available"
	StatusHeld      SlotStatus = "held"
	StatusBooked    SlotStatus = "booked"
)

var (
	ErrInvalidDay        = errs.New("invalid day format")
	ErrInvalidClockTime  = errs.New("invalid clock time format")
	ErrInvalidSlotLength = errs.New("slot length must be positive")
)

// GenerateParams describes one working day to be split into bookable slots.
// BreakStart/BreakEnd are optional; both must be set for the break to apply.
type GenerateParams struct {
	Day        string
	Start      string
	End        string
	BreakStart string
	BreakEnd   string
	SlotLength int
}

// BuildRanges walks a cursor from Start to End in SlotLength-minute steps
// and returns the time-range labels ("HH:MM - HH:MM") of the slots that fit.
// A cursor inside [BreakStart, BreakEnd) jumps to BreakEnd without emitting,
// and a trailing interval shorter than SlotLength is never emitted.
// Window ordering is not validated: Start >= End simply yields no ranges.
func BuildRanges(p GenerateParams) ([]string, error) {
	if p.SlotLength <= 0 {
		return nil, ErrInvalidSlotLength
	}
	if _, err := time.Parse(DayFormat, p.Day); err != nil {
		return nil, errs.Mark(err, ErrInvalidDay)
	}

	start, err := parseClock(p.Day, p.Start)
	if err != nil {
		return nil, err
	}
	end, err := parseClock(p.Day, p.End)
	if err != nil {
		return nil, err
	}

	var breakStart, breakEnd time.Time
	hasBreak := p.BreakStart != "" && p.BreakEnd != ""
	if hasBreak {
		if breakStart, err = parseClock(p.Day, p.BreakStart); err != nil {
			return nil, err
		}
		if breakEnd, err = parseClock(p.Day, p.BreakEnd); err != nil {
			return nil, err
		}
	}

	length := time.Duration(p.SlotLength) * time.Minute

	var ranges []string
	cur := start
	for cur.Before(end) {
		if hasBreak && !cur.Before(breakStart) && cur.Before(breakEnd) {
			cur = breakEnd
			continue
		}
		if slotEnd := cur.Add(length); !slotEnd.After(end) {
			ranges = append(ranges, FormatRange(cur, slotEnd))
		}
		cur = cur.Add(length)
	}

	return ranges, nil
}

func FormatRange(start, end time.Time) string {
	return fmt.Sprintf("%s - %s", start.Format(ClockFormat), end.Format(ClockFormat))
}

func parseClock(day, hhmm string) (time.Time, error) {
	t, err := time.Parse(DayFormat+" "+ClockFormat, day+" "+hhmm)
	if err != nil {
		return time.Time{}, errs.Mark(err, ErrInvalidClockTime)
	}
	return t, nil
}
