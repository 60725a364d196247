package request

import (
	"slotbook/internal/domain/schedule"
)

type AddAvailabilityRequest struct {
	Date       string `form:"date" binding:"required"`
	StartTime  string `form:"start_time" binding:"required"`
	EndTime    string `form:"end_time" binding:"required"`
	BreakStart string `form:"break_start"`
	BreakEnd   string `form:"break_end"`
	SlotLength int    `form:"slot_length" binding:"required"`
}

func (r *AddAvailabilityRequest) ToDomain() schedule.GenerateParams {
	return schedule.GenerateParams{
		Day:        r.Date,
		Start:      r.StartTime,
		End:        r.EndTime,
		BreakStart: r.BreakStart,
		BreakEnd:   r.BreakEnd,
		SlotLength: r.SlotLength,
	}
}
