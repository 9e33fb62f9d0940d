package marketmodels

import (
	"fmt"
	"time"
)

type TimespanUnit string

const (
	TimespanUnitSecond  TimespanUnit = "second"
	TimespanUnitMinute  TimespanUnit = "minute"
	TimespanUnitHour    TimespanUnit = "hour"
	TimespanUnitDay     TimespanUnit = "day"
	TimespanUnitWeek    TimespanUnit = "week"
	TimespanUnitMonth   TimespanUnit = "month"
	TimespanUnitQuarter TimespanUnit = "quarter"
	TimespanUnitYear    TimespanUnit = "year"
)

func (u TimespanUnit) Validate() error {
	switch u {
	case TimespanUnitSecond, TimespanUnitMinute, TimespanUnitHour, TimespanUnitDay,
		TimespanUnitWeek, TimespanUnitMonth, TimespanUnitQuarter, TimespanUnitYear:
		return nil
	default:
		return fmt.Errorf("TimespanUnit.Validate: invalid timespan unit: %s", string(u))
	}
}

// Timespan is an aggregate window size, e.g. {15, minute}.
type Timespan struct {
	Multiplier int
	Unit       TimespanUnit
}

func (t Timespan) Validate() error {
	if t.Multiplier <= 0 {
		return fmt.Errorf("Timespan.Validate: multiplier must be positive, got %d", t.Multiplier)
	}

	return t.Unit.Validate()
}

func NewTimespan(period time.Duration) (Timespan, error) {
	switch {
	case period < time.Minute:
		if period%time.Second != 0 {
			return Timespan{}, fmt.Errorf("NewTimespan: unsupported period: %v", period)
		}
		return Timespan{Multiplier: int(period / time.Second), Unit: TimespanUnitSecond}, nil
	case period < time.Hour:
		if period%time.Minute != 0 {
			return Timespan{}, fmt.Errorf("NewTimespan: unsupported period: %v", period)
		}
		return Timespan{Multiplier: int(period / time.Minute), Unit: TimespanUnitMinute}, nil
	case period < 24*time.Hour:
		if period%time.Hour != 0 {
			return Timespan{}, fmt.Errorf("NewTimespan: unsupported period: %v", period)
		}
		return Timespan{Multiplier: int(period / time.Hour), Unit: TimespanUnitHour}, nil
	default:
		if period%(24*time.Hour) != 0 {
			return Timespan{}, fmt.Errorf("NewTimespan: unsupported period: %v", period)
		}
		return Timespan{Multiplier: int(period / (24 * time.Hour)), Unit: TimespanUnitDay}, nil
	}
}
