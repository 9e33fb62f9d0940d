package marketmodels

import (
	"fmt"
	"time"
)

// Date is a plain calendar date: no clock, no timezone.
type Date struct {
	Year  int
	Month int
	Day   int
}

func (d Date) ToString() string {
	return fmt.Sprintf("%d-%02d-%02d", d.Year, d.Month, d.Day)
}

func (d Date) ToTime() (time.Time, error) {
	return time.Parse("2006-01-02", d.ToString())
}

func (d Date) IsZero() bool {
	return d.Year == 0 && d.Month == 0 && d.Day == 0
}

// Validate rejects dates that do not exist on the Gregorian calendar, e.g.
// month 13 or Feb 30. time.Date normalizes overflow values, so a round-trip
// comparison catches them.
func (d Date) Validate() error {
	if d.Month < 1 || d.Month > 12 || d.Day < 1 {
		return fmt.Errorf("Date.Validate: %w: %v", ErrInvalidDate, d.ToString())
	}

	t := time.Date(d.Year, time.Month(d.Month), d.Day, 0, 0, 0, 0, time.UTC)
	if t.Year() != d.Year || int(t.Month()) != d.Month || t.Day() != d.Day {
		return fmt.Errorf("Date.Validate: %w: %v", ErrInvalidDate, d.ToString())
	}

	return nil
}

func NewDate(date string) (*Date, error) {
	var year, month, day int
	if _, err := fmt.Sscanf(date, "%d-%d-%d", &year, &month, &day); err != nil {
		return nil, fmt.Errorf("NewDate: %w", err)
	}

	d := Date{Year: year, Month: month, Day: day}
	if err := d.Validate(); err != nil {
		return nil, fmt.Errorf("NewDate: %w", err)
	}

	return &d, nil
}

func NewDateFromTime(t time.Time) Date {
	return Date{
		Year:  t.Year(),
		Month: int(t.Month()),
		Day:   t.Day(),
	}
}
