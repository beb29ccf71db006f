package model

import (
	"database/sql/driver"
	"errors"
	"fmt"
	"hotel/shared/constant"
	"time"
)

var ErrInvalidPeriod = errors.New("exit date must be after entry date")

// Date is a calendar day. It is bound to SQL as a YYYY-MM-DD string so the session
// timezone never shifts it.
type Date struct {
	time.Time
}

func NewDate(year int, month time.Month, day int) Date {
	return Date{Time: time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

func ParseDate(value string) (Date, error) {
	t, err := time.Parse(constant.DateOnlyFormat, value)
	if err != nil {
		return Date{}, fmt.Errorf("invalid date %q, expected YYYY-MM-DD", value)
	}

	return Date{Time: t}, nil
}

func (d Date) String() string {
	return d.Format(constant.DateOnlyFormat)
}

func (d Date) Value() (driver.Value, error) {
	return d.String(), nil
}

func (d *Date) Scan(src any) error {
	switch v := src.(type) {
	case time.Time:
		*d = NewDate(v.Year(), v.Month(), v.Day())

		return nil
	case string:
		return d.scanString(v)
	case []byte:
		return d.scanString(string(v))
	case nil:
		*d = Date{}

		return nil
	}

	return fmt.Errorf("cannot scan %T into Date", src)
}

func (d *Date) scanString(value string) error {
	if len(value) > len(constant.DateOnlyFormat) {
		value = value[:len(constant.DateOnlyFormat)]
	}

	parsed, err := ParseDate(value)
	if err != nil {
		return err
	}

	*d = parsed

	return nil
}

// Period is the closed interval of days a booking occupies its room, both ends included.
type Period struct {
	EntryDate Date
	ExitDate  Date
}

// NewPeriod parses both dates and rejects an exit date on or before the entry date.
func NewPeriod(entryDate, exitDate string) (Period, error) {
	entry, err := ParseDate(entryDate)
	if err != nil {
		return Period{}, err
	}

	exit, err := ParseDate(exitDate)
	if err != nil {
		return Period{}, err
	}

	period := Period{EntryDate: entry, ExitDate: exit}
	if !period.Valid() {
		return Period{}, ErrInvalidPeriod
	}

	return period, nil
}

func (p Period) Valid() bool {
	return p.ExitDate.After(p.EntryDate.Time)
}

// Overlaps reports whether the two closed intervals share at least one day. Touching
// endpoints count, so a stay ending on the 5th conflicts with one starting on the 5th.
func (p Period) Overlaps(other Period) bool {
	return !p.EntryDate.After(other.ExitDate.Time) && !p.ExitDate.Before(other.EntryDate.Time)
}
