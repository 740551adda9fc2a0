package models

import (
	"fmt"
	"strings"
	"time"
)

const (
	// InputDateLayout is the yyyy-MM-dd layout accepted from users and
	// written by the blank workbook.
	InputDateLayout = "2006-01-02"
	// SlotDateLayout is the MM/dd layout written into template slots.
	SlotDateLayout = "01/02"
)

// Date is a calendar date without a time of day.
// The zero value means "no date".
type Date struct {
	t time.Time
}

// NewDate returns the date year-month-day.
func NewDate(year int, month time.Month, day int) Date {
	return Date{t: time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

// ParseDate parses s in yyyy-MM-dd form. Blank input yields the zero Date.
func ParseDate(s string) (Date, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Date{}, nil
	}
	t, err := time.Parse(InputDateLayout, s)
	if err != nil {
		return Date{}, fmt.Errorf("invalid date %q: use YYYY-MM-DD format", s)
	}
	return Date{t: t}, nil
}

// IsZero reports whether d holds no date.
func (d Date) IsZero() bool {
	return d.t.IsZero()
}

// Format renders d with a Go time layout, or "" when d is zero.
func (d Date) Format(layout string) string {
	if d.IsZero() {
		return ""
	}
	return d.t.Format(layout)
}

func (d Date) String() string {
	return d.Format(InputDateLayout)
}

// MarshalText implements encoding.TextMarshaler.
func (d Date) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (d *Date) UnmarshalText(b []byte) error {
	parsed, err := ParseDate(string(b))
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}
