// Package datetime implements the date and time catalog functions.
//
// Dates are exchanged as ISO-8601 strings. A date without a time is read as
// UTC midnight; a date-time without an offset is read in the module's
// location. Strings that match none of the ISO layouts are handed to a
// lenient parser before being rejected.
package datetime

import (
	"fmt"
	"strings"
	"time"

	"github.com/Lenostatos/Orinoco-2/internal/argcheck"
	"github.com/Lenostatos/Orinoco-2/internal/registry"
	"github.com/Lenostatos/Orinoco-2/internal/valuetype"
	"github.com/jinzhu/now"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/function"
)

const (
	isoTimestamp = "2006-01-02T15:04:05.000Z"
	isoDate      = "2006-01-02"
	clockTime    = "15:04:05"
)

var (
	utcLayouts = []string{
		"2006-01-02",
		"2006-01",
		"2006",
		time.RFC3339Nano,
	}
	localLayouts = []string{
		"2006-01-02T15:04:05.999999999",
		"2006-01-02T15:04",
		"2006-01-02 15:04:05.999999999",
		"2006-01-02 15:04",
	}
)

// Module implements the registry.Module interface for this package.
type Module struct {
	// Now returns the current instant. Defaults to time.Now.
	Now func() time.Time
	// Location is used for date-times without an offset and for reading
	// fields. Defaults to time.Local.
	Location *time.Location
}

// Register registers every date and time function with the registry.
func (m *Module) Register(r *registry.Registry) {
	str, num := valuetype.String, valuetype.Number

	r.RegisterFunction("now", registry.Fixed(str, m.nowFn))
	r.RegisterFunction("today", registry.Fixed(str, m.today))
	r.RegisterFunction("year", registry.Fixed(num, m.field(func(t time.Time) int { return t.Year() }), str))
	// weekday, hour, minute and second report the zero-based field plus one.
	r.RegisterFunction("weekday", registry.Fixed(num, m.field(func(t time.Time) int { return int(t.Weekday()) + 1 }), str))
	r.RegisterFunction("month", registry.Fixed(num, m.field(func(t time.Time) int { return int(t.Month()) }), str))
	r.RegisterFunction("hour", registry.Fixed(num, m.field(func(t time.Time) int { return t.Hour() + 1 }), str))
	r.RegisterFunction("minute", registry.Fixed(num, m.field(func(t time.Time) int { return t.Minute() + 1 }), str))
	r.RegisterFunction("second", registry.Fixed(num, m.field(func(t time.Time) int { return t.Second() + 1 }), str))
	r.RegisterFunction("date", registry.Fixed(str, m.date, num, num, num))
	r.RegisterFunction("time", registry.Fixed(str, m.clock, num, num, num))
}

func (m *Module) now() time.Time {
	if m.Now != nil {
		return m.Now()
	}
	return time.Now()
}

func (m *Module) location() *time.Location {
	if m.Location != nil {
		return m.Location
	}
	return time.Local
}

func (m *Module) nowFn(_ []cty.Value) (cty.Value, error) {
	return cty.StringVal(m.now().UTC().Format(isoTimestamp)), nil
}

func (m *Module) today(_ []cty.Value) (cty.Value, error) {
	return cty.StringVal(m.now().UTC().Format(isoDate)), nil
}

// field builds a function reading one calendar field of a parsed date.
func (m *Module) field(read func(time.Time) int) registry.ImplFunc {
	return func(args []cty.Value) (cty.Value, error) {
		t, err := m.Parse(args[0].AsString())
		if err != nil {
			return cty.NilVal, function.NewArgError(0, err)
		}
		return cty.NumberIntVal(int64(read(t.In(m.location())))), nil
	}
}

// Parse reads an ISO-8601 date or date-time, falling back to a lenient
// parser for other common layouts.
func (m *Module) Parse(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, fmt.Errorf("invalid date string: empty")
	}

	for _, layout := range utcLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	for _, layout := range localLayouts {
		if t, err := time.ParseInLocation(layout, s, m.location()); err == nil {
			return t, nil
		}
	}

	t, err := now.With(m.now().In(m.location())).Parse(s)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date string %q", s)
	}
	return t, nil
}

// date builds local midnight of the given day and returns its UTC calendar
// date. Years 0 to 99 mean 1900 to 1999; out-of-range months and days roll
// over.
func (m *Module) date(args []cty.Value) (cty.Value, error) {
	parts, err := integers(args)
	if err != nil {
		return cty.NilVal, err
	}
	year := parts[0]
	if year >= 0 && year <= 99 {
		year += 1900
	}
	t := time.Date(year, time.Month(parts[1]), parts[2], 0, 0, 0, 0, m.location())
	return cty.StringVal(t.UTC().Format(isoDate)), nil
}

// clock returns the local wall-clock time for the given hours, minutes and
// seconds, wrapping around midnight.
func (m *Module) clock(args []cty.Value) (cty.Value, error) {
	parts, err := integers(args)
	if err != nil {
		return cty.NilVal, err
	}
	t := time.Date(1899, time.December, 31, parts[0], parts[1], parts[2], 0, m.location())
	return cty.StringVal(t.Format(clockTime)), nil
}

func integers(args []cty.Value) ([]int, error) {
	out := make([]int, len(args))
	for i := range args {
		n, err := argcheck.Integer(args, i)
		if err != nil {
			return nil, err
		}
		out[i] = n
	}
	return out, nil
}
