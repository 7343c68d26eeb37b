package validator

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// freeFormLayouts are tried in order by DateNotBefore and DateNotAfter.
// Slash dates are month first, dash and dot dates with a leading day are day first.
var freeFormLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	time.DateTime,
	"2006-01-02 15:04",
	time.DateOnly,
	"2006/01/02",
	"01/02/2006 15:04:05",
	"01/02/2006",
	"02-01-2006",
	"02.01.2006",
	"2 January 2006",
	"2 Jan 2006",
	"January 2, 2006",
	"Jan 2, 2006",
	time.RFC1123Z,
	time.RFC1123,
	time.RFC850,
	time.RFC822Z,
	time.RFC822,
	time.ANSIC,
}

// IsDate fails when the value does not parse against format
// (DefaultDateFormat or WithDateFormat when omitted). Out-of-range calendar
// dates such as 2023-02-29 fail.
func (v *Validator) IsDate(format ...string) *Validator {
	f := v.formatArg(format)
	return v.run(Rule{
		Check: func() bool {
			_, ok := v.parseDate(v.value.Raw, f)
			return ok
		},
		Error: func() ValidationError {
			return v.newError("validation.date", fmt.Sprintf("must be a valid date in format %s", f), map[string]any{
				"format": f,
			})
		},
	})
}

// IsToday fails unless the value's calendar date is today.
func (v *Validator) IsToday(format ...string) *Validator {
	return v.relativeToToday(format, "validation.date_today", "date must be today", func(c int) bool {
		return c == 0
	})
}

// BeforeToday fails unless the value's calendar date is strictly before today.
func (v *Validator) BeforeToday(format ...string) *Validator {
	return v.relativeToToday(format, "validation.date_before_today", "date must be before today", func(c int) bool {
		return c < 0
	})
}

// AfterToday fails unless the value's calendar date is strictly after today.
func (v *Validator) AfterToday(format ...string) *Validator {
	return v.relativeToToday(format, "validation.date_after_today", "date must be after today", func(c int) bool {
		return c > 0
	})
}

// BeforeTomorrow fails when the value's calendar date is after today.
func (v *Validator) BeforeTomorrow(format ...string) *Validator {
	return v.relativeToToday(format, "validation.date_before_tomorrow", "date must not be after today", func(c int) bool {
		return c <= 0
	})
}

// AfterYesterday fails when the value's calendar date is before today.
func (v *Validator) AfterYesterday(format ...string) *Validator {
	return v.relativeToToday(format, "validation.date_after_yesterday", "date must not be before today", func(c int) bool {
		return c >= 0
	})
}

// DateNotBefore fails when the value is earlier than control. Both sides are
// parsed as free-form dates; either failing to parse is a failure.
func (v *Validator) DateNotBefore(control string) *Validator {
	return v.run(Rule{
		Check: func() bool {
			c, ok := v.compareDates(control)
			return ok && c >= 0
		},
		Error: func() ValidationError {
			return v.newError("validation.date_not_before", fmt.Sprintf("date must not be before %s", control), map[string]any{
				"control": control,
			})
		},
	})
}

// DateNotAfter fails when the value is later than control.
func (v *Validator) DateNotAfter(control string) *Validator {
	return v.run(Rule{
		Check: func() bool {
			c, ok := v.compareDates(control)
			return ok && c <= 0
		},
		Error: func() ValidationError {
			return v.newError("validation.date_not_after", fmt.Sprintf("date must not be after %s", control), map[string]any{
				"control": control,
			})
		},
	})
}

func (v *Validator) relativeToToday(format []string, key, message string, pass func(c int) bool) *Validator {
	f := v.formatArg(format)
	return v.run(Rule{
		Check: func() bool {
			t, ok := v.parseDate(v.value.Raw, f)
			if !ok {
				return false
			}
			if t, ok = v.completeDate(t, f); !ok {
				return false
			}
			return pass(dayOf(t.In(v.location)).Compare(v.today()))
		},
		Error: func() ValidationError {
			return v.newError(key, message, map[string]any{
				"format": f,
			})
		},
	})
}

// completeDate fills the year, month and day that format does not carry from
// today, so "06-15" parsed with "m-d" lands in the current year. A filled date
// that does not exist in that year (Feb 29) fails.
func (v *Validator) completeDate(t time.Time, format string) (time.Time, bool) {
	layout, err := Layout(format)
	if err != nil {
		return time.Time{}, false
	}

	ref := time.Date(2001, time.February, 3, 0, 0, 0, 0, time.UTC)
	probe, err := time.Parse(layout, ref.Format(layout))
	if err != nil {
		return t, true
	}

	today := v.today()
	y, m, d := t.Date()
	if probe.Year() != ref.Year() {
		y = today.Year()
	}
	if probe.Month() != ref.Month() {
		m = today.Month()
	}
	if probe.Day() != ref.Day() {
		d = today.Day()
	}

	filled := time.Date(y, m, d, t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), t.Location())
	if filled.Day() != d || filled.Month() != m {
		return time.Time{}, false
	}
	return filled, true
}

func (v *Validator) compareDates(control string) (int, bool) {
	value, ok := v.parseFreeForm(v.value.Raw)
	if !ok {
		return 0, false
	}
	c, ok := v.parseFreeForm(control)
	if !ok {
		return 0, false
	}
	return value.Compare(c), true
}

func (v *Validator) formatArg(format []string) string {
	if len(format) > 0 && format[0] != "" {
		return format[0]
	}
	return v.dateFormat
}

// parseDate parses s strictly against format in the validator's location.
func (v *Validator) parseDate(s, format string) (time.Time, bool) {
	if s == "" {
		return time.Time{}, false
	}
	layout, err := Layout(format)
	if err != nil {
		return time.Time{}, false
	}
	t, err := time.ParseInLocation(layout, s, v.location)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

// parseFreeForm accepts the relative words now, today, tomorrow and yesterday,
// "@<unix seconds>", the validator's date format and freeFormLayouts.
func (v *Validator) parseFreeForm(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false
	}

	switch strings.ToLower(s) {
	case "now":
		return v.now(), true
	case "today", "midnight":
		return v.today(), true
	case "tomorrow":
		return v.today().AddDate(0, 0, 1), true
	case "yesterday":
		return v.today().AddDate(0, 0, -1), true
	}

	if ts, ok := strings.CutPrefix(s, "@"); ok {
		sec, err := strconv.ParseInt(ts, 10, 64)
		if err != nil {
			return time.Time{}, false
		}
		return time.Unix(sec, 0).In(v.location), true
	}

	if t, ok := v.parseDate(s, v.dateFormat); ok {
		return t, true
	}
	for _, layout := range freeFormLayouts {
		if t, err := time.ParseInLocation(layout, s, v.location); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

func (v *Validator) now() time.Time {
	return v.clock.Now().In(v.location)
}

func (v *Validator) today() time.Time {
	return dayOf(v.now())
}

// dayOf truncates t to midnight of its calendar day in its own location.
func dayOf(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}
