package validator

import (
	"regexp"
	"strconv"
	"strings"
	"time"
)

var (
	iso8601Regex = regexp.MustCompile(`^[+-]?\d{4}` +
		`(?:-?(?:(?:0[1-9]|1[0-2])(?:-?(?:0[1-9]|[12]\d|3[01]))?|W(?:[0-4]\d|5[0-3])(?:-?[1-7])?|(?:00[1-9]|0[1-9]\d|[12]\d{2}|3(?:[0-5]\d|6[1-6]))))?` +
		`(?:[T\s](?:(?:[01]\d|2[0-3])(?::?[0-5]\d(?::?[0-5]\d)?)?|24:?00)(?:[.,]\d+)?(?:[zZ]|[+-](?:[01]\d|2[0-3])(?::?[0-5]\d)?)?)?$`)
	rfc3339Regex = regexp.MustCompile(`(?i)^[0-9]{4}-(0[1-9]|1[0-2])-(0[1-9]|[12][0-9]|3[01])[ t]([01][0-9]|2[0-3]):([0-5][0-9]):([0-5][0-9]|60)(\.[0-9]+)?(z|[+-]([01][0-9]|2[0-3]):[0-5][0-9])$`)
	dateFormatRe = regexp.MustCompile(`^(YYYY|YY|MM|DD)([^A-Za-z0-9])(YYYY|YY|MM|DD)([^A-Za-z0-9])(YYYY|YY|MM|DD)$`)
)

// DefaultDateFormat is the layout IsDate uses when none is given.
const DefaultDateFormat = "YYYY/MM/DD"

// DateOptions configures IsDate.
type DateOptions struct {
	// Format is built from YYYY, YY, MM and DD joined by one delimiter.
	// Defaults to DefaultDateFormat.
	Format string
	// Delimiters lists the accepted separators. Defaults to "/" and "-".
	Delimiters []string
	// StrictMode requires the format's own delimiter.
	StrictMode bool
}

// Validate reports a format IsDate cannot interpret.
func (o DateOptions) Validate() error {
	if o.Format != "" && !dateFormatRe.MatchString(o.Format) {
		return invalidOption("date format %q", o.Format)
	}
	return nil
}

// IsDate reports whether value is a time.Time or a string holding a calendar
// date in the configured format. The input must use a single delimiter.
func IsDate(value any, opts DateOptions) bool {
	switch v := value.(type) {
	case time.Time:
		return true
	case *time.Time:
		return v != nil
	case string:
		return isDateString(v, opts)
	}
	return false
}

func isDateString(str string, opts DateOptions) bool {
	format := opts.Format
	if format == "" {
		format = DefaultDateFormat
	}
	delimiters := opts.Delimiters
	if len(delimiters) == 0 {
		delimiters = []string{"/", "-"}
	}
	m := dateFormatRe.FindStringSubmatch(format)
	if m == nil {
		return false
	}
	if opts.StrictMode {
		delimiters = []string{m[2]}
	}

	delim := ""
	for _, d := range delimiters {
		if strings.Contains(str, d) {
			delim = d
			break
		}
	}
	if delim == "" {
		return false
	}
	parts := strings.Split(str, delim)
	fields := []string{m[1], m[3], m[5]}
	if len(parts) != len(fields) {
		return false
	}

	var year, month, day int
	for i, field := range fields {
		part := parts[i]
		if len(part) != len(field) || !allDigitsRegex.MatchString(part) {
			return false
		}
		n, _ := strconv.Atoi(part)
		switch field {
		case "YYYY":
			year = n
		case "YY":
			year = 2000 + n
		case "MM":
			month = n
		case "DD":
			day = n
		}
	}
	if month < 1 || month > 12 || day < 1 {
		return false
	}
	t := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
	return t.Year() == year && int(t.Month()) == month && t.Day() == day
}

// IsISO8601 reports whether str is an ISO 8601 date or date-time.
func IsISO8601(str string) bool {
	return iso8601Regex.MatchString(str)
}

// IsRFC3339 reports whether str is an RFC 3339 timestamp.
func IsRFC3339(str string) bool {
	return rfc3339Regex.MatchString(str)
}

// IsAfter reports whether value is a date strictly after ref.
func IsAfter(value any, ref time.Time) bool {
	t, ok := asTime(value)
	return ok && t.After(ref)
}

// IsBefore reports whether value is a date strictly before ref.
func IsBefore(value any, ref time.Time) bool {
	t, ok := asTime(value)
	return ok && t.Before(ref)
}

var timeLayouts = []string{time.RFC3339Nano, time.RFC3339, time.DateTime, time.DateOnly, "2006/01/02"}

func asTime(value any) (time.Time, bool) {
	switch v := value.(type) {
	case time.Time:
		return v, true
	case *time.Time:
		if v == nil {
			return time.Time{}, false
		}
		return *v, true
	case string:
		for _, layout := range timeLayouts {
			if t, err := time.Parse(layout, v); err == nil {
				return t, true
			}
		}
	}
	return time.Time{}, false
}
