package entry

import (
	"regexp"
	"strconv"
	"time"
)

const layoutISO = "2006-01-02"

var (
	leadingYear = regexp.MustCompile(`^(\d{4})`)
	datePattern = regexp.MustCompile(`^(\d{4})(?:-(\d{1,2})(?:-(\d{1,2}))?)?`)
)

// ValidDate reports whether date is a bare `YYYY` or a real `YYYY-MM-DD` day.
func ValidDate(date string) bool {
	if len(date) == 4 {
		return leadingYear.MatchString(date)
	}
	_, err := time.Parse(layoutISO, date)
	return err == nil
}

// Year parses the leading four digits of date. Dates without them report fallback.
func Year(date string, fallback int) int {
	m := leadingYear.FindStringSubmatch(date)
	if m == nil {
		return fallback
	}
	y, err := strconv.Atoi(m[1])
	if err != nil {
		return fallback
	}
	return y
}

// Day is a parsed, possibly partial, calendar date. Month and Day are zero
// when the source only carried year precision.
type Day struct {
	Year  int
	Month int
	Day   int
}

// ParseDate reads `YYYY`, `YYYY-MM` or `YYYY-MM-DD`. Unparseable input yields
// the fallback year with zero month and day.
func ParseDate(date string, fallbackYear int) Day {
	m := datePattern.FindStringSubmatch(date)
	if m == nil {
		return Day{Year: fallbackYear}
	}
	d := Day{}
	d.Year, _ = strconv.Atoi(m[1])
	if m[2] != "" {
		d.Month, _ = strconv.Atoi(m[2])
	}
	if m[3] != "" {
		d.Day, _ = strconv.Atoi(m[3])
	}
	return d
}

// Key orders days chronologically; partial dates sort before full dates of the same year.
func (d Day) Key() int {
	return d.Year*10000 + d.Month*100 + d.Day
}

// Compare returns -1, 0 or 1.
func (d Day) Compare(o Day) int {
	switch a, b := d.Key(), o.Key(); {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

// YearOnly reports whether the date only has year precision.
func (d Day) YearOnly() bool {
	return d.Month == 0 && d.Day == 0
}
