package datemath

import (
	"fmt"
	"strings"
	"time"
)

// ISODate is the only delivery date layout the ordering protocol accepts.
const ISODate = "2006-01-02"

// Parser answers calendar questions in a fixed timezone.
type Parser struct {
	location *time.Location
}

// NewParser creates a new date parser for the given IANA timezone string.
// e.g. "Asia/Seoul"
func NewParser(timezone string) (*Parser, error) {
	loc, err := time.LoadLocation(timezone)
	if err != nil {
		return nil, fmt.Errorf("invalid timezone %q: %w", timezone, err)
	}
	return &Parser{location: loc}, nil
}

// Location returns the parser's timezone.
func (p *Parser) Location() *time.Location {
	return p.location
}

// Today formats now as YYYY-MM-DD in the parser's timezone.
func (p *Parser) Today(now time.Time) string {
	return now.In(p.location).Format(ISODate)
}

// ParseISODate parses YYYY-MM-DD as midnight in the parser's timezone.
func (p *Parser) ParseISODate(value string) (time.Time, error) {
	t, err := time.ParseInLocation(ISODate, strings.TrimSpace(value), p.location)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q: %w", value, err)
	}
	return t, nil
}

// IsAfterToday reports whether value is a calendar day strictly after the day
// containing now.
func (p *Parser) IsAfterToday(value string, now time.Time) (bool, error) {
	day, err := p.ParseISODate(value)
	if err != nil {
		return false, err
	}
	return day.After(p.startOfDay(now)), nil
}

func (p *Parser) startOfDay(t time.Time) time.Time {
	t = t.In(p.location)
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, p.location)
}
