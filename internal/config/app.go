package config

import (
	"strings"
	"time"

	"github.com/pkg/errors"
)

const (
	defaultTimezone  = "UTC"
	defaultWeekStart = "sunday"
)

var weekdays = map[string]time.Weekday{
	"sunday":    time.Sunday,
	"monday":    time.Monday,
	"tuesday":   time.Tuesday,
	"wednesday": time.Wednesday,
	"thursday":  time.Thursday,
	"friday":    time.Friday,
	"saturday":  time.Saturday,
}

type AppConfig struct {
	TimezoneName    string `yaml:"timezone"`
	WeekStartName   string `yaml:"week-start"`
	ReportRetention int    `yaml:"report-retention"`

	location *time.Location
}

func (s *AppConfig) validate() error {
	loc, err := time.LoadLocation(s.TimezoneName)
	if err != nil {
		return errors.Errorf("unknown timezone %q", s.TimezoneName)
	}
	s.location = loc

	if _, ok := weekdays[strings.ToLower(s.WeekStartName)]; !ok {
		return errors.Errorf("unknown week start %q", s.WeekStartName)
	}
	if s.ReportRetention < 0 {
		return errors.Errorf("report retention must not be negative, got %d", s.ReportRetention)
	}
	return nil
}

// Location is the zone used for calendar triggers and for parsing dates
// that carry no offset.
func (s *AppConfig) Location() *time.Location {
	if s.location == nil {
		return time.UTC
	}
	return s.location
}

// WeekStart is the weekday on which the weekly report fires at midnight.
func (s *AppConfig) WeekStart() time.Weekday {
	return weekdays[strings.ToLower(s.WeekStartName)]
}

// MaxReports is the number of reports kept per period, 0 keeps all.
func (s *AppConfig) MaxReports() int {
	return s.ReportRetention
}
