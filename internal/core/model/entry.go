package model

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

const (
	// DateLayout is the canonical date key format.
	DateLayout = "2006-01-02"

	// ClockLayout documents the accepted time-of-day format.
	ClockLayout = "HH:MM"
)

// Entry is one raw activity record as stored on disk. Field names match
// the JSON store format so existing data files load unchanged.
type Entry struct {
	Date            string  `json:"date"`
	StartTime       string  `json:"start_time"`
	EndTime         string  `json:"end_time"`
	ActionName      string  `json:"action_name"`
	DurationMinutes float64 `json:"duration_minutes"`
}

// NewEntry validates the raw fields and builds an Entry with its duration
// precomputed. All validation failures are typed: *ParseError for malformed
// strings, *ValidationError for ordering or span violations.
func NewEntry(date, start, end, action string) (Entry, error) {
	if _, err := ParseDate(date); err != nil {
		return Entry{}, err
	}
	startMin, err := ParseClock(start)
	if err != nil {
		return Entry{}, err
	}
	endMin, err := ParseClock(end)
	if err != nil {
		return Entry{}, err
	}
	if action == "" {
		return Entry{}, &ValidationError{Date: date, Reason: "empty action name"}
	}
	// Start and end share the entry's date, so the span can never cross
	// midnight or exceed 24 hours; ordering is the only remaining check.
	if startMin >= endMin {
		return Entry{}, &ValidationError{
			Date:   date,
			Reason: fmt.Sprintf("end time %s must be after start time %s", end, start),
		}
	}
	return Entry{
		Date:            date,
		StartTime:       start,
		EndTime:         end,
		ActionName:      action,
		DurationMinutes: float64(endMin - startMin),
	}, nil
}

// Validate re-checks an entry loaded from storage.
func (e Entry) Validate() error {
	_, err := NewEntry(e.Date, e.StartTime, e.EndTime, e.ActionName)
	return err
}

// Interval converts the entry's clock strings to a minute-based Interval.
func (e Entry) Interval() (Interval, error) {
	start, err := ParseClock(e.StartTime)
	if err != nil {
		return Interval{}, err
	}
	end, err := ParseClock(e.EndTime)
	if err != nil {
		return Interval{}, err
	}
	return NewInterval(start, end, e.ActionName)
}

// ParseDate validates a "YYYY-MM-DD" date key.
func ParseDate(value string) (time.Time, error) {
	t, err := time.Parse(DateLayout, value)
	if err != nil {
		return time.Time{}, &ParseError{Value: value, Layout: DateLayout, Reason: "not a calendar date"}
	}
	return t, nil
}

// ParseClock converts an "HH:MM" string to minutes since midnight.
func ParseClock(value string) (int, error) {
	hourStr, minStr, ok := strings.Cut(value, ":")
	if !ok {
		return 0, &ParseError{Value: value, Layout: ClockLayout, Reason: "missing ':' separator"}
	}
	hour, err := strconv.Atoi(hourStr)
	if err != nil {
		return 0, &ParseError{Value: value, Layout: ClockLayout, Reason: "hour is not a number"}
	}
	minute, err := strconv.Atoi(minStr)
	if err != nil {
		return 0, &ParseError{Value: value, Layout: ClockLayout, Reason: "minute is not a number"}
	}
	if hour < 0 || hour > 23 {
		return 0, &ParseError{Value: value, Layout: ClockLayout, Reason: "hour out of range"}
	}
	if minute < 0 || minute > 59 {
		return 0, &ParseError{Value: value, Layout: ClockLayout, Reason: "minute out of range"}
	}
	return hour*60 + minute, nil
}

// FormatClock renders minutes since midnight as "HH:MM". The day bound
// 1440 renders as "24:00" so timeline ends stay printable.
func FormatClock(minutes int) string {
	return fmt.Sprintf("%02d:%02d", minutes/60, minutes%60)
}
