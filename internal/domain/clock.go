package domain

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
	_ "time/tzdata"
)

// MinutesPerDay is the size of the minute-of-day scheduling key space
const MinutesPerDay = 24 * 60

var (
	ErrOutOfRange   = errors.New("time of day out of range")
	ErrInvalidClock = errors.New("invalid time format, expected HH:MM")
	ErrUnknownZone  = errors.New("unknown time zone")
)

// referenceDate anchors every zone conversion. Offsets are the ones in effect on this
// date, so zones observing daylight saving time are converted with their February offset
// all year round.
var referenceDate = time.Date(2020, time.February, 20, 0, 0, 0, 0, time.UTC)

// MinuteOfDay converts a wall-clock hour and minute into a minute-of-day in [0, 1439]
func MinuteOfDay(hours, minutes int) (int, error) {
	if hours < 0 || hours > 23 || minutes < 0 || minutes > 59 {
		return 0, fmt.Errorf("%w: %d:%d", ErrOutOfRange, hours, minutes)
	}
	return hours*60 + minutes, nil
}

// ClockString renders a minute-of-day as zero padded "HH:MM"
func ClockString(minuteOfDay int) string {
	m := ((minuteOfDay % MinutesPerDay) + MinutesPerDay) % MinutesPerDay
	return fmt.Sprintf("%02d:%02d", m/60, m%60)
}

// ParseClock parses "H:MM" or "HH:MM" into a minute-of-day
func ParseClock(s string) (int, error) {
	h, m, ok := strings.Cut(strings.TrimSpace(s), ":")
	if !ok || len(h) == 0 || len(h) > 2 || len(m) != 2 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidClock, s)
	}
	if !allDigits(h) || !allDigits(m) {
		return 0, fmt.Errorf("%w: %q", ErrInvalidClock, s)
	}

	hours, err := strconv.Atoi(h)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidClock, s)
	}
	minutes, err := strconv.Atoi(m)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidClock, s)
	}

	return MinuteOfDay(hours, minutes)
}

func allDigits(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

// UTCMinuteOf returns the UTC minute-of-day of an instant
func UTCMinuteOf(t time.Time) int {
	t = t.UTC()
	return t.Hour()*60 + t.Minute()
}

// RenderInZone projects a UTC minute-of-day onto the reference date and returns the
// wall-clock time in the given zone. An empty zone renders UTC and reports usedDefault
// so the caller can warn the user.
func RenderInZone(utcMinute int, timezoneID string) (clock string, usedDefault bool, err error) {
	if utcMinute < 0 || utcMinute >= MinutesPerDay {
		return "", false, fmt.Errorf("%w: minute %d", ErrOutOfRange, utcMinute)
	}

	loc, usedDefault, err := zone(timezoneID)
	if err != nil {
		return "", false, err
	}

	local := referenceDate.Add(time.Duration(utcMinute) * time.Minute).In(loc)
	return ClockString(local.Hour()*60 + local.Minute()), usedDefault, nil
}

// ToUTCMinuteOfDay converts a local "HH:MM" in the given zone to a UTC minute-of-day,
// using the reference date offset. An empty zone is treated as UTC and reported.
func ToUTCMinuteOfDay(localHHMM, timezoneID string) (utcMinute int, usedDefault bool, err error) {
	local, err := ParseClock(localHHMM)
	if err != nil {
		return 0, false, err
	}

	loc, usedDefault, err := zone(timezoneID)
	if err != nil {
		return 0, false, err
	}

	t := time.Date(referenceDate.Year(), referenceDate.Month(), referenceDate.Day(), local/60, local%60, 0, 0, loc)
	return UTCMinuteOf(t), usedDefault, nil
}

// NextTickDelay returns how long to wait from now until the start of the next whole
// minute plus buffer. It is always derived from the wall clock so ticks never drift.
func NextTickDelay(now time.Time, buffer time.Duration) time.Duration {
	next := now.Truncate(time.Minute).Add(time.Minute).Add(buffer)
	return next.Sub(now)
}

func zone(timezoneID string) (*time.Location, bool, error) {
	if timezoneID == "" {
		return time.UTC, true, nil
	}

	loc, err := time.LoadLocation(timezoneID)
	if err != nil {
		return nil, false, fmt.Errorf("%w: %s: %v", ErrUnknownZone, timezoneID, err)
	}

	return loc, false, nil
}
