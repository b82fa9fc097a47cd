// Package timecode parses, formats and validates song durations written as
// "M:SS" or "H:MM:SS".
package timecode

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
)

// Zero is the canonical zero-length duration.
const Zero = "0:00"

// MaxSeconds is the longest duration ParseToSeconds accepts. Longer values parse as 0.
const MaxSeconds = math.MaxInt32

var (
	strictPattern = regexp.MustCompile(`^\d{1,2}:\d{2}(:\d{2})?$`)
	loosePattern  = regexp.MustCompile(`\d{1,2}:\d{2}(:\d{2})?`)
)

// ParseToSeconds converts a duration string to seconds.
// Two parts are read as minutes:seconds and three parts as hours:minutes:seconds.
// Anything else, including non-numeric parts or a total above MaxSeconds, yields 0.
// Part values are not range checked, so "5:99" is 399 seconds.
func ParseToSeconds(text string) int {
	text = strings.TrimSpace(text)
	if text == "" {
		return 0
	}

	fields := strings.Split(text, ":")
	parts := make([]int64, 0, len(fields))
	for _, f := range fields {
		n, ok := parseUnsigned(f)
		if !ok {
			return 0
		}
		parts = append(parts, n)
	}

	var total int64
	switch len(parts) {
	case 2:
		total = parts[0]*60 + parts[1]
	case 3:
		total = parts[0]*3600 + parts[1]*60 + parts[2]
	default:
		return 0
	}
	if total > MaxSeconds {
		return 0
	}
	return int(total)
}

// parseUnsigned accepts only a non-empty run of ASCII digits no larger than MaxSeconds.
func parseUnsigned(s string) (int64, bool) {
	if s == "" {
		return 0, false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return 0, false
		}
	}
	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil || n > MaxSeconds {
		return 0, false
	}
	return n, true
}

// FromSeconds renders seconds as "H:MM:SS" when at least one hour, else "M:SS".
// Negative input renders as Zero.
func FromSeconds(seconds int) string {
	if seconds < 0 {
		seconds = 0
	}
	hours := seconds / 3600
	minutes := (seconds % 3600) / 60
	secs := seconds % 60

	if hours > 0 {
		return fmt.Sprintf("%d:%02d:%02d", hours, minutes, secs)
	}
	return fmt.Sprintf("%d:%02d", minutes, secs)
}

// IsValid reports whether text strictly matches "M:SS", "MM:SS", "H:MM:SS" or "HH:MM:SS".
func IsValid(text string) bool {
	return strictPattern.MatchString(text)
}

// FormatInput normalizes user input such as "05:05" to "5:05".
// Input that is not a valid duration is returned unchanged.
func FormatInput(text string) string {
	cleaned := strings.TrimSpace(text)
	if !IsValid(cleaned) {
		return text
	}
	return FromSeconds(ParseToSeconds(cleaned))
}

// FindLoose returns the first duration-looking substring anywhere in text.
func FindLoose(text string) (string, bool) {
	m := loosePattern.FindString(text)
	if m == "" {
		return "", false
	}
	return m, true
}
