package itinerary

import (
	"regexp"
	"strconv"
	"strings"
)

var clockRegex = regexp.MustCompile(`^([01]\d|2[0-3]):[0-5]\d$`)

// ValidClock reports whether s is a zero-padded 24-hour HH:MM time.
func ValidClock(s string) bool {
	return clockRegex.MatchString(s)
}

// Minutes converts an HH:MM clock time to minutes since midnight. The input
// must satisfy ValidClock; malformed parts count as zero.
func Minutes(s string) int {
	hh, mm, _ := strings.Cut(s, ":")

	h, _ := strconv.Atoi(hh)
	m, _ := strconv.Atoi(mm)

	return h*60 + m
}
