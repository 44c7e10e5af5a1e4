package itinerary

import (
	"testing"
)

type FormatTest struct {
	Name     string
	Start    string
	End      string
	Expected string
}

var durationTestCases = []FormatTest{
	{Name: "hours and minutes", Start: "09:00", End: "10:30", Expected: "1h 30m"},
	{Name: "minutes only", Start: "09:00", End: "09:45", Expected: "45 min"},
	{Name: "whole hours", Start: "15:15", End: "17:15", Expected: "2h"},
	{Name: "wraps past midnight", Start: "23:00", End: "01:00", Expected: "2h"},
	{Name: "zero length", Start: "12:00", End: "12:00", Expected: "0 min"},
}

func TestCalculateDuration(t *testing.T) {
	for _, tc := range durationTestCases {
		t.Run(tc.Name, func(t *testing.T) {
			got := CalculateDuration(tc.Start, tc.End)
			if got != tc.Expected {
				t.Errorf(
					"expected duration of %s-%s to be: %s, but got: %s",
					tc.Start,
					tc.End,
					tc.Expected,
					got,
				)
			}
		})
	}
}

func TestFormatMinutes(t *testing.T) {
	cases := map[int]string{
		0:   "0min",
		20:  "20min",
		60:  "1h",
		90:  "1h 30min",
		120: "2h",
		125: "2h 5min",
	}

	for in, expected := range cases {
		if got := FormatMinutes(in); got != expected {
			t.Errorf("FormatMinutes(%d): expected %q, got %q", in, expected, got)
		}
	}
}

func TestDurationMinutesWraps(t *testing.T) {
	if got := DurationMinutes("23:30", "00:15"); got != 45 {
		t.Errorf("expected 45, got %d", got)
	}
}

func TestMinutesAndValidClock(t *testing.T) {
	if got := Minutes("18:30"); got != 1110 {
		t.Errorf("expected 1110, got %d", got)
	}

	valid := []string{"00:00", "07:05", "23:59"}
	for _, s := range valid {
		if !ValidClock(s) {
			t.Errorf("expected %q to be valid", s)
		}
	}

	invalid := []string{"", "7:05", "24:00", "12:60", "12.30", "12:30:00"}
	for _, s := range invalid {
		if ValidClock(s) {
			t.Errorf("expected %q to be invalid", s)
		}
	}
}
