package config

import (
	"testing"
	"time"
)

func TestDurationEnvOrDefaultRejectsBadValues(t *testing.T) {
	cases := map[string]time.Duration{
		"":       time.Minute,
		"potato": time.Minute,
		"-5s":    time.Minute,
		"0s":     time.Minute,
		"1h30m":  90 * time.Minute,
		"100ms":  100 * time.Millisecond,
	}
	for raw, want := range cases {
		t.Setenv("TEST_DURATION", raw)
		if got := durationEnvOrDefault("TEST_DURATION", time.Minute); got != want {
			t.Fatalf("durationEnvOrDefault(%q) = %v, want %v", raw, got, want)
		}
	}
}

func TestBoolEnvOrDefault(t *testing.T) {
	cases := []struct {
		raw      string
		fallback bool
		want     bool
	}{
		{"", true, true},
		{"", false, false},
		{"true", false, true},
		{"TRUE", false, true},
		{"1", false, true},
		{"yes", false, true},
		{"false", true, false},
		{"0", true, false},
		{"no", true, false},
		{"maybe", true, true},
	}
	for _, tc := range cases {
		t.Setenv("TEST_BOOL", tc.raw)
		if got := boolEnvOrDefault("TEST_BOOL", tc.fallback); got != tc.want {
			t.Fatalf("boolEnvOrDefault(%q, %v) = %v, want %v", tc.raw, tc.fallback, got, tc.want)
		}
	}
}

func TestWeekdayEnvOrDefault(t *testing.T) {
	cases := []struct {
		raw  string
		want time.Weekday
	}{
		{"", time.Tuesday},
		{"wednesday", time.Wednesday},
		{"  Friday ", time.Friday},
		{"SUNDAY", time.Sunday},
		{"noday", time.Tuesday},
	}
	for _, tc := range cases {
		t.Setenv("TEST_WEEKDAY", tc.raw)
		if got := weekdayEnvOrDefault("TEST_WEEKDAY", time.Tuesday); got != tc.want {
			t.Fatalf("weekdayEnvOrDefault(%q) = %v, want %v", tc.raw, got, tc.want)
		}
	}
}

func TestIntEnvOrDefault(t *testing.T) {
	cases := map[string]int{
		"":    7,
		"abc": 7,
		"-2":  7,
		"0":   7,
		"42":  42,
	}
	for raw, want := range cases {
		t.Setenv("TEST_INT", raw)
		if got := intEnvOrDefault("TEST_INT", 7); got != want {
			t.Fatalf("intEnvOrDefault(%q) = %d, want %d", raw, got, want)
		}
	}
}
