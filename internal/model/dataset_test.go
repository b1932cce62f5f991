package model

import (
	"testing"
	"time"
)

func TestTotalCount(t *testing.T) {
	buckets := []Bucket{{"a", 2}, {"b", 0}, {"c", 5}}
	if got := TotalCount(buckets); got != 7 {
		t.Errorf("TotalCount() = %d, expected 7", got)
	}
	if got := TotalCount(nil); got != 0 {
		t.Errorf("TotalCount(nil) = %d, expected 0", got)
	}
}

func TestSecondsString(t *testing.T) {
	tests := []struct {
		d        time.Duration
		expected string
	}{
		{0, "0.0000"},
		{1500 * time.Millisecond, "1.5000"},
		{123456 * time.Microsecond, "0.1235"},
	}

	for _, test := range tests {
		if got := SecondsString(test.d); got != test.expected {
			t.Errorf("SecondsString(%v) = %s, expected %s", test.d, got, test.expected)
		}
	}
}
