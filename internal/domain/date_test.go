package domain

import (
	"encoding/json"
	"testing"
	"time"
)

func TestParseDate(t *testing.T) {
	date, err := ParseDate("2026-08-29")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if date.String() != "2026-08-29" {
		t.Errorf("Expected 2026-08-29, got %s", date.String())
	}

	invalid := []string{"", "2026-13-01", "29-08-2026", "2026-08-29T00:00:00Z", "not-a-date"}
	for _, s := range invalid {
		if _, err := ParseDate(s); err == nil {
			t.Errorf("Expected error for %q, got nil", s)
		}
	}
}

func TestDateComparisons(t *testing.T) {
	earlier := NewDate(2026, time.August, 28)
	later := NewDate(2026, time.August, 29)

	if !earlier.Before(later) {
		t.Error("Expected earlier.Before(later) to be true")
	}

	if later.Before(earlier) {
		t.Error("Expected later.Before(earlier) to be false")
	}

	if !later.Equal(NewDate(2026, time.August, 29)) {
		t.Error("Expected dates on the same day to be equal")
	}

	// Equality ignores the time component
	withTime := Date{Time: time.Date(2026, time.August, 29, 17, 30, 0, 0, time.UTC)}
	if !later.Equal(withTime) {
		t.Error("Expected equality to ignore the time component")
	}
}

func TestDateJSONRoundTrip(t *testing.T) {
	date := NewDate(2026, time.August, 29)

	data, err := json.Marshal(date)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if string(data) != `"2026-08-29"` {
		t.Errorf("Expected %q, got %s", `"2026-08-29"`, data)
	}

	var decoded Date
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if !decoded.Equal(date) {
		t.Errorf("Expected %s, got %s", date, decoded)
	}

	if err := json.Unmarshal([]byte(`"29/08/2026"`), &decoded); err == nil {
		t.Error("Expected error for malformed date, got nil")
	}
}

func TestDateScan(t *testing.T) {
	var date Date

	if err := date.Scan(time.Date(2026, time.August, 29, 0, 0, 0, 0, time.UTC)); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if date.String() != "2026-08-29" {
		t.Errorf("Expected 2026-08-29, got %s", date.String())
	}

	if err := date.Scan("2026-01-15"); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if date.String() != "2026-01-15" {
		t.Errorf("Expected 2026-01-15, got %s", date.String())
	}

	if err := date.Scan(12345); err == nil {
		t.Error("Expected error for unsupported scan type, got nil")
	}
}
