package atlas

import (
	"encoding/json"
	"testing"
)

func TestParseDate(t *testing.T) {
	tests := []struct {
		in   string
		want Date
	}{
		{"2024-06-15", NewDate(2024, 6, 15)},
		{"2024-6-5", NewDate(2024, 6, 5)},
		{"2024-06-15T00:00:00Z", NewDate(2024, 6, 15)},
		{"2024-06-15T10:30:00.000Z", NewDate(2024, 6, 15)},
	}
	for _, tc := range tests {
		got, err := ParseDate(tc.in)
		if err != nil {
			t.Errorf("ParseDate(%q): %v", tc.in, err)
			continue
		}
		if got != tc.want {
			t.Errorf("ParseDate(%q) = %s, want %s", tc.in, got, tc.want)
		}
	}
}

func TestParseDateToday(t *testing.T) {
	got, err := ParseDate("today")
	if err != nil {
		t.Fatalf("ParseDate(today): %v", err)
	}
	if got != Today() {
		t.Errorf("ParseDate(today) = %s, want %s", got, Today())
	}
}

func TestParseDateInvalid(t *testing.T) {
	for _, in := range []string{"", "yesterday", "15/06/2024"} {
		if _, err := ParseDate(in); err == nil {
			t.Errorf("ParseDate(%q): expected an error", in)
		}
	}
}

func TestDaysUntil(t *testing.T) {
	d := NewDate(2024, 6, 15)
	tests := []struct {
		to   Date
		want int
	}{
		{NewDate(2024, 6, 15), 0},
		{NewDate(2024, 6, 16), 1},
		{NewDate(2024, 7, 15), 30},
		{NewDate(2024, 6, 14), -1},
		{NewDate(2025, 6, 15), 365},
	}
	for _, tc := range tests {
		if got := d.DaysUntil(tc.to); got != tc.want {
			t.Errorf("%s.DaysUntil(%s) = %d, want %d", d, tc.to, got, tc.want)
		}
	}
}

func TestDateAdd(t *testing.T) {
	if got := NewDate(2024, 2, 28).Add(2); got != NewDate(2024, 3, 1) {
		t.Errorf("Add(2) over a leap day = %s, want 2024-03-01", got)
	}
}

func TestDateJSON(t *testing.T) {
	d := NewDate(2024, 6, 15)
	data, err := json.Marshal(d)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if string(data) != `"2024-06-15"` {
		t.Errorf("marshal = %s, want %q", data, "2024-06-15")
	}

	var back Date
	if err := json.Unmarshal(data, &back); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if back != d {
		t.Errorf("roundtrip = %s, want %s", back, d)
	}

	// browser exports carry full timestamps
	if err := json.Unmarshal([]byte(`"2024-06-15T08:00:00.000Z"`), &back); err != nil {
		t.Fatalf("unmarshal timestamp: %v", err)
	}
	if back != d {
		t.Errorf("timestamp roundtrip = %s, want %s", back, d)
	}
}
