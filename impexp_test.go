package atlas

import (
	"bytes"
	"strings"
	"testing"
	"time"
)

func TestExportImportRoundtrip(t *testing.T) {
	friends := []Friend{
		{ID: "a", Name: "Alex", Location: "Berlin, Germany", LastContact: NewDate(2024, 6, 15), CanStay: true},
		{ID: "b", Name: "Sage", Location: "Tokyo, Japan", LastContact: NewDate(2024, 6, 30)},
	}

	var buf bytes.Buffer
	if err := ExportFriends(&buf, friends, time.Date(2024, 7, 10, 12, 0, 0, 0, time.UTC)); err != nil {
		t.Fatalf("export: %v", err)
	}
	out := buf.String()
	for _, want := range []string{`"friends"`, `"exportDate": "2024-07-10T12:00:00Z"`, `"version": "1.0"`} {
		if !strings.Contains(out, want) {
			t.Errorf("export misses %s:\n%s", want, out)
		}
	}

	back, skipped, err := ImportFriends(&buf)
	if err != nil {
		t.Fatalf("import: %v", err)
	}
	if skipped != 0 {
		t.Errorf("skipped %d valid records", skipped)
	}
	if len(back) != 2 || back[0].Name != "Alex" || back[1].LastContact != NewDate(2024, 6, 30) {
		t.Errorf("roundtrip = %+v", back)
	}
}

func TestImportSkipsIncompleteRecords(t *testing.T) {
	in := `{
		"friends": [
			{"name": "Alex", "location": "Berlin, Germany"},
			{"name": "", "location": "Nowhere"},
			{"name": "Ghost"}
		],
		"exportDate": "2024-07-10T12:00:00Z",
		"version": "1.0"
	}`

	friends, skipped, err := ImportFriends(strings.NewReader(in))
	if err != nil {
		t.Fatalf("import: %v", err)
	}
	if len(friends) != 1 || friends[0].Name != "Alex" {
		t.Errorf("friends = %+v, want just Alex", friends)
	}
	if skipped != 2 {
		t.Errorf("skipped = %d, want 2", skipped)
	}
}

func TestImportRejectsBadFormat(t *testing.T) {
	for name, in := range map[string]string{
		"not json":         "hello",
		"wrong shape":      `{"version": "1.0"}`,
		"friends not list": `{"friends": 42}`,
	} {
		if _, _, err := ImportFriends(strings.NewReader(in)); err == nil {
			t.Errorf("%s: expected an error", name)
		}
	}
}

func TestImportBrowserExport(t *testing.T) {
	// the original web app exported full timestamps and numeric ids
	in := `{
		"friends": [
			{"id": 3, "name": "Jordan", "location": "London, UK",
			 "coordinates": {"lat": 51.5074, "lng": -0.1278},
			 "lastContact": "2024-07-01T00:00:00.000Z", "canStay": false}
		],
		"exportDate": "2024-07-10T12:34:56.000Z",
		"version": "1.0"
	}`

	friends, _, err := ImportFriends(strings.NewReader(in))
	if err != nil {
		t.Fatalf("import: %v", err)
	}
	if len(friends) != 1 {
		t.Fatalf("got %d friends, want 1", len(friends))
	}
	if friends[0].LastContact != NewDate(2024, 7, 1) {
		t.Errorf("lastContact = %s, want 2024-07-01", friends[0].LastContact)
	}
}

func TestExportFileName(t *testing.T) {
	if got := ExportFileName(NewDate(2026, 8, 29)); got != "atlas-export-2026-08-29.json" {
		t.Errorf("ExportFileName = %q", got)
	}
}
