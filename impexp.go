package atlas

import (
	"encoding/json"
	"fmt"
	"io"
	"time"
)

// this file contains functions to handle the export/backup format.
// It should remain human readable, single file and easy to re-import.

// exportVersion is the envelope version written by Export and required on
// import. Bumped only on incompatible shape changes.
const exportVersion = "1.0"

type envelope struct {
	Friends    []Friend `json:"friends"`
	ExportDate string   `json:"exportDate"`
	Version    string   `json:"version"`
}

// ExportFriends writes the friend collection to 'w' in the backup format: a
// single pretty-printed JSON object carrying the records, the export
// timestamp and the format version.
func ExportFriends(w io.Writer, friends []Friend, now time.Time) error {
	if friends == nil {
		friends = []Friend{}
	}
	env := envelope{
		Friends:    friends,
		ExportDate: now.UTC().Format(time.RFC3339),
		Version:    exportVersion,
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(env)
}

// ExportFileName returns the conventional backup file name for a given day,
// like "atlas-export-2026-08-29.json".
func ExportFileName(on Date) string {
	return fmt.Sprintf("atlas-export-%s.json", on)
}

// ImportFriends reads a backup from 'r' and returns the usable records.
//
// The reader must contain an envelope with a "friends" array; anything else
// is an error. Individual records are gentler: one missing a name or a
// location is skipped and counted rather than failing the whole import, so
// a partially hand-edited backup still loads. Incoming ids are discarded
// (the original app used numeric ids, fresh ones get assigned on merge) and
// deduplication against an existing collection is the caller's concern.
func ImportFriends(r io.Reader) (friends []Friend, skipped int, err error) {

	// the readable version of the format can be summarized by a few types.
	type jfriend struct {
		ID          json.RawMessage `json:"id"` // string or number, ignored
		Name        string          `json:"name"`
		Location    string          `json:"location"`
		Coordinates Coordinates     `json:"coordinates"`
		LastContact Date            `json:"lastContact"`
		CanStay     bool            `json:"canStay"`
		Notes       string          `json:"notes"`
	}
	type jenvelope struct {
		Friends    []jfriend `json:"friends"`
		ExportDate string    `json:"exportDate"`
		Version    string    `json:"version"`
	}

	var env jenvelope
	if err := json.NewDecoder(r).Decode(&env); err != nil {
		return nil, 0, fmt.Errorf("cannot parse export format: %w", err)
	}
	if env.Friends == nil {
		return nil, 0, fmt.Errorf("cannot parse export format: missing %q array", "friends")
	}

	for _, jf := range env.Friends {
		if jf.Name == "" || jf.Location == "" {
			skipped++
			continue
		}
		friends = append(friends, Friend{
			Name:        jf.Name,
			Location:    jf.Location,
			Coordinates: jf.Coordinates,
			LastContact: jf.LastContact,
			CanStay:     jf.CanStay,
			Notes:       jf.Notes,
		})
	}
	return friends, skipped, nil
}
