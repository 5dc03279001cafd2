package atlas

import "strings"

// Friend is a person in the network, located by a free-text "City, Country"
// string. Coordinates are resolved once at creation time and never refreshed.
type Friend struct {
	ID          string      `json:"id"`
	Name        string      `json:"name"`
	Location    string      `json:"location"`
	Coordinates Coordinates `json:"coordinates"`
	LastContact Date        `json:"lastContact"`
	CanStay     bool        `json:"canStay"`
	Notes       string      `json:"notes,omitempty"`
}

// RecordID returns the friend's unique identity.
func (f Friend) RecordID() string { return f.ID }

// WithID returns a copy of the friend carrying the given identity.
func (f Friend) WithID(id string) Friend {
	f.ID = id
	return f
}

// MergeKey is the duplicate-detection key used by imports: a friend is a
// duplicate of another iff both name and location match case-insensitively.
func (f Friend) MergeKey() string {
	return strings.ToLower(f.Name) + "\x00" + strings.ToLower(f.Location)
}

// Hosts filters friends down to the lodging-capable ones.
func Hosts(friends []Friend) []Friend {
	var hosts []Friend
	for _, f := range friends {
		if f.CanStay {
			hosts = append(hosts, f)
		}
	}
	return hosts
}

// Names collects friend names in collection order.
func Names(friends []Friend) []string {
	names := make([]string, 0, len(friends))
	for _, f := range friends {
		names = append(names, f.Name)
	}
	return names
}
