package atlas

import "fmt"

// Coordinates is a latitude/longitude pair in decimal degrees.
//
// The zero pair is the "unresolved" sentinel: geocoding failed or found no
// match. Unresolved records are kept and persisted, they are simply skipped
// by anything that places markers.
type Coordinates struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// Unresolved reports whether the coordinates are the geocoding-failure sentinel.
func (c Coordinates) Unresolved() bool { return c.Lat == 0 && c.Lng == 0 }

func (c Coordinates) String() string {
	if c.Unresolved() {
		return "unresolved"
	}
	return fmt.Sprintf("%.4f, %.4f", c.Lat, c.Lng)
}
