// Package geo resolves free-text locations to coordinates through a
// Nominatim-compatible search endpoint.
package geo

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"strconv"

	"github.com/PaesslerAG/jsonpath"
	"github.com/evranch/atlas"
)

// DefaultBaseURL is the public Nominatim instance. Heavy users should point
// Geocoder at their own.
const DefaultBaseURL = "https://nominatim.openstreetmap.org"

// Geocoder resolves locations against a search endpoint. The zero value is
// not usable; use New.
type Geocoder struct {
	BaseURL string
	Client  *http.Client
}

// New returns a Geocoder against the given endpoint backed by the daily
// disk cache, so repeated lookups of the same location stay off the wire.
// An empty baseURL means DefaultBaseURL.
func New(baseURL string) *Geocoder {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Geocoder{BaseURL: baseURL, Client: daily()}
}

// Locate resolves a location like "Lisbon, Portugal" to coordinates.
//
// Lookups are best effort: on any failure (network, bad status, empty
// result set, unparseable payload) it logs the cause and returns the
// unresolved zero coordinates so the caller can still create the record.
func (g *Geocoder) Locate(location string) atlas.Coordinates {
	coords, err := g.locate(location)
	if err != nil {
		log.Printf("cannot geocode %q (using unresolved coordinates): %v", location, err)
		return atlas.Coordinates{}
	}
	return coords
}

/*
	[
	    {
	        "place_id": 133233936,
	        "lat": "38.7077507",
	        "lon": "-9.1365919",
	        "display_name": "Lisboa, Portugal"
	    }
	]
*/
func (g *Geocoder) locate(location string) (atlas.Coordinates, error) {
	addr := g.BaseURL + "/search?format=json&q=" + url.QueryEscape(location)

	var jobj any
	if err := jwget(g.Client, addr, &jobj); err != nil {
		return atlas.Coordinates{}, err
	}

	lat, err := floatAt(jobj, "$[0].lat")
	if err != nil {
		return atlas.Coordinates{}, err
	}
	lng, err := floatAt(jobj, "$[0].lon")
	if err != nil {
		return atlas.Coordinates{}, err
	}
	return atlas.Coordinates{Lat: lat, Lng: lng}, nil
}

// floatAt extracts a float at 'path', accepting the string encoding
// Nominatim actually uses for its numbers.
func floatAt(jobj any, path string) (float64, error) {
	jval, err := jsonpath.Get(path, jobj)
	if err != nil {
		return 0, fmt.Errorf("error parsing geocoder response: %q %w", path, err)
	}
	// jsonpath is never clear about whether it returns a list of 1 answer
	// or a single answer: keep the first one if any.
	if jlist, ok := jval.([]any); ok && len(jlist) > 0 {
		jval = jlist[0]
	}
	switch v := jval.(type) {
	case float64:
		return v, nil
	case string:
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return 0, fmt.Errorf("error parsing geocoder response: %q not a number: %q", path, v)
		}
		return f, nil
	default:
		return 0, fmt.Errorf("error parsing geocoder response: %q not a number: %v", path, jval)
	}
}

// jwget performs an HTTP GET request and unmarshals the JSON response into the provided data structure.
func jwget(client *http.Client, addr string, data any) error {
	req, err := http.NewRequest(http.MethodGet, addr, nil)
	if err != nil {
		return err
	}
	// Nominatim's usage policy requires an identifying agent.
	req.Header.Set("User-Agent", "atlas/1.0")
	resp, err := client.Do(req)
	if err != nil {
		return err
	}
	if resp.StatusCode != 200 {
		return fmt.Errorf("cannot http GET %v/%v: %v", resp.Request.URL.Host, resp.Request.URL.Path, resp.Status)
	}
	var buf bytes.Buffer
	_, err = io.Copy(&buf, resp.Body)
	if err != nil {
		return err
	}
	resp.Body.Close()
	return json.Unmarshal(buf.Bytes(), data)
}
