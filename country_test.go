package atlas

import "testing"

func TestDerivedCountry(t *testing.T) {
	tests := []struct {
		location string
		want     string
	}{
		{"Berlin, Germany", "Germany"},
		{"Lisbon", "Lisbon"},
		{"Ubud, Bali, Indonesia", "Indonesia"},
		{"  Sydney ,  Australia  ", "Australia"},
		{"", ""},
	}
	for _, tc := range tests {
		if got := DerivedCountry(tc.location); got != tc.want {
			t.Errorf("DerivedCountry(%q) = %q, want %q", tc.location, got, tc.want)
		}
	}
}

// Country comparison is case-insensitive but never normalized: UK and
// United Kingdom stay distinct.
func TestCountryKey(t *testing.T) {
	if CountryKey("London, UK") != CountryKey("Leeds, uk") {
		t.Error("same country with different casing should share a key")
	}
	if CountryKey("London, UK") == CountryKey("Leeds, United Kingdom") {
		t.Error("UK and United Kingdom must stay distinct")
	}
}

func TestContinentOf(t *testing.T) {
	tests := []struct {
		country string
		want    string
	}{
		{"Germany", Europe},
		{"UK", Europe},
		{"United Kingdom", Europe},
		{"Japan", Asia},
		{"Australia", Oceania},
		{"Brazil", SouthAmerica},
		{"USA", NorthAmerica},
		{"Narnia", OtherContinent},
	}
	for _, tc := range tests {
		if got := ContinentOf(tc.country); got != tc.want {
			t.Errorf("ContinentOf(%q) = %q, want %q", tc.country, got, tc.want)
		}
	}
}
