package atlas

import "testing"

func TestParseAddUtterance(t *testing.T) {
	tests := []struct {
		in       string
		name     string
		location string
	}{
		{"add maria in porto portugal", "Maria", "Porto portugal"},
		{"Add Jean Pierre in Lyon", "Jean pierre", "Lyon"},
		{"please add sam in stockholm", "Sam", "Stockholm"},
	}
	for _, tc := range tests {
		req, ok := ParseAddUtterance(tc.in)
		if !ok {
			t.Errorf("ParseAddUtterance(%q): no match", tc.in)
			continue
		}
		if req.Name != tc.name || req.Location != tc.location {
			t.Errorf("ParseAddUtterance(%q) = %+v, want %q in %q", tc.in, req, tc.name, tc.location)
		}
	}
}

func TestParseAddUtteranceRejects(t *testing.T) {
	for _, in := range []string{
		"",
		"call maria tomorrow",
		"add in porto",        // no name
		"add maria",          // no location marker
		"in porto add maria", // no "in" after "add"
	} {
		if req, ok := ParseAddUtterance(in); ok {
			t.Errorf("ParseAddUtterance(%q) = %+v, want no match", in, req)
		}
	}
}
