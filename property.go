package atlas

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// Status tracks how far along the ownership journey a property is.
//
// The progression dream -> research -> target -> negotiating -> owned is
// intent, not enforcement: any status may be set at creation, and a property
// is never edited afterwards (only removed and re-added).
type Status int

const (
	Dream Status = iota
	Research
	Target
	Negotiating
	Owned
)

func (s Status) String() string {
	switch s {
	case Dream:
		return "dream"
	case Research:
		return "research"
	case Target:
		return "target"
	case Negotiating:
		return "negotiating"
	case Owned:
		return "owned"
	default:
		return "unknown"
	}
}

// ParseStatus parses a string into a Status.
func ParseStatus(s string) (Status, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "dream":
		return Dream, nil
	case "research":
		return Research, nil
	case "target":
		return Target, nil
	case "negotiating":
		return Negotiating, nil
	case "owned":
		return Owned, nil
	default:
		return 0, fmt.Errorf("unknown property status: %q", s)
	}
}

func (s Status) MarshalText() ([]byte, error) { return []byte(s.String()), nil }

func (s *Status) UnmarshalText(text []byte) error {
	v, err := ParseStatus(string(text))
	if err != nil {
		return err
	}
	*s = v
	return nil
}

// PropertyType is an open set: the known values get an icon, anything else
// renders without one.
type PropertyType string

const (
	Apartment  PropertyType = "apartment"
	House      PropertyType = "house"
	Villa      PropertyType = "villa"
	Land       PropertyType = "land"
	Island     PropertyType = "island"
	Commercial PropertyType = "commercial"
)

// Icon returns the marker icon for known types, or "" for unknown ones.
func (t PropertyType) Icon() string {
	switch t {
	case Apartment:
		return "🏢"
	case House:
		return "🏠"
	case Villa:
		return "🏖️"
	case Land:
		return "🌳"
	case Island:
		return "🏝️"
	case Commercial:
		return "🏪"
	default:
		return ""
	}
}

// Property is an owned or aspirational property. Fields are immutable after
// creation; there is no edit operation.
type Property struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Location    string          `json:"location"`
	Coordinates Coordinates     `json:"coordinates"`
	Status      Status          `json:"status"`
	Cost        decimal.Decimal `json:"cost"`
	Type        PropertyType    `json:"type"`
	Climate     int             `json:"climate"`
	Strategic   int             `json:"strategic"`
	Notes       string          `json:"notes,omitempty"`
	DateAdded   time.Time       `json:"dateAdded"`
}

// RecordID returns the property's unique identity.
func (p Property) RecordID() string { return p.ID }

// WithID returns a copy of the property carrying the given identity.
func (p Property) WithID(id string) Property {
	p.ID = id
	return p
}

// MergeKey mirrors the friend rule: name plus location, case-insensitive.
func (p Property) MergeKey() string {
	return strings.ToLower(p.Name) + "\x00" + strings.ToLower(p.Location)
}

// Validate checks a property for correctness before it enters the store.
func (p Property) Validate() error {
	if strings.TrimSpace(p.Name) == "" {
		return fmt.Errorf("property name is required")
	}
	if strings.TrimSpace(p.Location) == "" {
		return fmt.Errorf("property location is required")
	}
	if p.Cost.IsNegative() {
		return fmt.Errorf("property cost must not be negative, got %s", p.Cost)
	}
	if p.Climate < 0 || p.Climate > 5 {
		return fmt.Errorf("climate score must be within 0..5, got %d", p.Climate)
	}
	if p.Strategic < 0 || p.Strategic > 5 {
		return fmt.Errorf("strategic score must be within 0..5, got %d", p.Strategic)
	}
	return nil
}
