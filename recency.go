package atlas

// The two thresholds below are the only recency constants in the codebase.
// Marker coloring, the reminders list and urgency styling must all agree, so
// every consumer classifies through them.
const (
	// RecentContactDays is the inclusive upper bound of "recently contacted".
	RecentContactDays = 30
	// UrgentContactDays is the inclusive upper bound of "check in soon";
	// beyond it a friend needs attention.
	UrgentContactDays = 90
)

// Recency classifies how long ago a friend was last contacted.
type Recency int

const (
	RecentContact Recency = iota
	CheckInSoon
	NeedsAttention
)

func (r Recency) String() string {
	switch r {
	case RecentContact:
		return "recently contacted"
	case CheckInSoon:
		return "check in soon"
	case NeedsAttention:
		return "needs attention"
	default:
		return "unknown"
	}
}

// DaysSinceContact returns the whole days elapsed between a friend's last
// contact and the given date.
func DaysSinceContact(f Friend, on Date) int {
	return f.LastContact.DaysUntil(on)
}

// ClassifyDays maps elapsed days onto a Recency. Day 30 is still recent,
// day 31 is check-in-soon; day 90 is still check-in-soon, day 91 needs
// attention.
func ClassifyDays(days int) Recency {
	switch {
	case days > UrgentContactDays:
		return NeedsAttention
	case days > RecentContactDays:
		return CheckInSoon
	default:
		return RecentContact
	}
}

// Overdue reports whether a friend should appear in the reminders list.
func Overdue(f Friend, on Date) bool {
	return DaysSinceContact(f, on) > RecentContactDays
}
