package atlas

// Reminder is one overdue friend with its elapsed-days detail.
type Reminder struct {
	Friend Friend
	Days   int
	Urgent bool // more than UrgentContactDays since last contact
}

// Reminders is the overdue-contact report on a given date.
type Reminders struct {
	Date    Date
	Overdue []Reminder
}

// NewReminders computes the overdue list: every friend whose last contact is
// more than RecentContactDays ago, in collection order.
func NewReminders(friends []Friend, on Date) *Reminders {
	r := &Reminders{Date: on}
	for _, f := range friends {
		days := DaysSinceContact(f, on)
		if days <= RecentContactDays {
			continue
		}
		r.Overdue = append(r.Overdue, Reminder{
			Friend: f,
			Days:   days,
			Urgent: days > UrgentContactDays,
		})
	}
	return r
}

// AllCaughtUp reports the explicit nothing-to-show state, distinct from a
// report that was never computed.
func (r *Reminders) AllCaughtUp() bool { return len(r.Overdue) == 0 }
