package roster

import "time"

// Mark is the per-hour attendance status of a single attendee.
type Mark string

const (
	MarkNone    Mark = ""
	MarkPresent Mark = "present"
	MarkAbsent  Mark = "absent"
	MarkLate    Mark = "late"
	MarkOnDuty  Mark = "od"
)

// ValidMark reports whether m is one of the four settable statuses.
func ValidMark(m Mark) bool {
	switch m {
	case MarkPresent, MarkAbsent, MarkLate, MarkOnDuty:
		return true
	}
	return false
}

// Attendee is one row of a marking sheet.
type Attendee struct {
	ID          int
	Name        string
	RollNo      string
	Avatar      string
	Status      Mark
	ArrivalTime string
}

// Counts summarizes a sheet by status.
type Counts struct {
	Present  int
	Absent   int
	Late     int
	OnDuty   int
	Unmarked int
}

// Sheet is the working state of one section/hour marking session.
type Sheet struct {
	Section   string
	Hour      int
	Subject   string
	attendees []Attendee

	now func() time.Time
}

// NewSheet opens a fresh marking sheet for a section and hour, resolving the
// subject from the timetable and loading the section roster unmarked.
func NewSheet(section string, hour int) *Sheet {
	return &Sheet{
		Section:   section,
		Hour:      hour,
		Subject:   SubjectFor(section, hour),
		attendees: ClassRoster(section),
		now:       time.Now,
	}
}

func formatArrival(t time.Time) string {
	return t.Format("3:04 PM")
}

// SetMark records a status for the attendee with the given id. Arrival time
// is captured only for present and late marks.
func (s *Sheet) SetMark(id int, m Mark) bool {
	if !ValidMark(m) {
		return false
	}
	for i := range s.attendees {
		if s.attendees[i].ID != id {
			continue
		}
		s.attendees[i].Status = m
		if m == MarkPresent || m == MarkLate {
			s.attendees[i].ArrivalTime = formatArrival(s.now())
		} else {
			s.attendees[i].ArrivalTime = ""
		}
		return true
	}
	return false
}

// MarkAll applies one status to every attendee on the sheet.
func (s *Sheet) MarkAll(m Mark) bool {
	if !ValidMark(m) {
		return false
	}
	arrival := ""
	if m == MarkPresent || m == MarkLate {
		arrival = formatArrival(s.now())
	}
	for i := range s.attendees {
		s.attendees[i].Status = m
		s.attendees[i].ArrivalTime = arrival
	}
	return true
}

// Attendees returns a copy of the sheet rows.
func (s *Sheet) Attendees() []Attendee {
	out := make([]Attendee, len(s.attendees))
	copy(out, s.attendees)
	return out
}

// Counts tallies the sheet by status.
func (s *Sheet) Counts() Counts {
	var c Counts
	for _, a := range s.attendees {
		switch a.Status {
		case MarkPresent:
			c.Present++
		case MarkAbsent:
			c.Absent++
		case MarkLate:
			c.Late++
		case MarkOnDuty:
			c.OnDuty++
		default:
			c.Unmarked++
		}
	}
	return c
}

// Absentees returns the attendees currently marked absent.
func (s *Sheet) Absentees() []Attendee {
	out := make([]Attendee, 0)
	for _, a := range s.attendees {
		if a.Status == MarkAbsent {
			out = append(out, a)
		}
	}
	return out
}
