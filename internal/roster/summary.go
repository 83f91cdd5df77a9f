package roster

import "math"

// SubjectSummary is the per-subject attendance record shown to students.
type SubjectSummary struct {
	Name    string
	Code    string
	Total   int
	Present int
	Absent  int
	Late    int
	OnDuty  int
}

// Attended counts the classes that contribute to the attendance percentage:
// late and on-duty hours count the same as present ones.
func (s SubjectSummary) Attended() int {
	return s.Present + s.Late + s.OnDuty
}

// Percentage is the subject attendance rate rounded to the nearest integer.
func (s SubjectSummary) Percentage() int {
	if s.Total == 0 {
		return 0
	}
	return int(math.Round(float64(s.Attended()) / float64(s.Total) * 100))
}

// SubjectSummaries returns the demo subject-wise records for the student view.
func SubjectSummaries() []SubjectSummary {
	return []SubjectSummary{
		{Name: "Data Structures", Code: "CS-101", Total: 45, Present: 42, Absent: 1, Late: 1, OnDuty: 1},
		{Name: "Discrete Math", Code: "MA-102", Total: 44, Present: 38, Absent: 4, Late: 2, OnDuty: 0},
		{Name: "English", Code: "EN-101", Total: 40, Present: 37, Absent: 2, Late: 1, OnDuty: 0},
		{Name: "Physics Lab", Code: "PH-103", Total: 20, Present: 18, Absent: 1, Late: 1, OnDuty: 0},
		{Name: "Programming Lab", Code: "CS-104", Total: 22, Present: 21, Absent: 0, Late: 1, OnDuty: 0},
		{Name: "Mentoring", Code: "MN-100", Total: 18, Present: 17, Absent: 0, Late: 0, OnDuty: 1},
	}
}

// Totals aggregates subject summaries into overall numbers.
type Totals struct {
	Classes int
	Present int
	Absent  int
	Late    int
	OnDuty  int
}

// OverallPercent is the rounded overall attendance rate across all subjects.
func (t Totals) OverallPercent() int {
	if t.Classes == 0 {
		return 0
	}
	return int(math.Round(float64(t.Present+t.Late+t.OnDuty) / float64(t.Classes) * 100))
}

// Aggregate sums a set of subject summaries.
func Aggregate(subjects []SubjectSummary) Totals {
	var t Totals
	for _, s := range subjects {
		t.Classes += s.Total
		t.Present += s.Present
		t.Absent += s.Absent
		t.Late += s.Late
		t.OnDuty += s.OnDuty
	}
	return t
}

// ScheduleSlot is one hour of a student's day with its recorded status.
type ScheduleSlot struct {
	Hour        int
	Time        string
	Subject     string
	Status      Mark
	ArrivalTime string
}

// StatusLabel renders a slot status for display. Unmarked slots read as
// upcoming.
func (s ScheduleSlot) StatusLabel() string {
	switch s.Status {
	case MarkPresent:
		return "Present"
	case MarkAbsent:
		return "Absent"
	case MarkLate:
		return "Late"
	case MarkOnDuty:
		return "On Duty"
	}
	return "Upcoming"
}

// TodaySchedule returns the demo timeline for the student view.
func TodaySchedule() []ScheduleSlot {
	return []ScheduleSlot{
		{Hour: 1, Time: "9:00 – 9:50", Subject: "Data Structures", Status: MarkPresent, ArrivalTime: "8:57 AM"},
		{Hour: 2, Time: "9:50 – 10:40", Subject: "Discrete Math", Status: MarkPresent, ArrivalTime: "9:48 AM"},
		{Hour: 3, Time: "10:50 – 11:40", Subject: "English", Status: MarkLate, ArrivalTime: "11:02 AM"},
		{Hour: 4, Time: "11:40 – 12:30", Subject: "Physics Lab", Status: MarkPresent, ArrivalTime: "11:38 AM"},
		{Hour: 5, Time: "1:30 – 2:20", Subject: "Programming Lab"},
		{Hour: 6, Time: "2:20 – 3:10", Subject: "Mentoring"},
	}
}
