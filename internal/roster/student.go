// Package roster holds the demo datasets behind the attendance views:
// students, course sections, timetables, per-subject summaries, and the
// mark-attendance sheet, plus the low-attendance alert notifier. Everything
// here is in-memory seed data; there is no backing service.
package roster

// Band classifies a cumulative attendance percentage for display.
type Band string

const (
	BandGood    Band = "good"    // >= 90
	BandWarning Band = "warning" // >= 75
	BandDanger  Band = "danger"  // below 75
)

// BandFor applies the display thresholds to a percentage.
func BandFor(percentage int) Band {
	switch {
	case percentage >= 90:
		return BandGood
	case percentage >= 75:
		return BandWarning
	default:
		return BandDanger
	}
}

// StudentStatus is the roster standing shown next to each student.
type StudentStatus string

const (
	StatusActive    StudentStatus = "active"
	StatusWatch     StudentStatus = "warning"
	StatusProbation StudentStatus = "danger"
	StatusFilterAll StudentStatus = "all"
)

// Student is one row of the institute roster.
type Student struct {
	ID         int
	Name       string
	RollNo     string
	Course     string
	Email      string
	Phone      string
	Attendance int
	Status     StudentStatus
	Avatar     string
}

// Students returns the demo roster. A fresh slice is returned on every call.
func Students() []Student {
	return []Student{
		{1, "Aarav Sharma", "CSE-2024-001", "CS-101", "aarav@university.edu", "+91 98765 43210", 96, StatusActive, "AS"},
		{2, "Priya Patel", "CSE-2024-002", "CS-101", "priya@university.edu", "+91 98765 43211", 92, StatusActive, "PP"},
		{3, "Arjun Kumar", "ECE-2024-003", "EE-205", "arjun@university.edu", "+91 98765 43212", 88, StatusActive, "AK"},
		{4, "Sneha Reddy", "ECE-2024-004", "EE-205", "sneha@university.edu", "+91 98765 43213", 94, StatusActive, "SR"},
		{5, "Rohan Gupta", "CSE-2023-005", "CS-301", "rohan@university.edu", "+91 98765 43214", 78, StatusWatch, "RG"},
		{6, "Ananya Singh", "CSE-2023-006", "CS-301", "ananya@university.edu", "+91 98765 43215", 97, StatusActive, "AS"},
		{7, "Karan Mehta", "MBA-2022-007", "BA-401", "karan@university.edu", "+91 98765 43216", 65, StatusProbation, "KM"},
		{8, "Diya Joshi", "IT-2024-008", "IT-201", "diya@university.edu", "+91 98765 43217", 91, StatusActive, "DJ"},
		{9, "Vivaan Nair", "IT-2024-009", "IT-201", "vivaan@university.edu", "+91 98765 43218", 85, StatusActive, "VN"},
		{10, "Ishita Verma", "CSE-2024-010", "CS-101", "ishita@university.edu", "+91 98765 43219", 93, StatusActive, "IV"},
		{11, "Aditya Rao", "MBA-2022-011", "BA-401", "aditya@university.edu", "+91 98765 43220", 72, StatusWatch, "AR"},
		{12, "Kavya Iyer", "ECE-2024-012", "EE-205", "kavya@university.edu", "+91 98765 43221", 90, StatusActive, "KI"},
	}
}

// FilterByStatus keeps students matching status; StatusFilterAll keeps
// everyone.
func FilterByStatus(list []Student, status StudentStatus) []Student {
	if status == StatusFilterAll {
		return list
	}
	out := make([]Student, 0, len(list))
	for _, s := range list {
		if s.Status == status {
			out = append(out, s)
		}
	}
	return out
}

// BelowThreshold returns students whose cumulative attendance is under the
// given percentage.
func BelowThreshold(list []Student, threshold int) []Student {
	out := make([]Student, 0)
	for _, s := range list {
		if s.Attendance < threshold {
			out = append(out, s)
		}
	}
	return out
}
