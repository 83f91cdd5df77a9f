package roster

import "fmt"

// Section is one teachable course section.
type Section struct {
	Code    string
	Label   string
	Teacher string
}

// Sections returns the course sections faculty can mark attendance for.
func Sections() []Section {
	return []Section{
		{Code: "CS-101A", Label: "CS-101 Sec A", Teacher: "Prof. Sharma"},
		{Code: "EE-205B", Label: "EE-205 Sec B", Teacher: "Prof. Gupta"},
		{Code: "CS-301", Label: "CS-301", Teacher: "Prof. Reddy"},
		{Code: "IT-201A", Label: "IT-201 Sec A", Teacher: "Prof. Patel"},
		{Code: "BA-401", Label: "BA-401", Teacher: "Prof. Singh"},
	}
}

// SectionLabel resolves a section code to its display label, falling back to
// the code itself for unknown sections.
func SectionLabel(code string) string {
	for _, s := range Sections() {
		if s.Code == code {
			return s.Label
		}
	}
	return code
}

// Hour is one teaching period of the day.
type Hour struct {
	ID    int
	Label string
	Time  string
}

// Hours returns the six teaching periods of a working day.
func Hours() []Hour {
	return []Hour{
		{1, "Hour 1", "9:00 – 9:50"},
		{2, "Hour 2", "9:50 – 10:40"},
		{3, "Hour 3", "10:50 – 11:40"},
		{4, "Hour 4", "11:40 – 12:30"},
		{5, "Hour 5", "1:30 – 2:20"},
		{6, "Hour 6", "2:20 – 3:10"},
	}
}

// HourByID looks up an hour by its number.
func HourByID(id int) (Hour, bool) {
	for _, h := range Hours() {
		if h.ID == id {
			return h, true
		}
	}
	return Hour{}, false
}

var timetable = map[string]map[int]string{
	"CS-101A": {
		1: "Data Structures", 2: "Discrete Math", 3: "English",
		4: "Physics Lab", 5: "Programming Lab", 6: "Mentoring",
	},
	"EE-205B": {
		1: "Circuit Analysis", 2: "Signals & Systems", 3: "EM Theory",
		4: "Electronics Lab", 5: "Math-III", 6: "Seminar",
	},
	"CS-301": {
		1: "Operating Systems", 2: "Computer Networks", 3: "DBMS",
		4: "OS Lab", 5: "Software Engg.", 6: "Project Work",
	},
	"IT-201A": {
		1: "Database Systems", 2: "Web Technologies", 3: "Statistics",
		4: "DBMS Lab", 5: "Java Programming", 6: "Library",
	},
	"BA-401": {
		1: "Business Analytics", 2: "Marketing Mgmt.", 3: "Finance",
		4: "Case Study", 5: "Entrepreneurship", 6: "Placement Prep",
	},
}

// SubjectFor returns the subject taught to a section at a given hour,
// "N/A" when the timetable has no entry.
func SubjectFor(section string, hour int) string {
	if subj, ok := timetable[section][hour]; ok {
		return subj
	}
	return "N/A"
}

var classRosters = map[string][]string{
	"CS-101A": {"Aarav Sharma", "Priya Patel", "Ishita Verma", "Rahul Dey", "Meera Nair", "Siddharth Rao", "Kavya Iyer", "Arjun Malhotra"},
	"EE-205B": {"Arjun Kumar", "Sneha Reddy", "Kavya Iyer", "Ravi Shankar", "Nisha Gupta", "Dev Thakur", "Pooja Mehta", "Sameer Khan"},
	"CS-301":  {"Rohan Gupta", "Ananya Singh", "Vikram Shah", "Tanya Bose", "Harsh Vardhan", "Riya Kapoor", "Amit Das", "Sunita Pillai"},
	"IT-201A": {"Diya Joshi", "Vivaan Nair", "Aisha Khan", "Lakshmi Rajan", "Nikhil Goyal", "Tanvi Deshmukh", "Om Prakash", "Simran Kaur"},
	"BA-401":  {"Karan Mehta", "Aditya Rao", "Nandini Shetty", "Pranav Kulkarni", "Deepa Mishra", "Rajesh Pillai", "Monika Agarwal", "Suresh Kumar"},
}

// ClassRoster builds the attendee list for a section. Unknown sections fall
// back to the CS-101A roster so the sheet is never empty.
func ClassRoster(section string) []Attendee {
	names, ok := classRosters[section]
	if !ok {
		names = classRosters["CS-101A"]
	}
	out := make([]Attendee, 0, len(names))
	for i, name := range names {
		out = append(out, Attendee{
			ID:     i + 1,
			Name:   name,
			RollNo: fmt.Sprintf("%s-%02d", section, i+1),
			Avatar: AvatarInitials(name),
		})
	}
	return out
}

// AvatarInitials joins the first letter of every word of a name, the way the
// roster avatars are rendered.
func AvatarInitials(name string) string {
	out := make([]rune, 0, 4)
	prevSpace := true
	for _, r := range name {
		if r == ' ' {
			prevSpace = true
			continue
		}
		if prevSpace {
			out = append(out, r)
		}
		prevSpace = false
	}
	return string(out)
}
