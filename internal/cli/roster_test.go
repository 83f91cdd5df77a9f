package cli

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStudents_FilterByStanding(t *testing.T) {
	app, out := newTestApp(t, &fakeSender{})
	loginSeedAdmin(t, app)
	app.gate.Skip()

	stubInputs(t, "", lit("danger"))
	require.NoError(t, app.Students(context.Background()))

	assert.Contains(t, out.String(), "Karan Mehta")
	assert.NotContains(t, out.String(), "Priya Patel")
	assert.Contains(t, out.String(), "1 student(s)")
}

func TestStudents_UnknownFilterShowsAll(t *testing.T) {
	app, out := newTestApp(t, &fakeSender{})
	loginSeedAdmin(t, app)
	app.gate.Skip()

	stubInputs(t, "", lit("sleepy"))
	require.NoError(t, app.Students(context.Background()))

	assert.Contains(t, out.String(), "unknown standing")
	assert.Contains(t, out.String(), "12 student(s)")
}

func TestStudents_StudentRoleDiverted(t *testing.T) {
	app, out := newTestApp(t, &fakeSender{})
	stubInputs(t, "student123", lit("student@university.edu"))
	require.NoError(t, app.Login(context.Background()))
	app.gate.Skip()

	require.NoError(t, app.Students(context.Background()))

	assert.Contains(t, out.String(), "showing your attendance instead")
	assert.Contains(t, out.String(), "overall 96%")
}

func TestMyAttendance_Summary(t *testing.T) {
	app, out := newTestApp(t, &fakeSender{})
	stubInputs(t, "student123", lit("student@university.edu"))
	require.NoError(t, app.Login(context.Background()))
	app.gate.Skip()

	require.NoError(t, app.MyAttendance(context.Background()))

	s := out.String()
	assert.Contains(t, s, "overall 96% | present 173 | absent 8 | late 6 | od 2")
	assert.Contains(t, s, "Data Structures")
	assert.Contains(t, s, "Upcoming")
	assert.Contains(t, s, "98%")
}

func TestAttendance_MarkAndSubmitSendsAlerts(t *testing.T) {
	sender := &fakeSender{}
	app, out := newTestApp(t, sender)
	loginSeedAdmin(t, app)
	app.gate.Skip()

	stubInputs(t, "",
		lit("CS-101A"), lit("1"), // section, hour
		lit("all p"),
		lit("2 a"),
		lit("submit"),
	)
	require.NoError(t, app.Attendance(context.Background()))

	s := out.String()
	assert.Contains(t, s, "Marking CS-101 Sec A — Hour 1 (9:00 – 9:50), subject: Data Structures")
	assert.Contains(t, s, "present 7, absent 1, late 0, od 0, unmarked 0")
	assert.Contains(t, s, "attendance alert sent to 1 student(s) below 75%")

	require.Len(t, sender.templates, 1)
	assert.Equal(t, "template_alert", sender.templates[0])
	assert.Equal(t, "Priya Patel", sender.params[0]["student_name"])
}

func TestAttendance_SubmitWithoutAbsentees(t *testing.T) {
	sender := &fakeSender{}
	app, out := newTestApp(t, sender)
	loginSeedAdmin(t, app)
	app.gate.Skip()

	stubInputs(t, "",
		lit(""), lit(""), // defaults: CS-101A, hour 1
		lit("all p"),
		lit("submit"),
	)
	require.NoError(t, app.Attendance(context.Background()))

	assert.Contains(t, out.String(), "attendance submitted for CS-101 Sec A")
	assert.Empty(t, sender.templates)
}

func TestAttendance_InvalidHour(t *testing.T) {
	app, out := newTestApp(t, &fakeSender{})
	loginSeedAdmin(t, app)
	app.gate.Skip()

	stubInputs(t, "", lit("CS-101A"), lit("9"))
	require.NoError(t, app.Attendance(context.Background()))
	assert.Contains(t, out.String(), "invalid hour 9")
}

func TestAttendance_StudentDiverted(t *testing.T) {
	app, out := newTestApp(t, &fakeSender{})
	stubInputs(t, "student123", lit("student@university.edu"))
	require.NoError(t, app.Login(context.Background()))
	app.gate.Skip()

	require.NoError(t, app.Attendance(context.Background()))
	assert.Contains(t, out.String(), "overall 96%")
}
