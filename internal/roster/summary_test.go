package roster_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/greenwood-edu/attendance/internal/roster"
)

func TestSubjectSummary_Percentage(t *testing.T) {
	s := roster.SubjectSummary{Name: "Data Structures", Total: 45, Present: 42, Absent: 1, Late: 1, OnDuty: 1}
	assert.Equal(t, 44, s.Attended())
	assert.Equal(t, 98, s.Percentage())

	empty := roster.SubjectSummary{}
	assert.Equal(t, 0, empty.Percentage())
}

func TestAggregate(t *testing.T) {
	totals := roster.Aggregate(roster.SubjectSummaries())

	assert.Equal(t, 189, totals.Classes)
	assert.Equal(t, 173, totals.Present)
	assert.Equal(t, 8, totals.Absent)
	assert.Equal(t, 6, totals.Late)
	assert.Equal(t, 2, totals.OnDuty)

	// late and on-duty hours count toward the rate
	assert.Equal(t, 96, totals.OverallPercent())
}

func TestTodaySchedule(t *testing.T) {
	slots := roster.TodaySchedule()
	require.Len(t, slots, 6)

	assert.Equal(t, "Present", slots[0].StatusLabel())
	assert.Equal(t, "Late", slots[2].StatusLabel())
	assert.Equal(t, "Upcoming", slots[4].StatusLabel())
	assert.Empty(t, slots[4].ArrivalTime)
}
