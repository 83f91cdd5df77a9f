package cli

import (
	"context"
	"fmt"

	"github.com/greenwood-edu/attendance/internal/common"
	"github.com/greenwood-edu/attendance/internal/roster"
)

// MyAttendance prints the signed-in student's attendance: overall totals,
// today's timeline, and the subject-wise breakdown.
func (a *App) MyAttendance(ctx context.Context) error {
	s := a.manager.Session()
	if s == nil {
		a.notices.error(common.ErrNotAuthenticated.Error())
		return common.ErrNotAuthenticated
	}

	subjects := roster.SubjectSummaries()
	totals := roster.Aggregate(subjects)

	fmt.Fprintf(a.out, "%s  %s — CSE, Semester IV\n", s.Avatar, s.Name)
	fmt.Fprintf(a.out, "overall %d%% | present %d | absent %d | late %d | od %d\n",
		totals.OverallPercent(), totals.Present, totals.Absent, totals.Late, totals.OnDuty)

	fmt.Fprintln(a.out, "\nToday:")
	for _, slot := range roster.TodaySchedule() {
		arrival := ""
		if slot.ArrivalTime != "" {
			arrival = " @ " + slot.ArrivalTime
		}
		fmt.Fprintf(a.out, "  %d. %-13s %-18s %s%s\n", slot.Hour, slot.Time, slot.Subject, slot.StatusLabel(), arrival)
	}

	fmt.Fprintln(a.out, "\nSubject-wise:")
	for _, sub := range subjects {
		fmt.Fprintf(a.out, "  %-18s %-7s %2d/%2d attended  %3d%% (%s)\n",
			sub.Name, sub.Code, sub.Attended(), sub.Total, sub.Percentage(), roster.BandFor(sub.Percentage()))
	}
	return nil
}
