package cli

import (
	"context"
	"fmt"

	"github.com/greenwood-edu/attendance/internal/account"
	"github.com/greenwood-edu/attendance/internal/common"
	"github.com/greenwood-edu/attendance/internal/roster"
)

// Students prints the institute roster, optionally filtered by standing.
// Student sessions are diverted to their own attendance view.
func (a *App) Students(ctx context.Context) error {
	s := a.manager.Session()
	if s == nil {
		a.notices.error(common.ErrNotAuthenticated.Error())
		return common.ErrNotAuthenticated
	}
	if s.Role == account.RoleStudent {
		a.notices.info("the roster is a staff view — showing your attendance instead")
		return a.MyAttendance(ctx)
	}

	filter, err := getSimpleText(a.reader, "Filter by standing (all, active, warning, danger)", a.out)
	if err != nil {
		return err
	}
	status := roster.StudentStatus(filter)
	switch status {
	case "", roster.StatusFilterAll:
		status = roster.StatusFilterAll
	case roster.StatusActive, roster.StatusWatch, roster.StatusProbation:
	default:
		a.notices.warning(fmt.Sprintf("unknown standing %q — showing all students", filter))
		status = roster.StatusFilterAll
	}

	list := roster.FilterByStatus(roster.Students(), status)
	fmt.Fprintf(a.out, "%-4s %-16s %-14s %-8s %-26s %5s  %s\n",
		"", "NAME", "ROLL NO", "COURSE", "EMAIL", "ATT%", "STANDING")
	for _, st := range list {
		fmt.Fprintf(a.out, "%-4s %-16s %-14s %-8s %-26s %4d%%  %s\n",
			st.Avatar, st.Name, st.RollNo, st.Course, st.Email, st.Attendance, st.Status)
	}
	fmt.Fprintf(a.out, "%d student(s)\n", len(list))
	return nil
}
