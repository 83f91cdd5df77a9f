package cli

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/greenwood-edu/attendance/internal/account"
	"github.com/greenwood-edu/attendance/internal/common"
	"github.com/greenwood-edu/attendance/internal/roster"
)

// Attendance runs the hour-wise marking flow for a course section. Students
// are diverted to their own attendance view.
func (a *App) Attendance(ctx context.Context) error {
	s := a.manager.Session()
	if s == nil {
		a.notices.error(common.ErrNotAuthenticated.Error())
		return common.ErrNotAuthenticated
	}
	if s.Role == account.RoleStudent {
		return a.MyAttendance(ctx)
	}

	sheet, err := a.openSheet()
	if err != nil {
		return err
	}
	if sheet == nil {
		return nil
	}

	hour, _ := roster.HourByID(sheet.Hour)
	fmt.Fprintf(a.out, "Marking %s — %s (%s), subject: %s\n",
		roster.SectionLabel(sheet.Section), hour.Label, hour.Time, sheet.Subject)

	for {
		a.renderSheet(sheet)

		line, err := getSimpleText(a.reader, "Commands: <id> <p|a|l|od>, all <p|a|l|od>, submit, cancel", a.out)
		if err != nil {
			return err
		}
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}

		switch parts[0] {
		case "cancel":
			return nil

		case "submit":
			a.submitSheet(ctx, sheet)
			return nil

		case "all":
			if len(parts) != 2 {
				a.notices.error("usage: all <p|a|l|od>")
				continue
			}
			m, ok := markFromToken(parts[1])
			if !ok {
				a.notices.error(fmt.Sprintf("unknown status %q", parts[1]))
				continue
			}
			sheet.MarkAll(m)

		default:
			id, err := strconv.Atoi(parts[0])
			if err != nil || len(parts) != 2 {
				a.notices.error("usage: <id> <p|a|l|od>")
				continue
			}
			m, ok := markFromToken(parts[1])
			if !ok {
				a.notices.error(fmt.Sprintf("unknown status %q", parts[1]))
				continue
			}
			if !sheet.SetMark(id, m) {
				a.notices.error(fmt.Sprintf("no student with id %d", id))
			}
		}
	}
}

// openSheet prompts for a section and hour. A nil sheet with nil error means
// the user backed out.
func (a *App) openSheet() (*roster.Sheet, error) {
	fmt.Fprintln(a.out, "Course sections:")
	for _, sec := range roster.Sections() {
		fmt.Fprintf(a.out, "  %-8s %-14s %s\n", sec.Code, sec.Label, sec.Teacher)
	}

	section, err := getSimpleText(a.reader, "Section code (empty for CS-101A)", a.out)
	if err != nil {
		return nil, err
	}
	if section == "" {
		section = "CS-101A"
	}

	hourText, err := getSimpleText(a.reader, "Hour 1-6 (empty for 1)", a.out)
	if err != nil {
		return nil, err
	}
	hour := 1
	if hourText != "" {
		hour, err = strconv.Atoi(hourText)
		if err != nil {
			a.notices.error(fmt.Sprintf("invalid hour %q", hourText))
			return nil, nil
		}
	}
	if _, ok := roster.HourByID(hour); !ok {
		a.notices.error(fmt.Sprintf("invalid hour %d", hour))
		return nil, nil
	}

	return roster.NewSheet(section, hour), nil
}

// submitSheet reports the tally and mails low-attendance alerts for the
// absentees. Alert failures never fail the submission.
func (a *App) submitSheet(ctx context.Context, sheet *roster.Sheet) {
	hour, _ := roster.HourByID(sheet.Hour)
	c := sheet.Counts()

	a.notices.success(fmt.Sprintf("attendance submitted for %s — %s (%s)",
		roster.SectionLabel(sheet.Section), hour.Label, sheet.Subject))
	fmt.Fprintf(a.out, "present %d, absent %d, late %d, od %d, unmarked %d\n",
		c.Present, c.Absent, c.Late, c.OnDuty, c.Unmarked)

	if len(sheet.Absentees()) == 0 {
		return
	}
	sent := a.notifier.SendAlerts(ctx, sheet)
	if sent > 0 {
		a.notices.info(fmt.Sprintf("attendance alert sent to %d student(s) below %d%%", sent, a.notifier.Threshold()))
	} else {
		a.notices.warning("could not send alerts — check the mail configuration")
	}
}

func (a *App) renderSheet(sheet *roster.Sheet) {
	for _, at := range sheet.Attendees() {
		status := string(at.Status)
		if status == "" {
			status = "-"
		}
		arrival := ""
		if at.ArrivalTime != "" {
			arrival = " @ " + at.ArrivalTime
		}
		fmt.Fprintf(a.out, "%2d. %-4s %-16s %-12s %s%s\n", at.ID, at.Avatar, at.Name, at.RollNo, status, arrival)
	}
}

func markFromToken(tok string) (roster.Mark, bool) {
	switch tok {
	case "p", "present":
		return roster.MarkPresent, true
	case "a", "absent":
		return roster.MarkAbsent, true
	case "l", "late":
		return roster.MarkLate, true
	case "od", "onduty":
		return roster.MarkOnDuty, true
	}
	return roster.MarkNone, false
}
