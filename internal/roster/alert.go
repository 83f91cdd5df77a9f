package roster

import (
	"context"
	"strings"

	"github.com/greenwood-edu/attendance/internal/logging"
	"github.com/greenwood-edu/attendance/internal/mail"
)

// simulatedCumulative stands in for per-student cumulative attendance until
// backend records exist. Always below the default threshold so submissions
// with absentees exercise the alert path.
const simulatedCumulative = 70

// Notifier emails low-attendance alerts for students flagged on a submitted
// sheet.
type Notifier struct {
	sender     mail.Sender
	templateID string
	fromName   string
	threshold  int
	log        logging.Logger
}

// NewNotifier wires an alert notifier to a mail sender and template.
func NewNotifier(sender mail.Sender, templateID, fromName string, threshold int, log logging.Logger) *Notifier {
	if log == nil {
		log = logging.NopLogger{}
	}
	return &Notifier{sender: sender, templateID: templateID, fromName: fromName, threshold: threshold, log: log}
}

// Threshold is the cumulative percentage under which alerts are raised.
func (n *Notifier) Threshold() int {
	return n.threshold
}

// StudentEmail derives a mailbox from a roll number. The department prefix
// becomes a subdomain-style local part: CS-101A-03 -> cs.101a-03@university.edu.
func StudentEmail(rollNo string) string {
	return strings.Replace(strings.ToLower(rollNo), "-", ".", 1) + "@university.edu"
}

// SendAlerts mails a low-attendance notice for every absentee on the sheet
// and returns how many alerts went out. Individual failures are logged and
// skipped; a submission never fails because an alert did.
func (n *Notifier) SendAlerts(ctx context.Context, sheet *Sheet) int {
	absentees := sheet.Absentees()
	if len(absentees) == 0 {
		return 0
	}

	course := sheet.Subject
	sent := 0
	for _, a := range absentees {
		params := mail.AlertParams(StudentEmail(a.RollNo), a.Name, course, simulatedCumulative, n.fromName, n.threshold)
		res := n.sender.Send(ctx, n.templateID, params)
		if !res.OK {
			n.log.Warn(ctx, "attendance alert not delivered", "student", a.Name, "error", res.Err)
			continue
		}
		sent++
	}
	return sent
}
