package cli

import (
	"bufio"
	"context"
	"fmt"
	"strings"
)

// printlnFn is a test seam for user-facing output. In tests, replace it with a stub.
var printlnFn = fmt.Println

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a lightweight stub.
type execIface interface {
	isLoggedIn() bool
	isBlocked() bool
	Login(ctx context.Context) error
	Signup(ctx context.Context) error
	Verify(ctx context.Context) error
	Skip(ctx context.Context) error
	Whoami(ctx context.Context) error
	Students(ctx context.Context) error
	Attendance(ctx context.Context) error
	MyAttendance(ctx context.Context) error
	Logout(ctx context.Context) error
}

// runREPL starts the read-eval-print loop of the attendance shell.
//
// It reads a line from the provided scanner, parses the first token as the
// command, and dispatches to methods on 'a'. Unknown commands are reported
// back to the user. The loop exits on scanner EOF or when the user types
// "exit" or "quit".
//
// While the verification gate is blocked, only verify/skip/logout (plus help
// and exit) are accepted; everything else gets the verification banner.
//
// Any errors returned by command handlers are ignored here; handlers print
// their own notices. This keeps the loop resilient and focused on I/O.
func runREPL(ctx context.Context, a execIface, statusFn func() string, scanner *bufio.Scanner) {
	for {
		printlnFn(fmt.Sprintf("att> %s ", statusFn()))
		if !scanner.Scan() {
			return
		}
		line := scanner.Text()
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd := parts[0]

		if a.isBlocked() && !blockedAllowed(cmd) {
			printlnFn("Your email is not verified yet. Type 'verify' to enter the code, or 'skip' to continue anyway.")
			continue
		}

		switch cmd {
		case "help":
			switch {
			case !a.isLoggedIn():
				printlnFn("Available commands: login, signup, exit")
			case a.isBlocked():
				printlnFn("Available commands: verify, skip, logout, exit")
			default:
				printlnFn("Available commands: whoami, students, attendance, myattendance, verify, skip, logout, exit")
			}

		case "login":
			_ = a.Login(ctx)

		case "signup", "register":
			_ = a.Signup(ctx)

		case "verify":
			_ = a.Verify(ctx)

		case "skip":
			_ = a.Skip(ctx)

		case "whoami":
			_ = a.Whoami(ctx)

		case "students":
			_ = a.Students(ctx)

		case "attendance":
			_ = a.Attendance(ctx)

		case "myattendance":
			_ = a.MyAttendance(ctx)

		case "logout":
			_ = a.Logout(ctx)

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}
	}
}

func blockedAllowed(cmd string) bool {
	switch cmd {
	case "help", "verify", "skip", "logout", "exit", "quit":
		return true
	}
	return false
}
