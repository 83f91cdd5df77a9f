// Package mail delivers templated messages through an EmailJS-compatible
// HTTP endpoint. It is the only remote collaborator of the attendance
// client; everything else is local.
package mail

import "context"

// Result mirrors the {success, error?} shape the shell renders inline.
// Failed sends are retryable, never fatal.
type Result struct {
	OK  bool
	Err string
}

// Sender delivers one templated message. Implementations must not panic:
// every failure comes back inside the Result.
type Sender interface {
	Send(ctx context.Context, templateID string, params map[string]any) Result
}

// VerificationParams builds the payload for the verification-code template.
func VerificationParams(toEmail, toName, code, fromName string) map[string]any {
	return map[string]any{
		"to_email":          toEmail,
		"to_name":           toName,
		"verification_code": code,
		"from_name":         fromName,
	}
}

// AlertParams builds the payload for the low-attendance alert template.
func AlertParams(toEmail, studentName, courseName string, percentage int, fromName string, threshold int) map[string]any {
	return map[string]any{
		"to_email":              toEmail,
		"student_name":          studentName,
		"course_name":           courseName,
		"attendance_percentage": percentage,
		"from_name":             fromName,
		"threshold":             threshold,
	}
}
