package otp

import "strings"

// Entry models the six digit boxes of the verification form: a fixed-length
// ordered sequence of single-digit strings (or empty) plus the focused
// position. The shell feeds it keystrokes and pasted text; whenever all six
// positions are filled the caller is expected to verify automatically.
type Entry struct {
	digits [CodeLength]string
	focus  int
}

func NewEntry() *Entry {
	return &Entry{}
}

// Input applies typed or pasted text at position i.
//
// A single digit fills the position and advances focus (when i < 5). A
// longer string is treated as a paste: its digits are distributed across
// positions i..5 and focus lands just past the last filled slot, capped at
// the final position. Values containing anything but digits are ignored, and
// an empty value clears the position.
func (e *Entry) Input(i int, value string) {
	if i < 0 || i >= CodeLength {
		return
	}
	for _, r := range value {
		if r < '0' || r > '9' {
			return
		}
	}

	if len(value) > 1 {
		pasted := value
		if len(pasted) > CodeLength {
			pasted = pasted[:CodeLength]
		}
		for j, d := range strings.Split(pasted, "") {
			if i+j < CodeLength {
				e.digits[i+j] = d
			}
		}
		e.focus = min(i+len(pasted), CodeLength-1)
		return
	}

	e.digits[i] = value
	if value != "" && i < CodeLength-1 {
		e.focus = i + 1
	}
}

// Backspace clears the digit at position i, or moves focus back one position
// when i is already empty.
func (e *Entry) Backspace(i int) {
	if i < 0 || i >= CodeLength {
		return
	}
	if e.digits[i] != "" {
		e.digits[i] = ""
		e.focus = i
		return
	}
	if i > 0 {
		e.focus = i - 1
	}
}

// Complete reports whether all six positions are filled.
func (e *Entry) Complete() bool {
	for _, d := range e.digits {
		if d == "" {
			return false
		}
	}
	return true
}

// Code joins the digits into the candidate code string.
func (e *Entry) Code() string {
	return strings.Join(e.digits[:], "")
}

// Digits returns a copy of the buffer.
func (e *Entry) Digits() [CodeLength]string {
	return e.digits
}

// Focus returns the currently focused position.
func (e *Entry) Focus() int {
	return e.focus
}

// Clear empties every position and refocuses the first box. Used after a
// mismatched code.
func (e *Entry) Clear() {
	e.digits = [CodeLength]string{}
	e.focus = 0
}
