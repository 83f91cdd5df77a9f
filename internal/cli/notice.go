package cli

import (
	"fmt"
	"io"
)

type noticeLevel string

const (
	noticeSuccess noticeLevel = "ok"
	noticeInfo    noticeLevel = "info"
	noticeWarning noticeLevel = "warn"
	noticeError   noticeLevel = "error"
)

// notices is the shell's toast analog: short status lines printed inline,
// each tagged with an identifier from the injected generator so individual
// notices can be referred to (and tests can rely on stable IDs).
type notices struct {
	out   io.Writer
	newID func() string
}

func (n *notices) post(level noticeLevel, msg string) string {
	id := n.newID()
	fmt.Fprintf(n.out, "[%s %s] %s\n", level, id, msg)
	return id
}

func (n *notices) success(msg string) string { return n.post(noticeSuccess, msg) }
func (n *notices) info(msg string) string    { return n.post(noticeInfo, msg) }
func (n *notices) warning(msg string) string { return n.post(noticeWarning, msg) }
func (n *notices) error(msg string) string   { return n.post(noticeError, msg) }
