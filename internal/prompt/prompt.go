package prompt

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/peterh/liner"
)

// Session supplies one line of user input per prompt. The liner-backed
// implementation is the real thing; tests script their own.
type Session interface {
	Prompt(label string) (string, error)
	Close() error
}

type linerSession struct {
	state *liner.State
}

// NewLinerSession opens a readline-style terminal session. Callers must
// Close it before the process exits or the terminal is left in raw mode.
func NewLinerSession() Session {
	s := liner.NewLiner()
	s.SetCtrlCAborts(true)
	return &linerSession{state: s}
}

func (l *linerSession) Prompt(label string) (string, error) {
	return l.state.Prompt(label)
}

func (l *linerSession) Close() error {
	return l.state.Close()
}

// Outcome is the result of a confirm session. When Canceled is false the
// Title/Body pair is final and ready to commit.
type Outcome struct {
	Title    string
	Body     string
	Edited   bool
	Canceled bool
}

// Confirm renders the suggested message and runs the accept/edit/cancel
// loop. Empty input and y/yes accept the message as composed; edit collects
// replacement lines until an empty line; anything else cancels. Ctrl-C and
// EOF cancel as well.
func Confirm(sess Session, title, body string) (Outcome, error) {
	fmt.Println("\nSuggested commit message:")
	fmt.Println(strings.Repeat("-", 40))
	fmt.Println(title)
	fmt.Println()
	fmt.Println(body)
	fmt.Println(strings.Repeat("-", 40))

	choice, err := sess.Prompt("Proceed with this commit? [Y/n/edit]: ")
	if err != nil {
		if isAbort(err) {
			return Outcome{Canceled: true}, nil
		}
		return Outcome{}, fmt.Errorf("read confirmation: %w", err)
	}

	switch strings.ToLower(strings.TrimSpace(choice)) {
	case "", "y", "yes":
		return Outcome{Title: title, Body: body}, nil
	case "e", "edit":
		return collectEdit(sess)
	default:
		return Outcome{Canceled: true}, nil
	}
}

// collectEdit reads replacement message lines until an empty line. The
// first line becomes the title, the rest the body. An edit session that
// ends before any line was entered is treated as a cancel rather than an
// empty commit message.
func collectEdit(sess Session) (Outcome, error) {
	fmt.Println("\nEnter your commit message (end with an empty line):")

	var lines []string
	for {
		line, err := sess.Prompt("> ")
		if err != nil {
			if isAbort(err) {
				return Outcome{Canceled: true}, nil
			}
			return Outcome{}, fmt.Errorf("read message line: %w", err)
		}
		if line == "" {
			break
		}
		lines = append(lines, line)
	}

	if len(lines) == 0 {
		return Outcome{Canceled: true}, nil
	}
	return Outcome{
		Title:  lines[0],
		Body:   strings.Join(lines[1:], "\n"),
		Edited: true,
	}, nil
}

func isAbort(err error) bool {
	return errors.Is(err, liner.ErrPromptAborted) || errors.Is(err, io.EOF)
}
