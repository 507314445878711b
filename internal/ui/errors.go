package ui

import (
	"strings"
	"time"
	"unicode/utf8"

	tea "github.com/charmbracelet/bubbletea"
)

const (
	errorPrefix    = "Error: "
	maxErrorLines  = 2
	minLineWidth   = 10
	truncationMark = "..."
)

// clearErrorMsg is sent after the clear delay
type clearErrorMsg struct {
	generation int
}

// ErrorManager holds the error or notice shown in the bottom bar and clears
// it after a delay. A newer message is never cleared by an older timer.
type ErrorManager struct {
	clearDelay time.Duration
	err        error
	generation int
	notice     string
}

// NewErrorManager creates an ErrorManager with the given auto-clear delay
func NewErrorManager(clearDelay time.Duration) *ErrorManager {
	return &ErrorManager{clearDelay: clearDelay}
}

// SetError shows err and returns the command clearing it
func (em *ErrorManager) SetError(err error) tea.Cmd {
	em.err = err
	em.notice = ""
	return em.clearAfterDelay()
}

// SetNotice shows an informational line and returns the command clearing it
func (em *ErrorManager) SetNotice(notice string) tea.Cmd {
	em.err = nil
	em.notice = notice
	return em.clearAfterDelay()
}

// HandleClear clears the current message when msg belongs to it
func (em *ErrorManager) HandleClear(msg clearErrorMsg) {
	if msg.generation != em.generation {
		return
	}
	em.err = nil
	em.notice = ""
}

// Error returns the current error
func (em *ErrorManager) Error() error {
	return em.err
}

// Notice returns the current notice
func (em *ErrorManager) Notice() string {
	return em.notice
}

func (em *ErrorManager) clearAfterDelay() tea.Cmd {
	em.generation++
	generation := em.generation
	return tea.Tick(em.clearDelay, func(time.Time) tea.Msg {
		return clearErrorMsg{generation: generation}
	})
}

// formatErrorForDisplay word-wraps an error to at most maxErrorLines lines of
// maxWidth runes, the first one prefixed with "Error: ". Overflow is cut and
// marked with "...".
func formatErrorForDisplay(err error, maxWidth int) string {
	if err == nil {
		return ""
	}
	words := strings.Fields(err.Error())
	if len(words) == 0 {
		return errorPrefix + "unknown error"
	}

	width := max(maxWidth, minLineWidth)
	lineWidth := max(maxWidth-utf8.RuneCountInString(errorPrefix), minLineWidth)

	var lines []string
	var line strings.Builder
	truncated := false
	for _, word := range words {
		lineLen := utf8.RuneCountInString(line.String())
		if lineLen > 0 && lineLen+1+utf8.RuneCountInString(word) > lineWidth {
			lines = append(lines, line.String())
			line.Reset()
			if len(lines) == maxErrorLines {
				truncated = true
				break
			}
			lineWidth = width
		}
		if line.Len() > 0 {
			line.WriteByte(' ')
		}
		line.WriteString(word)
	}
	if line.Len() > 0 && len(lines) < maxErrorLines {
		lines = append(lines, line.String())
	}

	if truncated {
		last := []rune(lines[len(lines)-1])
		keep := width - utf8.RuneCountInString(truncationMark)
		if len(last) > keep && keep > 0 {
			last = last[:keep]
		}
		lines[len(lines)-1] = string(last) + truncationMark
	}

	return errorPrefix + strings.Join(lines, "\n")
}
