package cli

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/inovacc/degreeclass/internal/core"
	"github.com/inovacc/degreeclass/internal/store"
	"golang.org/x/term"
)

const (
	resultSeparatorWidth = 30
	clearSequence        = "\033[H\033[2J"
)

var (
	menuTitleStyle = lipgloss.NewStyle().Bold(true)
	warningStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("214"))
	errorStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
	successStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("42"))
)

func resultSeparator() string {
	return "\n" + strings.Repeat("-", resultSeparatorWidth)
}

// ClearScreen clears w when it is a terminal and does nothing otherwise.
func ClearScreen(w io.Writer) {
	f, ok := w.(*os.File)
	if !ok || !term.IsTerminal(int(f.Fd())) {
		return
	}

	_, _ = io.WriteString(w, clearSequence)
}

func writeMenu(w io.Writer) {
	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(menuTitleStyle.Render("DEGREE CLASSIFIER -- OPTIONS:"))

	for _, opt := range menuOptions {
		_, _ = fmt.Fprintf(&b, "\n\t%s --> %s", opt.key, opt.description)
	}

	_, _ = fmt.Fprintln(w, b.String())
}

func writeWarning(w io.Writer, format string, args ...any) {
	_, _ = fmt.Fprintln(w, warningStyle.Render("WARNING: "+fmt.Sprintf(format, args...)))
}

func writeSuccess(w io.Writer, text string) {
	_, _ = fmt.Fprintln(w, successStyle.Render(text))
}

// WriteError turns an error into the user-facing message for its kind.
func WriteError(w io.Writer, err error) {
	var (
		notFound *store.NotFoundError
		msg      string
	)

	switch {
	case errors.As(err, &notFound):
		msg = fmt.Sprintf("File %s not found.", notFound.Path)
	case errors.Is(err, core.ErrNoGrades):
		msg = "Cannot calculate the average if there are no grades provided."
	default:
		msg = err.Error()
	}

	_, _ = fmt.Fprintln(w, errorStyle.Render("ERROR: "+msg))
}

// WriteLoadResult warns about every row skipped by a load.
func WriteLoadResult(w io.Writer, path string, res store.LoadResult) {
	for _, row := range res.Skipped {
		writeWarning(w, "Invalid record skipped in row %d in %s.", row, path)
	}
}
