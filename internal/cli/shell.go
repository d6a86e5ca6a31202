package cli

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/inovacc/degreeclass/internal/core"
	"go.uber.org/zap"
)

var errInterrupted = errors.New("interrupted")

// Shell is the line-based interactive front end of the classifier.
type Shell struct {
	classifier *core.Classifier
	out        io.Writer
	lines      *lineReader
	interrupts <-chan os.Signal
	clear      func(io.Writer)
	logger     *zap.Logger
}

// ShellOption configures a Shell.
type ShellOption func(*Shell)

// WithInterrupts delivers interrupt signals to the shell. Without it the shell
// only stops on the quit command or end of input.
func WithInterrupts(ch <-chan os.Signal) ShellOption {
	return func(s *Shell) {
		s.interrupts = ch
	}
}

// WithClearer replaces the screen clearing function.
func WithClearer(clear func(io.Writer)) ShellOption {
	return func(s *Shell) {
		s.clear = clear
	}
}

// WithShellLogger sets the diagnostic logger.
func WithShellLogger(logger *zap.Logger) ShellOption {
	return func(s *Shell) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// NewShell creates a shell reading commands from in and writing to out.
func NewShell(c *core.Classifier, in io.Reader, out io.Writer, opts ...ShellOption) *Shell {
	s := &Shell{
		classifier: c,
		out:        out,
		lines:      newLineReader(in),
		clear:      ClearScreen,
		logger:     zap.NewNop(),
	}

	for _, opt := range opts {
		opt(s)
	}

	s.logger = s.logger.Named("shell")

	return s
}

// Close stops the input goroutine.
func (s *Shell) Close() {
	s.lines.close()
}

// Run loads the records and serves menu commands until quit, interrupt or end
// of input.
func (s *Shell) Run() error {
	defer s.Close()

	s.Reload()

	for {
		writeMenu(s.out)

		line, err := s.readLine("\nSelect your option: ")
		if errors.Is(err, errInterrupted) || errors.Is(err, io.EOF) {
			_, _ = fmt.Fprintln(s.out, "\nQuitting the program...")
			return nil
		}

		if err != nil {
			return fmt.Errorf("failed to read command: %w", err)
		}

		if s.Dispatch(ParseCommand(line)) {
			return nil
		}
	}
}

// Dispatch runs exactly one command and reports whether the shell should stop.
func (s *Shell) Dispatch(cmd Command) (quit bool) {
	s.logger.Debug("dispatch", zap.Stringer("command", cmd))

	switch cmd {
	case CommandList:
		s.clear(s.out)
		s.showRecords()
	case CommandYears:
		s.clear(s.out)
		s.showYearAverages()
	case CommandDegree:
		s.clear(s.out)
		s.showDegreeAverage()
	case CommandInput:
		s.clear(s.out)
		s.enterRecord()
		s.Reload()
	case CommandClear:
		s.clear(s.out)
	case CommandQuit:
		s.clear(s.out)
		_, _ = fmt.Fprintln(s.out, "\nQuitting the program...")

		return true
	case CommandUnknown:
	}

	return false
}

// Reload re-reads the backing file and reports skipped rows and failures.
func (s *Shell) Reload() {
	res, err := s.classifier.Reload()
	WriteLoadResult(s.out, s.classifier.DataPath(), res)

	if err != nil {
		WriteError(s.out, err)
	}
}

// WaitForEnter blocks until a line is entered or the input ends.
func (s *Shell) WaitForEnter() {
	_, _ = s.readLine("\nPress Enter to continue...")
}

func (s *Shell) readLine(prompt string) (string, error) {
	_, _ = io.WriteString(s.out, prompt)

	select {
	case res := <-s.lines.next():
		s.lines.received()
		return res.line, res.err
	case <-s.interrupts:
		return "", errInterrupted
	}
}

func (s *Shell) showRecords() {
	for _, m := range s.classifier.Records() {
		_, _ = fmt.Fprintln(s.out, m.String())
	}
}

func (s *Shell) showYearAverages() {
	averages, res, err := s.classifier.YearAverages()
	WriteLoadResult(s.out, s.classifier.DataPath(), res)

	if err != nil {
		WriteError(s.out, err)
	}

	sep := resultSeparator()
	for _, avg := range averages {
		_, _ = fmt.Fprintf(s.out, "%s\n%s Average: %.1f%%%s\n", sep, avg.Level.Label(), avg.Average, sep)
	}
}

func (s *Shell) showDegreeAverage() {
	avg, res, err := s.classifier.DegreeAverage()
	WriteLoadResult(s.out, s.classifier.DataPath(), res)

	if err != nil {
		WriteError(s.out, err)
	}

	if avg == nil {
		return
	}

	sep := resultSeparator()
	_, _ = fmt.Fprintf(s.out, "%s\nDEGREE AVERAGE: %.1f%%%s\n", sep, *avg, sep)
}
