package cli

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"syscall"
	"testing"
	"time"

	"github.com/inovacc/degreeclass/internal/core"
	"github.com/inovacc/degreeclass/internal/model"
	"github.com/inovacc/degreeclass/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const clearMarker = "<clear>"

const sampleCSV = "code,name,credits,fheq,grade\n" +
	"COMP1001,Programming,120,4,62\n" +
	"COMP2001,Algorithms,60,5,70\n" +
	"COMP3001,Dissertation,40,6,80\n"

// syncBuffer is a bytes.Buffer safe for a shell goroutine and a test reader.
type syncBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *syncBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	return b.buf.Write(p)
}

func (b *syncBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()

	return b.buf.String()
}

type fixture struct {
	cfg        model.Config
	classifier *core.Classifier
}

func newFixture(t *testing.T, csv string) fixture {
	t.Helper()

	dir := t.TempDir()
	cfg := model.DefaultConfig()
	cfg.Files.Data = filepath.Join(dir, "grades.csv")
	cfg.Files.Average = filepath.Join(dir, "degree_average.txt")

	if csv != "" {
		require.NoError(t, os.WriteFile(cfg.Files.Data, []byte(csv), 0644))
	}

	return fixture{
		cfg:        cfg,
		classifier: core.NewClassifier(cfg, store.NewCSV(cfg.Files.Data, nil)),
	}
}

func markClear(w io.Writer) {
	_, _ = io.WriteString(w, clearMarker)
}

func runShell(t *testing.T, f fixture, input string) string {
	t.Helper()

	var out syncBuffer

	s := NewShell(f.classifier, strings.NewReader(input), &out, WithClearer(markClear))
	require.NoError(t, s.Run())

	return out.String()
}

func TestShell_Quit(t *testing.T) {
	out := runShell(t, newFixture(t, sampleCSV), "q\n")

	assert.Contains(t, out, "DEGREE CLASSIFIER -- OPTIONS:")
	assert.Contains(t, out, "\n\ta --> show all module marks up-to-date.")
	assert.Contains(t, out, "\n\tq --> quit the program.")
	assert.Contains(t, out, "Select your option: ")
	assert.Contains(t, out, clearMarker+"\nQuitting the program...\n")
}

func TestShell_EndOfInputQuits(t *testing.T) {
	out := runShell(t, newFixture(t, sampleCSV), "")

	assert.Contains(t, out, "Quitting the program...")
}

func TestShell_ListRecords(t *testing.T) {
	out := runShell(t, newFixture(t, sampleCSV), "a\nq\n")

	first := strings.Index(out, "COMP1001: Programming")
	second := strings.Index(out, "COMP2001: Algorithms")
	third := strings.Index(out, "COMP3001: Dissertation")

	require.True(t, first >= 0 && second > first && third > second, "records shown in load order")
	assert.Contains(t, out, "\tGrade: 80%\n\tCredits: 40\n\tFHEQ Level: 6")
}

func TestShell_YearAverages(t *testing.T) {
	out := runShell(t, newFixture(t, sampleCSV), "b\nq\n")

	sep := strings.Repeat("-", 30)
	assert.Contains(t, out, sep+"\nY1 Average: 62.0%\n"+sep)
	assert.Contains(t, out, "Y2 Average: 70.0%")
	assert.Contains(t, out, "Y3 Average: 80.0%")
	assert.Less(t, strings.Index(out, "Y1 Average"), strings.Index(out, "Y3 Average"))
}

func TestShell_YearAverages_MissingLevel(t *testing.T) {
	csv := "code,name,credits,fheq,grade\nCOMP1001,Programming,120,4,62\n"
	out := runShell(t, newFixture(t, csv), "b\nq\n")

	assert.Contains(t, out, "ERROR: Cannot calculate the average if there are no grades provided.")
	assert.NotContains(t, out, "Y1 Average")
}

func TestShell_DegreeAverage(t *testing.T) {
	f := newFixture(t, sampleCSV)
	out := runShell(t, f, "c\nq\n")

	assert.Contains(t, out, "DEGREE AVERAGE: 75.7%")

	data, err := os.ReadFile(f.cfg.Files.Average)
	require.NoError(t, err)
	assert.Equal(t, "DEGREE AVERAGE: 75.71428571428571", string(data))
}

func TestShell_UnknownCommandIsNoop(t *testing.T) {
	out := runShell(t, newFixture(t, sampleCSV), "z\n\nhello\nq\n")

	assert.Equal(t, 4, strings.Count(out, "DEGREE CLASSIFIER -- OPTIONS:"))
	assert.Equal(t, 1, strings.Count(out, clearMarker), "only quit clears")
	assert.NotContains(t, out, "ERROR")
}

func TestShell_ClearCommand(t *testing.T) {
	out := runShell(t, newFixture(t, sampleCSV), "l\nq\n")

	assert.Equal(t, 2, strings.Count(out, clearMarker))
}

func TestShell_MissingFileReported(t *testing.T) {
	f := newFixture(t, "")
	out := runShell(t, f, "a\nq\n")

	assert.Contains(t, out, "ERROR: File "+f.cfg.Files.Data+" not found.")
}

func TestShell_SkippedRowsWarned(t *testing.T) {
	f := newFixture(t, sampleCSV+"COMP3002,Zero,20,6,0\n")
	out := runShell(t, f, "q\n")

	assert.Contains(t, out, "WARNING: Invalid record skipped in row 4 in "+f.cfg.Files.Data+".")
}

func TestShell_MalformedFileReported(t *testing.T) {
	f := newFixture(t, sampleCSV+"COMP3002,Broken,twenty,6,50\n")
	out := runShell(t, f, "b\nq\n")

	assert.Contains(t, out, "ERROR: ")
	assert.Contains(t, out, `field "credits"`)
	assert.NotContains(t, out, "Average:")
}

func TestShell_EnterRecord(t *testing.T) {
	f := newFixture(t, "")
	input := "i\nCOMP2002\nNetworks\n20\n5\n65\na\nq\n"

	out := runShell(t, f, input)

	assert.Contains(t, out, "Enter the details of a new Academic Module.")
	assert.Contains(t, out, "Code: Name: Credits: FHEQ Level: Grade: ")
	assert.Contains(t, out, "SUCCESS! New Academic Module created:")
	assert.GreaterOrEqual(t, strings.Count(out, "COMP2002: Networks"), 2, "shown after entry and by the list command")

	data, err := os.ReadFile(f.cfg.Files.Data)
	require.NoError(t, err)
	assert.Equal(t, "code,name,credits,fheq,grade\nCOMP2002,Networks,20,5,65\n", string(data))
}

func TestShell_EnterRecord_RestartsOnInvalidField(t *testing.T) {
	f := newFixture(t, sampleCSV)
	input := "i\n" +
		"\n" + // empty code
		"C9\nName\n-5\n" + // negative credits
		"C9\nName\n20\n5\n101\n" + // grade out of range
		"C9\nName\n20\n5\n90\n" +
		"q\n"

	out := runShell(t, f, input)

	assert.Contains(t, out, "Code is required. Please try again.")
	assert.Contains(t, out, "Credits must be a positive integer. Please try again.")
	assert.Contains(t, out, "Grade must be in range 0-100. Please try again.")
	assert.Equal(t, 4, strings.Count(out, "Code: "), "each rejection restarts from the code")
	assert.Contains(t, out, "SUCCESS! New Academic Module created:")

	data, err := os.ReadFile(f.cfg.Files.Data)
	require.NoError(t, err)
	assert.True(t, strings.HasSuffix(string(data), "C9,Name,20,5,90\n"))
}

func TestShell_EnterRecord_ParseErrorAbortsEntry(t *testing.T) {
	f := newFixture(t, sampleCSV)
	out := runShell(t, f, "i\nC9\nName\nabc\nq\n")

	assert.Contains(t, out, `ERROR: invalid credits "abc"`)
	assert.NotContains(t, out, "SUCCESS!")
	assert.Contains(t, out, "Quitting the program...")

	data, err := os.ReadFile(f.cfg.Files.Data)
	require.NoError(t, err)
	assert.Equal(t, sampleCSV, string(data))
}

func TestShell_EnterRecord_EndOfInput(t *testing.T) {
	out := runShell(t, newFixture(t, sampleCSV), "i\nC9\n")

	assert.Contains(t, out, "Quitting the sub-program...")
	assert.Contains(t, out, "Quitting the program...")
}

func TestShell_InterruptAtMenu(t *testing.T) {
	f := newFixture(t, sampleCSV)
	pr, pw := io.Pipe()
	t.Cleanup(func() { _ = pw.Close() })

	interrupts := make(chan os.Signal, 1)

	var out syncBuffer

	s := NewShell(f.classifier, pr, &out, WithClearer(markClear), WithInterrupts(interrupts))

	done := make(chan error, 1)
	go func() { done <- s.Run() }()

	require.Eventually(t, func() bool {
		return strings.Contains(out.String(), "Select your option: ")
	}, 2*time.Second, 5*time.Millisecond)

	interrupts <- syscall.SIGINT

	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("shell did not stop on interrupt")
	}

	assert.Contains(t, out.String(), "\nQuitting the program...\n")
}

func TestShell_InterruptDuringEntryReturnsToMenu(t *testing.T) {
	f := newFixture(t, sampleCSV)
	pr, pw := io.Pipe()
	t.Cleanup(func() { _ = pw.Close() })

	interrupts := make(chan os.Signal, 1)

	var out syncBuffer

	s := NewShell(f.classifier, pr, &out, WithClearer(markClear), WithInterrupts(interrupts))

	done := make(chan error, 1)
	go func() { done <- s.Run() }()

	_, err := io.WriteString(pw, "i\n")
	require.NoError(t, err)

	require.Eventually(t, func() bool {
		return strings.Contains(out.String(), "Code: ")
	}, 2*time.Second, 5*time.Millisecond)

	interrupts <- syscall.SIGINT

	require.Eventually(t, func() bool {
		return strings.Contains(out.String(), "Quitting the sub-program...")
	}, 2*time.Second, 5*time.Millisecond)

	// The shell is back at the menu and still accepts commands.
	_, err = io.WriteString(pw, "q\n")
	require.NoError(t, err)

	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("shell did not quit")
	}

	got := out.String()
	assert.Greater(t, strings.Index(got, "\nQuitting the program..."), strings.Index(got, "Quitting the sub-program..."))
	assert.Equal(t, 2, strings.Count(got, "DEGREE CLASSIFIER -- OPTIONS:"))
}

func TestShell_Dispatch(t *testing.T) {
	tests := []struct {
		cmd        Command
		wantQuit   bool
		wantClears int
	}{
		{CommandList, false, 1},
		{CommandYears, false, 1},
		{CommandDegree, false, 1},
		{CommandClear, false, 1},
		{CommandQuit, true, 1},
		{CommandUnknown, false, 0},
	}

	for _, tt := range tests {
		t.Run(tt.cmd.String(), func(t *testing.T) {
			var out syncBuffer

			f := newFixture(t, sampleCSV)
			s := NewShell(f.classifier, strings.NewReader(""), &out, WithClearer(markClear))

			defer s.Close()

			assert.Equal(t, tt.wantQuit, s.Dispatch(tt.cmd))
			assert.Equal(t, tt.wantClears, strings.Count(out.String(), clearMarker))
		})
	}
}
