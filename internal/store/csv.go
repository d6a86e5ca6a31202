package store

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strconv"
	"strings"

	"github.com/inovacc/degreeclass/internal/encoding"
	"github.com/inovacc/degreeclass/internal/model"
	"go.uber.org/zap"
)

// LoadResult summarizes a successful load.
type LoadResult struct {
	// Loaded is the number of records now held in memory
	Loaded int

	// Skipped lists the 1-based data rows rejected for an empty or zero field
	Skipped []int
}

// CSV is a record collection backed by a CSV file.
type CSV struct {
	path    string
	logger  *zap.Logger
	modules []model.Module
}

// NewCSV creates a store for the file at path. Nothing is read until Load.
func NewCSV(path string, logger *zap.Logger) *CSV {
	if logger == nil {
		logger = zap.NewNop()
	}

	return &CSV{
		path:   path,
		logger: logger.Named("store"),
	}
}

// Path returns the backing file path.
func (s *CSV) Path() string {
	return s.path
}

// Records returns a copy of the loaded records in file order.
func (s *CSV) Records() []model.Module {
	out := make([]model.Module, len(s.modules))
	copy(out, s.modules)

	return out
}

// Load reads the backing file and replaces the in-memory records. On error the
// previous records are kept.
func (s *CSV) Load() (LoadResult, error) {
	f, err := os.Open(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return LoadResult{}, &NotFoundError{Path: s.path}
		}

		return LoadResult{}, fmt.Errorf("failed to open %s: %w", s.path, err)
	}
	defer func() { _ = f.Close() }()

	modules, skipped, err := s.decode(f)
	if err != nil {
		return LoadResult{}, err
	}

	for _, row := range skipped {
		s.logger.Debug("invalid record skipped", zap.Int("row", row), zap.String("file", s.path))
	}

	s.modules = modules
	s.logger.Debug("records loaded",
		zap.String("file", s.path),
		zap.Int("loaded", len(modules)),
		zap.Int("skipped", len(skipped)))

	return LoadResult{Loaded: len(modules), Skipped: skipped}, nil
}

func (s *CSV) decode(r io.Reader) ([]model.Module, []int, error) {
	reader := csv.NewReader(r)

	header, err := reader.Read()
	if errors.Is(err, io.EOF) {
		return []model.Module{}, nil, nil
	}

	if err != nil {
		return nil, nil, &ParseError{Path: s.path, Row: 0, Err: err}
	}

	columns := make(map[string]int, len(header))
	for i, name := range header {
		if _, seen := columns[name]; !seen {
			columns[name] = i
		}
	}

	for _, name := range model.Header() {
		if _, ok := columns[name]; !ok {
			return nil, nil, &ParseError{Path: s.path, Row: 0, Field: name, Err: ErrMissingColumn}
		}
	}

	var (
		modules = []model.Module{}
		skipped []int
		row     int
	)

	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}

		row++

		if err != nil {
			return nil, nil, &ParseError{Path: s.path, Row: row, Err: err}
		}

		m, err := s.decodeRow(row, columns, record)
		if err != nil {
			return nil, nil, err
		}

		if !m.Truthy() {
			skipped = append(skipped, row)
			continue
		}

		modules = append(modules, m)
	}

	return modules, skipped, nil
}

func (s *CSV) decodeRow(row int, columns map[string]int, record []string) (model.Module, error) {
	field := func(name string) string {
		return record[columns[name]]
	}

	number := func(name string) (int, error) {
		n, err := strconv.Atoi(strings.TrimSpace(field(name)))
		if err != nil {
			return 0, &ParseError{Path: s.path, Row: row, Field: name, Err: err}
		}

		return n, nil
	}

	credits, err := number(model.FieldCredits)
	if err != nil {
		return model.Module{}, err
	}

	level, err := number(model.FieldLevel)
	if err != nil {
		return model.Module{}, err
	}

	grade, err := number(model.FieldGrade)
	if err != nil {
		return model.Module{}, err
	}

	return model.Module{
		Code:    field(model.FieldCode),
		Name:    field(model.FieldName),
		Credits: credits,
		Level:   model.Level(level),
		Grade:   grade,
	}, nil
}

// Append writes m as a new row, preceded by the header when the file is new.
// The in-memory records are not touched; callers reload to see the row.
func (s *CSV) Append(m model.Module) (err error) {
	f, created, err := encoding.OpenAppend(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return &NotFoundError{Path: s.path}
		}

		return err
	}

	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("failed to close %s: %w", s.path, cerr)
		}
	}()

	w := csv.NewWriter(f)

	if created {
		if err := w.Write(model.Header()); err != nil {
			return fmt.Errorf("failed to write header to %s: %w", s.path, err)
		}
	}

	if err := w.Write(m.Row()); err != nil {
		return fmt.Errorf("failed to write record to %s: %w", s.path, err)
	}

	w.Flush()

	if err := w.Error(); err != nil {
		return fmt.Errorf("failed to flush %s: %w", s.path, err)
	}

	s.logger.Debug("record appended",
		zap.String("file", s.path),
		zap.String("code", m.Code),
		zap.Bool("created", created))

	return nil
}
