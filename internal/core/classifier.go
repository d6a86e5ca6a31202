package core

import (
	"strconv"

	"github.com/inovacc/degreeclass/internal/encoding"
	"github.com/inovacc/degreeclass/internal/model"
	"github.com/inovacc/degreeclass/internal/store"
	"go.uber.org/zap"
)

// RecordStore is the record collection a Classifier reads from and appends to.
type RecordStore interface {
	Path() string
	Load() (store.LoadResult, error)
	Records() []model.Module
	Append(m model.Module) error
}

// HistoryRecorder receives every degree average written to the derived file.
type HistoryRecorder interface {
	Record(value float64, records int) (store.HistoryEntry, error)
}

// YearAverage is the weighted average of one FHEQ level.
type YearAverage struct {
	Level   model.Level
	Average float64
}

// Classifier computes year and degree averages over a record store.
type Classifier struct {
	cfg     model.Config
	store   RecordStore
	history HistoryRecorder
	logger  *zap.Logger
}

// ClassifierOption configures optional Classifier collaborators.
type ClassifierOption func(*Classifier)

// WithLogger sets the diagnostic logger.
func WithLogger(logger *zap.Logger) ClassifierOption {
	return func(c *Classifier) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// WithHistory records every persisted degree average in h.
func WithHistory(h HistoryRecorder) ClassifierOption {
	return func(c *Classifier) {
		c.history = h
	}
}

// NewClassifier creates a Classifier. The store is not loaded until the first
// Reload or computation.
func NewClassifier(cfg model.Config, s RecordStore, opts ...ClassifierOption) *Classifier {
	c := &Classifier{
		cfg:    cfg,
		store:  s,
		logger: zap.NewNop(),
	}

	for _, opt := range opts {
		opt(c)
	}

	c.logger = c.logger.Named("classifier")

	return c
}

// DataPath returns the backing file the classifier reads.
func (c *Classifier) DataPath() string {
	return c.store.Path()
}

// Reload re-reads the backing file.
func (c *Classifier) Reload() (store.LoadResult, error) {
	return c.store.Load()
}

// Records returns the records from the last successful load.
func (c *Classifier) Records() []model.Module {
	return c.store.Records()
}

// Add appends a validated record to the backing file.
func (c *Classifier) Add(m model.Module) error {
	return c.store.Append(m)
}

// YearAverages reloads the store and returns the weighted average of levels
// 4, 5 and 6 in that order. If any level has no credits the result is empty
// and ErrNoGrades is returned; partial results are never returned.
func (c *Classifier) YearAverages() ([]YearAverage, store.LoadResult, error) {
	res, err := c.store.Load()
	if err != nil {
		return []YearAverage{}, res, err
	}

	modules := c.store.Records()
	out := make([]YearAverage, 0, len(model.Levels()))

	for _, level := range model.Levels() {
		avg, ok := WeightedAverage(FilterLevel(modules, level))
		if !ok {
			c.logger.Debug("level has no credits", zap.Int("fheq", int(level)))

			return []YearAverage{}, res, ErrNoGrades
		}

		out = append(out, YearAverage{Level: level, Average: avg})
	}

	return out, res, nil
}

// DegreeAverage reloads the store and returns the overall degree average. A
// value in (0, 100] is written to the derived average file; a write failure is
// returned as a *PersistError together with the computed value.
func (c *Classifier) DegreeAverage() (*float64, store.LoadResult, error) {
	res, err := c.store.Load()
	if err != nil {
		return nil, res, err
	}

	modules := c.store.Records()

	avg, ok := DegreeAverageOf(modules)
	if !ok {
		return nil, res, ErrNoGrades
	}

	if avg > 0 && avg <= 100 {
		if err := c.persist(avg, len(modules)); err != nil {
			return &avg, res, err
		}
	} else {
		c.logger.Debug("degree average not persisted", zap.Float64("average", avg))
	}

	return &avg, res, nil
}

func (c *Classifier) persist(avg float64, records int) error {
	path := c.cfg.Files.Average

	if err := encoding.WriteText(path, FormatDegreeAverage(avg)); err != nil {
		return &PersistError{Path: path, Err: err}
	}

	c.logger.Debug("degree average saved", zap.String("file", path), zap.Float64("average", avg))

	if c.history == nil {
		return nil
	}

	if _, err := c.history.Record(avg, records); err != nil {
		c.logger.Warn("failed to record degree average history", zap.Error(err))
	}

	return nil
}

// FormatDegreeAverage returns the derived file content for avg.
func FormatDegreeAverage(avg float64) string {
	return "DEGREE AVERAGE: " + strconv.FormatFloat(avg, 'f', -1, 64)
}
