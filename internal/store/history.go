package store

import (
	"encoding/binary"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/inovacc/degreeclass/internal/encoding"
	"go.etcd.io/bbolt"
)

const boltBucketAverages = "degree_averages" // key: sequence -> HistoryEntry JSON

// HistoryEntry is one persisted degree average.
type HistoryEntry struct {
	ID         string    `json:"id"`
	Value      float64   `json:"value"`
	Records    int       `json:"records"`
	RecordedAt time.Time `json:"recorded_at"`
}

// History is a BoltDB log of persisted degree averages.
type History struct {
	storage *bbolt.DB
	now     func() time.Time
}

// OpenHistory opens (or creates) the history database at path.
func OpenHistory(path string) (*History, error) {
	if err := encoding.EnsureParentDir(path); err != nil {
		return nil, err
	}

	instance, err := bbolt.Open(path, 0600, &bbolt.Options{Timeout: 1 * time.Second})
	if err != nil {
		return nil, fmt.Errorf("failed to open history %s: %w", path, err)
	}

	if err := instance.Update(func(tx *bbolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists([]byte(boltBucketAverages))
		return err
	}); err != nil {
		_ = instance.Close()

		return nil, err
	}

	return &History{storage: instance, now: time.Now}, nil
}

// Close closes the database.
func (h *History) Close() error {
	return h.storage.Close()
}

// Record appends a degree average computed over the given number of records.
func (h *History) Record(value float64, records int) (HistoryEntry, error) {
	entry := HistoryEntry{
		ID:         uuid.NewString(),
		Value:      value,
		Records:    records,
		RecordedAt: h.now().UTC(),
	}

	err := h.storage.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket([]byte(boltBucketAverages))

		seq, err := bucket.NextSequence()
		if err != nil {
			return err
		}

		data, err := encoding.ToJSON(entry)
		if err != nil {
			return err
		}

		key := make([]byte, 8)
		binary.BigEndian.PutUint64(key, seq)

		return bucket.Put(key, data)
	})
	if err != nil {
		return HistoryEntry{}, fmt.Errorf("failed to record degree average: %w", err)
	}

	return entry, nil
}

// List returns every entry, oldest first.
func (h *History) List() ([]HistoryEntry, error) {
	var out []HistoryEntry

	err := h.storage.View(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket([]byte(boltBucketAverages))

		return bucket.ForEach(func(_, v []byte) error {
			entry, err := encoding.ParseJSON[HistoryEntry](v)
			if err != nil {
				return err
			}

			out = append(out, *entry)

			return nil
		})
	})

	return out, err
}
