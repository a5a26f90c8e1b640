package models

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"sync"
	"time"

	"github.com/google/uuid"
)

// HistoryKey is the fixed key finished races are appended under
const HistoryKey = "raceHistory"

// RaceRecord is the summary stored for every finished race
type RaceRecord struct {
	ID          uuid.UUID `json:"id"`
	Timestamp   string    `json:"timestamp"`
	TotalTime   float64   `json:"totalTime"`
	LapTimes    []float64 `json:"lapTimes"`
	BestLapTime float64   `json:"bestLapTime"`
}

// NewRaceRecord creates a record stamped with an ISO-8601 timestamp
func NewRaceRecord(finishedAt time.Time, totalTime float64, lapTimes []float64, bestLapTime float64) *RaceRecord {
	laps := make([]float64, len(lapTimes))
	copy(laps, lapTimes)

	return &RaceRecord{
		ID:          uuid.New(),
		Timestamp:   finishedAt.UTC().Format(time.RFC3339Nano),
		TotalTime:   totalTime,
		LapTimes:    laps,
		BestLapTime: bestLapTime,
	}
}

// HistoryStore appends and lists finished races in order
type HistoryStore interface {
	Append(record *RaceRecord) error
	List() ([]*RaceRecord, error)
	Close() error
}

// JSONHistory keeps the history as a single JSON document holding the
// ordered list under HistoryKey.
type JSONHistory struct {
	filename string
	mutex    sync.Mutex
}

// NewJSONHistory returns a store writing to filename
func NewJSONHistory(filename string) *JSONHistory {
	return &JSONHistory{filename: filename}
}

type historyFile struct {
	RaceHistory []*RaceRecord `json:"raceHistory"`
}

// Append adds record to the end of the history file
func (h *JSONHistory) Append(record *RaceRecord) error {
	h.mutex.Lock()
	defer h.mutex.Unlock()

	file, err := h.load()
	if err != nil {
		return err
	}

	file.RaceHistory = append(file.RaceHistory, record)

	data, err := json.MarshalIndent(file, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(h.filename, data, 0644)
}

// List returns every stored race, oldest first
func (h *JSONHistory) List() ([]*RaceRecord, error) {
	h.mutex.Lock()
	defer h.mutex.Unlock()

	file, err := h.load()
	if err != nil {
		return nil, err
	}

	return file.RaceHistory, nil
}

func (h *JSONHistory) Close() error {
	return nil
}

func (h *JSONHistory) load() (*historyFile, error) {
	data, err := os.ReadFile(h.filename)
	if errors.Is(err, os.ErrNotExist) {
		return &historyFile{}, nil
	} else if err != nil {
		return nil, err
	}

	var file historyFile
	if err := json.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("history %s is corrupt: %w", h.filename, err)
	}

	return &file, nil
}

// BestRecord returns the record with the fastest single lap, or nil
func BestRecord(records []*RaceRecord) *RaceRecord {
	var best *RaceRecord
	for _, r := range records {
		if best == nil || r.BestLapTime < best.BestLapTime {
			best = r
		}
	}
	return best
}
