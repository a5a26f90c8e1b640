package models

import (
	"encoding/json"
	"math"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestHistoryStores(t *testing.T) {
	stores := map[string]func(t *testing.T) HistoryStore{
		"json": func(t *testing.T) HistoryStore {
			return NewJSONHistory(filepath.Join(t.TempDir(), "history.json"))
		},
		"bolt": func(t *testing.T) HistoryStore {
			h, err := OpenBoltHistory(filepath.Join(t.TempDir(), "history.db"))
			if err != nil {
				t.Fatal(err)
			}
			return h
		},
	}

	for name, open := range stores {
		t.Run(name, func(t *testing.T) {
			store := open(t)
			defer store.Close()

			finished := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
			first := NewRaceRecord(finished, 40.5, []float64{20.5, 20}, 20)
			second := NewRaceRecord(finished.Add(time.Minute), 38, []float64{19, 19}, 19)

			for _, r := range []*RaceRecord{first, second} {
				if err := store.Append(r); err != nil {
					t.Fatal(err)
				}
			}

			records, err := store.List()
			if err != nil {
				t.Fatal(err)
			}

			if len(records) != 2 {
				t.Fatalf("records = %d, want 2", len(records))
			}

			if records[0].ID != first.ID || records[1].ID != second.ID {
				t.Error("records should come back in insertion order")
			}

			if records[0].Timestamp != "2024-03-01T12:00:00Z" {
				t.Errorf("timestamp = %s", records[0].Timestamp)
			}

			if records[1].TotalTime != 38 || len(records[1].LapTimes) != 2 {
				t.Errorf("second record = %+v", records[1])
			}
		})
	}
}

func TestJSONHistoryLayout(t *testing.T) {
	path := filepath.Join(t.TempDir(), "history.json")
	store := NewJSONHistory(path)

	if err := store.Append(NewRaceRecord(time.Now(), 10, []float64{5, 5}, 5)); err != nil {
		t.Fatal(err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}

	var doc map[string][]map[string]interface{}
	if err := json.Unmarshal(data, &doc); err != nil {
		t.Fatal(err)
	}

	entries, ok := doc[HistoryKey]
	if !ok || len(entries) != 1 {
		t.Fatalf("document = %s", data)
	}

	for _, field := range []string{"timestamp", "totalTime", "lapTimes", "bestLapTime"} {
		if _, ok := entries[0][field]; !ok {
			t.Errorf("missing field %q", field)
		}
	}
}

func TestNewRaceRecordCopiesLaps(t *testing.T) {
	laps := []float64{1, 2}
	r := NewRaceRecord(time.Now(), 3, laps, 1)
	laps[0] = 99

	if r.LapTimes[0] != 1 {
		t.Error("record should not alias the caller's lap slice")
	}
}

func TestBestRecord(t *testing.T) {
	if BestRecord(nil) != nil {
		t.Error("empty history has no best")
	}

	records := []*RaceRecord{
		{BestLapTime: 21},
		{BestLapTime: 19.5},
		{BestLapTime: math.Inf(1)},
	}

	if best := BestRecord(records); best != records[1] {
		t.Errorf("best = %+v", best)
	}
}

func TestCarInventory(t *testing.T) {
	for _, name := range []string{"drift", "grip", "heavy"} {
		c, err := CarInventory.Find(name)
		if err != nil {
			t.Fatalf("Find(%q): %v", name, err)
		}
		if c.Mass <= 0 || c.RideHeight() <= 0 {
			t.Errorf("%s has invalid chassis %+v", name, c)
		}
	}

	c, _ := CarInventory.Find("drift")
	c.Mass = 1
	again, _ := CarInventory.Find("drift")
	if again.Mass == 1 {
		t.Error("Find should return a copy")
	}

	if _, err := CarInventory.Find("bus"); err == nil {
		t.Error("unknown car should fail")
	}
}
