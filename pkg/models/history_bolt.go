package models

import (
	"encoding/binary"
	"encoding/json"
	"fmt"
	"time"

	bolt "go.etcd.io/bbolt"
)

// BoltHistory stores races in a bolt bucket keyed by insertion sequence
type BoltHistory struct {
	db *bolt.DB
}

// OpenBoltHistory opens (or creates) the database at path
func OpenBoltHistory(path string) (*BoltHistory, error) {
	db, err := bolt.Open(path, 0600, &bolt.Options{Timeout: time.Second})
	if err != nil {
		return nil, fmt.Errorf("open history %s: %w", path, err)
	}

	err = db.Update(func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists([]byte(HistoryKey))
		return err
	})
	if err != nil {
		db.Close()
		return nil, err
	}

	return &BoltHistory{db: db}, nil
}

// Append stores record after every existing one
func (h *BoltHistory) Append(record *RaceRecord) error {
	data, err := json.Marshal(record)
	if err != nil {
		return err
	}

	return h.db.Update(func(tx *bolt.Tx) error {
		bucket := tx.Bucket([]byte(HistoryKey))

		seq, err := bucket.NextSequence()
		if err != nil {
			return err
		}

		return bucket.Put(sequenceKey(seq), data)
	})
}

// List returns every stored race, oldest first
func (h *BoltHistory) List() ([]*RaceRecord, error) {
	var records []*RaceRecord

	err := h.db.View(func(tx *bolt.Tx) error {
		return tx.Bucket([]byte(HistoryKey)).ForEach(func(k, v []byte) error {
			var record RaceRecord
			if err := json.Unmarshal(v, &record); err != nil {
				return fmt.Errorf("history entry %d: %w", binary.BigEndian.Uint64(k), err)
			}
			records = append(records, &record)
			return nil
		})
	})
	if err != nil {
		return nil, err
	}

	return records, nil
}

func (h *BoltHistory) Close() error {
	return h.db.Close()
}

// big endian keeps bolt's byte ordering equal to insertion order
func sequenceKey(seq uint64) []byte {
	key := make([]byte, 8)
	binary.BigEndian.PutUint64(key, seq)
	return key
}
