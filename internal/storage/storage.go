// Package storage persists game snapshots and engine statistics in
// BadgerDB.
package storage

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/dgraph-io/badger/v4"
)

// Storage key layout
const (
	gamePrefix = "game:"
	keyStats   = "stats"
)

// ErrGameNotFound is returned when a game id has no saved snapshot.
var ErrGameNotFound = errors.New("storage: game not found")

// SavedGame is a persisted game snapshot: the position as a FEN record
// plus the moves that led to it in long algebraic notation.
type SavedGame struct {
	ID      string    `json:"id"`
	FEN     string    `json:"fen"`
	Moves   []string  `json:"moves"`
	Result  string    `json:"result,omitempty"` // "1-0", "0-1", "1/2-1/2", or empty while ongoing
	SavedAt time.Time `json:"saved_at"`
}

// EngineStats accumulates search activity across runs.
type EngineStats struct {
	SearchesRun   int   `json:"searches_run"`
	NodesSearched int64 `json:"nodes_searched"`
}

// Storage wraps BadgerDB for persistent storage.
type Storage struct {
	db *badger.DB
}

// Open opens (or creates) a store in the given directory.
func Open(dir string) (*Storage, error) {
	opts := badger.DefaultOptions(dir)
	opts.Logger = nil // Disable badger's own logging

	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("storage: open %s: %w", dir, err)
	}

	return &Storage{db: db}, nil
}

// Close closes the database.
func (s *Storage) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// SaveGame stores a game snapshot under its id.
func (s *Storage) SaveGame(game *SavedGame) error {
	if game.ID == "" {
		return errors.New("storage: game id is empty")
	}
	game.SavedAt = time.Now()

	data, err := json.Marshal(game)
	if err != nil {
		return err
	}

	return s.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(gamePrefix+game.ID), data)
	})
}

// LoadGame loads the snapshot saved under id, or ErrGameNotFound.
func (s *Storage) LoadGame(id string) (*SavedGame, error) {
	var game SavedGame

	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(gamePrefix + id))
		if err == badger.ErrKeyNotFound {
			return ErrGameNotFound
		}
		if err != nil {
			return err
		}

		return item.Value(func(val []byte) error {
			return json.Unmarshal(val, &game)
		})
	})
	if err != nil {
		return nil, err
	}

	return &game, nil
}

// ListGames returns the ids of every saved game.
func (s *Storage) ListGames() ([]string, error) {
	var ids []string

	err := s.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.PrefetchValues = false
		it := txn.NewIterator(opts)
		defer it.Close()

		prefix := []byte(gamePrefix)
		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			ids = append(ids, strings.TrimPrefix(string(it.Item().Key()), gamePrefix))
		}
		return nil
	})

	return ids, err
}

// DeleteGame removes a saved game. Deleting a missing id is not an
// error.
func (s *Storage) DeleteGame(id string) error {
	return s.db.Update(func(txn *badger.Txn) error {
		return txn.Delete([]byte(gamePrefix + id))
	})
}

// RecordSearch adds one search run and its node count to the stats.
func (s *Storage) RecordSearch(nodes int) error {
	stats, err := s.LoadStats()
	if err != nil {
		return err
	}

	stats.SearchesRun++
	stats.NodesSearched += int64(nodes)

	data, err := json.Marshal(stats)
	if err != nil {
		return err
	}

	return s.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(keyStats), data)
	})
}

// LoadStats loads the accumulated engine stats, returning zeroed stats
// when none were recorded yet.
func (s *Storage) LoadStats() (*EngineStats, error) {
	stats := &EngineStats{}

	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(keyStats))
		if err == badger.ErrKeyNotFound {
			return nil // Nothing recorded yet
		}
		if err != nil {
			return err
		}

		return item.Value(func(val []byte) error {
			return json.Unmarshal(val, stats)
		})
	})

	return stats, err
}
