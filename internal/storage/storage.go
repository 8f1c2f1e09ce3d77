package storage

import (
	"encoding/json"
	"time"

	"github.com/dgraph-io/badger/v4"
)

// Storage keys
const (
	keyPreferences = "preferences"
	keyStats       = "stats"
)

// Preferences stores user settings.
type Preferences struct {
	ThemeFile  string    `json:"theme_file"`
	LastPlayed time.Time `json:"last_played"`
}

// DefaultPreferences returns default user preferences.
func DefaultPreferences() *Preferences {
	return &Preferences{
		LastPlayed: time.Now(),
	}
}

// BoardStats counts finished games by result.
type BoardStats struct {
	GamesFinished int `json:"games_finished"`
	WhiteWins     int `json:"white_wins"`
	BlackWins     int `json:"black_wins"`
	Stalemates    int `json:"stalemates"`
	OtherDraws    int `json:"other_draws"`
}

// Storage wraps BadgerDB for persistent storage.
type Storage struct {
	db *badger.DB
}

// NewStorage opens the database in the platform data directory.
func NewStorage() (*Storage, error) {
	dbDir, err := GetDatabaseDir()
	if err != nil {
		return nil, err
	}
	return OpenAt(dbDir)
}

// OpenAt opens the database in the given directory. Split out from
// NewStorage so tests can use a temp dir.
func OpenAt(dir string) (*Storage, error) {
	opts := badger.DefaultOptions(dir)
	opts.Logger = nil // Badger's own logging is noise here

	db, err := badger.Open(opts)
	if err != nil {
		return nil, err
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

// SavePreferences saves user preferences.
func (s *Storage) SavePreferences(prefs *Preferences) error {
	prefs.LastPlayed = time.Now()

	data, err := json.Marshal(prefs)
	if err != nil {
		return err
	}

	return s.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(keyPreferences), data)
	})
}

// LoadPreferences loads user preferences, returning defaults if not found.
func (s *Storage) LoadPreferences() (*Preferences, error) {
	prefs := DefaultPreferences()

	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(keyPreferences))
		if err == badger.ErrKeyNotFound {
			return nil // Use defaults
		}
		if err != nil {
			return err
		}

		return item.Value(func(val []byte) error {
			return json.Unmarshal(val, prefs)
		})
	})

	return prefs, err
}

// LoadStats loads board statistics, returning zeroes if not found.
func (s *Storage) LoadStats() (*BoardStats, error) {
	stats := &BoardStats{}

	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(keyStats))
		if err == badger.ErrKeyNotFound {
			return nil
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

// SaveStats saves board statistics.
func (s *Storage) SaveStats(stats *BoardStats) error {
	data, err := json.Marshal(stats)
	if err != nil {
		return err
	}

	return s.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(keyStats), data)
	})
}

// RecordResult records one finished game. result is "white", "black",
// "stalemate" or "draw"; anything else is ignored.
func (s *Storage) RecordResult(result string) error {
	stats, err := s.LoadStats()
	if err != nil {
		return err
	}

	switch result {
	case "white":
		stats.WhiteWins++
	case "black":
		stats.BlackWins++
	case "stalemate":
		stats.Stalemates++
	case "draw":
		stats.OtherDraws++
	default:
		return nil
	}
	stats.GamesFinished++

	return s.SaveStats(stats)
}
