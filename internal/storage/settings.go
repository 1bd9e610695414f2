package storage

import (
	"database/sql"
	"errors"
	"fmt"
)

func bestScoreKey(gameID string) string {
	return "best_score:" + gameID
}

// GetInt reads an integer setting. ok is false when the key is not set.
func (s *Store) GetInt(key string) (value int, ok bool, err error) {
	err = s.db.QueryRow("SELECT value FROM settings WHERE key = ?", key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, false, nil
	}
	if err != nil {
		return 0, false, fmt.Errorf("storage: cannot read setting %q: %w", key, err)
	}
	return value, true, nil
}

// SetInt stores an integer setting, replacing any previous value.
func (s *Store) SetInt(key string, value int) error {
	_, err := s.db.Exec(
		`INSERT INTO settings (key, value, updated_at) VALUES (?, ?, CURRENT_TIMESTAMP)
		 ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at`,
		key, value,
	)
	if err != nil {
		return fmt.Errorf("storage: cannot write setting %q: %w", key, err)
	}
	return nil
}

// BestScore returns the best score ever reached in the given game: the larger
// of the persisted best and the run history maximum.
func (s *Store) BestScore(gameID string) (int, error) {
	best, _, err := s.GetInt(bestScoreKey(gameID))
	if err != nil {
		return 0, err
	}
	high, err := s.HighScore(gameID)
	if err != nil {
		return 0, err
	}
	return max(best, high), nil
}

// RaiseBestScore stores score as the best score if it beats the current one.
// The stored value never decreases, so concurrent sessions cannot lower it.
func (s *Store) RaiseBestScore(gameID string, score int) error {
	_, err := s.db.Exec(
		`INSERT INTO settings (key, value, updated_at) VALUES (?, ?, CURRENT_TIMESTAMP)
		 ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at
		 WHERE excluded.value > settings.value`,
		bestScoreKey(gameID), score,
	)
	if err != nil {
		return fmt.Errorf("storage: cannot raise best score: %w", err)
	}
	return nil
}
