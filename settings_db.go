package main

import (
	"database/sql"
	"strconv"
	"time"
)

// Database implements settingsEndpoint over the user_settings key/value
// table. Missing, unparseable, and out-of-range rows fall back to the
// defaults, so a fresh or hand-edited database loads cleanly.

func (d *Database) Load() (Settings, error) {
	settings := defaultSettings()

	rows, err := d.DB.Query("SELECT key, value FROM user_settings")
	if err != nil {
		return Settings{}, err
	}
	defer rows.Close()

	for rows.Next() {
		var key, value string
		if err := rows.Scan(&key, &value); err != nil {
			return Settings{}, err
		}
		switch key {
		case keyMAMonths:
			if v, err := strconv.Atoi(value); err == nil {
				settings.MAMonths = v
			}
		case keyThresholdLow:
			if v, err := strconv.Atoi(value); err == nil {
				settings.ThresholdLow = v
			}
		case keyThresholdHigh:
			if v, err := strconv.Atoi(value); err == nil {
				settings.ThresholdHigh = v
			}
		case keyRunwayThreshold:
			if v, err := strconv.ParseFloat(value, 64); err == nil {
				settings.RunwayThreshold = v
			}
		}
	}
	if err := rows.Err(); err != nil {
		return Settings{}, err
	}
	// Stored values that parse but fall outside the domain (an externally
	// edited database) fall back to the defaults field by field.
	return sanitizeSettings(settings), nil
}

// Save validates and persists all fields in one transaction: all or none.
func (d *Database) Save(s Settings) error {
	if err := s.Valid(); err != nil {
		return err
	}
	tx, err := d.DB.Begin()
	if err != nil {
		return err
	}
	if err := upsertSettings(tx, s); err != nil {
		tx.Rollback()
		return err
	}
	return tx.Commit()
}

// Reset writes the defaults and returns them as the authoritative new state.
func (d *Database) Reset() (Settings, error) {
	defaults := defaultSettings()
	tx, err := d.DB.Begin()
	if err != nil {
		return Settings{}, err
	}
	if err := upsertSettings(tx, defaults); err != nil {
		tx.Rollback()
		return Settings{}, err
	}
	if err := tx.Commit(); err != nil {
		return Settings{}, err
	}
	return defaults, nil
}

func upsertSettings(tx *sql.Tx, s Settings) error {
	now := time.Now().Format("2006-01-02 15:04:05")
	pairs := []struct {
		key   string
		value string
	}{
		{keyMAMonths, strconv.Itoa(s.MAMonths)},
		{keyThresholdLow, strconv.Itoa(s.ThresholdLow)},
		{keyThresholdHigh, strconv.Itoa(s.ThresholdHigh)},
		{keyRunwayThreshold, strconv.FormatFloat(s.RunwayThreshold, 'f', -1, 64)},
	}
	for _, p := range pairs {
		_, err := tx.Exec(`INSERT INTO user_settings (key, value, updated_at) VALUES (?, ?, ?)
			ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at`,
			p.key, p.value, now)
		if err != nil {
			return err
		}
	}
	return nil
}
