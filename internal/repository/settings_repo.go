package repository

import (
	"github.com/jmoiron/sqlx"
)

// SettingsRepository handles the key-value settings table.
type SettingsRepository struct {
	db *sqlx.DB
}

// NewSettingsRepository creates a new SettingsRepository.
func NewSettingsRepository(db *sqlx.DB) *SettingsRepository {
	return &SettingsRepository{db: db}
}

type settingRow struct {
	Key   string `db:"key"`
	Value string `db:"value"`
}

// GetAll returns every stored setting as a key-value map.
func (r *SettingsRepository) GetAll() (map[string]string, error) {
	const q = `SELECT key, value FROM settings`

	var rows []settingRow
	if err := r.db.Select(&rows, q); err != nil {
		return nil, err
	}

	out := make(map[string]string, len(rows))
	for _, row := range rows {
		out[row.Key] = row.Value
	}
	return out, nil
}

// UpsertMany writes the given keys in one transaction. Keys not present in
// values are left untouched (partial-merge semantics).
func (r *SettingsRepository) UpsertMany(values map[string]string) error {
	if len(values) == 0 {
		return nil
	}

	tx, err := r.db.Beginx()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	const q = `
        INSERT INTO settings (key, value)
        VALUES ($1, $2)
        ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value, updated_at = NOW()`

	for key, value := range values {
		if _, err := tx.Exec(q, key, value); err != nil {
			return err
		}
	}

	return tx.Commit()
}
