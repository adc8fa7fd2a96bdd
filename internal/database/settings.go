package database

import (
	"context"
	"database/sql"
	"errors"
)

// GetSetting returns the stored value for key and whether it was set.
func (d *Database) GetSetting(ctx context.Context, key string) (string, bool) {
	var value *string
	err := d.withDBContext(ctx, func(ctx context.Context) error {
		return d.DB.QueryRowContext(ctx, "SELECT value FROM settings WHERE key = ?", key).Scan(&value)
	})
	if err != nil {
		if !errors.Is(err, sql.ErrNoRows) {
			d.logger.Warn("read setting", "key", key, "err", err)
		}
		return "", false
	}
	if value != nil {
		return *value, true
	}
	return "", false
}

func (d *Database) SetSetting(ctx context.Context, key, value string) error {
	return d.withDBContext(ctx, func(ctx context.Context) error {
		_, err := d.DB.ExecContext(ctx, "INSERT INTO settings (key, value) VALUES (?, ?) ON CONFLICT(key) DO UPDATE SET value = excluded.value", key, value)
		return wrapErr(EntitySetting, "set", key, err)
	})
}
