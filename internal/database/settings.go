package database

import (
	"context"
	"database/sql"
	"strings"
)

const upsertSetting = "INSERT INTO settings (key, value) VALUES (?, ?) ON CONFLICT(key) DO UPDATE SET value = excluded.value"

type execer interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
}

// GetSetting returns the stored value for key and whether it was present.
func (d *Database) GetSetting(ctx context.Context, key string) (string, bool) {
	if d.closed {
		return "", false
	}
	var value *string
	err := d.DB.QueryRowContext(ctx, "SELECT value FROM settings WHERE key = ?", key).Scan(&value)
	if err != nil {
		return "", false
	}
	if value != nil {
		return *value, true
	}
	return "", false
}

// SetSetting stores value under key, replacing any previous value.
func (d *Database) SetSetting(ctx context.Context, key, value string) error {
	if d.closed {
		return &OpError{Op: "set", Key: key, Err: ErrStoreClosed}
	}
	return setSetting(ctx, d.DB, key, value)
}

func setSetting(ctx context.Context, ex execer, key, value string) error {
	if _, err := ex.ExecContext(ctx, upsertSetting, key, value); err != nil {
		return &OpError{Op: "set", Key: key, Err: err}
	}
	return nil
}

// settings fetches the non-NULL values stored under keys in one query.
// Absent keys are simply missing from the result.
func (d *Database) settings(ctx context.Context, keys ...string) (map[string]string, error) {
	if d.closed {
		return nil, &OpError{Op: "get", Key: strings.Join(keys, ","), Err: ErrStoreClosed}
	}
	out := make(map[string]string, len(keys))
	if len(keys) == 0 {
		return out, nil
	}
	placeholders := strings.TrimSuffix(strings.Repeat("?,", len(keys)), ",")
	args := make([]any, len(keys))
	for i, k := range keys {
		args[i] = k
	}
	rows, err := d.DB.QueryContext(ctx, "SELECT key, value FROM settings WHERE value IS NOT NULL AND key IN ("+placeholders+")", args...)
	if err != nil {
		return nil, &OpError{Op: "get", Key: strings.Join(keys, ","), Err: err}
	}
	defer rows.Close()
	for rows.Next() {
		var k, v string
		if err := rows.Scan(&k, &v); err != nil {
			return nil, &OpError{Op: "scan", Key: k, Err: err}
		}
		out[k] = v
	}
	if err := rows.Err(); err != nil {
		return nil, &OpError{Op: "get", Key: strings.Join(keys, ","), Err: err}
	}
	return out, nil
}
