package postgres

import (
	"context"
	"database/sql"

	sq "github.com/Masterminds/squirrel"
	"github.com/pkg/errors"

	"awardvote/internal/models"
)

func (s *Store) GetSetting(ctx context.Context, key models.SettingKey) (string, bool, error) {
	query, args, err := s.sb.Select("value").
		From("settings").
		Where(sq.Eq{"key": string(key)}).
		ToSql()
	if err != nil {
		return "", false, errors.Wrap(err, "build settings query")
	}

	var value string
	err = s.db.QueryRowContext(ctx, query, args...).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, errors.Wrapf(err, "get setting %s", key)
	}
	return value, true, nil
}

func (s *Store) PutSetting(ctx context.Context, key models.SettingKey, value string) error {
	query, args, err := s.sb.Insert("settings").
		Columns("key", "value", "updated_at").
		Values(string(key), value, sq.Expr("NOW()")).
		Suffix("ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value, updated_at = EXCLUDED.updated_at").
		ToSql()
	if err != nil {
		return errors.Wrap(err, "build settings upsert")
	}

	if _, err := s.db.ExecContext(ctx, query, args...); err != nil {
		return errors.Wrapf(err, "put setting %s", key)
	}
	return nil
}
