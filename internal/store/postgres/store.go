// Package postgres 基于 pgx 的 voting.Store 实现，squirrel 拼 SQL，scany 扫描，goose 管理表结构
package postgres

import (
	"context"
	"database/sql"
	"time"

	sq "github.com/Masterminds/squirrel"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pkg/errors"
	"github.com/pressly/goose/v3"

	"awardvote/internal/store/migrations"
	"awardvote/internal/voting"
)

type Store struct {
	db *sql.DB
	sb sq.StatementBuilderType
}

var _ voting.Store = (*Store)(nil)

func New(db *sql.DB) *Store {
	return &Store{
		db: db,
		sb: sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
	}
}

// Open 连接数据库并 ping
func Open(ctx context.Context, dsn string) (*Store, error) {
	db, err := sql.Open("pgx", dsn)
	if err != nil {
		return nil, errors.Wrap(err, "open database")
	}
	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, errors.Wrap(err, "ping database")
	}
	return New(db), nil
}

func (s *Store) Close() error {
	return s.db.Close()
}

// Migrate 执行内嵌的 goose 迁移
func (s *Store) Migrate(ctx context.Context) error {
	goose.SetBaseFS(migrations.FS)
	if err := goose.SetDialect("pgx"); err != nil {
		return errors.Wrap(err, "set goose dialect")
	}
	if err := goose.UpContext(ctx, s.db, "."); err != nil {
		return errors.Wrap(err, "run migrations")
	}
	return nil
}

func (s *Store) Now(ctx context.Context) (time.Time, error) {
	var now time.Time
	if err := s.db.QueryRowContext(ctx, "SELECT NOW()").Scan(&now); err != nil {
		return time.Time{}, errors.Wrap(err, "query store time")
	}
	return now, nil
}
