package postgres

import (
	"context"
	"database/sql"

	sq "github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/sqlscan"
	"github.com/pkg/errors"

	"awardvote/internal/models"
	"awardvote/internal/voting"
)

func (s *Store) NomineeNomination(ctx context.Context, nomineeId int64) (int64, error) {
	query, args, err := s.sb.Select("nomination_id").
		From("nominees").
		Where(sq.Eq{"id": nomineeId}).
		ToSql()
	if err != nil {
		return 0, errors.Wrap(err, "build nominee query")
	}

	var nominationId int64
	err = s.db.QueryRowContext(ctx, query, args...).Scan(&nominationId)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, voting.ErrNomineeNotFound
	}
	if err != nil {
		return 0, errors.Wrapf(err, "get nominee %d", nomineeId)
	}
	return nominationId, nil
}

func (s *Store) UpsertVote(ctx context.Context, vote models.Vote) error {
	userQuery, userArgs, err := s.sb.Insert("users").
		Columns("id").
		Values(vote.UserId).
		Suffix("ON CONFLICT (id) DO NOTHING").
		ToSql()
	if err != nil {
		return errors.Wrap(err, "build user insert")
	}

	voteQuery, voteArgs, err := s.sb.Insert("votes").
		Columns("user_id", "nomination_id", "nominee_id").
		Values(vote.UserId, vote.NominationId, vote.NomineeId).
		Suffix("ON CONFLICT (user_id, nomination_id) DO UPDATE SET nominee_id = EXCLUDED.nominee_id, updated_at = NOW()").
		ToSql()
	if err != nil {
		return errors.Wrap(err, "build vote upsert")
	}

	return withTx(ctx, s.db, func(ctx context.Context, tx DBTX) error {
		if _, err := tx.ExecContext(ctx, userQuery, userArgs...); err != nil {
			return errors.Wrapf(err, "ensure user %s", vote.UserId)
		}
		if _, err := tx.ExecContext(ctx, voteQuery, voteArgs...); err != nil {
			return errors.Wrapf(err, "upsert vote of %s in %d", vote.UserId, vote.NominationId)
		}
		return nil
	})
}

func (s *Store) DeleteVote(ctx context.Context, userId string, nominationId int64) error {
	query, args, err := s.sb.Delete("votes").
		Where(sq.Eq{"user_id": userId}).
		Where(sq.Eq{"nomination_id": nominationId}).
		ToSql()
	if err != nil {
		return errors.Wrap(err, "build vote delete")
	}

	if _, err := s.db.ExecContext(ctx, query, args...); err != nil {
		return errors.Wrapf(err, "delete vote of %s in %d", userId, nominationId)
	}
	return nil
}

func (s *Store) UserVotes(ctx context.Context, userId string) ([]models.Vote, error) {
	query, args, err := s.sb.Select("user_id", "nomination_id", "nominee_id", "created_at", "updated_at").
		From("votes").
		Where(sq.Eq{"user_id": userId}).
		OrderBy("nomination_id ASC").
		ToSql()
	if err != nil {
		return nil, errors.Wrap(err, "build votes query")
	}

	var votes []models.Vote
	if err := sqlscan.Select(ctx, s.db, &votes, query, args...); err != nil {
		return nil, errors.Wrapf(err, "list votes of %s", userId)
	}
	return votes, nil
}
