package postgres

import (
	"context"

	"github.com/georgysavva/scany/v2/sqlscan"
	"github.com/pkg/errors"

	"awardvote/internal/models"
)

func (s *Store) Tally(ctx context.Context) ([]models.Tally, error) {
	query, args, err := s.sb.Select(
		"v.nomination_id",
		"n.title AS nomination_title",
		"n.position AS nomination_position",
		"v.nominee_id",
		"m.name AS nominee_name",
		"m.image_url AS nominee_image_url",
		"COUNT(*) AS votes",
	).
		From("votes v").
		Join("nominations n ON n.id = v.nomination_id").
		Join("nominees m ON m.id = v.nominee_id").
		GroupBy("v.nomination_id", "n.title", "n.position", "v.nominee_id", "m.name", "m.image_url").
		OrderBy("v.nomination_id ASC", "votes DESC", "v.nominee_id ASC").
		ToSql()
	if err != nil {
		return nil, errors.Wrap(err, "build tally query")
	}

	var tallies []models.Tally
	if err := sqlscan.Select(ctx, s.db, &tallies, query, args...); err != nil {
		return nil, errors.Wrap(err, "tally votes")
	}
	return tallies, nil
}
