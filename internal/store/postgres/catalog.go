package postgres

import (
	"context"

	"github.com/georgysavva/scany/v2/sqlscan"
	"github.com/pkg/errors"

	"awardvote/internal/models"
)

func (s *Store) CatalogRows(ctx context.Context, publishedOnly bool) ([]models.CatalogRow, error) {
	q := s.sb.Select(
		"n.id AS nomination_id",
		"n.title AS nomination_title",
		"n.description AS nomination_description",
		"n.position AS nomination_position",
		"n.image_url AS nomination_image_url",
		"m.id AS nominee_id",
		"m.name AS nominee_name",
		"m.image_url AS nominee_image_url",
		"m.position AS nominee_position",
	).
		From("nominations n").
		LeftJoin("nominees m ON m.nomination_id = n.id").
		OrderBy("n.position ASC", "n.id ASC", "m.position ASC", "m.id ASC")
	if publishedOnly {
		q = q.Where("COALESCE(n.is_published, TRUE)")
	}

	query, args, err := q.ToSql()
	if err != nil {
		return nil, errors.Wrap(err, "build catalog query")
	}

	var rows []models.CatalogRow
	if err := sqlscan.Select(ctx, s.db, &rows, query, args...); err != nil {
		return nil, errors.Wrap(err, "list nominations")
	}
	return rows, nil
}
