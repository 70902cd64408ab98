package voting

import (
	"context"

	"awardvote/internal/models"
)

type Catalog struct {
	store         CatalogStore
	publishedOnly bool
}

func NewCatalog(store CatalogStore, publishedOnly bool) *Catalog {
	return &Catalog{store: store, publishedOnly: publishedOnly}
}

// List 按展示顺序返回奖项及候选
func (c *Catalog) List(ctx context.Context) ([]models.Nomination, error) {
	rows, err := c.store.CatalogRows(ctx, c.publishedOnly)
	if err != nil {
		return nil, err
	}
	return GroupCatalog(rows), nil
}

// GroupCatalog 将连接结果按奖项聚合，保持首次出现的顺序，无候选的行只产生奖项
func GroupCatalog(rows []models.CatalogRow) []models.Nomination {
	nominations := make([]models.Nomination, 0)
	index := make(map[int64]int)

	for _, row := range rows {
		i, seen := index[row.NominationId]
		if !seen {
			i = len(nominations)
			index[row.NominationId] = i
			nominations = append(nominations, models.Nomination{
				Id:          row.NominationId,
				Title:       row.NominationTitle,
				Description: row.NominationDescription,
				Position:    row.NominationPosition,
				ImageUrl:    row.NominationImageUrl,
				Nominees:    make([]models.Nominee, 0),
			})
		}
		if row.NomineeId == nil {
			continue
		}

		nominee := models.Nominee{
			Id:           *row.NomineeId,
			NominationId: row.NominationId,
		}
		if row.NomineeName != nil {
			nominee.Name = *row.NomineeName
		}
		if row.NomineeImageUrl != nil {
			nominee.ImageUrl = *row.NomineeImageUrl
		}
		if row.NomineePosition != nil {
			nominee.Position = *row.NomineePosition
		}
		nominations[i].Nominees = append(nominations[i].Nominees, nominee)
	}

	return nominations
}
