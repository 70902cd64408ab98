package voting

import (
	"context"
	"sort"

	"awardvote/internal/models"
)

type Results struct {
	store    TallyStore
	settings *Settings
}

func NewResults(store TallyStore, settings *Settings) *Results {
	return &Results{store: store, settings: settings}
}

// Published results_published 开启后才返回结果
func (r *Results) Published(ctx context.Context) ([]models.Winner, error) {
	published, err := r.settings.ResultsPublished(ctx)
	if err != nil {
		return nil, err
	}
	if !published {
		return nil, ErrResultsNotPublished
	}
	return r.All(ctx)
}

// All 不检查公开状态
func (r *Results) All(ctx context.Context) ([]models.Winner, error) {
	tallies, err := r.store.Tally(ctx)
	if err != nil {
		return nil, err
	}
	return SelectWinners(tallies), nil
}

// SelectWinners 每个奖项取票数最高的候选，平票取 id 最小者；无票奖项没有结果。
// 按奖项顺序、奖项 id 排列，与输入顺序无关
func SelectWinners(tallies []models.Tally) []models.Winner {
	best := make(map[int64]models.Tally)
	for _, t := range tallies {
		cur, ok := best[t.NominationId]
		if !ok || beats(t, cur) {
			best[t.NominationId] = t
		}
	}

	picked := make([]models.Tally, 0, len(best))
	for _, t := range best {
		picked = append(picked, t)
	}
	sort.Slice(picked, func(i, j int) bool {
		if picked[i].NominationPosition == picked[j].NominationPosition {
			return picked[i].NominationId < picked[j].NominationId
		}
		return picked[i].NominationPosition < picked[j].NominationPosition
	})

	winners := make([]models.Winner, 0, len(picked))
	for _, t := range picked {
		winners = append(winners, models.Winner{
			NominationId:    t.NominationId,
			NominationTitle: t.NominationTitle,
			NomineeId:       t.NomineeId,
			NomineeName:     t.NomineeName,
			ImageUrl:        t.NomineeImageUrl,
			Votes:           t.Votes,
		})
	}
	return winners
}

func beats(a, b models.Tally) bool {
	if a.Votes != b.Votes {
		return a.Votes > b.Votes
	}
	return a.NomineeId < b.NomineeId
}

// WinnerMap 奖项 id -> 获奖候选 id
func WinnerMap(winners []models.Winner) map[int64]int64 {
	m := make(map[int64]int64, len(winners))
	for _, w := range winners {
		m[w.NominationId] = w.NomineeId
	}
	return m
}
