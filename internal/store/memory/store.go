// Package memory 内存版 voting.Store，用于测试及 APP_DB=memory 开发模式
package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"awardvote/internal/models"
	"awardvote/internal/voting"
)

type voteKey struct {
	userId       string
	nominationId int64
}

type Store struct {
	mu          sync.RWMutex
	settings    map[models.SettingKey]models.Setting
	nominations map[int64]models.Nomination
	nominees    map[int64]models.Nominee
	users       map[string]models.User
	votes       map[voteKey]models.Vote
	now         func() time.Time
}

var _ voting.Store = (*Store)(nil)

func New() *Store {
	return &Store{
		settings:    make(map[models.SettingKey]models.Setting),
		nominations: make(map[int64]models.Nomination),
		nominees:    make(map[int64]models.Nominee),
		users:       make(map[string]models.User),
		votes:       make(map[voteKey]models.Vote),
		now:         time.Now,
	}
}

// AddNomination 新增或覆盖奖项，忽略其中的候选
func (s *Store) AddNomination(n models.Nomination) {
	s.mu.Lock()
	defer s.mu.Unlock()
	n.Nominees = nil
	s.nominations[n.Id] = n
}

func (s *Store) AddNominee(n models.Nominee) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.nominees[n.Id] = n
}

// VoteCount 当前投票记录数
func (s *Store) VoteCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.votes)
}

func (s *Store) HasUser(id string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.users[id]
	return ok
}

func (s *Store) GetSetting(_ context.Context, key models.SettingKey) (string, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	v, ok := s.settings[key]
	return v.Value, ok, nil
}

func (s *Store) PutSetting(_ context.Context, key models.SettingKey, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.settings[key] = models.Setting{Key: key, Value: value, UpdatedAt: s.now()}
	return nil
}

func (s *Store) CatalogRows(_ context.Context, publishedOnly bool) ([]models.CatalogRow, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	nominations := make([]models.Nomination, 0, len(s.nominations))
	for _, n := range s.nominations {
		if publishedOnly && !n.IsPublished() {
			continue
		}
		nominations = append(nominations, n)
	}
	sort.Slice(nominations, func(i, j int) bool {
		if nominations[i].Position == nominations[j].Position {
			return nominations[i].Id < nominations[j].Id
		}
		return nominations[i].Position < nominations[j].Position
	})

	byNomination := make(map[int64][]models.Nominee)
	for _, n := range s.nominees {
		byNomination[n.NominationId] = append(byNomination[n.NominationId], n)
	}

	rows := make([]models.CatalogRow, 0, len(nominations))
	for _, n := range nominations {
		base := models.CatalogRow{
			NominationId:          n.Id,
			NominationTitle:       n.Title,
			NominationDescription: n.Description,
			NominationPosition:    n.Position,
			NominationImageUrl:    n.ImageUrl,
		}
		nominees := byNomination[n.Id]
		if len(nominees) == 0 {
			rows = append(rows, base)
			continue
		}
		sort.Slice(nominees, func(i, j int) bool {
			if nominees[i].Position == nominees[j].Position {
				return nominees[i].Id < nominees[j].Id
			}
			return nominees[i].Position < nominees[j].Position
		})
		for _, m := range nominees {
			row := base
			id, name, image, pos := m.Id, m.Name, m.ImageUrl, m.Position
			row.NomineeId = &id
			row.NomineeName = &name
			row.NomineeImageUrl = &image
			row.NomineePosition = &pos
			rows = append(rows, row)
		}
	}
	return rows, nil
}

func (s *Store) NomineeNomination(_ context.Context, nomineeId int64) (int64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	n, ok := s.nominees[nomineeId]
	if !ok {
		return 0, voting.ErrNomineeNotFound
	}
	return n.NominationId, nil
}

func (s *Store) UpsertVote(_ context.Context, vote models.Vote) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	if _, ok := s.users[vote.UserId]; !ok {
		s.users[vote.UserId] = models.User{Id: vote.UserId, CreatedAt: now}
	}

	key := voteKey{userId: vote.UserId, nominationId: vote.NominationId}
	if prev, ok := s.votes[key]; ok {
		vote.CreatedAt = prev.CreatedAt
	} else {
		vote.CreatedAt = now
	}
	vote.UpdatedAt = now
	s.votes[key] = vote
	return nil
}

func (s *Store) DeleteVote(_ context.Context, userId string, nominationId int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.votes, voteKey{userId: userId, nominationId: nominationId})
	return nil
}

func (s *Store) UserVotes(_ context.Context, userId string) ([]models.Vote, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	votes := make([]models.Vote, 0)
	for k, v := range s.votes {
		if k.userId == userId {
			votes = append(votes, v)
		}
	}
	sort.Slice(votes, func(i, j int) bool { return votes[i].NominationId < votes[j].NominationId })
	return votes, nil
}

func (s *Store) Tally(_ context.Context) ([]models.Tally, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	type pair struct{ nomination, nominee int64 }
	counts := make(map[pair]int64)
	for _, v := range s.votes {
		counts[pair{v.NominationId, v.NomineeId}]++
	}

	tallies := make([]models.Tally, 0, len(counts))
	for p, c := range counts {
		nomination := s.nominations[p.nomination]
		nominee := s.nominees[p.nominee]
		tallies = append(tallies, models.Tally{
			NominationId:       p.nomination,
			NominationTitle:    nomination.Title,
			NominationPosition: nomination.Position,
			NomineeId:          p.nominee,
			NomineeName:        nominee.Name,
			NomineeImageUrl:    nominee.ImageUrl,
			Votes:              c,
		})
	}
	sort.Slice(tallies, func(i, j int) bool {
		if tallies[i].NominationId == tallies[j].NominationId {
			return tallies[i].NomineeId < tallies[j].NomineeId
		}
		return tallies[i].NominationId < tallies[j].NominationId
	})
	return tallies, nil
}

func (s *Store) Now(context.Context) (time.Time, error) {
	return s.now(), nil
}
