package voting

import (
	"context"
	"strings"

	"awardvote/internal/models"
)

// Ledger 每个用户每个奖项至多一票
type Ledger struct {
	store    VoteStore
	settings *Settings
}

func NewLedger(store VoteStore, settings *Settings) *Ledger {
	return &Ledger{store: store, settings: settings}
}

// Cast 投票或改票
func (l *Ledger) Cast(ctx context.Context, userId string, nominationId, nomineeId int64) error {
	userId = strings.TrimSpace(userId)
	if userId == "" || nominationId <= 0 || nomineeId <= 0 {
		return ErrMissingFields
	}
	if err := l.requireOpen(ctx); err != nil {
		return err
	}

	owner, err := l.store.NomineeNomination(ctx, nomineeId)
	if err != nil {
		return err
	}
	if owner != nominationId {
		return ErrNomineeMismatch
	}

	return l.store.UpsertVote(ctx, models.Vote{
		UserId:       userId,
		NominationId: nominationId,
		NomineeId:    nomineeId,
	})
}

// Retract 撤回投票，没有投过也视为成功
func (l *Ledger) Retract(ctx context.Context, userId string, nominationId int64) error {
	userId = strings.TrimSpace(userId)
	if userId == "" || nominationId <= 0 {
		return ErrMissingFields
	}
	if err := l.requireOpen(ctx); err != nil {
		return err
	}
	return l.store.DeleteVote(ctx, userId, nominationId)
}

// VotesForUser 奖项 id -> 所选候选 id
func (l *Ledger) VotesForUser(ctx context.Context, userId string) (map[int64]int64, error) {
	userId = strings.TrimSpace(userId)
	if userId == "" {
		return nil, ErrMissingFields
	}

	votes, err := l.store.UserVotes(ctx, userId)
	if err != nil {
		return nil, err
	}

	choices := make(map[int64]int64, len(votes))
	for _, v := range votes {
		choices[v.NominationId] = v.NomineeId
	}
	return choices, nil
}

func (l *Ledger) requireOpen(ctx context.Context) error {
	open, err := l.settings.VotingOpen(ctx)
	if err != nil {
		return err
	}
	if !open {
		return ErrVotingClosed
	}
	return nil
}
