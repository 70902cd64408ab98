package voting

import (
	"context"
	"time"

	"awardvote/internal/models"
)

// SettingsStore 以字符串保存阶段开关
type SettingsStore interface {
	// GetSetting 未写入过的 key 返回 found=false
	GetSetting(ctx context.Context, key models.SettingKey) (value string, found bool, err error)
	PutSetting(ctx context.Context, key models.SettingKey, value string) error
}

type CatalogStore interface {
	// CatalogRows 奖项左连接候选，按奖项顺序、候选顺序排列
	CatalogRows(ctx context.Context, publishedOnly bool) ([]models.CatalogRow, error)
}

type VoteStore interface {
	// NomineeNomination 候选所属奖项，不存在时返回 ErrNomineeNotFound
	NomineeNomination(ctx context.Context, nomineeId int64) (int64, error)
	// UpsertVote 同一事务内建用户并写入投票，覆盖该奖项下的旧票
	UpsertVote(ctx context.Context, vote models.Vote) error
	// DeleteVote 没有投票时不做任何事
	DeleteVote(ctx context.Context, userId string, nominationId int64) error
	UserVotes(ctx context.Context, userId string) ([]models.Vote, error)
}

type TallyStore interface {
	Tally(ctx context.Context) ([]models.Tally, error)
}

type Store interface {
	SettingsStore
	CatalogStore
	VoteStore
	TallyStore
	// Now 存储端当前时间，用于连通性检查
	Now(ctx context.Context) (time.Time, error)
}
