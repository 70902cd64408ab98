// Package voting 投票业务规则，持久化通过 Store 接口完成
package voting

import (
	"context"
	"time"
)

type Options struct {
	// PublishedOnly 隐藏 is_published 为 false 的奖项
	PublishedOnly bool
}

type Service struct {
	Settings *Settings
	Catalog  *Catalog
	Ledger   *Ledger
	Results  *Results

	store Store
}

func NewService(store Store, opts Options) *Service {
	settings := NewSettings(store)
	return &Service{
		Settings: settings,
		Catalog:  NewCatalog(store, opts.PublishedOnly),
		Ledger:   NewLedger(store, settings),
		Results:  NewResults(store, settings),
		store:    store,
	}
}

func (s *Service) StoreTime(ctx context.Context) (time.Time, error) {
	return s.store.Now(ctx)
}
