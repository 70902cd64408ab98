package voting

import (
	"context"
	"strings"

	"awardvote/internal/models"
)

const (
	DefaultVotingOpen       = true
	DefaultResultsPublished = false
)

type Settings struct {
	store SettingsStore
}

func NewSettings(store SettingsStore) *Settings {
	return &Settings{store: store}
}

// Get 读取开关，缺失或无法解析时返回 def，只有存储错误才返回 error
func (s *Settings) Get(ctx context.Context, key models.SettingKey, def bool) (bool, error) {
	raw, found, err := s.store.GetSetting(ctx, key)
	if err != nil {
		return def, err
	}
	if !found {
		return def, nil
	}
	v, ok := ParseBool(raw)
	if !ok {
		return def, nil
	}
	return v, nil
}

func (s *Settings) Set(ctx context.Context, key models.SettingKey, value bool) error {
	if !key.Valid() {
		return ErrInvalidSettingKey
	}
	return s.store.PutSetting(ctx, key, FormatBool(value))
}

func (s *Settings) VotingOpen(ctx context.Context) (bool, error) {
	return s.Get(ctx, models.SettingVotingOpen, DefaultVotingOpen)
}

func (s *Settings) ResultsPublished(ctx context.Context) (bool, error) {
	return s.Get(ctx, models.SettingResultsPublished, DefaultResultsPublished)
}

func (s *Settings) Snapshot(ctx context.Context) (models.Status, error) {
	var (
		status models.Status
		err    error
	)
	if status.VotingOpen, err = s.VotingOpen(ctx); err != nil {
		return models.Status{}, err
	}
	if status.ResultsPublished, err = s.ResultsPublished(ctx); err != nil {
		return models.Status{}, err
	}
	return status, nil
}

// ParseBool 识别 true/1/yes 与 false/0/no，忽略大小写和首尾空白
func ParseBool(raw string) (bool, bool) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "true", "1", "yes":
		return true, true
	case "false", "0", "no":
		return false, true
	}
	return false, false
}

func FormatBool(v bool) string {
	if v {
		return "true"
	}
	return "false"
}

// ParseFlag 解析 JSON 值：布尔、ParseBool 可识别的字符串或数字 0/1
func ParseFlag(v any) (bool, bool) {
	switch t := v.(type) {
	case bool:
		return t, true
	case string:
		return ParseBool(t)
	case float64:
		switch t {
		case 1:
			return true, true
		case 0:
			return false, true
		}
	}
	return false, false
}
