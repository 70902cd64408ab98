package models

type SettingKey string

const (
	// SettingVotingOpen 是否允许投票
	SettingVotingOpen SettingKey = "voting_open"
	// SettingResultsPublished 结果是否公开
	SettingResultsPublished SettingKey = "results_published"
)

// SettingKeys 管理接口可修改的全部开关
var SettingKeys = []SettingKey{SettingVotingOpen, SettingResultsPublished}

func (k SettingKey) Valid() bool {
	for _, key := range SettingKeys {
		if key == k {
			return true
		}
	}
	return false
}
