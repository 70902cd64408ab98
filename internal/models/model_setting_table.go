package models

import "time"

type Setting struct {
	Key SettingKey `json:"key" db:"key"`
	// Value 写入后只会是 "true" 或 "false"
	Value     string    `json:"value" db:"value"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`
}

// Status 两个阶段开关的公开视图
type Status struct {
	VotingOpen       bool `json:"voting_open"`
	ResultsPublished bool `json:"results_published"`
}
