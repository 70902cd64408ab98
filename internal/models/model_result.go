package models

// Tally 某奖项下某候选的得票数
type Tally struct {
	NominationId       int64  `db:"nomination_id"`
	NominationTitle    string `db:"nomination_title"`
	NominationPosition int    `db:"nomination_position"`
	NomineeId          int64  `db:"nominee_id"`
	NomineeName        string `db:"nominee_name"`
	NomineeImageUrl    string `db:"nominee_image_url"`
	Votes              int64  `db:"votes"`
}

type Winner struct {
	NominationId    int64  `json:"nominationId"`
	NominationTitle string `json:"nominationTitle"`
	NomineeId       int64  `json:"nomineeId"`
	NomineeName     string `json:"nomineeName"`
	ImageUrl        string `json:"imageUrl"`
	Votes           int64  `json:"votes"`
}
