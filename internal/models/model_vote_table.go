package models

import "time"

type Vote struct {
	UserId       string    `json:"userId" db:"user_id"`
	NominationId int64     `json:"nominationId" db:"nomination_id"`
	NomineeId    int64     `json:"nomineeId" db:"nominee_id"`
	CreatedAt    time.Time `json:"-" db:"created_at"`
	UpdatedAt    time.Time `json:"-" db:"updated_at"`
}
