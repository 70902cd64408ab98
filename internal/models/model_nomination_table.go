package models

type Nomination struct {
	Id          int64  `json:"id" db:"id"`
	Title       string `json:"title" db:"title"`
	Description string `json:"description" db:"description"`
	// Position 展示顺序
	Position int    `json:"position" db:"position"`
	ImageUrl string `json:"imageUrl" db:"image_url"`
	// Published 为空视为已发布
	Published *bool     `json:"-" db:"is_published"`
	Nominees  []Nominee `json:"nominees" db:"-"`
}

// IsPublished 未设置时视为已发布
func (n Nomination) IsPublished() bool {
	return n.Published == nil || *n.Published
}

type Nominee struct {
	Id           int64  `json:"id" db:"id"`
	NominationId int64  `json:"-" db:"nomination_id"`
	Name         string `json:"name" db:"name"`
	ImageUrl     string `json:"imageUrl" db:"image_url"`
	Position     int    `json:"position" db:"position"`
}

// CatalogRow nominations LEFT JOIN nominees 的一行，无候选时候选列为空
type CatalogRow struct {
	NominationId          int64   `db:"nomination_id"`
	NominationTitle       string  `db:"nomination_title"`
	NominationDescription string  `db:"nomination_description"`
	NominationPosition    int     `db:"nomination_position"`
	NominationImageUrl    string  `db:"nomination_image_url"`
	NomineeId             *int64  `db:"nominee_id"`
	NomineeName           *string `db:"nominee_name"`
	NomineeImageUrl       *string `db:"nominee_image_url"`
	NomineePosition       *int    `db:"nominee_position"`
}
