package models

import "time"

type User struct {
	// Id 由客户端提供，服务端不解析
	Id        string    `json:"id" db:"id"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}
