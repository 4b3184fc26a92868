package entity

import "time"

// BaseEntity holds the timestamp columns shared by all tables.
type BaseEntity struct {
	CreatedAt time.Time `db:"created_at" json:"created_at"`
	UpdatedAt time.Time `db:"updated_at" json:"updated_at"`
}
