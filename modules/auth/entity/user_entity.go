package entity

import (
	"time"

	coreEntity "rezzy-api/core/entity"

	"github.com/google/uuid"
)

// User is an account. Whitelisted mirrors the whitelist table at registration
// time and is refreshed whenever an admin edits the list.
type User struct {
	ID          uuid.UUID `json:"id" db:"id"`
	Email       string    `json:"email" db:"email"`
	Password    string    `json:"-" db:"password"`
	Name        string    `json:"name" db:"name"`
	Admin       bool      `json:"admin" db:"admin"`
	Whitelisted bool      `json:"whitelisted" db:"whitelisted"`
	coreEntity.BaseEntity
}

// WhitelistEntry is an email allowed to submit reservation requests.
type WhitelistEntry struct {
	ID        int64     `json:"id" db:"id"`
	Email     string    `json:"email" db:"email"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}
