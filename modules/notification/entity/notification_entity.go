package entity

import (
	"database/sql/driver"
	"encoding/json"
	"errors"

	coreEntity "rezzy-api/core/entity"

	"github.com/google/uuid"
)

// Notification is an availability alert delivered to a user's inbox. Data
// carries the finding from the monitor (restaurant, date, time, booking link).
type Notification struct {
	ID      uuid.UUID `db:"id" json:"id"`
	UserID  uuid.UUID `db:"user_id" json:"user_id"`
	Title   string    `db:"title" json:"title"`
	Message string    `db:"message" json:"message"`
	Type    string    `db:"type" json:"type"`
	Data    JSONB     `db:"data" json:"data"`
	IsRead  bool      `db:"is_read" json:"is_read"`
	coreEntity.BaseEntity
}

// NotificationTypeAvailability marks alerts produced by the monitor.
const NotificationTypeAvailability = "availability"

type JSONB map[string]interface{}

func (a JSONB) Value() (driver.Value, error) {
	if a == nil {
		return nil, nil
	}
	return json.Marshal(a)
}

func (a *JSONB) Scan(value interface{}) error {
	if value == nil {
		return nil
	}
	b, ok := value.([]byte)
	if !ok {
		return errors.New("type assertion to []byte failed")
	}
	return json.Unmarshal(b, &a)
}
