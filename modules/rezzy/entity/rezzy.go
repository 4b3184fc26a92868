package entity

import "time"

// Rezzy is the canonical persisted reservation request. Window 1 is always
// present; windows 2 and 3 are optional but contiguous (window 3 set implies
// window 2 set). One row per user, enforced by the rezzys_user_email_key
// unique constraint.
type Rezzy struct {
	ID        int64  `db:"id" json:"id"`
	UserEmail string `db:"user_email" json:"user_email"`
	Reference string `db:"reference" json:"reference"`

	Name           string  `db:"name" json:"name"`
	RestaurantName *string `db:"restaurant_name" json:"restaurant_name"`
	OpentableURL   *string `db:"opentable_url" json:"opentable_url"`
	PartySize      int     `db:"party_size" json:"party_size"`
	Latitude       float64 `db:"latitude" json:"latitude"`
	Longitude      float64 `db:"longitude" json:"longitude"`

	Date1      string `db:"date1" json:"date1"`
	MinTime1   string `db:"min_time1" json:"minTime1"`
	IdealTime1 string `db:"ideal_time1" json:"idealTime1"`
	MaxTime1   string `db:"max_time1" json:"maxTime1"`

	Date2      *string `db:"date2" json:"date2"`
	MinTime2   *string `db:"min_time2" json:"minTime2"`
	IdealTime2 *string `db:"ideal_time2" json:"idealTime2"`
	MaxTime2   *string `db:"max_time2" json:"maxTime2"`

	Date3      *string `db:"date3" json:"date3"`
	MinTime3   *string `db:"min_time3" json:"minTime3"`
	IdealTime3 *string `db:"ideal_time3" json:"idealTime3"`
	MaxTime3   *string `db:"max_time3" json:"maxTime3"`

	CreatedAt time.Time `db:"created_at" json:"created_at"`
}
