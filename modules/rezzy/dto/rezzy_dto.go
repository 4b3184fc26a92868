package dto

import (
	"rezzy-api/core/utils"
	"rezzy-api/modules/rezzy/entity"
	"time"
)

// ===================== Request DTOs =====================

// MakeRezzyRequest is the raw submission. The three date/time windows arrive
// sparse and slot-indexed; each sub-field is independently optional until
// validation runs.
type MakeRezzyRequest struct {
	UserName       string  `json:"user_name" validate:"required"`
	RestaurantName string  `json:"restaurant_name"`
	OpentableURL   string  `json:"opentable_url"`
	PartySize      int     `json:"party_size" validate:"required,min=1,max=20"`
	Latitude       float64 `json:"latitude" validate:"min=-90,max=90"`
	Longitude      float64 `json:"longitude" validate:"min=-180,max=180"`

	Date1      *time.Time `json:"date1"`
	MinTime1   string     `json:"min_time1" validate:"omitempty,datetime=15:04:05"`
	IdealTime1 string     `json:"ideal_time1" validate:"omitempty,datetime=15:04:05"`
	MaxTime1   string     `json:"max_time1" validate:"omitempty,datetime=15:04:05"`

	Date2      *time.Time `json:"date2"`
	MinTime2   string     `json:"min_time2" validate:"omitempty,datetime=15:04:05"`
	IdealTime2 string     `json:"ideal_time2" validate:"omitempty,datetime=15:04:05"`
	MaxTime2   string     `json:"max_time2" validate:"omitempty,datetime=15:04:05"`

	Date3      *time.Time `json:"date3"`
	MinTime3   string     `json:"min_time3" validate:"omitempty,datetime=15:04:05"`
	IdealTime3 string     `json:"ideal_time3" validate:"omitempty,datetime=15:04:05"`
	MaxTime3   string     `json:"max_time3" validate:"omitempty,datetime=15:04:05"`
}

// Windows collects the three slots as TimeWindow values, in slot order.
func (r *MakeRezzyRequest) Windows() [3]entity.TimeWindow {
	return [3]entity.TimeWindow{
		{Date: r.Date1, MinTime: r.MinTime1, IdealTime: r.IdealTime1, MaxTime: r.MaxTime1},
		{Date: r.Date2, MinTime: r.MinTime2, IdealTime: r.IdealTime2, MaxTime: r.MaxTime2},
		{Date: r.Date3, MinTime: r.MinTime3, IdealTime: r.IdealTime3, MaxTime: r.MaxTime3},
	}
}

// ===================== Response DTOs =====================

// TimeWindowResponse is one canonical window with display formatting attached.
type TimeWindowResponse struct {
	Date          string `json:"date"`
	MinTime       string `json:"min_time"`
	IdealTime     string `json:"ideal_time"`
	MaxTime       string `json:"max_time"`
	FormattedDate string `json:"formatted_date"`
	MinIndex      int    `json:"min_index"`
	IdealIndex    int    `json:"ideal_index"`
	MaxIndex      int    `json:"max_index"`
}

// RezzyResponse is the persisted request as shown to the user.
type RezzyResponse struct {
	ID             int64                `json:"id"`
	Reference      string               `json:"reference"`
	Name           string               `json:"name"`
	RestaurantName string               `json:"restaurant_name,omitempty"`
	OpentableURL   string               `json:"opentable_url,omitempty"`
	PartySize      int                  `json:"party_size"`
	Latitude       float64              `json:"latitude"`
	Longitude      float64              `json:"longitude"`
	Windows        []TimeWindowResponse `json:"windows"`
	CreatedAt      time.Time            `json:"created_at"`
}

// PaginatedRezzyResponse lists requests for the admin view.
type PaginatedRezzyResponse struct {
	Items      []RezzyResponse `json:"items"`
	TotalItems int             `json:"total_items"`
	PageNumber int             `json:"page_number"`
	PageSize   int             `json:"page_size"`
}

// ===================== Mapper Functions =====================

// ToRezzyResponse maps the persisted record to its display form. Slider
// indexes and formatted dates are presentation values only.
func ToRezzyResponse(r *entity.Rezzy) *RezzyResponse {
	resp := &RezzyResponse{
		ID:        r.ID,
		Reference: r.Reference,
		Name:      r.Name,
		PartySize: r.PartySize,
		Latitude:  r.Latitude,
		Longitude: r.Longitude,
		CreatedAt: r.CreatedAt,
	}
	if r.RestaurantName != nil {
		resp.RestaurantName = *r.RestaurantName
	}
	if r.OpentableURL != nil {
		resp.OpentableURL = *r.OpentableURL
	}

	resp.Windows = append(resp.Windows, toWindowResponse(r.Date1, r.MinTime1, r.IdealTime1, r.MaxTime1))
	if r.Date2 != nil && r.MinTime2 != nil && r.IdealTime2 != nil && r.MaxTime2 != nil {
		resp.Windows = append(resp.Windows, toWindowResponse(*r.Date2, *r.MinTime2, *r.IdealTime2, *r.MaxTime2))
	}
	if r.Date3 != nil && r.MinTime3 != nil && r.IdealTime3 != nil && r.MaxTime3 != nil {
		resp.Windows = append(resp.Windows, toWindowResponse(*r.Date3, *r.MinTime3, *r.IdealTime3, *r.MaxTime3))
	}

	return resp
}

func toWindowResponse(date, minTime, idealTime, maxTime string) TimeWindowResponse {
	minIdx, _ := utils.TimeToIndex(minTime)
	idealIdx, _ := utils.TimeToIndex(idealTime)
	maxIdx, _ := utils.TimeToIndex(maxTime)

	return TimeWindowResponse{
		Date:          date,
		MinTime:       minTime,
		IdealTime:     idealTime,
		MaxTime:       maxTime,
		FormattedDate: utils.FormatDate(date),
		MinIndex:      minIdx,
		IdealIndex:    idealIdx,
		MaxIndex:      maxIdx,
	}
}
