package response

import (
	"time"

	"github.com/sellandashawn/fignite/internal/domain"
	"github.com/sellandashawn/fignite/internal/listing"
)

// Activity is the storefront view of one activity, with the status and
// capacity fields already resolved for display.
type Activity struct {
	ID              uint                  `json:"id"`
	Kind            domain.Kind           `json:"kind"`
	Name            string                `json:"name"`
	Venue           string                `json:"venue"`
	Date            string                `json:"date,omitempty"`
	Time            string                `json:"time,omitempty"`
	CategoryName    string                `json:"categoryName"`
	Description     string                `json:"description"`
	RegistrationFee float64               `json:"registrationFee"`
	TeamSize        int                   `json:"teamSize,omitempty"`
	Schedule        []domain.ScheduleItem `json:"schedule,omitempty"`
	Image           string                `json:"image,omitempty"`
	Status          domain.Status         `json:"status"`
	AvailableSpots  int                   `json:"availableSpots"`
	CanRegister     bool                  `json:"canRegister"`

	Participation domain.Participation `json:"participationStatus"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

type ActivityList struct {
	Data       []Activity `json:"data"`
	Page       int        `json:"page"`
	PerPage    int        `json:"perPage"`
	Total      int        `json:"total"`
	TotalPages int        `json:"totalPages"`
}

func NewActivity(a domain.Activity, categories []domain.Category, now time.Time) Activity {
	date := ""
	if !a.Date.IsZero() {
		date = a.Date.Format("2006-01-02")
	}

	return Activity{
		ID:              a.ID,
		Kind:            a.Kind,
		Name:            a.Name,
		Venue:           a.Venue,
		Date:            date,
		Time:            a.Time,
		CategoryName:    domain.ResolveCategoryName(a.Category, categories),
		Description:     a.Description,
		RegistrationFee: a.RegistrationFee,
		TeamSize:        a.TeamSize,
		Schedule:        a.Schedule,
		Image:           a.Image,
		Status:          a.DerivedStatus(now),
		AvailableSpots:  a.Participation.AvailableSpots(),
		CanRegister:     a.CanRegister(now),
		Participation:   a.Participation,
		CreatedAt:       a.CreatedAt,
		UpdatedAt:       a.UpdatedAt,
	}
}

func NewActivityList(result listing.Result, categories []domain.Category, now time.Time) ActivityList {
	data := make([]Activity, len(result.Items))
	for i, a := range result.Items {
		data[i] = NewActivity(a, categories, now)
	}

	return ActivityList{
		Data:       data,
		Page:       result.Page,
		PerPage:    result.PerPage,
		Total:      result.Total,
		TotalPages: result.TotalPages,
	}
}
