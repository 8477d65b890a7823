package request

import (
	validation "github.com/go-ozzo/ozzo-validation"
)

type ScheduleItem struct {
	Time     string `json:"time"`
	Activity string `json:"activity"`
}

func (s ScheduleItem) Validate() error {
	return validation.ValidateStruct(
		&s,
		validation.Field(&s.Time, validation.Required, validation.Date("15:04")),
		validation.Field(&s.Activity, validation.Required, validation.Length(1, 200)),
	)
}

type CreateActivityRequest struct {
	Name            string         `json:"name"`
	Venue           string         `json:"venue"`
	Date            string         `json:"date" format:"YYYY-MM-DD"`
	Time            string         `json:"time" format:"HH:MM"`
	Category        string         `json:"category"`
	Description     string         `json:"description"`
	RegistrationFee float64        `json:"registrationFee"`
	TeamSize        int            `json:"teamSize"`
	Schedule        []ScheduleItem `json:"schedule"`
	Image           string         `json:"image"`
	ManualStatus    string         `json:"manualStatus"`
	MaxParticipants int            `json:"maxParticipants"`
}

func (req *CreateActivityRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.Name, validation.Required, validation.Length(2, 100)),
		validation.Field(&req.Venue, validation.Length(0, 100)),
		validation.Field(&req.Date, validation.Date("2006-01-02")),
		validation.Field(&req.Time, validation.Date("15:04")),
		validation.Field(&req.Description, validation.Length(0, 2000)),
		validation.Field(&req.RegistrationFee, validation.Min(0.0)),
		validation.Field(&req.TeamSize, validation.Min(0)),
		validation.Field(&req.Schedule),
		validation.Field(&req.ManualStatus, validation.In("cancelled", "postponed")),
		validation.Field(&req.MaxParticipants, validation.Min(0)),
	)
}

type UpdateActivityRequest struct {
	CreateActivityRequest
}
