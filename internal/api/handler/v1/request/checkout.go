package request

import (
	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/go-ozzo/ozzo-validation/is"
)

type BillingInfo struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
}

func (b BillingInfo) Validate() error {
	return validation.ValidateStruct(
		&b,
		validation.Field(&b.FirstName, validation.Required, validation.Length(1, 50)),
		validation.Field(&b.LastName, validation.Required, validation.Length(1, 50)),
		validation.Field(&b.Email, validation.Required, is.Email),
		validation.Field(&b.Phone, validation.Required, validation.Length(5, 20)),
	)
}

type Attendee struct {
	Name     string `json:"name"`
	IDNumber string `json:"idNumber"`
	Age      int    `json:"age"`
	Gender   string `json:"gender"`
	Email    string `json:"email"`
	TeamName string `json:"teamName"`
}

func (a Attendee) Validate() error {
	return validation.ValidateStruct(
		&a,
		validation.Field(&a.Name, validation.Required, validation.Length(1, 100)),
		validation.Field(&a.IDNumber, validation.Required, validation.Length(1, 50)),
		validation.Field(&a.Age, validation.Required, validation.Min(1), validation.Max(120)),
		validation.Field(&a.Email, is.Email),
	)
}

type SaveDraftRequest struct {
	ActivityID uint        `json:"activityId"`
	Kind       string      `json:"kind"`
	Quantity   int         `json:"quantity"`
	Billing    BillingInfo `json:"billingInfo"`
	Attendees  []Attendee  `json:"attendeeInfo"`
	TeamName   string      `json:"teamName"`
	Agreed     bool        `json:"agreed"`
}

func (req *SaveDraftRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.ActivityID, validation.Required),
		validation.Field(&req.Kind, validation.Required, validation.In("sport", "event")),
		validation.Field(&req.Quantity, validation.Required, validation.Min(1), validation.Max(50)),
		validation.Field(&req.Billing),
		validation.Field(&req.Attendees, validation.Required),
	)
}
