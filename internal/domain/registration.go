package domain

import "time"

type BillingInfo struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
}

type Attendee struct {
	Name     string `json:"name"`
	IDNumber string `json:"idNumber"`
	Age      int    `json:"age"`
	Gender   string `json:"gender"`
	Email    string `json:"email"`
	TeamName string `json:"teamName"`
}

type DraftStatus string

const (
	DraftPending   DraftStatus = "pending"
	DraftConfirmed DraftStatus = "confirmed"
)

// Draft is the in-progress checkout record held in the single-slot
// draft store between the ticket form and the payment-return page.
// Starting a new checkout silently overwrites the previous draft.
type Draft struct {
	ID             string      `json:"id"`
	ActivityID     uint        `json:"activityId"`
	Kind           Kind        `json:"kind"`
	ActivityName   string      `json:"activityName"`
	ActivityDate   time.Time   `json:"activityDate"`
	ActivityTime   string      `json:"activityTime"`
	Venue          string      `json:"venue"`
	Image          string      `json:"image"`
	Quantity       int         `json:"quantity"`
	PerTicketPrice float64     `json:"perTicketPrice"`
	TotalAmount    float64     `json:"totalAmount"`
	Status         DraftStatus `json:"status"`
	Billing        BillingInfo `json:"billingInfo"`
	Attendees      []Attendee  `json:"attendeeInfo"`
	TeamName       string      `json:"teamName"`
	CreatedAt      time.Time   `json:"createdAt"`
}

// Participant is the server-side registration created from a consumed
// draft after payment.
type Participant struct {
	ID              uint        `json:"id"`
	OrderID         string      `json:"orderId"`
	ActivityID      uint        `json:"activityId"`
	Kind            Kind        `json:"kind"`
	Billing         BillingInfo `json:"billingInfo"`
	Attendees       []Attendee  `json:"attendees"`
	TeamName        string      `json:"teamName"`
	Amount          float64     `json:"amount"`
	NumberOfTickets int         `json:"numberOfTickets"`
	TicketNumbers   []string    `json:"ticketNumbers"`
	PaymentDate     time.Time   `json:"paymentDate"`
	CreatedAt       time.Time   `json:"createdAt"`
}
