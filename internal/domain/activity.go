package domain

import "time"

type Kind string

const (
	KindSport Kind = "sport"
	KindEvent Kind = "event"
)

type Status string

const (
	StatusUpcoming  Status = "upcoming"
	StatusOngoing   Status = "ongoing"
	StatusCompleted Status = "completed"
	StatusCancelled Status = "cancelled"
	StatusPostponed Status = "postponed"
)

// IsManual reports whether the status is an admin-set override that
// suppresses date-based derivation.
func (s Status) IsManual() bool {
	return s == StatusCancelled || s == StatusPostponed
}

func (s Status) IsValid() bool {
	switch s {
	case StatusUpcoming, StatusOngoing, StatusCompleted, StatusCancelled, StatusPostponed:
		return true
	}
	return false
}

type ScheduleItem struct {
	Time     string `json:"time"`
	Activity string `json:"activity"`
}

type Participation struct {
	MaximumParticipants   int `json:"maximumParticipants"`
	ConfirmedParticipants int `json:"confirmedParticipants"`
	TotalParticipants     int `json:"totalParticipants"`
}

// AvailableSpots is the remaining capacity, floor-clamped at zero.
// Missing fields count as zero.
func (p Participation) AvailableSpots() int {
	spots := p.MaximumParticipants - p.TotalParticipants
	if spots < 0 {
		return 0
	}
	return spots
}

type Activity struct {
	ID             uint           `json:"id"`
	Kind           Kind           `json:"kind"`
	Name           string         `json:"name"`
	Venue          string         `json:"venue"`
	Date           time.Time      `json:"date"`
	Time           string         `json:"time"` // "15:04", optional
	Category       CategoryRef    `json:"category"`
	Description    string         `json:"description"`
	RegistrationFee float64       `json:"registrationFee"`
	TeamSize       int            `json:"teamSize"`
	Schedule       []ScheduleItem `json:"schedule"`
	Image          string         `json:"image"`
	ManualStatus   Status         `json:"manualStatus,omitempty"` // cancelled/postponed only
	Participation  Participation  `json:"participationStatus"`
	CreatedAt      time.Time      `json:"createdAt"`
	UpdatedAt      time.Time      `json:"updatedAt"`
}

// ResolveStatus derives the display status of an activity scheduled at
// date (plus the optional "15:04" clock) relative to now. A manual
// cancelled/postponed status is sticky and returned unchanged. The
// entire current calendar day counts as ongoing, whether or not the
// clock time has passed.
func ResolveStatus(date time.Time, clock string, manual Status, now time.Time) Status {
	if manual.IsManual() {
		return manual
	}

	if date.IsZero() {
		// Not yet scheduled, still pending.
		return StatusUpcoming
	}

	y, m, d := date.Date()
	targetDay := time.Date(y, m, d, 0, 0, 0, 0, now.Location())

	ny, nm, nd := now.Date()
	today := time.Date(ny, nm, nd, 0, 0, 0, 0, now.Location())

	switch {
	case targetDay.Before(today):
		return StatusCompleted
	case targetDay.Equal(today):
		return StatusOngoing
	case targetDay.After(today):
		return StatusUpcoming
	}

	return StatusCompleted
}

// TargetTime combines the scheduled date with the optional "15:04"
// clock string, defaulting to midnight when the clock is absent or
// malformed.
func TargetTime(date time.Time, clock string) time.Time {
	if date.IsZero() {
		return date
	}

	y, m, d := date.Date()
	target := time.Date(y, m, d, 0, 0, 0, 0, date.Location())

	if clock != "" {
		if t, err := time.Parse("15:04", clock); err == nil {
			target = target.Add(time.Duration(t.Hour())*time.Hour + time.Duration(t.Minute())*time.Minute)
		}
	}

	return target
}

// DerivedStatus resolves the activity's display status at now.
func (a Activity) DerivedStatus(now time.Time) Status {
	return ResolveStatus(a.Date, a.Time, a.ManualStatus, now)
}

// CanRegister reports whether the activity still accepts registrations:
// upcoming or ongoing, with spots left.
func (a Activity) CanRegister(now time.Time) bool {
	status := a.DerivedStatus(now)
	if status != StatusUpcoming && status != StatusOngoing {
		return false
	}

	return a.Participation.AvailableSpots() > 0
}
