// Package checkout models the draft lifecycle between the ticket form
// and the payment-return page as an explicit state machine. The guard
// against duplicate submission is a transition rule, not a boolean
// flag tied to caller timing.
package checkout

import (
	"errors"
	"strings"
	"sync"

	"github.com/sellandashawn/fignite/internal/domain"
)

type State uint8

const (
	StateNotStarted State = iota
	StateDraftSaved
	StateSubmitting
	StateSubmitted
	StateCleared
)

func (s State) String() string {
	switch s {
	case StateNotStarted:
		return "not_started"
	case StateDraftSaved:
		return "draft_saved"
	case StateSubmitting:
		return "submitting"
	case StateSubmitted:
		return "submitted"
	case StateCleared:
		return "cleared"
	}
	return "unknown"
}

var (
	ErrInvalidTransition = errors.New("invalid checkout transition")
	ErrAlreadyProcessed  = errors.New("checkout already processed")

	ErrInvalidQuantity  = errors.New("quantity must be at least one")
	ErrMissingBilling   = errors.New("all billing fields are required")
	ErrAgreementMissing = errors.New("terms agreement is required")
	ErrNoAttendees      = errors.New("at least one attendee is required")
	ErrInvalidAttendee  = errors.New("every attendee needs a name, an id number and an age greater than zero")
)

// Flow tracks one checkout session's progress through the lifecycle
// NotStarted -> DraftSaved -> Submitting -> Submitted -> Cleared.
type Flow struct {
	mu    sync.Mutex
	state State
}

func NewFlow() *Flow {
	return &Flow{state: StateNotStarted}
}

func (f *Flow) State() State {
	f.mu.Lock()
	defer f.mu.Unlock()

	return f.state
}

// SaveDraft records that a draft now occupies the slot. Re-saving while
// a draft is pending is allowed: the previous draft is overwritten and
// lost, by the same rule the storefront applies.
func (f *Flow) SaveDraft() error {
	f.mu.Lock()
	defer f.mu.Unlock()

	switch f.state {
	case StateNotStarted, StateDraftSaved, StateCleared:
		f.state = StateDraftSaved
		return nil
	}

	return ErrAlreadyProcessed
}

// BeginSubmit claims the one-shot right to forward the draft to the
// registration backend. Only the first caller wins; every later call
// observes ErrAlreadyProcessed.
func (f *Flow) BeginSubmit() error {
	f.mu.Lock()
	defer f.mu.Unlock()

	switch f.state {
	case StateDraftSaved:
		f.state = StateSubmitting
		return nil
	case StateSubmitting, StateSubmitted, StateCleared:
		return ErrAlreadyProcessed
	}

	return ErrInvalidTransition
}

// CompleteSubmit marks the registration call as finished, regardless of
// its outcome.
func (f *Flow) CompleteSubmit() error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.state != StateSubmitting {
		return ErrInvalidTransition
	}

	f.state = StateSubmitted
	return nil
}

// Clear marks the slot as consumed.
func (f *Flow) Clear() error {
	f.mu.Lock()
	defer f.mu.Unlock()

	switch f.state {
	case StateSubmitted, StateDraftSaved:
		f.state = StateCleared
		return nil
	}

	return ErrInvalidTransition
}

// ValidateDraft is the DraftSaved transition guard: a positive ticket
// quantity, all billing fields non-blank, the agreement box ticked, and
// every attendee row carrying a name, an id number and a positive age.
func ValidateDraft(d domain.Draft, agreed bool) error {
	if d.Quantity < 1 {
		return ErrInvalidQuantity
	}

	if blank(d.Billing.FirstName) || blank(d.Billing.LastName) || blank(d.Billing.Email) || blank(d.Billing.Phone) {
		return ErrMissingBilling
	}

	if !agreed {
		return ErrAgreementMissing
	}

	if len(d.Attendees) == 0 {
		return ErrNoAttendees
	}

	for _, a := range d.Attendees {
		if blank(a.Name) || blank(a.IDNumber) || a.Age <= 0 {
			return ErrInvalidAttendee
		}
	}

	return nil
}

func blank(s string) bool {
	return strings.TrimSpace(s) == ""
}
