// Package payment creates hosted checkout sessions for a draft
// summary. The gateway is opaque to the rest of the system: callers
// hand over the draft summary and get back a redirect URL.
package payment

import "context"

type SessionRequest struct {
	ActivityID   uint
	ActivityName string
	Quantity     int
	TotalAmount  float64 // in major currency units
	DraftID      string
}

type Provider interface {
	Name() string
	CreateCheckoutSession(ctx context.Context, req SessionRequest) (sessionURL string, err error)
}
