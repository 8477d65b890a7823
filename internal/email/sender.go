package email

import "context"

// SendRequest contains the data for one outgoing email.
type SendRequest struct {
	To      []string
	Subject string
	HTML    string
}

// Sender delivers emails via an external provider. Confirmation mail is
// best effort: callers log failures and move on.
type Sender interface {
	Send(ctx context.Context, req SendRequest) error
}
