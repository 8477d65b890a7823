package payment

import (
	"context"
	"fmt"
)

// StubProvider returns a local success URL without contacting any
// gateway. Used in tests and when no Stripe key is configured.
type StubProvider struct {
	baseURL string
}

func NewStubProvider(baseURL string) *StubProvider {
	return &StubProvider{baseURL: baseURL}
}

func (p *StubProvider) Name() string {
	return "stub"
}

func (p *StubProvider) CreateCheckoutSession(_ context.Context, req SessionRequest) (string, error) {
	if req.Quantity < 1 {
		return "", fmt.Errorf("invalid quantity: %d", req.Quantity)
	}

	return fmt.Sprintf("%s/payment?draft=%s", p.baseURL, req.DraftID), nil
}
