package payment

import (
	"context"
	"fmt"
	"math"

	"github.com/stripe/stripe-go/v72"
	"github.com/stripe/stripe-go/v72/client"

	"github.com/sellandashawn/fignite/internal/config"
)

type StripeProvider struct {
	api  *client.API
	conf *config.StripeConfig
}

func NewStripeProvider(conf *config.StripeConfig) *StripeProvider {
	api := &client.API{}
	api.Init(conf.SecretKey, nil)

	return &StripeProvider{
		api:  api,
		conf: conf,
	}
}

func (p *StripeProvider) Name() string {
	return "stripe"
}

func (p *StripeProvider) CreateCheckoutSession(_ context.Context, req SessionRequest) (string, error) {
	unitAmount := int64(math.Round(req.TotalAmount / float64(req.Quantity) * 100))

	params := &stripe.CheckoutSessionParams{
		PaymentMethodTypes: stripe.StringSlice([]string{"card"}),
		Mode:               stripe.String(string(stripe.CheckoutSessionModePayment)),
		SuccessURL:         stripe.String(p.conf.SuccessURL),
		CancelURL:          stripe.String(p.conf.CancelURL),
		ClientReferenceID:  stripe.String(req.DraftID),
		LineItems: []*stripe.CheckoutSessionLineItemParams{
			{
				PriceData: &stripe.CheckoutSessionLineItemPriceDataParams{
					Currency:   stripe.String(string(stripe.CurrencyUSD)),
					UnitAmount: stripe.Int64(unitAmount),
					ProductData: &stripe.CheckoutSessionLineItemPriceDataProductDataParams{
						Name: stripe.String(req.ActivityName),
					},
				},
				Quantity: stripe.Int64(int64(req.Quantity)),
			},
		},
	}

	session, err := p.api.CheckoutSessions.New(params)
	if err != nil {
		return "", fmt.Errorf("stripe.CheckoutSessions.New -> %w", err)
	}

	return session.URL, nil
}
