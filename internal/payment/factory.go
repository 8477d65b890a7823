package payment

import (
	"github.com/sellandashawn/fignite/internal/config"
)

// NewProvider picks the gateway from config: Stripe when a secret key
// is present, the local stub otherwise.
func NewProvider(conf *config.StripeConfig, baseURL string) Provider {
	if conf != nil && conf.SecretKey != "" {
		return NewStripeProvider(conf)
	}

	return NewStubProvider(baseURL)
}
