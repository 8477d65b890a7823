package email

import (
	"context"

	"go.uber.org/zap"
)

// NoopSender logs instead of delivering. Used in development and tests.
type NoopSender struct{}

func NewNoopSender() *NoopSender {
	return &NoopSender{}
}

func (s *NoopSender) Send(_ context.Context, req SendRequest) error {
	zap.L().Info("noop email send",
		zap.Strings("to", req.To),
		zap.String("subject", req.Subject),
	)

	return nil
}
