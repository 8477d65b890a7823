package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/sellandashawn/fignite/internal/checkout"
	"github.com/sellandashawn/fignite/internal/domain"
	"github.com/sellandashawn/fignite/internal/draft"
	"github.com/sellandashawn/fignite/internal/email"
	"github.com/sellandashawn/fignite/internal/payment"
)

var (
	ErrDraftNotFound    = errors.New("no draft saved for this checkout")
	ErrAlreadyProcessed = checkout.ErrAlreadyProcessed
)

type DraftStore interface {
	Save(ctx context.Context, key string, d domain.Draft) error
	Read(ctx context.Context, key string) (domain.Draft, error)
	Clear(ctx context.Context, key string) error
}

type Registrar interface {
	Register(ctx context.Context, d domain.Draft) (domain.Participant, error)
}

type CheckoutService struct {
	drafts    DraftStore
	payments  payment.Provider
	registrar Registrar
	emails    email.Sender

	mu    sync.Mutex
	flows map[string]*checkout.Flow
}

func NewCheckoutService(drafts DraftStore, payments payment.Provider, registrar Registrar, emails email.Sender) *CheckoutService {
	return &CheckoutService{
		drafts:    drafts,
		payments:  payments,
		registrar: registrar,
		emails:    emails,
		flows:     make(map[string]*checkout.Flow),
	}
}

func (s *CheckoutService) flowFor(key string) *checkout.Flow {
	s.mu.Lock()
	defer s.mu.Unlock()

	f, ok := s.flows[key]
	if !ok {
		f = checkout.NewFlow()
		s.flows[key] = f
	}

	return f
}

// SaveDraft validates the ticket form and writes the draft into the
// session's single slot, overwriting whatever was there.
func (s *CheckoutService) SaveDraft(ctx context.Context, key string, d domain.Draft, agreed bool) (domain.Draft, error) {
	if err := checkout.ValidateDraft(d, agreed); err != nil {
		return domain.Draft{}, err
	}

	if err := s.flowFor(key).SaveDraft(); err != nil {
		return domain.Draft{}, err
	}

	d.ID = uuid.NewString()
	d.Status = domain.DraftPending
	d.CreatedAt = time.Now()

	if err := s.drafts.Save(ctx, key, d); err != nil {
		return domain.Draft{}, fmt.Errorf("s.drafts.Save -> %w", err)
	}

	return d, nil
}

func (s *CheckoutService) GetDraft(ctx context.Context, key string) (domain.Draft, error) {
	d, err := s.drafts.Read(ctx, key)
	if err != nil {
		if errors.Is(err, draft.ErrNotFound) {
			return domain.Draft{}, ErrDraftNotFound
		}

		return domain.Draft{}, fmt.Errorf("s.drafts.Read -> %w", err)
	}

	return d, nil
}

// CreateSession asks the payment gateway for a hosted checkout page for
// the saved draft.
func (s *CheckoutService) CreateSession(ctx context.Context, key string) (string, error) {
	d, err := s.GetDraft(ctx, key)
	if err != nil {
		return "", err
	}

	url, err := s.payments.CreateCheckoutSession(ctx, payment.SessionRequest{
		ActivityID:   d.ActivityID,
		ActivityName: d.ActivityName,
		Quantity:     d.Quantity,
		TotalAmount:  d.TotalAmount,
		DraftID:      d.ID,
	})
	if err != nil {
		return "", fmt.Errorf("s.payments.CreateCheckoutSession -> %w", err)
	}

	return url, nil
}

// Finalize consumes the saved draft after payment: exactly one caller
// per session gets to run the registration, and the slot is cleared
// whether or not the registration succeeds.
func (s *CheckoutService) Finalize(ctx context.Context, key string) (domain.Participant, error) {
	d, err := s.GetDraft(ctx, key)
	if err != nil {
		return domain.Participant{}, err
	}

	// The store is the source of truth. A draft written before a
	// restart still has no in-memory flow, so rehydrate one.
	flow := s.flowFor(key)
	if flow.State() == checkout.StateNotStarted {
		_ = flow.SaveDraft()
	}

	if err := flow.BeginSubmit(); err != nil {
		return domain.Participant{}, err
	}

	participant, registerErr := s.registrar.Register(ctx, d)

	if err := flow.CompleteSubmit(); err != nil {
		zap.L().Warn("checkout flow out of sync", zap.String("key", key), zap.Error(err))
	}

	// The slot is consumed either way. A failed registration loses the
	// draft rather than leaving a stale one to be resubmitted.
	if err := s.drafts.Clear(ctx, key); err != nil && !errors.Is(err, draft.ErrNotFound) {
		zap.L().Warn("failed to clear draft slot", zap.String("key", key), zap.Error(err))
	}
	if err := flow.Clear(); err != nil {
		zap.L().Warn("checkout flow out of sync", zap.String("key", key), zap.Error(err))
	}

	if registerErr != nil {
		return domain.Participant{}, fmt.Errorf("s.registrar.Register -> %w", registerErr)
	}

	s.sendConfirmation(ctx, d, participant)

	return participant, nil
}

// CancelDraft abandons the saved draft without registering.
func (s *CheckoutService) CancelDraft(ctx context.Context, key string) error {
	if err := s.drafts.Clear(ctx, key); err != nil {
		if errors.Is(err, draft.ErrNotFound) {
			return ErrDraftNotFound
		}

		return fmt.Errorf("s.drafts.Clear -> %w", err)
	}

	if err := s.flowFor(key).Clear(); err != nil {
		zap.L().Warn("checkout flow out of sync", zap.String("key", key), zap.Error(err))
	}

	return nil
}

func (s *CheckoutService) sendConfirmation(ctx context.Context, d domain.Draft, p domain.Participant) {
	if d.Billing.Email == "" {
		return
	}

	err := s.emails.Send(ctx, email.SendRequest{
		To:      []string{d.Billing.Email},
		Subject: fmt.Sprintf("Your tickets for %s", d.ActivityName),
		HTML:    confirmationHTML(d, p),
	})
	if err != nil {
		zap.L().Warn("failed to send confirmation email",
			zap.String("orderID", p.OrderID),
			zap.Error(err))
	}
}

func confirmationHTML(d domain.Draft, p domain.Participant) string {
	var b strings.Builder

	fmt.Fprintf(&b, "<h1>Registration confirmed</h1>")
	fmt.Fprintf(&b, "<p>Order <strong>%s</strong> for %s.</p>", p.OrderID, d.ActivityName)
	fmt.Fprintf(&b, "<p>%d ticket(s), total %.2f.</p>", p.NumberOfTickets, p.Amount)
	fmt.Fprintf(&b, "<ul>")
	for _, n := range p.TicketNumbers {
		fmt.Fprintf(&b, "<li>%s</li>", n)
	}
	fmt.Fprintf(&b, "</ul>")

	return b.String()
}
