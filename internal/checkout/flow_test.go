package checkout

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sellandashawn/fignite/internal/domain"
)

func validDraft() domain.Draft {
	return domain.Draft{
		ID:           "draft-1",
		ActivityID:   7,
		Kind:         domain.KindEvent,
		ActivityName: "Summer Gala",
		Quantity:     2,
		Billing: domain.BillingInfo{
			FirstName: "Ava",
			LastName:  "Stone",
			Email:     "ava@example.com",
			Phone:     "555-0101",
		},
		Attendees: []domain.Attendee{
			{Name: "Ava Stone", IDNumber: "A123", Age: 29},
			{Name: "Ben Stone", IDNumber: "B456", Age: 31},
		},
	}
}

func TestFlow_HappyPath(t *testing.T) {
	f := NewFlow()
	assert.Equal(t, StateNotStarted, f.State())

	require.NoError(t, f.SaveDraft())
	assert.Equal(t, StateDraftSaved, f.State())

	require.NoError(t, f.BeginSubmit())
	assert.Equal(t, StateSubmitting, f.State())

	require.NoError(t, f.CompleteSubmit())
	assert.Equal(t, StateSubmitted, f.State())

	require.NoError(t, f.Clear())
	assert.Equal(t, StateCleared, f.State())
}

func TestFlow_ResaveOverwrites(t *testing.T) {
	f := NewFlow()

	require.NoError(t, f.SaveDraft())
	require.NoError(t, f.SaveDraft())
	assert.Equal(t, StateDraftSaved, f.State())
}

func TestFlow_SecondSubmitRejected(t *testing.T) {
	f := NewFlow()
	require.NoError(t, f.SaveDraft())
	require.NoError(t, f.BeginSubmit())

	assert.ErrorIs(t, f.BeginSubmit(), ErrAlreadyProcessed)

	require.NoError(t, f.CompleteSubmit())
	assert.ErrorIs(t, f.BeginSubmit(), ErrAlreadyProcessed)

	require.NoError(t, f.Clear())
	assert.ErrorIs(t, f.BeginSubmit(), ErrAlreadyProcessed)
}

func TestFlow_SubmitWithoutDraft(t *testing.T) {
	f := NewFlow()
	assert.ErrorIs(t, f.BeginSubmit(), ErrInvalidTransition)
}

func TestFlow_CompleteOutOfOrder(t *testing.T) {
	f := NewFlow()
	assert.ErrorIs(t, f.CompleteSubmit(), ErrInvalidTransition)

	require.NoError(t, f.SaveDraft())
	assert.ErrorIs(t, f.CompleteSubmit(), ErrInvalidTransition)
}

func TestFlow_ClearAbandonedDraft(t *testing.T) {
	f := NewFlow()
	require.NoError(t, f.SaveDraft())

	require.NoError(t, f.Clear())
	assert.Equal(t, StateCleared, f.State())
}

func TestFlow_NewDraftAfterClear(t *testing.T) {
	f := NewFlow()
	require.NoError(t, f.SaveDraft())
	require.NoError(t, f.BeginSubmit())
	require.NoError(t, f.CompleteSubmit())
	require.NoError(t, f.Clear())

	require.NoError(t, f.SaveDraft())
	assert.Equal(t, StateDraftSaved, f.State())
}

func TestValidateDraft(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		assert.NoError(t, ValidateDraft(validDraft(), true))
	})

	t.Run("zero quantity", func(t *testing.T) {
		d := validDraft()
		d.Quantity = 0
		assert.ErrorIs(t, ValidateDraft(d, true), ErrInvalidQuantity)
	})

	t.Run("missing billing field", func(t *testing.T) {
		d := validDraft()
		d.Billing.Phone = "   "
		assert.ErrorIs(t, ValidateDraft(d, true), ErrMissingBilling)
	})

	t.Run("agreement unchecked", func(t *testing.T) {
		assert.ErrorIs(t, ValidateDraft(validDraft(), false), ErrAgreementMissing)
	})

	t.Run("no attendees", func(t *testing.T) {
		d := validDraft()
		d.Attendees = nil
		assert.ErrorIs(t, ValidateDraft(d, true), ErrNoAttendees)
	})

	t.Run("attendee without id number", func(t *testing.T) {
		d := validDraft()
		d.Attendees[1].IDNumber = ""
		assert.ErrorIs(t, ValidateDraft(d, true), ErrInvalidAttendee)
	})

	t.Run("attendee with zero age", func(t *testing.T) {
		d := validDraft()
		d.Attendees[0].Age = 0
		assert.ErrorIs(t, ValidateDraft(d, true), ErrInvalidAttendee)
	})
}
