package v1

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/sellandashawn/fignite/internal/api/handler/v1/request"
	"github.com/sellandashawn/fignite/internal/api/handler/v1/response"
	"github.com/sellandashawn/fignite/internal/checkout"
	"github.com/sellandashawn/fignite/internal/domain"
	"github.com/sellandashawn/fignite/internal/service"
)

// SessionHeader carries the checkout session key. Each key owns one
// draft slot.
const SessionHeader = "X-Checkout-Session"

type CheckoutService interface {
	SaveDraft(ctx context.Context, key string, d domain.Draft, agreed bool) (domain.Draft, error)
	GetDraft(ctx context.Context, key string) (domain.Draft, error)
	CreateSession(ctx context.Context, key string) (string, error)
	Finalize(ctx context.Context, key string) (domain.Participant, error)
	CancelDraft(ctx context.Context, key string) error
}

type CheckoutHandler struct {
	svc         CheckoutService
	activitySvc ActivityService
}

func NewCheckoutHandler(svc CheckoutService, activitySvc ActivityService) *CheckoutHandler {
	return &CheckoutHandler{
		svc:         svc,
		activitySvc: activitySvc,
	}
}

func sessionKey(ctx *gin.Context) (string, *response.Err) {
	key := ctx.GetHeader(SessionHeader)
	if key == "" {
		return "", response.ErrBadRequest(fmt.Errorf("missing %v header", SessionHeader))
	}

	return key, nil
}

// HandleSaveDraft godoc
// @Summary      Save a checkout draft
// @Description  Validates the ticket form and saves the draft into the
// @Description  session's slot, replacing any previous draft.
// @Tags         checkout
// @Accept       json
// @Produce      json
// @Param        X-Checkout-Session  header    string                   true  "checkout session key"
// @Param        input               body      request.SaveDraftRequest true  "draft details"
// @Success      201  {object}  domain.Draft
// @Failure      400  {object}  response.Err
// @Failure      404  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /checkout/draft [post]
func (h *CheckoutHandler) HandleSaveDraft(ctx *gin.Context) {
	key, respErr := sessionKey(ctx)
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	var req request.SaveDraftRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	activity, err := h.activitySvc.GetByID(ctx.Request.Context(), domain.Kind(req.Kind), req.ActivityID)
	if err != nil {
		if errors.Is(err, service.ErrActivityNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("activity", "ID", req.ActivityID))
			return
		}

		err = fmt.Errorf("v1.HandleSaveDraft -> h.activitySvc.GetByID -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	if !activity.CanRegister(time.Now()) {
		response.RenderErr(ctx, response.ErrBadRequest(fmt.Errorf("registration is closed for %v", activity.Name)))
		return
	}

	saved, err := h.svc.SaveDraft(ctx.Request.Context(), key, draftFromRequest(req, activity), req.Agreed)
	if err != nil {
		switch {
		case errors.Is(err, checkout.ErrInvalidQuantity),
			errors.Is(err, checkout.ErrMissingBilling),
			errors.Is(err, checkout.ErrAgreementMissing),
			errors.Is(err, checkout.ErrNoAttendees),
			errors.Is(err, checkout.ErrInvalidAttendee):
			response.RenderErr(ctx, response.ErrBadRequest(err))
		default:
			err = fmt.Errorf("v1.HandleSaveDraft -> h.svc.SaveDraft -> %w", err)
			response.RenderErr(ctx, response.ErrInternalServerError(err))
		}
		return
	}

	ctx.JSON(http.StatusCreated, saved)
}

// HandleGetDraft godoc
// @Summary      Get the saved checkout draft
// @Tags         checkout
// @Produce      json
// @Param        X-Checkout-Session  header  string  true  "checkout session key"
// @Success      200  {object}  domain.Draft
// @Failure      400  {object}  response.Err
// @Failure      404  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /checkout/draft [get]
func (h *CheckoutHandler) HandleGetDraft(ctx *gin.Context) {
	key, respErr := sessionKey(ctx)
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	d, err := h.svc.GetDraft(ctx.Request.Context(), key)
	if err != nil {
		if errors.Is(err, service.ErrDraftNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("draft", "session", key))
			return
		}

		err = fmt.Errorf("v1.HandleGetDraft -> h.svc.GetDraft -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, d)
}

// HandleCancelDraft godoc
// @Summary      Abandon the saved checkout draft
// @Tags         checkout
// @Produce      json
// @Param        X-Checkout-Session  header  string  true  "checkout session key"
// @Success      204
// @Failure      400  {object}  response.Err
// @Failure      404  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /checkout/draft [delete]
func (h *CheckoutHandler) HandleCancelDraft(ctx *gin.Context) {
	key, respErr := sessionKey(ctx)
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	if err := h.svc.CancelDraft(ctx.Request.Context(), key); err != nil {
		if errors.Is(err, service.ErrDraftNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("draft", "session", key))
			return
		}

		err = fmt.Errorf("v1.HandleCancelDraft -> h.svc.CancelDraft -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.Status(http.StatusNoContent)
}

// HandleCreateSession godoc
// @Summary      Create a payment session for the saved draft
// @Tags         checkout
// @Produce      json
// @Param        X-Checkout-Session  header  string  true  "checkout session key"
// @Success      200  {object}  map[string]string
// @Failure      400  {object}  response.Err
// @Failure      404  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /checkout/session [post]
func (h *CheckoutHandler) HandleCreateSession(ctx *gin.Context) {
	key, respErr := sessionKey(ctx)
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	url, err := h.svc.CreateSession(ctx.Request.Context(), key)
	if err != nil {
		if errors.Is(err, service.ErrDraftNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("draft", "session", key))
			return
		}

		err = fmt.Errorf("v1.HandleCreateSession -> h.svc.CreateSession -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"url": url})
}

// HandleCompleteCheckout godoc
// @Summary      Complete the checkout after payment
// @Description  Consumes the saved draft exactly once, registers the
// @Description  participant and clears the slot. Repeats report the
// @Description  draft as gone.
// @Tags         checkout
// @Produce      json
// @Param        X-Checkout-Session  header  string  true  "checkout session key"
// @Success      201  {object}  domain.Participant
// @Failure      400  {object}  response.Err
// @Failure      404  {object}  response.Err
// @Failure      409  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /checkout/complete [post]
func (h *CheckoutHandler) HandleCompleteCheckout(ctx *gin.Context) {
	key, respErr := sessionKey(ctx)
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	participant, err := h.svc.Finalize(ctx.Request.Context(), key)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrDraftNotFound):
			response.RenderErr(ctx, response.ErrNotFound("draft", "session", key))
		case errors.Is(err, service.ErrAlreadyProcessed):
			response.RenderErr(ctx, response.ErrConflict(service.ErrAlreadyProcessed))
		case errors.Is(err, service.ErrRegistrationClosed), errors.Is(err, service.ErrNotEnoughSpots):
			response.RenderErr(ctx, response.ErrBadRequest(err))
		default:
			err = fmt.Errorf("v1.HandleCompleteCheckout -> h.svc.Finalize -> %w", err)
			response.RenderErr(ctx, response.ErrInternalServerError(err))
		}
		return
	}

	ctx.JSON(http.StatusCreated, participant)
}

func draftFromRequest(req request.SaveDraftRequest, activity domain.Activity) domain.Draft {
	attendees := make([]domain.Attendee, len(req.Attendees))
	for i, a := range req.Attendees {
		attendees[i] = domain.Attendee{
			Name:     a.Name,
			IDNumber: a.IDNumber,
			Age:      a.Age,
			Gender:   a.Gender,
			Email:    a.Email,
			TeamName: a.TeamName,
		}
	}

	return domain.Draft{
		ActivityID:     activity.ID,
		Kind:           activity.Kind,
		ActivityName:   activity.Name,
		ActivityDate:   activity.Date,
		ActivityTime:   activity.Time,
		Venue:          activity.Venue,
		Image:          activity.Image,
		Quantity:       req.Quantity,
		PerTicketPrice: activity.RegistrationFee,
		TotalAmount:    activity.RegistrationFee * float64(req.Quantity),
		Billing: domain.BillingInfo{
			FirstName: req.Billing.FirstName,
			LastName:  req.Billing.LastName,
			Email:     req.Billing.Email,
			Phone:     req.Billing.Phone,
		},
		Attendees: attendees,
		TeamName:  req.TeamName,
	}
}
