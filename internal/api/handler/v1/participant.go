package v1

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/sellandashawn/fignite/internal/api/handler/v1/response"
	"github.com/sellandashawn/fignite/internal/domain"
	"github.com/sellandashawn/fignite/internal/service"
)

type ParticipantService interface {
	GetByOrderID(ctx context.Context, orderID string) (domain.Participant, error)
	ListByActivity(ctx context.Context, activityID uint) ([]domain.Participant, error)
	ListByEmail(ctx context.Context, email string) ([]domain.Participant, error)
}

type ParticipantHandler struct {
	svc  ParticipantService
	uSvc UserService
}

func NewParticipantHandler(svc ParticipantService, uSvc UserService) *ParticipantHandler {
	return &ParticipantHandler{
		svc:  svc,
		uSvc: uSvc,
	}
}

// HandleGetOrder godoc
// @Summary      Get a registration by order id
// @Tags         orders
// @Produce      json
// @Param        orderID  path      string  true  "Order ID"
// @Success      200  {object}  domain.Participant
// @Failure      404  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /orders/{orderID} [get]
func (h *ParticipantHandler) HandleGetOrder(ctx *gin.Context) {
	orderID := ctx.Param("orderID")

	participant, err := h.svc.GetByOrderID(ctx.Request.Context(), orderID)
	if err != nil {
		if errors.Is(err, service.ErrParticipantNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("order", "ID", orderID))
			return
		}

		err = fmt.Errorf("v1.HandleGetOrder -> h.svc.GetByOrderID -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, participant)
}

// HandleListParticipants godoc
// @Summary      List registrations for an activity
// @Description  Admin only.
// @Tags         orders
// @Produce      json
// @Param        activityID  path      int  true  "Activity ID"
// @Success      200  {array}   domain.Participant
// @Failure      400  {object}  response.Err
// @Failure      401  {object}  response.Err
// @Failure      403  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /activities/{activityID}/participants [get]
// @Security     BearerAuth
func (h *ParticipantHandler) HandleListParticipants(ctx *gin.Context) {
	user, respErr := getUserFromContext(ctx, h.uSvc)
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	if !user.IsAdmin() {
		response.RenderErr(ctx, response.ErrPermissionDenied(fmt.Errorf("user %v is not an admin", user.ID)))
		return
	}

	activityID, err := strconv.ParseUint(ctx.Param("activityID"), 10, 64)
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(fmt.Errorf("invalid activity ID: %w", err)))
		return
	}

	participants, err := h.svc.ListByActivity(ctx.Request.Context(), uint(activityID))
	if err != nil {
		err = fmt.Errorf("v1.HandleListParticipants -> h.svc.ListByActivity -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, participants)
}

// HandleListMyOrders godoc
// @Summary      List registrations for the billing email
// @Tags         orders
// @Produce      json
// @Param        email  query     string  true  "billing email"
// @Success      200  {array}   domain.Participant
// @Failure      400  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /orders [get]
func (h *ParticipantHandler) HandleListMyOrders(ctx *gin.Context) {
	email := ctx.Query("email")
	if email == "" {
		response.RenderErr(ctx, response.ErrBadRequest(errors.New("email query parameter is required")))
		return
	}

	participants, err := h.svc.ListByEmail(ctx.Request.Context(), email)
	if err != nil {
		err = fmt.Errorf("v1.HandleListMyOrders -> h.svc.ListByEmail -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, participants)
}
