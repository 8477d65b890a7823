package v1

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/sellandashawn/fignite/internal/api/handler/v1/request"
	"github.com/sellandashawn/fignite/internal/api/handler/v1/response"
	"github.com/sellandashawn/fignite/internal/domain"
	"github.com/sellandashawn/fignite/internal/listing"
	"github.com/sellandashawn/fignite/internal/service"
)

type ActivityService interface {
	List(ctx context.Context, kind domain.Kind, params listing.Params) (listing.Result, error)
	ListByCategory(ctx context.Context, kind domain.Kind, category string, params listing.Params) (listing.Result, error)
	GetByID(ctx context.Context, kind domain.Kind, id uint) (domain.Activity, error)
	Create(ctx context.Context, activity domain.Activity) (domain.Activity, error)
	Update(ctx context.Context, activity domain.Activity) (domain.Activity, error)
	Delete(ctx context.Context, kind domain.Kind, id uint) error
	Categories(ctx context.Context) []domain.Category
}

// ActivityHandler serves one kind of activity. The server mounts it
// twice, once under /sports and once under /events, so the two
// storefront sections never see each other's records.
type ActivityHandler struct {
	kind      domain.Kind
	svc       ActivityService
	uSvc      UserService
	uploadDir string
}

func NewActivityHandler(kind domain.Kind, svc ActivityService, uSvc UserService, uploadDir string) *ActivityHandler {
	return &ActivityHandler{
		kind:      kind,
		svc:       svc,
		uSvc:      uSvc,
		uploadDir: uploadDir,
	}
}

// HandleListActivities godoc
// @Summary      List activities
// @Description  Lists activities with search, category and status filters, sorting and pagination
// @Tags         activities
// @Produce      json
// @Param        q         query     string  false  "substring matched against name, description and venue"
// @Param        category  query     string  false  "category name, or all"
// @Param        status    query     string  false  "status filter, or All Status"
// @Param        sort      query     string  false  "sort order"  Enums(upcoming, newest, mostRegistered)
// @Param        page      query     int     false  "page number"
// @Param        per_page  query     int     false  "page size"
// @Success      200  {object}  response.ActivityList
// @Failure      500  {object}  response.Err
// @Router       /sports [get]
func (h *ActivityHandler) HandleListActivities(ctx *gin.Context) {
	params := listing.ParseParams(ctx.Request.URL.Query())

	result, err := h.svc.List(ctx.Request.Context(), h.kind, params)
	if err != nil {
		err = fmt.Errorf("v1.HandleListActivities -> h.svc.List -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, response.NewActivityList(result, h.svc.Categories(ctx.Request.Context()), time.Now()))
}

// HandleListByCategory godoc
// @Summary      List activities in one category
// @Tags         activities
// @Produce      json
// @Param        categoryName  path   string  true   "category name"
// @Param        page          query  int     false  "page number"
// @Param        per_page      query  int     false  "page size"
// @Success      200  {object}  response.ActivityList
// @Failure      500  {object}  response.Err
// @Router       /sports/category/{categoryName} [get]
func (h *ActivityHandler) HandleListByCategory(ctx *gin.Context) {
	params := listing.ParseParams(ctx.Request.URL.Query())

	result, err := h.svc.ListByCategory(ctx.Request.Context(), h.kind, ctx.Param("categoryName"), params)
	if err != nil {
		err = fmt.Errorf("v1.HandleListByCategory -> h.svc.ListByCategory -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, response.NewActivityList(result, h.svc.Categories(ctx.Request.Context()), time.Now()))
}

// HandleGetActivity godoc
// @Summary      Get one activity
// @Tags         activities
// @Produce      json
// @Param        activityID  path      int  true  "Activity ID"
// @Success      200  {object}  response.Activity
// @Failure      400  {object}  response.Err
// @Failure      404  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /sports/{activityID} [get]
func (h *ActivityHandler) HandleGetActivity(ctx *gin.Context) {
	id, err := strconv.ParseUint(ctx.Param("activityID"), 10, 64)
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(fmt.Errorf("invalid activity ID: %w", err)))
		return
	}

	activity, err := h.svc.GetByID(ctx.Request.Context(), h.kind, uint(id))
	if err != nil {
		if errors.Is(err, service.ErrActivityNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("activity", "ID", id))
			return
		}

		err = fmt.Errorf("v1.HandleGetActivity -> h.svc.GetByID -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, response.NewActivity(activity, h.svc.Categories(ctx.Request.Context()), time.Now()))
}

// bindActivityRequest accepts either a JSON body or a multipart form
// carrying the same JSON under the "payload" field. The multipart form
// may add an optional "image" file.
func bindActivityRequest(ctx *gin.Context, req *request.CreateActivityRequest) error {
	if strings.HasPrefix(ctx.ContentType(), "multipart/form-data") {
		payload := ctx.PostForm("payload")
		if payload == "" {
			return errors.New("missing payload field")
		}

		return json.Unmarshal([]byte(payload), req)
	}

	return ctx.ShouldBindJSON(req)
}

// saveUploadedImage stores the optional multipart "image" file in the
// upload directory and returns its public path. An empty path means no
// file was sent.
func (h *ActivityHandler) saveUploadedImage(ctx *gin.Context) (string, error) {
	file, err := ctx.FormFile("image")
	if errors.Is(err, http.ErrMissingFile) || errors.Is(err, http.ErrNotMultipart) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("ctx.FormFile -> %w", err)
	}

	name := uuid.NewString() + filepath.Ext(file.Filename)
	if err = ctx.SaveUploadedFile(file, filepath.Join(h.uploadDir, name)); err != nil {
		return "", fmt.Errorf("ctx.SaveUploadedFile -> %w", err)
	}

	return "/uploads/" + name, nil
}

// HandleCreateActivity godoc
// @Summary      Create an activity
// @Description  Creates an activity of this section's kind. Admin only.
// @Description  Accepts JSON, or a multipart form with a "payload" JSON
// @Description  field and an optional "image" file.
// @Tags         activities
// @Accept       json
// @Produce      json
// @Param        input  body      request.CreateActivityRequest  true  "Activity details"
// @Success      201    {object}  domain.Activity
// @Failure      400    {object}  response.Err
// @Failure      401    {object}  response.Err
// @Failure      403    {object}  response.Err
// @Failure      500    {object}  response.Err
// @Router       /sports [post]
// @Security     BearerAuth
func (h *ActivityHandler) HandleCreateActivity(ctx *gin.Context) {
	user, respErr := getUserFromContext(ctx, h.uSvc)
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	if !user.IsAdmin() {
		response.RenderErr(ctx, response.ErrPermissionDenied(fmt.Errorf("user %v is not an admin", user.ID)))
		return
	}

	var req request.CreateActivityRequest
	if err := bindActivityRequest(ctx, &req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	activity, err := activityFromRequest(h.kind, req)
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if image, err := h.saveUploadedImage(ctx); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	} else if image != "" {
		activity.Image = image
	}

	created, err := h.svc.Create(ctx.Request.Context(), activity)
	if err != nil {
		if errors.Is(err, service.ErrInvalidManualStatus) {
			response.RenderErr(ctx, response.ErrBadRequest(err))
			return
		}

		err = fmt.Errorf("v1.HandleCreateActivity -> h.svc.Create -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusCreated, created)
}

// HandleUpdateActivity godoc
// @Summary      Update an activity
// @Description  Replaces an activity's details. Admin only.
// @Tags         activities
// @Accept       json
// @Produce      json
// @Param        activityID  path      int                            true  "Activity ID"
// @Param        input       body      request.UpdateActivityRequest  true  "Activity details"
// @Success      200  {object}  domain.Activity
// @Failure      400  {object}  response.Err
// @Failure      401  {object}  response.Err
// @Failure      403  {object}  response.Err
// @Failure      404  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /sports/{activityID} [put]
// @Security     BearerAuth
func (h *ActivityHandler) HandleUpdateActivity(ctx *gin.Context) {
	user, respErr := getUserFromContext(ctx, h.uSvc)
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	if !user.IsAdmin() {
		response.RenderErr(ctx, response.ErrPermissionDenied(fmt.Errorf("user %v is not an admin", user.ID)))
		return
	}

	id, err := strconv.ParseUint(ctx.Param("activityID"), 10, 64)
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(fmt.Errorf("invalid activity ID: %w", err)))
		return
	}

	var req request.UpdateActivityRequest
	if err := bindActivityRequest(ctx, &req.CreateActivityRequest); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	activity, err := activityFromRequest(h.kind, req.CreateActivityRequest)
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}
	activity.ID = uint(id)

	if image, err := h.saveUploadedImage(ctx); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	} else if image != "" {
		activity.Image = image
	}

	updated, err := h.svc.Update(ctx.Request.Context(), activity)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrActivityNotFound):
			response.RenderErr(ctx, response.ErrNotFound("activity", "ID", id))
		case errors.Is(err, service.ErrInvalidManualStatus):
			response.RenderErr(ctx, response.ErrBadRequest(err))
		default:
			err = fmt.Errorf("v1.HandleUpdateActivity -> h.svc.Update -> %w", err)
			response.RenderErr(ctx, response.ErrInternalServerError(err))
		}
		return
	}

	ctx.JSON(http.StatusOK, updated)
}

// HandleDeleteActivity godoc
// @Summary      Delete an activity
// @Tags         activities
// @Produce      json
// @Param        activityID  path  int  true  "Activity ID"
// @Success      204
// @Failure      400  {object}  response.Err
// @Failure      401  {object}  response.Err
// @Failure      403  {object}  response.Err
// @Failure      404  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /sports/{activityID} [delete]
// @Security     BearerAuth
func (h *ActivityHandler) HandleDeleteActivity(ctx *gin.Context) {
	user, respErr := getUserFromContext(ctx, h.uSvc)
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	if !user.IsAdmin() {
		response.RenderErr(ctx, response.ErrPermissionDenied(fmt.Errorf("user %v is not an admin", user.ID)))
		return
	}

	id, err := strconv.ParseUint(ctx.Param("activityID"), 10, 64)
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(fmt.Errorf("invalid activity ID: %w", err)))
		return
	}

	if err := h.svc.Delete(ctx.Request.Context(), h.kind, uint(id)); err != nil {
		if errors.Is(err, service.ErrActivityNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("activity", "ID", id))
			return
		}

		err = fmt.Errorf("v1.HandleDeleteActivity -> h.svc.Delete -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.Status(http.StatusNoContent)
}

func activityFromRequest(kind domain.Kind, req request.CreateActivityRequest) (domain.Activity, error) {
	var date time.Time
	if req.Date != "" {
		parsed, err := time.Parse("2006-01-02", req.Date)
		if err != nil {
			return domain.Activity{}, fmt.Errorf("invalid date format: %w", err)
		}
		date = parsed
	}

	schedule := make([]domain.ScheduleItem, len(req.Schedule))
	for i, item := range req.Schedule {
		schedule[i] = domain.ScheduleItem{
			Time:     item.Time,
			Activity: item.Activity,
		}
	}

	return domain.Activity{
		Kind:            kind,
		Name:            req.Name,
		Venue:           req.Venue,
		Date:            date,
		Time:            req.Time,
		Category:        domain.CategoryRaw(req.Category),
		Description:     req.Description,
		RegistrationFee: req.RegistrationFee,
		TeamSize:        req.TeamSize,
		Schedule:        schedule,
		Image:           req.Image,
		ManualStatus:    domain.Status(req.ManualStatus),
		Participation: domain.Participation{
			MaximumParticipants: req.MaxParticipants,
		},
	}, nil
}
