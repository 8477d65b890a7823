package v1

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/sellandashawn/fignite/internal/api/handler/v1/request"
	"github.com/sellandashawn/fignite/internal/api/handler/v1/response"
	"github.com/sellandashawn/fignite/internal/domain"
	"github.com/sellandashawn/fignite/internal/service"
)

type CategoryService interface {
	Create(ctx context.Context, category domain.Category) (domain.Category, error)
	GetByID(ctx context.Context, id string) (domain.Category, error)
	List(ctx context.Context, categoryType domain.CategoryType) ([]domain.Category, error)
	Delete(ctx context.Context, id string) error
}

type CategoryHandler struct {
	svc  CategoryService
	uSvc UserService
}

func NewCategoryHandler(svc CategoryService, uSvc UserService) *CategoryHandler {
	return &CategoryHandler{
		svc:  svc,
		uSvc: uSvc,
	}
}

// HandleListCategories godoc
// @Summary      List categories
// @Description  Lists every category, optionally narrowed by type
// @Tags         categories
// @Produce      json
// @Param        type  query     string  false  "category type"  Enums(event, sports)
// @Success      200   {array}   domain.Category
// @Failure      400   {object}  response.Err
// @Failure      500   {object}  response.Err
// @Router       /categories [get]
func (h *CategoryHandler) HandleListCategories(ctx *gin.Context) {
	categoryType := domain.CategoryType(ctx.Query("type"))
	if categoryType != "" && !categoryType.IsValid() {
		response.RenderErr(ctx, response.ErrBadRequest(fmt.Errorf("invalid category type %q", categoryType)))
		return
	}

	categories, err := h.svc.List(ctx.Request.Context(), categoryType)
	if err != nil {
		err = fmt.Errorf("v1.HandleListCategories -> h.svc.List -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, categories)
}

// HandleGetCategory godoc
// @Summary      Get one category
// @Tags         categories
// @Produce      json
// @Param        categoryID  path      string  true  "Category ID"
// @Success      200  {object}  domain.Category
// @Failure      404  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /categories/{categoryID} [get]
func (h *CategoryHandler) HandleGetCategory(ctx *gin.Context) {
	id := ctx.Param("categoryID")

	category, err := h.svc.GetByID(ctx.Request.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrCategoryNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("category", "ID", id))
			return
		}

		err = fmt.Errorf("v1.HandleGetCategory -> h.svc.GetByID -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, category)
}

// HandleCreateCategory godoc
// @Summary      Create a category
// @Description  Creates a new category. Admin only.
// @Tags         categories
// @Accept       json
// @Produce      json
// @Param        input  body      request.CreateCategoryRequest  true  "Category details"
// @Success      201    {object}  domain.Category
// @Failure      400    {object}  response.Err
// @Failure      401    {object}  response.Err
// @Failure      403    {object}  response.Err
// @Failure      409    {object}  response.Err
// @Failure      500    {object}  response.Err
// @Router       /categories [post]
// @Security     BearerAuth
func (h *CategoryHandler) HandleCreateCategory(ctx *gin.Context) {
	user, respErr := getUserFromContext(ctx, h.uSvc)
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	if !user.IsAdmin() {
		response.RenderErr(ctx, response.ErrPermissionDenied(fmt.Errorf("user %v is not an admin", user.ID)))
		return
	}

	var req request.CreateCategoryRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	created, err := h.svc.Create(ctx.Request.Context(), domain.Category{
		Name:        req.Name,
		Description: req.Description,
		Type:        domain.CategoryType(req.Type),
	})
	if err != nil {
		if errors.Is(err, service.ErrCategoryNameExists) {
			response.RenderErr(ctx, response.ErrConflict(service.ErrCategoryNameExists))
			return
		}

		err = fmt.Errorf("v1.HandleCreateCategory -> h.svc.Create -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusCreated, created)
}

// HandleDeleteCategory godoc
// @Summary      Delete a category
// @Description  Deletes a category. Admin only. Activities pointing at a
// @Description  deleted category fall back to "N/A" in listings.
// @Tags         categories
// @Produce      json
// @Param        categoryID  path  string  true  "Category ID"
// @Success      204
// @Failure      401  {object}  response.Err
// @Failure      403  {object}  response.Err
// @Failure      404  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /categories/{categoryID} [delete]
// @Security     BearerAuth
func (h *CategoryHandler) HandleDeleteCategory(ctx *gin.Context) {
	user, respErr := getUserFromContext(ctx, h.uSvc)
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	if !user.IsAdmin() {
		response.RenderErr(ctx, response.ErrPermissionDenied(fmt.Errorf("user %v is not an admin", user.ID)))
		return
	}

	id := ctx.Param("categoryID")

	if err := h.svc.Delete(ctx.Request.Context(), id); err != nil {
		if errors.Is(err, service.ErrCategoryNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("category", "ID", id))
			return
		}

		err = fmt.Errorf("v1.HandleDeleteCategory -> h.svc.Delete -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.Status(http.StatusNoContent)
}
