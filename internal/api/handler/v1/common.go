package v1

import (
	"context"
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/sellandashawn/fignite/internal/api/handler/v1/response"
	"github.com/sellandashawn/fignite/internal/domain"
	"github.com/sellandashawn/fignite/internal/service"
)

type UserService interface {
	GetUser(ctx context.Context, id uint) (domain.User, error)
}

func getUserFromContext(ctx *gin.Context, uSvc UserService) (domain.User, *response.Err) {
	raw, exists := ctx.Get("userID")
	if !exists {
		return domain.User{}, response.ErrUnauthorized("user not authenticated")
	}

	userID, ok := raw.(uint)
	if !ok {
		return domain.User{}, response.ErrUnauthorized("user not authenticated")
	}

	user, err := uSvc.GetUser(ctx.Request.Context(), userID)
	if err != nil {
		if errors.Is(err, service.ErrUserNotFound) {
			return domain.User{}, response.ErrNotFound("user", "ID", userID)
		}

		return domain.User{}, response.ErrInternalServerError(err)
	}

	return user, nil
}
