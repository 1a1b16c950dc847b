package middleware

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"tasktracker/internal/core/domain"
	"tasktracker/pkg/apierrors"
)

// ErrorHandler renders the last error attached with c.Error. It is the only
// place where failures become responses.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 || c.Writer.Written() {
			return
		}

		err := c.Errors.Last().Err
		resp := apierrors.CreateError(err, GetLang(c))
		switch {
		case errors.Is(err, context.Canceled):
			// The client went away; nobody reads the response.
			zap.L().Debug("request canceled",
				zap.String("request_id", GetRequestID(c)),
				zap.String("route", c.FullPath()),
				zap.Error(err),
			)
		case resp.StatusCode >= http.StatusInternalServerError:
			zap.L().Error("request failed",
				zap.String("request_id", GetRequestID(c)),
				zap.String("route", c.FullPath()),
				zap.Error(err),
			)
		default:
			zap.L().Debug("request rejected",
				zap.String("request_id", GetRequestID(c)),
				zap.String("kind", string(domain.KindOf(err))),
				zap.Error(err),
			)
		}

		c.JSON(resp.StatusCode, resp)
	}
}

// Recovery turns panics into the generic internal failure.
func Recovery() gin.HandlerFunc {
	return gin.CustomRecovery(func(c *gin.Context, recovered any) {
		err := fmt.Errorf("panic: %v", recovered)
		zap.L().Error("panic recovered",
			zap.String("request_id", GetRequestID(c)),
			zap.String("route", c.FullPath()),
			zap.Error(err),
			zap.Stack("stack"),
		)
		resp := apierrors.CreateError(err, GetLang(c))
		c.AbortWithStatusJSON(resp.StatusCode, resp)
	})
}
