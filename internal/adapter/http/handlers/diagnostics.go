package handlers

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"tasktracker/internal/adapter/http/middleware"
	"tasktracker/internal/core/domain"
	"tasktracker/pkg/apierrors"
	"tasktracker/pkg/apiresponse"
)

// DiagnosticsHandler raises each failure kind on demand so the error
// translation can be checked against a running instance.
type DiagnosticsHandler struct{}

func NewDiagnosticsHandler() *DiagnosticsHandler {
	return &DiagnosticsHandler{}
}

func (h *DiagnosticsHandler) RaiseError(c *gin.Context) {
	var err error
	switch strings.ToLower(c.Param("kind")) {
	case "notfound":
		err = domain.NotFound(999)
	case "validation":
		err = domain.Validation(domain.FieldError{Field: "title", Rule: domain.RuleRequired})
	case "completed":
		err = domain.AlreadyCompleted(123)
	case "argument":
		err = domain.MalformedArgument("diagnostics argument", nil)
	case "unauthorized":
		err = domain.Unauthorized("diagnostics credentials")
	case "operation":
		err = domain.InvalidOperation("diagnostics operation")
	case "timeout":
		err = domain.Timeout("diagnostics deadline", nil)
	case "generic":
		err = errors.New("diagnostics generic failure")
	default:
		message := apierrors.GetTransMsg(apierrors.MsgDiagnosticsKinds, middleware.GetLang(c), nil)
		c.JSON(http.StatusOK, apiresponse.Success(http.StatusOK, message, nil))
		return
	}

	_ = c.Error(err)
}

func (h *DiagnosticsHandler) Success(c *gin.Context) {
	message := apierrors.GetTransMsg(apierrors.MsgDiagnosticsOk, middleware.GetLang(c), nil)
	c.JSON(http.StatusOK, apiresponse.Success(http.StatusOK, message, gin.H{
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	}))
}
