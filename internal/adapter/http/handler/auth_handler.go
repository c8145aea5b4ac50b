package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"

	"cardwall/internal/adapter/http/helper"
	"cardwall/internal/adapter/http/validation"
	"cardwall/internal/core/domain"
	"cardwall/internal/core/model/request"
	"cardwall/internal/core/port"
	"cardwall/internal/shared"
)

type AuthHandler struct {
	svc     port.AuthService
	metrics *shared.AppMetrics
	logger  zerolog.Logger
}

func NewAuthHandler(svc port.AuthService, metrics *shared.AppMetrics, logger zerolog.Logger) *AuthHandler {
	return &AuthHandler{
		svc:     svc,
		metrics: metrics,
		logger:  logger.With().Str("component", "auth_handler").Logger(),
	}
}

// Register handles POST /auth/local/register.
func (h *AuthHandler) Register(c *gin.Context) {
	ctx := c.Request.Context()

	var params request.CredentialsRequest

	if err := c.ShouldBindJSON(&params); err != nil {
		helper.SendBadRequest(c, "invalid request body")
		return
	}

	if err := validation.Validator.Struct(params); err != nil {
		helper.SendValidationError(c, credentialErrorFor(err), err)
		h.metrics.RecordAuthOperation("register", "rejected")
		return
	}

	session, err := h.svc.Register(ctx, params.Username, params.Password)

	if err != nil {
		h.logError(err, "register failed")
		helper.SendError(c, err)
		h.metrics.RecordAuthOperation("register", "error")
		return
	}

	h.metrics.RecordAuthOperation("register", "ok")

	c.JSON(http.StatusCreated, session)
}

// Login handles POST /auth/local. The body is not shape-checked here:
// any credential mismatch, including an empty body, is bad credentials.
func (h *AuthHandler) Login(c *gin.Context) {
	ctx := c.Request.Context()

	var params request.CredentialsRequest

	if err := c.ShouldBindJSON(&params); err != nil {
		helper.SendBadRequest(c, "invalid request body")
		return
	}

	session, err := h.svc.Login(ctx, params.Username, params.Password)

	if err != nil {
		h.logError(err, "login failed")
		helper.SendError(c, err)
		h.metrics.RecordAuthOperation("login", "error")
		return
	}

	h.metrics.RecordAuthOperation("login", "ok")

	c.JSON(http.StatusOK, session)
}

func (h *AuthHandler) logError(err error, msg string) {
	if _, known := domain.KindOf(err); known {
		h.logger.Debug().Err(err).Msg(msg)
		return
	}
	h.logger.Error().Err(err).Msg(msg)
}

// credentialErrorFor picks the domain kind for the first failing field,
// in struct order, so a bad username wins over a bad password.
func credentialErrorFor(err error) error {
	var validationErrors validator.ValidationErrors

	if errors.As(err, &validationErrors) {
		for _, fieldError := range validationErrors {
			if fieldError.Field() == "Password" {
				return domain.ErrInvalidPassword
			}
			return domain.ErrInvalidUsername
		}
	}

	return domain.ErrInvalidUsername
}
