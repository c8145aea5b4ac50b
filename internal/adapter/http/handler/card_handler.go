package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"go.opentelemetry.io/otel/attribute"

	"cardwall/internal/adapter/http/helper"
	"cardwall/internal/adapter/http/middleware"
	"cardwall/internal/core/domain"
	"cardwall/internal/core/model/request"
	"cardwall/internal/core/port"
	"cardwall/internal/shared"
	"cardwall/pkg/tracing"
)

type CardHandler struct {
	auth    port.AuthService
	svc     port.CardService
	metrics *shared.AppMetrics
	logger  zerolog.Logger
}

func NewCardHandler(auth port.AuthService, svc port.CardService, metrics *shared.AppMetrics, logger zerolog.Logger) *CardHandler {
	return &CardHandler{
		auth:    auth,
		svc:     svc,
		metrics: metrics,
		logger:  logger.With().Str("component", "card_handler").Logger(),
	}
}

// authenticate resolves the bearer token to the owning user. On failure
// it writes the error response and reports ok=false.
func (h *CardHandler) authenticate(c *gin.Context) (*domain.User, bool) {
	user, err := h.auth.Authenticate(c.Request.Context(), middleware.TokenFrom(c))

	if err != nil {
		h.logError(err, "authentication failed")
		helper.SendError(c, err)
		return nil, false
	}

	return &user, true
}

// List handles GET /cards.
func (h *CardHandler) List(c *gin.Context) {
	_, span := tracing.CreateChildSpan(c.Request.Context(), "handler.card.List", []attribute.KeyValue{
		attribute.String("http.method", c.Request.Method),
		attribute.String("http.route", c.FullPath()),
	})

	defer span.End()

	user, ok := h.authenticate(c)

	if !ok {
		return
	}

	span.SetAttributes(attribute.String("user.id", user.ID))

	h.metrics.RecordCardOperation("list", "ok")

	c.JSON(http.StatusOK, h.svc.List(user))
}

// Get handles GET /cards/:id.
func (h *CardHandler) Get(c *gin.Context) {
	user, ok := h.authenticate(c)

	if !ok {
		return
	}

	card, err := h.svc.Get(user, c.Param("id"))

	if err != nil {
		helper.SendError(c, err)
		h.metrics.RecordCardOperation("get", "error")
		return
	}

	h.metrics.RecordCardOperation("get", "ok")

	c.JSON(http.StatusOK, card)
}

// Create handles POST /cards.
func (h *CardHandler) Create(c *gin.Context) {
	ctx, span := tracing.CreateChildSpan(c.Request.Context(), "handler.card.Create", []attribute.KeyValue{
		attribute.String("http.method", c.Request.Method),
		attribute.String("http.route", c.FullPath()),
	})

	defer span.End()

	user, ok := h.authenticate(c)

	if !ok {
		return
	}

	draft, ok := h.bindDraft(c)

	if !ok {
		return
	}

	card, err := h.svc.Create(ctx, user, draft)

	if err != nil {
		tracing.AddSpanError(span, err)
		h.logError(err, "card create failed")
		helper.SendError(c, err)
		h.metrics.RecordCardOperation("create", "error")
		return
	}

	h.metrics.RecordCardOperation("create", "ok")

	c.JSON(http.StatusCreated, card)
}

// Update handles PUT /cards/:id.
func (h *CardHandler) Update(c *gin.Context) {
	user, ok := h.authenticate(c)

	if !ok {
		return
	}

	draft, ok := h.bindDraft(c)

	if !ok {
		return
	}

	card, err := h.svc.Update(c.Request.Context(), user, c.Param("id"), draft)

	if err != nil {
		h.logError(err, "card update failed")
		helper.SendError(c, err)
		h.metrics.RecordCardOperation("update", "error")
		return
	}

	h.metrics.RecordCardOperation("update", "ok")

	c.JSON(http.StatusOK, card)
}

// Delete handles DELETE /cards/:id.
func (h *CardHandler) Delete(c *gin.Context) {
	user, ok := h.authenticate(c)

	if !ok {
		return
	}

	if err := h.svc.Delete(c.Request.Context(), user, c.Param("id")); err != nil {
		h.logError(err, "card delete failed")
		helper.SendError(c, err)
		h.metrics.RecordCardOperation("delete", "error")
		return
	}

	h.metrics.RecordCardOperation("delete", "ok")

	c.Status(http.StatusNoContent)
}

func (h *CardHandler) bindDraft(c *gin.Context) (domain.Card, bool) {
	var params request.CardRequest

	if err := c.ShouldBindJSON(&params); err != nil {
		helper.SendBadRequest(c, "invalid request body")
		return domain.Card{}, false
	}

	return domain.Card{
		Title:       params.Title,
		Description: params.Description,
		Status:      domain.CardStatus(params.Status),
	}, true
}

func (h *CardHandler) logError(err error, msg string) {
	if _, known := domain.KindOf(err); known {
		h.logger.Debug().Err(err).Msg(msg)
		return
	}
	h.logger.Error().Err(err).Msg(msg)
}
