package handlers

import (
	"context"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/party-model/backend/internal/http/dto"
	"github.com/party-model/backend/internal/middleware"
	"github.com/party-model/backend/internal/models"
	"github.com/party-model/backend/internal/rbac"
)

// CommunicationEventProjections are the per-caller views of communication events.
type CommunicationEventProjections interface {
	Inbox(ctx context.Context, p rbac.Principal) ([]models.CommunicationEvent, error)
	Sent(ctx context.Context, p rbac.Principal) ([]models.CommunicationEvent, error)
	Favorites(ctx context.Context, p rbac.Principal) ([]models.CommunicationEvent, error)
}

type CommunicationEventHandler struct {
	svc CommunicationEventProjections
	log *zap.Logger
}

func NewCommunicationEventHandler(svc CommunicationEventProjections, log *zap.Logger) *CommunicationEventHandler {
	return &CommunicationEventHandler{svc: svc, log: log}
}

// Register must run before the CRUD routes of the same group.
func (h *CommunicationEventHandler) Register(r fiber.Router) {
	r.Get("/inbox", h.projection(h.svc.Inbox))
	r.Get("/sent", h.projection(h.svc.Sent))
	r.Get("/favorites", h.projection(h.svc.Favorites))
}

func (h *CommunicationEventHandler) projection(fetch func(context.Context, rbac.Principal) ([]models.CommunicationEvent, error)) fiber.Handler {
	return func(c *fiber.Ctx) error {
		list, err := fetch(c.UserContext(), middleware.GetPrincipal(c))
		if err != nil {
			return respondError(c, h.log, err)
		}
		return c.JSON(dto.SuccessResponse{OK: true, Data: list})
	}
}
