package handlers

import (
	"context"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/party-model/backend/internal/http/dto"
	"github.com/party-model/backend/internal/middleware"
	"github.com/party-model/backend/internal/rbac"
)

type HistoryService[H any] interface {
	Get(ctx context.Context, p rbac.Principal, id int64) (*H, error)
	List(ctx context.Context, p rbac.Principal) ([]H, error)
	ListByEntity(ctx context.Context, p rbac.Principal, entityID int64) ([]H, error)
}

// HistoryHandler serves a history table. It registers no write routes.
type HistoryHandler[H any] struct {
	svc HistoryService[H]
	log *zap.Logger
}

func NewHistoryHandler[H any](svc HistoryService[H], log *zap.Logger) *HistoryHandler[H] {
	return &HistoryHandler[H]{svc: svc, log: log}
}

func (h *HistoryHandler[H]) Register(r fiber.Router) {
	r.Get("/", h.List)
	r.Get("/:id<int>", h.Get)
}

// List returns the whole table, or one entity's trail when entity_id is given.
func (h *HistoryHandler[H]) List(c *fiber.Ctx) error {
	p := middleware.GetPrincipal(c)

	if c.Query("entity_id") != "" {
		entityID := c.QueryInt("entity_id", 0)
		if entityID <= 0 {
			return badRequest(c, "invalid entity_id")
		}
		list, err := h.svc.ListByEntity(c.UserContext(), p, int64(entityID))
		if err != nil {
			return respondError(c, h.log, err)
		}
		return c.JSON(dto.SuccessResponse{OK: true, Data: list})
	}

	list, err := h.svc.List(c.UserContext(), p)
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(dto.SuccessResponse{OK: true, Data: list})
}

func (h *HistoryHandler[H]) Get(c *fiber.Ctx) error {
	id, ok := pathID(c)
	if !ok {
		return badRequest(c, "invalid id")
	}

	rec, err := h.svc.Get(c.UserContext(), middleware.GetPrincipal(c), id)
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(dto.SuccessResponse{OK: true, Data: rec})
}
