package handlers

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/party-model/backend/internal/http/dto"
	"github.com/party-model/backend/internal/middleware"
	"github.com/party-model/backend/internal/repositories"
	"github.com/party-model/backend/internal/services"
)

// Creator is a create request that builds the record to insert.
type Creator[T any] interface {
	Model() *T
}

// Patcher is an update request that lists the columns to rewrite.
type Patcher interface {
	Patch() repositories.Patch
}

// ResourceHandler exposes the five CRUD operations of one resource.
// C and U are the create and update request bodies.
type ResourceHandler[T any, C Creator[T], U Patcher] struct {
	svc services.Resource[T]
	log *zap.Logger
}

func NewResourceHandler[T any, C Creator[T], U Patcher](svc services.Resource[T], log *zap.Logger) *ResourceHandler[T, C, U] {
	return &ResourceHandler[T, C, U]{svc: svc, log: log}
}

func (h *ResourceHandler[T, C, U]) Register(r fiber.Router) {
	r.Get("/", h.List)
	r.Post("/", h.Create)
	r.Get("/:id<int>", h.Get)
	r.Put("/:id<int>", h.Update)
	r.Delete("/:id<int>", h.Delete)
}

func (h *ResourceHandler[T, C, U]) Create(c *fiber.Ctx) error {
	var req C
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "invalid request")
	}
	if err := dto.Validate(&req); err != nil {
		return respondError(c, h.log, err)
	}

	rec, err := h.svc.Create(c.UserContext(), middleware.GetPrincipal(c), req.Model())
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.SuccessResponse{OK: true, Data: rec})
}

func (h *ResourceHandler[T, C, U]) Get(c *fiber.Ctx) error {
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

func (h *ResourceHandler[T, C, U]) List(c *fiber.Ctx) error {
	list, err := h.svc.List(c.UserContext(), middleware.GetPrincipal(c))
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(dto.SuccessResponse{OK: true, Data: list})
}

func (h *ResourceHandler[T, C, U]) Update(c *fiber.Ctx) error {
	id, ok := pathID(c)
	if !ok {
		return badRequest(c, "invalid id")
	}

	var req U
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "invalid request")
	}
	if err := dto.Validate(&req); err != nil {
		return respondError(c, h.log, err)
	}

	rec, err := h.svc.Update(c.UserContext(), middleware.GetPrincipal(c), id, req.Patch())
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(dto.SuccessResponse{OK: true, Data: rec})
}

func (h *ResourceHandler[T, C, U]) Delete(c *fiber.Ctx) error {
	id, ok := pathID(c)
	if !ok {
		return badRequest(c, "invalid id")
	}

	deleted, err := h.svc.Delete(c.UserContext(), middleware.GetPrincipal(c), id)
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(dto.SuccessResponse{OK: true, Data: dto.DeleteResponse{ID: deleted, Message: "deleted"}})
}
