package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/party-model/backend/internal/http/dto"
	"github.com/party-model/backend/internal/rbac"
)

type MetaHandler struct{}

func NewMetaHandler() *MetaHandler {
	return &MetaHandler{}
}

func (h *MetaHandler) GetRoles(c *fiber.Ctx) error {
	return c.JSON(dto.SuccessResponse{OK: true, Data: dto.RolesResponse{Roles: rbac.AllRoles}})
}
