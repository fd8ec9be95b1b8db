package handlers

import (
	"Masterchef-Web/internal/api/presenters"

	"github.com/gofiber/fiber/v2"
)

type (
	PageHandler interface {
		NotFound(c *fiber.Ctx) error
		AdminHome(c *fiber.Ctx) error
	}

	pageHandler struct {
		presenter presenters.Presenter
	}
)

func NewPageHandler(presenter presenters.Presenter) PageHandler {
	return &pageHandler{presenter: presenter}
}

// NotFound serves the dedicated page for unknown paths and dangling links.
func (h *pageHandler) NotFound(c *fiber.Ctx) error {
	return h.presenter.RenderStatus(c, fiber.StatusNotFound, "not_found", nil)
}

func (h *pageHandler) AdminHome(c *fiber.Ctx) error {
	return h.presenter.Render(c, "admin/home", nil)
}
