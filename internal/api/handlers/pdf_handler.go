package handlers

import (
	"errors"

	"Masterchef-Web/domain"
	"Masterchef-Web/internal/api/presenters"
	"Masterchef-Web/internal/middleware"
	"Masterchef-Web/pkg/backend"
	"Masterchef-Web/pkg/pdf"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

type (
	PDFHandler interface {
		RecipePDF(c *fiber.Ctx) error
		UserPDF(c *fiber.Ctx) error
		UsersPDF(c *fiber.Ctx) error
	}

	pdfHandler struct {
		pdfService pdf.PDFService
		presenter  presenters.Presenter
		log        *zap.Logger
	}
)

func NewPDFHandler(pdfService pdf.PDFService, presenter presenters.Presenter, log *zap.Logger) PDFHandler {
	return &pdfHandler{
		pdfService: pdfService,
		presenter:  presenter,
		log:        log,
	}
}

func (h *pdfHandler) RecipePDF(c *fiber.Ctx) error {
	recipeID, err := paramID(c, "id")
	if err != nil {
		return c.Redirect("/not-found", fiber.StatusFound)
	}
	content, err := h.pdfService.Recipe(c.Context(), recipeID)
	return h.servePDF(c, content, err, "recipe.pdf")
}

func (h *pdfHandler) UserPDF(c *fiber.Ctx) error {
	userID, err := paramID(c, "id")
	if err != nil {
		return c.Redirect("/not-found", fiber.StatusFound)
	}
	sess := middleware.SessionFromCtx(c)
	content, err := h.pdfService.User(c.Context(), sess.Token, userID)
	return h.servePDF(c, content, err, "user.pdf")
}

func (h *pdfHandler) UsersPDF(c *fiber.Ctx) error {
	sess := middleware.SessionFromCtx(c)
	content, err := h.pdfService.Users(c.Context(), sess.Token)
	return h.servePDF(c, content, err, "users.pdf")
}

// servePDF streams the document inline. A missing subject redirects to the
// not-found page; any other failure, including a non-PDF answer, lands on
// the error view so no half-broken download is offered.
func (h *pdfHandler) servePDF(c *fiber.Ctx, content []byte, err error, filename string) error {
	if err != nil {
		if backend.IsStatus(err, fiber.StatusNotFound) {
			return c.Redirect("/not-found", fiber.StatusFound)
		}
		if errors.Is(err, domain.ErrNotPDF) {
			h.log.Warn("backend answered with a non-pdf document", zap.Error(err))
		}
		return h.presenter.RenderStatus(c, fiber.StatusBadGateway, "error", fiber.Map{
			"Message": domain.MessageFailedDownloadPDF,
			"Detail":  presenters.TranslateError(err),
		})
	}

	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `inline; filename="`+filename+`"`)
	return c.Send(content)
}
