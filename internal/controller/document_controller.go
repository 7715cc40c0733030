package controller

import (
	"ai-study-assistant-be/internal/pkg/serverutils"
	"ai-study-assistant-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IDocumentController interface {
	RegisterRoutes(r fiber.Router)
	Upload(ctx *fiber.Ctx) error
	Session(ctx *fiber.Ctx) error
	ClearSession(ctx *fiber.Ctx) error
}

type documentController struct {
	service service.IDocumentService
}

func NewDocumentController(service service.IDocumentService) IDocumentController {
	return &documentController{service: service}
}

func (c *documentController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/document/v1")
	h.Post("/upload", c.Upload)
	h.Get("/session", c.Session)
	h.Delete("/session", c.ClearSession)
}

func (c *documentController) Upload(ctx *fiber.Ctx) error {
	file, err := ctx.FormFile("file")
	if err != nil {
		return serverutils.NewApiError(fiber.StatusBadRequest, "No file uploaded.")
	}
	sessionId := ctx.FormValue("session_id")

	res, err := c.service.Upload(ctx.Context(), file, sessionId)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success upload document", res))
}

func (c *documentController) Session(ctx *fiber.Ctx) error {
	res, err := c.service.GetSession(ctx.Context(), ctx.Query("session_id"))
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success get session", res))
}

func (c *documentController) ClearSession(ctx *fiber.Ctx) error {
	c.service.ClearSession(ctx.Query("session_id"))

	return ctx.JSON(serverutils.SuccessResponse[any]("Success clear session", nil))
}
