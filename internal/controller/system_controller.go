package controller

import (
	"ai-study-assistant-be/internal/pkg/serverutils"
	"ai-study-assistant-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type ISystemController interface {
	RegisterRoutes(r fiber.Router)
	Health(ctx *fiber.Ctx) error
	ApiStatus(ctx *fiber.Ctx) error
	CheckQuota(ctx *fiber.Ctx) error
	GetLogs(ctx *fiber.Ctx) error
}

type systemController struct {
	service service.ISystemService
}

func NewSystemController(service service.ISystemService) ISystemController {
	return &systemController{service: service}
}

func (c *systemController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/system/v1")
	h.Get("/health", c.Health)
	h.Get("/api-status", c.ApiStatus)
	h.Post("/check-quota", c.CheckQuota)
	h.Get("/logs", c.GetLogs)
}

func (c *systemController) Health(ctx *fiber.Ctx) error {
	return ctx.JSON(serverutils.SuccessResponse("Success get health", c.service.Health(ctx.Context())))
}

func (c *systemController) ApiStatus(ctx *fiber.Ctx) error {
	return ctx.JSON(serverutils.SuccessResponse("Success get api status", c.service.ApiStatus(ctx.Context())))
}

func (c *systemController) CheckQuota(ctx *fiber.Ctx) error {
	return ctx.JSON(serverutils.SuccessResponse("Success check quota", c.service.CheckQuota(ctx.Context())))
}

func (c *systemController) GetLogs(ctx *fiber.Ctx) error {
	level := ctx.Query("level")
	limit := ctx.QueryInt("limit", 100)
	offset := ctx.QueryInt("offset", 0)

	res, err := c.service.GetLogs(level, limit, offset)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success get logs", res))
}
