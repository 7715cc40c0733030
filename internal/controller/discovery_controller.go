package controller

import (
	"ai-study-assistant-be/internal/dto"
	"ai-study-assistant-be/internal/pkg/serverutils"
	"ai-study-assistant-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IDiscoveryController interface {
	RegisterRoutes(r fiber.Router)
	Papers(ctx *fiber.Ctx) error
	Videos(ctx *fiber.Ctx) error
	Resources(ctx *fiber.Ctx) error
}

type discoveryController struct {
	service service.IDiscoveryService
}

func NewDiscoveryController(service service.IDiscoveryService) IDiscoveryController {
	return &discoveryController{service: service}
}

func (c *discoveryController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/discovery/v1")
	h.Post("/papers", c.Papers)
	h.Post("/videos", c.Videos)
	h.Post("/resources", c.Resources)
}

func (c *discoveryController) parseRequest(ctx *fiber.Ctx) (*dto.DiscoverRequest, error) {
	var req dto.DiscoverRequest
	if len(ctx.Body()) > 0 {
		if err := ctx.BodyParser(&req); err != nil {
			return nil, serverutils.NewApiError(fiber.StatusBadRequest, "Invalid request body.")
		}
	}
	return &req, nil
}

func (c *discoveryController) Papers(ctx *fiber.Ctx) error {
	req, err := c.parseRequest(ctx)
	if err != nil {
		return err
	}

	res, err := c.service.Papers(ctx.Context(), req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success discover papers", res))
}

func (c *discoveryController) Videos(ctx *fiber.Ctx) error {
	req, err := c.parseRequest(ctx)
	if err != nil {
		return err
	}

	res, err := c.service.Videos(ctx.Context(), req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success discover videos", res))
}

func (c *discoveryController) Resources(ctx *fiber.Ctx) error {
	req, err := c.parseRequest(ctx)
	if err != nil {
		return err
	}

	res, err := c.service.Resources(ctx.Context(), req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success discover resources", res))
}
