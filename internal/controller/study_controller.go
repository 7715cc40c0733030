package controller

import (
	"ai-study-assistant-be/internal/dto"
	"ai-study-assistant-be/internal/pkg/serverutils"
	"ai-study-assistant-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IStudyController interface {
	RegisterRoutes(r fiber.Router)
	Summary(ctx *fiber.Ctx) error
	Flashcards(ctx *fiber.Ctx) error
	Quiz(ctx *fiber.Ctx) error
	Ask(ctx *fiber.Ctx) error
	SuggestedQuestions(ctx *fiber.Ctx) error
}

type studyController struct {
	service service.IStudyService
}

func NewStudyController(service service.IStudyService) IStudyController {
	return &studyController{service: service}
}

func (c *studyController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/study/v1")
	h.Post("/summary", c.Summary)
	h.Post("/flashcards", c.Flashcards)
	h.Post("/quiz", c.Quiz)
	h.Post("/ask", c.Ask)
	h.Get("/suggested-questions", c.SuggestedQuestions)
}

func (c *studyController) Summary(ctx *fiber.Ctx) error {
	var req dto.SummaryRequest
	if len(ctx.Body()) > 0 {
		if err := ctx.BodyParser(&req); err != nil {
			return serverutils.NewApiError(fiber.StatusBadRequest, "Invalid request body.")
		}
	}

	res, err := c.service.Summary(ctx.Context(), &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success generate summary", res))
}

func (c *studyController) Flashcards(ctx *fiber.Ctx) error {
	var req dto.FlashcardsRequest
	if len(ctx.Body()) > 0 {
		if err := ctx.BodyParser(&req); err != nil {
			return serverutils.NewApiError(fiber.StatusBadRequest, "Invalid request body.")
		}
	}

	res, err := c.service.Flashcards(ctx.Context(), &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success generate flashcards", res))
}

func (c *studyController) Quiz(ctx *fiber.Ctx) error {
	var req dto.QuizRequest
	if len(ctx.Body()) > 0 {
		if err := ctx.BodyParser(&req); err != nil {
			return serverutils.NewApiError(fiber.StatusBadRequest, "Invalid request body.")
		}
	}

	res, err := c.service.Quiz(ctx.Context(), &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success generate quiz", res))
}

func (c *studyController) Ask(ctx *fiber.Ctx) error {
	var req dto.AskRequest
	if err := ctx.BodyParser(&req); err != nil {
		return serverutils.NewApiError(fiber.StatusBadRequest, "Invalid request body.")
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.service.Ask(ctx.Context(), &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success answer question", res))
}

func (c *studyController) SuggestedQuestions(ctx *fiber.Ctx) error {
	res, err := c.service.SuggestedQuestions(ctx.Context(), ctx.Query("session_id"))
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success suggest questions", res))
}
