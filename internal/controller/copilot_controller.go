package controller

import (
	"idea-copilot-be/internal/dto"
	"idea-copilot-be/internal/pkg/serverutils"
	"idea-copilot-be/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type ICopilotController interface {
	RegisterRoutes(r fiber.Router)
	Query(ctx *fiber.Ctx) error
	SeedSteward(ctx *fiber.Ctx) error
}

type copilotController struct {
	copilotService service.ICopilotService
	stewardService service.IStewardService
}

func NewCopilotController(copilotService service.ICopilotService, stewardService service.IStewardService) ICopilotController {
	return &copilotController{
		copilotService: copilotService,
		stewardService: stewardService,
	}
}

func (c *copilotController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/copilot/v1")
	h.Use(serverutils.JwtMiddleware)
	h.Post("query", c.Query)
	h.Post("seed-steward", c.SeedSteward)
}

func (c *copilotController) Query(ctx *fiber.Ctx) error {
	userIdStr := ctx.Locals("user_id").(string)
	userId, _ := uuid.Parse(userIdStr)

	var req dto.CopilotQueryRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.copilotService.Query(ctx.Context(), userId, &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success copilot query", res))
}

func (c *copilotController) SeedSteward(ctx *fiber.Ctx) error {
	userIdStr := ctx.Locals("user_id").(string)
	userId, _ := uuid.Parse(userIdStr)

	var req dto.SeedStewardRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.stewardService.Suggest(ctx.Context(), userId, &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success seed steward", res))
}
