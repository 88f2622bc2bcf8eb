package controller

import (
	"idea-copilot-be/internal/dto"
	"idea-copilot-be/internal/pkg/serverutils"
	"idea-copilot-be/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type IExperimentController interface {
	RegisterRoutes(r fiber.Router)
	Create(ctx *fiber.Ctx) error
	UpdateStatus(ctx *fiber.Ctx) error
	List(ctx *fiber.Ctx) error
}

type experimentController struct {
	experimentService service.IExperimentService
}

func NewExperimentController(experimentService service.IExperimentService) IExperimentController {
	return &experimentController{
		experimentService: experimentService,
	}
}

func (c *experimentController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/experiment/v1")
	h.Use(serverutils.JwtMiddleware)
	h.Post("", c.Create)
	h.Get("", c.List)
	h.Put(":id/status", c.UpdateStatus)
}

func (c *experimentController) Create(ctx *fiber.Ctx) error {
	userId := currentUserId(ctx)

	var req dto.CreateExperimentRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.experimentService.Create(ctx.Context(), userId, &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success create experiment", res))
}

func (c *experimentController) UpdateStatus(ctx *fiber.Ctx) error {
	userId := currentUserId(ctx)

	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid experiment id")
	}

	workspaceId, err := requiredWorkspaceId(ctx)
	if err != nil {
		return err
	}

	var req dto.UpdateExperimentStatusRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	req.Id = id

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.experimentService.UpdateStatus(ctx.Context(), userId, workspaceId, &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success update experiment status", res))
}

func (c *experimentController) List(ctx *fiber.Ctx) error {
	userId := currentUserId(ctx)

	workspaceId, err := requiredWorkspaceId(ctx)
	if err != nil {
		return err
	}

	res, err := c.experimentService.List(ctx.Context(), userId, workspaceId, optionalSeedId(ctx))
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success list experiments", res))
}
