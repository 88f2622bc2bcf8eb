package controller

import (
	"idea-copilot-be/internal/dto"
	"idea-copilot-be/internal/pkg/serverutils"
	"idea-copilot-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IPrincipleController interface {
	RegisterRoutes(r fiber.Router)
	Create(ctx *fiber.Ctx) error
	List(ctx *fiber.Ctx) error
}

type principleController struct {
	principleService service.IPrincipleService
}

func NewPrincipleController(principleService service.IPrincipleService) IPrincipleController {
	return &principleController{
		principleService: principleService,
	}
}

func (c *principleController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/principle/v1")
	h.Use(serverutils.JwtMiddleware)
	h.Post("", c.Create)
	h.Get("", c.List)
}

func (c *principleController) Create(ctx *fiber.Ctx) error {
	userId := currentUserId(ctx)

	var req dto.CreatePrincipleRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.principleService.Create(ctx.Context(), userId, &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success create principle", res))
}

func (c *principleController) List(ctx *fiber.Ctx) error {
	userId := currentUserId(ctx)

	workspaceId, err := requiredWorkspaceId(ctx)
	if err != nil {
		return err
	}

	res, err := c.principleService.List(ctx.Context(), userId, workspaceId, optionalSeedId(ctx))
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success list principles", res))
}
