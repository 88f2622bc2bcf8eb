package controller

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

func currentUserId(ctx *fiber.Ctx) uuid.UUID {
	userIdStr, _ := ctx.Locals("user_id").(string)
	userId, _ := uuid.Parse(userIdStr)
	return userId
}

func requiredWorkspaceId(ctx *fiber.Ctx) (uuid.UUID, error) {
	workspaceId, err := uuid.Parse(ctx.Query("workspace_id"))
	if err != nil {
		return uuid.Nil, fiber.NewError(fiber.StatusBadRequest, "Missing workspace_id")
	}
	return workspaceId, nil
}

func optionalSeedId(ctx *fiber.Ctx) *uuid.UUID {
	raw := ctx.Query("seed_id")
	if raw == "" {
		return nil
	}
	if id, err := uuid.Parse(raw); err == nil {
		return &id
	}
	return nil
}
