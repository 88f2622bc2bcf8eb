package handler

import (
	"context"
	"errors"

	"idea-copilot-be/internal/pkg/logger"
	"idea-copilot-be/internal/service"
	internalWS "idea-copilot-be/internal/websocket"
	"idea-copilot-be/pkg/events"
	pktNats "idea-copilot-be/pkg/nats"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/websocket/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// WorkspaceFeedHandler upgrades members to a websocket and streams
// workspace events to them. Events arrive over NATS and fan out
// through the hub.
type WorkspaceFeedHandler struct {
	workspaceService service.IWorkspaceService
	subscriber       *pktNats.Subscriber
	hub              *internalWS.Hub
	jwtSecret        string
	logger           logger.ILogger
}

func NewWorkspaceFeedHandler(workspaceService service.IWorkspaceService, sub *pktNats.Subscriber, hub *internalWS.Hub, jwtSecret string, log logger.ILogger) *WorkspaceFeedHandler {
	return &WorkspaceFeedHandler{
		workspaceService: workspaceService,
		subscriber:       sub,
		hub:              hub,
		jwtSecret:        jwtSecret,
		logger:           log,
	}
}

// ServeWs handles websocket requests from the peer.
func (h *WorkspaceFeedHandler) ServeWs(c *fiber.Ctx) error {
	// Browsers cannot set headers on websocket handshakes, so the
	// query param takes priority over the Authorization header.
	tokenStr := c.Query("token")
	if tokenStr == "" {
		authHeader := c.Get("Authorization")
		if len(authHeader) > 7 && authHeader[:7] == "Bearer " {
			tokenStr = authHeader[7:]
		}
	}

	if tokenStr == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Missing token (Query 'token' or Header 'Authorization')"})
	}

	token, err := jwt.Parse(tokenStr, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fiber.ErrUnauthorized
		}
		return []byte(h.jwtSecret), nil
	})
	if err != nil || !token.Valid {
		h.logger.Warn("WorkspaceFeedHandler", "Invalid token in WS handshake", map[string]interface{}{"error": err})
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Invalid token"})
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Invalid token claims"})
	}

	userIdStr, ok := claims["user_id"].(string)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Token missing user_id"})
	}

	userId, err := uuid.Parse(userIdStr)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Invalid user ID format in token"})
	}

	workspaceId, err := uuid.Parse(c.Query("workspace_id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "workspace_id query param is required"})
	}

	if err := h.workspaceService.VerifyMembership(c.UserContext(), workspaceId, userId); err != nil {
		if errors.Is(err, service.ErrNotMember) {
			return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": "Not a member of this workspace"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Membership check failed"})
	}

	if websocket.IsWebSocketUpgrade(c) {
		return websocket.New(func(conn *websocket.Conn) {
			h.logger.Info("WorkspaceFeedHandler", "Starting WebSocket session", map[string]interface{}{
				"workspace_id": workspaceId,
				"user_id":      userId,
			})
			internalWS.ServeWs(h.hub, conn, workspaceId, userId)
			h.logger.Info("WorkspaceFeedHandler", "WebSocket session ended", map[string]interface{}{
				"workspace_id": workspaceId,
				"user_id":      userId,
			})
		})(c)
	}
	return fiber.ErrUpgradeRequired
}

// StartEventBridge subscribes to the workspace event stream and pushes
// every event into the hub.
func (h *WorkspaceFeedHandler) StartEventBridge() error {
	if h.subscriber == nil {
		h.logger.Warn("WorkspaceFeedHandler", "NATS subscriber not configured, live feed disabled", nil)
		return nil
	}
	return h.subscriber.Subscribe("workspace.>", "workspace-feed-bridge", func(ctx context.Context, event events.Event) error {
		h.hub.Broadcast(event.WorkspaceID(), event.EventType(), event.Payload())
		return nil
	})
}

// RegisterRoutes registers the websocket feed route.
func (h *WorkspaceFeedHandler) RegisterRoutes(router fiber.Router) {
	router.Get("/ws", h.ServeWs)
}
