package handler

import (
	"ai-chat-workspace-be/internal/pkg/logger"
	"ai-chat-workspace-be/internal/pkg/serverutils"
	internalWS "ai-chat-workspace-be/internal/websocket"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/websocket/v2"
)

// WorkspaceEventHandler upgrades authenticated clients to a WebSocket that
// receives hydration and session events for their user.
type WorkspaceEventHandler struct {
	sessions serverutils.Authenticator
	cookie   string
	hub      *internalWS.Hub
	logger   logger.ILogger
}

func NewWorkspaceEventHandler(sessions serverutils.Authenticator, sessionCookie string, hub *internalWS.Hub, log logger.ILogger) *WorkspaceEventHandler {
	return &WorkspaceEventHandler{
		sessions: sessions,
		cookie:   sessionCookie,
		hub:      hub,
		logger:   log,
	}
}

func (h *WorkspaceEventHandler) RegisterRoutes(router fiber.Router) {
	router.Get("/ws/workspace", serverutils.RequireSession(h.sessions, h.cookie), h.ServeWs)
}

// ServeWs expects RequireSession to have run. Browsers pass the token as
// ?token= since they cannot set headers on the upgrade request.
func (h *WorkspaceEventHandler) ServeWs(c *fiber.Ctx) error {
	if !websocket.IsWebSocketUpgrade(c) {
		return fiber.ErrUpgradeRequired
	}

	session, ok := serverutils.SessionFrom(c)
	if !ok {
		return serverutils.Unauthorized("Missing session")
	}
	userID := session.UserId

	return websocket.New(func(conn *websocket.Conn) {
		h.logger.Info("WorkspaceEventHandler", "Starting WebSocket session", map[string]interface{}{"user_id": userID})
		internalWS.ServeWs(h.hub, conn, userID)
		h.logger.Info("WorkspaceEventHandler", "WebSocket session ended", map[string]interface{}{"user_id": userID})
	})(c)
}
