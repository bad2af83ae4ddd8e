package handler

import (
	"casino-admin-be/internal/pkg/logger"
	"casino-admin-be/internal/pkg/rbac"
	"casino-admin-be/internal/pkg/serverutils"
	internalWS "casino-admin-be/internal/websocket"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/websocket/v2"
	"github.com/google/uuid"
)

const adminIDKey = "ws_admin_id"

// ActivityHandler streams audit entries to the back-office over websocket.
type ActivityHandler struct {
	hub      *internalWS.Hub
	enforcer *rbac.Enforcer
	logger   logger.ILogger
}

func NewActivityHandler(hub *internalWS.Hub, enforcer *rbac.Enforcer, log logger.ILogger) *ActivityHandler {
	return &ActivityHandler{
		hub:      hub,
		enforcer: enforcer,
		logger:   log,
	}
}

// RegisterRoutes expects r to be behind the JWT middleware, which also reads
// the token from the query string for browsers.
func (h *ActivityHandler) RegisterRoutes(r fiber.Router) {
	r.Get("/ws/activity", h.enforcer.RequireAction("logs", rbac.ActionRead), h.Upgrade, websocket.New(h.ServeWs))
}

// Upgrade rejects plain HTTP requests and hands the admin id to the socket.
func (h *ActivityHandler) Upgrade(c *fiber.Ctx) error {
	if !websocket.IsWebSocketUpgrade(c) {
		return fiber.ErrUpgradeRequired
	}
	c.Locals(adminIDKey, serverutils.CurrentAdmin(c).AdminUUID())
	return c.Next()
}

func (h *ActivityHandler) ServeWs(c *websocket.Conn) {
	adminID, _ := c.Locals(adminIDKey).(uuid.UUID)
	h.logger.Info("ActivityHandler", "Starting WebSocket session", map[string]interface{}{"admin_id": adminID})
	internalWS.ServeWs(h.hub, c, adminID)
	h.logger.Info("ActivityHandler", "WebSocket session ended", map[string]interface{}{"admin_id": adminID})
}
