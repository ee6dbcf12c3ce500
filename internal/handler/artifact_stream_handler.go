package handler

import (
	"agent-chat-be/internal/pkg/logger"
	"agent-chat-be/internal/pkg/serverutils"
	internalWS "agent-chat-be/internal/websocket"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/websocket/v2"
)

// ArtifactStreamHandler upgrades browsers to the artifact event stream.
type ArtifactStreamHandler struct {
	hub       *internalWS.Hub
	jwtSecret string
	logger    logger.ILogger
}

func NewArtifactStreamHandler(hub *internalWS.Hub, jwtSecret string, log logger.ILogger) *ArtifactStreamHandler {
	return &ArtifactStreamHandler{
		hub:       hub,
		jwtSecret: jwtSecret,
		logger:    log,
	}
}

// ServeWs resolves the owner of the connection before upgrading.
// Browsers cannot set headers on a websocket handshake, so the signed-in token
// comes in the `token` query param and anonymous sessions in `session`.
func (h *ArtifactStreamHandler) ServeWs(c *fiber.Ctx) error {
	tokenStr := c.Query("token")
	if tokenStr == "" {
		authHeader := c.Get("Authorization")
		if len(authHeader) > 7 && authHeader[:7] == "Bearer " {
			tokenStr = authHeader[7:]
		}
	}

	sessionToken := c.Query("session")
	if sessionToken == "" {
		sessionToken = c.Get(serverutils.SessionHeader)
	}

	session, err := serverutils.ResolveSession(tokenStr, sessionToken, h.jwtSecret)
	if err != nil {
		h.logger.Warn("ArtifactStream", "Rejected WS handshake", map[string]interface{}{"error": err.Error()})
		return c.Status(fiber.StatusUnauthorized).JSON(serverutils.ErrorResponse(fiber.StatusUnauthorized, "Missing or invalid session"))
	}

	if !websocket.IsWebSocketUpgrade(c) {
		return fiber.ErrUpgradeRequired
	}

	key := session.Key()
	return websocket.New(func(conn *websocket.Conn) {
		h.logger.Info("ArtifactStream", "Starting WebSocket session", map[string]interface{}{"session": key})
		internalWS.ServeWs(h.hub, conn, key)
		h.logger.Info("ArtifactStream", "WebSocket session ended", map[string]interface{}{"session": key})
	})(c)
}

func (h *ArtifactStreamHandler) RegisterRoutes(router fiber.Router) {
	router.Get("/ws/artifacts", h.ServeWs)
}
