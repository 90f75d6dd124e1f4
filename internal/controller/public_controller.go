package controller

import (
	"ai-chat-workspace-be/internal/dto"
	"ai-chat-workspace-be/internal/pkg/logger"
	"ai-chat-workspace-be/internal/pkg/serverutils"
	"ai-chat-workspace-be/pkg/turnstile"

	"github.com/gofiber/fiber/v2"
)

// ConnectionCounter reports live WebSocket connections for the health check.
type ConnectionCounter interface {
	TotalConnections() int
}

type IPublicController interface {
	RegisterRoutes(r fiber.Router)
	Health(ctx *fiber.Ctx) error
	VerifyTurnstile(ctx *fiber.Ctx) error
}

type publicController struct {
	verifier    turnstile.IVerifier
	connections ConnectionCounter
	logger      logger.ILogger
}

func NewPublicController(verifier turnstile.IVerifier, connections ConnectionCounter, log logger.ILogger) IPublicController {
	return &publicController{
		verifier:    verifier,
		connections: connections,
		logger:      log,
	}
}

func (c *publicController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/public")
	h.Get("/health", c.Health)
	h.Post("/turnstile/verify", c.VerifyTurnstile)
}

func (c *publicController) Health(ctx *fiber.Ctx) error {
	res := dto.HealthResponse{Status: "ok"}
	if c.connections != nil {
		res.Connections = c.connections.TotalConnections()
	}
	return ctx.JSON(serverutils.SuccessResponse("Healthy", res))
}

func (c *publicController) VerifyTurnstile(ctx *fiber.Ctx) error {
	var req dto.TurnstileVerifyRequest
	if err := ctx.BodyParser(&req); err != nil {
		return serverutils.BadRequest("Invalid request body")
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	ok, err := c.verifier.Verify(ctx.UserContext(), req.Token, ctx.IP())
	if err != nil {
		c.logger.Warn("PublicController", "Turnstile verification failed", map[string]interface{}{"error": err.Error()})
		return ctx.Status(fiber.StatusBadGateway).JSON(dto.TurnstileVerifyResponse{Success: false})
	}
	return ctx.JSON(dto.TurnstileVerifyResponse{Success: ok})
}
