package controller

import (
	"ai-chat-workspace-be/internal/dto"
	"ai-chat-workspace-be/internal/pkg/serverutils"
	"ai-chat-workspace-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

// Sign-in and sign-up belong to the identity provider; this controller only
// reports and ends the current session.
type IAuthController interface {
	RegisterRoutes(r fiber.Router)
	Session(ctx *fiber.Ctx) error
	Logout(ctx *fiber.Ctx) error
}

type authController struct {
	service service.ISessionService
	cookie  string
}

func NewAuthController(service service.ISessionService, sessionCookie string) IAuthController {
	return &authController{service: service, cookie: sessionCookie}
}

func (c *authController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/auth/v1")
	h.Use(serverutils.RequireSession(c.service, c.cookie))
	h.Get("/session", c.Session)
	h.Post("/logout", c.Logout)
}

func (c *authController) Session(ctx *fiber.Ctx) error {
	session, _ := serverutils.SessionFrom(ctx)
	return ctx.JSON(serverutils.SuccessResponse("Session", dto.SessionResponse{
		UserId:    session.UserId,
		SessionId: session.Id,
		ExpiresAt: session.ExpiresAt,
		Locale:    serverutils.LocaleFrom(ctx),
	}))
}

func (c *authController) Logout(ctx *fiber.Ctx) error {
	session, _ := serverutils.SessionFrom(ctx)
	if err := c.service.Logout(ctx.UserContext(), session); err != nil {
		return err
	}

	ctx.ClearCookie(c.cookie)
	return ctx.JSON(serverutils.SuccessResponse[any]("Logged out", nil))
}
