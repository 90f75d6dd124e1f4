package serverutils

import (
	"context"
	"strings"

	"ai-chat-workspace-be/internal/entity"

	"github.com/gofiber/fiber/v2"
)

const (
	localsSession = "session"
	localsLocale  = "locale"
)

// Authenticator resolves a token to a session or fails.
type Authenticator interface {
	Authenticate(ctx context.Context, token string) (*entity.Session, error)
}

// ExtractToken reads the session token from the session cookie, a Bearer
// Authorization header or the "token" query parameter, in that order.
func ExtractToken(ctx *fiber.Ctx, cookieName string) string {
	if token := ctx.Cookies(cookieName); token != "" {
		return token
	}
	if authHeader := ctx.Get(fiber.HeaderAuthorization); strings.HasPrefix(authHeader, "Bearer ") {
		return strings.TrimSpace(authHeader[7:])
	}
	return ctx.Query("token")
}

func SetSession(ctx *fiber.Ctx, session *entity.Session) {
	ctx.Locals(localsSession, session)
	ctx.Locals("user_id", session.UserId.String())
}

func SessionFrom(ctx *fiber.Ctx) (*entity.Session, bool) {
	session, ok := ctx.Locals(localsSession).(*entity.Session)
	return session, ok && session != nil
}

func LocaleFrom(ctx *fiber.Ctx) string {
	locale, _ := ctx.Locals(localsLocale).(string)
	return locale
}

// RequireSession rejects requests without a valid session with 401. A
// session already placed by the gate is reused.
func RequireSession(auth Authenticator, cookieName string) fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		if _, ok := SessionFrom(ctx); ok {
			return ctx.Next()
		}

		token := ExtractToken(ctx, cookieName)
		if token == "" {
			return Unauthorized("Missing session")
		}

		session, err := auth.Authenticate(ctx.UserContext(), token)
		if err != nil {
			return NewAppError(fiber.StatusUnauthorized, "Invalid session", err)
		}

		SetSession(ctx, session)
		return ctx.Next()
	}
}
