package serverutils

import (
	"errors"
	"strings"

	"ai-chat-workspace-be/internal/pkg/logger"
	"ai-chat-workspace-be/pkg/gate"

	"github.com/gofiber/fiber/v2"
)

type GateOptions struct {
	SessionCookieName string
	LocaleCookieName  string
}

// GateMiddleware runs the request gate on every request. Page navigations
// get 302 redirects; API and WebSocket calls that need a session get a 401
// envelope instead of an entry redirect.
func GateMiddleware(g *gate.Gate, opts GateOptions, log logger.ILogger) fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		path := ctx.Path()

		decision, err := g.Decide(ctx.UserContext(), gate.Request{
			Path:           path,
			AcceptLanguage: ctx.Get(fiber.HeaderAcceptLanguage),
			LocaleCookie:   ctx.Cookies(opts.LocaleCookieName),
			SessionToken:   ExtractToken(ctx, opts.SessionCookieName),
		})
		if err != nil {
			message := ""
			if errors.Is(err, gate.ErrHomeWorkspaceNotFound) {
				message = gate.EntryMessageWorkspaceNotFound
			}
			log.Error("Gate", "Root redirect failed", map[string]interface{}{
				"path":  path,
				"error": err.Error(),
			})
			return ctx.Redirect(g.EntryLocation(decision.Locale, message), fiber.StatusFound)
		}

		ctx.Locals(localsLocale, decision.Locale)
		if decision.Session != nil {
			SetSession(ctx, decision.Session)
		}

		switch decision.Action {
		case gate.RewriteLocale, gate.RedirectHome:
			return ctx.Redirect(withQuery(decision.Location, ctx), fiber.StatusFound)
		case gate.RedirectEntry:
			if isMachinePath(path) {
				return Unauthorized("Missing session")
			}
			return ctx.Redirect(decision.Location, fiber.StatusFound)
		default:
			return ctx.Next()
		}
	}
}

func isMachinePath(path string) bool {
	return strings.HasPrefix(path, "/api/") || path == "/api" || strings.HasPrefix(path, "/ws/")
}

// withQuery keeps the original query string on locale and home redirects.
func withQuery(location string, ctx *fiber.Ctx) string {
	query := string(ctx.Request().URI().QueryString())
	if query == "" || strings.Contains(location, "?") {
		return location
	}
	return location + "?" + query
}
