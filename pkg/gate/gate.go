// Package gate decides, for every incoming navigation, whether it continues,
// is redirected for locale, is sent to the entry page, or is sent to the
// user's home workspace.
package gate

import (
	"context"
	"errors"
	"fmt"
	"net/url"

	"ai-chat-workspace-be/internal/entity"
	"ai-chat-workspace-be/internal/pkg/logger"

	"github.com/google/uuid"
)

var ErrHomeWorkspaceNotFound = errors.New("home workspace not found")

// EntryMessageWorkspaceNotFound is appended to the entry redirect when the
// home workspace lookup fails.
const EntryMessageWorkspaceNotFound = "workspace_not_found"

type Action int

const (
	Continue Action = iota
	RewriteLocale
	RedirectEntry
	RedirectHome
)

func (a Action) String() string {
	switch a {
	case Continue:
		return "continue"
	case RewriteLocale:
		return "rewrite_locale"
	case RedirectEntry:
		return "redirect_entry"
	case RedirectHome:
		return "redirect_home"
	default:
		return "unknown"
	}
}

type Request struct {
	Path           string
	AcceptLanguage string
	LocaleCookie   string
	SessionToken   string
}

type Decision struct {
	Action   Action
	Location string
	Locale   string
	// Session is set once a session lookup succeeded.
	Session *entity.Session
}

// SessionLookup resolves a token to a session. (nil, nil) means no session.
type SessionLookup interface {
	Lookup(ctx context.Context, token string) (*entity.Session, error)
}

// HomeWorkspaceLookup returns (nil, nil) when the user has no home workspace.
type HomeWorkspaceLookup interface {
	FindHomeWorkspace(ctx context.Context, userId uuid.UUID) (*entity.Workspace, error)
}

type Gate struct {
	locales    *LocaleRouter
	public     *PublicPaths
	sessions   SessionLookup
	workspaces HomeWorkspaceLookup
	entryPath  string
	logger     logger.ILogger
}

func New(locales *LocaleRouter, public *PublicPaths, sessions SessionLookup, workspaces HomeWorkspaceLookup, entryPath string, log logger.ILogger) *Gate {
	if entryPath == "" {
		entryPath = "/login"
	}
	return &Gate{
		locales:    locales,
		public:     public,
		sessions:   sessions,
		workspaces: workspaces,
		entryPath:  entryPath,
		logger:     log,
	}
}

// Decide runs the gate steps in order: locale, public allowlist, session,
// root redirect. Only the root step returns an error.
func (g *Gate) Decide(ctx context.Context, req Request) (Decision, error) {
	path := req.Path
	if path == "" || path[0] != '/' {
		path = "/" + path
	}

	page := isPagePath(path)
	decision := Decision{Action: Continue, Locale: g.locales.Default()}
	explicit, stripped := "", path

	if page {
		explicit, stripped = g.locales.Split(path)
		if explicit != "" {
			decision.Locale = explicit
		} else {
			detected := g.locales.Detect(req.LocaleCookie, req.AcceptLanguage)
			decision.Locale = detected
			if detected != g.locales.Default() {
				return Decision{
					Action:   RewriteLocale,
					Location: g.locales.Prefix(detected, path),
					Locale:   detected,
				}, nil
			}
		}
	}

	if g.public.Match(path) {
		return decision, nil
	}

	if req.SessionToken == "" {
		return g.entry(decision.Locale, ""), nil
	}

	session, err := g.sessions.Lookup(ctx, req.SessionToken)
	if err != nil {
		g.logger.Warn("Gate", "Session lookup failed, redirecting to entry", map[string]interface{}{
			"path":  path,
			"error": err.Error(),
		})
		return g.entry(decision.Locale, ""), nil
	}
	if session == nil {
		return g.entry(decision.Locale, ""), nil
	}
	decision.Session = session

	if page && stripped == "/" {
		home, err := g.workspaces.FindHomeWorkspace(ctx, session.UserId)
		if err != nil {
			return decision, fmt.Errorf("user %s: %w: %w", session.UserId, ErrHomeWorkspaceNotFound, err)
		}
		if home == nil {
			return decision, fmt.Errorf("user %s: %w", session.UserId, ErrHomeWorkspaceNotFound)
		}

		decision.Action = RedirectHome
		decision.Location = g.locales.Prefix(explicit, fmt.Sprintf("/%s/chat", home.Id))
		return decision, nil
	}

	return decision, nil
}

// EntryLocation is the entry page under locale, with an optional message
// query parameter.
func (g *Gate) EntryLocation(locale, message string) string {
	location := g.locales.Prefix(locale, g.entryPath)
	if message != "" {
		location += "?message=" + url.QueryEscape(message)
	}
	return location
}

func (g *Gate) entry(locale, message string) Decision {
	return Decision{
		Action:   RedirectEntry,
		Location: g.EntryLocation(locale, message),
		Locale:   locale,
	}
}
