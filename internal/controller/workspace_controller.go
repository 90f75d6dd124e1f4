package controller

import (
	"errors"

	"ai-chat-workspace-be/internal/constant"
	"ai-chat-workspace-be/internal/dto"
	"ai-chat-workspace-be/internal/pkg/serverutils"
	"ai-chat-workspace-be/internal/service"
	"ai-chat-workspace-be/pkg/chatsettings"
	"ai-chat-workspace-be/pkg/store"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type IWorkspaceController interface {
	RegisterRoutes(r fiber.Router)
	List(ctx *fiber.Ctx) error
	Mount(ctx *fiber.Ctx) error
	GetState(ctx *fiber.Ctx) error
	UpdateView(ctx *fiber.Ctx) error
}

type workspaceController struct {
	service  service.IWorkspaceStateService
	sessions serverutils.Authenticator
	cookie   string
}

func NewWorkspaceController(service service.IWorkspaceStateService, sessions serverutils.Authenticator, sessionCookie string) IWorkspaceController {
	return &workspaceController{
		service:  service,
		sessions: sessions,
		cookie:   sessionCookie,
	}
}

func (c *workspaceController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/workspace/v1")
	h.Use(serverutils.RequireSession(c.sessions, c.cookie))
	h.Get("/", c.List)
	h.Get("/state", c.GetState)
	h.Patch("/state/view", c.UpdateView)
	h.Post("/:workspaceId/mount", c.Mount)
}

func (c *workspaceController) List(ctx *fiber.Ctx) error {
	session, _ := serverutils.SessionFrom(ctx)

	res, err := c.service.ListWorkspaces(ctx.UserContext(), session)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Workspaces", res))
}

// Mount answers 202 as soon as the state is cleared; the hydration result is
// announced over the WebSocket and visible through GET /state.
func (c *workspaceController) Mount(ctx *fiber.Ctx) error {
	var req dto.MountWorkspaceRequest
	if err := ctx.ParamsParser(&req); err != nil {
		return serverutils.BadRequest("Invalid workspace ID")
	}
	req.Model = ctx.Query(constant.ModelOverrideQueryParam)
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	session, _ := serverutils.SessionFrom(ctx)
	workspaceId := uuid.MustParse(req.WorkspaceId)

	res, err := c.service.Mount(ctx.UserContext(), session, workspaceId, chatsettings.Overrides{Model: req.Model})
	if err != nil {
		return err
	}
	return ctx.Status(fiber.StatusAccepted).JSON(serverutils.SuccessResponse("Workspace mounting", res))
}

func (c *workspaceController) GetState(ctx *fiber.Ctx) error {
	session, _ := serverutils.SessionFrom(ctx)

	res, err := c.service.GetState(ctx.UserContext(), session)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Workspace state", res))
}

func (c *workspaceController) UpdateView(ctx *fiber.Ctx) error {
	var req dto.UpdateChatViewRequest
	if err := ctx.BodyParser(&req); err != nil {
		return serverutils.BadRequest("Invalid request body")
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	session, _ := serverutils.SessionFrom(ctx)

	res, err := c.service.UpdateView(ctx.UserContext(), session, &req)
	switch {
	case errors.Is(err, store.ErrHydrationInFlight):
		return serverutils.Conflict("Workspace is still loading")
	case errors.Is(err, service.ErrNoWorkspaceMounted):
		return serverutils.Conflict("No workspace mounted")
	case errors.Is(err, service.ErrChatNotInWorkspace):
		return serverutils.BadRequest("Chat does not belong to the mounted workspace")
	case err != nil:
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Chat view updated", res))
}
