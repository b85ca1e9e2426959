package controller

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"idea-shaper-be/internal/dto"
	"idea-shaper-be/internal/pkg/serverutils"
	"idea-shaper-be/internal/service"
)

// serviceErrorStatus keeps 404 reserved for unknown sessions; anything
// else from the service layer is a real failure.
func serviceErrorStatus(err error) int {
	switch {
	case errors.Is(err, service.ErrConversationNotFound):
		return fiber.StatusNotFound
	case errors.Is(err, service.ErrUnknownPersona):
		return fiber.StatusBadRequest
	default:
		return fiber.StatusInternalServerError
	}
}

type IChatController interface {
	RegisterRoutes(r fiber.Router)
	Start(ctx *fiber.Ctx) error
	SendMessage(ctx *fiber.Ctx) error
	PersonaMessage(ctx *fiber.Ctx) error
	MultiPerspective(ctx *fiber.Ctx) error
	GenerateProposal(ctx *fiber.Ctx) error
	GetConversation(ctx *fiber.Ctx) error
	ListConversations(ctx *fiber.Ctx) error
	DeleteConversation(ctx *fiber.Ctx) error
	ListPersonas(ctx *fiber.Ctx) error
	ListProviders(ctx *fiber.Ctx) error
}

type chatController struct {
	service service.IChatService
}

func NewChatController(service service.IChatService) IChatController {
	return &chatController{service: service}
}

func (c *chatController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/chat", serverutils.OptionalJwtMiddleware)

	// Static paths first so they don't collide with :sessionKey
	h.Get("/personas", c.ListPersonas)
	h.Get("/providers", c.ListProviders)

	h.Post("/start", c.Start)
	h.Get("/", c.ListConversations)
	h.Get("/:sessionKey", c.GetConversation)
	h.Delete("/:sessionKey", c.DeleteConversation)
	h.Post("/:sessionKey/message", c.SendMessage)
	h.Post("/:sessionKey/persona", c.PersonaMessage)
	h.Post("/:sessionKey/perspectives", c.MultiPerspective)
	h.Post("/:sessionKey/proposal", c.GenerateProposal)
}

func (c *chatController) Start(ctx *fiber.Ctx) error {
	var req dto.StartConversationRequest
	if err := ctx.BodyParser(&req); err != nil && err != fiber.ErrUnprocessableEntity {
		// An empty body is a valid way to start
		req = dto.StartConversationRequest{}
	}

	res, err := c.service.StartConversation(ctx.Context(), currentUserID(ctx), &req)
	if err != nil {
		return serverutils.ErrorResponse(ctx, fiber.StatusInternalServerError, err.Error())
	}
	return serverutils.SuccessResponse(ctx, "Conversation started", res)
}

func (c *chatController) SendMessage(ctx *fiber.Ctx) error {
	var req dto.SendMessageRequest
	if err := ctx.BodyParser(&req); err != nil {
		return serverutils.ErrorResponse(ctx, fiber.StatusBadRequest, "invalid request body")
	}
	if err := serverutils.ValidateRequest(&req); err != nil {
		return serverutils.ErrorResponse(ctx, fiber.StatusBadRequest, err.Error())
	}

	res, err := c.service.ProcessMessage(ctx.Context(), ctx.Params("sessionKey"), &req)
	if err != nil {
		return serverutils.ErrorResponse(ctx, serviceErrorStatus(err), err.Error())
	}
	return serverutils.SuccessResponse(ctx, "Message processed", res)
}

func (c *chatController) PersonaMessage(ctx *fiber.Ctx) error {
	var req dto.PersonaMessageRequest
	if err := ctx.BodyParser(&req); err != nil {
		return serverutils.ErrorResponse(ctx, fiber.StatusBadRequest, "invalid request body")
	}
	if err := serverutils.ValidateRequest(&req); err != nil {
		return serverutils.ErrorResponse(ctx, fiber.StatusBadRequest, err.Error())
	}

	res, err := c.service.PersonaMessage(ctx.Context(), ctx.Params("sessionKey"), &req)
	if err != nil {
		return serverutils.ErrorResponse(ctx, serviceErrorStatus(err), err.Error())
	}
	return serverutils.SuccessResponse(ctx, "Message processed", res)
}

func (c *chatController) MultiPerspective(ctx *fiber.Ctx) error {
	var req dto.MultiPerspectiveRequest
	if err := ctx.BodyParser(&req); err != nil {
		return serverutils.ErrorResponse(ctx, fiber.StatusBadRequest, "invalid request body")
	}
	if err := serverutils.ValidateRequest(&req); err != nil {
		return serverutils.ErrorResponse(ctx, fiber.StatusBadRequest, err.Error())
	}

	res, err := c.service.MultiPerspective(ctx.Context(), ctx.Params("sessionKey"), &req)
	if err != nil {
		return serverutils.ErrorResponse(ctx, serviceErrorStatus(err), err.Error())
	}
	return serverutils.SuccessResponse(ctx, "Perspectives gathered", res)
}

func (c *chatController) GenerateProposal(ctx *fiber.Ctx) error {
	res, err := c.service.GenerateProposal(ctx.Context(), ctx.Params("sessionKey"))
	if err != nil {
		return serverutils.ErrorResponse(ctx, serviceErrorStatus(err), err.Error())
	}
	return serverutils.SuccessResponse(ctx, "Proposal generated", res)
}

func (c *chatController) GetConversation(ctx *fiber.Ctx) error {
	res, err := c.service.GetConversation(ctx.Context(), ctx.Params("sessionKey"))
	if err != nil {
		return serverutils.ErrorResponse(ctx, serviceErrorStatus(err), err.Error())
	}
	return serverutils.SuccessResponse(ctx, "Conversation retrieved", res)
}

func (c *chatController) ListConversations(ctx *fiber.Ctx) error {
	res, err := c.service.ListConversations(ctx.Context(), currentUserID(ctx))
	if err != nil {
		return serverutils.ErrorResponse(ctx, fiber.StatusInternalServerError, err.Error())
	}
	return serverutils.SuccessResponse(ctx, "Conversations retrieved", res)
}

func (c *chatController) DeleteConversation(ctx *fiber.Ctx) error {
	if err := c.service.DeleteConversation(ctx.Context(), ctx.Params("sessionKey")); err != nil {
		return serverutils.ErrorResponse(ctx, serviceErrorStatus(err), err.Error())
	}
	return serverutils.SuccessResponse(ctx, "Conversation deleted", nil)
}

func (c *chatController) ListPersonas(ctx *fiber.Ctx) error {
	return serverutils.SuccessResponse(ctx, "Personas retrieved", c.service.ListPersonas())
}

func (c *chatController) ListProviders(ctx *fiber.Ctx) error {
	return serverutils.SuccessResponse(ctx, "Providers retrieved", c.service.ListProviders())
}

// currentUserID pulls the optional authenticated user from locals.
func currentUserID(ctx *fiber.Ctx) *uuid.UUID {
	raw, ok := ctx.Locals("user_id").(string)
	if !ok || raw == "" {
		return nil
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return nil
	}
	return &id
}
