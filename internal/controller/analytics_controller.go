package controller

import (
	"github.com/gofiber/fiber/v2"

	"idea-shaper-be/internal/pkg/serverutils"
	"idea-shaper-be/internal/service"
)

type IAnalyticsController interface {
	RegisterRoutes(r fiber.Router)
	Usage(ctx *fiber.Ctx) error
	ConversationStats(ctx *fiber.Ctx) error
}

type analyticsController struct {
	service service.IAnalyticsService
}

func NewAnalyticsController(service service.IAnalyticsService) IAnalyticsController {
	return &analyticsController{service: service}
}

func (c *analyticsController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/analytics")
	h.Get("/usage", c.Usage)
	h.Get("/conversations/:sessionKey", c.ConversationStats)
}

func (c *analyticsController) Usage(ctx *fiber.Ctx) error {
	res, err := c.service.UsageStats(ctx.Context())
	if err != nil {
		return serverutils.ErrorResponse(ctx, fiber.StatusInternalServerError, err.Error())
	}
	return serverutils.SuccessResponse(ctx, "Usage stats retrieved", res)
}

func (c *analyticsController) ConversationStats(ctx *fiber.Ctx) error {
	res, err := c.service.ConversationStats(ctx.Context(), ctx.Params("sessionKey"))
	if err != nil {
		return serverutils.ErrorResponse(ctx, serviceErrorStatus(err), err.Error())
	}
	return serverutils.SuccessResponse(ctx, "Conversation stats retrieved", res)
}
