package controller

import (
	"github.com/gofiber/fiber/v2"

	"idea-shaper-be/internal/dto"
	"idea-shaper-be/internal/pkg/serverutils"
	"idea-shaper-be/internal/service"
)

type IResearchController interface {
	RegisterRoutes(r fiber.Router)
	Research(ctx *fiber.Ctx) error
}

type researchController struct {
	service service.IResearchService
}

func NewResearchController(service service.IResearchService) IResearchController {
	return &researchController{service: service}
}

func (c *researchController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/research")
	h.Post("/", c.Research)
}

func (c *researchController) Research(ctx *fiber.Ctx) error {
	var req dto.ResearchRequest
	if err := ctx.BodyParser(&req); err != nil {
		return serverutils.ErrorResponse(ctx, fiber.StatusBadRequest, "invalid request body")
	}
	if err := serverutils.ValidateRequest(&req); err != nil {
		return serverutils.ErrorResponse(ctx, fiber.StatusBadRequest, err.Error())
	}

	res, err := c.service.Research(ctx.Context(), &req)
	if err != nil {
		return serverutils.ErrorResponse(ctx, fiber.StatusInternalServerError, err.Error())
	}
	return serverutils.SuccessResponse(ctx, "Research completed", res)
}
