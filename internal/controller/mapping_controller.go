package controller

import (
	"github.com/gofiber/fiber/v2"

	"idea-shaper-be/internal/pkg/serverutils"
	"idea-shaper-be/internal/service"
)

type IMappingController interface {
	RegisterRoutes(r fiber.Router)
	MindMap(ctx *fiber.Ctx) error
}

type mappingController struct {
	service service.IMappingService
}

func NewMappingController(service service.IMappingService) IMappingController {
	return &mappingController{service: service}
}

func (c *mappingController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/mindmap")
	h.Get("/:sessionKey", c.MindMap)
}

func (c *mappingController) MindMap(ctx *fiber.Ctx) error {
	res, err := c.service.MindMap(ctx.Context(), ctx.Params("sessionKey"))
	if err != nil {
		return serverutils.ErrorResponse(ctx, serviceErrorStatus(err), err.Error())
	}
	return serverutils.SuccessResponse(ctx, "Mind map generated", res)
}
