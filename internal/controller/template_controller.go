package controller

import (
	"github.com/gofiber/fiber/v2"

	"idea-shaper-be/internal/pkg/serverutils"
	"idea-shaper-be/internal/service"
)

type ITemplateController interface {
	RegisterRoutes(r fiber.Router)
	List(ctx *fiber.Ctx) error
	Get(ctx *fiber.Ctx) error
}

type templateController struct {
	service service.ITemplateService
}

func NewTemplateController(service service.ITemplateService) ITemplateController {
	return &templateController{service: service}
}

func (c *templateController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/templates")
	h.Get("/", c.List)
	h.Get("/:id", c.Get)
}

func (c *templateController) List(ctx *fiber.Ctx) error {
	return serverutils.SuccessResponse(ctx, "Templates retrieved", c.service.ListTemplates(ctx.Context(), ctx.Query("category")))
}

func (c *templateController) Get(ctx *fiber.Ctx) error {
	res, err := c.service.GetTemplate(ctx.Context(), ctx.Params("id"))
	if err != nil {
		return serverutils.ErrorResponse(ctx, fiber.StatusNotFound, err.Error())
	}
	return serverutils.SuccessResponse(ctx, "Template retrieved", res)
}
