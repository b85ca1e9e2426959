package controller

import (
	"github.com/gofiber/fiber/v2"

	"idea-shaper-be/internal/pkg/serverutils"
	"idea-shaper-be/internal/service"
)

type ISearchController interface {
	RegisterRoutes(r fiber.Router)
	Search(ctx *fiber.Ctx) error
}

type searchController struct {
	service service.ISearchService
}

func NewSearchController(service service.ISearchService) ISearchController {
	return &searchController{service: service}
}

func (c *searchController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/search")
	h.Get("/", c.Search)
}

func (c *searchController) Search(ctx *fiber.Ctx) error {
	query := ctx.Query("q")
	if query == "" {
		return serverutils.ErrorResponse(ctx, fiber.StatusBadRequest, "missing query parameter q")
	}

	res, err := c.service.Search(ctx.Context(), query)
	if err != nil {
		return serverutils.ErrorResponse(ctx, fiber.StatusInternalServerError, err.Error())
	}
	return serverutils.SuccessResponse(ctx, "Search completed", res)
}
