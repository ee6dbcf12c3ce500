package controller

import (
	"agent-chat-be/internal/dto"
	"agent-chat-be/internal/pkg/serverutils"
	"agent-chat-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IArtifactPanelController interface {
	RegisterRoutes(r fiber.Router)
	Get(ctx *fiber.Ctx) error
	Open(ctx *fiber.Ctx) error
	Close(ctx *fiber.Ctx) error
}

type artifactPanelController struct {
	service   service.IArtifactPanelService
	jwtSecret string
}

func NewArtifactPanelController(service service.IArtifactPanelService, jwtSecret string) IArtifactPanelController {
	return &artifactPanelController{
		service:   service,
		jwtSecret: jwtSecret,
	}
}

func (c *artifactPanelController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/artifacts/v1/panel")
	h.Use(serverutils.SessionMiddleware(c.jwtSecret))
	h.Get("", c.Get)
	h.Post("/open", c.Open)
	h.Post("/close", c.Close)
}

func (c *artifactPanelController) Get(ctx *fiber.Ctx) error {
	res := c.service.Get(ctx.Context(), serverutils.GetSession(ctx))
	return ctx.JSON(serverutils.SuccessResponse("Success get panel", res))
}

func (c *artifactPanelController) Open(ctx *fiber.Ctx) error {
	var req dto.OpenPanelRequest
	if err := ctx.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.service.Open(ctx.Context(), serverutils.GetSession(ctx), &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success open panel", res))
}

func (c *artifactPanelController) Close(ctx *fiber.Ctx) error {
	res := c.service.Close(ctx.Context(), serverutils.GetSession(ctx))
	return ctx.JSON(serverutils.SuccessResponse("Success close panel", res))
}
