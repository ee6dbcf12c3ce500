package controller

import (
	"agent-chat-be/internal/dto"
	"agent-chat-be/internal/pkg/logger"
	"agent-chat-be/internal/pkg/serverutils"
	"agent-chat-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IAdminController interface {
	RegisterRoutes(r fiber.Router)
	Login(ctx *fiber.Ctx) error
	GetAllAgents(ctx *fiber.Ctx) error
	CreateAgent(ctx *fiber.Ctx) error
	UpdateAgent(ctx *fiber.Ctx) error
	DeleteAgent(ctx *fiber.Ctx) error
	GetLogs(ctx *fiber.Ctx) error
}

type adminController struct {
	agentService service.IAgentService
	authService  service.IAuthService
	logs         logger.LogReader
	jwtSecret    string
}

func NewAdminController(
	agentService service.IAgentService,
	authService service.IAuthService,
	logs logger.LogReader,
	jwtSecret string,
) IAdminController {
	return &adminController{
		agentService: agentService,
		authService:  authService,
		logs:         logs,
		jwtSecret:    jwtSecret,
	}
}

func (c *adminController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/admin")
	h.Post("/login", c.Login)

	protected := h.Group("", serverutils.AdminMiddleware(c.jwtSecret))
	protected.Get("/agents", c.GetAllAgents)
	protected.Post("/agents", c.CreateAgent)
	protected.Put("/agents/:id", c.UpdateAgent)
	protected.Delete("/agents/:id", c.DeleteAgent)
	protected.Get("/logs", c.GetLogs)
}

func (c *adminController) Login(ctx *fiber.Ctx) error {
	var req dto.AdminLoginRequest
	if err := ctx.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.authService.AdminLogin(ctx.Context(), &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Login successful", res))
}

func (c *adminController) GetAllAgents(ctx *fiber.Ctx) error {
	var req dto.AgentListRequest
	if err := ctx.QueryParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid query")
	}

	res, err := c.agentService.AdminList(ctx.Context(), &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success get all agents", res))
}

func (c *adminController) CreateAgent(ctx *fiber.Ctx) error {
	var req dto.CreateAgentRequest
	if err := ctx.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.agentService.Create(ctx.Context(), &req)
	if err != nil {
		return err
	}

	return ctx.Status(fiber.StatusCreated).JSON(serverutils.SuccessResponse("Success create agent", res))
}

func (c *adminController) UpdateAgent(ctx *fiber.Ctx) error {
	var req dto.UpdateAgentRequest
	if err := ctx.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}
	req.Id = ctx.Params("id")

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.agentService.Update(ctx.Context(), &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success update agent", res))
}

func (c *adminController) DeleteAgent(ctx *fiber.Ctx) error {
	if err := c.agentService.Delete(ctx.Context(), ctx.Params("id")); err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse[any]("Success delete agent", nil))
}

func (c *adminController) GetLogs(ctx *fiber.Ctx) error {
	var req dto.AdminLogListRequest
	if err := ctx.QueryParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid query")
	}

	entries, err := c.logs.GetLogs(logger.LogFilter{
		Level:  req.Level,
		Module: req.Module,
		Limit:  req.Limit,
		Offset: req.Offset,
	})
	if err != nil {
		return err
	}

	res := make([]dto.LogDetailResponse, 0, len(entries))
	for _, e := range entries {
		res = append(res, dto.LogDetailResponse{
			LogListResponse: dto.LogListResponse{
				Id:        e.Id,
				Level:     e.Level,
				Module:    e.Module,
				Message:   e.Message,
				Timestamp: e.Timestamp,
			},
			Details: e.Details,
		})
	}

	return ctx.JSON(serverutils.SuccessResponse("Success get logs", res))
}
