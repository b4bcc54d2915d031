package controller

import (
	"ai-chatbot-be/internal/dto"
	"ai-chatbot-be/internal/pkg/serverutils"
	"ai-chatbot-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IChatController interface {
	RegisterRoutes(r fiber.Router)
	SendChat(ctx *fiber.Ctx) error
	GetAllSessions(ctx *fiber.Ctx) error
	GetSession(ctx *fiber.Ctx) error
	DeleteSession(ctx *fiber.Ctx) error
	NewSession(ctx *fiber.Ctx) error
}

type chatController struct {
	service service.IChatService
	auth    service.IAuthService
}

func NewChatController(chat service.IChatService, auth service.IAuthService) IChatController {
	return &chatController{service: chat, auth: auth}
}

// Chat endpoints work with or without a session token, so they sit behind
// the optional auth middleware rather than the strict one.
func (c *chatController) RegisterRoutes(r fiber.Router) {
	optional := serverutils.OptionalAuth(c.auth)
	r.Post("/chat", optional, c.SendChat)
	r.Get("/chat/sessions", optional, c.GetAllSessions)
	r.Get("/chat/sessions/:sessionId", optional, c.GetSession)
	r.Delete("/chat/sessions/:sessionId", optional, c.DeleteSession)
	r.Post("/chat/new-session", optional, c.NewSession)
}

func (c *chatController) SendChat(ctx *fiber.Ctx) error {
	var req dto.SendChatRequest
	if err := ctx.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}

	res, err := c.service.SendChat(ctx.Context(), serverutils.UserID(ctx), &req)
	if err != nil {
		return err
	}
	return ctx.JSON(res)
}

func (c *chatController) GetAllSessions(ctx *fiber.Ctx) error {
	sessions, err := c.service.GetAllSessions(ctx.Context(), serverutils.UserID(ctx))
	if err != nil {
		return err
	}
	return ctx.JSON(fiber.Map{"sessions": sessions})
}

func (c *chatController) GetSession(ctx *fiber.Ctx) error {
	res, err := c.service.GetSession(ctx.Context(), serverutils.UserID(ctx), ctx.Params("sessionId"))
	if err != nil {
		return err
	}
	return ctx.JSON(res)
}

func (c *chatController) DeleteSession(ctx *fiber.Ctx) error {
	if err := c.service.DeleteSession(ctx.Context(), serverutils.UserID(ctx), ctx.Params("sessionId")); err != nil {
		return err
	}
	return ctx.JSON(fiber.Map{"message": "Session deleted"})
}

func (c *chatController) NewSession(ctx *fiber.Ctx) error {
	res, err := c.service.CreateSession(ctx.Context(), serverutils.UserID(ctx))
	if err != nil {
		return err
	}
	return ctx.JSON(res)
}
