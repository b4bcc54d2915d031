package controller

import (
	"ai-chatbot-be/internal/dto"
	"ai-chatbot-be/internal/pkg/serverutils"
	"ai-chatbot-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IAuthController interface {
	RegisterRoutes(r fiber.Router)
	Signup(ctx *fiber.Ctx) error
	Login(ctx *fiber.Ctx) error
	Logout(ctx *fiber.Ctx) error
	Me(ctx *fiber.Ctx) error
	CheckSession(ctx *fiber.Ctx) error
}

type authController struct {
	service service.IAuthService
}

func NewAuthController(service service.IAuthService) IAuthController {
	return &authController{service: service}
}

func (c *authController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/auth")
	h.Post("/signup", c.Signup)
	h.Post("/login", c.Login)
	h.Post("/logout", c.Logout)
	h.Get("/me", serverutils.RequireAuth(c.service), c.Me)
	h.Get("/check-session", c.CheckSession)
}

func (c *authController) Signup(ctx *fiber.Ctx) error {
	var req dto.SignupRequest
	if err := ctx.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}

	res, err := c.service.Signup(ctx.Context(), &req)
	if err != nil {
		return err
	}
	return ctx.Status(fiber.StatusCreated).JSON(res)
}

func (c *authController) Login(ctx *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := ctx.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}

	res, err := c.service.Login(ctx.Context(), &req)
	if err != nil {
		return err
	}
	return ctx.JSON(res)
}

// Logout always succeeds: revoking an unknown token is a no-op, and the
// client discards its copy either way.
func (c *authController) Logout(ctx *fiber.Ctx) error {
	if err := c.service.Logout(ctx.Context(), serverutils.BearerToken(ctx)); err != nil {
		return err
	}
	return ctx.JSON(fiber.Map{"message": "Logged out successfully"})
}

func (c *authController) Me(ctx *fiber.Ctx) error {
	user := serverutils.User(ctx)
	if user == nil {
		return fiber.NewError(fiber.StatusUnauthorized, "No session token provided")
	}
	return ctx.JSON(dto.MeResponse{
		User: dto.UserDTO{
			Id:          user.Id,
			Email:       user.Email,
			FirstName:   user.FirstName,
			LastName:    user.LastName,
			IsActive:    user.IsActive,
			LastLoginAt: user.LastLoginAt,
			CreatedAt:   user.CreatedAt,
		},
	})
}

func (c *authController) CheckSession(ctx *fiber.Ctx) error {
	return ctx.JSON(dto.CheckSessionResponse{
		Authenticated: c.service.CheckSession(ctx.Context(), serverutils.BearerToken(ctx)),
	})
}
