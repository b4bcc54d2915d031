package controller

import (
	"io"

	"ai-chatbot-be/internal/dto"
	"ai-chatbot-be/internal/pkg/serverutils"
	"ai-chatbot-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IDocumentController interface {
	RegisterRoutes(r fiber.Router)
	Upload(ctx *fiber.Ctx) error
	Clear(ctx *fiber.Ctx) error
}

type documentController struct {
	service service.IDocumentService
	auth    service.IAuthService
}

func NewDocumentController(documents service.IDocumentService, auth service.IAuthService) IDocumentController {
	return &documentController{service: documents, auth: auth}
}

func (c *documentController) RegisterRoutes(r fiber.Router) {
	optional := serverutils.OptionalAuth(c.auth)
	r.Post("/upload-file", optional, c.Upload)
	r.Post("/clear-file", optional, c.Clear)
}

func (c *documentController) Upload(ctx *fiber.Ctx) error {
	fileHeader, err := ctx.FormFile("file")
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "No file provided")
	}

	file, err := fileHeader.Open()
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Could not read uploaded file")
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Could not read uploaded file")
	}

	res, err := c.service.Upload(ctx.Context(), serverutils.UserID(ctx), fileHeader.Filename, data, ctx.FormValue("session_id"))
	if err != nil {
		return err
	}
	return ctx.JSON(res)
}

func (c *documentController) Clear(ctx *fiber.Ctx) error {
	var req dto.ClearDocumentRequest
	// An empty or absent body means "clear everything".
	_ = ctx.BodyParser(&req)

	res, err := c.service.Clear(ctx.Context(), serverutils.UserID(ctx), &req)
	if err != nil {
		return err
	}
	return ctx.JSON(res)
}
