package bootstrap

import (
	"log"

	"ai-chatbot-be/internal/config"
	"ai-chatbot-be/internal/controller"
	"ai-chatbot-be/internal/pkg/logger"
	"ai-chatbot-be/internal/repository/memory"
	"ai-chatbot-be/internal/repository/unitofwork"
	"ai-chatbot-be/internal/service"
	"ai-chatbot-be/pkg/llm/factory"

	"gorm.io/gorm"
)

type Container struct {
	Logger logger.ILogger

	AuthController     controller.IAuthController
	ChatController     controller.IChatController
	DocumentController controller.IDocumentController
}

func NewContainer(db *gorm.DB, cfg *config.Config) *Container {
	uowFactory := unitofwork.NewRepositoryFactory(db)
	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.App.Environment == "production")

	llmProvider, err := factory.NewLLMProvider(
		cfg.Ai.Provider,
		cfg.Ai.Model,
		cfg.Ai.OllamaBaseURL,
		cfg.Ai.GeminiAPIKey,
	)
	if err != nil {
		log.Fatalf("[FATAL] Failed to initialize LLM provider: %v", err)
	}
	log.Printf("[INFO] Using LLM provider: %s (%s)", cfg.Ai.Provider, cfg.Ai.Model)

	documentRepo := memory.NewDocumentRepository()

	completionGateway := service.NewCompletionGateway(
		llmProvider,
		cfg.Ai.RequestTimeout,
		cfg.Ai.Temperature,
		cfg.Ai.MaxTokens,
		sysLogger,
	)
	authService := service.NewAuthService(uowFactory, sysLogger)
	chatService := service.NewChatService(uowFactory, documentRepo, completionGateway, sysLogger)
	documentService := service.NewDocumentService(uowFactory, documentRepo, sysLogger)

	return &Container{
		Logger:             sysLogger,
		AuthController:     controller.NewAuthController(authService),
		ChatController:     controller.NewChatController(chatService, authService),
		DocumentController: controller.NewDocumentController(documentService, authService),
	}
}
