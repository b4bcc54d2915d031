package service

import (
	"context"
	"strings"
	"time"

	"ai-chatbot-be/internal/constant"
	"ai-chatbot-be/internal/dto"
	"ai-chatbot-be/internal/entity"
	"ai-chatbot-be/internal/pkg/apperror"
	"ai-chatbot-be/internal/pkg/logger"
	"ai-chatbot-be/internal/repository/memory"
	"ai-chatbot-be/internal/repository/specification"
	"ai-chatbot-be/internal/repository/unitofwork"
	"ai-chatbot-be/pkg/extract"

	"github.com/google/uuid"
)

type IDocumentService interface {
	Upload(ctx context.Context, userId *uuid.UUID, filename string, data []byte, sessionId string) (*dto.UploadDocumentResponse, error)
	Clear(ctx context.Context, userId *uuid.UUID, req *dto.ClearDocumentRequest) (*dto.ClearDocumentResponse, error)
}

type documentService struct {
	uowFactory unitofwork.RepositoryFactory
	documents  *memory.DocumentRepository
	log        logger.ILogger
}

func NewDocumentService(
	uowFactory unitofwork.RepositoryFactory,
	documents *memory.DocumentRepository,
	log logger.ILogger,
) IDocumentService {
	return &documentService{
		uowFactory: uowFactory,
		documents:  documents,
		log:        log,
	}
}

func (s *documentService) Upload(ctx context.Context, userId *uuid.UUID, filename string, data []byte, sessionId string) (*dto.UploadDocumentResponse, error) {
	if filename == "" {
		return nil, apperror.Validation("No file provided")
	}
	if len(data) == 0 {
		return nil, apperror.Validation("Uploaded file is empty")
	}

	kind, err := extract.ResolveKind(filename)
	if err != nil {
		return nil, apperror.Validation(err.Error())
	}

	result, err := extract.Extract(kind, data, constant.MaxDocumentContextChars)
	if err != nil {
		return nil, apperror.Validation("Could not extract text from file: " + err.Error())
	}

	text := strings.TrimSpace(result.Text)
	if text == "" {
		return nil, apperror.Validation("No readable text found in file")
	}

	truncated := false
	if runes := []rune(text); len(runes) > constant.MaxDocumentContextChars {
		text = string(runes[:constant.MaxDocumentContextChars]) + constant.TruncationMarker
		truncated = true
	}

	session, err := s.resolveSession(ctx, userId, sessionId)
	if err != nil {
		return nil, err
	}

	// Re-upload replaces the session's context wholesale; sessions hold at
	// most one document at a time.
	s.documents.Put(&entity.DocumentContext{
		SessionId: session.SessionId,
		Kind:      string(kind),
		Text:      text,
		Truncated: truncated,
		Pages:     result.Pages,
		Rows:      result.Rows,
		Columns:   result.Columns,
		Slides:    result.Slides,
		SheetName: result.SheetName,
	})

	s.log.Info("document", "document context stored", map[string]interface{}{
		"session_id": session.SessionId,
		"kind":       string(kind),
		"chars":      len(text),
		"truncated":  truncated,
	})

	return &dto.UploadDocumentResponse{
		Message:   "File processed successfully",
		SessionId: session.SessionId,
		Kind:      string(kind),
		Preview:   preview(text),
		Truncated: truncated,
		Pages:     result.Pages,
		Rows:      result.Rows,
		Columns:   result.Columns,
		Slides:    result.Slides,
		SheetName: result.SheetName,
	}, nil
}

// Clear removes cached document context. With a session id it clears that
// session; without one it flushes every entry in this process.
func (s *documentService) Clear(ctx context.Context, userId *uuid.UUID, req *dto.ClearDocumentRequest) (*dto.ClearDocumentResponse, error) {
	if req.SessionId == "" {
		s.documents.Flush()
		s.log.Info("document", "all document contexts cleared", nil)
		return &dto.ClearDocumentResponse{Message: "All document contexts cleared"}, nil
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	session, err := uow.ChatSessionRepository().FindOne(ctx, specification.BySessionID{SessionID: req.SessionId})
	if err != nil {
		return nil, apperror.Persistence(err)
	}
	if session != nil && !canAccess(session, userId) {
		return nil, apperror.Forbidden("You do not have access to this session")
	}

	s.documents.Delete(req.SessionId)
	return &dto.ClearDocumentResponse{
		Message:   "Document context cleared",
		SessionId: req.SessionId,
	}, nil
}

// resolveSession attaches the upload to an existing session or creates a
// fresh one titled for document chat.
func (s *documentService) resolveSession(ctx context.Context, userId *uuid.UUID, sessionId string) (*entity.ChatSession, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	if sessionId != "" {
		session, err := uow.ChatSessionRepository().FindOne(ctx, specification.BySessionID{SessionID: sessionId})
		if err != nil {
			return nil, apperror.Persistence(err)
		}
		if session != nil {
			if !canAccess(session, userId) {
				return nil, apperror.Forbidden("You do not have access to this session")
			}
			return session, nil
		}
	}

	session := &entity.ChatSession{
		Id:        uuid.New(),
		SessionId: uuid.New().String(),
		UserId:    userId,
		Title:     constant.DocumentSessionTitle,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}
	if err := uow.ChatSessionRepository().Create(ctx, session); err != nil {
		return nil, apperror.Persistence(err)
	}
	return session, nil
}

func preview(text string) string {
	runes := []rune(text)
	if len(runes) <= constant.DocumentPreviewMaxLen {
		return text
	}
	return string(runes[:constant.DocumentPreviewMaxLen]) + "..."
}
