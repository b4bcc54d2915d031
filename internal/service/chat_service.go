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

	"github.com/google/uuid"
)

type IChatService interface {
	SendChat(ctx context.Context, userId *uuid.UUID, req *dto.SendChatRequest) (*dto.SendChatResponse, error)
	GetAllSessions(ctx context.Context, userId *uuid.UUID) ([]dto.ChatSessionDTO, error)
	GetSession(ctx context.Context, userId *uuid.UUID, sessionId string) (*dto.GetSessionResponse, error)
	DeleteSession(ctx context.Context, userId *uuid.UUID, sessionId string) error
	CreateSession(ctx context.Context, userId *uuid.UUID) (*dto.NewSessionResponse, error)
}

type chatService struct {
	uowFactory unitofwork.RepositoryFactory
	documents  *memory.DocumentRepository
	completion ICompletionGateway
	log        logger.ILogger
}

func NewChatService(
	uowFactory unitofwork.RepositoryFactory,
	documents *memory.DocumentRepository,
	completion ICompletionGateway,
	log logger.ILogger,
) IChatService {
	return &chatService{
		uowFactory: uowFactory,
		documents:  documents,
		completion: completion,
		log:        log,
	}
}

// deriveTitle takes the opening of the first message as the session title.
func deriveTitle(message string) string {
	runes := []rune(message)
	if len(runes) <= constant.SessionTitleMaxLen {
		return message
	}
	return string(runes[:constant.SessionTitleCutLen]) + "..."
}

// canAccess reports whether the requester may touch the session. Owned
// sessions are private to their owner; anonymous sessions are open.
func canAccess(session *entity.ChatSession, userId *uuid.UUID) bool {
	if session.UserId == nil {
		return true
	}
	return userId != nil && *userId == *session.UserId
}

func (s *chatService) SendChat(ctx context.Context, userId *uuid.UUID, req *dto.SendChatRequest) (*dto.SendChatResponse, error) {
	message := strings.TrimSpace(req.Message)
	if message == "" {
		return nil, apperror.Validation("Message is required")
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)

	var session *entity.ChatSession
	if req.SessionId != "" {
		found, err := uow.ChatSessionRepository().FindOne(ctx, specification.BySessionID{SessionID: req.SessionId})
		if err != nil {
			return nil, apperror.Persistence(err)
		}
		session = found
	}
	if session != nil && !canAccess(session, userId) {
		return nil, apperror.Forbidden("You do not have access to this session")
	}

	documentContext := ""
	if session != nil {
		if doc, found := s.documents.Get(session.SessionId); found {
			documentContext = doc.Text
		}
	}
	hadContext := documentContext != ""

	reply, degraded := s.completion.Complete(ctx, message, documentContext)
	if degraded {
		s.log.Warn("chat", "persisting degraded bot reply", map[string]interface{}{
			"session_id": req.SessionId,
		})
	}

	// The session row, the user turn, and its bot reply land together; a
	// failed append leaves no half-written session behind.
	if err := uow.Begin(ctx); err != nil {
		return nil, apperror.Persistence(err)
	}
	defer uow.Rollback()

	if session == nil {
		created, err := s.createSession(ctx, uow, userId, deriveTitle(message))
		if err != nil {
			return nil, err
		}
		session = created
	}

	userMessage := &entity.ChatMessage{
		Id:                 uuid.New(),
		SessionId:          session.SessionId,
		MessageType:        constant.ChatMessageTypeUser,
		Content:            message,
		HadDocumentContext: hadContext,
		CreatedAt:          time.Now(),
	}
	botMessage := &entity.ChatMessage{
		Id:                 uuid.New(),
		SessionId:          session.SessionId,
		MessageType:        constant.ChatMessageTypeBot,
		Content:            reply,
		HadDocumentContext: hadContext,
		CreatedAt:          time.Now(),
	}

	if err := uow.ChatMessageRepository().Create(ctx, userMessage); err != nil {
		return nil, apperror.Persistence(err)
	}
	if err := uow.ChatMessageRepository().Create(ctx, botMessage); err != nil {
		return nil, apperror.Persistence(err)
	}
	if err := uow.ChatSessionRepository().Touch(ctx, session.SessionId); err != nil {
		return nil, apperror.Persistence(err)
	}
	if err := uow.Commit(); err != nil {
		return nil, apperror.Persistence(err)
	}

	return &dto.SendChatResponse{
		Response:           reply,
		SessionId:          session.SessionId,
		HasDocumentContext: hadContext,
	}, nil
}

// createSession writes a new session row with a freshly synthesized
// identifier; client-supplied ids are never adopted as new identifiers.
// Callers inside a transaction get the row on that transaction.
func (s *chatService) createSession(ctx context.Context, uow unitofwork.UnitOfWork, userId *uuid.UUID, title string) (*entity.ChatSession, error) {
	session := &entity.ChatSession{
		Id:        uuid.New(),
		SessionId: uuid.New().String(),
		UserId:    userId,
		Title:     title,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}
	if err := uow.ChatSessionRepository().Create(ctx, session); err != nil {
		return nil, apperror.Persistence(err)
	}

	s.log.Info("chat", "session created", map[string]interface{}{"session_id": session.SessionId})
	return session, nil
}

func (s *chatService) GetAllSessions(ctx context.Context, userId *uuid.UUID) ([]dto.ChatSessionDTO, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	var ownership specification.Specification = specification.Anonymous{}
	if userId != nil {
		ownership = specification.OwnedBy{UserID: *userId}
	}

	sessions, err := uow.ChatSessionRepository().FindAll(ctx,
		ownership,
		specification.OrderBy{Field: "updated_at", Desc: true},
	)
	if err != nil {
		return nil, apperror.Persistence(err)
	}

	sessionIds := make([]string, 0, len(sessions))
	for _, session := range sessions {
		sessionIds = append(sessionIds, session.SessionId)
	}

	counts, err := uow.ChatMessageRepository().CountBySessionIds(ctx, sessionIds)
	if err != nil {
		return nil, apperror.Persistence(err)
	}

	result := make([]dto.ChatSessionDTO, 0, len(sessions))
	for _, session := range sessions {
		result = append(result, sessionToDTO(session, int(counts[session.SessionId])))
	}
	return result, nil
}

func (s *chatService) GetSession(ctx context.Context, userId *uuid.UUID, sessionId string) (*dto.GetSessionResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	session, err := uow.ChatSessionRepository().FindOne(ctx, specification.BySessionID{SessionID: sessionId})
	if err != nil {
		return nil, apperror.Persistence(err)
	}
	if session == nil {
		return nil, apperror.NotFound("Session not found")
	}
	if !canAccess(session, userId) {
		return nil, apperror.Forbidden("You do not have access to this session")
	}

	messages, err := uow.ChatMessageRepository().FindAll(ctx,
		specification.BySessionID{SessionID: sessionId},
		specification.OrderBy{Field: "created_at"},
	)
	if err != nil {
		return nil, apperror.Persistence(err)
	}

	messageDTOs := make([]dto.ChatMessageDTO, 0, len(messages))
	for _, m := range messages {
		messageDTOs = append(messageDTOs, dto.ChatMessageDTO{
			SessionId:          m.SessionId,
			Type:               m.MessageType,
			Content:            m.Content,
			HadDocumentContext: m.HadDocumentContext,
			Timestamp:          m.CreatedAt,
		})
	}

	return &dto.GetSessionResponse{
		Session:  sessionToDTO(session, len(messages)),
		Messages: messageDTOs,
	}, nil
}

func (s *chatService) DeleteSession(ctx context.Context, userId *uuid.UUID, sessionId string) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	session, err := uow.ChatSessionRepository().FindOne(ctx, specification.BySessionID{SessionID: sessionId})
	if err != nil {
		return apperror.Persistence(err)
	}
	if session == nil {
		return apperror.NotFound("Session not found")
	}
	if !canAccess(session, userId) {
		return apperror.Forbidden("You do not have access to this session")
	}

	if err := uow.Begin(ctx); err != nil {
		return apperror.Persistence(err)
	}
	defer uow.Rollback()

	if err := uow.ChatMessageRepository().DeleteBySessionId(ctx, sessionId); err != nil {
		return apperror.Persistence(err)
	}
	if err := uow.ChatSessionRepository().DeleteBySessionId(ctx, sessionId); err != nil {
		return apperror.Persistence(err)
	}
	if err := uow.Commit(); err != nil {
		return apperror.Persistence(err)
	}

	// Drop any cached document context along with the session.
	s.documents.Delete(sessionId)

	s.log.Info("chat", "session deleted", map[string]interface{}{"session_id": sessionId})
	return nil
}

func (s *chatService) CreateSession(ctx context.Context, userId *uuid.UUID) (*dto.NewSessionResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	session, err := s.createSession(ctx, uow, userId, constant.NewSessionTitle)
	if err != nil {
		return nil, err
	}
	return &dto.NewSessionResponse{SessionId: session.SessionId}, nil
}

func sessionToDTO(session *entity.ChatSession, messageCount int) dto.ChatSessionDTO {
	out := dto.ChatSessionDTO{
		SessionId:    session.SessionId,
		Title:        session.Title,
		CreatedAt:    session.CreatedAt,
		UpdatedAt:    session.UpdatedAt,
		MessageCount: messageCount,
	}
	if session.UserId != nil {
		out.UserId = session.UserId.String()
	}
	return out
}
