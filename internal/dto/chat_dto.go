package dto

import "time"

type SendChatRequest struct {
	Message   string `json:"message"`
	SessionId string `json:"session_id,omitempty"`
}

type SendChatResponse struct {
	Response           string `json:"response"`
	SessionId          string `json:"session_id"`
	HasDocumentContext bool   `json:"has_document_context"`
}

type ChatSessionDTO struct {
	SessionId    string    `json:"session_id"`
	UserId       string    `json:"user_id,omitempty"`
	Title        string    `json:"title"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
	MessageCount int       `json:"message_count"`
}

type ChatMessageDTO struct {
	SessionId          string    `json:"session_id"`
	Type               string    `json:"type"`
	Content            string    `json:"content"`
	HadDocumentContext bool      `json:"had_document_context"`
	Timestamp          time.Time `json:"timestamp"`
}

type GetSessionResponse struct {
	Session  ChatSessionDTO   `json:"session"`
	Messages []ChatMessageDTO `json:"messages"`
}

type NewSessionResponse struct {
	SessionId string `json:"session_id"`
}
