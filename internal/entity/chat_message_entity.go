package entity

import (
	"time"

	"github.com/google/uuid"
)

// ChatMessage is one turn in a session's append-only log. Messages are
// keyed by the session identifier, not the session row id, and are never
// updated after creation.
type ChatMessage struct {
	Id                 uuid.UUID
	SessionId          string
	MessageType        string
	Content            string
	HadDocumentContext bool
	CreatedAt          time.Time
}
