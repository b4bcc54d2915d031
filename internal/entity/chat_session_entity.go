package entity

import (
	"time"

	"github.com/google/uuid"
)

// ChatSession is a conversation container. SessionId is the externally
// visible identifier and is independent of the storage row id. A nil
// UserId means the session is anonymous.
type ChatSession struct {
	Id        uuid.UUID
	SessionId string
	UserId    *uuid.UUID
	Title     string
	CreatedAt time.Time
	UpdatedAt time.Time
}
