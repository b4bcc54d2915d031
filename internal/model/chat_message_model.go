package model

import (
	"time"

	"github.com/google/uuid"
)

type ChatMessage struct {
	Id                 uuid.UUID `gorm:"type:uuid;primaryKey"`
	SessionId          string    `gorm:"type:varchar(64);not null;index"`
	MessageType        string    `gorm:"type:varchar(20);not null"`
	Content            string    `gorm:"type:text;not null"`
	HadDocumentContext bool      `gorm:"default:false"`
	CreatedAt          time.Time `gorm:"autoCreateTime"`
}

func (ChatMessage) TableName() string {
	return "chat_messages"
}
