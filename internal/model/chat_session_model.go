package model

import (
	"time"

	"github.com/google/uuid"
)

type ChatSession struct {
	Id        uuid.UUID  `gorm:"type:uuid;primaryKey"`
	SessionId string     `gorm:"type:varchar(64);uniqueIndex;not null"`
	UserId    *uuid.UUID `gorm:"type:uuid;index"` // null = anonymous session
	Title     string     `gorm:"type:varchar(255);not null"`
	CreatedAt time.Time  `gorm:"autoCreateTime"`
	UpdatedAt time.Time  `gorm:"autoUpdateTime"`
}

func (ChatSession) TableName() string {
	return "chat_sessions"
}
