package specification

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// BySessionID filters by the externally visible chat session identifier
type BySessionID struct {
	SessionID string
}

func (s BySessionID) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("session_id = ?", s.SessionID)
}

// OwnedBy filters chat sessions belonging to a user
type OwnedBy struct {
	UserID uuid.UUID
}

func (s OwnedBy) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("user_id = ?", s.UserID)
}

// Anonymous filters chat sessions with no owner
type Anonymous struct{}

func (s Anonymous) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("user_id IS NULL")
}
