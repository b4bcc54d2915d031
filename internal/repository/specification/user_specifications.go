package specification

import (
	"gorm.io/gorm"
)

// ByEmail filters by email. Emails are stored lower-cased, so callers
// normalize before querying.
type ByEmail struct {
	Email string
}

func (s ByEmail) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("email = ?", s.Email)
}

// ByTokenHash filters session tokens by their stored hash
type ByTokenHash struct {
	TokenHash string
}

func (s ByTokenHash) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("token_hash = ?", s.TokenHash)
}
