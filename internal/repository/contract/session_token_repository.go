package contract

import (
	"context"

	"ai-chatbot-be/internal/entity"
	"ai-chatbot-be/internal/repository/specification"
)

type SessionTokenRepository interface {
	Create(ctx context.Context, token *entity.SessionToken) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.SessionToken, error)

	// RevokeByHash marks a token inactive. Revoking an unknown or already
	// revoked token is not an error.
	RevokeByHash(ctx context.Context, tokenHash string) error
}
