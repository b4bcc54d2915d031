package implementation

import (
	"context"
	"errors"

	"ai-chatbot-be/internal/entity"
	"ai-chatbot-be/internal/mapper"
	"ai-chatbot-be/internal/model"
	"ai-chatbot-be/internal/repository/contract"
	"ai-chatbot-be/internal/repository/specification"

	"gorm.io/gorm"
)

type SessionTokenRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.UserMapper
}

func NewSessionTokenRepository(db *gorm.DB) contract.SessionTokenRepository {
	return &SessionTokenRepositoryImpl{
		db:     db,
		mapper: mapper.NewUserMapper(),
	}
}

func (r *SessionTokenRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *SessionTokenRepositoryImpl) Create(ctx context.Context, token *entity.SessionToken) error {
	m := r.mapper.SessionTokenToModel(token)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*token = *r.mapper.SessionTokenToEntity(m)
	return nil
}

func (r *SessionTokenRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.SessionToken, error) {
	var m model.SessionToken
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.SessionTokenToEntity(&m), nil
}

func (r *SessionTokenRepositoryImpl) RevokeByHash(ctx context.Context, tokenHash string) error {
	return r.db.WithContext(ctx).
		Model(&model.SessionToken{}).
		Where("token_hash = ?", tokenHash).
		Update("revoked", true).Error
}
