package service

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"strings"
	"time"

	"ai-chatbot-be/internal/constant"
	"ai-chatbot-be/internal/dto"
	"ai-chatbot-be/internal/entity"
	"ai-chatbot-be/internal/pkg/apperror"
	"ai-chatbot-be/internal/pkg/logger"
	"ai-chatbot-be/internal/repository/specification"
	"ai-chatbot-be/internal/repository/unitofwork"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

type IAuthService interface {
	Signup(ctx context.Context, req *dto.SignupRequest) (*dto.SignupResponse, error)
	Login(ctx context.Context, req *dto.LoginRequest) (*dto.LoginResponse, error)
	Logout(ctx context.Context, token string) error
	ValidateToken(ctx context.Context, token string) (*entity.User, error)
	CheckSession(ctx context.Context, token string) bool
}

type authService struct {
	uowFactory unitofwork.RepositoryFactory
	log        logger.ILogger
}

func NewAuthService(uowFactory unitofwork.RepositoryFactory, log logger.ILogger) IAuthService {
	return &authService{
		uowFactory: uowFactory,
		log:        log,
	}
}

// hashToken derives the stored form of an opaque bearer token. Raw token
// values never touch the database.
func hashToken(token string) string {
	sum := sha256.Sum256([]byte(token))
	return hex.EncodeToString(sum[:])
}

func (s *authService) Signup(ctx context.Context, req *dto.SignupRequest) (*dto.SignupResponse, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))
	firstName := strings.TrimSpace(req.FirstName)
	lastName := strings.TrimSpace(req.LastName)

	switch {
	case email == "":
		return nil, apperror.Validation("email is required")
	case req.Password == "":
		return nil, apperror.Validation("password is required")
	case firstName == "":
		return nil, apperror.Validation("first_name is required")
	case lastName == "":
		return nil, apperror.Validation("last_name is required")
	}

	if err := validateEmail(email); err != nil {
		return nil, err
	}
	if err := validatePassword(req.Password); err != nil {
		return nil, err
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)

	existing, err := uow.UserRepository().FindOne(ctx, specification.ByEmail{Email: email})
	if err != nil {
		return nil, apperror.Persistence(err)
	}
	if existing != nil {
		return nil, apperror.Conflict("User with this email already exists")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, apperror.Persistence(err)
	}

	user := &entity.User{
		Id:           uuid.New(),
		Email:        email,
		PasswordHash: string(hash),
		FirstName:    firstName,
		LastName:     lastName,
		IsActive:     true,
		CreatedAt:    time.Now(),
		UpdatedAt:    time.Now(),
	}

	if err := uow.UserRepository().Create(ctx, user); err != nil {
		return nil, apperror.Persistence(err)
	}

	s.log.Info("auth", "user registered", map[string]interface{}{"user_id": user.Id})

	return &dto.SignupResponse{
		Message: "User created successfully",
		User:    userToDTO(user),
	}, nil
}

func (s *authService) Login(ctx context.Context, req *dto.LoginRequest) (*dto.LoginResponse, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))
	if email == "" || req.Password == "" {
		return nil, apperror.Validation("Email and password are required")
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)

	user, err := uow.UserRepository().FindOne(ctx, specification.ByEmail{Email: email})
	if err != nil {
		return nil, apperror.Persistence(err)
	}
	if user == nil {
		return nil, apperror.Auth("Invalid email or password")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return nil, apperror.Auth("Invalid email or password")
	}
	if !user.IsActive {
		return nil, apperror.Auth("Account is deactivated")
	}

	// Opaque bearer token: uuid v4 gives 122 bits of crypto randomness.
	rawToken := uuid.New().String()
	sessionToken := &entity.SessionToken{
		Id:        uuid.New(),
		UserId:    user.Id,
		TokenHash: hashToken(rawToken),
		ExpiresAt: time.Now().Add(constant.SessionTokenTTL),
		Revoked:   false,
		CreatedAt: time.Now(),
	}

	// Token row and last-login update land together or not at all.
	if err := uow.Begin(ctx); err != nil {
		return nil, apperror.Persistence(err)
	}
	defer uow.Rollback()

	if err := uow.SessionTokenRepository().Create(ctx, sessionToken); err != nil {
		return nil, apperror.Persistence(err)
	}
	if err := uow.UserRepository().UpdateLastLogin(ctx, user.Id); err != nil {
		return nil, apperror.Persistence(err)
	}
	if err := uow.Commit(); err != nil {
		return nil, apperror.Persistence(err)
	}

	now := time.Now()
	user.LastLoginAt = &now

	s.log.Info("auth", "user logged in", map[string]interface{}{"user_id": user.Id})

	return &dto.LoginResponse{
		Message:      "Login successful",
		User:         userToDTO(user),
		SessionToken: rawToken,
	}, nil
}

// Logout revokes the presented token. Revocation is idempotent: unknown or
// already revoked tokens are ignored, never reported.
func (s *authService) Logout(ctx context.Context, token string) error {
	if token == "" {
		return nil
	}
	uow := s.uowFactory.NewUnitOfWork(ctx)
	if err := uow.SessionTokenRepository().RevokeByHash(ctx, hashToken(token)); err != nil {
		return apperror.Persistence(err)
	}
	return nil
}

// ValidateToken resolves a bearer token to its user. Revocation and expiry
// are checked as one step: an active token past its expiry authenticates
// nobody, exactly like a revoked one.
func (s *authService) ValidateToken(ctx context.Context, token string) (*entity.User, error) {
	if token == "" {
		return nil, apperror.Auth("No session token provided")
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)

	sessionToken, err := uow.SessionTokenRepository().FindOne(ctx, specification.ByTokenHash{TokenHash: hashToken(token)})
	if err != nil {
		return nil, apperror.Persistence(err)
	}
	if sessionToken == nil || sessionToken.Revoked || time.Now().After(sessionToken.ExpiresAt) {
		return nil, apperror.Auth("Invalid or expired session")
	}

	user, err := uow.UserRepository().FindOne(ctx, specification.ByID{ID: sessionToken.UserId})
	if err != nil {
		return nil, apperror.Persistence(err)
	}
	if user == nil || !user.IsActive {
		return nil, apperror.Auth("User not found or inactive")
	}

	return user, nil
}

func (s *authService) CheckSession(ctx context.Context, token string) bool {
	_, err := s.ValidateToken(ctx, token)
	return err == nil
}

func userToDTO(u *entity.User) dto.UserDTO {
	return dto.UserDTO{
		Id:          u.Id,
		Email:       u.Email,
		FirstName:   u.FirstName,
		LastName:    u.LastName,
		IsActive:    u.IsActive,
		LastLoginAt: u.LastLoginAt,
		CreatedAt:   u.CreatedAt,
	}
}
