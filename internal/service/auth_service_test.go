package service

import (
	"context"
	"testing"
	"time"

	"ai-chatbot-be/internal/dto"
	"ai-chatbot-be/internal/entity"
	"ai-chatbot-be/internal/pkg/apperror"
	"ai-chatbot-be/internal/repository/specification"
	"ai-chatbot-be/internal/repository/unitofwork"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAuthService(t *testing.T) (IAuthService, unitofwork.RepositoryFactory) {
	t.Helper()
	factory := unitofwork.NewRepositoryFactory(newTestDB(t))
	return NewAuthService(factory, nopLogger{}), factory
}

func signupRequest() *dto.SignupRequest {
	return &dto.SignupRequest{
		Email:     "jane@example.com",
		Password:  "Password1",
		FirstName: "Jane",
		LastName:  "Doe",
	}
}

func TestSignup(t *testing.T) {
	svc, _ := newAuthService(t)
	ctx := context.Background()

	res, err := svc.Signup(ctx, signupRequest())
	require.NoError(t, err)
	assert.Equal(t, "User created successfully", res.Message)
	assert.Equal(t, "jane@example.com", res.User.Email)
	assert.True(t, res.User.IsActive)
	assert.NotEqual(t, uuid.Nil, res.User.Id)
}

func TestSignupNormalizesEmail(t *testing.T) {
	svc, _ := newAuthService(t)
	ctx := context.Background()

	req := signupRequest()
	req.Email = "  Jane@Example.COM "
	res, err := svc.Signup(ctx, req)
	require.NoError(t, err)
	assert.Equal(t, "jane@example.com", res.User.Email)

	// Same address with different casing is a duplicate.
	dup := signupRequest()
	dup.Email = "JANE@example.com"
	_, err = svc.Signup(ctx, dup)
	assert.True(t, apperror.IsKind(err, apperror.KindConflict))
}

func TestSignupValidation(t *testing.T) {
	svc, _ := newAuthService(t)
	ctx := context.Background()

	tests := []struct {
		name   string
		mutate func(*dto.SignupRequest)
	}{
		{"missing email", func(r *dto.SignupRequest) { r.Email = "" }},
		{"missing password", func(r *dto.SignupRequest) { r.Password = "" }},
		{"missing first name", func(r *dto.SignupRequest) { r.FirstName = "" }},
		{"missing last name", func(r *dto.SignupRequest) { r.LastName = "" }},
		{"bad email", func(r *dto.SignupRequest) { r.Email = "not-an-email" }},
		{"weak password", func(r *dto.SignupRequest) { r.Password = "password" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := signupRequest()
			tt.mutate(req)
			_, err := svc.Signup(ctx, req)
			assert.True(t, apperror.IsKind(err, apperror.KindValidation))
		})
	}
}

func TestLoginAndValidateToken(t *testing.T) {
	svc, _ := newAuthService(t)
	ctx := context.Background()

	_, err := svc.Signup(ctx, signupRequest())
	require.NoError(t, err)

	res, err := svc.Login(ctx, &dto.LoginRequest{Email: "jane@example.com", Password: "Password1"})
	require.NoError(t, err)
	assert.Equal(t, "Login successful", res.Message)
	assert.NotEmpty(t, res.SessionToken)
	assert.NotNil(t, res.User.LastLoginAt)

	user, err := svc.ValidateToken(ctx, res.SessionToken)
	require.NoError(t, err)
	assert.Equal(t, "jane@example.com", user.Email)
	assert.True(t, svc.CheckSession(ctx, res.SessionToken))
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	svc, _ := newAuthService(t)
	ctx := context.Background()

	_, err := svc.Signup(ctx, signupRequest())
	require.NoError(t, err)

	_, err = svc.Login(ctx, &dto.LoginRequest{Email: "jane@example.com", Password: "Wrong1234"})
	assert.True(t, apperror.IsKind(err, apperror.KindAuth))

	_, err = svc.Login(ctx, &dto.LoginRequest{Email: "nobody@example.com", Password: "Password1"})
	assert.True(t, apperror.IsKind(err, apperror.KindAuth))

	_, err = svc.Login(ctx, &dto.LoginRequest{Email: "", Password: ""})
	assert.True(t, apperror.IsKind(err, apperror.KindValidation))
}

func TestLogoutRevokesToken(t *testing.T) {
	svc, _ := newAuthService(t)
	ctx := context.Background()

	_, err := svc.Signup(ctx, signupRequest())
	require.NoError(t, err)
	res, err := svc.Login(ctx, &dto.LoginRequest{Email: "jane@example.com", Password: "Password1"})
	require.NoError(t, err)

	require.NoError(t, svc.Logout(ctx, res.SessionToken))

	_, err = svc.ValidateToken(ctx, res.SessionToken)
	assert.True(t, apperror.IsKind(err, apperror.KindAuth))
	assert.False(t, svc.CheckSession(ctx, res.SessionToken))

	// Logging out again, or with garbage, is a no-op.
	assert.NoError(t, svc.Logout(ctx, res.SessionToken))
	assert.NoError(t, svc.Logout(ctx, "never-issued"))
}

func TestValidateTokenRejectsExpired(t *testing.T) {
	svc, factory := newAuthService(t)
	ctx := context.Background()

	signupRes, err := svc.Signup(ctx, signupRequest())
	require.NoError(t, err)

	// Plant a token that expired yesterday.
	raw := uuid.New().String()
	uow := factory.NewUnitOfWork(ctx)
	require.NoError(t, uow.SessionTokenRepository().Create(ctx, &entity.SessionToken{
		Id:        uuid.New(),
		UserId:    signupRes.User.Id,
		TokenHash: hashToken(raw),
		ExpiresAt: time.Now().Add(-24 * time.Hour),
		CreatedAt: time.Now().Add(-31 * 24 * time.Hour),
	}))

	_, err = svc.ValidateToken(ctx, raw)
	assert.True(t, apperror.IsKind(err, apperror.KindAuth))
}

func TestDeactivatedUserCannotAuthenticate(t *testing.T) {
	svc, factory := newAuthService(t)
	ctx := context.Background()

	_, err := svc.Signup(ctx, signupRequest())
	require.NoError(t, err)
	res, err := svc.Login(ctx, &dto.LoginRequest{Email: "jane@example.com", Password: "Password1"})
	require.NoError(t, err)

	uow := factory.NewUnitOfWork(ctx)
	user, err := uow.UserRepository().FindOne(ctx, specification.ByEmail{Email: "jane@example.com"})
	require.NoError(t, err)
	user.IsActive = false
	require.NoError(t, uow.UserRepository().Update(ctx, user))

	// Existing tokens stop working and new logins are refused.
	_, err = svc.ValidateToken(ctx, res.SessionToken)
	assert.True(t, apperror.IsKind(err, apperror.KindAuth))

	_, err = svc.Login(ctx, &dto.LoginRequest{Email: "jane@example.com", Password: "Password1"})
	assert.True(t, apperror.IsKind(err, apperror.KindAuth))
}

func TestValidateTokenRejectsMissing(t *testing.T) {
	svc, _ := newAuthService(t)
	ctx := context.Background()

	_, err := svc.ValidateToken(ctx, "")
	assert.True(t, apperror.IsKind(err, apperror.KindAuth))

	_, err = svc.ValidateToken(ctx, uuid.New().String())
	assert.True(t, apperror.IsKind(err, apperror.KindAuth))
}
