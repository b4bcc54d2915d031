package service

import (
	"testing"

	"ai-chatbot-be/internal/pkg/apperror"

	"github.com/stretchr/testify/assert"
)

func TestValidateEmail(t *testing.T) {
	tests := []struct {
		name    string
		email   string
		wantErr bool
	}{
		{"simple", "user@example.com", false},
		{"subdomain", "user@mail.example.co.uk", false},
		{"plus tag", "user+tag@example.com", false},
		{"missing at", "userexample.com", true},
		{"missing tld", "user@example", true},
		{"single letter tld", "user@example.c", true},
		{"empty", "", true},
		{"spaces", "user name@example.com", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validateEmail(tt.email)
			if tt.wantErr {
				assert.Error(t, err)
				assert.True(t, apperror.IsKind(err, apperror.KindValidation))
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidatePassword(t *testing.T) {
	tests := []struct {
		name     string
		password string
		wantMsg  string
	}{
		{"valid", "Password1", ""},
		{"too short", "Pass1", "Password must be at least 8 characters long"},
		{"no uppercase", "password1", "Password must contain at least one uppercase letter"},
		{"no lowercase", "PASSWORD1", "Password must contain at least one lowercase letter"},
		{"no digit", "Passwords", "Password must contain at least one digit"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validatePassword(tt.password)
			if tt.wantMsg == "" {
				assert.NoError(t, err)
				return
			}
			assert.EqualError(t, err, tt.wantMsg)
		})
	}
}

func TestValidatePasswordReportsFirstViolation(t *testing.T) {
	// "short" breaks every rule except lowercase; length is reported first.
	err := validatePassword("short")
	assert.EqualError(t, err, "Password must be at least 8 characters long")
}
