package jwt_test

import (
	"context"
	"errors"
	"hotel/config"
	"hotel/infras/jwt"
	"hotel/infras/otel/mocks"
	"testing"

	"github.com/stretchr/testify/assert"
)

func newService(secret string, expireMin int) jwt.JWT {
	cfg := &config.Config{}
	cfg.App.Name = "hotel"
	cfg.JWT.AccessSecret = secret
	cfg.JWT.AccessExpireMin = expireMin

	return jwt.New(cfg, mocks.NewOtel())
}

func TestService_GenerateAndValidate(t *testing.T) {
	svc := newService("secret", 15)

	token, err := svc.GenerateToken("user-1", "staff@hotel.test", "staff")
	assert.NoError(t, err)
	assert.NotEmpty(t, token)

	claims, err := svc.ValidateToken(context.Background(), token)
	assert.NoError(t, err)
	assert.Equal(t, "user-1", claims.UserID)
	assert.Equal(t, "staff@hotel.test", claims.Email)
	assert.Equal(t, "staff", claims.Role)
	assert.NotEmpty(t, claims.TokenID)
	assert.Equal(t, claims.TokenID, claims.ID)
}

func TestService_GenerateToken_RequiresSubjectAndRole(t *testing.T) {
	svc := newService("secret", 15)

	_, err := svc.GenerateToken("", "a@b.c", "admin")
	assert.ErrorIs(t, err, jwt.ErrInvalidClaim)

	_, err = svc.GenerateToken("user-1", "a@b.c", "")
	assert.ErrorIs(t, err, jwt.ErrInvalidClaim)
}

func TestService_ValidateToken(t *testing.T) {
	svc := newService("secret", 15)

	valid, err := svc.GenerateToken("user-1", "a@b.c", "admin")
	assert.NoError(t, err)

	otherSecret, err := newService("other", 15).GenerateToken("user-1", "a@b.c", "admin")
	assert.NoError(t, err)

	expired, err := newService("secret", -5).GenerateToken("user-1", "a@b.c", "admin")
	assert.NoError(t, err)

	tests := []struct {
		name    string
		token   string
		wantErr error
	}{
		{
			name:  "valid token",
			token: valid,
		},
		{
			name:    "signed with another secret",
			token:   otherSecret,
			wantErr: jwt.ErrInvalidToken,
		},
		{
			name:    "expired token",
			token:   expired,
			wantErr: jwt.ErrExpiredToken,
		},
		{
			name:    "garbage",
			token:   "not-a-token",
			wantErr: jwt.ErrInvalidToken,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.ValidateToken(context.Background(), tt.token)

			if tt.wantErr == nil {
				assert.NoError(t, err)
			} else {
				assert.True(t, errors.Is(err, tt.wantErr), "expected %v, got %v", tt.wantErr, err)
			}
		})
	}
}

func TestExtractTokenFromHeader(t *testing.T) {
	tests := []struct {
		name     string
		header   string
		expected string
		wantErr  bool
	}{
		{name: "bearer token", header: "Bearer abc.def.ghi", expected: "abc.def.ghi"},
		{name: "empty header", header: "", wantErr: true},
		{name: "missing scheme", header: "abc.def.ghi", wantErr: true},
		{name: "scheme without token", header: "Bearer ", wantErr: true},
		{name: "basic scheme", header: "Basic dXNlcjpwYXNz", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			token, err := jwt.ExtractTokenFromHeader(tt.header)

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.expected, token)
			}
		})
	}
}
