package jwt

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestJWT_GenerateAndGetClaims(t *testing.T) {
	j := New("test-secret", time.Minute)

	userID := uuid.New()
	ctx := context.Background()

	token, err := j.Generate(ctx, userID, "alice", "user")
	assert.NoError(t, err)
	assert.NotEmpty(t, token)

	claims, err := j.GetClaims(ctx, token)
	assert.NoError(t, err)
	assert.Equal(t, userID, claims.UserID)
	assert.Equal(t, "alice", claims.Username)
	assert.Equal(t, "user", claims.Role)
}

func TestJWT_ExpiredToken(t *testing.T) {
	j := New("test-secret", -time.Minute) // already expired

	ctx := context.Background()
	token, err := j.Generate(ctx, uuid.New(), "alice", "user")
	assert.NoError(t, err)

	claims, err := j.GetClaims(ctx, token)
	assert.Nil(t, claims)
	assert.ErrorIs(t, err, ErrTokenExpired)

	var expErr *ExpiredError
	assert.True(t, errors.As(err, &expErr))
	assert.WithinDuration(t, time.Now().Add(-time.Minute), expErr.ExpiredAt, 5*time.Second)
}

func TestJWT_InvalidToken(t *testing.T) {
	j := New("test-secret", time.Minute)
	ctx := context.Background()

	// Garbage token
	_, err := j.GetClaims(ctx, "not-a-token")
	assert.ErrorIs(t, err, ErrTokenInvalid)
	assert.NotErrorIs(t, err, ErrTokenExpired)

	// Token signed with a different secret
	other := New("other-secret", time.Minute)
	token, err := other.Generate(ctx, uuid.New(), "alice", "user")
	assert.NoError(t, err)

	_, err = j.GetClaims(ctx, token)
	assert.ErrorIs(t, err, ErrTokenInvalid)
}

func TestJWT_GetTokenFromRequest(t *testing.T) {
	j := New("test-secret", time.Minute)
	ctx := context.Background()

	tests := []struct {
		name    string
		header  string
		want    string
		wantErr bool
	}{
		{name: "valid bearer", header: "Bearer abc.def.ghi", want: "abc.def.ghi"},
		{name: "lowercase bearer", header: "bearer abc.def.ghi", want: "abc.def.ghi"},
		{name: "missing header", header: "", wantErr: true},
		{name: "no token part", header: "Bearer", wantErr: true},
		{name: "wrong scheme", header: "Basic abc", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, _ := http.NewRequest(http.MethodGet, "/", nil)
			if tt.header != "" {
				r.Header.Set("Authorization", tt.header)
			}

			token, err := j.GetTokenFromRequest(ctx, r)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.want, token)
			}
		})
	}
}
