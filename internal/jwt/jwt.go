package jwt

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

var (
	// ErrTokenExpired marks a token that was valid but has expired.
	// The concrete error is an *ExpiredError carrying the expiry time.
	ErrTokenExpired = errors.New("token expired")
	// ErrTokenInvalid marks a malformed token or a bad signature.
	ErrTokenInvalid = errors.New("invalid token")
)

// ExpiredError reports an expired token together with its expiry timestamp.
type ExpiredError struct {
	ExpiredAt time.Time
}

func (e *ExpiredError) Error() string {
	return fmt.Sprintf("token expired at %s", e.ExpiredAt.Format(time.RFC3339))
}

// Is makes errors.Is(err, ErrTokenExpired) hold for *ExpiredError.
func (e *ExpiredError) Is(target error) bool {
	return target == ErrTokenExpired
}

// Claims are the identity facts embedded in a signed token.
type Claims struct {
	UserID   uuid.UUID
	Username string
	Role     string
}

// JWT issues and verifies HS256 session tokens.
type JWT struct {
	SecretKey string        // Shared signing secret, loaded once at startup
	Exp       time.Duration // Token lifetime
}

// New creates a new JWT instance
func New(secretKey string, expiration time.Duration) *JWT {
	return &JWT{
		SecretKey: secretKey,
		Exp:       expiration,
	}
}

// Generate creates a signed token embedding the user's id, username and role.
func (j *JWT) Generate(ctx context.Context, userID uuid.UUID, username, role string) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"user_id":  userID.String(),
		"username": username,
		"role":     role,
		"exp":      now.Add(j.Exp).Unix(),
		"iat":      now.Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(j.SecretKey))
}

// GetClaims parses and verifies a token string. It returns the embedded
// claims, an *ExpiredError for expired tokens, or ErrTokenInvalid for
// anything malformed or tampered with.
func (j *JWT) GetClaims(ctx context.Context, tokenString string) (*Claims, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return []byte(j.SecretKey), nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			expiredAt := time.Time{}
			if token != nil {
				if mc, ok := token.Claims.(jwt.MapClaims); ok {
					if exp, expErr := mc.GetExpirationTime(); expErr == nil && exp != nil {
						expiredAt = exp.Time
					}
				}
			}
			return nil, &ExpiredError{ExpiredAt: expiredAt}
		}
		return nil, ErrTokenInvalid
	}

	mc, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return nil, ErrTokenInvalid
	}

	userIDStr, ok := mc["user_id"].(string)
	if !ok {
		return nil, ErrTokenInvalid
	}
	userID, err := uuid.Parse(userIDStr)
	if err != nil {
		return nil, ErrTokenInvalid
	}

	username, _ := mc["username"].(string)
	role, _ := mc["role"].(string)

	return &Claims{
		UserID:   userID,
		Username: username,
		Role:     role,
	}, nil
}

// GetTokenFromRequest extracts the bearer token from the Authorization header
func (j *JWT) GetTokenFromRequest(ctx context.Context, r *http.Request) (string, error) {
	authHeader := r.Header.Get("Authorization")
	if authHeader == "" {
		return "", errors.New("authorization header missing")
	}

	parts := strings.Fields(authHeader)
	if len(parts) != 2 || strings.ToLower(parts[0]) != "bearer" {
		return "", errors.New("invalid authorization header format")
	}

	return parts[1], nil
}
