package middleware

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"net/http"
	"strings"
	"time"

	"turnos-payment-register/pkg/jwt"
	"turnos-payment-register/pkg/response"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

type contextKey string

const (
	UserIDKey      contextKey = "user_id"
	UserEmailKey   contextKey = "user_email"
	AccessTokenKey contextKey = "access_token"
)

// AuthMiddleware validates the bearer token, rejects revoked ones and keeps
// the raw token in context so it can be forwarded to the remote system.
type AuthMiddleware struct {
	jwtService  *jwt.JWTService
	redisClient *redis.Client
}

func NewAuthMiddleware(jwtService *jwt.JWTService, redisClient *redis.Client) *AuthMiddleware {
	return &AuthMiddleware{
		jwtService:  jwtService,
		redisClient: redisClient,
	}
}

func (m *AuthMiddleware) Authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			response.Unauthorized(w, "Authorization header is required")
			return
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			response.Unauthorized(w, "Invalid authorization header format")
			return
		}

		tokenString := parts[1]

		claims, err := m.jwtService.ValidateToken(tokenString)
		if err != nil {
			response.Unauthorized(w, "Invalid or expired token")
			return
		}

		// Revoked on logout
		revoked, err := m.redisClient.Exists(r.Context(), revokedKey(tokenString)).Result()
		if err != nil {
			response.InternalServerError(w, "Failed to validate token")
			return
		}
		if revoked > 0 {
			response.Unauthorized(w, "Token has been revoked")
			return
		}

		ctx := context.WithValue(r.Context(), UserIDKey, claims.UserID)
		ctx = context.WithValue(ctx, UserEmailKey, claims.Email)
		ctx = context.WithValue(ctx, AccessTokenKey, tokenString)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// Revoke denylists a token for the remainder of its lifetime.
func (m *AuthMiddleware) Revoke(ctx context.Context, tokenString string) error {
	claims, err := m.jwtService.ValidateToken(tokenString)
	if err != nil {
		return err
	}

	ttl := time.Hour
	if claims.ExpiresAt != nil {
		if remaining := time.Until(claims.ExpiresAt.Time); remaining > 0 {
			ttl = remaining
		}
	}
	return m.redisClient.Set(ctx, revokedKey(tokenString), "1", ttl).Err()
}

func revokedKey(tokenString string) string {
	sum := sha256.Sum256([]byte(tokenString))
	return fmt.Sprintf("revoked_token:%s", hex.EncodeToString(sum[:]))
}

// GetUserIDFromContext extracts the operator id from context
func GetUserIDFromContext(ctx context.Context) (uuid.UUID, bool) {
	userID, ok := ctx.Value(UserIDKey).(uuid.UUID)
	return userID, ok
}

// GetUserEmailFromContext extracts the operator email from context
func GetUserEmailFromContext(ctx context.Context) (string, bool) {
	email, ok := ctx.Value(UserEmailKey).(string)
	return email, ok
}

// GetAccessTokenFromContext extracts the raw bearer token from context
func GetAccessTokenFromContext(ctx context.Context) (string, bool) {
	token, ok := ctx.Value(AccessTokenKey).(string)
	return token, ok
}
