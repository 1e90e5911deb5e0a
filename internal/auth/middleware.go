package auth

import (
	"context"
	"crypto/subtle"
	"errors"
	"net/http"
	"os"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

type contextKey string

const studentIDKey contextKey = "authStudentID"

// GetStudentID retrieves the authenticated student from context.
func GetStudentID(ctx context.Context) (string, bool) {
	if ctx == nil {
		return "", false
	}
	if value, ok := ctx.Value(studentIDKey).(string); ok && value != "" {
		return value, true
	}
	return "", false
}

// JWTMiddleware validates bearer tokens and injects the student identity.
// The token subject is the student id.
func JWTMiddleware(secret, audience string) gin.HandlerFunc {
	secret = strings.TrimSpace(secret)
	audience = strings.TrimSpace(audience)

	return func(c *gin.Context) {
		tokenString, err := extractBearerToken(c.Request.Header.Get("Authorization"))
		if err != nil {
			unauthorized(c, err.Error())
			return
		}

		// Env fallbacks go into per-request locals; writing the captured
		// variables would race between concurrent requests.
		key := secret
		if key == "" {
			key = strings.TrimSpace(os.Getenv("JWT_SECRET"))
		}
		if key == "" {
			unauthorized(c, "missing JWT secret")
			return
		}

		claims := &jwt.RegisteredClaims{}
		token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, errors.New("unexpected signing method")
			}
			return []byte(key), nil
		})
		if err != nil || !token.Valid {
			unauthorized(c, "invalid token")
			return
		}

		expectedAudience := audience
		if expectedAudience == "" {
			expectedAudience = strings.TrimSpace(os.Getenv("JWT_AUDIENCE"))
		}
		if expectedAudience != "" && !containsAudience(claims.Audience, expectedAudience) {
			unauthorized(c, "invalid audience")
			return
		}

		if claims.Subject == "" {
			unauthorized(c, "missing subject")
			return
		}

		ctx := context.WithValue(c.Request.Context(), studentIDKey, claims.Subject)
		c.Request = c.Request.WithContext(ctx)
		c.Set(string(studentIDKey), claims.Subject)

		c.Next()
	}
}

// APIKeyMiddleware guards the service-to-service endpoints with a static
// X-API-Key header.
func APIKeyMiddleware(apiKey string) gin.HandlerFunc {
	apiKey = strings.TrimSpace(apiKey)

	return func(c *gin.Context) {
		expected := apiKey
		if expected == "" {
			expected = strings.TrimSpace(os.Getenv("SERVICE_API_KEY"))
		}
		if expected == "" {
			unauthorized(c, "missing service API key")
			return
		}

		provided := strings.TrimSpace(c.Request.Header.Get("X-API-Key"))
		if provided == "" {
			unauthorized(c, "API key required")
			return
		}
		if subtle.ConstantTimeCompare([]byte(provided), []byte(expected)) != 1 {
			unauthorized(c, "invalid API key")
			return
		}

		c.Next()
	}
}

func extractBearerToken(header string) (string, error) {
	if header == "" {
		return "", errors.New("authorization header required")
	}
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return "", errors.New("invalid authorization header")
	}
	token := strings.TrimSpace(parts[1])
	if token == "" {
		return "", errors.New("token missing")
	}
	return token, nil
}

func unauthorized(c *gin.Context, message string) {
	c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": message})
}

func containsAudience(claims jwt.ClaimStrings, expected string) bool {
	for _, aud := range claims {
		if aud == expected {
			return true
		}
	}
	return false
}
