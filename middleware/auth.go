package middleware

import (
	"net/http"
	"strings"
	"time"

	"restaurant-client/config"
	"restaurant-client/models"
	"restaurant-client/ordering"
	"restaurant-client/storage"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

type Claims struct {
	SessionID string          `json:"session_id"`
	Username  string          `json:"username"`
	Role      models.UserRole `json:"role"`
	jwt.RegisteredClaims
}

// TokenKey is the local-store key holding the backend access token for a
// device session
func TokenKey(sessionID string) string { return "token:" + sessionID }

// NewSessionToken mints a signed JWT identifying a fresh device session.
// The backend access token itself never leaves the local store.
func NewSessionToken(user *models.User) (sessionID, token string, err error) {
	sessionID = uuid.NewString()
	claims := Claims{
		SessionID: sessionID,
		Username:  user.Username,
		Role:      user.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(24 * time.Hour)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	token, err = t.SignedString(config.JWTSecret)
	return sessionID, token, err
}

// AuthRequired validates the session JWT, loads the backend access token for
// the session from the local store, and injects both into the context
func AuthRequired(kv *storage.KV) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Authorization header required (Bearer <token>)"})
			c.Abort()
			return
		}
		tokenStr := strings.TrimPrefix(authHeader, "Bearer ")
		claims := &Claims{}
		token, err := jwt.ParseWithClaims(tokenStr, claims, func(t *jwt.Token) (interface{}, error) {
			return config.JWTSecret, nil
		})
		if err != nil || !token.Valid {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid or expired session"})
			c.Abort()
			return
		}

		backendToken, ok, err := kv.Get(TokenKey(claims.SessionID))
		if err != nil || !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Session expired, please log in again"})
			c.Abort()
			return
		}

		c.Set("sessionID", claims.SessionID)
		c.Set("backendToken", backendToken)
		c.Set("username", claims.Username)
		c.Set("role", string(claims.Role))
		c.Next()
	}
}

// RoleRequired enforces that the caller has one of the allowed roles
func RoleRequired(roles ...models.UserRole) gin.HandlerFunc {
	return func(c *gin.Context) {
		roleVal, exists := c.Get("role")
		if !exists {
			c.JSON(http.StatusForbidden, gin.H{"error": "Role not found in context"})
			c.Abort()
			return
		}
		callerRole := models.UserRole(roleVal.(string))
		for _, r := range roles {
			if callerRole == r {
				c.Next()
				return
			}
		}
		c.JSON(http.StatusForbidden, gin.H{
			"error": "Access denied. Required role(s): " + rolesString(roles),
		})
		c.Abort()
	}
}

func rolesString(roles []models.UserRole) string {
	s := ""
	for i, r := range roles {
		if i > 0 {
			s += ", "
		}
		s += string(r)
	}
	return s
}

// GetSession extracts the device session for the ordering core
func GetSession(c *gin.Context) ordering.Session {
	sid, _ := c.Get("sessionID")
	tok, _ := c.Get("backendToken")
	return ordering.Session{ID: sid.(string), Token: tok.(string)}
}

// GetRole extracts the caller role from context
func GetRole(c *gin.Context) models.UserRole {
	val, _ := c.Get("role")
	return models.UserRole(val.(string))
}
