package middleware

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"

	"vehicle_rental/internal/models"
	"vehicle_rental/internal/services"
)

const sessionKey = "session"

type Claims struct {
	Role  models.Role `json:"role"`
	Email string      `json:"email,omitempty"`
	jwt.RegisteredClaims
}

// TokenIssuer signs and checks the HS256 session tokens handed out at login.
type TokenIssuer struct {
	secret []byte
	ttl    time.Duration
}

func NewTokenIssuer(secret string, ttl time.Duration) *TokenIssuer {
	return &TokenIssuer{secret: []byte(secret), ttl: ttl}
}

func (t *TokenIssuer) GenerateToken(sess services.Session) (string, error) {
	now := time.Now()
	claims := Claims{
		Role:  sess.Role,
		Email: sess.Email,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   sess.Username,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(t.ttl)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(t.secret)
}

func (t *TokenIssuer) ValidateToken(tokenStr string) (services.Session, error) {
	var claims Claims
	token, err := jwt.ParseWithClaims(tokenStr, &claims, func(token *jwt.Token) (interface{}, error) {
		return t.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return services.Session{}, err
	}
	if !token.Valid || claims.Subject == "" {
		return services.Session{}, errors.New("invalid token claims")
	}
	return services.Session{Username: claims.Subject, Role: claims.Role, Email: claims.Email}, nil
}

// authenticate validates the bearer token and stores the session on c. It
// aborts with 401 and returns false when the token is missing or invalid.
func (t *TokenIssuer) authenticate(c *gin.Context) (services.Session, bool) {
	authHeader := c.GetHeader("Authorization")
	if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Missing or invalid Authorization header"})
		return services.Session{}, false
	}

	sess, err := t.ValidateToken(strings.TrimPrefix(authHeader, "Bearer "))
	if err != nil {
		Logger(c).WithError(err).Debug("rejected token")
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid or expired token"})
		return services.Session{}, false
	}

	c.Set(sessionKey, sess)
	return sess, true
}

// RequireAuth ensures a valid JWT is present and stores the session for
// downstream handlers.
func (t *TokenIssuer) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		t.authenticate(c)
	}
}

// RequireAuthWithRole ensures the JWT is valid and the user has a specific role
func (t *TokenIssuer) RequireAuthWithRole(requiredRole models.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		sess, ok := t.authenticate(c)
		if !ok {
			return
		}
		if !sess.Is(requiredRole) {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Insufficient permissions"})
		}
	}
}

// CurrentSession returns the session RequireAuth stored on c.
func CurrentSession(c *gin.Context) (services.Session, bool) {
	v, exists := c.Get(sessionKey)
	if !exists {
		return services.Session{}, false
	}
	sess, ok := v.(services.Session)
	return sess, ok
}
