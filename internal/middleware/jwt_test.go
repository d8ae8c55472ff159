package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"

	"vehicle_rental/internal/models"
	"vehicle_rental/internal/services"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func TestTokenRoundTrip(t *testing.T) {
	issuer := NewTokenIssuer("test-secret", time.Hour)
	in := services.Session{Username: "alice", Role: models.RoleCustomer, Email: "a@x.com"}

	tok, err := issuer.GenerateToken(in)
	require.NoError(t, err)

	out, err := issuer.ValidateToken(tok)
	require.NoError(t, err)
	require.Equal(t, in, out)
}

func TestValidateToken_Rejects(t *testing.T) {
	issuer := NewTokenIssuer("test-secret", time.Hour)

	expired, err := NewTokenIssuer("test-secret", -time.Minute).GenerateToken(services.Session{Username: "a", Role: models.RoleAdmin})
	require.NoError(t, err)
	_, err = issuer.ValidateToken(expired)
	require.Error(t, err)

	foreign, err := NewTokenIssuer("other-secret", time.Hour).GenerateToken(services.Session{Username: "a", Role: models.RoleAdmin})
	require.NoError(t, err)
	_, err = issuer.ValidateToken(foreign)
	require.Error(t, err)

	none, err := jwt.NewWithClaims(jwt.SigningMethodNone, Claims{Role: models.RoleAdmin}).SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)
	_, err = issuer.ValidateToken(none)
	require.Error(t, err)
}

func TestRequireAuthWithRole(t *testing.T) {
	issuer := NewTokenIssuer("test-secret", time.Hour)

	ran := false
	r := gin.New()
	r.GET("/admin", issuer.RequireAuthWithRole(models.RoleAdmin), func(c *gin.Context) {
		ran = true
		sess, ok := CurrentSession(c)
		require.True(t, ok)
		c.String(http.StatusOK, sess.Username)
	})

	adminTok, err := issuer.GenerateToken(services.Session{Username: "root", Role: models.RoleAdmin})
	require.NoError(t, err)
	customerTok, err := issuer.GenerateToken(services.Session{Username: "alice", Role: models.RoleCustomer})
	require.NoError(t, err)

	cases := []struct {
		name   string
		header string
		status int
		ran    bool
	}{
		{"missing header", "", http.StatusUnauthorized, false},
		{"not bearer", "Token " + adminTok, http.StatusUnauthorized, false},
		{"garbage token", "Bearer abc.def.ghi", http.StatusUnauthorized, false},
		{"wrong role", "Bearer " + customerTok, http.StatusForbidden, false},
		{"admin", "Bearer " + adminTok, http.StatusOK, true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			ran = false
			req := httptest.NewRequest(http.MethodGet, "/admin", nil)
			if tc.header != "" {
				req.Header.Set("Authorization", tc.header)
			}
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)
			require.Equal(t, tc.status, w.Code)
			require.Equal(t, tc.ran, ran)
		})
	}
}

func TestRequireAuth_StopsChainOnBadToken(t *testing.T) {
	issuer := NewTokenIssuer("test-secret", time.Hour)

	calls := 0
	r := gin.New()
	r.GET("/me", issuer.RequireAuth(), func(c *gin.Context) {
		calls++
		sess, _ := CurrentSession(c)
		c.String(http.StatusOK, sess.Username)
	})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/me", nil))
	require.Equal(t, http.StatusUnauthorized, w.Code)
	require.Zero(t, calls)

	tok, err := issuer.GenerateToken(services.Session{Username: "alice", Role: models.RoleCustomer})
	require.NoError(t, err)
	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	req.Header.Set("Authorization", "Bearer "+tok)
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, "alice", w.Body.String())
	require.Equal(t, 1, calls)
}

func TestRequestID(t *testing.T) {
	r := gin.New()
	r.Use(RequestID())
	r.GET("/", func(c *gin.Context) {
		require.Equal(t, c.GetString("request_id"), Logger(c).Data["request_id"])
		c.Status(http.StatusNoContent)
	})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("X-Request-ID", "abc-123")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	require.Equal(t, "abc-123", w.Header().Get("X-Request-ID"))

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
	require.NotEmpty(t, w.Header().Get("X-Request-ID"))
}
