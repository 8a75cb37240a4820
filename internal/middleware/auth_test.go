package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret"

func signToken(t *testing.T, subject string, scopes []string, secret string) string {
	t.Helper()
	claims := &Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   subject,
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
		Scopes: scopes,
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	require.NoError(t, err)
	return token
}

func TestAuth(t *testing.T) {
	var gotUserID string
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotUserID = GetUserID(r.Context())
		w.WriteHeader(http.StatusOK)
	})
	handler := Auth(testSecret)(next)

	tests := []struct {
		name         string
		header       string
		expectedCode int
		expectedUser string
	}{
		{
			name:         "valid token",
			header:       "Bearer " + signToken(t, "u1", nil, testSecret),
			expectedCode: http.StatusOK,
			expectedUser: "u1",
		},
		{
			name:         "missing header",
			header:       "",
			expectedCode: http.StatusUnauthorized,
		},
		{
			name:         "not a bearer token",
			header:       "Basic dXNlcjpwYXNz",
			expectedCode: http.StatusUnauthorized,
		},
		{
			name:         "wrong secret",
			header:       "Bearer " + signToken(t, "u1", nil, "other-secret"),
			expectedCode: http.StatusUnauthorized,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gotUserID = ""
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, req)

			assert.Equal(t, tt.expectedCode, rec.Code)
			assert.Equal(t, tt.expectedUser, gotUserID)
		})
	}
}

func TestRequireScope(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	handler := Auth(testSecret)(RequireScope("reports:generate")(next))

	t.Run("scope present", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("Authorization", "Bearer "+signToken(t, "u1", []string{"reports:generate"}, testSecret))
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("scope missing", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("Authorization", "Bearer "+signToken(t, "u1", []string{"chat:query"}, testSecret))
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusForbidden, rec.Code)
	})
}

func TestValidateQueryText(t *testing.T) {
	assert.NoError(t, ValidateQueryText("hello"))
	assert.Error(t, ValidateQueryText(""))
	assert.Error(t, ValidateQueryText("   "))
	assert.Error(t, ValidateQueryText(string(make([]byte, maxQueryLength+1))))
	assert.Error(t, ValidateQueryText("bad\xff"))
}

func TestValidateVariant(t *testing.T) {
	assert.NoError(t, ValidateVariant("finance"))
	assert.NoError(t, ValidateVariant("travel"))
	assert.Error(t, ValidateVariant("legal"))
}

func TestValidateHistoryLength(t *testing.T) {
	assert.NoError(t, ValidateHistoryLength(0))
	assert.NoError(t, ValidateHistoryLength(maxHistoryTurns))
	assert.Error(t, ValidateHistoryLength(maxHistoryTurns + 1))
}
