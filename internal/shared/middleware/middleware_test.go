package middleware_test

import (
	"net/http"
	"strings"
	"testing"
	"time"

	sharedContext "github.com/cokeke26/fenats/internal/shared/context"
	sharedError "github.com/cokeke26/fenats/internal/shared/error"
	"github.com/cokeke26/fenats/internal/shared/middleware"
	"github.com/cokeke26/fenats/internal/shared/testutil"
	"github.com/cokeke26/fenats/internal/shared/token"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func protectedRouter(tokenManager token.Manager) *gin.Engine {
	router := testutil.SetupTestRouter()
	router.GET("/protected", middleware.JWT(tokenManager), func(c *gin.Context) {
		actor, ok := sharedContext.RequireActor(c)
		if !ok {
			return
		}
		c.JSON(http.StatusOK, gin.H{"adminId": actor.AdminID, "email": actor.Email})
	})
	return router
}

func TestJWT_AcceptsAccessToken(t *testing.T) {
	// Given
	tokenManager := token.NewJWTManager(testutil.NewTestConfig())
	access, err := tokenManager.GenerateAccessToken("42", "admin@fenats.cl")
	require.NoError(t, err)

	// When
	recorder := testutil.ExecuteRequest(t, protectedRouter(tokenManager), testutil.TestRequest{
		Method:  http.MethodGet,
		URL:     "/protected",
		Headers: map[string]string{"Authorization": "Bearer " + access},
	})

	// Then
	require.Equal(t, http.StatusOK, recorder.Code)

	var body struct {
		AdminID uint32 `json:"adminId"`
		Email   string `json:"email"`
	}
	testutil.ParseResponse(t, recorder, &body)
	assert.Equal(t, uint32(42), body.AdminID)
	assert.Equal(t, "admin@fenats.cl", body.Email)
}

func TestJWT_Rejects(t *testing.T) {
	tokenManager := token.NewJWTManager(testutil.NewTestConfig())
	refresh, err := tokenManager.GenerateRefreshToken("42", "admin@fenats.cl")
	require.NoError(t, err)

	expiring := testutil.NewMockTokenManager()
	expiring.ValidateTokenFunc = func(string) (*token.Claims, error) {
		return nil, token.ErrExpiredToken
	}

	testCases := []struct {
		name    string
		manager token.Manager
		header  string
		code    string
	}{
		{name: "missing header", manager: tokenManager, header: "", code: "AUTH-000"},
		{name: "wrong scheme", manager: tokenManager, header: "Basic abc", code: "AUTH-000"},
		{name: "garbage token", manager: tokenManager, header: "Bearer abc.def.ghi", code: "AUTH-000"},
		{name: "refresh token", manager: tokenManager, header: "Bearer " + refresh, code: "AUTH-000"},
		{name: "expired token", manager: expiring, header: "Bearer whatever", code: "AUTH-001"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			headers := map[string]string{}
			if tc.header != "" {
				headers["Authorization"] = tc.header
			}

			recorder := testutil.ExecuteRequest(t, protectedRouter(tc.manager), testutil.TestRequest{
				Method:  http.MethodGet,
				URL:     "/protected",
				Headers: headers,
			})

			assert.Equal(t, http.StatusUnauthorized, recorder.Code)

			var errorResponse sharedError.ErrorResponse
			testutil.ParseResponse(t, recorder, &errorResponse)
			assert.Equal(t, tc.code, errorResponse.Code)
		})
	}
}

func TestTimeout_SetsDeadline(t *testing.T) {
	router := testutil.SetupTestRouter()
	router.GET("/slow", middleware.Timeout(middleware.ImportTimeout), func(c *gin.Context) {
		deadline, ok := c.Request.Context().Deadline()
		if !ok {
			c.Status(http.StatusInternalServerError)
			return
		}
		c.JSON(http.StatusOK, gin.H{"remaining": time.Until(deadline).Seconds()})
	})

	recorder := testutil.ExecuteRequest(t, router, testutil.TestRequest{Method: http.MethodGet, URL: "/slow"})

	require.Equal(t, http.StatusOK, recorder.Code)
	var body struct {
		Remaining float64 `json:"remaining"`
	}
	testutil.ParseResponse(t, recorder, &body)
	assert.Greater(t, body.Remaining, middleware.DefaultTimeout.Seconds())
}

func TestRequestID(t *testing.T) {
	router := testutil.SetupTestRouter()
	router.Use(middleware.RequestID())
	router.GET("/ping", func(c *gin.Context) {
		c.String(http.StatusOK, middleware.GetRequestID(c))
	})

	t.Run("caller id is propagated", func(t *testing.T) {
		recorder := testutil.ExecuteRequest(t, router, testutil.TestRequest{
			Method:  http.MethodGet,
			URL:     "/ping",
			Headers: map[string]string{middleware.RequestIDHeader: "abc-123"},
		})

		assert.Equal(t, "abc-123", recorder.Header().Get(middleware.RequestIDHeader))
		assert.Equal(t, "abc-123", recorder.Body.String())
	})

	t.Run("oversized id is replaced", func(t *testing.T) {
		recorder := testutil.ExecuteRequest(t, router, testutil.TestRequest{
			Method:  http.MethodGet,
			URL:     "/ping",
			Headers: map[string]string{middleware.RequestIDHeader: strings.Repeat("x", 100)},
		})

		id := recorder.Header().Get(middleware.RequestIDHeader)
		assert.Len(t, id, 36)
		assert.Equal(t, id, recorder.Body.String())
	})
}
