package middleware

import (
	"errors"
	"net/http"
	"strings"

	sharedContext "github.com/cokeke26/fenats/internal/shared/context"
	sharedError "github.com/cokeke26/fenats/internal/shared/error"
	"github.com/cokeke26/fenats/internal/shared/logger"
	"github.com/cokeke26/fenats/internal/shared/token"

	"github.com/gin-gonic/gin"
)

const (
	AuthorizationHeader = "Authorization"
	BearerScheme        = "Bearer"
)

// JWT error constants (errInfo)
const (
	missingToken  = "MISSING_TOKEN"
	invalidToken  = "INVALID_TOKEN"
	expiredToken  = "EXPIRED_TOKEN"
	invalidClaims = "INVALID_CLAIMS"
)

var (
	ErrMissingToken  = sharedError.NewDomainError(missingToken)
	ErrInvalidToken  = sharedError.NewDomainError(invalidToken)
	ErrExpiredToken  = sharedError.NewDomainError(expiredToken)
	ErrInvalidClaims = sharedError.NewDomainError(invalidClaims)
)

func init() {
	unauthorized := sharedError.ErrorResponse{
		Status:  http.StatusUnauthorized,
		Code:    "AUTH-000",
		Message: "Debe iniciar sesión.",
	}
	sharedError.RegisterDomainErrorResponse(missingToken, unauthorized)
	sharedError.RegisterDomainErrorResponse(invalidToken, unauthorized)
	sharedError.RegisterDomainErrorResponse(invalidClaims, unauthorized)

	sharedError.RegisterDomainErrorResponse(expiredToken, sharedError.ErrorResponse{
		Status:  http.StatusUnauthorized,
		Code:    "AUTH-001",
		Message: "La sesión expiró. Inicie sesión nuevamente.",
	})
}

// JWT authenticates admins with a Bearer access token and stores their
// identity in the gin context for sharedContext.RequireActor.
func JWT(tokenManager token.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		log := logger.FromContext(c.Request.Context()).With(
			"client_ip", c.ClientIP(),
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
		)

		raw, err := extractToken(c)
		if err != nil {
			log.Warn("JWT extraction failed", "step", "extract_token", "error", err.Error())
			handleJWTError(c, err)
			return
		}

		claims, err := token.ValidateAccessToken(tokenManager, raw)
		if err != nil {
			log.Warn("JWT validation failed", "step", "validate_token", "error", err.Error())
			handleJWTError(c, mapTokenError(err))
			return
		}

		c.Set(sharedContext.AdminIDKey, claims.AdminID)
		c.Set(sharedContext.AdminEmailKey, claims.Email)
		c.Next()
	}
}

func handleJWTError(c *gin.Context, err error) {
	if resp, ok := sharedError.ResolveDomainError(err); ok {
		c.JSON(resp.Status, resp)
	} else {
		c.JSON(http.StatusUnauthorized, sharedError.ErrorResponse{
			Status:  http.StatusUnauthorized,
			Code:    "AUTH-999",
			Message: "Autenticación fallida.",
		})
	}
	c.Abort()
}

func extractToken(c *gin.Context) (string, error) {
	authHeader := c.GetHeader(AuthorizationHeader)
	if authHeader == "" {
		return "", ErrMissingToken
	}

	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], BearerScheme) || parts[1] == "" {
		return "", ErrInvalidToken
	}

	return parts[1], nil
}

func mapTokenError(err error) error {
	switch {
	case errors.Is(err, token.ErrExpiredToken):
		return ErrExpiredToken
	case errors.Is(err, token.ErrInvalidClaims), errors.Is(err, token.ErrWrongTokenType):
		return ErrInvalidClaims
	default:
		return ErrInvalidToken
	}
}
