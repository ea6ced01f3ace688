package context

import (
	"net/http"
	"strconv"

	sharedError "github.com/cokeke26/fenats/internal/shared/error"
	"github.com/cokeke26/fenats/internal/shared/logger"
	"github.com/gin-gonic/gin"
)

// Gin context keys set by the JWT middleware
const (
	AdminIDKey    = "admin_id"
	AdminEmailKey = "admin_email"
)

// Actor identifies who performs an administrative operation.
// Services receive it explicitly instead of reading request state.
type Actor struct {
	AdminID uint32
	Email   string
}

// SystemActor is used by the CLI and startup tasks where no admin is logged in.
var SystemActor = Actor{Email: "system"}

// Ref returns the admin ID for created_by/updated_by columns, nil for the system actor.
func (a Actor) Ref() *int64 {
	if a.AdminID == 0 {
		return nil
	}
	id := int64(a.AdminID)
	return &id
}

func GetActor(c *gin.Context) (Actor, bool) {
	rawID, exists := c.Get(AdminIDKey)
	if !exists {
		return Actor{}, false
	}

	idStr, ok := rawID.(string)
	if !ok {
		return Actor{}, false
	}

	id, err := strconv.ParseUint(idStr, 10, 32)
	if err != nil || id == 0 {
		return Actor{}, false
	}

	email, _ := c.Get(AdminEmailKey)
	emailStr, _ := email.(string)

	return Actor{AdminID: uint32(id), Email: emailStr}, true
}

// RequireActor returns the authenticated admin or writes a 401 and aborts.
func RequireActor(c *gin.Context) (Actor, bool) {
	actor, ok := GetActor(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, sharedError.ErrorResponse{
			Status:  http.StatusUnauthorized,
			Code:    "AUTH-000",
			Message: "Debe iniciar sesión.",
		})
		c.Abort()
		logger.FromContext(c.Request.Context()).Error("[API] admin identity missing from context")
		return Actor{}, false
	}
	return actor, true
}
