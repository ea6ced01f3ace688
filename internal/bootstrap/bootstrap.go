package bootstrap

import (
	"io"
	"net/http"

	"github.com/cokeke26/fenats/internal/config"
	sharedError "github.com/cokeke26/fenats/internal/shared/error"
	"github.com/cokeke26/fenats/internal/shared/logger"
	"github.com/cokeke26/fenats/internal/shared/middleware"
	"github.com/gin-gonic/gin"
)

// Bootstrap builds the gin engine shared by every route group
type Bootstrap struct {
	cfg *config.Config
}

// NewBootstrap creates a new bootstrap instance
func NewBootstrap(cfg *config.Config) *Bootstrap {
	return &Bootstrap{
		cfg: cfg,
	}
}

// SetupEngine creates a gin engine with the request-scoped middleware.
// Timeouts are attached per route group in router.Setup.
func (b *Bootstrap) SetupEngine() *gin.Engine {
	// Set Gin mode based on environment
	if b.cfg.IsDevelopment() {
		gin.SetMode(gin.DebugMode)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}

	// Disable Gin's default logger (using slog)
	gin.DefaultWriter = io.Discard
	gin.DefaultErrorWriter = io.Discard

	// Create engine without default middleware
	engine := gin.New()

	engine.Use(middleware.RequestID())
	engine.Use(middleware.LoggerMiddleware())
	engine.Use(gin.CustomRecovery(b.recoveryHandler))
	engine.Use(middleware.CORS(b.cfg))

	// Uploads are limited by IMPORT_MAX_FILE_SIZE; keep only a small part in memory.
	engine.MaxMultipartMemory = 8 << 20

	return engine
}

// recoveryHandler turns a panic into the standard 500 body.
func (b *Bootstrap) recoveryHandler(c *gin.Context, recovered any) {
	logger.FromContext(c.Request.Context()).Error("panic recovered",
		"error", recovered,
		"path", c.Request.URL.Path,
		"method", c.Request.Method,
	)
	c.AbortWithStatusJSON(http.StatusInternalServerError, sharedError.InternalServerError)
}
