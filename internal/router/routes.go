package router

import (
	"github.com/cokeke26/fenats/internal/admin"
	"github.com/cokeke26/fenats/internal/auth"
	"github.com/cokeke26/fenats/internal/config"
	"github.com/cokeke26/fenats/internal/importer"
	"github.com/cokeke26/fenats/internal/member"
	"github.com/cokeke26/fenats/internal/meta"
	"github.com/cokeke26/fenats/internal/shared/database"
	"github.com/cokeke26/fenats/internal/shared/middleware"
	"github.com/cokeke26/fenats/internal/shared/token"
	"github.com/cokeke26/fenats/internal/verify"
	"github.com/gin-gonic/gin"
)

// Setup configures all application-specific routes using dependency injection
func Setup(router *gin.Engine, cfg *config.Config, db *database.DB, tokenManager token.Manager) {
	// Meta handler (health check)
	metaHandler := meta.NewHandler(cfg, db)
	router.GET("/health", metaHandler.Health)

	// repository
	adminRepository := admin.NewAdminRepository()
	memberRepository := member.NewMemberRepository()

	// service
	authService := auth.NewAuthService(db.DB, adminRepository, tokenManager)
	adminService := admin.NewAdminService(db.DB, adminRepository)
	memberService := member.NewMemberService(db.DB, memberRepository, token.NewVerificationToken, cfg.VerifyURL)
	importService := importer.NewImportService(member.NewStore(db.DB, memberRepository), token.NewVerificationToken)
	verifyService := verify.NewVerifyService(db.DB, memberRepository)

	// handler
	authHandler := auth.NewAuthHandler(authService)
	adminHandler := admin.NewAdminHandler(adminService)
	memberHandler := member.NewMemberHandler(memberService)
	importHandler := importer.NewImportHandler(importService, cfg.Import.MaxFileSize)
	verifyHandler := verify.NewVerifyHandler(verifyService)

	requireAdmin := middleware.JWT(tokenManager)
	defaultTimeout := middleware.Timeout(middleware.DefaultTimeout)

	// API v1 routes
	authV1 := router.Group("/api/v1/auth", defaultTimeout)
	{
		authV1.POST("/login", authHandler.Login)
		authV1.POST("/refresh", authHandler.Refresh)
	}

	verifyV1 := router.Group("/api/v1/verify", defaultTimeout)
	{
		verifyV1.GET("/:token", verifyHandler.Verify)
	}

	adminV1 := router.Group("/api/v1/admins", defaultTimeout, requireAdmin)
	{
		adminV1.GET("/me", adminHandler.Me)
		adminV1.POST("", adminHandler.Create)
	}

	// Imports run one lookup and one write per row and get a longer deadline.
	router.POST("/api/v1/members/import", middleware.Timeout(middleware.ImportTimeout), requireAdmin, importHandler.Import)

	memberV1 := router.Group("/api/v1/members", defaultTimeout, requireAdmin)
	{
		memberV1.POST("", memberHandler.Save)
		memberV1.GET("", memberHandler.List)
		memberV1.GET("/lookup", memberHandler.Lookup)
		memberV1.GET("/:id", memberHandler.Get)
		memberV1.PUT("/:id", memberHandler.Update)
		memberV1.PATCH("/:id/status", memberHandler.UpdateStatus)
		memberV1.POST("/:id/token", memberHandler.RegenerateToken)
		memberV1.GET("/:id/qr", memberHandler.QRCode)
	}
}
