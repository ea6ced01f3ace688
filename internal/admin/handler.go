package admin

import (
	"net/http"

	sharedContext "github.com/cokeke26/fenats/internal/shared/context"
	"github.com/cokeke26/fenats/internal/shared/handler"
	"github.com/gin-gonic/gin"
)

type AdminHandler struct {
	adminService *AdminService
}

func NewAdminHandler(adminService *AdminService) *AdminHandler {
	return &AdminHandler{
		adminService: adminService,
	}
}

func (h *AdminHandler) Me(c *gin.Context) {
	actor, ok := sharedContext.RequireActor(c)
	if !ok {
		return
	}

	response, err := h.adminService.Me(c.Request.Context(), actor)
	if err != nil {
		handler.RespondDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, response)
}

func (h *AdminHandler) Create(c *gin.Context) {
	actor, ok := sharedContext.RequireActor(c)
	if !ok {
		return
	}

	var request CreateAdminRequest
	if !handler.BindJSON(c, &request) {
		return
	}

	response, err := h.adminService.Create(c.Request.Context(), actor, request)
	if err != nil {
		handler.RespondDomainError(c, err)
		return
	}

	c.JSON(http.StatusCreated, response)
}
