package verify

import (
	"net/http"

	"github.com/cokeke26/fenats/internal/shared/handler"
	"github.com/gin-gonic/gin"
)

type VerifyHandler struct {
	verifyService *VerifyService
}

func NewVerifyHandler(verifyService *VerifyService) *VerifyHandler {
	return &VerifyHandler{
		verifyService: verifyService,
	}
}

func (h *VerifyHandler) Verify(c *gin.Context) {
	response, err := h.verifyService.Verify(c.Request.Context(), c.Param("token"))
	if err != nil {
		handler.RespondDomainError(c, err)
		return
	}

	c.Header("Cache-Control", "no-store")
	c.JSON(http.StatusOK, response)
}
