package member

import (
	"net/http"
	"strconv"

	sharedContext "github.com/cokeke26/fenats/internal/shared/context"
	"github.com/cokeke26/fenats/internal/shared/handler"
	"github.com/gin-gonic/gin"
)

const maxQRSize = 1024

type MemberHandler struct {
	memberService *MemberService
}

func NewMemberHandler(memberService *MemberService) *MemberHandler {
	return &MemberHandler{
		memberService: memberService,
	}
}

// Save creates a member (201) or updates the one with the same RUT (200).
func (h *MemberHandler) Save(c *gin.Context) {
	actor, ok := sharedContext.RequireActor(c)
	if !ok {
		return
	}

	var req SaveMemberRequest
	if !handler.BindJSON(c, &req) {
		return
	}

	response, created, err := h.memberService.Save(c.Request.Context(), actor, req)
	if err != nil {
		handler.RespondDomainError(c, err)
		return
	}

	status := http.StatusOK
	if created {
		status = http.StatusCreated
	}
	c.JSON(status, response)
}

func (h *MemberHandler) List(c *gin.Context) {
	var query ListMembersQuery
	if !handler.BindQuery(c, &query) {
		return
	}

	response, err := h.memberService.List(c.Request.Context(), query)
	if err != nil {
		handler.RespondDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, response)
}

func (h *MemberHandler) Lookup(c *gin.Context) {
	var query LookupQuery
	if !handler.BindQuery(c, &query) {
		return
	}

	response, err := h.memberService.Lookup(c.Request.Context(), query.Rut)
	if err != nil {
		handler.RespondDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, response)
}

func (h *MemberHandler) Get(c *gin.Context) {
	id, ok := handler.ParamID(c, "id")
	if !ok {
		return
	}

	response, err := h.memberService.Get(c.Request.Context(), id)
	if err != nil {
		handler.RespondDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, response)
}

func (h *MemberHandler) Update(c *gin.Context) {
	actor, ok := sharedContext.RequireActor(c)
	if !ok {
		return
	}
	id, ok := handler.ParamID(c, "id")
	if !ok {
		return
	}

	var req UpdateMemberRequest
	if !handler.BindJSON(c, &req) {
		return
	}

	response, err := h.memberService.Update(c.Request.Context(), actor, id, req)
	if err != nil {
		handler.RespondDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, response)
}

func (h *MemberHandler) UpdateStatus(c *gin.Context) {
	actor, ok := sharedContext.RequireActor(c)
	if !ok {
		return
	}
	id, ok := handler.ParamID(c, "id")
	if !ok {
		return
	}

	var req UpdateStatusRequest
	if !handler.BindJSON(c, &req) {
		return
	}

	response, err := h.memberService.SetStatus(c.Request.Context(), actor, id, req.Status)
	if err != nil {
		handler.RespondDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, response)
}

func (h *MemberHandler) RegenerateToken(c *gin.Context) {
	actor, ok := sharedContext.RequireActor(c)
	if !ok {
		return
	}
	id, ok := handler.ParamID(c, "id")
	if !ok {
		return
	}

	response, err := h.memberService.RegenerateToken(c.Request.Context(), actor, id)
	if err != nil {
		handler.RespondDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, response)
}

// QRCode streams a PNG; ?size= is clamped to maxQRSize pixels.
func (h *MemberHandler) QRCode(c *gin.Context) {
	id, ok := handler.ParamID(c, "id")
	if !ok {
		return
	}

	size, _ := strconv.Atoi(c.Query("size"))
	if size > maxQRSize {
		size = maxQRSize
	}

	png, err := h.memberService.QRCode(c.Request.Context(), id, size)
	if err != nil {
		handler.RespondDomainError(c, err)
		return
	}

	c.Header("Cache-Control", "no-store")
	c.Data(http.StatusOK, "image/png", png)
}
