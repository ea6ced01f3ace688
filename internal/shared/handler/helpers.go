package handler

import (
	"errors"
	"net/http"
	"strconv"

	sharedError "github.com/cokeke26/fenats/internal/shared/error"
	"github.com/cokeke26/fenats/internal/shared/validator"
	"github.com/gin-gonic/gin"
)

// BindJSON parses and validates JSON request body
// Returns true if binding succeeded, false if failed (response already sent)
//
//	var req CreateMemberRequest
//	if !handler.BindJSON(c, &req) {
//	    return
//	}
func BindJSON(c *gin.Context, obj any) bool {
	if err := c.ShouldBindJSON(obj); err != nil {
		respondBindError(c, err)
		return false
	}
	return true
}

// Bind picks the binding from the Content-Type (JSON, form, multipart).
func Bind(c *gin.Context, obj any) bool {
	if err := c.ShouldBind(obj); err != nil {
		respondBindError(c, err)
		return false
	}
	return true
}

// BindQuery is BindJSON for query string parameters.
func BindQuery(c *gin.Context, obj any) bool {
	if err := c.ShouldBindQuery(obj); err != nil {
		respondBindError(c, err)
		return false
	}
	return true
}

func respondBindError(c *gin.Context, err error) {
	c.Error(err)

	if resp, ok := validator.ToErrorResponse(err); ok {
		c.JSON(http.StatusBadRequest, resp)
		return
	}
	c.JSON(sharedError.InvalidRequest.Status, sharedError.InvalidRequest)
}

// ParamID reads a positive numeric path parameter.
// Returns false after sending a 400 if it is missing or malformed.
func ParamID(c *gin.Context, name string) (uint32, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 32)
	if err != nil || id == 0 {
		c.Error(errors.New("invalid path parameter " + name))
		c.JSON(sharedError.InvalidRequest.Status, sharedError.InvalidRequest)
		return 0, false
	}
	return uint32(id), true
}

// RespondError sends an error response with logging
//
//	if err := service.DoSomething(); err != nil {
//	    handler.RespondError(c, err, sharedError.InternalServerError)
//	    return
//	}
func RespondError(c *gin.Context, err error, errResp sharedError.ErrorResponse) {
	// Add error to context for middleware logging
	c.Error(err)
	c.JSON(errResp.Status, errResp)
}

// RespondDomainError maps err through the domain registry before responding.
func RespondDomainError(c *gin.Context, err error) {
	RespondError(c, err, sharedError.ResolveOrInternal(err))
}
