// Package httperr carries error responses through gin's error stack so
// middleware renders failures with the same flat body the handlers emit.
package httperr

import (
	"github.com/gin-gonic/gin"
)

// Response marshals to the flat {"error": "..."} body used by every
// endpoint; Status travels with it for the error middleware.
type Response struct {
	Status int    `json:"-"`
	Error  string `json:"error"`
}

// Abort records err on the context for the logging middleware and writes
// the error body in one step. err is what operators see in logs, msg is
// what clients see.
func Abort(c *gin.Context, status int, err error, msg string) {
	if err == nil {
		panic("httperr.Abort: err cannot be nil")
	}

	resp := Response{Status: status, Error: msg}
	_ = c.Error(gin.Error{
		Err:  err,
		Type: gin.ErrorTypePublic,
		Meta: resp,
	})
	c.AbortWithStatusJSON(status, resp)
}
