package response

import (
	"github.com/gin-gonic/gin"

	"github.com/kart-io/complaint-center/pkg/errors"
)

// requestIDKey is the gin context key set by the request ID middleware.
const requestIDKey = "request_id"

// prepare stamps the request ID onto the response when available.
func prepare(c *gin.Context, r *Response) *Response {
	if id := c.GetString(requestIDKey); id != "" {
		r.RequestID = id
	}
	return r
}

// OK sends a successful response with data.
func OK(c *gin.Context, data interface{}) {
	r := prepare(c, Success(data))
	c.JSON(r.HTTPStatus(), r)
}

// OKWithMessage sends a successful response with a custom message.
func OKWithMessage(c *gin.Context, message string, data interface{}) {
	r := prepare(c, SuccessWithMessage(message, data))
	c.JSON(r.HTTPStatus(), r)
}

// Fail sends an error response using an Errno.
func Fail(c *gin.Context, e *errors.Errno) {
	r := prepare(c, Err(e))
	c.JSON(e.HTTPStatus(), r)
}

// FailWithError converts any error and sends it.
// Errno values are used directly; everything else maps to ErrInternal.
func FailWithError(c *gin.Context, err error) {
	Fail(c, errors.FromError(err))
}

// FailWithBind sends an invalid-parameter response for a binding error.
func FailWithBind(c *gin.Context, err error) {
	Fail(c, errors.ErrInvalidParam.WithMessage("invalid request body: "+err.Error()))
}
