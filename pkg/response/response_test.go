package response

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kart-io/complaint-center/pkg/errors"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func TestSuccess(t *testing.T) {
	r := Success(map[string]string{"k": "v"})
	assert.Equal(t, 0, r.Code)
	assert.Equal(t, "success", r.Message)
	assert.Equal(t, http.StatusOK, r.HTTPStatus())
}

func TestErr(t *testing.T) {
	r := Err(errors.ErrForbidden)
	assert.Equal(t, errors.ErrForbidden.Code, r.Code)
	assert.Equal(t, http.StatusForbidden, r.HTTPStatus())
	assert.Nil(t, r.Data)
}

func TestErrUnknownCodeDefaultsTo500(t *testing.T) {
	r := &Response{Code: 9999999, Message: "mystery"}
	assert.Equal(t, http.StatusInternalServerError, r.HTTPStatus())
}

func TestWriterStampsRequestID(t *testing.T) {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)
	c.Set("request_id", "req-123")

	OK(c, gin.H{"hello": "world"})

	var r Response
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &r))
	assert.Equal(t, "req-123", r.RequestID)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestFailWritesErrnoStatus(t *testing.T) {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)

	Fail(c, errors.ErrEmailExists)

	assert.Equal(t, http.StatusConflict, w.Code)

	var r Response
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &r))
	assert.Equal(t, errors.ErrEmailExists.Code, r.Code)
}

func TestFailWithErrorWrapsPlainErrors(t *testing.T) {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)

	FailWithError(c, assert.AnError)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
}
