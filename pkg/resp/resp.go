package resp

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Envelope is the uniform response body returned by every endpoint.
type Envelope struct {
	IsSuccess     bool     `json:"isSuccess"`
	StatusCode    int      `json:"statusCode"`
	ErrorMessages []string `json:"errorMessages"`
	Result        any      `json:"result"`
}

func success(c *gin.Context, code int, result any) {
	c.JSON(code, Envelope{
		IsSuccess:     true,
		StatusCode:    code,
		ErrorMessages: []string{},
		Result:        result,
	})
}

func failure(c *gin.Context, code int, msgs ...string) {
	if msgs == nil {
		msgs = []string{}
	}
	c.JSON(code, Envelope{
		IsSuccess:     false,
		StatusCode:    code,
		ErrorMessages: msgs,
	})
}

func OK(c *gin.Context, result any)      { success(c, http.StatusOK, result) }
func Created(c *gin.Context, result any) { success(c, http.StatusCreated, result) }
func NoContent(c *gin.Context)           { success(c, http.StatusNoContent, nil) }

func BadRequest(c *gin.Context, msgs ...string)   { failure(c, http.StatusBadRequest, msgs...) }
func NotFound(c *gin.Context, msgs ...string)     { failure(c, http.StatusNotFound, msgs...) }
func Unauthorized(c *gin.Context, msgs ...string) { failure(c, http.StatusUnauthorized, msgs...) }
func Forbidden(c *gin.Context, msgs ...string)    { failure(c, http.StatusForbidden, msgs...) }

func ServerError(c *gin.Context, err error) {
	failure(c, http.StatusInternalServerError, err.Error())
}
