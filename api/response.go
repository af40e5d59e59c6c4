package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// MessageResponse 仅携带提示文案的响应体
type MessageResponse struct {
	Message string `json:"message" example:"Cost deleted successfully."`
}

// Message 按指定状态码返回提示文案
func Message(c *gin.Context, code int, message string) {
	c.JSON(code, MessageResponse{Message: message})
}

// BadRequest 400 错误响应
func BadRequest(c *gin.Context, message string) {
	Message(c, http.StatusBadRequest, message)
}

// NotFound 404 错误响应
func NotFound(c *gin.Context, message string) {
	Message(c, http.StatusNotFound, message)
}

// InternalError 500 错误响应
// 存储层错误信息原样透出，不做脱敏和兜底文案
func InternalError(c *gin.Context, message string) {
	Message(c, http.StatusInternalServerError, message)
}
