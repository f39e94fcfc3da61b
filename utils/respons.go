package utils

import (
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

type JSONResponse struct {
	Status  bool        `json:"status"`
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
}

func RespondJSON(c *gin.Context, code int, message string, data interface{}) {
	c.JSON(code, JSONResponse{
		Status:  code >= 200 && code < 300,
		Message: message,
		Data:    data,
	})
}

func RespondError(c *gin.Context, code int, err error) {
	c.JSON(code, JSONResponse{
		Status:  false,
		Message: err.Error(),
		Data:    nil,
	})
}

// RespondFailure logs err and answers with a generic message so storage
// details never reach the client.
func RespondFailure(c *gin.Context, code int, err error) {
	ErrorLogger.WithFields(logrus.Fields{
		"method":     c.Request.Method,
		"path":       c.FullPath(),
		"request_id": c.GetString(RequestIDKey),
	}).Errorf("request failed: %v", err)

	c.JSON(code, JSONResponse{
		Status:  false,
		Message: "failed",
	})
}

// RequestIDKey is the gin context key holding the request id.
const RequestIDKey = "request_id"
