package helper

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"cardwall/internal/adapter/http/validation"
	"cardwall/internal/core/domain"
)

// kindStatus maps every domain error kind to its one stable HTTP
// status. Anything without a kind is an internal failure and must not
// leak detail to the client.
var kindStatus = map[domain.ErrorKind]int{
	domain.KindInvalidUsername:      http.StatusBadRequest,
	domain.KindInvalidPassword:      http.StatusBadRequest,
	domain.KindInvalidCard:          http.StatusBadRequest,
	domain.KindBadCredentials:       http.StatusUnauthorized,
	domain.KindFaultyToken:          http.StatusUnauthorized,
	domain.KindAuthenticationFailed: http.StatusUnauthorized,
	domain.KindNotFound:             http.StatusNotFound,
	domain.KindUsernameTaken:        http.StatusConflict,
}

func SendError(c *gin.Context, err error) {
	if kind, ok := domain.KindOf(err); ok {
		if status, ok := kindStatus[kind]; ok {
			c.JSON(status, gin.H{"error": err.Error()})
			return
		}
	}

	c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
}

// SendValidationError reports translated field errors alongside the
// domain kind they amount to.
func SendValidationError(c *gin.Context, kindErr error, err error) {
	status := http.StatusBadRequest

	if kind, ok := domain.KindOf(kindErr); ok {
		if s, ok := kindStatus[kind]; ok {
			status = s
		}
	}

	c.JSON(status, gin.H{
		"error":   kindErr.Error(),
		"details": validation.FormatValidationErrors(err),
	})
}

func SendBadRequest(c *gin.Context, message string) {
	c.JSON(http.StatusBadRequest, gin.H{"error": message})
}
